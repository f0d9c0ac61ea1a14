package tevclient

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tevclient/tevclient/internal/netenv"
	"github.com/tevclient/tevclient/internal/wire"
)

const (
	DefaultHostname = "127.0.0.1"
	DefaultPort     = 14158
)

// DialFunc opens one transport connection to address. Injected by tests to
// capture the byte stream without a live viewer.
type DialFunc func(network, address string) (net.Conn, error)

// Options configure a Client beyond its target endpoint. The zero value
// requires an explicit Connect before any command is sent.
type Options struct {
	// AutoConnect dials on the first send instead of failing with
	// ErrNotConnected when no connection exists.
	AutoConnect bool
	// ConnectTimeout bounds each dial attempt. Zero means no bound.
	ConnectTimeout time.Duration
	// Logger receives debug-level connection lifecycle events. Nil disables
	// logging.
	Logger *zerolog.Logger
	// Dial overrides the transport dialer.
	Dial DialFunc
	// Env overrides the shared transport environment handle.
	Env *netenv.Env
}

// Client drives a remote image viewer over one TCP connection.
//
// Communication is unidirectional: commands are written, nothing is ever
// read back. The client is not safe for concurrent use and every call blocks
// until the network write completes or fails. A Client owns its connection
// exclusively; do not copy it.
type Client struct {
	hostname string
	port     uint16
	opts     Options

	env    *netenv.Env
	log    zerolog.Logger
	conn   net.Conn
	closed bool

	lastErr     error
	lastErrText string
}

// NewClient binds a client to (hostname, port) and retains the shared
// transport environment. The connection is not established; call Connect, or
// set Options.AutoConnect to dial on first send. Close releases the
// environment handle again.
func NewClient(hostname string, port uint16, opts Options) (*Client, error) {
	if hostname == "" {
		hostname = DefaultHostname
	}
	if port == 0 {
		port = DefaultPort
	}
	env := opts.Env
	if env == nil {
		env = netenv.Shared()
	}
	if err := env.Retain(); err != nil {
		return nil, fmt.Errorf("%w: transport environment init failed: %s", ErrSocket, sysErrorString(err))
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Client{
		hostname: hostname,
		port:     port,
		opts:     opts,
		env:      env,
		log:      log,
	}, nil
}

// Hostname returns the viewer host the client was bound to.
func (c *Client) Hostname() string {
	return c.hostname
}

// Port returns the viewer port the client was bound to.
func (c *Client) Port() uint16 {
	return c.port
}

// IsConnected reports whether a live connection exists.
func (c *Client) IsConnected() bool {
	return c.conn != nil
}

// Connect resolves the host and attempts each candidate address once, in
// order, stopping at the first success. Calling Connect while already
// connected succeeds immediately. There is no retry loop; all candidates
// failing returns a SocketError describing the last attempt.
func (c *Client) Connect() error {
	if c.conn != nil {
		return c.record(nil)
	}

	addrs, err := net.LookupHost(c.hostname)
	if err != nil {
		return c.record(socketError("resolve", err))
	}

	var lastErr error
	for _, addr := range addrs {
		target := net.JoinHostPort(addr, strconv.Itoa(int(c.port)))
		conn, err := c.dial(target)
		if err != nil {
			lastErr = socketError("connect", err)
			continue
		}
		c.conn = conn
		c.log.Debug().Str("addr", target).Msg("connected")
		return c.record(nil)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%w: no addresses resolved for %s", ErrSocket, c.hostname)
	}
	return c.record(lastErr)
}

func (c *Client) dial(address string) (net.Conn, error) {
	if c.opts.Dial != nil {
		return c.opts.Dial("tcp", address)
	}
	dialer := net.Dialer{Timeout: c.opts.ConnectTimeout}
	return dialer.Dial("tcp", address)
}

// Disconnect closes the connection if one exists. Safe to call repeatedly
// and on a never-connected client.
func (c *Client) Disconnect() error {
	if c.conn == nil {
		return c.record(nil)
	}
	err := c.conn.Close()
	c.conn = nil
	if err != nil {
		return c.record(socketError("close", err))
	}
	c.log.Debug().Msg("disconnected")
	return c.record(nil)
}

// Close disconnects best-effort and releases the shared transport
// environment. The client must not be used afterwards.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.Disconnect()
	if relErr := c.env.Release(); relErr != nil && err == nil {
		err = relErr
	}
	return err
}

// LastError returns the outcome of the most recent operation; nil means it
// succeeded.
func (c *Client) LastError() error {
	return c.lastErr
}

// LastErrorString returns a human-readable description of the most recent
// error, or the empty string after a success.
func (c *Client) LastErrorString() string {
	return c.lastErrText
}

func (c *Client) record(err error) error {
	c.lastErr = err
	if err != nil {
		c.lastErrText = err.Error()
	} else {
		c.lastErrText = ""
	}
	return err
}

// send writes the whole of b to the connection. A send without a live
// connection fails with ErrNotConnected unless AutoConnect is set, in which
// case Connect runs first. Any error or short write is fatal for this send;
// there is no partial-write resume.
func (c *Client) send(b []byte) error {
	if c.conn == nil {
		if !c.opts.AutoConnect {
			return c.record(ErrNotConnected)
		}
		if err := c.Connect(); err != nil {
			return err
		}
	}
	n, err := c.conn.Write(b)
	if err != nil {
		return c.record(socketError("send", err))
	}
	if n != len(b) {
		return c.record(fmt.Errorf("%w: short write: %d of %d bytes", ErrSocket, n, len(b)))
	}
	return c.record(nil)
}

// sendMessage frames header plus an optional raw payload: a little-endian
// u32 total length (counting the length field itself), then the header
// bytes, then the payload. Three sequential writes; the first failure aborts
// the rest.
func (c *Client) sendMessage(header, payload []byte) error {
	total := uint32(wire.LengthPrefixSize + len(header) + len(payload))
	var prefix wire.Buffer
	prefix.WriteUint32(total)
	if err := c.send(prefix.Bytes()); err != nil {
		return err
	}
	if err := c.send(header); err != nil {
		return err
	}
	if len(payload) > 0 {
		if err := c.send(payload); err != nil {
			return err
		}
	}
	c.log.Debug().Uint32("frame_len", total).Msg("frame sent")
	return nil
}

package tevclient

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

var (
	// ErrArgument reports caller-supplied parameters that violate a
	// documented precondition. Detected before any network I/O.
	ErrArgument = errors.New("tevclient: invalid argument")
	// ErrNotConnected reports a send attempted without a live connection
	// while auto-connect is disabled.
	ErrNotConnected = errors.New("tevclient: not connected")
	// ErrSocket reports any failure from address resolution, connecting,
	// or writing to the socket.
	ErrSocket = errors.New("tevclient: socket error")
)

func argumentError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrArgument, fmt.Sprintf(format, args...))
}

func socketError(op string, err error) error {
	return fmt.Errorf("%w: %s failed: %s", ErrSocket, op, sysErrorString(err))
}

// sysErrorString renders err as the platform message text, trimmed of
// trailing line endings and suffixed with the numeric errno in parentheses
// when one can be unwrapped.
func sysErrorString(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		msg := strings.TrimRight(errno.Error(), "\r\n")
		return fmt.Sprintf("%s (%d)", msg, int(errno))
	}
	return strings.TrimRight(err.Error(), "\r\n")
}

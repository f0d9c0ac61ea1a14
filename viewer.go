package tevclient

import (
	"fmt"

	"github.com/tevclient/tevclient/internal/wire"
)

// PacketType is the wire tag of one viewer control packet.
type PacketType int8

const (
	PacketOpenImage      PacketType = 0 // legacy, never emitted
	PacketReloadImage    PacketType = 1
	PacketCloseImage     PacketType = 2
	PacketUpdateImage    PacketType = 3 // legacy, never emitted
	PacketCreateImage    PacketType = 4
	PacketUpdateImageV2  PacketType = 5 // legacy, never emitted
	PacketUpdateImageV3  PacketType = 6
	PacketOpenImageV2    PacketType = 7
	PacketVectorGraphics PacketType = 8
)

// Channel describes how one named channel is read out of a strided float
// buffer. Offset and Stride are measured in float elements, not bytes: the
// value of pixel i lives at Offset + i*Stride.
type Channel struct {
	Name   string
	Offset uint64
	Stride uint64
}

var defaultChannelNames = []string{"R", "G", "B", "A"}

// defaultChannels is the tightly interleaved layout assumed when the caller
// omits descriptors and count is at most 4.
func defaultChannels(count uint32) []Channel {
	channels := make([]Channel, count)
	for i := range channels {
		channels[i] = Channel{
			Name:   defaultChannelNames[i],
			Offset: uint64(i),
			Stride: uint64(count),
		}
	}
	return channels
}

// stridedLength is the exact buffer length required to cover pixelCount
// pixels through every channel's offset and stride.
func stridedLength(channels []Channel, pixelCount uint64) uint64 {
	var required uint64
	for _, ch := range channels {
		need := ch.Offset + (pixelCount-1)*ch.Stride + 1
		if need > required {
			required = need
		}
	}
	return required
}

func newPacket(t PacketType, grabFocus bool) *wire.Buffer {
	msg := &wire.Buffer{}
	msg.WriteInt8(int8(t))
	msg.WriteBool(grabFocus)
	return msg
}

// OpenImage asks the viewer to open an image from a path visible to the
// viewer process. channelSelector optionally restricts which channels are
// displayed; pass "" for all.
func (c *Client) OpenImage(imagePath, channelSelector string, grabFocus bool) error {
	msg := newPacket(PacketOpenImageV2, grabFocus)
	msg.WriteString(imagePath)
	msg.WriteString(channelSelector)
	return c.sendMessage(msg.Bytes(), nil)
}

// ReloadImage asks the viewer to reload a previously opened image from disk.
func (c *Client) ReloadImage(imageName string, grabFocus bool) error {
	msg := newPacket(PacketReloadImage, grabFocus)
	msg.WriteString(imageName)
	return c.sendMessage(msg.Bytes(), nil)
}

// CloseImage asks the viewer to close an image.
func (c *Client) CloseImage(imageName string, grabFocus bool) error {
	msg := newPacket(PacketCloseImage, grabFocus)
	msg.WriteString(imageName)
	return c.sendMessage(msg.Bytes(), nil)
}

// CreateImage creates a new empty image in the viewer, to be filled in with
// UpdateImage. channelNames may be nil for up to 4 channels, defaulting to
// R, G, B, A truncated to channelCount.
func (c *Client) CreateImage(imageName string, width, height, channelCount uint32, channelNames []string, grabFocus bool) error {
	if width == 0 || height == 0 {
		return c.record(argumentError("image width and height must be greater than 0"))
	}
	if channelCount == 0 {
		return c.record(argumentError("image must have at least one channel"))
	}
	if channelNames == nil {
		if channelCount > 4 {
			return c.record(argumentError("channel names cannot be inferred for images with more than 4 channels"))
		}
		channelNames = defaultChannelNames[:channelCount]
	}
	if uint32(len(channelNames)) != channelCount {
		return c.record(argumentError("got %d channel names for %d channels", len(channelNames), channelCount))
	}

	msg := newPacket(PacketCreateImage, grabFocus)
	msg.WriteString(imageName)
	msg.WriteUint32(width)
	msg.WriteUint32(height)
	msg.WriteUint32(channelCount)
	for _, name := range channelNames {
		msg.WriteString(name)
	}
	return c.sendMessage(msg.Bytes(), nil)
}

// UpdateImage replaces the region (x, y, width, height) of a previously
// created image. channels may be nil for up to 4 channels, defaulting to the
// tightly interleaved R, G, B, A layout. data length must exactly equal the
// strided-layout requirement over the region; both too short and too long
// buffers are rejected before any network I/O.
func (c *Client) UpdateImage(imageName string, x, y, width, height, channelCount uint32, channels []Channel, data []float32, grabFocus bool) error {
	if channelCount == 0 {
		return c.record(argumentError("image must have at least one channel"))
	}
	if width == 0 || height == 0 {
		return c.record(argumentError("update region must not be empty"))
	}
	if channels == nil {
		if channelCount > 4 {
			return c.record(argumentError("channel names, offsets, and strides cannot be inferred for images with more than 4 channels"))
		}
		channels = defaultChannels(channelCount)
	}
	if uint32(len(channels)) != channelCount {
		return c.record(argumentError("got %d channel descriptors for %d channels", len(channels), channelCount))
	}

	pixelCount := uint64(width) * uint64(height)
	required := stridedLength(channels, pixelCount)
	if uint64(len(data)) != required {
		return c.record(argumentError(
			"image data size does not match specified dimensions, offset, and stride (expected %d, got %d)",
			required, len(data)))
	}

	msg := newPacket(PacketUpdateImageV3, grabFocus)
	msg.WriteString(imageName)
	msg.WriteUint32(channelCount)
	for _, ch := range channels {
		msg.WriteString(ch.Name)
	}
	msg.WriteUint32(x)
	msg.WriteUint32(y)
	msg.WriteUint32(width)
	msg.WriteUint32(height)
	for _, ch := range channels {
		msg.WriteUint64(ch.Offset)
	}
	for _, ch := range channels {
		msg.WriteUint64(ch.Stride)
	}
	return c.sendMessage(msg.Bytes(), wire.Float32Bytes(data))
}

// CreateImageData creates an image and immediately fills its full region
// with tightly packed data of length width*height*channelCount. If the
// create fails, the update is never attempted.
func (c *Client) CreateImageData(imageName string, width, height, channelCount uint32, data []float32, grabFocus bool) error {
	if err := c.CreateImage(imageName, width, height, channelCount, nil, grabFocus); err != nil {
		return err
	}
	return c.UpdateImage(imageName, 0, 0, width, height, channelCount, nil, data, grabFocus)
}

// VectorGraphics overlays drawing commands on an image. appendCommands adds
// to any overlay already present instead of replacing it. Every command's
// payload is checked against its declared arity before any network I/O.
func (c *Client) VectorGraphics(imageName string, commands []VgCommand, appendCommands, grabFocus bool) error {
	for i, cmd := range commands {
		if err := cmd.validate(); err != nil {
			return c.record(fmt.Errorf("command %d: %w", i, err))
		}
	}

	msg := newPacket(PacketVectorGraphics, grabFocus)
	msg.WriteString(imageName)
	msg.WriteBool(appendCommands)
	msg.WriteUint32(uint32(len(commands)))
	for _, cmd := range commands {
		cmd.encode(msg)
	}
	return c.sendMessage(msg.Bytes(), nil)
}

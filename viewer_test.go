package tevclient

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateImageValidation(t *testing.T) {
	tests := []struct {
		name         string
		width        uint32
		height       uint32
		channelCount uint32
		channelNames []string
	}{
		{name: "zero width", width: 0, height: 4, channelCount: 1},
		{name: "zero height", width: 4, height: 0, channelCount: 1},
		{name: "zero channels", width: 4, height: 4, channelCount: 0},
		{name: "five channels without names", width: 4, height: 4, channelCount: 5},
		{name: "name count mismatch", width: 4, height: 4, channelCount: 3, channelNames: []string{"R"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, tr := newTestClient(t, Options{})
			require.NoError(t, client.Connect())
			before := tr.conn.buf.Len()

			err := client.CreateImage("img", tc.width, tc.height, tc.channelCount, tc.channelNames, true)
			require.ErrorIs(t, err, ErrArgument)
			require.Equal(t, before, tr.conn.buf.Len(), "argument errors must not reach the transport")
		})
	}
}

func TestCreateImageDefaultsAndExplicitNames(t *testing.T) {
	client, tr := newTestClient(t, Options{})
	require.NoError(t, client.Connect())

	require.NoError(t, client.CreateImage("img", 2, 2, 2, nil, true))
	require.NoError(t, client.CreateImage("deep", 2, 2, 5, []string{"A", "B", "C", "D", "E"}, true))

	frames := splitFrames(t, tr.conn.buf.Bytes())
	require.Len(t, frames, 2)
	require.Equal(t, byte(PacketCreateImage), frames[0][4])
	require.Contains(t, string(frames[0]), "R\x00G\x00")
	require.NotContains(t, string(frames[0]), "B\x00A\x00")
	require.Contains(t, string(frames[1]), "A\x00B\x00C\x00D\x00E\x00")
}

func TestUpdateImageValidation(t *testing.T) {
	tests := []struct {
		name         string
		width        uint32
		height       uint32
		channelCount uint32
		channels     []Channel
		dataLen      int
	}{
		{name: "zero channels", width: 4, height: 4, channelCount: 0, dataLen: 16},
		{name: "empty region", width: 0, height: 4, channelCount: 1, dataLen: 0},
		{name: "five channels without descriptors", width: 4, height: 4, channelCount: 5, dataLen: 80},
		{name: "descriptor count mismatch", width: 4, height: 4, channelCount: 2,
			channels: []Channel{{Name: "R", Stride: 1}}, dataLen: 32},
		{name: "data too short", width: 4, height: 4, channelCount: 1, dataLen: 15},
		{name: "data too long", width: 4, height: 4, channelCount: 1, dataLen: 17},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, tr := newTestClient(t, Options{})
			require.NoError(t, client.Connect())

			data := make([]float32, tc.dataLen)
			err := client.UpdateImage("img", 0, 0, tc.width, tc.height, tc.channelCount, tc.channels, data, true)
			require.ErrorIs(t, err, ErrArgument)
			require.Zero(t, tr.conn.buf.Len())
		})
	}
}

func TestUpdateImageTightlyPackedSucceeds(t *testing.T) {
	for _, channelCount := range []uint32{1, 2, 3, 4} {
		client, tr := newTestClient(t, Options{})
		require.NoError(t, client.Connect())

		const width, height = 5, 3
		data := make([]float32, width*height*channelCount)
		require.NoError(t, client.CreateImage("img", width, height, channelCount, nil, true))
		require.NoError(t, client.UpdateImage("img", 0, 0, width, height, channelCount, nil, data, true))

		frames := splitFrames(t, tr.conn.buf.Bytes())
		require.Len(t, frames, 2)
		require.Equal(t, byte(PacketUpdateImageV3), frames[1][4])
	}
}

func TestUpdateImageStridedLengthRequirement(t *testing.T) {
	// Planar layout over a 4x2 region: 8 pixels per plane.
	channels := []Channel{
		{Name: "R", Offset: 0, Stride: 1},
		{Name: "G", Offset: 8, Stride: 1},
		{Name: "B", Offset: 16, Stride: 1},
	}
	// max(offset + (8-1)*stride + 1) = 16 + 7 + 1 = 24
	const required = 24

	client, _ := newTestClient(t, Options{})
	require.NoError(t, client.Connect())

	short := make([]float32, required-1)
	err := client.UpdateImage("img", 0, 0, 4, 2, 3, channels, short, true)
	require.ErrorIs(t, err, ErrArgument)

	exact := make([]float32, required)
	require.NoError(t, client.UpdateImage("img", 0, 0, 4, 2, 3, channels, exact, true))
}

func TestUpdateImagePayloadBytes(t *testing.T) {
	client, tr := newTestClient(t, Options{})
	require.NoError(t, client.Connect())

	data := []float32{0.5, 1.5}
	require.NoError(t, client.UpdateImage("i", 0, 0, 2, 1, 1, nil, data, false))

	frames := splitFrames(t, tr.conn.buf.Bytes())
	require.Len(t, frames, 1)
	frame := frames[0]

	// Raw float payload rides at the end of the frame.
	payload := frame[len(frame)-8:]
	require.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(payload[:4])))
	require.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(payload[4:])))

	// The length prefix covers the payload too.
	require.Equal(t, uint32(len(frame)), binary.LittleEndian.Uint32(frame[:4]))
}

func TestCreateImageDataComposite(t *testing.T) {
	client, tr := newTestClient(t, Options{})
	require.NoError(t, client.Connect())

	data := make([]float32, 4*4*3)
	require.NoError(t, client.CreateImageData("img", 4, 4, 3, data, true))

	frames := splitFrames(t, tr.conn.buf.Bytes())
	require.Len(t, frames, 2)
	require.Equal(t, byte(PacketCreateImage), frames[0][4])
	require.Equal(t, byte(PacketUpdateImageV3), frames[1][4])
}

func TestCreateImageDataCreateFailureShortCircuits(t *testing.T) {
	client, tr := newTestClient(t, Options{})
	require.NoError(t, client.Connect())

	err := client.CreateImageData("img", 0, 4, 1, nil, true)
	require.ErrorIs(t, err, ErrArgument)
	require.Zero(t, tr.conn.buf.Len())
}

func TestVectorGraphicsFrame(t *testing.T) {
	client, tr := newTestClient(t, Options{})
	require.NoError(t, client.Connect())

	commands := []VgCommand{
		BeginPath(),
		MoveTo(Pos{X: 1, Y: 2}),
		LineTo(Pos{X: 3, Y: 4}),
		ClosePath(),
		StrokeColor(Color{R: 1, A: 1}),
		Stroke(),
	}
	require.NoError(t, client.VectorGraphics("img", commands, true, false))

	frames := splitFrames(t, tr.conn.buf.Bytes())
	require.Len(t, frames, 1)
	frame := frames[0]
	require.Equal(t, byte(PacketVectorGraphics), frame[4])
	require.Equal(t, byte(0), frame[5]) // grabFocus=false

	// After "img\0": append flag, then u32 command count.
	rest := frame[6:]
	require.Equal(t, []byte("img\x00"), rest[:4])
	require.Equal(t, byte(1), rest[4])
	require.Equal(t, uint32(len(commands)), binary.LittleEndian.Uint32(rest[5:9]))
	require.Equal(t, byte(VgBeginPath), rest[9])
}

func TestVectorGraphicsRejectsBadArity(t *testing.T) {
	client, tr := newTestClient(t, Options{})
	require.NoError(t, client.Connect())

	bad := VgCommand{Type: VgMoveTo, Data: []float32{1}}
	err := client.VectorGraphics("img", []VgCommand{bad}, false, false)
	require.ErrorIs(t, err, ErrArgument)
	require.Zero(t, tr.conn.buf.Len())
}

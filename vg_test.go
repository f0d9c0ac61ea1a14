package tevclient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tevclient/tevclient/internal/wire"
)

func TestConstructorsMatchDeclaredArity(t *testing.T) {
	commands := []VgCommand{
		Save(),
		Restore(),
		FillColor(Color{R: 1, G: 0.5, B: 0.25, A: 1}),
		Fill(),
		StrokeColor(Color{}),
		Stroke(),
		BeginPath(),
		ClosePath(),
		PathWinding(Clockwise),
		MoveTo(Pos{X: 1, Y: 2}),
		LineTo(Pos{X: 3, Y: 4}),
		ArcTo(Pos{}, Pos{}, 1),
		Arc(Pos{}, 1, 0, 3.14, CounterClockwise),
		BezierTo(Pos{}, Pos{}, Pos{}),
		Circle(Pos{}, 1),
		Ellipse(Pos{}, Size{Width: 2, Height: 1}),
		QuadTo(Pos{}, Pos{}),
		Rect(Pos{}, Size{}),
		RoundedRect(Pos{}, Size{}, 1),
		RoundedRectVarying(Pos{}, Size{}, 1, 2, 3, 4),
	}

	for _, cmd := range commands {
		require.NoError(t, cmd.validate(), "type %d", cmd.Type)
		require.Equal(t, vgArity[cmd.Type], len(cmd.Data), "type %d", cmd.Type)
		require.LessOrEqual(t, len(cmd.Data), MaxVgPayload)
	}
}

func TestNewVgCommandValidatesAtConstruction(t *testing.T) {
	cmd, err := NewVgCommand(VgCircle, []float32{10, 20, 5})
	require.NoError(t, err)
	require.Equal(t, VgCircle, cmd.Type)

	_, err = NewVgCommand(VgCircle, []float32{10, 20})
	require.ErrorIs(t, err, ErrArgument)

	_, err = NewVgCommand(VgSave, []float32{1})
	require.ErrorIs(t, err, ErrArgument)

	_, err = NewVgCommand(VgInvalid, nil)
	require.ErrorIs(t, err, ErrArgument)

	_, err = NewVgCommand(VgCommandType(42), nil)
	require.ErrorIs(t, err, ErrArgument)
}

func TestVgCommandEncoding(t *testing.T) {
	var b wire.Buffer
	MoveTo(Pos{X: 1, Y: 2}).encode(&b)

	require.Equal(t, []byte{
		0x0a,
		0x00, 0x00, 0x80, 0x3f,
		0x00, 0x00, 0x00, 0x40,
	}, b.Bytes())
}

func TestWindingValues(t *testing.T) {
	require.Equal(t, []float32{2}, PathWinding(Clockwise).Data)
	require.Equal(t, []float32{1}, PathWinding(CounterClockwise).Data)
	require.Equal(t, []float32{0, 0, 1, 0, 3, 1}, Arc(Pos{}, 1, 0, 3, CounterClockwise).Data)
}

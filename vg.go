package tevclient

import (
	"github.com/tevclient/tevclient/internal/wire"
)

// VgCommandType identifies one vector graphics drawing operation. The values
// are the stable wire tags understood by the viewer.
type VgCommandType int8

const (
	VgSave               VgCommandType = 0
	VgRestore            VgCommandType = 1
	VgFillColor          VgCommandType = 2
	VgFill               VgCommandType = 3
	VgStrokeColor        VgCommandType = 4
	VgStroke             VgCommandType = 5
	VgBeginPath          VgCommandType = 6
	VgClosePath          VgCommandType = 7
	VgPathWinding        VgCommandType = 8
	VgDebugDumpPathCache VgCommandType = 9
	VgMoveTo             VgCommandType = 10
	VgLineTo             VgCommandType = 11
	VgArcTo              VgCommandType = 12
	VgArc                VgCommandType = 13
	VgBezierTo           VgCommandType = 14
	VgCircle             VgCommandType = 15
	VgEllipse            VgCommandType = 16
	VgQuadTo             VgCommandType = 17
	VgRect               VgCommandType = 18
	VgRoundedRect        VgCommandType = 19
	VgRoundedRectVary    VgCommandType = 20
	VgInvalid            VgCommandType = 127
)

// Winding selects the fill direction of a path.
type Winding int

const (
	CounterClockwise Winding = 1
	Clockwise        Winding = 2
)

// Pos is a 2D position in image pixel space.
type Pos struct {
	X, Y float32
}

// Size is a 2D extent in image pixel space.
type Size struct {
	Width, Height float32
}

// Color is an RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float32
}

// MaxVgPayload is the largest float payload carried by any bounded command.
const MaxVgPayload = 8

// vgArity maps each command type to its declared float payload count.
var vgArity = map[VgCommandType]int{
	VgSave:               0,
	VgRestore:            0,
	VgFillColor:          4,
	VgFill:               0,
	VgStrokeColor:        4,
	VgStroke:             0,
	VgBeginPath:          0,
	VgClosePath:          0,
	VgPathWinding:        1,
	VgDebugDumpPathCache: 0,
	VgMoveTo:             2,
	VgLineTo:             2,
	VgArcTo:              5,
	VgArc:                6,
	VgBezierTo:           6,
	VgCircle:             3,
	VgEllipse:            4,
	VgQuadTo:             4,
	VgRect:               4,
	VgRoundedRect:        5,
	VgRoundedRectVary:    8,
}

// VgCommand is one drawing primitive overlaid on a viewed image. Construct
// commands through NewVgCommand or the typed helpers; both guarantee the
// payload matches the operation's declared arity.
type VgCommand struct {
	Type VgCommandType
	Data []float32
}

// NewVgCommand validates data against the arity of t at construction time.
func NewVgCommand(t VgCommandType, data []float32) (VgCommand, error) {
	arity, ok := vgArity[t]
	if !ok {
		return VgCommand{}, argumentError("unknown vector graphics command type %d", t)
	}
	if len(data) != arity {
		return VgCommand{}, argumentError(
			"vector graphics command type %d expects %d payload elements, got %d", t, arity, len(data))
	}
	return VgCommand{Type: t, Data: data}, nil
}

func (c VgCommand) validate() error {
	_, err := NewVgCommand(c.Type, c.Data)
	return err
}

func (c VgCommand) encode(b *wire.Buffer) {
	b.WriteInt8(int8(c.Type))
	b.WriteFloat32s(c.Data)
}

func Save() VgCommand    { return VgCommand{Type: VgSave} }
func Restore() VgCommand { return VgCommand{Type: VgRestore} }

func FillColor(c Color) VgCommand {
	return VgCommand{Type: VgFillColor, Data: []float32{c.R, c.G, c.B, c.A}}
}

func Fill() VgCommand { return VgCommand{Type: VgFill} }

func StrokeColor(c Color) VgCommand {
	return VgCommand{Type: VgStrokeColor, Data: []float32{c.R, c.G, c.B, c.A}}
}

func Stroke() VgCommand    { return VgCommand{Type: VgStroke} }
func BeginPath() VgCommand { return VgCommand{Type: VgBeginPath} }
func ClosePath() VgCommand { return VgCommand{Type: VgClosePath} }

func PathWinding(w Winding) VgCommand {
	return VgCommand{Type: VgPathWinding, Data: []float32{float32(w)}}
}

func MoveTo(p Pos) VgCommand {
	return VgCommand{Type: VgMoveTo, Data: []float32{p.X, p.Y}}
}

func LineTo(p Pos) VgCommand {
	return VgCommand{Type: VgLineTo, Data: []float32{p.X, p.Y}}
}

func ArcTo(p1, p2 Pos, radius float32) VgCommand {
	return VgCommand{Type: VgArcTo, Data: []float32{p1.X, p1.Y, p2.X, p2.Y, radius}}
}

func Arc(center Pos, radius, angleBegin, angleEnd float32, w Winding) VgCommand {
	return VgCommand{Type: VgArc, Data: []float32{center.X, center.Y, radius, angleBegin, angleEnd, float32(w)}}
}

func BezierTo(c1, c2, p Pos) VgCommand {
	return VgCommand{Type: VgBezierTo, Data: []float32{c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y}}
}

func Circle(center Pos, radius float32) VgCommand {
	return VgCommand{Type: VgCircle, Data: []float32{center.X, center.Y, radius}}
}

func Ellipse(center Pos, radius Size) VgCommand {
	return VgCommand{Type: VgEllipse, Data: []float32{center.X, center.Y, radius.Width, radius.Height}}
}

func QuadTo(c, p Pos) VgCommand {
	return VgCommand{Type: VgQuadTo, Data: []float32{c.X, c.Y, p.X, p.Y}}
}

func Rect(p Pos, size Size) VgCommand {
	return VgCommand{Type: VgRect, Data: []float32{p.X, p.Y, size.Width, size.Height}}
}

func RoundedRect(p Pos, size Size, radius float32) VgCommand {
	return VgCommand{Type: VgRoundedRect, Data: []float32{p.X, p.Y, size.Width, size.Height, radius}}
}

func RoundedRectVarying(p Pos, size Size, topLeft, topRight, bottomRight, bottomLeft float32) VgCommand {
	return VgCommand{
		Type: VgRoundedRectVary,
		Data: []float32{p.X, p.Y, size.Width, size.Height, topLeft, topRight, bottomRight, bottomLeft},
	}
}

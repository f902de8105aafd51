package svg

import "strings"

// PathData accumulates SVG path drawing commands and renders them as the
// canonical path definition string used as the value of the "d" attribute.
// Commands are emitted in call order, one mnemonic followed by its numeric
// operands, all space-separated:
//
//	NewPath().MoveTo(0, 0).LineTo(10, 0).ClosePath()
//
// renders as "M 0 0 L 10 0 Z".
//
// Each builder call appends one command and returns the receiver, following
// the same chaining discipline as Element. No geometric validation is
// performed; PathData is a pure command accumulator.
type PathData struct {
	cmds []pathCmd
}

type pathCmd struct {
	op   byte
	args []float64
}

// NewPath returns an empty path definition.
func NewPath() *PathData {
	return &PathData{}
}

func (p *PathData) add(op byte, args ...float64) *PathData {
	p.cmds = append(p.cmds, pathCmd{op: op, args: args})
	return p
}

// MoveTo starts a new sub-path at (x, y).
func (p *PathData) MoveTo(x, y float64) *PathData { return p.add('M', x, y) }

// RMoveTo starts a new sub-path displaced by (dx, dy) from the current
// point.
func (p *PathData) RMoveTo(dx, dy float64) *PathData { return p.add('m', dx, dy) }

// LineTo draws a line to (x, y).
func (p *PathData) LineTo(x, y float64) *PathData { return p.add('L', x, y) }

// RLineTo draws a line displaced by (dx, dy) from the current point.
func (p *PathData) RLineTo(dx, dy float64) *PathData { return p.add('l', dx, dy) }

// HLineTo draws a horizontal line to the given x coordinate.
func (p *PathData) HLineTo(x float64) *PathData { return p.add('H', x) }

// RHLineTo draws a horizontal line displaced by dx.
func (p *PathData) RHLineTo(dx float64) *PathData { return p.add('h', dx) }

// VLineTo draws a vertical line to the given y coordinate.
func (p *PathData) VLineTo(y float64) *PathData { return p.add('V', y) }

// RVLineTo draws a vertical line displaced by dy.
func (p *PathData) RVLineTo(dy float64) *PathData { return p.add('v', dy) }

// CurveTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (p *PathData) CurveTo(c1x, c1y, c2x, c2y, x, y float64) *PathData {
	return p.add('C', c1x, c1y, c2x, c2y, x, y)
}

// RCurveTo is the relative form of CurveTo.
func (p *PathData) RCurveTo(c1x, c1y, c2x, c2y, dx, dy float64) *PathData {
	return p.add('c', c1x, c1y, c2x, c2y, dx, dy)
}

// SmoothCurveTo draws a cubic Bezier curve to (x, y) with the first
// control point reflected from the previous curve and (c2x, c2y) as the
// second.
func (p *PathData) SmoothCurveTo(c2x, c2y, x, y float64) *PathData {
	return p.add('S', c2x, c2y, x, y)
}

// RSmoothCurveTo is the relative form of SmoothCurveTo.
func (p *PathData) RSmoothCurveTo(c2x, c2y, dx, dy float64) *PathData {
	return p.add('s', c2x, c2y, dx, dy)
}

// QuadTo draws a quadratic Bezier curve to (x, y) with control point
// (cx, cy).
func (p *PathData) QuadTo(cx, cy, x, y float64) *PathData {
	return p.add('Q', cx, cy, x, y)
}

// RQuadTo is the relative form of QuadTo.
func (p *PathData) RQuadTo(cx, cy, dx, dy float64) *PathData {
	return p.add('q', cx, cy, dx, dy)
}

// SmoothQuadTo draws a quadratic Bezier curve to (x, y) with the control
// point reflected from the previous curve.
func (p *PathData) SmoothQuadTo(x, y float64) *PathData { return p.add('T', x, y) }

// RSmoothQuadTo is the relative form of SmoothQuadTo.
func (p *PathData) RSmoothQuadTo(dx, dy float64) *PathData { return p.add('t', dx, dy) }

// ArcTo draws an elliptical arc to (x, y) with radii rx and ry, the
// ellipse rotated by rot degrees. largeArc and sweep select among the four
// candidate arcs.
func (p *PathData) ArcTo(rx, ry, rot float64, largeArc, sweep bool, x, y float64) *PathData {
	return p.add('A', rx, ry, rot, flag(largeArc), flag(sweep), x, y)
}

// RArcTo is the relative form of ArcTo.
func (p *PathData) RArcTo(rx, ry, rot float64, largeArc, sweep bool, dx, dy float64) *PathData {
	return p.add('a', rx, ry, rot, flag(largeArc), flag(sweep), dx, dy)
}

// ClosePath closes the current sub-path.
func (p *PathData) ClosePath() *PathData { return p.add('Z') }

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// String renders the command sequence in its canonical textual form.
func (p *PathData) String() string {
	var sb strings.Builder
	for i, cmd := range p.cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(cmd.op)
		for _, arg := range cmd.args {
			sb.WriteByte(' ')
			sb.WriteString(formatFloat(arg))
		}
	}
	return sb.String()
}

// PathData is usable directly as the value of the "d" attribute; it is
// emitted verbatim like Raw.
func (*PathData) attrValue() {}

package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathData(t *testing.T) {
	cases := []struct {
		name string
		path *PathData
		want string
	}{
		{
			name: "empty",
			path: NewPath(),
			want: "",
		},
		{
			name: "triangle",
			path: NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(0, 10).LineTo(0, 0).ClosePath(),
			want: "M 0 0 L 10 0 L 0 10 L 0 0 Z",
		},
		{
			name: "relative triangle",
			path: NewPath().MoveTo(0, 0).RLineTo(10, 0).RLineTo(-10, 10).RLineTo(0, -10).ClosePath(),
			want: "M 0 0 l 10 0 l -10 10 l 0 -10 Z",
		},
		{
			name: "horizontal and vertical lines",
			path: NewPath().MoveTo(1, 1).HLineTo(5).VLineTo(5).RHLineTo(-2).RVLineTo(-2),
			want: "M 1 1 H 5 V 5 h -2 v -2",
		},
		{
			name: "cubic curves",
			path: NewPath().MoveTo(0, 0).CurveTo(1, 2, 3, 4, 5, 6).RCurveTo(1, 2, 3, 4, 5, 6),
			want: "M 0 0 C 1 2 3 4 5 6 c 1 2 3 4 5 6",
		},
		{
			name: "smooth and quadratic curves",
			path: NewPath().SmoothCurveTo(1, 2, 3, 4).QuadTo(5, 6, 7, 8).SmoothQuadTo(9, 10).RSmoothCurveTo(1, 2, 3, 4).RQuadTo(5, 6, 7, 8).RSmoothQuadTo(9, 10),
			want: "S 1 2 3 4 Q 5 6 7 8 T 9 10 s 1 2 3 4 q 5 6 7 8 t 9 10",
		},
		{
			name: "arcs",
			path: NewPath().ArcTo(25, 25, -30, false, true, 50, -25).RArcTo(5, 5, 0, true, false, 10, 10),
			want: "A 25 25 -30 0 1 50 -25 a 5 5 0 1 0 10 10",
		},
		{
			name: "fractional coordinates",
			path: NewPath().MoveTo(0.5, 10.25).LineTo(-0.125, 3),
			want: "M 0.5 10.25 L -0.125 3",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.path.String())
		})
	}
}

func TestPathDataAsValue(t *testing.T) {
	p := NewPath().MoveTo(3, 3).LineTo(6, 6).ClosePath()
	e := New(TagPath).Set(AttrD, p)

	assert.Equal(t, `<path d="M 3 3 L 6 6 Z"/>`, e.String())

	// String is a pure rendering of the accumulated commands and may be
	// called repeatedly.
	assert.Equal(t, p.String(), p.String())
}

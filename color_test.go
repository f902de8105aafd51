package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNamed(t *testing.T) {
	t.Run("accepts SVG color keywords", func(t *testing.T) {
		for _, keyword := range []string{"black", "white", "steelblue", "goldenrod"} {
			c, err := NewNamed(keyword)
			require.NoError(t, err, keyword)
			assert.Equal(t, Named(keyword), c)
		}
	})

	t.Run("accepts paint keywords", func(t *testing.T) {
		for _, keyword := range []string{"none", "transparent", "currentColor", "inherit"} {
			_, err := NewNamed(keyword)
			require.NoError(t, err, keyword)
		}
	})

	t.Run("rejects unknown keywords", func(t *testing.T) {
		_, err := NewNamed("blurple")

		var cerr *ColorError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "blurple", cerr.Keyword)
		assert.EqualError(t, err, "svg: unknown color keyword blurple")
	})
}

func TestNewHSL(t *testing.T) {
	c := NewHSL(361, 150, 99)

	assert.Equal(t, HSL{H: 360, S: 100, L: 99}, c)
}

func TestColorFormatting(t *testing.T) {
	cases := []struct {
		name string
		val  Value
		want string
	}{
		{"rgb black", RGB{}, "#000000"},
		{"rgb", RGB{R: 0x1a, G: 0x2b, B: 0x3c}, "#1a2b3c"},
		{"rgb white", RGB{R: 255, G: 255, B: 255}, "#ffffff"},
		{"rgba", RGBA{R: 1, G: 2, B: 3, A: 0.5}, "rgba(1,2,3,0.5)"},
		{"rgba clamps alpha high", RGBA{R: 1, G: 2, B: 3, A: 1.5}, "rgba(1,2,3,1)"},
		{"rgba clamps alpha low", RGBA{R: 1, G: 2, B: 3, A: -0.5}, "rgba(1,2,3,0)"},
		{"hsl", NewHSL(120, 50, 25), "hsl(120,50%,25%)"},
		{"named", Named("gold"), "gold"},
		{"transparent", Transparent, "transparent"},
		{"none", None, "none"},
		{"currentColor", CurrentColor, "currentColor"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatValue(tc.val))
		})
	}
}

package svg

import "golang.org/x/image/colornames"

// RGB is a color attribute value serialized in the canonical "#RRGGBB"
// hexadecimal form. The zero value is black.
type RGB struct {
	R, G, B uint8
}

// RGBA is a color attribute value with an alpha channel, serialized as
// "rgba(r,g,b,a)". Alpha is a ratio in [0, 1]; values outside that range
// are clamped during serialization.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// HSL is a color attribute value serialized as "hsl(h,s%,l%)". Use NewHSL
// to construct one with the component ranges clamped.
type HSL struct {
	H    uint16 // degrees, 0-360
	S, L uint16 // percentages, 0-100
}

// NewHSL returns an HSL color with hue clamped to 360 and saturation and
// lightness clamped to 100.
func NewHSL(h, s, l uint16) HSL {
	return HSL{H: min(h, 360), S: min(s, 100), L: min(l, 100)}
}

// Named is a color keyword attribute value such as "black" or
// "transparent", emitted verbatim. Use NewNamed to construct one with the
// keyword validated.
type Named string

// Keywords that are valid paint values but not colors, so they do not
// appear in the SVG color name table.
var paintKeywords = map[string]bool{
	"none":         true,
	"transparent":  true,
	"currentColor": true,
	"inherit":      true,
}

// NewNamed returns a Named color after checking the keyword against the
// SVG 1.1 color name table, plus the paint keywords none, transparent,
// currentColor and inherit.
func NewNamed(keyword string) (Named, error) {
	if _, ok := colornames.Map[keyword]; ok {
		return Named(keyword), nil
	}
	if paintKeywords[keyword] {
		return Named(keyword), nil
	}
	return "", &ColorError{Keyword: keyword}
}

// Common paint keywords.
var (
	None         = Named("none")
	Transparent  = Named("transparent")
	CurrentColor = Named("currentColor")
)

func (RGB) attrValue()   {}
func (RGBA) attrValue()  {}
func (HSL) attrValue()   {}
func (Named) attrValue() {}

package svg

import "fmt"

// Value is an attribute value. It is a closed union: each implementation
// carries one kind of payload, and the serializer performs exhaustive case
// analysis to produce the textual form. Callers express intent with the
// concrete type (Number, Text, RGB, ...) and the serializer owns the one
// true formatting rule per kind.
type Value interface {
	attrValue()
}

// Number is a numeric attribute value. It serializes in the shortest
// decimal form that round-trips to the same float64, without scientific
// notation.
type Number float64

// Int is an integer attribute value.
type Int int

// Percent is a percentage attribute value, serialized as "N%".
type Percent float64

// Text is a plain string attribute value. Reserved markup characters are
// escaped during serialization.
type Text string

// Bool is a boolean attribute value, serialized as "true" or "false".
type Bool bool

// Raw is a pre-formatted attribute value, emitted verbatim with no
// escaping. The caller is responsible for keeping the output well-formed.
type Raw string

// ViewBox is the value of the viewBox attribute, serialized as
// "min-x min-y width height".
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// Unit is a length unit for Length values.
type Unit int

const (
	UnitNone Unit = iota
	UnitEm
	UnitEx
	UnitPx
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitPercent
)

var unitNames = [...]string{
	UnitNone:    "",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitPx:      "px",
	UnitIn:      "in",
	UnitCm:      "cm",
	UnitMm:      "mm",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitPercent: "%",
}

// String returns the unit suffix, which is empty for UnitNone.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return ""
	}
	return unitNames[u]
}

// Length is a numeric attribute value with a unit, such as "10px" or
// "2.5em".
type Length struct {
	Value float64
	Unit  Unit
}

// Identifier is a validated identifier value for attributes like id and
// href references. Use NewID to construct one.
type Identifier string

// NewID returns an Identifier after checking that every character is a
// letter, digit, '-', '_' or ' '. The error reports the byte index of the
// first offending character.
func NewID(id string) (Identifier, error) {
	for i := 0; i < len(id); i++ {
		if !isIdentByte(id[i]) {
			return "", fmt.Errorf("svg: invalid identifier character %q at index %d", id[i], i)
		}
	}
	return Identifier(id), nil
}

func isIdentByte(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '-' || c == '_' || c == ' '
}

func (Number) attrValue()     {}
func (Int) attrValue()        {}
func (Percent) attrValue()    {}
func (Text) attrValue()       {}
func (Bool) attrValue()       {}
func (Raw) attrValue()        {}
func (ViewBox) attrValue()    {}
func (Length) attrValue()     {}
func (Identifier) attrValue() {}

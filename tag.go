package svg

// Tag identifies the kind of an Element. The set of tags is closed: the
// serializer relies on it to decide the structural rules for each element,
// such as whether the self-closing form may be used.
type Tag int

const (
	TagSVG Tag = iota
	TagG
	TagDefs
	TagSymbol
	TagMask
	TagClipPath
	TagLinearGradient
	TagRadialGradient
	TagText
	TagTSpan
	TagTitle
	TagDesc

	// Shape and reference tags below never carry children.
	TagPath
	TagCircle
	TagEllipse
	TagRect
	TagLine
	TagPolyline
	TagPolygon
	TagUse
	TagStop
	TagAnimate
)

var tagNames = [...]string{
	TagSVG:            "svg",
	TagG:              "g",
	TagDefs:           "defs",
	TagSymbol:         "symbol",
	TagMask:           "mask",
	TagClipPath:       "clipPath",
	TagLinearGradient: "linearGradient",
	TagRadialGradient: "radialGradient",
	TagText:           "text",
	TagTSpan:          "tspan",
	TagTitle:          "title",
	TagDesc:           "desc",
	TagPath:           "path",
	TagCircle:         "circle",
	TagEllipse:        "ellipse",
	TagRect:           "rect",
	TagLine:           "line",
	TagPolyline:       "polyline",
	TagPolygon:        "polygon",
	TagUse:            "use",
	TagStop:           "stop",
	TagAnimate:        "animate",
}

// String returns the tag's SVG element name.
func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "unknown"
	}
	return tagNames[t]
}

// Childless reports whether elements of this tag may never contain child
// elements. Append rejects children on such elements, and the serializer
// always emits them in the self-closing form.
func (t Tag) Childless() bool {
	return t >= TagPath
}

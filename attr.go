package svg

// Attr is an attribute key. The predefined keys cover the common SVG
// attribute vocabulary; Name constructs a key for anything outside it.
//
// The zero value is not a usable key.
type Attr struct {
	name string
}

// Name returns an attribute key for an arbitrary attribute name. It is the
// escape hatch for attributes without a predefined key; the name is emitted
// exactly as given.
func Name(name string) Attr {
	return Attr{name: name}
}

// String returns the attribute name as it appears in the output.
func (a Attr) String() string { return a.name }

var (
	AttrID     = Attr{"id"}
	AttrClass  = Attr{"class"}
	AttrStyle  = Attr{"style"}
	AttrWidth  = Attr{"width"}
	AttrHeight = Attr{"height"}
	AttrX      = Attr{"x"}
	AttrY      = Attr{"y"}
	AttrX1     = Attr{"x1"}
	AttrY1     = Attr{"y1"}
	AttrX2     = Attr{"x2"}
	AttrY2     = Attr{"y2"}
	AttrCx     = Attr{"cx"}
	AttrCy     = Attr{"cy"}
	AttrR      = Attr{"r"}
	AttrRx     = Attr{"rx"}
	AttrRy     = Attr{"ry"}

	AttrViewBox             = Attr{"viewBox"}
	AttrPreserveAspectRatio = Attr{"preserveAspectRatio"}
	AttrXmlns               = Attr{"xmlns"}
	AttrHref                = Attr{"href"}

	AttrD          = Attr{"d"}
	AttrPoints     = Attr{"points"}
	AttrPathLength = Attr{"pathLength"}

	AttrFill            = Attr{"fill"}
	AttrFillOpacity     = Attr{"fill-opacity"}
	AttrFillRule        = Attr{"fill-rule"}
	AttrStroke          = Attr{"stroke"}
	AttrStrokeWidth     = Attr{"stroke-width"}
	AttrStrokeOpacity   = Attr{"stroke-opacity"}
	AttrStrokeLinecap   = Attr{"stroke-linecap"}
	AttrStrokeLinejoin  = Attr{"stroke-linejoin"}
	AttrStrokeDasharray = Attr{"stroke-dasharray"}
	AttrOpacity         = Attr{"opacity"}
	AttrTransform       = Attr{"transform"}
	AttrClipPath        = Attr{"clip-path"}

	AttrOffset            = Attr{"offset"}
	AttrStopColor         = Attr{"stop-color"}
	AttrStopOpacity       = Attr{"stop-opacity"}
	AttrGradientUnits     = Attr{"gradientUnits"}
	AttrGradientTransform = Attr{"gradientTransform"}
	AttrSpreadMethod      = Attr{"spreadMethod"}

	AttrFontFamily = Attr{"font-family"}
	AttrFontSize   = Attr{"font-size"}
	AttrTextAnchor = Attr{"text-anchor"}

	AttrAttributeName = Attr{"attributeName"}
	AttrValues        = Attr{"values"}
	AttrDur           = Attr{"dur"}
	AttrBegin         = Attr{"begin"}
	AttrEnd           = Attr{"end"}
	AttrRepeatCount   = Attr{"repeatCount"}
	AttrFrom          = Attr{"from"}
	AttrTo            = Attr{"to"}
	AttrBy            = Attr{"by"}
)

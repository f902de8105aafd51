package svg

// A StructuralError reports an attempt to append a child to an element
// whose tag never carries children.
type StructuralError struct {
	Tag Tag
}

func (e *StructuralError) Error() string {
	return "svg: cannot append child to childless element <" + e.Tag.String() + ">"
}

// A ColorError reports a color keyword that is not in the SVG color
// vocabulary.
type ColorError struct {
	Keyword string
}

func (e *ColorError) Error() string {
	return "svg: unknown color keyword " + e.Keyword
}

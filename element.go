package svg

// Element is one node of an SVG document tree: a tag, an ordered set of
// attributes and an ordered sequence of child elements. Child order is
// meaningful; it determines paint order in the consuming renderer.
//
// An Element is built through a chain of Set and Append calls, each of
// which mutates the receiver and returns it. A tree under construction is
// assumed to be exclusively owned by the holder of the chain; to branch
// several trees off a shared base, Clone the base first.
type Element struct {
	tag      Tag
	attrs    []attrEntry
	children []*Element
	text     string
}

// Attributes keep insertion order so that serialization is deterministic
// and reproducible across runs.
type attrEntry struct {
	key Attr
	val Value
}

// New returns an element with the given tag, no attributes and no
// children.
func New(tag Tag) *Element {
	return &Element{tag: tag}
}

// Set inserts or replaces the attribute key with the given value and
// returns the receiver. Replacing keeps the key's original position;
// a new key is appended after the existing ones. No semantic validation
// is performed: whether the tag supports the attribute is the caller's
// concern.
func (e *Element) Set(key Attr, val Value) *Element {
	for i := range e.attrs {
		if e.attrs[i].key == key {
			e.attrs[i].val = val
			return e
		}
	}
	e.attrs = append(e.attrs, attrEntry{key: key, val: val})
	return e
}

// Append adds child as the last child of the element and returns the
// receiver. If the element's tag is childless, Append returns a
// StructuralError and the element is left unchanged; this is surfaced at
// the call site rather than silently dropped so the offending construction
// code can be fixed.
func (e *Element) Append(child *Element) (*Element, error) {
	if e.tag.Childless() {
		return e, &StructuralError{Tag: e.tag}
	}
	e.children = append(e.children, child)
	return e, nil
}

// MustAppend is like Append but panics on a StructuralError. It is a
// convenience for fluent construction of trees whose tags are statically
// known to be containers.
func (e *Element) MustAppend(children ...*Element) *Element {
	for _, child := range children {
		if _, err := e.Append(child); err != nil {
			panic(err)
		}
	}
	return e
}

// SetText sets the element's inner text content and returns the receiver.
// The text is escaped during serialization. An element with text always
// serializes in container form, even with no children.
func (e *Element) SetText(text string) *Element {
	e.text = text
	return e
}

// Clone returns a deep copy of the element. The copy shares no structure
// with the original, so the two may be extended independently.
func (e *Element) Clone() *Element {
	c := &Element{tag: e.tag, text: e.text}
	if len(e.attrs) > 0 {
		c.attrs = make([]attrEntry, len(e.attrs))
		copy(c.attrs, e.attrs)
	}
	if len(e.children) > 0 {
		c.children = make([]*Element, len(e.children))
		for i, child := range e.children {
			c.children[i] = child.Clone()
		}
	}
	return c
}

// Tag returns the element's tag.
func (e *Element) Tag() Tag { return e.tag }

// Attr returns the value stored for key and whether the key is present.
func (e *Element) Attr(key Attr) (Value, bool) {
	for i := range e.attrs {
		if e.attrs[i].key == key {
			return e.attrs[i].val, true
		}
	}
	return nil, false
}

// Attrs returns the element's attribute keys in insertion order.
func (e *Element) Attrs() []Attr {
	keys := make([]Attr, len(e.attrs))
	for i := range e.attrs {
		keys[i] = e.attrs[i].key
	}
	return keys
}

// Children returns the element's children in order. The returned slice is
// the element's own storage and must not be modified.
func (e *Element) Children() []*Element { return e.children }

// Text returns the element's inner text content.
func (e *Element) Text() string { return e.text }

// String returns the compact serialized form of the element. It is
// shorthand for Marshal with no options.
func (e *Element) String() string {
	out, err := Marshal(e)
	if err != nil {
		return ""
	}
	return string(out)
}

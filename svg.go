package svg

import (
	"bytes"
	"fmt"
	"io"
)

// Marshal returns the serialized form of the element tree rooted at e.
//
// Serialization is deterministic: attributes appear in insertion order and
// children in append order. It never mutates the tree, so the same tree
// may be marshaled repeatedly with identical results.
func Marshal(e *Element, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, opts...)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encoder writes serialized element trees to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
//
// Functional options can be provided to configure the output, such as
// line breaking and indentation with the Indent option.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the serialized form of the element tree rooted at e to the
// stream. Serialization itself is total over valid trees; Encode fails
// only for a nil element, a bad option, or a writer error.
func (enc *Encoder) Encode(e *Element) error {
	if e == nil {
		return fmt.Errorf("svg: Encode(nil element)")
	}

	o := options{}
	for _, opt := range enc.opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	f := newFormatter(enc.w, &o)
	return f.format(e)
}

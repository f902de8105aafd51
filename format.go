package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// formatter writes an element tree to an output stream.
type formatter struct {
	w      io.Writer
	indent string
	depth  int
}

// newFormatter returns a new formatter that writes to w. An empty indent
// string selects the compact, single-line form.
func newFormatter(w io.Writer, opts *options) *formatter {
	f := &formatter{w: w}
	if opts.indent != nil && *opts.indent > 0 {
		f.indent = strings.Repeat(" ", *opts.indent)
	}
	return f
}

// format writes the serialized form of the element tree rooted at e.
func (f *formatter) format(e *Element) error {
	return f.writeElement(e, f.indent == "")
}

func (f *formatter) write(s string) error {
	_, err := f.w.Write([]byte(s))
	return err
}

func (f *formatter) writeIndent() error {
	if f.indent == "" {
		return nil
	}
	for i := 0; i < f.depth; i++ {
		if err := f.write(f.indent); err != nil {
			return err
		}
	}
	return nil
}

// writeElement emits e depth-first in pre-order. When inline is set, the
// whole subtree is written without indentation or line breaks; this is
// forced for text-bearing elements, where a line break would become part
// of the character data.
func (f *formatter) writeElement(e *Element, inline bool) error {
	if !inline {
		if err := f.writeIndent(); err != nil {
			return err
		}
	}

	name := e.tag.String()
	if err := f.write("<" + name); err != nil {
		return err
	}
	for _, a := range e.attrs {
		if err := f.write(" " + a.key.name + `="` + formatValue(a.val) + `"`); err != nil {
			return err
		}
	}

	if len(e.children) == 0 && e.text == "" {
		if e.tag.Childless() {
			return f.write("/>")
		}
		return f.write("></" + name + ">")
	}

	if err := f.write(">"); err != nil {
		return err
	}
	if e.text != "" {
		if err := f.write(escapeText(e.text)); err != nil {
			return err
		}
	}

	if childInline := inline || e.text != ""; childInline {
		for _, child := range e.children {
			if err := f.writeElement(child, true); err != nil {
				return err
			}
		}
	} else if len(e.children) > 0 {
		if err := f.write("\n"); err != nil {
			return err
		}
		f.depth++
		for _, child := range e.children {
			if err := f.writeElement(child, false); err != nil {
				return err
			}
			if err := f.write("\n"); err != nil {
				return err
			}
		}
		f.depth--
		if err := f.writeIndent(); err != nil {
			return err
		}
	}

	return f.write("</" + name + ">")
}

// textEscaper rewrites the characters reserved in attribute values and
// character data.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	`"`, "&quot;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// formatFloat renders a float in the shortest decimal form that parses
// back to the same value. The 'f' format keeps typical magnitudes free of
// scientific notation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatValue renders an attribute value per its kind. The switch is
// exhaustive over the Value union.
func formatValue(v Value) string {
	switch v := v.(type) {
	case Number:
		return formatFloat(float64(v))
	case Int:
		return strconv.Itoa(int(v))
	case Percent:
		return formatFloat(float64(v)) + "%"
	case Text:
		return escapeText(string(v))
	case Bool:
		return strconv.FormatBool(bool(v))
	case Raw:
		return string(v)
	case ViewBox:
		return formatFloat(v.MinX) + " " + formatFloat(v.MinY) + " " +
			formatFloat(v.Width) + " " + formatFloat(v.Height)
	case Length:
		return formatFloat(v.Value) + v.Unit.String()
	case Identifier:
		return string(v)
	case RGB:
		return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
	case RGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", v.R, v.G, v.B, formatFloat(clamp01(v.A)))
	case HSL:
		return fmt.Sprintf("hsl(%d,%d%%,%d%%)", v.H, v.S, v.L)
	case Named:
		return string(v)
	case *PathData:
		return v.String()
	case nil:
		return ""
	default:
		// Unreachable: Value is a closed union.
		return ""
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

/*
Package svg provides a small, idiomatic Go interface for building SVG
documents in memory and serializing them to text. The serialization half of
the API is designed to be familiar to Go developers, closely mirroring the
standard `encoding/json` package.

The package has three parts: an element tree model, a serializer, and a
helper for assembling path definition strings.

1. Building an Element Tree

An Element is created from a Tag and grown through chained builder calls.
Set inserts or replaces an attribute; Append adds a child element. Tags and
attribute keys are closed vocabularies, so a typo is a compile error rather
than silently broken output.

Example of building a triangle inside a group:

	triangle := svg.New(svg.TagPath).
		Set(svg.AttrStrokeWidth, svg.Number(1)).
		Set(svg.AttrStroke, svg.RGB{}).
		Set(svg.AttrFill, svg.Transparent).
		Set(svg.AttrD, svg.NewPath().
			MoveTo(0, 0).
			LineTo(10, 0).
			LineTo(0, 10).
			LineTo(0, 0).
			ClosePath())

	group, err := svg.New(svg.TagG).Append(triangle)
	if err != nil {
		// handle error
	}

Append returns a StructuralError when the receiver's tag can never carry
children (for example a path); the receiver is left unchanged. MustAppend is
available for construction code that knows the tag is a container.

2. Serializing

The Marshal function renders an element tree to its textual form. Output is
compact by default; the Indent option adds cosmetic line breaks that do not
change the parsed structure.

	out, err := svg.Marshal(group)
	if err != nil {
		// handle error
	}
	// out is []byte(`<g><path stroke-width="1" ... /></g>`)

An Encoder streams the same output to an io.Writer. Serialization never
mutates the tree, so a tree may be reused and re-serialized any number of
times.

Attribute values are typed (Number, Text, Bool, colors, ViewBox, Length and
so on) so that the serializer owns the one true formatting rule per kind:
numbers render in their shortest round-trippable decimal form, text is
escaped, RGB colors render as "#RRGGBB". Raw bypasses escaping entirely for
callers that have pre-formatted a value themselves.

3. Path Data

PathData accumulates path drawing commands (MoveTo, LineTo, CurveTo, ArcTo,
ClosePath and their relative variants) and renders them as the canonical
space-separated command string used as the value of the "d" attribute.

Parsing SVG text back into a tree, schema validation, and rendering to
pixels are explicitly out of scope.
*/
package svg

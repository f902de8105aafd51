package svg

import "fmt"

// options holds the resolved serialization configuration.
type options struct {
	indent *int
}

// Option configures serialization. Options are applied in order; a failing
// option aborts the operation that received it.
type Option func(*options) error

// Indent returns an Option that breaks the output into lines, indenting
// each nesting level by n spaces. Indent(0) restores the default compact
// output. The indentation is cosmetic only: it is never inserted where it
// would change the parsed document, so elements with inner text are
// serialized inline.
//
// Without this option the output is a single line with no whitespace
// between elements.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("svg: indent must not be negative")
		}
		o.indent = &n
		return nil
	}
}

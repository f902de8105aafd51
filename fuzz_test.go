package svg_test

import (
	"strings"
	"testing"

	"github.com/KimNorgaard/go-svg"
	"github.com/stretchr/testify/require"
)

// FuzzTextEscaping checks two invariants of the text escaper: escaped
// character data never contains a raw reserved character, and reversing
// the escape recovers the original text exactly.
func FuzzTextEscaping(f *testing.F) {
	f.Add("plain text")
	f.Add(`"quoted"`)
	f.Add("<tag>&entity;")
	f.Add("&amp; already escaped")
	f.Add("")
	f.Add("mixed \" < & > ' content")
	f.Add("unicode ✓ ∀x")

	f.Fuzz(func(t *testing.T, s string) {
		out, err := svg.Marshal(svg.New(svg.TagTitle).SetText(s))
		require.NoError(t, err)

		body, ok := strings.CutPrefix(string(out), "<title>")
		require.True(t, ok)
		body, ok = strings.CutSuffix(body, "</title>")
		require.True(t, ok)

		require.NotContains(t, body, "<")
		require.NotContains(t, body, `"`)

		// Reverse the escape. Replacing &lt; and &quot; before &amp; is
		// safe: every literal '&' in the escaped text starts an "&amp;",
		// so no other escape sequence can span one.
		unescaped := strings.ReplaceAll(body, "&lt;", "<")
		unescaped = strings.ReplaceAll(unescaped, "&quot;", `"`)
		unescaped = strings.ReplaceAll(unescaped, "&amp;", "&")
		require.Equal(t, s, unescaped)
	})
}

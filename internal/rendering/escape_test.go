package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML_SpecialCharacters(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a & b", "a &amp; b"},
		{"<div>", "&lt;div&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&#39;s"},
		{`<a href="x">&'</a>`, "&lt;a href=&quot;x&quot;&gt;&amp;&#39;&lt;/a&gt;"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, EscapeHTML(tc.input), tc.input)
	}
}

func TestEscapeHTML_PreservesUnicode(t *testing.T) {
	assert.Equal(t, "Grew résumé reach — 38%", EscapeHTML("Grew résumé reach — 38%"))
}

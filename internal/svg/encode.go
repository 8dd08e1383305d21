package svg

import (
	"encoding/base64"
	"strings"
)

// Markup serializes the rendered icon into a complete <svg> element.
func Markup(r Rendered) string {
	var b strings.Builder
	b.WriteString("<svg")
	for _, attr := range r.Attributes {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(r.Body)
	b.WriteString("</svg>")
	return b.String()
}

// Inline prepares markup for embedding inside a double-quoted value: every
// double quote becomes a single quote, and the xmlns declaration is added
// after the opening tag name when the namespace URI is absent.
func Inline(markup string) string {
	inline := strings.ReplaceAll(markup, `"`, `'`)
	if !strings.Contains(inline, Namespace) {
		inline = strings.Replace(inline, "<svg ", "<svg xmlns='"+Namespace+"' ", 1)
	}
	return inline
}

// DataURI wraps markup in a CSS url() holding a base64 data URI.
func DataURI(markup string) string {
	payload := base64.StdEncoding.EncodeToString([]byte(markup))
	return `url("data:image/svg+xml;base64,` + payload + `")`
}

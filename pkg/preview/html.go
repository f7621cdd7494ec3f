package preview

import "strings"

// Colour classes for HTML output, one per highlighted token class.
var htmlClasses = map[Class]string{
	Key:     "text-[#9cdcfe]",
	String:  "text-[#ce9178]",
	Number:  "text-[#b5cea8]",
	Boolean: "text-[#569cd6]",
	Null:    "text-[#569cd6]",
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// HighlightHTML returns text with & < > escaped and keys, strings, numbers,
// booleans and nulls wrapped in <span class="..."> elements.
func HighlightHTML(text string) string {
	var b strings.Builder
	for _, tok := range Tokenize(text) {
		escaped := htmlEscaper.Replace(tok.Text)
		cls, ok := htmlClasses[tok.Class]
		if !ok {
			b.WriteString(escaped)
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(cls)
		b.WriteString(`">`)
		b.WriteString(escaped)
		b.WriteString(`</span>`)
	}
	return b.String()
}

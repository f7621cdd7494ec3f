// Package richtext holds markup produced by the document tools. Fragments
// are opaque: nothing here reads them back into a document.
package richtext

import (
	"html"
	"strings"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// Inserter receives markup fragments.
type Inserter interface {
	Insert(markup string)
}

// InserterFunc adapts a function to Inserter.
type InserterFunc func(markup string)

// Insert calls f(markup).
func (f InserterFunc) Insert(markup string) { f(markup) }

// Surface is an append-only rich text area.
type Surface struct {
	fragments []string
}

// Insert appends markup. Empty fragments are ignored.
func (s *Surface) Insert(markup string) {
	if markup == "" {
		return
	}
	s.fragments = append(s.fragments, markup)
}

// Fragments returns a copy of the inserted fragments in order.
func (s *Surface) Fragments() []string {
	return append([]string(nil), s.fragments...)
}

// Len returns the number of fragments.
func (s *Surface) Len() int { return len(s.fragments) }

// HTML returns all fragments joined.
func (s *Surface) HTML() string {
	return strings.Join(s.fragments, "")
}

const (
	tableStyle  = "border-collapse: collapse; width: 100%; border: 1px solid #ddd;"
	headerStyle = "border: 1px solid #ddd; padding: 8px; background: #f8f9fa;"
	cellStyle   = "border: 1px solid #ddd; padding: 8px;"
)

// TableFragment renders the root items as an HTML table. Columns are the
// keys of the first object; items that are not objects produce empty rows.
// Nested values are shown as compact JSON. All text is escaped.
func TableFragment(root models.Root) string {
	headers := tableHeaders(root)

	var b strings.Builder
	b.WriteString(`<table style="` + tableStyle + `"><thead><tr>`)
	for _, h := range headers {
		b.WriteString(`<th style="` + headerStyle + `">` + html.EscapeString(h) + `</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)
	for _, item := range root {
		b.WriteString(`<tr>`)
		for _, h := range headers {
			b.WriteString(`<td style="` + cellStyle + `">` + html.EscapeString(cellText(item, h)) + `</td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

func tableHeaders(root models.Root) []string {
	for _, item := range root {
		if item.Kind != models.KindObject {
			continue
		}
		var headers []string
		seen := map[string]bool{}
		for _, p := range item.Properties {
			if p.Key == "" || seen[p.Key] {
				continue
			}
			seen[p.Key] = true
			headers = append(headers, p.Key)
		}
		return headers
	}
	return nil
}

func cellText(item *models.Node, key string) string {
	if item.Kind != models.KindObject {
		return ""
	}
	var match *models.Node
	for _, p := range item.Properties {
		if p.Key == key {
			match = p
		}
	}
	if match == nil {
		return ""
	}
	if match.Kind.IsScalar() {
		if match.Kind == models.KindNumber {
			lit, _ := match.Value.AsNumber()
			return lit
		}
		return match.Value.Text()
	}
	text, err := codec.Compact(codec.Encode(match))
	if err != nil {
		return ""
	}
	return text
}

// Package preview renders a document as canonical JSON text and classifies
// that text for highlighted display.
package preview

import (
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// Placeholder is shown instead of the preview when the document cannot be
// formatted.
const Placeholder = "Error generating JSON preview"

// Render returns the canonical two-space-indented JSON text of root. It never
// fails: formatting errors yield Placeholder.
func Render(root models.Root) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = Placeholder
		}
	}()
	text, err := codec.FormatRoot(root)
	if err != nil {
		return Placeholder
	}
	return text
}

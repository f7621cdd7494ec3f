package preview

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStats counts changed lines.
type DiffStats struct {
	Added   int
	Removed int
}

// Diff returns a line diff from before to after. Each line is prefixed with
// "+ ", "- " or "  ".
func Diff(before, after string) (string, DiffStats) {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	var stats DiffStats
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffInsert:
				stats.Added++
			case diffpatch.DiffDelete:
				stats.Removed++
			}
			out.WriteString(prefix)
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}
	return out.String(), stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\n")
	}
	return lines
}

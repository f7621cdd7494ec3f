package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/codec"
)

// OutputFormat names a document rendering accepted by --output.
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatLines OutputFormat = "jsonl"
	FormatYAML  OutputFormat = "yaml"
)

// OutputFormats lists the accepted formats in help order.
var OutputFormats = []OutputFormat{FormatJSON, FormatLines, FormatYAML}

// TableFormatter writes aligned columns with a rule under the header.
type TableFormatter struct {
	writer  *tabwriter.Writer
	columns []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// Header writes the column names. The rule is as wide as the names plus
// padding so narrow summaries stay narrow.
func (t *TableFormatter) Header(columns ...string) {
	t.columns = columns
	width := 0
	for _, c := range columns {
		width += len(c) + 2
	}
	if width < 40 {
		width = 40
	}
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	fmt.Fprintln(t.writer, strings.Repeat("-", width))
}

// Row writes one row, padding short rows to the header width.
func (t *TableFormatter) Row(values ...string) {
	for len(values) < len(t.columns) {
		values = append(values, "")
	}
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults writes an encoded JSON value in the requested format. Every
// format keeps object key order. jsonl writes one compact element per line
// and falls back to a single line for non-array values.
func OutputResults(w io.Writer, format string, data any) error {
	switch OutputFormat(format) {
	case FormatJSON:
		text, err := codec.Format(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, text)
		return err

	case FormatLines:
		items, ok := data.([]any)
		if !ok {
			items = []any{data}
		}
		for _, item := range items {
			line, err := codec.Compact(item)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil

	case FormatYAML:
		out, err := codec.YAML(data)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatBytes renders a file size as B, KB or MB.
func FormatBytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

// TruncateString shortens s to at most maxLen runes, ending in "..." when
// there is room for it.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// Pluralize returns "1 item" or "3 items".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

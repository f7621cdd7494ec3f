package codec

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// Indent is the indentation unit of canonical output.
const Indent = "  "

// Format renders a JSON value as canonical text: two-space indentation,
// ": " between keys and values, empty containers as [] and {}, and no HTML
// escaping. The output has no trailing newline.
func Format(v any) (string, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v, Indent, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatRoot encodes the root collection and renders it with Format.
func FormatRoot(root models.Root) (string, error) {
	return Format(EncodeRoot(root))
}

// Compact renders a JSON value without insignificant whitespace.
func Compact(v any) (string, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v, "", 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeValue(b *bytes.Buffer, v any, indent string, depth int) error {
	switch x := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(x))
	case json.Number:
		if _, err := models.NumberLiteral(string(x)); err != nil {
			return fmt.Errorf("invalid number %q", string(x))
		}
		b.WriteString(string(x))
	case string:
		return writeString(b, x)
	case []any:
		if len(x) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			if err := writeValue(b, item, indent, depth+1); err != nil {
				return err
			}
		}
		newline(b, indent, depth)
		b.WriteByte(']')
	case *Object:
		return writeMembers(b, x.Members(), indent, depth)
	case map[string]any:
		return writeMembers(b, sortedMembers(x), indent, depth)
	default:
		n, ok := numberFromGo(v)
		if !ok {
			return fmt.Errorf("cannot encode %T as JSON", v)
		}
		b.WriteString(string(n))
	}
	return nil
}

func writeMembers(b *bytes.Buffer, members []Member, indent string, depth int) error {
	if len(members) == 0 {
		b.WriteString("{}")
		return nil
	}
	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		newline(b, indent, depth+1)
		if err := writeString(b, m.Key); err != nil {
			return err
		}
		b.WriteByte(':')
		if indent != "" {
			b.WriteByte(' ')
		}
		if err := writeValue(b, m.Value, indent, depth+1); err != nil {
			return err
		}
	}
	newline(b, indent, depth)
	b.WriteByte('}')
	return nil
}

// writeString quotes s without HTML escaping, so "<b>&</b>" stays readable.
func writeString(b *bytes.Buffer, s string) error {
	var quoted bytes.Buffer
	enc := json.NewEncoder(&quoted)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	b.Write(bytes.TrimSuffix(quoted.Bytes(), []byte("\n")))
	return nil
}

func newline(b *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}

func sortedMembers(m map[string]any) []Member {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	members := make([]Member, len(keys))
	for i, k := range keys {
		members[i] = Member{Key: k, Value: m[k]}
	}
	return members
}

// numberFromGo converts Go numeric types into a JSON number literal.
func numberFromGo(v any) (json.Number, bool) {
	switch x := v.(type) {
	case int:
		return json.Number(strconv.FormatInt(int64(x), 10)), true
	case int8:
		return json.Number(strconv.FormatInt(int64(x), 10)), true
	case int16:
		return json.Number(strconv.FormatInt(int64(x), 10)), true
	case int32:
		return json.Number(strconv.FormatInt(int64(x), 10)), true
	case int64:
		return json.Number(strconv.FormatInt(x, 10)), true
	case uint:
		return json.Number(strconv.FormatUint(uint64(x), 10)), true
	case uint8:
		return json.Number(strconv.FormatUint(uint64(x), 10)), true
	case uint16:
		return json.Number(strconv.FormatUint(uint64(x), 10)), true
	case uint32:
		return json.Number(strconv.FormatUint(uint64(x), 10)), true
	case uint64:
		return json.Number(strconv.FormatUint(x, 10)), true
	case float32:
		lit, _ := models.NumberValue(float64(x)).AsNumber()
		return json.Number(lit), true
	case float64:
		lit, _ := models.NumberValue(x).AsNumber()
		return json.Number(lit), true
	}
	return "", false
}

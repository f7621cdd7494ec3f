package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scalar is the payload of a String, Number, Boolean or Null node. It is a
// tagged union: the kind decides which accessor returns a meaningful value.
//
// Number payloads keep the last valid JSON number literal. Text typed by the
// user that is not a number yet is held separately as pending input and never
// reaches the encoder.
type Scalar struct {
	kind    Kind
	text    string
	pending string
	flag    bool
}

// StringValue returns a String payload.
func StringValue(s string) Scalar {
	return Scalar{kind: KindString, text: s}
}

// NumberValue returns a Number payload for f. NaN and infinities have no JSON
// representation and become zero.
func NumberValue(f float64) Scalar {
	return Scalar{kind: KindNumber, text: formatNumber(f)}
}

// NumberLiteral returns a Number payload for a JSON number literal such as
// "12", "-0.5" or "1e9". The literal is kept verbatim.
func NumberLiteral(text string) (Scalar, error) {
	text = strings.TrimSpace(text)
	if !isNumberLiteral(text) {
		return Scalar{}, fmt.Errorf("%w: %q is not a JSON number", ErrTypeMismatch, text)
	}
	return Scalar{kind: KindNumber, text: text}, nil
}

// BoolValue returns a Boolean payload.
func BoolValue(b bool) Scalar {
	return Scalar{kind: KindBoolean, flag: b}
}

// NullValue returns the Null payload.
func NullValue() Scalar {
	return Scalar{kind: KindNull}
}

// DefaultScalar returns the default payload for a scalar kind: "", 0, false
// or null. Container kinds get the zero Scalar.
func DefaultScalar(k Kind) Scalar {
	switch k {
	case KindString:
		return StringValue("")
	case KindNumber:
		return Scalar{kind: KindNumber, text: "0"}
	case KindBoolean:
		return BoolValue(false)
	case KindNull:
		return NullValue()
	}
	return Scalar{}
}

// Kind returns the kind this payload was built for.
func (s Scalar) Kind() Kind { return s.kind }

// AsString returns the string payload.
func (s Scalar) AsString() (string, bool) {
	return s.text, s.kind == KindString
}

// AsNumber returns the number literal. A payload that never held a valid
// literal reports "0".
func (s Scalar) AsNumber() (string, bool) {
	if s.kind != KindNumber {
		return "", false
	}
	if s.text == "" {
		return "0", true
	}
	return s.text, true
}

// Float64 returns the numeric payload as a float64.
func (s Scalar) Float64() (float64, bool) {
	lit, ok := s.AsNumber()
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AsBool returns the boolean payload.
func (s Scalar) AsBool() (bool, bool) {
	return s.flag, s.kind == KindBoolean
}

// IsNull reports whether this is the Null payload.
func (s Scalar) IsNull() bool { return s.kind == KindNull }

// Pending returns numeric input that has not parsed yet, if any.
func (s Scalar) Pending() string { return s.pending }

// WithPending returns a copy of a Number payload holding raw input that is
// not yet a valid number. The last valid literal is kept for encoding.
func (s Scalar) WithPending(raw string) Scalar {
	if s.kind != KindNumber {
		return s
	}
	s.pending = raw
	return s
}

// Text renders the payload for display. Pending numeric input wins over the
// stored literal so the editor shows what the user typed.
func (s Scalar) Text() string {
	switch s.kind {
	case KindString:
		return s.text
	case KindNumber:
		if s.pending != "" {
			return s.pending
		}
		lit, _ := s.AsNumber()
		return lit
	case KindBoolean:
		return strconv.FormatBool(s.flag)
	case KindNull:
		return "null"
	}
	return ""
}

// Equal reports whether two payloads encode to the same JSON value.
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindString:
		return s.text == o.text
	case KindNumber:
		a, _ := s.AsNumber()
		b, _ := o.AsNumber()
		return a == b
	case KindBoolean:
		return s.flag == o.flag
	}
	return true
}

// isNumberLiteral checks text against the JSON number grammar:
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func isNumberLiteral(text string) bool {
	i, n := 0, len(text)
	digits := func() int {
		start := i
		for i < n && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		return i - start
	}

	if i < n && text[i] == '-' {
		i++
	}
	switch {
	case i < n && text[i] == '0':
		i++
	case digits() == 0:
		return false
	}
	if i < n && text[i] == '.' {
		i++
		if digits() == 0 {
			return false
		}
	}
	if i < n && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < n && (text[i] == '+' || text[i] == '-') {
			i++
		}
		if digits() == 0 {
			return false
		}
	}
	return i == n
}

func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

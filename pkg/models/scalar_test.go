package models

import (
	"errors"
	"testing"
)

func TestNumberLiteral(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "12", want: "12"},
		{input: " -0.5 ", want: "-0.5"},
		{input: "1e9", want: "1e9"},
		{input: "1.5E-3", want: "1.5E-3"},
		{input: "", wantErr: true},
		{input: "-", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "01", wantErr: true},
		{input: "1.", wantErr: true},
		{input: "-01.5", wantErr: true},
		{input: ".5", wantErr: true},
		{input: "1e", wantErr: true},
		{input: "1e+", wantErr: true},
		{input: "+1", wantErr: true},
		{input: "-0", want: "-0"},
		{input: "0.25e+10", want: "0.25e+10"},
		{input: "\"1\"", wantErr: true},
		{input: "true", wantErr: true},
		{input: "1 2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NumberLiteral(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.input)
				}
				if !errors.Is(err, ErrTypeMismatch) {
					t.Errorf("Expected ErrTypeMismatch, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if lit, _ := got.AsNumber(); lit != tt.want {
				t.Errorf("Expected literal %q, got %q", tt.want, lit)
			}
		})
	}
}

func TestNumberValueFormatting(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{1000000, "1000000"},
		{1e21, "1e+21"},
		{0.0000001, "1e-07"},
	}
	for _, tt := range tests {
		if lit, _ := NumberValue(tt.in).AsNumber(); lit != tt.want {
			t.Errorf("NumberValue(%v): expected %q, got %q", tt.in, tt.want, lit)
		}
	}
}

func TestScalarPendingKeepsLastValidLiteral(t *testing.T) {
	s := NumberValue(7).WithPending("7e")

	if s.Text() != "7e" {
		t.Errorf("Expected display text to show pending input, got %q", s.Text())
	}
	if lit, _ := s.AsNumber(); lit != "7" {
		t.Errorf("Expected encoded literal to stay 7, got %q", lit)
	}

	str := StringValue("x").WithPending("ignored")
	if str.Pending() != "" {
		t.Error("Expected pending input to be ignored for non-number payloads")
	}
}

func TestScalarAccessorsRespectKind(t *testing.T) {
	if _, ok := StringValue("a").AsNumber(); ok {
		t.Error("Expected AsNumber to fail on a string payload")
	}
	if _, ok := NumberValue(1).AsString(); ok {
		t.Error("Expected AsString to fail on a number payload")
	}
	if b, ok := BoolValue(true).AsBool(); !ok || !b {
		t.Error("Expected AsBool to return true")
	}
	if !NullValue().IsNull() {
		t.Error("Expected IsNull on null payload")
	}
	if !StringValue("a").Equal(StringValue("a")) || StringValue("1").Equal(NumberValue(1)) {
		t.Error("Expected Equal to compare kind and payload")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got, err := ParseKind("Bool"); err != nil || got != KindBoolean {
		t.Errorf("Expected bool alias to parse, got %v, %v", got, err)
	}
	if _, err := ParseKind("integer"); err == nil {
		t.Error("Expected error for unknown kind")
	}
	if KindNull.Next() != KindString || KindString.Prev() != KindNull {
		t.Error("Expected kind cycling to wrap around")
	}
}

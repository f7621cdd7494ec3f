package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// DuplicateKeyHandler is called for every object key that repeats within the
// same object. path is the JSON Pointer of the object holding the key.
type DuplicateKeyHandler func(path, key string)

type parseConfig struct {
	onDuplicate DuplicateKeyHandler
}

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

// WithDuplicateKeyHandler reports keys that collapse because they repeat
// within one object.
func WithDuplicateKeyHandler(fn DuplicateKeyHandler) ParseOption {
	return func(c *parseConfig) { c.onDuplicate = fn }
}

// Parse decodes JSON text into the ordered value domain of this package.
// Object keys keep their source order; a repeated key keeps its first
// position and its last value. Invalid input and trailing data fail with
// models.ErrInvalidJSON.
func Parse(data []byte, opts ...ParseOption) (any, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", models.ErrInvalidJSON)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidJSON, syntaxDetail(data))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	p := &parser{dec: dec, cfg: cfg}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	v, err := p.value(tok, "")
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", models.ErrInvalidJSON)
	}
	return v, nil
}

type parser struct {
	dec *json.Decoder
	cfg parseConfig
}

func (p *parser) next() (json.Token, error) {
	tok, err := p.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected end of input", models.ErrInvalidJSON)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidJSON, err)
	}
	return tok, nil
}

func (p *parser) value(tok json.Token, path string) (any, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return p.object(path)
		case '[':
			return p.array(path)
		}
		return nil, fmt.Errorf("%w: unexpected %q at %s", models.ErrInvalidJSON, rune(v), pointer(path))
	case string:
		return v, nil
	case json.Number:
		if _, err := models.NumberLiteral(string(v)); err != nil {
			return nil, fmt.Errorf("%w: invalid number %s at %s", models.ErrInvalidJSON, string(v), pointer(path))
		}
		return v, nil
	case float64:
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case bool:
		return v, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v at %s", models.ErrInvalidJSON, tok, pointer(path))
}

func (p *parser) object(path string) (any, error) {
	obj := NewObject()
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key must be a string at %s", models.ErrInvalidJSON, pointer(path))
		}
		if obj.Has(key) && p.cfg.onDuplicate != nil {
			p.cfg.onDuplicate(pointer(path), key)
		}
		vt, err := p.next()
		if err != nil {
			return nil, err
		}
		v, err := p.value(vt, path+"/"+escapePointer(key))
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
}

func (p *parser) array(path string) (any, error) {
	arr := []any{}
	for i := 0; ; i++ {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}
		v, err := p.value(tok, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func pointer(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

// escapePointer escapes a key for use as a JSON Pointer segment (RFC 6901).
func escapePointer(key string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(key)
}

// syntaxDetail extracts a readable message from the decoder for invalid input.
func syntaxDetail(data []byte) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err.Error()
	}
	return "malformed document"
}

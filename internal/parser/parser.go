// Package parser decodes locale translation documents.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/finops-claw-gang/keycheck/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseFile reads and decodes the document at path. Any read, decode or
// shape failure is returned as a *domain.MalformedDocumentError.
func ParseFile(locale, path string) (domain.LocaleDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.LocaleDocument{}, &domain.MalformedDocumentError{Locale: locale, Path: path, Err: err}
	}
	m, err := Parse(data)
	if err != nil {
		return domain.LocaleDocument{}, &domain.MalformedDocumentError{Locale: locale, Path: path, Err: err}
	}
	return domain.LocaleDocument{Locale: locale, Path: path, Data: m}, nil
}

// Parse decodes data as a UTF-8 JSON document whose root is an object.
// A leading byte order mark is ignored.
func Parse(data []byte) (map[string]any, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, errors.New("invalid utf-8")
	}

	// Numbers stay json.Number so values outside the float64 range decode.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid json: trailing data after document")
	}
	m, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("root must be an object, got %s", kind(root))
	}
	return m, nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

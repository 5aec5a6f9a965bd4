package domain

import (
	"fmt"
	"strings"
)

// MissingResourceError lists every expected locale document that does not
// exist. It is returned once, after all locales were checked.
type MissingResourceError struct {
	Missing []Resource
}

func (e *MissingResourceError) Error() string {
	paths := make([]string, len(e.Missing))
	for i, r := range e.Missing {
		paths[i] = r.Path
	}
	return fmt.Sprintf("missing translation files: %s", strings.Join(paths, ", "))
}

// Paths returns the missing paths in locale order.
func (e *MissingResourceError) Paths() []string {
	paths := make([]string, len(e.Missing))
	for i, r := range e.Missing {
		paths[i] = r.Path
	}
	return paths
}

// MalformedDocumentError reports a document that exists but cannot be
// decoded as a UTF-8 JSON object.
type MalformedDocumentError struct {
	Locale string
	Path   string
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document %s (locale %s): %v", e.Path, e.Locale, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// ReferenceNotFoundError reports that the configured reference locale was
// not among the loaded documents.
type ReferenceNotFoundError struct {
	Reference string
	Loaded    []string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("reference locale %q not found among loaded locales [%s]",
		e.Reference, strings.Join(e.Loaded, ", "))
}

// KeyMismatchError carries every locale whose key set differs from the
// reference.
type KeyMismatchError struct {
	Reference  Resource
	Mismatches []LocaleDiff
}

func (e *KeyMismatchError) Error() string {
	locales := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		locales[i] = m.Locale
	}
	return fmt.Sprintf("keys mismatch against %s in: %s", e.Reference.Locale, strings.Join(locales, ", "))
}

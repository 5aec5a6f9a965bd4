package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingResourceError(t *testing.T) {
	t.Parallel()
	err := &MissingResourceError{Missing: []Resource{
		{Locale: "fi", Path: "locales/fi/translation.json"},
		{Locale: "sv", Path: "locales/sv/translation.json"},
	}}

	assert.Equal(t, []string{"locales/fi/translation.json", "locales/sv/translation.json"}, err.Paths())
	assert.Contains(t, err.Error(), "locales/fi/translation.json")
	assert.Contains(t, err.Error(), "locales/sv/translation.json")
}

func TestMalformedDocumentError_Unwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("unexpected end of JSON input")
	var err error = fmt.Errorf("load: %w", &MalformedDocumentError{Locale: "fi", Path: "fi.json", Err: cause})

	var mde *MalformedDocumentError
	require.True(t, errors.As(err, &mde))
	assert.Equal(t, "fi", mde.Locale)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "fi.json")
}

func TestReferenceNotFoundError(t *testing.T) {
	t.Parallel()
	err := &ReferenceNotFoundError{Reference: "en", Loaded: []string{"fi", "sv"}}
	assert.Equal(t, `reference locale "en" not found among loaded locales [fi, sv]`, err.Error())
}

func TestComparisonResult_Err(t *testing.T) {
	t.Parallel()

	pass := &ComparisonResult{Reference: Resource{Locale: "en"}, Checked: []string{"fi"}}
	assert.True(t, pass.Passed())
	assert.NoError(t, pass.Err())

	fail := &ComparisonResult{
		Reference: Resource{Locale: "en"},
		Checked:   []string{"fi", "sv"},
		Mismatches: []LocaleDiff{
			{Locale: "fi", Difference: []string{"b"}, Missing: []string{"b"}},
			{Locale: "sv", Difference: []string{"c"}, Extra: []string{"c"}},
		},
	}
	assert.False(t, fail.Passed())

	var kme *KeyMismatchError
	require.ErrorAs(t, fail.Err(), &kme)
	assert.Len(t, kme.Mismatches, 2)
	assert.Equal(t, "keys mismatch against en in: fi, sv", kme.Error())
}

func TestComparisonResult_NilNotPassed(t *testing.T) {
	t.Parallel()
	var r *ComparisonResult
	assert.False(t, r.Passed())
}

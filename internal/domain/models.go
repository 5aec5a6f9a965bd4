// Package domain holds the types shared by the key consistency pipeline:
// located resources, parsed locale documents, comparison results and the
// error kinds the checker reports.
package domain

// Resource is the expected location of one locale's translation document.
type Resource struct {
	Locale string `json:"locale"`
	Path   string `json:"path"`
}

// LocaleDocument is a parsed translation document. Data is the decoded
// nested key/value structure; values are never inspected.
type LocaleDocument struct {
	Locale string
	Path   string
	Data   map[string]any
}

// Resource returns the identity of the document.
func (d LocaleDocument) Resource() Resource {
	return Resource{Locale: d.Locale, Path: d.Path}
}

// LocaleDiff records how one comparison locale differs from the reference.
// Difference is the symmetric difference; Missing and Extra split it by side.
type LocaleDiff struct {
	Locale     string   `json:"locale"`
	Path       string   `json:"path"`
	Difference []string `json:"difference"`
	Missing    []string `json:"missing"`
	Extra      []string `json:"extra"`
}

// ComparisonResult is the outcome of comparing every locale against the
// reference. Mismatches follow the input order of the compared locales.
type ComparisonResult struct {
	Reference  Resource     `json:"reference"`
	Checked    []string     `json:"checked"`
	Mismatches []LocaleDiff `json:"mismatches"`
}

// Passed reports whether every compared locale matched the reference.
func (r *ComparisonResult) Passed() bool {
	return r != nil && len(r.Mismatches) == 0
}

// Err returns a *KeyMismatchError when any locale mismatched, nil otherwise.
func (r *ComparisonResult) Err() error {
	if r == nil || len(r.Mismatches) == 0 {
		return nil
	}
	return &KeyMismatchError{Reference: r.Reference, Mismatches: r.Mismatches}
}

// Package report renders checker outcomes for CI logs (text) or for
// machine consumers (JSON).
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/finops-claw-gang/keycheck/internal/domain"
)

// SuccessMessage is printed when every locale matches the reference.
const SuccessMessage = "All translation files have consistent keys!"

// Report is the JSON shape of a run outcome.
type Report struct {
	Status     domain.ReportStatus `json:"status"`
	Reference  *domain.Resource    `json:"reference,omitempty"`
	Checked    []string            `json:"checked,omitempty"`
	Mismatches []domain.LocaleDiff `json:"mismatches,omitempty"`
	Missing    []domain.Resource   `json:"missing,omitempty"`
	Errors     []string            `json:"errors,omitempty"`
}

// Build converts a run outcome into a Report.
func Build(result *domain.ComparisonResult, err error) Report {
	r := Report{Status: domain.StatusOf(err)}
	if result != nil {
		ref := result.Reference
		r.Reference = &ref
		r.Checked = result.Checked
		r.Mismatches = result.Mismatches
	}
	if r.Status != domain.StatusError {
		return r
	}

	var mre *domain.MissingResourceError
	if errors.As(err, &mre) {
		r.Missing = mre.Missing
	}
	for _, e := range leaves(err) {
		r.Errors = append(r.Errors, e.Error())
	}
	return r
}

// Write renders the outcome of a run to w in the given format.
func Write(w io.Writer, format domain.OutputFormat, result *domain.ComparisonResult, err error) error {
	if format == domain.FormatJSON {
		return WriteJSON(w, Build(result, err))
	}
	return WriteText(w, result, err)
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}

// WriteText writes a human readable report.
func WriteText(w io.Writer, result *domain.ComparisonResult, err error) error {
	var b strings.Builder
	switch domain.StatusOf(err) {
	case domain.StatusPass:
		b.WriteString(SuccessMessage + "\n")
	case domain.StatusFail:
		writeMismatches(&b, result)
	default:
		writeErrors(&b, err)
	}
	_, werr := io.WriteString(w, b.String())
	return werr
}

func writeMismatches(b *strings.Builder, result *domain.ComparisonResult) {
	for _, m := range result.Mismatches {
		fmt.Fprintf(b, "Keys mismatch between %s and %s. Difference: %s\n",
			result.Reference.Path, m.Path, strings.Join(m.Difference, ", "))
		writeKeys(b, "missing from "+m.Locale, m.Missing)
		writeKeys(b, "extra in "+m.Locale, m.Extra)
	}
	fmt.Fprintf(b, "%d of %d translation files have keys inconsistent with %s.\n",
		len(result.Mismatches), len(result.Checked), result.Reference.Locale)
}

func writeKeys(b *strings.Builder, label string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", label)
	for _, k := range keys {
		fmt.Fprintf(b, "    - %s\n", k)
	}
}

func writeErrors(b *strings.Builder, err error) {
	for _, e := range leaves(err) {
		var (
			mre *domain.MissingResourceError
			mde *domain.MalformedDocumentError
		)
		switch {
		case errors.As(e, &mre):
			b.WriteString("Error: Missing translation files:\n")
			for _, p := range mre.Paths() {
				fmt.Fprintf(b, "  - %s\n", p)
			}
		case errors.As(e, &mde):
			fmt.Fprintf(b, "Error: Malformed translation file %s (locale %s): %v\n", mde.Path, mde.Locale, mde.Err)
		default:
			fmt.Fprintf(b, "Error: %v\n", e)
		}
	}
}

// leaves flattens errors.Join trees so each malformed document gets its
// own line. Errors wrapped with %w are kept whole.
func leaves(err error) []error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, leaves(e)...)
	}
	return out
}

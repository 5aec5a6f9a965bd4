package domain

import (
	"fmt"
	"testing"
)

func TestReportStatusValid(t *testing.T) {
	t.Parallel()
	for _, s := range []ReportStatus{StatusPass, StatusFail, StatusError} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if ReportStatus("skipped").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestOutputFormatValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		format OutputFormat
		want   bool
	}{
		{FormatText, true},
		{FormatJSON, true},
		{"yaml", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.format.Valid(); got != tt.want {
			t.Errorf("OutputFormat(%q).Valid() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want ReportStatus
	}{
		{name: "nil", err: nil, want: StatusPass},
		{name: "mismatch", err: &KeyMismatchError{}, want: StatusFail},
		{name: "wrapped mismatch", err: fmt.Errorf("run: %w", &KeyMismatchError{}), want: StatusFail},
		{name: "missing", err: &MissingResourceError{}, want: StatusError},
		{name: "reference", err: &ReferenceNotFoundError{Reference: "en"}, want: StatusError},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("%s: StatusOf() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

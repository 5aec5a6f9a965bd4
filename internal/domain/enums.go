package domain

import "errors"

// ReportStatus is the overall outcome of a run.
type ReportStatus string

const (
	StatusPass  ReportStatus = "pass"
	StatusFail  ReportStatus = "fail"
	StatusError ReportStatus = "error"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPass, StatusFail, StatusError:
		return true
	}
	return false
}

// OutputFormat selects how the report is rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	}
	return false
}

// StatusOf classifies the outcome of a run: pass when err is nil, fail
// when err is a key mismatch, error for every other failure.
func StatusOf(err error) ReportStatus {
	if err == nil {
		return StatusPass
	}
	var kme *KeyMismatchError
	if errors.As(err, &kme) {
		return StatusFail
	}
	return StatusError
}

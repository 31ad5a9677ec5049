package sheets

import "errors"

var (
	// ErrNotConfigured indicates the spreadsheet credentials are incomplete.
	// Callers treat this as a skip rather than a failure.
	ErrNotConfigured = errors.New("sheets: credentials not configured")
	// ErrAppendFailed indicates the append call was rejected or unreachable.
	ErrAppendFailed = errors.New("sheets: append failed")
)

package contact

import (
	"errors"

	"github.com/beautyflow/leadfunnel/pkg/sheets"
)

// OutcomeStatus classifies how one downstream dispatch ended.
type OutcomeStatus int

const (
	// OutcomeSuccess means the side effect completed.
	OutcomeSuccess OutcomeStatus = iota
	// OutcomeFailed means the side effect was attempted and failed.
	OutcomeFailed
	// OutcomeSkipped means the side effect was not attempted because it is
	// not configured. Only the sheet append can be skipped.
	OutcomeSkipped
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// DispatchOutcome is the settled result of one downstream side effect.
type DispatchOutcome struct {
	Status OutcomeStatus
	Err    error
}

// outcomeOf maps a branch error to its outcome. A missing-credentials
// error is a skip, not a failure.
func outcomeOf(err error) DispatchOutcome {
	switch {
	case err == nil:
		return DispatchOutcome{Status: OutcomeSuccess}
	case errors.Is(err, sheets.ErrNotConfigured):
		return DispatchOutcome{Status: OutcomeSkipped}
	default:
		return DispatchOutcome{Status: OutcomeFailed, Err: err}
	}
}

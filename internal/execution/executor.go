package execution

import (
	"context"

	"ltr/internal/domain"
)

// Executor runs a planned list of cases and returns the accumulated outcome
type Executor interface {
	Execute(ctx context.Context, cases []domain.Case) (domain.Outcome, error)
}

// CaseRunner runs a single case
type CaseRunner interface {
	Run(ctx context.Context, c domain.Case) domain.CaseResult
}

// Reporter receives progress of a run as it happens
type Reporter interface {
	CaseStarted(c domain.Case)
	CaseFinished(result domain.CaseResult)
	Summary(outcome domain.Outcome)
}

// Progress tracks completed cases, e.g. on a progress bar
type Progress interface {
	Update(successCount, failCount int)
	Finish()
}

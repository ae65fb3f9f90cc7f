package execution

import (
	"context"
	"fmt"

	"ltr/internal/config"
	"ltr/internal/discovery"
	"ltr/internal/domain"
	"ltr/internal/workspace"
)

var _ Executor = (*Suite)(nil)

// Suite drives a run: it discovers the cases of every group and runs them one
// at a time, in group order and then name order
type Suite struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	runner    CaseRunner
	workspace *workspace.Workspace
	reporter  Reporter
	progress  Progress
}

// NewSuite creates a new Suite
func NewSuite(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	runner CaseRunner,
	ws *workspace.Workspace,
	reporter Reporter,
) *Suite {
	return &Suite{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		runner:    runner,
		workspace: ws,
		reporter:  reporter,
	}
}

// SetProgress sets the progress tracker for the suite
func (s *Suite) SetProgress(progress Progress) {
	s.progress = progress
}

// Prepare creates the workspace and discovers every case of groups. A group
// that cannot be read fails the whole run before any case executes.
func (s *Suite) Prepare(groups []domain.Group) ([]domain.Case, error) {
	if err := s.workspace.Prepare(groups); err != nil {
		return nil, err
	}
	return s.Plan(groups)
}

// Plan resolves the cases of groups without touching the filesystem beyond
// reading the group directories
func (s *Suite) Plan(groups []domain.Group) ([]domain.Case, error) {
	var cases []domain.Case
	for _, group := range groups {
		dir := group.Dir(s.config.CorpusRoot)
		names, err := s.scanner.Scan(dir)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", group, err)
		}

		names = s.filter.FilterByName(names, s.config.Flags.NameFilter)

		for _, name := range names {
			cases = append(cases, domain.Resolve(
				s.config.CorpusRoot,
				group,
				name,
				s.config.Layout(),
				s.workspace.OutputDir(),
				s.workspace.ArtifactDir(group),
			))
		}
	}
	return cases, nil
}

// Execute runs cases in order. When stop-on-first-failure is set the first
// failing case ends the run with the outcome marked aborted; otherwise every
// case runs and the summary is reported at the end.
func (s *Suite) Execute(ctx context.Context, cases []domain.Case) (domain.Outcome, error) {
	var outcome domain.Outcome
	defer func() {
		if s.progress != nil {
			s.progress.Finish()
		}
	}()

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		s.reporter.CaseStarted(c)
		result := s.runner.Run(ctx, c)
		outcome.Record(result)
		s.reporter.CaseFinished(result)

		if s.progress != nil {
			s.progress.Update(outcome.Succeeded, outcome.Total-outcome.Succeeded)
		}

		if !result.Passed() && s.config.StopOnFirstFailure {
			outcome.Aborted = true
			return outcome, nil
		}
	}

	s.reporter.Summary(outcome)
	return outcome, nil
}

// Run prepares and executes groups
func (s *Suite) Run(ctx context.Context, groups []domain.Group) (domain.Outcome, error) {
	cases, err := s.Prepare(groups)
	if err != nil {
		return domain.Outcome{}, err
	}
	return s.Execute(ctx, cases)
}

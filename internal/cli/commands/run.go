package commands

import (
	"io"

	"github.com/spf13/cobra"

	"ltr/internal/cli"
	"ltr/internal/config"
	"ltr/internal/domain"
	"ltr/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config *config.Config
	stdout io.Writer
	stderr io.Writer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, stdout, stderr io.Writer) *RunCommand {
	return &RunCommand{
		config: cfg,
		stdout: stdout,
		stderr: stderr,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	suite := newSuite(rc.config, rc.stdout, rc.stderr)

	// Workspace and discovery; a missing group aborts before any case runs
	cases, err := suite.Prepare(rc.config.GetGroups())
	if err != nil {
		return err
	}

	if rc.config.Flags.Progress && len(cases) > 0 {
		suite.SetProgress(ui.NewProgressBar(len(cases), rc.stderr))
	}

	outcome, err := suite.Execute(cmd.Context(), cases)
	if err != nil {
		return err
	}

	if code := outcome.ExitCode(); code != domain.ExitOK {
		return &cli.ExitError{Code: code}
	}
	return nil
}

package commands

import (
	"io"

	"github.com/spf13/cobra"

	"ltr/internal/config"
	"ltr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	stdout io.Writer
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, stdout io.Writer) *ListCommand {
	return &ListCommand{
		config: cfg,
		stdout: stdout,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	// Listing must not create the workspace, so the suite is only used to plan
	suite := newSuite(lc.config, lc.stdout, io.Discard)
	groups := lc.config.GetGroups()

	cases, err := suite.Plan(groups)
	if err != nil {
		return err
	}

	ui.NewFormatter(lc.stdout, lc.config.Flags.NoColor).PrintCaseList(groups, cases)
	return nil
}

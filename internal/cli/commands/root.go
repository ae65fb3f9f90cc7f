package commands

import (
	"io"

	"github.com/spf13/cobra"

	"ltr/internal/cli"
	"ltr/internal/config"
)

// NewRootCommand builds the ltr command tree writing to stdout and stderr
func NewRootCommand(version string, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ltr",
		Short: "Regression test runner for a bytecode compiler and interpreter",
		Long: `Discover regression cases, compile each one to bytecode, run the interpreter
on it with the case's input and compare the output with the recorded transcript.
The run stops at the first failing case unless --keep-going is given.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := NewCommands(cfg, stdout, stderr)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	return rootCmd
}

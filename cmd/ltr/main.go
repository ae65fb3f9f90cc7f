package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"ltr/internal/cli"
	"ltr/internal/cli/commands"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := commands.NewRootCommand(version, os.Stdout, os.Stderr)

	// Execute root command
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !cli.Silent(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

package commands

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ltr/internal/cli"
	"ltr/internal/config"
	"ltr/internal/discovery"
	"ltr/internal/execution"
	"ltr/internal/ui"
	"ltr/internal/workspace"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands. cfg is filled in from flags, the config
// file and the environment before a command runs.
func NewCommands(cfg *config.Config, stdout, stderr io.Writer) *Commands {
	return &Commands{
		Run:  NewRunCommand(cfg, stdout, stderr),
		List: NewListCommand(cfg, stdout),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	loadConfig := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		if flags.NoColor {
			color.NoColor = true
		}
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the regression corpus",
		Long:    "Compile every case, run the interpreter on it and compare its output with the recorded transcript",
		Args:    cobra.NoArgs,
		RunE:    c.Run.Execute,
		PreRunE: loadConfig,
	}
	addCorpusFlags(runCmd, flags)
	runCmd.Flags().StringVar(&flags.Compiler, "compiler", "", "Compiler executable (default \""+config.DefaultCompiler+"\")")
	runCmd.Flags().StringVar(&flags.Interpreter, "interpreter", "", "Interpreter executable (default \""+config.DefaultInterpreter+"\")")
	runCmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", "", "Directory for actual output logs (default \""+config.DefaultOutputDir+"\")")
	runCmd.Flags().BoolVar(&flags.KeepGoing, "keep-going", false, "Run every case instead of stopping at the first failure")
	runCmd.Flags().BoolVar(&flags.ScopeArtifacts, "scope-artifacts", false, "Compile each group into its own artifact directory under the output dir")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Per-case time limit, e.g. 30s (0 means none)")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered cases",
		Long:    "Scan the configured groups and list their cases without running them",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: loadConfig,
	}
	addCorpusFlags(listCmd, flags)
	rootCmd.AddCommand(listCmd)
}

func addCorpusFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "Config file (default \""+config.DefaultConfigFile+"\" if present)")
	cmd.Flags().StringVar(&flags.EnvFile, "env-file", "", "Environment file (default \""+config.DefaultEnvFile+"\" if present)")
	cmd.Flags().StringVarP(&flags.CorpusRoot, "corpus-root", "r", "", "Root directory of the test corpus (default \""+config.DefaultCorpusRoot+"\")")
	cmd.Flags().StringSliceVarP(&flags.Groups, "group", "g", nil, "Group directory relative to the corpus root; repeat to run several, in order")
	cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'test0*' or '*array*')")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
}

// newSuite wires the run pipeline from cfg
func newSuite(cfg *config.Config, stdout, stderr io.Writer) *execution.Suite {
	compiler := execution.NewExecCompiler(cfg.GetCompilerPath())
	compiler.SetOutput(stdout, stderr)
	interpreter := execution.NewExecInterpreter(cfg.GetInterpreterPath())
	interpreter.SetStderr(stderr)

	return execution.NewSuite(
		cfg,
		discovery.NewScanner(cfg.SourceExt),
		discovery.NewFilter(),
		execution.NewRunner(compiler, interpreter, cfg.Timeout),
		workspace.New(cfg.OutputDir, cfg.GetArtifactRoot(), cfg.ScopeArtifacts),
		ui.NewConsole(stdout, cfg.Flags.NoColor),
	)
}

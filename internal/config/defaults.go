package config

const (
	// DefaultCorpusRoot is the directory holding the regression corpus
	DefaultCorpusRoot = "../../Lama/regression"
	// DefaultCompiler is the compiler executable, resolved through PATH
	DefaultCompiler = "lamac"
	// DefaultInterpreter is the interpreter under test
	DefaultInterpreter = "./build/interpreter"
	// DefaultOutputDir is where actual transcripts are written
	DefaultOutputDir = "./logs"
	// DefaultExpectedDir is the per-group subdirectory holding expected transcripts
	DefaultExpectedDir = "orig"

	DefaultSourceExt   = ".lama"
	DefaultInputExt    = ".input"
	DefaultLogExt      = ".log"
	DefaultArtifactExt = ".bc"

	// DefaultConfigFile is picked up from the working directory when present
	DefaultConfigFile = "ltr.yaml"
	// DefaultEnvFile is loaded into the environment when present
	DefaultEnvFile = ".env"
)

// DefaultGroups is the ordered list of groups run when none are configured
var DefaultGroups = []string{"."}

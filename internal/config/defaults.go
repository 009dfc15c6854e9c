package config

const (
	// DefaultOutputFile is the script the generated commands are appended to
	DefaultOutputFile = "functional_tests_run.sh"
	// DefaultTag is the value inside @Tag("...") that marks a functional test
	DefaultTag = "functional"
	// DefaultEnvFile is the dotenv file read from the working directory
	DefaultEnvFile = ".env"
	// DefaultShards is the number of CI shards the modules are split into
	DefaultShards = 1
)

// Environment variables that override the defaults
const (
	EnvOutputFile = "FTGEN_OUTPUT"
	EnvTag        = "FTGEN_TAG"
)

// DefaultPathsToIgnore are the directories skipped when scanning a source tree
var DefaultPathsToIgnore = []string{
	"target",
	"build",
	"node_modules",
	"out",
}

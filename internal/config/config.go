package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Output settings
	OutputFile string

	// Matching settings
	Tag string

	// Paths to ignore when scanning a source tree
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Output     string
	Tag        string
	NameFilter string
	ScanDir    string
	Fresh      bool
	Total      int
	Index      int
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		OutputFile: DefaultOutputFile,
		Tag:        DefaultTag,
		Flags:      Flags{Total: DefaultShards},
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from defaults, the dotenv file, the environment and flags, in that order
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply re-reads the environment and applies flag overrides on top of it
func (c *Config) Apply(flags Flags) {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(DefaultEnvFile)

	if v := os.Getenv(EnvOutputFile); v != "" {
		c.OutputFile = v
	}
	if v := os.Getenv(EnvTag); v != "" {
		c.Tag = v
	}

	c.Flags = flags
	if flags.Output != "" {
		c.OutputFile = flags.Output
	}
	if flags.Tag != "" {
		c.Tag = flags.Tag
	}
	// Unset means a single shard; negative values are left for Validate
	if c.Flags.Total == 0 {
		c.Flags.Total = DefaultShards
	}
}

// Validate checks flag combinations that cannot be turned into a script
func (c *Config) Validate() error {
	if c.Flags.Total < 1 {
		return fmt.Errorf("total shards must be at least 1, got %d", c.Flags.Total)
	}
	if c.Flags.Index < 0 || c.Flags.Index >= c.Flags.Total {
		return fmt.Errorf("shard index %d out of range [0,%d)", c.Flags.Index, c.Flags.Total)
	}
	return nil
}

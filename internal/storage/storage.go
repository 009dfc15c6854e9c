package storage

import "ftgen/internal/config"

// Storage persists generated script lines.
type Storage interface {
	// Create makes sure the script exists, truncating it when fresh is set.
	Create(fresh bool) error
	// Append adds one line to the end of the script.
	Append(line string) error
	// Path is where the script is written.
	Path() string
}

// ScriptStorage appends lines to the configured output script.
type ScriptStorage struct {
	cfg *config.Config
}

// NewScriptStorage returns a Storage that writes to the config's output file.
func NewScriptStorage(cfg *config.Config) *ScriptStorage {
	return &ScriptStorage{cfg: cfg}
}

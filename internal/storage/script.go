package storage

import (
	"fmt"
	"os"
)

// Path returns the output script path as configured.
func (s *ScriptStorage) Path() string {
	return s.cfg.OutputFile
}

// Create makes sure the output script exists so it is present even when nothing gets appended.
// Existing content is kept unless fresh is set.
func (s *ScriptStorage) Create(fresh bool) error {
	flags := os.O_CREATE | os.O_WRONLY
	if fresh {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	file, err := os.OpenFile(s.Path(), flags, 0644)
	if err != nil {
		return fmt.Errorf("create script: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("create script: %w", err)
	}
	return nil
}

// Append opens the script in append mode, writes one newline-terminated line and closes it again.
func (s *ScriptStorage) Append(line string) (err error) {
	file, err := os.OpenFile(s.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close script: %w", cerr)
		}
	}()

	if _, err := file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
)

// DefaultFileName is appended when the configured storage path points
// at a directory instead of a file.
const DefaultFileName = "tasks.csv"

// DefaultConfig returns the default configuration. FirstRun stays true
// until the setup wizard has completed once.
func DefaultConfig() *Config {
	return &Config{
		CSVFile:         filepath.Join(configDir(), DefaultFileName),
		DateFormat:      "jalali",
		DefaultDuration: "1h",
		Theme:           "default",
		AutoBackup:      true,
		BackupCount:     5,
		FirstRun:        true,
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".task-cli"
	}
	return filepath.Join(home, ".task-cli")
}

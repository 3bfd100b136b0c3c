// Package testutil provides reusable helpers for tests that need an
// isolated configuration and data directory.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aminrms/cli-task-manager/internal/config"
)

// TestEnv provides access to isolated test directories.
type TestEnv struct {
	Home       string // Mocked HOME directory
	DataDir    string // Directory holding the CSV file
	ConfigPath string // Settings file inside the mocked home
	t          *testing.T
}

// SetupTestEnv creates an isolated environment with a mocked HOME.
// Uses t.TempDir() for automatic cleanup and t.Setenv() for automatic
// env restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	dataDir := filepath.Join(tmpHome, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("Failed to create data dir: %v", err)
	}

	t.Setenv("HOME", tmpHome)

	return &TestEnv{
		Home:       tmpHome,
		DataDir:    dataDir,
		ConfigPath: filepath.Join(tmpHome, ".task-cli", "config.yaml"),
		t:          t,
	}
}

// NewConfig returns a config pointing its storage file into the test
// data directory, persisted at the test config path. The first-run
// marker is cleared so tests skip the wizard.
func (e *TestEnv) NewConfig() *config.Config {
	e.t.Helper()

	cfg, err := config.LoadFrom(e.ConfigPath)
	if err != nil {
		e.t.Fatalf("LoadFrom failed: %v", err)
	}
	cfg.CSVFile = filepath.Join(e.DataDir, "tasks.csv")
	cfg.FirstRun = false
	if err := cfg.Save(); err != nil {
		e.t.Fatalf("Save failed: %v", err)
	}
	return cfg
}

// WriteFile creates a file with the given content under the data dir
// and returns its path.
func (e *TestEnv) WriteFile(name, content string) string {
	e.t.Helper()

	path := filepath.Join(e.DataDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

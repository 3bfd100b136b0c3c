package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aminrms/cli-task-manager/internal/calendar"
	"github.com/aminrms/cli-task-manager/internal/task"
)

// ValidationError reports a rejected Set call: an unknown key or a
// value outside the key's domain. The config is left untouched.
type ValidationError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid setting %s=%q: %s", e.Key, e.Value, e.Reason)
}

// Save writes the full settings file atomically (temp file + rename).
func (c *Config) Save() error {
	if c.path == "" {
		c.path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

// Set validates value against key's domain, applies it, and persists
// the full settings file before returning.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyCSVFile:
		if value == "" {
			return &ValidationError{Key: key, Value: value, Reason: "path must not be empty"}
		}
		c.CSVFile = NormalizeStoragePath(value)
	case KeyDateFormat:
		if !calendar.ValidMode(value) {
			return &ValidationError{Key: key, Value: value, Reason: "must be gregorian or jalali"}
		}
		c.DateFormat = value
	case KeyDefaultDuration:
		if _, err := task.ParseDuration(value); err != nil {
			return &ValidationError{Key: key, Value: value, Reason: "must be a duration like 1h or 30min"}
		}
		c.DefaultDuration = value
	case KeyTheme:
		if !validTheme(value) {
			return &ValidationError{Key: key, Value: value, Reason: "must be one of " + strings.Join(Themes, ", ")}
		}
		c.Theme = value
	case KeyAutoBackup:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &ValidationError{Key: key, Value: value, Reason: "must be true or false"}
		}
		c.AutoBackup = b
	case KeyBackupCount:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return &ValidationError{Key: key, Value: value, Reason: "must be a positive integer"}
		}
		c.BackupCount = n
	default:
		return &ValidationError{Key: key, Value: value, Reason: "unknown setting"}
	}

	return c.Save()
}

// Get returns the current value of a settable key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyCSVFile:
		return c.CSVFile, nil
	case KeyDateFormat:
		return c.DateFormat, nil
	case KeyDefaultDuration:
		return c.DefaultDuration, nil
	case KeyTheme:
		return c.Theme, nil
	case KeyAutoBackup:
		return strconv.FormatBool(c.AutoBackup), nil
	case KeyBackupCount:
		return strconv.Itoa(c.BackupCount), nil
	}
	return "", &ValidationError{Key: key, Reason: "unknown setting"}
}

// NormalizeStoragePath fixes a storage path that points at a directory
// or has no file extension by appending the default filename.
func NormalizeStoragePath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, DefaultFileName)
	}
	if filepath.Ext(path) == "" {
		return filepath.Join(path, DefaultFileName)
	}
	return path
}

func validTheme(s string) bool {
	for _, t := range Themes {
		if s == t {
			return true
		}
	}
	return false
}

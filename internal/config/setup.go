package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aminrms/cli-task-manager/internal/prompt"
	"github.com/aminrms/cli-task-manager/internal/task"
)

// RunSetup walks through the first-run wizard: storage location,
// calendar mode, default duration, backups. Answers are read from in
// so the wizard can be scripted in tests. The config is persisted and
// FirstRun cleared before returning.
func (c *Config) RunSetup(in io.Reader, out io.Writer) error {
	p := prompt.New(in, out)

	fmt.Fprintln(out, "Welcome to task-cli. Let's set up your preferences.")
	fmt.Fprintln(out, "")

	// Storage location
	path := p.Ask("CSV file path", c.CSVFile)
	path = NormalizeStoragePath(path)
	if err := probeWritable(filepath.Dir(path)); err != nil {
		fallback := filepath.Join(configDir(), DefaultFileName)
		fmt.Fprintf(out, "Cannot write to %s (%v), using %s instead\n", path, err, fallback)
		path = fallback
		if err := probeWritable(filepath.Dir(path)); err != nil {
			return fmt.Errorf("cannot write to fallback location %s: %w", path, err)
		}
	}
	c.CSVFile = path

	// Calendar mode
	for {
		mode := p.Ask("Date format (gregorian/jalali)", c.DateFormat)
		if mode == "gregorian" || mode == "jalali" {
			c.DateFormat = mode
			break
		}
		fmt.Fprintln(out, "Please answer gregorian or jalali.")
	}

	// Default duration
	for {
		dur := p.Ask("Default task duration", c.DefaultDuration)
		if _, err := task.ParseDuration(dur); err == nil {
			c.DefaultDuration = dur
			break
		}
		fmt.Fprintln(out, "Please enter a duration like 1h, 30min or 1h 30min.")
	}

	// Backups
	c.AutoBackup = p.Confirm("Enable automatic backups?", c.AutoBackup)

	c.FirstRun = false
	if err := c.Save(); err != nil {
		return err
	}

	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "Setup complete. Tasks will be stored in %s\n", c.CSVFile)
	return nil
}

// probeWritable creates the directory if needed and verifies a file can
// be written in it.
func probeWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".write-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

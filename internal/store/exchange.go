package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aminrms/cli-task-manager/internal/task"
)

// Interchange formats for export and import. CSV matches the storage
// file; JSON and YAML carry one record per task.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// record is the structured interchange shape. Tags stay a list here,
// unlike the comma-joined CSV field.
type record struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Date        string   `json:"date" yaml:"date"`
	Duration    string   `json:"duration" yaml:"duration"`
	Task        string   `json:"task" yaml:"task"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Status      string   `json:"status" yaml:"status"`
	Priority    string   `json:"priority" yaml:"priority"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func toRecord(t task.Task) record {
	return record{
		ID:          t.ID,
		Date:        t.Date,
		Duration:    t.Duration,
		Task:        t.Name,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Tags:        t.Tags,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func (r record) fields() task.Fields {
	return task.Fields{
		Date:        r.Date,
		Duration:    r.Duration,
		Name:        r.Task,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Tags:        r.Tags,
	}
}

// Export writes the full collection to path in the given format.
func (m *Manager) Export(path, format string) error {
	tasks, err := m.load()
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case FormatCSV:
		return writeFileAtomic(path, func(w io.Writer) error {
			return writeTasks(w, tasks)
		})
	case FormatJSON:
		records := make([]record, len(tasks))
		for i, t := range tasks {
			records[i] = toRecord(t)
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal export: %w", err)
		}
		return os.WriteFile(path, append(data, '\n'), 0644)
	case FormatYAML:
		records := make([]record, len(tasks))
		for i, t := range tasks {
			records[i] = toRecord(t)
		}
		data, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("failed to marshal export: %w", err)
		}
		return os.WriteFile(path, data, 0644)
	}
	return fmt.Errorf("unsupported export format %q (csv, json or yaml)", format)
}

// ImportReport summarizes an import: how many rows passed validation
// and were appended, and how many were skipped with warnings.
type ImportReport struct {
	Imported int
	Skipped  int
	Warnings []RowWarning
}

// Import reads tasks from path (format by extension), validates every
// row through the task model, and appends the valid ones to the
// collection. A bad row is skipped and reported, never fatal. A backup
// is taken before the rewrite regardless of the auto_backup setting.
func (m *Manager) Import(path string) (ImportReport, error) {
	var report ImportReport

	data, err := os.ReadFile(path)
	if err != nil {
		return report, fmt.Errorf("failed to read import file: %w", err)
	}

	var incoming []task.Task
	var warnings []RowWarning

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		incoming, warnings, err = readTasks(strings.NewReader(string(data)), m.cal)
		if err != nil {
			return report, err
		}
	case ".json":
		var records []record
		if err := json.Unmarshal(data, &records); err != nil {
			return report, fmt.Errorf("failed to parse import file: %w", err)
		}
		incoming, warnings = m.validateRecords(records)
	case ".yaml", ".yml":
		var records []record
		if err := yaml.Unmarshal(data, &records); err != nil {
			return report, fmt.Errorf("failed to parse import file: %w", err)
		}
		incoming, warnings = m.validateRecords(records)
	default:
		return report, fmt.Errorf("unsupported import file %q (need .csv, .json or .yaml)", filepath.Base(path))
	}

	tasks, err := m.load()
	if err != nil {
		return report, err
	}
	tasks = append(tasks, incoming...)

	// Backup regardless of the auto_backup setting; a bad import can
	// bury the collection under junk in one rewrite.
	if err := m.flk.Lock(); err != nil {
		return report, fmt.Errorf("failed to lock storage file: %w", err)
	}
	if _, err := os.Stat(m.csvPath); err == nil {
		if err := m.backup(); err != nil {
			m.flk.Unlock()
			return report, err
		}
	}
	m.flk.Unlock()
	if err := m.writeAll(tasks, false); err != nil {
		return report, err
	}

	report.Imported = len(incoming)
	report.Skipped = len(warnings)
	report.Warnings = warnings
	return report, nil
}

func (m *Manager) validateRecords(records []record) ([]task.Task, []RowWarning) {
	var tasks []task.Task
	var warnings []RowWarning
	for i, r := range records {
		f := r.fields()
		if f.Duration == "" {
			f.Duration = m.cfg.DefaultDuration
		}
		t, err := task.New(f, m.cal)
		if err != nil {
			warnings = append(warnings, RowWarning{Line: i + 1, Reason: err.Error()})
			continue
		}
		if r.ID != "" {
			t.ID = r.ID
		}
		tasks = append(tasks, t)
	}
	return tasks, warnings
}

package store

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aminrms/cli-task-manager/internal/calendar"
	"github.com/aminrms/cli-task-manager/internal/task"
)

// The storage file is UTF-8 CSV with this fixed header. Tags are
// comma-joined inside their single field. The legacy "hour" column is
// still accepted for duration when reading old files.
var csvHeader = []string{
	"id", "date", "duration", "task", "description",
	"status", "priority", "tags", "created_at", "updated_at",
}

const checksumSuffix = ".checksum"

// readTasks parses header-mapped CSV rows from r. Malformed rows are
// skipped and reported as warnings; only a broken header or reader
// aborts.
func readTasks(r io.Reader, cal calendar.Calendar) ([]task.Task, []RowWarning, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var tasks []task.Task
	var warnings []RowWarning
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			warnings = append(warnings, RowWarning{Line: line, Reason: err.Error()})
			continue
		}

		duration := field(row, "duration")
		if duration == "" {
			duration = field(row, "hour") // legacy column name
		}

		t, err := task.New(task.Fields{
			Date:        field(row, "date"),
			Duration:    duration,
			Name:        field(row, "task"),
			Description: field(row, "description"),
			Status:      field(row, "status"),
			Priority:    field(row, "priority"),
			Tags:        task.SplitTags(field(row, "tags")),
		}, cal)
		if err != nil {
			warnings = append(warnings, RowWarning{Line: line, Reason: err.Error()})
			continue
		}

		// Keep stored identity and timestamps when present; rows from
		// older files without an id column get a fresh one.
		if id := field(row, "id"); id != "" {
			t.ID = id
		} else {
			t.ID = uuid.NewString()
		}
		if ts, err := time.Parse(time.RFC3339, field(row, "created_at")); err == nil {
			t.CreatedAt = ts
		}
		if ts, err := time.Parse(time.RFC3339, field(row, "updated_at")); err == nil {
			t.UpdatedAt = ts
		}

		tasks = append(tasks, t)
	}
	return tasks, warnings, nil
}

// writeTasks writes the header and all tasks to w in collection order.
func writeTasks(w io.Writer, tasks []task.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range tasks {
		row := []string{
			t.ID,
			t.Date,
			t.Duration,
			t.Name,
			t.Description,
			string(t.Status),
			string(t.Priority),
			task.JoinTags(t.Tags),
			t.CreatedAt.Format(time.RFC3339),
			t.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeFileAtomic stages content in a temp file in the same directory
// and renames it over path, so an interrupted write never truncates
// the existing file.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".stage-*")
	if err != nil {
		return fmt.Errorf("failed to stage write: %w", err)
	}
	tmpPath := f.Name()

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync staged file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close staged file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// writeChecksum records the storage file's checksum in a sidecar file.
// External edits are detected as a mismatch at the next load.
func writeChecksum(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path+checksumSuffix, []byte(checksum(data)), 0644)
}

// verifyChecksum compares the storage file against its sidecar. A
// missing sidecar is fine (first run or pre-checksum file); a mismatch
// is returned as a warning, not an error, since hand-edits between
// runs are tolerated.
func verifyChecksum(path string) *RowWarning {
	want, err := os.ReadFile(path + checksumSuffix)
	if err != nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	if checksum(data) != strings.TrimSpace(string(want)) {
		return &RowWarning{Reason: fmt.Sprintf("%s was modified outside task-cli (checksum mismatch)", filepath.Base(path))}
	}
	return nil
}

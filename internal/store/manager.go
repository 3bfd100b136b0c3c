// Package store owns the on-disk task collection: a UTF-8 CSV file
// rewritten in full by every mutating operation, with rotating backups
// and stage-then-replace writes. It is the sole writer of the storage
// file; the presentation layer drives it through the operations here.
package store

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/aminrms/cli-task-manager/internal/calendar"
	"github.com/aminrms/cli-task-manager/internal/config"
	"github.com/aminrms/cli-task-manager/internal/task"
)

// Manager loads and saves the task collection. It holds no in-memory
// copy between operations: each call loads, works, and (when mutating)
// rewrites the file before returning, so the file is always the truth.
type Manager struct {
	cfg       *config.Config
	cal       calendar.Calendar
	csvPath   string
	backupDir string
	flk       *flock.Flock
}

// New builds a Manager from the loaded configuration. It fixes a
// storage path that points at a directory (persisting the correction),
// creates the parent directory, and writes a header-only file if none
// exists yet.
func New(cfg *config.Config) (*Manager, error) {
	cal, err := calendar.New(cfg.DateFormat)
	if err != nil {
		return nil, err
	}

	csvPath := config.NormalizeStoragePath(cfg.CSVFile)
	if csvPath != cfg.CSVFile {
		if err := cfg.Set(config.KeyCSVFile, csvPath); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	m := &Manager{
		cfg:       cfg,
		cal:       cal,
		csvPath:   csvPath,
		backupDir: filepath.Join(filepath.Dir(csvPath), "backups"),
		flk:       flock.New(csvPath + ".lock"),
	}

	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		if err := m.writeAll(nil, false); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Calendar returns the calendar the manager validates dates under.
func (m *Manager) Calendar() calendar.Calendar {
	return m.cal
}

// Path returns the storage file path.
func (m *Manager) Path() string {
	return m.csvPath
}

// LoadAll reads the full collection in file order. Malformed rows are
// skipped and returned as warnings. A missing file is an empty
// collection; any other read failure is a hard error.
func (m *Manager) LoadAll() ([]task.Task, []RowWarning, error) {
	f, err := os.Open(m.csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to open %s: %w", m.csvPath, err)
	}
	defer f.Close()

	var warnings []RowWarning
	if w := verifyChecksum(m.csvPath); w != nil {
		warnings = append(warnings, *w)
	}

	tasks, rowWarnings, err := readTasks(f, m.cal)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", m.csvPath, err)
	}
	return tasks, append(warnings, rowWarnings...), nil
}

// load reads the collection for an operation's own use. Warnings still
// reach the user through the log; a mutation rewrites the file without
// the skipped rows, so dropping them silently would lose data with no
// trace. Callers that present warnings themselves use LoadAll.
func (m *Manager) load() ([]task.Task, error) {
	tasks, warnings, err := m.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}
	return tasks, nil
}

// SaveAll rewrites the storage file with the given collection, taking
// a rotating backup first when backups are enabled.
func (m *Manager) SaveAll(tasks []task.Task) error {
	return m.writeAll(tasks, m.cfg.AutoBackup)
}

func (m *Manager) writeAll(tasks []task.Task, withBackup bool) error {
	if err := m.flk.Lock(); err != nil {
		return fmt.Errorf("failed to lock storage file: %w", err)
	}
	defer m.flk.Unlock()

	if withBackup {
		if _, err := os.Stat(m.csvPath); err == nil {
			if err := m.backup(); err != nil {
				return err
			}
		}
	}

	if err := writeFileAtomic(m.csvPath, func(w io.Writer) error {
		return writeTasks(w, tasks)
	}); err != nil {
		return err
	}
	return writeChecksum(m.csvPath)
}

// Add validates the raw fields, appends the task, and rewrites the
// file. An empty duration takes the configured default.
func (m *Manager) Add(f task.Fields) (task.Task, error) {
	if f.Duration == "" {
		f.Duration = m.cfg.DefaultDuration
	}
	t, err := task.New(f, m.cal)
	if err != nil {
		return task.Task{}, err
	}

	tasks, err := m.load()
	if err != nil {
		return task.Task{}, err
	}
	tasks = append(tasks, t)
	if err := m.SaveAll(tasks); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Edit applies changes to the task at index, re-validating the merged
// record before anything is written.
func (m *Manager) Edit(index int, c task.Changes) (task.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return task.Task{}, err
	}
	if index < 0 || index >= len(tasks) {
		return task.Task{}, &IndexError{Index: index, Len: len(tasks)}
	}

	updated, err := task.Apply(tasks[index], c, m.cal)
	if err != nil {
		return task.Task{}, err
	}
	tasks[index] = updated
	if err := m.SaveAll(tasks); err != nil {
		return task.Task{}, err
	}
	return updated, nil
}

// Delete removes the task at index. All subsequent indices shift down
// by one, so callers must re-fetch the list before another call.
func (m *Manager) Delete(index int) (task.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return task.Task{}, err
	}
	if index < 0 || index >= len(tasks) {
		return task.Task{}, &IndexError{Index: index, Len: len(tasks)}
	}

	removed := tasks[index]
	tasks = append(tasks[:index], tasks[index+1:]...)
	if err := m.SaveAll(tasks); err != nil {
		return task.Task{}, err
	}
	return removed, nil
}

// ClearAll empties the collection. A backup is taken first regardless
// of the auto_backup setting; this is the one operation destructive
// enough to insist on it.
func (m *Manager) ClearAll() error {
	if err := m.flk.Lock(); err != nil {
		return fmt.Errorf("failed to lock storage file: %w", err)
	}
	if _, err := os.Stat(m.csvPath); err == nil {
		if err := m.backup(); err != nil {
			m.flk.Unlock()
			return err
		}
	}
	m.flk.Unlock()
	return m.writeAll(nil, false)
}

// Filter selects tasks matching every set criterion. The backing
// collection is never touched.
type Filter struct {
	Date     string
	Query    string
	Status   task.Status
	Priority task.Priority
	Tag      string
}

// Filter returns the tasks matching f, in collection order.
func (m *Manager) Filter(f Filter) ([]task.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return nil, err
	}

	date := f.Date
	if date != "" {
		if canonical, err := m.cal.Canonical(date); err == nil {
			date = canonical
		}
	}

	var out []task.Task
	for _, t := range tasks {
		if date != "" && !t.MatchesDate(date) {
			continue
		}
		if f.Query != "" && !t.MatchesQuery(f.Query) {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Tag != "" && !t.HasTag(f.Tag) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Search returns tasks whose name, description or tags contain query.
func (m *Manager) Search(query string) ([]task.Task, error) {
	return m.Filter(Filter{Query: query})
}

// Today returns the tasks dated today under the configured calendar.
func (m *Manager) Today() ([]task.Task, error) {
	return m.Filter(Filter{Date: m.cal.Today()})
}

// Info describes the data file for the statistics and info views.
type Info struct {
	Path         string
	Exists       bool
	Size         int64
	LastModified string
	TaskCount    int
	BackupCount  int
}

// DataInfo reports the storage file's current state.
func (m *Manager) DataInfo() (Info, error) {
	info := Info{Path: m.csvPath}

	if stat, err := os.Stat(m.csvPath); err == nil {
		info.Exists = true
		info.Size = stat.Size()
		info.LastModified = stat.ModTime().Format("2006-01-02 15:04:05")
		tasks, err := m.load()
		if err != nil {
			return info, err
		}
		info.TaskCount = len(tasks)
	}

	backups, err := m.listBackups()
	if err == nil {
		info.BackupCount = len(backups)
	}
	return info, nil
}

package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const backupPrefix = "tasks_backup_"

// backup copies the current storage file into the backups directory and
// prunes old copies beyond the configured retention count.
func (m *Manager) backup() error {
	if err := os.MkdirAll(m.backupDir, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("%s%s_%09d.csv", backupPrefix,
		time.Now().Format("20060102_150405"), time.Now().Nanosecond())
	if err := copyFile(m.csvPath, filepath.Join(m.backupDir, name)); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	return m.pruneBackups()
}

// pruneBackups keeps the newest backup_count backups and removes the
// rest, oldest first.
func (m *Manager) pruneBackups() error {
	backups, err := m.listBackups()
	if err != nil {
		return err
	}
	keep := m.cfg.BackupCount
	if keep < 1 {
		keep = 1
	}
	if len(backups) <= keep {
		return nil
	}
	for _, old := range backups[:len(backups)-keep] {
		if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove old backup %s: %w", old, err)
		}
	}
	return nil
}

// listBackups returns backup file paths sorted oldest first. The
// timestamped names sort chronologically.
func (m *Manager) listBackups() ([]string, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, backupPrefix) && strings.HasSuffix(name, ".csv") {
			backups = append(backups, filepath.Join(m.backupDir, name))
		}
	}
	sort.Strings(backups)
	return backups, nil
}

// Backups returns the current backup file paths, oldest first.
func (m *Manager) Backups() ([]string, error) {
	return m.listBackups()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

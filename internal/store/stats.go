package store

import (
	"github.com/aminrms/cli-task-manager/internal/task"
)

// Statistics aggregates the collection for the stats view. Durations
// that fail to parse are excluded from TrackedMinutes and counted in
// Unparsed instead.
type Statistics struct {
	Total          int
	ByStatus       map[task.Status]int
	ByPriority     map[task.Priority]int
	TodayCount     int
	TrackedMinutes int
	Unparsed       int
	File           Info
}

// Statistics computes aggregate counts over the full collection.
func (m *Manager) Statistics() (Statistics, error) {
	tasks, err := m.load()
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{
		Total:      len(tasks),
		ByStatus:   make(map[task.Status]int),
		ByPriority: make(map[task.Priority]int),
	}

	today := m.cal.Today()
	for _, t := range tasks {
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
		if t.MatchesDate(today) {
			stats.TodayCount++
		}
		if minutes, err := t.TrackedMinutes(); err == nil {
			stats.TrackedMinutes += minutes
		} else {
			stats.Unparsed++
		}
	}

	info, err := m.DataInfo()
	if err != nil {
		return stats, err
	}
	stats.File = info
	return stats, nil
}

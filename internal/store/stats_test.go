package store

import (
	"testing"

	"github.com/aminrms/cli-task-manager/internal/task"
)

func TestStatistics(t *testing.T) {
	m, _ := newTestManager(t)

	mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "2h", Name: "a", Status: "pending", Priority: "high"})
	mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "30min", Name: "b", Status: "completed", Priority: "low"})
	mustAdd(t, m, task.Fields{Date: "2024-01-02", Duration: "whenever", Name: "c", Status: "completed", Priority: "low"})

	stats, err := m.Statistics()
	if err != nil {
		t.Fatalf("Statistics failed: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("Total = %d", stats.Total)
	}
	if stats.ByStatus[task.StatusPending] != 1 || stats.ByStatus[task.StatusCompleted] != 2 {
		t.Errorf("ByStatus = %v", stats.ByStatus)
	}
	if stats.ByPriority[task.PriorityHigh] != 1 || stats.ByPriority[task.PriorityLow] != 2 {
		t.Errorf("ByPriority = %v", stats.ByPriority)
	}

	// 2h + 30min parsed; "whenever" excluded from the sum but counted.
	if stats.TrackedMinutes != 150 {
		t.Errorf("TrackedMinutes = %d, want 150", stats.TrackedMinutes)
	}
	if stats.Unparsed != 1 {
		t.Errorf("Unparsed = %d, want 1", stats.Unparsed)
	}

	if !stats.File.Exists || stats.File.TaskCount != 3 {
		t.Errorf("File info = %+v", stats.File)
	}
}

func TestStatisticsEmptyCollection(t *testing.T) {
	m, _ := newTestManager(t)

	stats, err := m.Statistics()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 0 || stats.TrackedMinutes != 0 || stats.Unparsed != 0 {
		t.Errorf("stats of empty collection = %+v", stats)
	}
}

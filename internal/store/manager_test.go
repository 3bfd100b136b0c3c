package store

import (
	"bytes"
	"errors"
	"log"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/aminrms/cli-task-manager/internal/config"
	"github.com/aminrms/cli-task-manager/internal/task"
	"github.com/aminrms/cli-task-manager/internal/testutil"
)

func newTestManager(t *testing.T) (*Manager, *config.Config) {
	t.Helper()

	env := testutil.SetupTestEnv(t)
	cfg := env.NewConfig()
	cfg.DateFormat = "gregorian"
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	return m, cfg
}

func mustAdd(t *testing.T, m *Manager, f task.Fields) task.Task {
	t.Helper()
	added, err := m.Add(f)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	return added
}

func TestAddThenLoadAll(t *testing.T) {
	m, _ := newTestManager(t)

	mustAdd(t, m, task.Fields{
		Date:     "2024-01-01",
		Duration: "2h",
		Name:     "Write report",
		Status:   "pending",
		Priority: "high",
		Tags:     []string{"work"},
	})

	tasks, warnings, err := m.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}

	got := tasks[0]
	if got.Date != "2024-01-01" || got.Duration != "2h" || got.Name != "Write report" {
		t.Errorf("task fields lost in round trip: %+v", got)
	}
	if got.Status != task.StatusPending || got.Priority != task.PriorityHigh {
		t.Errorf("status/priority = %s/%s", got.Status, got.Priority)
	}
	if !reflect.DeepEqual(got.Tags, []string{"work"}) {
		t.Errorf("Tags = %v", got.Tags)
	}
}

func TestAddFillsDefaultDuration(t *testing.T) {
	m, cfg := newTestManager(t)

	added := mustAdd(t, m, task.Fields{Date: "2024-01-01", Name: "no duration"})
	want := task.NormalizeDuration(cfg.DefaultDuration)
	if added.Duration != want {
		t.Errorf("Duration = %q, want default %q", added.Duration, want)
	}
}

func TestRoundTripPreservesOrderAndUnicode(t *testing.T) {
	m, _ := newTestManager(t)

	names := []string{"جلسه با تیم", "Write notes, \"quoted\"", "c"}
	for _, n := range names {
		mustAdd(t, m, task.Fields{Date: "2024-02-02", Duration: "1h", Name: n, Tags: []string{"کار", "x"}})
	}

	tasks, _, err := m.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != len(names) {
		t.Fatalf("got %d tasks, want %d", len(tasks), len(names))
	}
	for i, n := range names {
		if tasks[i].Name != n {
			t.Errorf("tasks[%d].Name = %q, want %q", i, tasks[i].Name, n)
		}
		if !reflect.DeepEqual(tasks[i].Tags, []string{"کار", "x"}) {
			t.Errorf("tasks[%d].Tags = %v", i, tasks[i].Tags)
		}
	}
}

func TestIDSurvivesRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)

	added := mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: "stable"})
	tasks, _, err := m.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if tasks[0].ID != added.ID {
		t.Errorf("ID changed across save/load: %q vs %q", tasks[0].ID, added.ID)
	}
}

func TestEdit(t *testing.T) {
	m, _ := newTestManager(t)

	orig := mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: "before", Status: "pending"})

	name := "after"
	updated, err := m.Edit(0, task.Changes{Name: &name})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if updated.Name != "after" || updated.ID != orig.ID {
		t.Errorf("Edit result: %+v", updated)
	}

	tasks, _, _ := m.LoadAll()
	if tasks[0].Name != "after" || tasks[0].Status != task.StatusPending {
		t.Errorf("edit not persisted: %+v", tasks[0])
	}
}

func TestEditInvalidChangeLeavesFileUntouched(t *testing.T) {
	m, _ := newTestManager(t)
	mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: "keep"})

	bad := "not-a-date"
	if _, err := m.Edit(0, task.Changes{Date: &bad}); err == nil {
		t.Fatal("expected validation error")
	}

	tasks, _, _ := m.LoadAll()
	if tasks[0].Date != "2024-01-01" {
		t.Errorf("failed edit mutated stored task: %+v", tasks[0])
	}
}

func TestDeletePreservesOrder(t *testing.T) {
	m, _ := newTestManager(t)

	for _, n := range []string{"a", "b", "c", "d"} {
		mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: n})
	}

	if _, err := m.Delete(1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	tasks, _, err := m.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, tk := range tasks {
		names = append(names, tk.Name)
	}
	if want := []string{"a", "c", "d"}; !reflect.DeepEqual(names, want) {
		t.Errorf("after delete: %v, want %v", names, want)
	}
}

func TestIndexErrors(t *testing.T) {
	m, _ := newTestManager(t)
	mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: "only"})

	for _, index := range []int{-1, 1, 99} {
		_, err := m.Delete(index)
		var ierr *IndexError
		if !errors.As(err, &ierr) {
			t.Errorf("Delete(%d) = %v, want *IndexError", index, err)
		}
		name := "x"
		_, err = m.Edit(index, task.Changes{Name: &name})
		if !errors.As(err, &ierr) {
			t.Errorf("Edit(%d) = %v, want *IndexError", index, err)
		}
	}

	// The single task must be untouched
	tasks, _, _ := m.LoadAll()
	if len(tasks) != 1 || tasks[0].Name != "only" {
		t.Errorf("stale-index calls mutated the collection: %v", tasks)
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	m, _ := newTestManager(t)

	mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: "alpha", Status: "pending", Priority: "high", Tags: []string{"work"}})
	mustAdd(t, m, task.Fields{Date: "2024-01-02", Duration: "1h", Name: "beta", Status: "completed", Priority: "low"})

	before, _, _ := m.LoadAll()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"by date", Filter{Date: "2024-01-01"}, []string{"alpha"}},
		{"by slash date", Filter{Date: "2024/01/02"}, []string{"beta"}},
		{"by status", Filter{Status: task.StatusCompleted}, []string{"beta"}},
		{"by priority", Filter{Priority: task.PriorityHigh}, []string{"alpha"}},
		{"by tag", Filter{Tag: "work"}, []string{"alpha"}},
		{"by query", Filter{Query: "ALPH"}, []string{"alpha"}},
		{"combined", Filter{Date: "2024-01-01", Status: task.StatusPending}, []string{"alpha"}},
		{"no match", Filter{Query: "gamma"}, nil},
	}

	for _, tt := range tests {
		got, err := m.Filter(tt.filter)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		var names []string
		for _, tk := range got {
			names = append(names, tk.Name)
		}
		if !reflect.DeepEqual(names, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, names, tt.want)
		}
	}

	after, _, _ := m.LoadAll()
	if !reflect.DeepEqual(taskNames(before), taskNames(after)) {
		t.Error("Filter mutated the collection")
	}
}

func taskNames(tasks []task.Task) []string {
	var names []string
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	return names
}

func TestTodayUsesConfiguredCalendar(t *testing.T) {
	m, _ := newTestManager(t)

	mustAdd(t, m, task.Fields{Date: m.Calendar().Today(), Duration: "1h", Name: "now"})
	mustAdd(t, m, task.Fields{Date: "2020-01-01", Duration: "1h", Name: "then"})

	tasks, err := m.Today()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Name != "now" {
		t.Errorf("Today() = %v", taskNames(tasks))
	}
}

func TestLoadAllSkipsMalformedRows(t *testing.T) {
	m, _ := newTestManager(t)

	mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: "good"})

	// Corrupt the file by hand: append a row with a broken date.
	f, err := os.OpenFile(m.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("id-x,banana,1h,bad row,,pending,low,,,\n")
	f.Close()

	tasks, warnings, err := m.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll should tolerate bad rows: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "good" {
		t.Errorf("tasks = %v", taskNames(tasks))
	}

	var rowWarning bool
	for _, w := range warnings {
		if strings.Contains(w.Reason, "date") {
			rowWarning = true
		}
	}
	if !rowWarning {
		t.Errorf("expected a date warning, got %v", warnings)
	}
}

func TestMutationReportsDroppedRows(t *testing.T) {
	m, _ := newTestManager(t)
	mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: "good"})

	f, err := os.OpenFile(m.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("id-x,banana,1h,corrupt row,,pending,low,,,\n")
	f.Close()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	// An unrelated mutation rewrites the file without the corrupt row;
	// the drop must be reported, not silent.
	mustAdd(t, m, task.Fields{Date: "2024-01-02", Duration: "1h", Name: "unrelated"})

	logged := buf.String()
	if !strings.Contains(logged, "warning:") || !strings.Contains(logged, "date") {
		t.Errorf("dropped row not reported: %q", logged)
	}

	tasks, warnings, err := m.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Errorf("tasks after rewrite: %v", taskNames(tasks))
	}
	if len(warnings) != 0 {
		t.Errorf("rewrite left warnings behind: %v", warnings)
	}
}

func TestReadPathsReportRowWarnings(t *testing.T) {
	m, _ := newTestManager(t)
	mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: "good"})

	f, err := os.OpenFile(m.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("id-x,banana,1h,corrupt row,,pending,low,,,\n")
	f.Close()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	if _, err := m.Filter(Filter{Query: "good"}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Statistics(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "warning:") {
		t.Errorf("read paths swallowed row warnings: %q", buf.String())
	}
}

func TestExternalEditWarnsChecksum(t *testing.T) {
	m, _ := newTestManager(t)
	mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: "mine"})

	// Hand-edit between runs: valid row, but checksum now stale.
	f, err := os.OpenFile(m.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString(",2024-01-02,1h,external,,pending,low,,,\n")
	f.Close()

	tasks, warnings, err := m.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("hand-added row should still load, got %d tasks", len(tasks))
	}

	var mismatch bool
	for _, w := range warnings {
		if strings.Contains(w.Reason, "checksum") {
			mismatch = true
		}
	}
	if !mismatch {
		t.Errorf("expected checksum warning, got %v", warnings)
	}
}

func TestSaveAllLeavesNoStagingFiles(t *testing.T) {
	m, _ := newTestManager(t)
	mustAdd(t, m, task.Fields{Date: "2024-01-01", Duration: "1h", Name: "x"})

	entries, err := os.ReadDir(strings.TrimSuffix(m.Path(), "tasks.csv"))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".stage-") {
			t.Errorf("staging file left behind: %s", e.Name())
		}
	}
}

func TestStoragePathDirectoryIsFixed(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	cfg := env.NewConfig()
	cfg.DateFormat = "gregorian"
	cfg.CSVFile = env.DataDir // a directory, not a file
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	if !strings.HasSuffix(m.Path(), config.DefaultFileName) {
		t.Errorf("directory path not fixed: %q", m.Path())
	}
	// The correction must have been persisted.
	if cfg.CSVFile != m.Path() {
		t.Errorf("config not updated: %q vs %q", cfg.CSVFile, m.Path())
	}
}

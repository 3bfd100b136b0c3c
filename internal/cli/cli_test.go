package cli

import (
	"testing"

	"github.com/aminrms/cli-task-manager/internal/store"
	"github.com/aminrms/cli-task-manager/internal/testutil"
)

func TestParseIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"12", 11, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := parseIndex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseIndex(%q) = %d, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseIndex(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseIndex(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAddCommand(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	cfg := env.NewConfig()
	cfg.DateFormat = "gregorian"
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	addCmd.Flags().Set("name", "from the cli")
	addCmd.Flags().Set("date", "2024-04-04")
	addCmd.Flags().Set("duration", "1h")
	addCmd.Flags().Set("tags", "a,b")
	defer func() {
		addCmd.Flags().Set("name", "")
		addCmd.Flags().Set("date", "")
		addCmd.Flags().Set("duration", "")
		addCmd.Flags().Set("tags", "")
	}()

	if err := runAdd(addCmd, nil); err != nil {
		t.Fatalf("runAdd failed: %v", err)
	}

	m, err := store.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	tasks, _, err := m.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Name != "from the cli" {
		t.Errorf("tasks = %+v", tasks)
	}
	if len(tasks[0].Tags) != 2 {
		t.Errorf("Tags = %v", tasks[0].Tags)
	}
}

func TestDeleteCommandRejectsStaleIndex(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	cfg := env.NewConfig()
	cfg.DateFormat = "gregorian"
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	deleteCmd.Flags().Set("yes", "true")
	defer deleteCmd.Flags().Set("yes", "false")

	if err := runDelete(deleteCmd, []string{"7"}); err == nil {
		t.Fatal("deleting from an empty collection should fail")
	}
}

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aminrms/cli-task-manager/internal/prompt"
	"github.com/aminrms/cli-task-manager/internal/task"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task",
	Long: `Add a task to the tracker.

With --name set, the task is created from flags alone; otherwise the
missing fields are prompted for interactively. The date defaults to
today in the configured calendar.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("date", "", "Task date (defaults to today)")
	addCmd.Flags().String("duration", "", "Duration, e.g. 2h or 1h 30min")
	addCmd.Flags().StringP("name", "n", "", "Short task label")
	addCmd.Flags().String("desc", "", "Longer description")
	addCmd.Flags().String("status", "", "pending, in-progress or completed")
	addCmd.Flags().String("priority", "", "low, medium or high")
	addCmd.Flags().String("tags", "", "Comma-separated tags")
}

func runAdd(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	f := task.Fields{}
	f.Date, _ = cmd.Flags().GetString("date")
	f.Duration, _ = cmd.Flags().GetString("duration")
	f.Name, _ = cmd.Flags().GetString("name")
	f.Description, _ = cmd.Flags().GetString("desc")
	f.Status, _ = cmd.Flags().GetString("status")
	f.Priority, _ = cmd.Flags().GetString("priority")
	tags, _ := cmd.Flags().GetString("tags")
	f.Tags = task.SplitTags(tags)

	cal := e.manager.Calendar()
	if strings.TrimSpace(f.Name) == "" {
		p := prompt.New(os.Stdin, os.Stdout)
		f.Name = p.Ask("Task", "")
		if f.Date == "" {
			f.Date = p.Ask("Date", cal.Today())
		}
		if f.Duration == "" {
			f.Duration = p.Ask("Duration", e.cfg.DefaultDuration)
		}
		if f.Description == "" {
			f.Description = p.Ask("Description", "")
		}
		if f.Status == "" {
			f.Status = p.Ask("Status (pending/in-progress/completed)", string(task.StatusCompleted))
		}
		if f.Priority == "" {
			f.Priority = p.Ask("Priority (low/medium/high)", string(task.PriorityMedium))
		}
		if len(f.Tags) == 0 {
			f.Tags = task.SplitTags(p.Ask("Tags (comma-separated)", ""))
		}
	}
	if f.Date == "" {
		f.Date = cal.Today()
	}

	t, err := e.manager.Add(f)
	if err != nil {
		return err
	}
	fmt.Printf("Added %q on %s (%s)\n", t.Name, cal.Display(t.Date), t.Duration)
	return nil
}

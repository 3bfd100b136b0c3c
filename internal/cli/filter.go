package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aminrms/cli-task-manager/internal/store"
	"github.com/aminrms/cli-task-manager/internal/task"
	"github.com/aminrms/cli-task-manager/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks by text",
	Long:  "Case-insensitive substring search across task names, descriptions and tags.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter tasks by date, status, priority or tag",
	RunE:  runFilter,
}

func init() {
	filterCmd.Flags().String("date", "", "Exact date in the configured calendar")
	filterCmd.Flags().String("status", "", "pending, in-progress or completed")
	filterCmd.Flags().String("priority", "", "low, medium or high")
	filterCmd.Flags().String("tag", "", "Exact tag match")
	filterCmd.Flags().StringP("query", "q", "", "Substring across name, description and tags")
}

func runSearch(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	tasks, err := e.manager.Search(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Print(ui.RenderTasks(e.theme, e.manager.Calendar(), tasks))
	return nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	f := store.Filter{}
	f.Date, _ = cmd.Flags().GetString("date")
	f.Query, _ = cmd.Flags().GetString("query")
	f.Tag, _ = cmd.Flags().GetString("tag")

	if s, _ := cmd.Flags().GetString("status"); s != "" {
		status := task.Status(s)
		if !status.Valid() {
			return fmt.Errorf("unknown status %q (pending, in-progress or completed)", s)
		}
		f.Status = status
	}
	if p, _ := cmd.Flags().GetString("priority"); p != "" {
		priority := task.Priority(p)
		if !priority.Valid() {
			return fmt.Errorf("unknown priority %q (low, medium or high)", p)
		}
		f.Priority = priority
	}

	tasks, err := e.manager.Filter(f)
	if err != nil {
		return err
	}
	fmt.Print(ui.RenderTasks(e.theme, e.manager.Calendar(), tasks))
	return nil
}

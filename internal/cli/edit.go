package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aminrms/cli-task-manager/internal/task"
)

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit the task at the given list index",
	Long: `Edit a task in place. The index is the # column from list.

Only the flags you pass are changed; the merged record is re-validated
as a whole before anything is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().String("date", "", "New date")
	editCmd.Flags().String("duration", "", "New duration")
	editCmd.Flags().StringP("name", "n", "", "New label")
	editCmd.Flags().String("desc", "", "New description")
	editCmd.Flags().String("status", "", "New status")
	editCmd.Flags().String("priority", "", "New priority")
	editCmd.Flags().String("tags", "", "New comma-separated tag set")
}

func runEdit(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}

	changes := task.Changes{}
	stringChange := func(flag string, dst **string) {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			*dst = &v
		}
	}
	stringChange("date", &changes.Date)
	stringChange("duration", &changes.Duration)
	stringChange("name", &changes.Name)
	stringChange("desc", &changes.Description)
	stringChange("status", &changes.Status)
	stringChange("priority", &changes.Priority)
	if cmd.Flags().Changed("tags") {
		v, _ := cmd.Flags().GetString("tags")
		changes.Tags = task.SplitTags(v)
		if changes.Tags == nil {
			changes.Tags = []string{}
		}
	}

	t, err := e.manager.Edit(index, changes)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %q\n", t.Name)
	return nil
}

// parseIndex converts the 1-based index shown in listings into the
// 0-based index the store uses.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("index must be a positive number (the # column from list), got %q", s)
	}
	return n - 1, nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aminrms/cli-task-manager/internal/prompt"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete the task at the given list index",
	Long: `Delete a task. The index is the # column from list.

Deletion shifts every later index down by one; list again before
deleting more.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every task",
	Long:  "Delete every task. A backup is always taken first, even with auto_backup off.",
	RunE:  runClear,
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	clearCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		p := prompt.New(os.Stdin, os.Stdout)
		if !p.Confirm(fmt.Sprintf("Delete task %d?", index+1), false) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	t, err := e.manager.Delete(index)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %q\n", t.Name)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		p := prompt.New(os.Stdin, os.Stdout)
		if !p.Confirm("Delete ALL tasks? A backup will be taken first", false) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := e.manager.ClearAll(); err != nil {
		return err
	}
	fmt.Println("All tasks deleted. The previous collection is in the backups directory.")
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aminrms/cli-task-manager/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long: `List the full task collection in file order.

The # column is the index used by edit and delete. Indices shift after
every add, edit, delete or import, so list again before the next one.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	tasks, warnings, err := e.manager.LoadAll()
	if err != nil {
		return err
	}
	e.printWarnings(warnings)

	fmt.Print(ui.RenderTasks(e.theme, e.manager.Calendar(), tasks))
	return nil
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "List today's tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		tasks, err := e.manager.Today()
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderTasks(e.theme, e.manager.Calendar(), tasks))
		return nil
	},
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aminrms/cli-task-manager/internal/ui"
)

// The interactive menu drives the same run functions as the
// subcommands, looping until the user quits.
var menuItems = []ui.MenuItem{
	{Label: "Add task", Action: "add"},
	{Label: "List tasks", Action: "list"},
	{Label: "Today's tasks", Action: "today"},
	{Label: "Filter tasks", Action: "filter"},
	{Label: "Statistics", Action: "stats"},
	{Label: "Data file info", Action: "info"},
	{Label: "Configuration", Action: "config"},
	{Label: "Quit", Action: ""},
}

func runMenu(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	for {
		action, err := ui.RunMenu("task-cli", menuItems, e.theme)
		if err != nil {
			return err
		}

		switch action {
		case "add":
			err = runAdd(addCmd, nil)
		case "list":
			err = runList(listCmd, nil)
		case "today":
			err = todayCmd.RunE(todayCmd, nil)
		case "filter":
			err = runFilter(filterCmd, nil)
		case "stats":
			err = statsCmd.RunE(statsCmd, nil)
		case "info":
			err = infoCmd.RunE(infoCmd, nil)
		case "config":
			err = runConfigShow(configCmd, nil)
		case "":
			return nil
		}
		if err != nil {
			fmt.Println("Error:", err)
		}
		fmt.Println()
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aminrms/cli-task-manager/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		stats, err := e.manager.Statistics()
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderStatistics(e.theme, stats))
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show data file information",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		info, err := e.manager.DataInfo()
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderInfo(e.theme, info))
		return nil
	},
}

// Package cli wires the cobra command tree. Each command resolves the
// configuration, builds a store.Manager, and prints through the ui
// package; nothing here touches the storage file directly.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "task-cli",
		Short: "task-cli - terminal task tracker",
		Long: `task-cli tracks your work in a plain CSV file you own.

Tasks carry a date (Gregorian or Jalali), a duration, a status, a
priority and tags. Run without arguments for the interactive menu, or
use the subcommands directly.`,
		RunE:          runMenu, // Default action is the interactive menu
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

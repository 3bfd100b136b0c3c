package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aminrms/cli-task-manager/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export all tasks to a file",
	Long:  "Export the collection as CSV, JSON or YAML. The format follows --format, or the file extension.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import tasks from a file",
	Long: `Import tasks from a CSV, JSON or YAML file (format by extension).

Every row is validated; bad rows are skipped and reported, the rest are
appended to the collection.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().String("format", "", "csv, json or yaml (default: from extension)")
}

func runExport(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	path := args[0]
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			format = store.FormatJSON
		case ".yaml", ".yml":
			format = store.FormatYAML
		default:
			format = store.FormatCSV
		}
	}

	if err := e.manager.Export(path, format); err != nil {
		return err
	}
	fmt.Printf("Exported to %s (%s)\n", path, format)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	report, err := e.manager.Import(args[0])
	if err != nil {
		return err
	}
	e.printWarnings(report.Warnings)
	fmt.Printf("Imported %d tasks, skipped %d\n", report.Imported, report.Skipped)
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dastanaron/bookmarktree/internal/commands"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the stored tree to a file",
	Long: `Serialize the stored tree to html, json, csv or markdown. Without
--format the format is inferred from the file extension.

Examples:
  bookmarktree export bookmarks.html
  bookmarktree export --format markdown bookmarks.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.NewExportCommand(svc).Execute(args[0], exportFormat)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format: html, json, csv, markdown")
	rootCmd.AddCommand(exportCmd)
}

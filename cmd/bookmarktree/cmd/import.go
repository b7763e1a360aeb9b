package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dastanaron/bookmarktree/internal/commands"
)

var importCmd = &cobra.Command{
	Use:   "import <file.html>",
	Short: "Replace the stored tree with a bookmark export",
	Long: `Parse a Netscape bookmark HTML export and store it as the current
tree. Both export dialects are understood: the content list nested inside
the folder item (Chrome, Edge) and the content list following it as a
sibling (old Netscape).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.NewImportCommand(svc).Execute(args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

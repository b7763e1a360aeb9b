package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dastanaron/bookmarktree/internal/commands"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file>",
	Short: "Merge another export into the stored tree",
	Long: `Append the nodes of another export (HTML or a JSON dump) onto the
stored tree and recompute duplicate flags over the combined result. Merge
never deletes or renames nodes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.NewMergeCommand(svc).Execute(args[0])
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dastanaron/bookmarktree/internal/commands"
)

var pruneDuplicates bool

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "List bookmarks sharing a URL",
	Long: `List every group of bookmarks pointing at the same URL. With
--prune the first member of each group is kept and the rest are deleted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.NewDuplicatesCommand(svc).Execute(pruneDuplicates)
	},
}

func init() {
	duplicatesCmd.Flags().BoolVar(&pruneDuplicates, "prune", false, "delete all but the first member of each group")
	rootCmd.AddCommand(duplicatesCmd)
}

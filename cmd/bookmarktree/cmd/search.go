package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the stored tree",
	Long: `Search titles, URLs and tags case-insensitively. A query starting
with "tag:" matches only against tags.

Examples:
  bookmarktree search golang
  bookmarktree search tag:reading`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := svc.Search(args[0])
		if err != nil {
			return err
		}
		if len(nodes) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, n := range nodes {
			kind := "bookmark"
			if n.IsFolder() {
				kind = "folder"
			}
			fmt.Printf("[%s] %s  %s  %s\n", kind, n.ID, n.Title, n.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

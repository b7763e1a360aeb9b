package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dastanaron/bookmarktree"
)

var (
	addURL    string
	addParent string
	addTags   []string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a bookmark or folder",
	Long: `Add a node under --parent (top level when omitted or unknown).
Without --url the new node is a folder.

Examples:
  bookmarktree add "Go blog" --url https://go.dev/blog --parent node_3
  bookmarktree add "Reading list"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := bookmarktree.NewNode("", "", args[0], addURL, time.Now().UnixMilli())
		n.Tags = append(n.Tags, addTags...)

		id, err := svc.AddNode(addParent, n)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s\n", id)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addURL, "url", "u", "", "bookmark URL (omit for a folder)")
	addCmd.Flags().StringVarP(&addParent, "parent", "p", "root", "id of the parent folder")
	addCmd.Flags().StringSliceVarP(&addTags, "tag", "t", nil, "tags for the new node")
	rootCmd.AddCommand(addCmd)
}

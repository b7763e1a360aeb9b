package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage node tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add <id> <tag>",
	Short: "Add a tag to a node",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.AddTag(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Tagged %s with %q\n", args[0], args[1])
		return nil
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:   "remove <id> <tag>",
	Short: "Remove a tag from a node",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.RemoveTag(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Removed %q from %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	tagCmd.AddCommand(tagAddCmd, tagRemoveCmd)
	rootCmd.AddCommand(tagCmd)
}

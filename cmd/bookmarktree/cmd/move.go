package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <id> <parent-id>",
	Short: "Move a subtree under another folder",
	Long: `Detach the node and re-attach it as the last child of the given
parent. Use "root" as the parent to move it to the top level. When the
parent does not exist the node is kept at the top level and the error
reported, so nothing is ever lost.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.Move(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Moved %s under %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dastanaron/bookmarktree/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse the stored tree in a terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.NewApp(svc).Run()
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

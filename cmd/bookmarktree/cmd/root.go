package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dastanaron/bookmarktree/internal/config"
	"github.com/dastanaron/bookmarktree/internal/repository"
	"github.com/dastanaron/bookmarktree/internal/service"
)

var (
	dbPath string
	repo   repository.Repository
	svc    *service.TreeService
)

var rootCmd = &cobra.Command{
	Use:   "bookmarktree",
	Short: "Manage browser bookmark exports as a searchable tree",
	Long: `bookmarktree imports Netscape bookmark exports (the HTML file every
browser produces), stores them as a tree and lets you search, deduplicate,
reorganize and re-export them as HTML, JSON, CSV or Markdown.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("cannot create database directory: %w", err)
		}
		r, err := repository.NewSQLiteRepository(dbPath)
		if err != nil {
			return fmt.Errorf("cannot open database: %w", err)
		}
		repo = r
		svc = service.NewTreeService(repo)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if repo != nil {
			repo.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.NewConfig().DBPath, "path to the database file")
}

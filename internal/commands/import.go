package commands

import (
	"fmt"
	"os"

	"github.com/dastanaron/bookmarktree/internal/service"
)

// ImportCommand replaces the stored tree with a parsed bookmark export.
type ImportCommand struct {
	svc *service.TreeService
}

// NewImportCommand creates a new import command
func NewImportCommand(svc *service.TreeService) *ImportCommand {
	return &ImportCommand{svc: svc}
}

// Execute imports bookmarks from an HTML export file
func (c *ImportCommand) Execute(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	count, err := c.svc.Import(file)
	if err != nil {
		return fmt.Errorf("failed to parse bookmarks: %w", err)
	}

	fmt.Printf("Imported %d nodes.\n", count)
	return nil
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dastanaron/bookmarktree/internal/service"
)

// ExportCommand writes the stored tree to a file in one of the supported
// output formats.
type ExportCommand struct {
	svc *service.TreeService
}

// NewExportCommand creates a new export command
func NewExportCommand(svc *service.TreeService) *ExportCommand {
	return &ExportCommand{svc: svc}
}

// Execute exports the tree to filePath. An empty format is inferred from
// the file extension, defaulting to html.
func (c *ExportCommand) Execute(filePath, format string) error {
	if format == "" {
		format = formatForPath(filePath)
	}

	out, err := c.svc.Export(format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filePath, []byte(out), 0644); err != nil {
		return fmt.Errorf("cannot write file: %w", err)
	}

	fmt.Printf("Exported bookmarks to %s (%s)\n", filePath, format)
	return nil
}

func formatForPath(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return "json"
	case ".csv":
		return "csv"
	case ".md", ".markdown":
		return "markdown"
	}
	return "html"
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dastanaron/bookmarktree"
	"github.com/dastanaron/bookmarktree/internal/service"
)

// MergeCommand appends another export onto the stored tree and recomputes
// duplicate flags over the combined result.
type MergeCommand struct {
	svc *service.TreeService
}

// NewMergeCommand creates a new merge command
func NewMergeCommand(svc *service.TreeService) *MergeCommand {
	return &MergeCommand{svc: svc}
}

// Execute merges the tree stored in filePath, either a Netscape HTML export
// or a JSON dump produced by the json exporter.
func (c *MergeCommand) Execute(filePath string) error {
	target, err := readTree(filePath)
	if err != nil {
		return err
	}

	flagged, err := c.svc.Merge(target)
	if err != nil {
		return err
	}

	fmt.Printf("Merged %d nodes, %d duplicates flagged.\n", target.Count(), flagged)
	return nil
}

func readTree(filePath string) (bookmarktree.Tree, error) {
	if strings.EqualFold(filepath.Ext(filePath), ".json") {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("cannot read file: %w", err)
		}
		return bookmarktree.DecodeTree(data)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	root, err := bookmarktree.Parse(file)
	if err != nil {
		return nil, err
	}
	return bookmarktree.Tree{root}, nil
}

package commands

import (
	"fmt"

	"github.com/dastanaron/bookmarktree/internal/service"
)

// DuplicatesCommand reports bookmarks sharing a URL and can prune them down
// to one survivor per group.
type DuplicatesCommand struct {
	svc *service.TreeService
}

// NewDuplicatesCommand creates a new duplicates command
func NewDuplicatesCommand(svc *service.TreeService) *DuplicatesCommand {
	return &DuplicatesCommand{svc: svc}
}

// Execute lists duplicate groups. With prune set it keeps the first member
// of each group and deletes the rest.
func (c *DuplicatesCommand) Execute(prune bool) error {
	groups, err := c.svc.Duplicates()
	if err != nil {
		return fmt.Errorf("failed to find duplicates: %w", err)
	}

	if len(groups) == 0 {
		fmt.Println("No duplicate bookmarks found.")
		return nil
	}

	for _, g := range groups {
		fmt.Printf("%s (%d entries)\n", g.URL, len(g.Nodes))
		for _, n := range g.Nodes {
			fmt.Printf("  %s  %s\n", n.ID, n.Title)
		}
	}

	if !prune {
		return nil
	}

	deleted, err := c.svc.PruneDuplicates()
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d duplicate bookmark(s).\n", deleted)
	return nil
}

package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/dastanaron/bookmarktree"
	"github.com/dastanaron/bookmarktree/internal/repository"
)

// TreeService glues the stateless tree engine to a repository: every call
// loads the snapshot, applies one engine operation and saves the result.
type TreeService struct {
	repo repository.Repository
}

// NewTreeService creates a new tree service.
func NewTreeService(repo repository.Repository) *TreeService {
	return &TreeService{repo: repo}
}

// Tree returns the current snapshot.
func (s *TreeService) Tree() (bookmarktree.Tree, error) {
	return s.repo.LoadTree()
}

// Import parses a Netscape bookmark export and replaces the snapshot with
// it. Returns the number of nodes stored, the synthetic root included.
func (s *TreeService) Import(r io.Reader) (int, error) {
	root, err := bookmarktree.Parse(r)
	if err != nil {
		return 0, err
	}
	tree := bookmarktree.Tree{root}
	if err := s.repo.SaveTree(tree); err != nil {
		return 0, err
	}
	return tree.Count(), nil
}

// Export serializes the snapshot into one of the supported formats:
// html, json, csv or markdown.
func (s *TreeService) Export(format string) (string, error) {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return "", err
	}
	switch format {
	case "html":
		return tree.SerializeToHTML(), nil
	case "json":
		return tree.SerializeToJSON(), nil
	case "csv":
		return tree.SerializeToCSV(), nil
	case "markdown", "md":
		return tree.SerializeToMarkdown(), nil
	}
	return "", fmt.Errorf("unknown export format %q", format)
}

// Merge appends the target tree onto the snapshot and recomputes duplicate
// flags. Returns how many nodes are flagged as duplicates afterwards.
func (s *TreeService) Merge(target bookmarktree.Tree) (int, error) {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return 0, err
	}
	merged := bookmarktree.Merge(tree, target)
	if err := s.repo.SaveTree(merged); err != nil {
		return 0, err
	}

	flagged := 0
	for _, n := range merged.CollectAll() {
		if n.IsDuplicate {
			flagged++
		}
	}
	return flagged, nil
}

// Search returns the matching nodes in traversal order.
func (s *TreeService) Search(query string) ([]*bookmarktree.Node, error) {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return nil, err
	}
	var nodes []*bookmarktree.Node
	for _, id := range tree.Search(query) {
		if n := tree.FindByID(id); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// Duplicates reports all URL duplicate groups in the snapshot.
func (s *TreeService) Duplicates() ([]bookmarktree.DuplicateGroup, error) {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return nil, err
	}
	return tree.FindDuplicates(), nil
}

// PruneDuplicates deletes every duplicate except the first flatten-order
// member of each group, then recomputes the remaining flags. Returns the
// number of deleted nodes.
func (s *TreeService) PruneDuplicates() (int, error) {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, group := range tree.FindDuplicates() {
		for _, n := range group.Nodes[1:] {
			pruned, err := tree.Delete(n.ID)
			if err != nil {
				return deleted, err
			}
			tree = pruned
			deleted++
		}
	}
	tree.MarkDuplicates()

	if err := s.repo.SaveTree(tree); err != nil {
		return deleted, err
	}
	return deleted, nil
}

// Update applies a partial update to the node with the given id.
func (s *TreeService) Update(id string, fields map[string]any) error {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return err
	}
	tree.Update(id, fields)
	return s.repo.SaveTree(tree)
}

// AddNode attaches a new node under parentID and returns its minted id.
func (s *TreeService) AddNode(parentID string, n *bookmarktree.Node) (string, error) {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return "", err
	}
	tree = tree.Add(parentID, n)
	if err := s.repo.SaveTree(tree); err != nil {
		return "", err
	}
	return n.ID, nil
}

// Delete removes a node and its subtree.
func (s *TreeService) Delete(id string) error {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return err
	}
	tree, err = tree.Delete(id)
	if err != nil {
		return err
	}
	return s.repo.SaveTree(tree)
}

// Move re-homes a subtree. When the destination parent does not resolve the
// engine keeps the subtree at top level; that outcome is persisted and the
// NotFoundError still reported, so the caller learns the intended parent is
// gone without losing the node.
func (s *TreeService) Move(id, newParentID string) error {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return err
	}

	moved, err := tree.Move(id, newParentID)
	if err != nil {
		var nf *bookmarktree.NotFoundError
		if errors.As(err, &nf) && nf.ID == id {
			return err // nothing changed
		}
		if saveErr := s.repo.SaveTree(moved); saveErr != nil {
			return saveErr
		}
		return err
	}
	return s.repo.SaveTree(moved)
}

// AddTag adds a tag to the node with the given id.
func (s *TreeService) AddTag(id, tag string) error {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return err
	}
	tree.AddTag(id, tag)
	return s.repo.SaveTree(tree)
}

// RemoveTag removes a tag from the node with the given id.
func (s *TreeService) RemoveTag(id, tag string) error {
	tree, err := s.repo.LoadTree()
	if err != nil {
		return err
	}
	tree.RemoveTag(id, tag)
	return s.repo.SaveTree(tree)
}

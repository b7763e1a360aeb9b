package repository

import "github.com/dastanaron/bookmarktree"

// Repository persists bookmark tree snapshots for the CLI host. The core
// tree engine is stateless; a repository is the only place a tree outlives
// a process.
type Repository interface {
	// SaveTree replaces the stored snapshot with the given tree.
	SaveTree(tree bookmarktree.Tree) error
	// LoadTree rebuilds the stored snapshot. An empty store yields an
	// empty tree, not an error.
	LoadTree() (bookmarktree.Tree, error)
	Close() error
}

package repository

import (
	"database/sql"
	"strings"

	"github.com/dastanaron/bookmarktree"

	_ "github.com/mattn/go-sqlite3"
)

// tagSeparator joins tags into one column. The unit separator cannot occur
// in tag text the way "," or ";" can.
const tagSeparator = "\x1f"

// SQLiteRepository implements Repository using SQLite. The tree is stored
// flattened: one row per node, sibling order kept in the position column.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (and if needed initializes) the database at dbPath.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS nodes (
		id TEXT PRIMARY KEY,
		parent_id TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT 0,
		title TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		add_date INTEGER NOT NULL DEFAULT 0,
		last_modified INTEGER NOT NULL DEFAULT 0,
		icon TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		is_duplicate INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_nodes_parent ON nodes(parent_id);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveTree replaces the snapshot in one transaction, so a failed save never
// leaves a half-written tree behind.
func (r *SQLiteRepository) SaveTree(tree bookmarktree.Tree) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM nodes`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO nodes (id, parent_id, position, title, url, add_date, last_modified, icon, tags, is_duplicate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	var insert func(nodes []*bookmarktree.Node, parentID string) error
	insert = func(nodes []*bookmarktree.Node, parentID string) error {
		for i, n := range nodes {
			dup := 0
			if n.IsDuplicate {
				dup = 1
			}
			_, err := stmt.Exec(n.ID, parentID, i, n.Title, n.URL, n.AddDate, n.LastModified, n.Icon, strings.Join(n.Tags, tagSeparator), dup)
			if err != nil {
				return err
			}
			if err := insert(n.Children, n.ID); err != nil {
				return err
			}
		}
		return nil
	}
	if err := insert(tree, ""); err != nil {
		return err
	}

	return tx.Commit()
}

// LoadTree rebuilds the nested tree from the flat rows. Rows referencing a
// missing parent are kept at top level rather than dropped.
func (r *SQLiteRepository) LoadTree() (bookmarktree.Tree, error) {
	rows, err := r.db.Query(`
		SELECT id, parent_id, title, url, add_date, last_modified, icon, tags, is_duplicate
		FROM nodes
		ORDER BY parent_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type record struct {
		node     *bookmarktree.Node
		parentID string
	}

	var records []record
	byID := make(map[string]*bookmarktree.Node)
	for rows.Next() {
		var (
			n        bookmarktree.Node
			parentID string
			tags     string
			dup      int
		)
		if err := rows.Scan(&n.ID, &parentID, &n.Title, &n.URL, &n.AddDate, &n.LastModified, &n.Icon, &tags, &dup); err != nil {
			return nil, err
		}
		n.IsDuplicate = dup == 1
		n.Tags = []string{}
		if tags != "" {
			n.Tags = strings.Split(tags, tagSeparator)
		}
		n.Children = []*bookmarktree.Node{}

		records = append(records, record{node: &n, parentID: parentID})
		byID[n.ID] = &n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tree := bookmarktree.Tree{}
	for _, rec := range records {
		parent := byID[rec.parentID]
		if rec.parentID == "" || parent == nil {
			rec.node.ParentID = ""
			tree = append(tree, rec.node)
			continue
		}
		rec.node.ParentID = rec.parentID
		parent.Children = append(parent.Children, rec.node)
	}
	return tree, nil
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

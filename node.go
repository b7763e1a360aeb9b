package bookmarktree

// Node represents a single entry in a bookmark tree: a bookmark when URL is
// set, a folder otherwise. Children are owned exclusively by their parent.
type Node struct {
	ID           string   `json:"id"`
	ParentID     string   `json:"parentId,omitempty"`
	Title        string   `json:"title"`
	URL          string   `json:"url,omitempty"`
	AddDate      int64    `json:"addDate"`
	LastModified int64    `json:"lastModified"`
	Icon         string   `json:"icon,omitempty"`
	Tags         []string `json:"tags"`
	IsDuplicate  bool     `json:"isDuplicate"`
	Children     []*Node  `json:"children"`
}

// NewNode creates a node with LastModified mirroring AddDate, no tags and no
// children. Dates are milliseconds since epoch.
func NewNode(id, parentID, title, url string, addDate int64) *Node {
	return &Node{
		ID:           id,
		ParentID:     parentID,
		Title:        title,
		URL:          url,
		AddDate:      addDate,
		LastModified: addDate,
		Tags:         []string{},
		Children:     []*Node{},
	}
}

// IsFolder reports whether the node is a folder. A node without a URL is a
// folder even if it has never held children.
func (n *Node) IsFolder() bool {
	return n.URL == ""
}

// Tree is the working form of a bookmark collection: an ordered sequence of
// root-level nodes. Parse produces a tree holding a single synthetic root.
type Tree []*Node

// DuplicateGroup reports all nodes sharing one exact URL. It is a read-only
// view over the tree; the nodes are not copies.
type DuplicateGroup struct {
	URL   string  `json:"url"`
	Nodes []*Node `json:"nodes"`
}

// RootID is the id of the synthetic root created by Parse. Move treats it,
// along with the empty string, as "top level".
const RootID = "root"

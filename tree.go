package bookmarktree

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// FindByID returns the first node with the given id in pre-order traversal,
// or nil. Ids are unique within a tree, so first match is the only match.
func (t Tree) FindByID(id string) *Node {
	for _, n := range t {
		if found := findByID(n, id); found != nil {
			return found
		}
	}
	return nil
}

func findByID(n *Node, id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// CollectAll flattens the tree in pre-order, folders included.
func (t Tree) CollectAll() []*Node {
	var all []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		all = append(all, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range t {
		walk(n)
	}
	return all
}

// Count returns the total number of nodes in the tree, folders included.
func (t Tree) Count() int {
	return len(t.CollectAll())
}

// FindDuplicates groups nodes by exact URL equality and reports every group
// with at least two members. Folders have no URL and never participate.
// Member order inside a group follows flatten order.
func (t Tree) FindDuplicates() []DuplicateGroup {
	byURL := make(map[string][]*Node)
	var order []string
	for _, n := range t.CollectAll() {
		if n.URL == "" {
			continue
		}
		if _, seen := byURL[n.URL]; !seen {
			order = append(order, n.URL)
		}
		byURL[n.URL] = append(byURL[n.URL], n)
	}

	var groups []DuplicateGroup
	for _, url := range order {
		if nodes := byURL[url]; len(nodes) > 1 {
			groups = append(groups, DuplicateGroup{URL: url, Nodes: nodes})
		}
	}
	return groups
}

// MarkDuplicates recomputes IsDuplicate for every node from the current URL
// membership. Flags of nodes that are no longer duplicated are cleared, not
// just newly duplicated ones set.
func (t Tree) MarkDuplicates() {
	all := t.CollectAll()
	counts := make(map[string]int)
	for _, n := range all {
		if n.URL != "" {
			counts[n.URL]++
		}
	}
	for _, n := range all {
		n.IsDuplicate = n.URL != "" && counts[n.URL] > 1
	}
}

// Search returns the ids of matching nodes in pre-order traversal order.
// A query starting with "tag:" matches nodes owning a tag that contains the
// remainder case-insensitively; any other query matches against title, URL
// and tags. Folders are eligible like any node.
func (t Tree) Search(query string) []string {
	q := strings.ToLower(query)
	var ids []string

	if tag, ok := strings.CutPrefix(q, "tag:"); ok {
		for _, n := range t.CollectAll() {
			if containsTag(n.Tags, tag) {
				ids = append(ids, n.ID)
			}
		}
		return ids
	}

	for _, n := range t.CollectAll() {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.URL), q) ||
			containsTag(n.Tags, q) {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func containsTag(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Update applies a partial update to the node with the given id. Only keys
// present in fields are touched; an explicit nil clears url or icon, turning
// a bookmark into a folder without moving its children. LastModified is
// stamped whenever the node is found, even if nothing changed. A missing id
// is a silent no-op.
func (t Tree) Update(id string, fields map[string]any) {
	n := t.FindByID(id)
	if n == nil {
		return
	}

	if v, ok := fields["title"]; ok {
		if s, ok := v.(string); ok {
			n.Title = s
		}
	}
	if v, ok := fields["url"]; ok {
		switch s := v.(type) {
		case string:
			n.URL = s
		case nil:
			n.URL = ""
		}
	}
	if v, ok := fields["icon"]; ok {
		switch s := v.(type) {
		case string:
			n.Icon = s
		case nil:
			n.Icon = ""
		}
	}
	if v, ok := fields["tags"]; ok {
		n.Tags = toStringSlice(v)
	}
	if v, ok := fields["isDuplicate"]; ok {
		// Caller-forced override, bypasses recomputation.
		if b, ok := v.(bool); ok {
			n.IsDuplicate = b
		}
	}

	n.LastModified = time.Now().UnixMilli()
}

// toStringSlice accepts both []string and the []any that JSON decoding
// produces; anything else yields an empty tag set.
func toStringSlice(v any) []string {
	switch vs := v.(type) {
	case []string:
		return slices.Clone(vs)
	case []any:
		tags := make([]string, 0, len(vs))
		for _, item := range vs {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	}
	return []string{}
}

// AddTag appends a tag to the node's tag set. Adding a tag the node already
// owns is a no-op, as is a missing id.
func (t Tree) AddTag(id, tag string) {
	n := t.FindByID(id)
	if n == nil {
		return
	}
	if slices.Contains(n.Tags, tag) {
		return
	}
	n.Tags = append(n.Tags, tag)
}

// RemoveTag removes every occurrence of the exact tag string from the node.
// A missing id is a no-op.
func (t Tree) RemoveTag(id, tag string) {
	n := t.FindByID(id)
	if n == nil {
		return
	}
	n.Tags = slices.DeleteFunc(n.Tags, func(s string) bool { return s == tag })
}

// Add mints a fresh timestamp id for n and appends it to the children of
// parentID. An unknown parent is not an error: the node lands at top level.
func (t Tree) Add(parentID string, n *Node) Tree {
	n.ID = fmt.Sprintf("node_%d", time.Now().UnixMilli())
	if parent := t.FindByID(parentID); parent != nil {
		n.ParentID = parentID
		parent.Children = append(parent.Children, n)
		return t
	}
	n.ParentID = ""
	return append(t, n)
}

// Delete removes the node with the given id together with its entire
// subtree. Unlike Update and Add it is strict: a missing id returns a
// NotFoundError, because a silent no-op on deletion would mislead callers
// expecting confirmation.
func (t Tree) Delete(id string) (Tree, error) {
	rest, removed := t.detach(id)
	if removed == nil {
		return t, &NotFoundError{ID: id}
	}
	return rest, nil
}

// Move detaches the subtree rooted at id and re-attaches it as the last
// child of newParentID. The sentinels "root" and "" mean top level. A
// missing id returns a NotFoundError with the tree untouched. A missing
// destination re-inserts the subtree at top level so it is never lost, and
// still returns a NotFoundError for the parent. Detaching before resolving
// the destination also makes a node unreachable as its own descendant's
// parent, which keeps the tree acyclic.
func (t Tree) Move(id, newParentID string) (Tree, error) {
	rest, n := t.detach(id)
	if n == nil {
		return t, &NotFoundError{ID: id}
	}

	if newParentID == "" || newParentID == RootID {
		n.ParentID = ""
		return append(rest, n), nil
	}

	if parent := rest.FindByID(newParentID); parent != nil {
		n.ParentID = newParentID
		parent.Children = append(parent.Children, n)
		return rest, nil
	}

	n.ParentID = ""
	return append(rest, n), &NotFoundError{ID: newParentID}
}

// detach removes the node with the given id from wherever it sits and
// returns it, children intact. The second return is nil when the id does
// not resolve.
func (t Tree) detach(id string) (Tree, *Node) {
	for i, n := range t {
		if n.ID == id {
			return append(t[:i:i], t[i+1:]...), n
		}
		if found := detachChild(n, id); found != nil {
			return t, found
		}
	}
	return t, nil
}

func detachChild(parent *Node, id string) *Node {
	for i, c := range parent.Children {
		if c.ID == id {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return c
		}
		if found := detachChild(c, id); found != nil {
			return found
		}
	}
	return nil
}

// Merge appends target's root-level nodes onto base and recomputes every
// duplicate flag over the combined tree. It never deletes, renames or
// unifies nodes.
func Merge(base, target Tree) Tree {
	merged := append(slices.Clone(base), target...)
	merged.MarkDuplicates()
	return merged
}

package bookmarktree

import (
	"errors"
	"testing"
	"time"
)

// sampleTree builds:
//
//	root
//	├── Work (folder)
//	│   ├── Site A (http://a.com)
//	│   └── Site B (http://b.com)
//	└── Site A again (http://a.com)
func sampleTree() Tree {
	root := NewNode(RootID, "", "Bookmarks", "", 0)
	work := NewNode("node_0", RootID, "Work", "", 1000)
	a := NewNode("node_1", "node_0", "Site A", "http://a.com", 2000)
	b := NewNode("node_2", "node_0", "Site B", "http://b.com", 3000)
	again := NewNode("node_3", RootID, "Site A again", "http://a.com", 4000)

	work.Children = append(work.Children, a, b)
	root.Children = append(root.Children, work, again)
	return Tree{root}
}

func TestFindByID(t *testing.T) {
	tree := sampleTree()

	if n := tree.FindByID("node_2"); n == nil || n.Title != "Site B" {
		t.Errorf("FindByID(node_2) = %+v", n)
	}
	if n := tree.FindByID("nope"); n != nil {
		t.Errorf("FindByID(nope) = %+v, want nil", n)
	}
}

func TestCollectAllOrder(t *testing.T) {
	tree := sampleTree()
	var got []string
	for _, n := range tree.CollectAll() {
		got = append(got, n.ID)
	}
	want := []string{"root", "node_0", "node_1", "node_2", "node_3"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFindDuplicates(t *testing.T) {
	tree := sampleTree()
	groups := tree.FindDuplicates()
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	g := groups[0]
	if g.URL != "http://a.com" || len(g.Nodes) != 2 {
		t.Fatalf("unexpected group: %+v", g)
	}
	// Members follow flatten order.
	if g.Nodes[0].ID != "node_1" || g.Nodes[1].ID != "node_3" {
		t.Errorf("member order: %s, %s", g.Nodes[0].ID, g.Nodes[1].ID)
	}
}

func TestMarkDuplicatesClearsStaleFlags(t *testing.T) {
	tree := sampleTree()
	// A stale flag on a unique URL must be cleared by recomputation.
	tree.FindByID("node_2").IsDuplicate = true
	tree.FindByID("node_0").IsDuplicate = true

	tree.MarkDuplicates()

	tests := []struct {
		id   string
		want bool
	}{
		{"node_1", true},
		{"node_3", true},
		{"node_2", false},
		{"node_0", false}, // folder, no URL
		{"root", false},
	}
	for _, tt := range tests {
		if got := tree.FindByID(tt.id).IsDuplicate; got != tt.want {
			t.Errorf("%s: isDuplicate = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestSearch(t *testing.T) {
	tree := sampleTree()
	tree.AddTag("node_1", "Work")
	tree.AddTag("node_1", "Personal")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "tag prefix", query: "tag:work", want: []string{"node_1"}},
		{name: "tag prefix no match", query: "tag:missing", want: nil},
		{name: "title case-insensitive", query: "WORK", want: []string{"node_0", "node_1"}},
		{name: "url substring", query: "b.com", want: []string{"node_2"}},
		{name: "title substring", query: "again", want: []string{"node_3"}},
		{name: "folder title", query: "bookmarks", want: []string{"root"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.Search(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	tree := sampleTree()
	before := time.Now().UnixMilli()

	tree.Update("node_1", map[string]any{
		"title": "Renamed",
		"tags":  []any{"x", "y"},
	})

	n := tree.FindByID("node_1")
	if n.Title != "Renamed" {
		t.Errorf("title = %q", n.Title)
	}
	if len(n.Tags) != 2 || n.Tags[0] != "x" || n.Tags[1] != "y" {
		t.Errorf("tags = %v", n.Tags)
	}
	if n.URL != "http://a.com" {
		t.Errorf("url changed without being in the payload: %q", n.URL)
	}
	if n.LastModified < before {
		t.Errorf("lastModified not stamped: %d < %d", n.LastModified, before)
	}
}

func TestUpdateNullClearsURL(t *testing.T) {
	tree := sampleTree()
	tree.Update("node_1", map[string]any{"url": nil})

	n := tree.FindByID("node_1")
	if !n.IsFolder() {
		t.Errorf("explicit null should clear url, got %q", n.URL)
	}
}

func TestUpdateStampsEvenWhenEmpty(t *testing.T) {
	tree := sampleTree()
	before := time.Now().UnixMilli()
	tree.Update("node_2", map[string]any{})
	if got := tree.FindByID("node_2").LastModified; got < before {
		t.Errorf("lastModified = %d, want >= %d", got, before)
	}
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	tree := sampleTree()
	tree.Update("nope", map[string]any{"title": "x"})
	if tree.Count() != 5 {
		t.Errorf("tree changed by a no-op update")
	}
}

func TestAddRemoveTag(t *testing.T) {
	tree := sampleTree()

	tree.AddTag("node_1", "reading")
	tree.AddTag("node_1", "reading") // idempotent
	if tags := tree.FindByID("node_1").Tags; len(tags) != 1 {
		t.Errorf("tags = %v, want one entry", tags)
	}

	tree.RemoveTag("node_1", "reading")
	if tags := tree.FindByID("node_1").Tags; len(tags) != 0 {
		t.Errorf("tags = %v, want empty", tags)
	}

	// Missing ids are tolerated.
	tree.AddTag("nope", "x")
	tree.RemoveTag("nope", "x")
}

func TestAddAndDelete(t *testing.T) {
	tree := sampleTree()
	n := NewNode("", "", "Fresh", "http://fresh.com", 0)

	tree = tree.Add("node_0", n)
	if n.ID == "" || tree.FindByID(n.ID) == nil {
		t.Fatalf("added node not findable: %+v", n)
	}
	if n.ParentID != "node_0" {
		t.Errorf("parentID = %q", n.ParentID)
	}

	tree, err := tree.Delete(n.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if tree.FindByID(n.ID) != nil {
		t.Errorf("deleted node still findable")
	}
}

func TestAddUnknownParentFallsBackToTopLevel(t *testing.T) {
	tree := sampleTree()
	n := NewNode("", "", "Orphan", "http://o.com", 0)

	tree = tree.Add("no-such-parent", n)
	if len(tree) != 2 {
		t.Fatalf("top-level nodes = %d, want 2", len(tree))
	}
	if tree[1] != n || n.ParentID != "" {
		t.Errorf("orphan not appended at top level: %+v", n)
	}
}

func TestDeleteRemovesSubtree(t *testing.T) {
	tree := sampleTree()
	tree, err := tree.Delete("node_0")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	for _, id := range []string{"node_0", "node_1", "node_2"} {
		if tree.FindByID(id) != nil {
			t.Errorf("%s survived subtree deletion", id)
		}
	}
	if tree.Count() != 2 {
		t.Errorf("count = %d, want 2", tree.Count())
	}
}

func TestDeleteMissingIDFails(t *testing.T) {
	tree := sampleTree()
	_, err := tree.Delete("nope")

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != "nope" {
		t.Fatalf("err = %v, want NotFoundError for nope", err)
	}
	if tree.Count() != 5 {
		t.Errorf("failed delete mutated the tree")
	}
}

func TestMove(t *testing.T) {
	tree := sampleTree()
	before := tree.Count()

	tree, err := tree.Move("node_3", "node_0")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if tree.Count() != before {
		t.Errorf("count = %d, want %d", tree.Count(), before)
	}

	work := tree.FindByID("node_0")
	if len(work.Children) != 3 || work.Children[2].ID != "node_3" {
		t.Fatalf("node_3 not appended as last child: %+v", work.Children)
	}
	if work.Children[2].ParentID != "node_0" {
		t.Errorf("parentID = %q", work.Children[2].ParentID)
	}
}

func TestMoveToTopLevelSentinels(t *testing.T) {
	for _, sentinel := range []string{"root", ""} {
		tree := sampleTree()
		tree, err := tree.Move("node_1", sentinel)
		if err != nil {
			t.Fatalf("Move(%q): %v", sentinel, err)
		}
		if len(tree) != 2 || tree[1].ID != "node_1" {
			t.Fatalf("sentinel %q: node not at top level: %d roots", sentinel, len(tree))
		}
		if len(tree.FindByID("node_0").Children) != 1 {
			t.Errorf("sentinel %q: node not detached from old parent", sentinel)
		}
	}
}

func TestMoveMissingTargetFails(t *testing.T) {
	tree := sampleTree()
	moved, err := tree.Move("nope", "node_0")

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != "nope" {
		t.Fatalf("err = %v, want NotFoundError for nope", err)
	}
	if moved.Count() != 5 {
		t.Errorf("failed move mutated the tree")
	}
}

func TestMoveMissingParentKeepsNode(t *testing.T) {
	tree := sampleTree()
	before := tree.Count()

	moved, err := tree.Move("node_1", "no-such-parent")

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != "no-such-parent" {
		t.Fatalf("err = %v, want NotFoundError for the parent", err)
	}
	// The subtree must not be lost: it lands at top level.
	if moved.Count() != before {
		t.Errorf("count = %d, want %d", moved.Count(), before)
	}
	if len(moved) != 2 || moved[1].ID != "node_1" {
		t.Errorf("node_1 not re-homed at top level")
	}
}

func TestMoveIntoOwnSubtreeFails(t *testing.T) {
	tree := sampleTree()
	moved, err := tree.Move("node_0", "node_1")

	// node_1 sits inside node_0's subtree; once node_0 is detached the
	// destination cannot resolve, so the subtree lands at top level.
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if moved.Count() != 5 {
		t.Errorf("count = %d, want 5", moved.Count())
	}
	if moved.FindByID("node_1") == nil {
		t.Errorf("subtree lost")
	}
}

func TestMerge(t *testing.T) {
	one := Tree{NewNode("a1", "", "One", "http://a.com", 0)}
	two := Tree{NewNode("a2", "", "Two", "http://a.com", 0)}

	merged := Merge(one, two)
	if merged.Count() != 2 {
		t.Fatalf("count = %d, want 2", merged.Count())
	}
	for _, id := range []string{"a1", "a2"} {
		if !merged.FindByID(id).IsDuplicate {
			t.Errorf("%s: isDuplicate = false, want true", id)
		}
	}

	three := Tree{NewNode("a3", "", "Three", "http://c.com", 0)}
	merged = Merge(merged, three)
	if merged.FindByID("a3").IsDuplicate {
		t.Errorf("distinct url flagged as duplicate")
	}
	if !merged.FindByID("a1").IsDuplicate {
		t.Errorf("existing duplicate flag lost on second merge")
	}
}

func TestMarkDuplicatesIsHistoryFree(t *testing.T) {
	// Two trees with identical URL multisets get identical flags no matter
	// how they were edited beforehand.
	a := sampleTree()
	b := sampleTree()
	b.FindByID("node_1").IsDuplicate = true
	b.FindByID("node_2").IsDuplicate = true

	a.MarkDuplicates()
	b.MarkDuplicates()

	for _, id := range []string{"root", "node_0", "node_1", "node_2", "node_3"} {
		if a.FindByID(id).IsDuplicate != b.FindByID(id).IsDuplicate {
			t.Errorf("%s: flags diverge between identical url multisets", id)
		}
	}
}

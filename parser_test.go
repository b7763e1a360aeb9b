package bookmarktree

import (
	"strings"
	"testing"
)

const nestedDialect = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3 ADD_DATE="1000">Work</H3>
    <DL><p>
        <DT><A HREF="http://x.com" ADD_DATE="2000">Site</A>
    </DL><p>
</DL><p>
`

// Same tree, but the folder's DL follows the closed DT as a sibling.
const siblingDialect = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3 ADD_DATE="1000">Work</H3></DT>
    <DL><p>
        <DT><A HREF="http://x.com" ADD_DATE="2000">Site</A></DT>
    </DL><p>
</DL><p>
`

func TestParseDialects(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{name: "nested DL inside DT", markup: nestedDialect},
		{name: "sibling DL after DT", markup: siblingDialect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(strings.NewReader(tt.markup))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if root.ID != "root" || root.Title != "Bookmarks" || !root.IsFolder() {
				t.Fatalf("unexpected root: %+v", root)
			}
			if len(root.Children) != 1 {
				t.Fatalf("root children = %d, want 1", len(root.Children))
			}

			folder := root.Children[0]
			if folder.Title != "Work" || !folder.IsFolder() {
				t.Fatalf("unexpected folder: %+v", folder)
			}
			if folder.AddDate != 1000000 {
				t.Errorf("folder.AddDate = %d, want 1000000", folder.AddDate)
			}
			if len(folder.Children) != 1 {
				t.Fatalf("folder children = %d, want 1", len(folder.Children))
			}

			bm := folder.Children[0]
			if bm.Title != "Site" || bm.URL != "http://x.com" {
				t.Fatalf("unexpected bookmark: %+v", bm)
			}
			if bm.AddDate != 2000000 {
				t.Errorf("bookmark.AddDate = %d, want 2000000", bm.AddDate)
			}
			if bm.ParentID != folder.ID {
				t.Errorf("bookmark.ParentID = %q, want %q", bm.ParentID, folder.ID)
			}
		})
	}
}

func TestParseIDAssignment(t *testing.T) {
	root, err := Parse(strings.NewReader(nestedDialect))
	if err != nil {
		t.Fatal(err)
	}
	folder := root.Children[0]
	if folder.ID != "node_0" {
		t.Errorf("folder.ID = %q, want node_0", folder.ID)
	}
	if folder.Children[0].ID != "node_1" {
		t.Errorf("bookmark.ID = %q, want node_1", folder.Children[0].ID)
	}
}

func TestParseEmptyAndMissingList(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{name: "empty document", markup: ""},
		{name: "no list at all", markup: "<html><body><h1>Bookmarks</h1></body></html>"},
		{name: "empty list", markup: "<DL><p></DL><p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(strings.NewReader(tt.markup))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(root.Children) != 0 {
				t.Errorf("children = %d, want 0", len(root.Children))
			}
		})
	}
}

func TestParseTolerance(t *testing.T) {
	// Unclosed tags everywhere; the parser must still recover the tree.
	markup := `<DL><DT><H3>A</H3><DL><DT><A HREF="http://a.com">B`
	root, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}
	folder := root.Children[0]
	if folder.Title != "A" || len(folder.Children) != 1 {
		t.Fatalf("unexpected folder: %+v", folder)
	}
	if folder.Children[0].URL != "http://a.com" {
		t.Errorf("bookmark URL = %q", folder.Children[0].URL)
	}
}

func TestParseDropsUnrecognizedItems(t *testing.T) {
	markup := `<DL><p>
    <DT>stray text with no anchor</DT>
    <DT><A HREF="http://a.com">Keep</A></DT>
</DL><p>`
	root, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 1 || root.Children[0].Title != "Keep" {
		t.Fatalf("unexpected children: %+v", root.Children)
	}
}

func TestParseEmptyFolderDoesNotSwallowSiblings(t *testing.T) {
	// "Empty" has no DL before the next DT, so the sibling scan must stop
	// and leave the bookmark at top level.
	markup := `<DL><p>
    <DT><H3>Empty</H3></DT>
    <DT><A HREF="http://a.com">Outside</A></DT>
</DL><p>`
	root, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children))
	}
	if len(root.Children[0].Children) != 0 {
		t.Errorf("folder swallowed %d siblings", len(root.Children[0].Children))
	}
	if root.Children[1].Title != "Outside" {
		t.Errorf("second child = %q, want Outside", root.Children[1].Title)
	}
}

func TestParseBookmarkAttributes(t *testing.T) {
	markup := `<DL><p>
    <DT><A HREF="http://a.com" ADD_DATE="5" ICON="data:image/png;base64,xyz">Iconed</A></DT>
    <DT><A ADD_DATE="bad">No href</A></DT>
</DL><p>`
	root, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children))
	}

	iconed := root.Children[0]
	if iconed.Icon != "data:image/png;base64,xyz" {
		t.Errorf("icon = %q", iconed.Icon)
	}
	if iconed.AddDate != 5000 {
		t.Errorf("addDate = %d, want 5000", iconed.AddDate)
	}

	// No href means no url: folder-like by the model's invariant, and an
	// unparseable date falls back to 0.
	bare := root.Children[1]
	if !bare.IsFolder() {
		t.Errorf("anchor without href should be folder-like")
	}
	if bare.AddDate != 0 {
		t.Errorf("addDate = %d, want 0", bare.AddDate)
	}
}

func TestParseConcatenatesTitleText(t *testing.T) {
	markup := `<DL><p><DT><H3>Work <b>and</b> Play</H3><DL></DL></DT></DL>`
	root, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	if got := root.Children[0].Title; got != "Work and Play" {
		t.Errorf("title = %q, want %q", got, "Work and Play")
	}
}

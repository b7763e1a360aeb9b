package bookmarktree

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// The serializers are pure tree-to-text encoders; none of them mutates the
// tree, and output is deterministic for the same input.

const netscapeHeader = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
`

// SerializeToHTML recreates the Netscape bookmark file dialect. ADD_DATE is
// emitted in seconds so the output parses back with the same dates it came
// from. The synthetic root is unwrapped rather than written as a folder;
// otherwise each parse/serialize cycle would nest the tree one level deeper.
func (t Tree) SerializeToHTML() string {
	var sb strings.Builder
	sb.WriteString(netscapeHeader)
	sb.WriteString("<DL><p>\n")
	for _, n := range t.topLevel() {
		writeHTMLNode(&sb, n, 1)
	}
	sb.WriteString("</DL><p>\n")
	return sb.String()
}

func writeHTMLNode(sb *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("    ", depth)
	if n.IsFolder() {
		fmt.Fprintf(sb, "%s<DT><H3 ADD_DATE=\"%d\">%s</H3>\n", indent, n.AddDate/1000, html.EscapeString(n.Title))
		fmt.Fprintf(sb, "%s<DL><p>\n", indent)
		for _, c := range n.Children {
			writeHTMLNode(sb, c, depth+1)
		}
		fmt.Fprintf(sb, "%s</DL><p>\n", indent)
		return
	}

	fmt.Fprintf(sb, "%s<DT><A HREF=\"%s\" ADD_DATE=\"%d\"", indent, html.EscapeString(n.URL), n.AddDate/1000)
	if n.Icon != "" {
		fmt.Fprintf(sb, " ICON=\"%s\"", html.EscapeString(n.Icon))
	}
	fmt.Fprintf(sb, ">%s</A>\n", html.EscapeString(n.Title))
}

// topLevel is the sequence the markup serializers walk: any synthetic root
// contributes its children in place of itself, other root-level nodes pass
// through unchanged.
func (t Tree) topLevel() []*Node {
	var nodes []*Node
	for _, n := range t {
		if n.ID == RootID && n.IsFolder() {
			nodes = append(nodes, n.Children...)
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// SerializeToJSON dumps the full tree, every field included, pretty-printed
// with the external camelCase naming. DecodeTree reads it back.
func (t Tree) SerializeToJSON() string {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		// A Node holds only plain data; marshalling cannot fail.
		return "[]"
	}
	return string(b)
}

// SerializeToCSV flattens the tree in pre-order, folders included, one row
// per node. The header row is present even for an empty tree. Quoting
// follows standard CSV rules, doubled double-quotes included.
func (t Tree) SerializeToCSV() string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Write([]string{"Title", "URL", "Add Date", "Tags", "Type"})
	for _, n := range t.CollectAll() {
		kind := "Bookmark"
		if n.IsFolder() {
			kind = "Folder"
		}
		w.Write([]string{n.Title, n.URL, strconv.FormatInt(n.AddDate, 10), strings.Join(n.Tags, ";"), kind})
	}
	w.Flush()
	return sb.String()
}

// SerializeToMarkdown renders folders as headings whose level grows with
// depth (a top-level folder becomes "##") and bookmarks as list items
// indented two spaces per depth. The synthetic root is unwrapped.
func (t Tree) SerializeToMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Bookmarks\n\n")
	for _, n := range t.topLevel() {
		writeMarkdownNode(&sb, n, 0)
	}
	return sb.String()
}

func writeMarkdownNode(sb *strings.Builder, n *Node, depth int) {
	if n.IsFolder() {
		fmt.Fprintf(sb, "%s %s\n\n", strings.Repeat("#", depth+2), n.Title)
		for _, c := range n.Children {
			writeMarkdownNode(sb, c, depth+1)
		}
		return
	}
	fmt.Fprintf(sb, "%s- [%s](%s)\n", strings.Repeat("  ", depth), n.Title, n.URL)
}

package bookmarktree

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Parse reads a Netscape bookmark export and rebuilds it as a tree wrapped
// under a single synthetic root (id "root", title "Bookmarks"). The input is
// treated as tag soup: unclosed tags, stray text and unknown elements are
// tolerated, and items that are neither folders nor bookmarks are dropped.
// A ParseError is returned only when the document cannot be tokenized at all.
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	root := NewNode(RootID, "", "Bookmarks", "", 0)

	// The outermost DL holds the top-level entries. No DL means an empty
	// export, not an error.
	dl := findElement(doc, "dl")
	if dl == nil {
		return root, nil
	}

	b := &treeBuilder{}
	for c := dl.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, "dt") {
			if n := b.parseItem(c, root.ID); n != nil {
				root.Children = append(root.Children, n)
			}
		}
	}
	return root, nil
}

// treeBuilder carries the id counter for one parse call. Ids are assigned in
// pre-order creation sequence, folders before their contents.
type treeBuilder struct {
	counter int
}

func (b *treeBuilder) nextID() string {
	id := "node_" + strconv.Itoa(b.counter)
	b.counter++
	return id
}

// parseItem converts one DT element into a node. A DT holding an H3 is a
// folder, a DT holding an A is a bookmark, anything else produces nothing.
func (b *treeBuilder) parseItem(dt *html.Node, parentID string) *Node {
	if h3 := findElement(dt, "h3"); h3 != nil {
		// add_date attributes count seconds; the model counts milliseconds.
		folder := NewNode(b.nextID(), parentID, textContent(h3), "", dateAttr(h3)*1000)
		if list := resolveContentList(dt); list != nil {
			for c := list.FirstChild; c != nil; c = c.NextSibling {
				if isElement(c, "dt") {
					if child := b.parseItem(c, folder.ID); child != nil {
						folder.Children = append(folder.Children, child)
					}
				}
			}
		}
		return folder
	}

	if a := findElement(dt, "a"); a != nil {
		n := NewNode(b.nextID(), parentID, textContent(a), attr(a, "href"), dateAttr(a)*1000)
		n.Icon = attr(a, "icon")
		return n
	}

	return nil
}

// resolveContentList locates the DL holding a folder's entries. Browser
// exports disagree on where it lives: Chrome and Edge nest the DL inside the
// folder's DT, old Netscape emits it as a following sibling. The sibling scan
// skips text nodes and stops at the next DT or H3, so an empty folder never
// swallows a later sibling's list.
func resolveContentList(dt *html.Node) *html.Node {
	for c := dt.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, "dl") {
			return c
		}
	}
	for s := dt.NextSibling; s != nil; s = s.NextSibling {
		if s.Type != html.ElementNode {
			continue
		}
		if s.Data == "dl" {
			return s
		}
		if s.Data == "dt" || s.Data == "h3" {
			return nil
		}
	}
	return nil
}

func isElement(n *html.Node, name string) bool {
	return n.Type == html.ElementNode && n.Data == name
}

// findElement returns the first element with the given name in pre-order
// document sequence, n itself included.
func findElement(n *html.Node, name string) *html.Node {
	if isElement(n, name) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates every text descendant without any trimming.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// dateAttr reads the add_date attribute as seconds since epoch. Absent or
// unparseable dates default to 0.
func dateAttr(n *html.Node) int64 {
	v, err := strconv.ParseInt(attr(n, "add_date"), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

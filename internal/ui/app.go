package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/dastanaron/bookmarktree"
	"github.com/dastanaron/bookmarktree/internal/service"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App is a terminal browser over the stored bookmark tree: a tree pane, a
// detail pane and a search field that filters the tree (tag: queries
// included).
type App struct {
	app    *tview.Application
	tree   *tview.TreeView
	detail *tview.TextView
	search *tview.InputField
	status *tview.TextView
	svc    *service.TreeService
	query  string
}

// NewApp creates a new application instance
func NewApp(svc *service.TreeService) *App {
	return &App{
		app:    tview.NewApplication(),
		tree:   tview.NewTreeView(),
		detail: tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		search: tview.NewInputField().SetLabel("Search: "),
		status: tview.NewTextView().SetDynamicColors(true),
		svc:    svc,
	}
}

// Run starts the application
func (a *App) Run() error {
	a.tree.SetBorder(true).SetTitle("Bookmarks")
	a.detail.SetBorder(true).SetTitle("Details")

	cols := tview.NewFlex().
		AddItem(a.tree, 0, 3, true).
		AddItem(a.detail, 0, 2, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.search, 1, 0, false).
		AddItem(cols, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	if err := a.reload(); err != nil {
		return err
	}

	a.tree.SetChangedFunc(a.onSelect)
	a.search.SetDoneFunc(a.onSearchDone)
	a.app.SetInputCapture(a.globalInput)

	return a.app.SetRoot(main, true).Run()
}

// reload rebuilds the tree pane from the snapshot, applying the current
// search query as a filter when one is set.
func (a *App) reload() error {
	data, err := a.svc.Tree()
	if err != nil {
		return err
	}

	var matches map[string]bool
	if a.query != "" {
		matches = make(map[string]bool)
		for _, id := range data.Search(a.query) {
			matches[id] = true
		}
	}

	root := tview.NewTreeNode("Bookmarks").SetColor(tcell.ColorYellow)
	shown := 0
	for _, n := range data {
		if child := buildNode(n, matches); child != nil {
			root.AddChild(child)
			shown += countTreeNodes(child)
		}
	}

	a.tree.SetRoot(root).SetCurrentNode(root)
	if a.query == "" {
		a.setStatus(fmt.Sprintf("%d nodes | / search  d delete  o open  r reload  q quit", data.Count()))
	} else {
		a.setStatus(fmt.Sprintf("%d nodes match %q | Esc clears the filter", shown, a.query))
	}
	return nil
}

// buildNode mirrors one bookmark node into the widget tree. When a filter is
// active, branches without any matching node are pruned entirely.
func buildNode(n *bookmarktree.Node, matches map[string]bool) *tview.TreeNode {
	if matches != nil && !subtreeMatches(n, matches) {
		return nil
	}

	label := n.Title
	if label == "" {
		label = n.URL
	}

	tn := tview.NewTreeNode(label).SetReference(n)
	switch {
	case n.IsDuplicate:
		tn.SetColor(tcell.ColorRed)
	case n.IsFolder():
		tn.SetColor(tcell.ColorGreen)
	}

	for _, c := range n.Children {
		if child := buildNode(c, matches); child != nil {
			tn.AddChild(child)
		}
	}
	return tn
}

func subtreeMatches(n *bookmarktree.Node, matches map[string]bool) bool {
	if matches[n.ID] {
		return true
	}
	for _, c := range n.Children {
		if subtreeMatches(c, matches) {
			return true
		}
	}
	return false
}

func countTreeNodes(tn *tview.TreeNode) int {
	count := 1
	for _, c := range tn.GetChildren() {
		count += countTreeNodes(c)
	}
	return count
}

func (a *App) onSelect(tn *tview.TreeNode) {
	n, ok := tn.GetReference().(*bookmarktree.Node)
	if !ok {
		a.detail.SetText("")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[yellow]%s[-]\n\n", tview.Escape(n.Title))
	if n.URL != "" {
		fmt.Fprintf(&sb, "[blue]%s[-]\n\n", tview.Escape(n.URL))
	} else {
		fmt.Fprintf(&sb, "Folder, %d entries\n\n", len(n.Children))
	}
	fmt.Fprintf(&sb, "Id: %s\n", n.ID)
	if n.AddDate > 0 {
		fmt.Fprintf(&sb, "Added: %s\n", time.UnixMilli(n.AddDate).Format("2006-01-02 15:04"))
	}
	if n.LastModified > 0 {
		fmt.Fprintf(&sb, "Modified: %s\n", time.UnixMilli(n.LastModified).Format("2006-01-02 15:04"))
	}
	if len(n.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(n.Tags, ", "))
	}
	if n.IsDuplicate {
		sb.WriteString("[red]Duplicate URL[-]\n")
	}
	a.detail.SetText(sb.String())
}

func (a *App) onSearchDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		a.query = a.search.GetText()
	case tcell.KeyEscape:
		a.query = ""
		a.search.SetText("")
	}
	if err := a.reload(); err != nil {
		a.setStatus(fmt.Sprintf("[red]%v[-]", err))
	}
	a.app.SetFocus(a.tree)
}

func (a *App) globalInput(event *tcell.EventKey) *tcell.EventKey {
	if a.search.HasFocus() {
		return event
	}

	switch event.Rune() {
	case '/':
		a.app.SetFocus(a.search)
		return nil
	case 'q':
		a.app.Stop()
		return nil
	case 'd':
		a.deleteCurrent()
		return nil
	case 'o':
		a.openCurrent()
		return nil
	case 'r':
		if err := a.reload(); err != nil {
			a.setStatus(fmt.Sprintf("[red]%v[-]", err))
		}
		return nil
	}
	return event
}

func (a *App) deleteCurrent() {
	n := a.currentNode()
	if n == nil {
		return
	}
	if err := a.svc.Delete(n.ID); err != nil {
		a.setStatus(fmt.Sprintf("[red]%v[-]", err))
		return
	}
	if err := a.reload(); err != nil {
		a.setStatus(fmt.Sprintf("[red]%v[-]", err))
		return
	}
	a.setStatus(fmt.Sprintf("Deleted %s", n.ID))
}

func (a *App) openCurrent() {
	n := a.currentNode()
	if n == nil || n.URL == "" {
		return
	}
	if err := openBrowser(n.URL); err != nil {
		a.setStatus(fmt.Sprintf("[red]%v[-]", err))
	}
}

func (a *App) currentNode() *bookmarktree.Node {
	tn := a.tree.GetCurrentNode()
	if tn == nil {
		return nil
	}
	n, _ := tn.GetReference().(*bookmarktree.Node)
	return n
}

func (a *App) setStatus(text string) {
	a.status.SetText(text)
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

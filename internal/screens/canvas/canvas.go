// Package canvas is the main screen: the skill tree drawn tier by tier
// with a side panel for the profile and the selected node.
package canvas

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/progression"
	"github.com/abhisek/levelup/internal/roadmapgen"
	"github.com/abhisek/levelup/internal/router"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/screens/generate"
	"github.com/abhisek/levelup/internal/screens/templates"
	"github.com/abhisek/levelup/internal/session"
	"github.com/abhisek/levelup/internal/skilltree"
	"github.com/abhisek/levelup/internal/ui/layout"
	"github.com/abhisek/levelup/internal/ui/theme"
)

// LockedHint is shown when an action is attempted on a locked node.
const LockedHint = "Unlock prerequisites to start this skill."

type rowKind int

const (
	rowTierHeader rowKind = iota
	rowNode
)

type row struct {
	kind  rowKind
	level int
	node  skilltree.Node
}

// CanvasScreen shows the current skill tree.
type CanvasScreen struct {
	ctx  context.Context
	sess *session.Session
	gen  roadmapgen.Generator

	rows         []row
	cursor       int
	scrollOffset int

	notice      string
	noticeIsErr bool
}

var (
	_ screen.Screen          = (*CanvasScreen)(nil)
	_ screen.KeyHintProvider = (*CanvasScreen)(nil)
)

// New creates the canvas for sess. gen may be nil when no LLM provider is
// configured; the generate screen then explains how to set one up.
func New(ctx context.Context, sess *session.Session, gen roadmapgen.Generator) *CanvasScreen {
	c := &CanvasScreen{ctx: ctx, sess: sess, gen: gen}
	c.rebuild("")
	return c
}

func (c *CanvasScreen) Init() tea.Cmd {
	return nil
}

func (c *CanvasScreen) Title() string {
	return c.sess.Name()
}

// KeyHints returns the key binding hints for the footer.
func (c *CanvasScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "p/c", Description: "Start/Complete"},
		{Key: "l", Description: "Link selected → cursor"},
		{Key: "g", Description: "Generate"},
		{Key: "t", Description: "Templates"},
		{Key: "q", Description: "Quit"},
	}
}

func (c *CanvasScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.NoticeMsg:
		c.rebuild("")
		c.setNotice(msg.Text, msg.Error)
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			c.moveCursor(-1)
		case "down", "j":
			c.moveCursor(1)
		case "enter", "space":
			c.selectUnderCursor()
		case "esc", "x":
			c.sess.ClearSelection()
			c.notice = ""
		case "p":
			c.setStatus(skilltree.StatusInProgress)
		case "c":
			c.setStatus(skilltree.StatusCompleted)
		case "l":
			c.link()
		case "g":
			s := generate.New(c.ctx, c.sess, c.gen)
			return c, func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		case "t":
			s := templates.New(c.sess)
			return c, func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

// rebuild flattens the graph into rows, keeping the cursor on keepID when
// it still exists.
func (c *CanvasScreen) rebuild(keepID string) {
	c.rows = c.rows[:0]
	for _, tier := range c.sess.Graph().Tiers() {
		c.rows = append(c.rows, row{kind: rowTierHeader, level: tier.Level})
		for _, n := range tier.Nodes {
			c.rows = append(c.rows, row{kind: rowNode, level: tier.Level, node: n})
		}
	}

	c.cursor = -1
	c.scrollOffset = 0
	for i, r := range c.rows {
		if r.kind != rowNode {
			continue
		}
		if c.cursor < 0 {
			c.cursor = i
		}
		if r.node.ID == keepID {
			c.cursor = i
			break
		}
	}
}

// moveCursor moves the cursor by delta, skipping tier headers.
func (c *CanvasScreen) moveCursor(delta int) {
	next := c.cursor + delta
	for next >= 0 && next < len(c.rows) {
		if c.rows[next].kind == rowNode {
			c.cursor = next
			return
		}
		next += delta
	}
}

// CursorNode returns the node under the cursor.
func (c *CanvasScreen) CursorNode() (skilltree.Node, bool) {
	if c.cursor < 0 || c.cursor >= len(c.rows) {
		return skilltree.Node{}, false
	}
	return c.rows[c.cursor].node, true
}

func (c *CanvasScreen) selectUnderCursor() {
	n, ok := c.CursorNode()
	if !ok {
		return
	}
	if err := c.sess.Select(n.ID); err != nil {
		c.setNotice(err.Error(), true)
		return
	}
	c.notice = ""
}

// setStatus applies status to the selected node, or to the node under the
// cursor when nothing is selected.
func (c *CanvasScreen) setStatus(status skilltree.Status) {
	target, ok := c.sess.Selected()
	if !ok {
		target, ok = c.CursorNode()
		if !ok {
			return
		}
	}

	if !actionEnabled(target.Status, status) {
		if target.Status == skilltree.StatusLocked {
			c.setNotice(LockedHint, true)
		}
		return
	}

	out, err := c.sess.SetStatus(target.ID, status)
	if err != nil {
		if errors.Is(err, progression.ErrInvalidTransition) && target.Status == skilltree.StatusLocked {
			c.setNotice(LockedHint, true)
		} else {
			c.setNotice(err.Error(), true)
		}
		return
	}

	keep := ""
	if n, ok := c.CursorNode(); ok {
		keep = n.ID
	}
	c.rebuild(keep)
	c.setNotice(c.describeOutcome(target, status, out), false)
}

// link makes the node under the cursor require the selected node.
func (c *CanvasScreen) link() {
	source, ok := c.sess.Selected()
	if !ok {
		c.setNotice("Select a skill first, then move to the skill that should require it.", true)
		return
	}
	target, ok := c.CursorNode()
	if !ok {
		return
	}

	if _, err := c.sess.Connect(source.ID, target.ID); err != nil {
		if errors.Is(err, skilltree.ErrDuplicateEdge) {
			c.setNotice(fmt.Sprintf("%s already requires %s", target.Label, source.Label), true)
		} else {
			c.setNotice(err.Error(), true)
		}
		return
	}
	c.rebuild(target.ID)
	c.setNotice(fmt.Sprintf("Linked %s → %s", source.Label, target.Label), false)
}

func (c *CanvasScreen) describeOutcome(n skilltree.Node, status skilltree.Status, out session.Outcome) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%s: %s", n.Label, status.Label()))
	if out.XPGained > 0 {
		parts = append(parts, fmt.Sprintf("+%d XP", out.XPGained))
	}
	if out.LevelUp {
		parts = append(parts, fmt.Sprintf("Level up! Now level %d", c.sess.Profile().Level))
	}
	if len(out.Unlocked) > 0 {
		names := make([]string, 0, len(out.Unlocked))
		for _, id := range out.Unlocked {
			if u, ok := c.sess.Graph().GetNode(id); ok {
				names = append(names, u.Label)
			}
		}
		parts = append(parts, "Unlocked "+strings.Join(names, ", "))
	}
	return strings.Join(parts, " · ")
}

func (c *CanvasScreen) setNotice(text string, isErr bool) {
	c.notice = text
	c.noticeIsErr = isErr
}

// Notice returns the current status line.
func (c *CanvasScreen) Notice() string {
	return c.notice
}

// actionEnabled reports whether moving a node from current to target is
// offered to the user. Locked nodes accept nothing and the action that
// matches the current status is redundant.
func actionEnabled(current, target skilltree.Status) bool {
	if current == skilltree.StatusLocked {
		return false
	}
	return current != target
}

// adjustScroll ensures the cursor is visible within the viewport.
func (c *CanvasScreen) adjustScroll(height int) {
	if height <= 0 || c.cursor < 0 {
		return
	}
	headerRow := c.cursor
	for headerRow > 0 && c.rows[headerRow-1].kind == rowTierHeader {
		headerRow--
	}
	if headerRow < c.scrollOffset {
		c.scrollOffset = headerRow
	}
	if c.cursor >= c.scrollOffset+height {
		c.scrollOffset = c.cursor - height + 1
	}
}

func (c *CanvasScreen) View(width, height int) string {
	panelWidth := width * 2 / 5
	if panelWidth > 48 {
		panelWidth = 48
	}
	treeWidth := width - panelWidth - 1

	tree := c.renderTree(treeWidth, height)
	panel := renderPanel(c.sess, panelWidth, height)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(treeWidth).Height(height).Render(tree),
		" ",
		panel,
	)
}

func (c *CanvasScreen) renderTree(width, height int) string {
	var top []string
	top = append(top, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).PaddingLeft(2).Render(c.sess.Name()))
	if d := c.sess.Description(); d != "" {
		top = append(top, lipgloss.NewStyle().Foreground(theme.TextDim).PaddingLeft(2).Width(width).Render(d))
	}
	if c.notice != "" {
		style := theme.SuccessText
		if c.noticeIsErr {
			style = theme.ErrorText
		}
		top = append(top, style.PaddingLeft(2).Width(width).Render(c.notice))
	}
	header := strings.Join(top, "\n")

	listHeight := height - lipgloss.Height(header) - 1
	c.adjustScroll(listHeight)

	selected, hasSel := c.sess.Selected()

	var lines []string
	for i := c.scrollOffset; i < len(c.rows) && len(lines) < listHeight; i++ {
		r := c.rows[i]
		switch r.kind {
		case rowTierHeader:
			lines = append(lines, theme.Heading.PaddingLeft(2).Render(fmt.Sprintf("TIER %d", r.level)))
		case rowNode:
			isSel := hasSel && selected.ID == r.node.ID
			lines = append(lines, renderNodeRow(r.node, i == c.cursor, isSel, width))
		}
	}

	return header + "\n\n" + strings.Join(lines, "\n")
}

func renderNodeRow(n skilltree.Node, atCursor, selected bool, width int) string {
	cursor := "  "
	if atCursor {
		cursor = "▸ "
	}
	mark := " "
	if selected {
		mark = "●"
	}

	xp := fmt.Sprintf("+%d XP", n.XPReward)
	nameWidth := width - 4 - 2 - 3 - 2 - len(xp) - 2
	if nameWidth < 8 {
		nameWidth = 8
	}
	name := n.Label
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	nameStyle := theme.StatusColor(n.Status)
	if atCursor {
		nameStyle = theme.Selected
	}

	return fmt.Sprintf("  %s%s %s %s  %s",
		cursor,
		mark,
		n.Status.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(xp),
	)
}

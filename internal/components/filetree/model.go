package filetree

import (
	"strings"

	"github.com/avitaltamir/zazo/internal/components"
	"github.com/avitaltamir/zazo/internal/fstree"
	"github.com/avitaltamir/zazo/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// KeyMap defines the key bindings for the file tree.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Enter         key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Home          key.Binding
	End           key.Binding
	ToggleHidden  key.Binding
	CompactIndent key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "collapse/parent"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/toggle"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "bottom"),
		),
		ToggleHidden: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "hidden files"),
		),
		CompactIndent: key.NewBinding(
			key.WithKeys("alt+i"),
			key.WithHelp("alt+i", "compact indent"),
		),
	}
}

// Model is the file tree pane. Moving the cursor onto a row selects it;
// every selection (including reselecting the current row with enter) bumps
// Selections so the parent can react synchronously.
type Model struct {
	components.Base

	tree     *fstree.Tree
	rows     []row           // Flattened visible rows
	expanded map[string]bool // Directories open in the view
	cursor   int
	offset   int // Scroll offset for viewport

	selected   fstree.Node
	selections int

	showHidden    bool
	compactIndent bool

	keys  KeyMap
	theme *theme.Theme
}

// New creates a tree pane over tree with the root expanded.
func New(tree *fstree.Tree) Model {
	m := Model{
		tree:       tree,
		expanded:   map[string]bool{tree.Root().Path: true},
		showHidden: true,
		keys:       DefaultKeyMap(),
		theme:      theme.DefaultTheme(),
	}
	m.rebuild()
	return m
}

// Init initializes the file tree.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.Focused() {
			return m, nil
		}
		return m.handleKey(msg), nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	_, h := m.Size()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-max(h/2, 1))
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(max(h/2, 1))
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.rows))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.rows))
	case key.Matches(msg, m.keys.Enter):
		m.activate()
	case key.Matches(msg, m.keys.Right):
		m.expandCurrent()
	case key.Matches(msg, m.keys.Left):
		m.collapseOrParent()
	case key.Matches(msg, m.keys.ToggleHidden):
		m.SetShowHidden(!m.showHidden)
	case key.Matches(msg, m.keys.CompactIndent):
		m.compactIndent = !m.compactIndent
	}

	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll(-3)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll(3)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		// Row 0 sits below the top border
		idx := m.offset + msg.Y - 1
		if idx < 0 || idx >= len(m.rows) {
			return m
		}
		if idx == m.cursor && !m.rows[idx].leaf {
			m.toggle(idx)
			return m
		}
		m.selectRow(idx)
	}
	return m
}

// activate reselects a file or toggles a directory.
func (m *Model) activate() {
	r, ok := m.current()
	if !ok {
		return
	}
	if r.leaf {
		m.selectRow(m.cursor)
		return
	}
	m.toggle(m.cursor)
}

func (m *Model) expandCurrent() {
	r, ok := m.current()
	if !ok || r.leaf || m.expanded[r.node.Path] {
		return
	}
	m.toggle(m.cursor)
}

func (m *Model) collapseOrParent() {
	r, ok := m.current()
	if !ok {
		return
	}
	if !r.leaf && m.expanded[r.node.Path] {
		m.toggle(m.cursor)
		return
	}
	parent, ok := m.tree.Parent(r.node)
	if !ok {
		return
	}
	for i, candidate := range m.rows {
		if candidate.node == parent {
			m.selectRow(i)
			return
		}
	}
}

// toggle opens or closes the directory at idx. Closing keeps the tree's
// cached listing; reopening shows the same children.
func (m *Model) toggle(idx int) {
	path := m.rows[idx].node.Path
	if m.expanded[path] {
		delete(m.expanded, path)
	} else {
		m.expanded[path] = true
	}
	m.rebuild()
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	target := min(max(m.cursor+delta, 0), len(m.rows)-1)
	if target == m.cursor {
		return
	}
	m.selectRow(target)
}

func (m *Model) selectRow(idx int) {
	m.cursor = idx
	m.selected = m.rows[idx].node
	m.selections++
	m.ensureVisible()
}

func (m *Model) scroll(delta int) {
	_, h := m.Size()
	maxOffset := max(len(m.rows)-h, 0)
	m.offset = min(max(m.offset+delta, 0), maxOffset)
}

func (m *Model) ensureVisible() {
	_, h := m.Size()
	if h <= 0 {
		return
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// rebuild flattens the expanded part of the tree into rows. Only expanded
// directories are listed, so unopened subtrees are never read.
func (m *Model) rebuild() {
	oldRows, oldCursor := m.rows, m.cursor

	m.rows = make([]row, 0, len(m.rows))
	m.appendRows(m.tree.Root(), 0)

	index := make(map[string]int, len(m.rows))
	for i, r := range m.rows {
		index[r.node.Path] = i
	}

	// Follow the cursor row, or the nearest row above it that is still
	// visible. Landing on a different row is a selection.
	m.cursor = 0
	for i := min(oldCursor, len(oldRows)-1); i >= 0; i-- {
		if idx, ok := index[oldRows[i].node.Path]; ok {
			m.cursor = idx
			if i != oldCursor && m.selections > 0 {
				m.selectRow(idx)
			}
			break
		}
	}
	m.ensureVisible()
}

func (m *Model) appendRows(n fstree.Node, depth int) {
	r := row{node: n, depth: depth, leaf: m.tree.IsLeaf(n)}
	if depth > 0 && !m.showHidden && r.hidden() {
		return
	}
	m.rows = append(m.rows, r)

	if r.leaf || !m.expanded[n.Path] {
		return
	}
	for _, child := range m.tree.Children(n) {
		m.appendRows(child, depth+1)
	}
}

// View renders the file tree.
func (m Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}

	lines := make([]string, 0, h)
	for i := m.offset; i < len(m.rows) && len(lines) < h; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor, w))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderRow(r row, selected bool, maxWidth int) string {
	indentStr := theme.TreeSpace
	if m.compactIndent {
		indentStr = theme.TreeSpaceCompact
	}
	indent := strings.Repeat(indentStr, r.depth)

	var icon, name string
	if r.leaf {
		icon = m.theme.GetFileIcon(r.extension())
		name = r.name()
	} else {
		icon = m.theme.GetDirIcon(r.name(), m.expanded[r.node.Path])
		name = r.name() + "/"
	}

	line := ansi.Truncate(indent+icon+" "+name, maxWidth, "…")

	var style lipgloss.Style
	switch {
	case selected:
		style = theme.FileTreeSelected.Width(maxWidth)
	case r.leaf:
		style = theme.FileTreeFile
	default:
		style = theme.FileTreeDir
	}

	return style.Render(line)
}

// Selection returns the most recently selected node.
func (m Model) Selection() (fstree.Node, bool) {
	return m.selected, m.selections > 0
}

// Selections counts selection events so far.
func (m Model) Selections() int {
	return m.selections
}

// CursorPath returns the path under the cursor.
func (m Model) CursorPath() string {
	if r, ok := m.current(); ok {
		return r.node.Path
	}
	return ""
}

// Root returns the root path.
func (m Model) Root() string {
	return m.tree.Root().Path
}

// SetShowHidden sets whether to show hidden files.
func (m *Model) SetShowHidden(show bool) {
	m.showHidden = show
	m.rebuild()
}

// ShowHidden returns whether hidden files are shown.
func (m Model) ShowHidden() bool {
	return m.showHidden
}

// SetCompactIndent sets whether to use compact (2-space) indentation.
func (m *Model) SetCompactIndent(compact bool) {
	m.compactIndent = compact
}

// CompactIndent returns whether compact indentation is enabled.
func (m Model) CompactIndent() bool {
	return m.compactIndent
}

// SetNerdFonts switches between Nerd Font and plain icons.
func (m *Model) SetNerdFonts(enabled bool) {
	m.theme.UseNerdFonts = enabled
}

// Focus gives focus to this component.
func (m Model) Focus() Model {
	m.Base.Focus()
	return m
}

// Blur removes focus from this component.
func (m Model) Blur() Model {
	m.Base.Blur()
	return m
}

// SetSize updates the component's dimensions.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	m.ensureVisible()
	return m
}

// ShortHelp returns the short help text for the key map.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter}
}

// FullHelp returns the full help text for the key map.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.PageUp, k.PageDown},
		{k.Home, k.End, k.ToggleHidden, k.CompactIndent},
	}
}

// KeyMap returns the pane's bindings.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

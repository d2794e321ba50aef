package app

import (
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/avitaltamir/zazo/internal/components/editor"
	"github.com/avitaltamir/zazo/internal/components/filetree"
	"github.com/avitaltamir/zazo/internal/fstree"
	"github.com/avitaltamir/zazo/internal/fsys"
	"github.com/avitaltamir/zazo/internal/layout"
	"github.com/avitaltamir/zazo/internal/session"
	"github.com/avitaltamir/zazo/internal/state"
	"github.com/avitaltamir/zazo/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"
)

// Version is the application version, set at build time via ldflags
var Version = "dev"

// doubleTapInterval is how close two ctrl+q presses must be to skip the dialog.
const doubleTapInterval = 400 * time.Millisecond

// ownWriteWindow hides watcher events caused by our own saves.
const ownWriteWindow = 500 * time.Millisecond

// resizeStep is how far alt+[ and alt+] move the split, in percent.
const resizeStep = 5

var (
	writeClipboard = clipboard.WriteAll
	saveState      = state.Save
)

// errorSink collects controller notifications until Update drains them.
type errorSink struct {
	messages []string
}

func (s *errorSink) NotifyError(message string) {
	s.messages = append(s.messages, message)
}

func (s *errorSink) drain() []string {
	msgs := s.messages
	s.messages = nil
	return msgs
}

// Model is the root application model.
type Model struct {
	// Child components
	fileTree filetree.Model
	editor   editor.Model

	// Session
	ctrl    *session.Controller
	session session.State
	errors  *errorSink

	// Focus and overlays
	focus         PanelID
	showHelp      bool
	showQuit      bool
	lastQuitPress time.Time
	errorDialog   string
	quitting      bool // Exit once the error dialog is dismissed

	// Layout
	layout           layout.Layout
	leftPanelPercent int
	resizingPanel    bool
	prefs            state.State
	keys             KeyMap
	help             help.Model

	// Status bar message
	status     string
	statusKind statusKind

	// File watcher
	watcher    *fsnotify.Watcher
	watchedDir string
	lastSave   time.Time

	// Window dimensions
	width  int
	height int
	ready  bool
}

// New creates the application rooted at the working directory, with the
// persisted preferences and a watcher for the open file.
func New() Model {
	m := NewWithRoot(".", fsys.OS{}, state.Load())

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("watcher unavailable: %v", err)
	} else {
		m.watcher = watcher
	}
	return m
}

// NewWithRoot creates the application over root using fs for all file I/O.
func NewWithRoot(root string, fs fsys.FS, prefs state.State) Model {
	sink := &errorSink{}
	tree := fstree.New(fs, root)

	ft := filetree.New(tree)
	ft.SetShowHidden(prefs.ShowHidden)
	ft.SetCompactIndent(prefs.CompactIndent)
	ft.SetNerdFonts(prefs.NerdFonts)
	ft = ft.Focus()

	return Model{
		fileTree:         ft,
		editor:           editor.New(prefs.LineNumbers),
		ctrl:             session.NewController(fs, sink),
		errors:           sink,
		focus:            PanelFileTree,
		leftPanelPercent: layout.ClampLeftPercent(prefs.LeftPanelPercent),
		prefs:            prefs,
		keys:             DefaultKeyMap(),
		help:             help.New(),
	}
}

// Init initializes the application.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fileTree.Init(),
		m.editor.Init(),
		m.watchFilesCmd(),
	)
}

// watchFilesCmd blocks until the watcher reports an event.
func (m Model) watchFilesCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return nil
				}
				return FileChangeMsg{Path: event.Name, Op: event.Op}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				log.Printf("watch error: %v", err)
			}
		}
	}
}

// watchOpenFile moves the watch to the directory of the open file. Editors
// often replace files by rename, so the directory is watched, not the file.
func (m *Model) watchOpenFile() {
	if m.watcher == nil {
		return
	}
	dir := filepath.Dir(m.session.OpenPath)
	if dir == m.watchedDir {
		return
	}
	if m.watchedDir != "" {
		_ = m.watcher.Remove(m.watchedDir)
		m.watchedDir = ""
	}
	if err := m.watcher.Add(dir); err != nil {
		log.Printf("watch failed: %s: %v", dir, err)
		return
	}
	m.watchedDir = dir
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = layout.Calculate(msg.Width, msg.Height, m.leftPanelPercent)
		m.ready = true
		m = m.updateSizes()
		return m, nil

	case FileChangeMsg:
		m.handleFileChange(msg)
		return m, m.watchFilesCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, m.routeToFocused(msg)
}

func (m *Model) handleFileChange(msg FileChangeMsg) {
	if msg.Path == "" || msg.Path != m.session.OpenPath {
		return
	}
	if time.Since(m.lastSave) < ownWriteWindow {
		return
	}

	name := fstree.DisplayName(fstree.Node{Path: msg.Path})
	switch {
	case msg.Op.Has(fsnotify.Remove), msg.Op.Has(fsnotify.Rename):
		m.setStatus(statusError, name+" was removed on disk")
	case msg.Op.Has(fsnotify.Write), msg.Op.Has(fsnotify.Create):
		m.setStatus(statusInfo, name+" changed on disk")
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error dialog swallows the next key
	if m.errorDialog != "" {
		m.errorDialog = ""
		if m.quitting {
			return m.exit()
		}
		return m, nil
	}

	if m.showQuit {
		switch msg.String() {
		case "y", "Y", "enter", "ctrl+q":
			return m.quit()
		case "n", "N", "esc":
			m.showQuit = false
		}
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()

	case key.Matches(msg, m.keys.Quit):
		now := time.Now()
		if now.Sub(m.lastQuitPress) < doubleTapInterval {
			return m.quit()
		}
		m.lastQuitPress = now
		m.showQuit = true
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.save()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.FocusNext), key.Matches(msg, m.keys.FocusPrev):
		return m.toggleFocus()

	case key.Matches(msg, m.keys.ShrinkLeft):
		m.resize(m.leftPanelPercent - resizeStep)
		return m, nil

	case key.Matches(msg, m.keys.GrowLeft):
		m.resize(m.leftPanelPercent + resizeStep)
		return m, nil

	case key.Matches(msg, m.keys.LineNumbers):
		m.editor.SetLineNumbers(!m.editor.LineNumbers())
		m.editor = m.editor.SetSize(m.editor.Size())
		return m, nil

	case key.Matches(msg, m.keys.CopyPath):
		m.copyPath()
		return m, nil
	}

	return m, m.routeToFocused(msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.errorDialog != "" || m.showQuit || m.showHelp {
		return m, nil
	}

	// Dragging the split
	switch {
	case m.resizingPanel && msg.Action == tea.MouseActionMotion:
		if m.width > 0 {
			m.resize(msg.X * 100 / m.width)
		}
		return m, nil
	case m.resizingPanel && msg.Action == tea.MouseActionRelease:
		m.resizingPanel = false
		return m, nil
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && m.onDivider(msg.X, msg.Y):
		m.resizingPanel = true
		return m, nil
	}

	var cmd tea.Cmd
	target := m.panelAtPosition(msg.X, msg.Y)
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && target != PanelNone && target != m.focus {
		m, cmd = m.setFocus(target)
	}

	if target == PanelFileTree {
		m.updateFileTree(msg)
	}
	return m, cmd
}

// onDivider reports whether x, y is on the border between the panes.
func (m Model) onDivider(x, y int) bool {
	if y >= m.layout.MainHeight {
		return false
	}
	return x == m.layout.LeftWidth-1 || x == m.layout.LeftWidth
}

// panelAtPosition returns which panel contains the given screen coordinates.
func (m Model) panelAtPosition(x, y int) PanelID {
	if lx, ly, lw, lh := m.layout.LeftPanelBounds(); layout.Contains(x, y, lx, ly, lw, lh) {
		return PanelFileTree
	}
	if rx, ry, rw, rh := m.layout.RightPanelBounds(); layout.Contains(x, y, rx, ry, rw, rh) {
		return PanelEditor
	}
	return PanelNone
}

// routeToFocused routes a message to the focused component and applies
// whatever selection or edit it produced to the session.
func (m *Model) routeToFocused(msg tea.Msg) tea.Cmd {
	switch m.focus {
	case PanelFileTree:
		return m.updateFileTree(msg)
	case PanelEditor:
		before := m.editor.Edits()
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if m.editor.Edits() != before {
			m.ctrl.BufferChanged(&m.session)
		}
		return cmd
	}
	return nil
}

func (m *Model) updateFileTree(msg tea.Msg) tea.Cmd {
	before := m.fileTree.Selections()
	var cmd tea.Cmd
	m.fileTree, cmd = m.fileTree.Update(msg)
	if m.fileTree.Selections() != before {
		if node, ok := m.fileTree.Selection(); ok {
			m.selectPath(node.Path)
		}
	}
	return cmd
}

// selectPath saves the current file if needed and loads path.
func (m *Model) selectPath(path string) {
	out := m.ctrl.Select(&m.session, &m.editor, path)
	m.editor.SetPath(path)
	m.watchOpenFile()

	name := fstree.DisplayName(fstree.Node{Path: path})
	switch {
	case out.LoadErr != nil:
		m.setStatus(statusError, "cannot open "+name)
	case m.editor.Lossy():
		m.setStatus(statusError, name+" was normalized on load; saving rewrites it")
	case out.Saved:
		m.setStatus(statusSaved, "saved "+fstree.DisplayName(fstree.Node{Path: out.SavedPath}))
	default:
		m.setStatus(statusInfo, "opened "+name)
	}
	m.applyOutcome(out)
}

// save flushes the buffer to the open file.
func (m *Model) save() {
	if !m.session.HasOpenFile() {
		m.setStatus(statusError, "no file selected")
		return
	}
	out := m.ctrl.Flush(&m.session, &m.editor)
	if out.Saved {
		m.setStatus(statusSaved, "saved "+fstree.DisplayName(fstree.Node{Path: out.SavedPath}))
	} else if out.SaveErr == nil {
		m.setStatus(statusInfo, "no changes")
	}
	m.applyOutcome(out)
}

// applyOutcome records own writes and raises the error dialog.
func (m *Model) applyOutcome(out session.Outcome) {
	if out.Saved {
		m.lastSave = time.Now()
	}
	if msgs := m.errors.drain(); len(msgs) > 0 {
		m.errorDialog = strings.Join(msgs, "\n")
		m.setStatus(statusError, msgs[len(msgs)-1])
	}
}

func (m *Model) copyPath() {
	if !m.session.HasOpenFile() {
		m.setStatus(statusError, "no file selected")
		return
	}
	if err := writeClipboard(m.session.OpenPath); err != nil {
		log.Printf("clipboard failed: %v", err)
		m.setStatus(statusError, "clipboard unavailable")
		return
	}
	m.setStatus(statusInfo, "copied path")
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.status = text
	m.statusKind = kind
}

func (m *Model) resize(percent int) {
	m.leftPanelPercent = layout.ClampLeftPercent(percent)
	m.layout = layout.Calculate(m.width, m.height, m.leftPanelPercent)
	*m = m.updateSizes()
}

// quit saves pending edits, then exits. A failed save keeps the program
// up until its error dialog is dismissed.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.showQuit = false
	out := m.ctrl.Flush(&m.session, &m.editor)
	m.applyOutcome(out)
	if out.SaveErr != nil {
		m.quitting = true
		return m, nil
	}
	return m.exit()
}

// exit saves preferences and stops the program.
func (m Model) exit() (tea.Model, tea.Cmd) {
	m.saveState()
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	return m, tea.Quit
}

func (m Model) saveState() {
	s := state.State{
		LeftPanelPercent: m.leftPanelPercent,
		ShowHidden:       m.fileTree.ShowHidden(),
		CompactIndent:    m.fileTree.CompactIndent(),
		LineNumbers:      m.editor.LineNumbers(),
		NerdFonts:        m.prefs.NerdFonts,
	}
	if err := saveState(s); err != nil {
		log.Printf("state save failed: %v", err)
	}
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == PanelFileTree {
		return m.setFocus(PanelEditor)
	}
	return m.setFocus(PanelFileTree)
}

// setFocus changes focus to the specified panel.
func (m Model) setFocus(target PanelID) (Model, tea.Cmd) {
	switch m.focus {
	case PanelFileTree:
		m.fileTree = m.fileTree.Blur()
	case PanelEditor:
		m.editor = m.editor.Blur()
	}

	m.focus = target

	var cmd tea.Cmd
	switch target {
	case PanelFileTree:
		m.fileTree = m.fileTree.Focus()
	case PanelEditor:
		m.editor, cmd = m.editor.Focus()
	}
	return m, cmd
}

func (m Model) updateSizes() Model {
	// Account for borders
	leftWidth := max(m.layout.LeftWidth-2, 0)
	rightWidth := max(m.layout.RightWidth-2, 0)
	mainHeight := max(m.layout.MainHeight-2, 0)

	m.fileTree = m.fileTree.SetSize(leftWidth, mainHeight)
	m.editor = m.editor.SetSize(rightWidth, mainHeight)
	return m
}

// View renders the application.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, m.renderLeftPanel(), m.renderRightPanel())
	view := lipgloss.JoinVertical(lipgloss.Left, mainArea, m.renderStatusBar())

	switch {
	case m.errorDialog != "":
		hint := "press any key"
		if m.quitting {
			hint = "press any key to quit"
		}
		return theme.RenderDialog(theme.DialogErrorStyle, "SAVE FAILED", m.errorDialog, hint, m.width, m.height)
	case m.showQuit:
		return theme.RenderDialog(theme.DialogStyle, "QUIT ZAZO?", "Unsaved changes are written before exit.", "[Y]es  [N]o  [^Q]uit", m.width, m.height)
	case m.showHelp:
		groups := append(m.keys.FullHelp(), m.fileTree.KeyMap().FullHelp()...)
		return theme.RenderDialog(theme.DialogStyle, "ZAZO HELP", m.help.FullHelpView(groups), "press any key to close", m.width, m.height)
	}
	return view
}

// renderLeftPanel renders the file tree panel.
func (m Model) renderLeftPanel() string {
	focused := m.focus == PanelFileTree

	opts := theme.PanelTitleOptions{Title: "FILES"}
	if focused {
		opts.BottomHints = "↑↓:nav  enter:open"
	}

	return theme.RenderPanelWithTitle(m.fileTree.View(), opts, m.layout.LeftWidth, m.layout.MainHeight, focused)
}

// renderRightPanel renders the editor panel.
func (m Model) renderRightPanel() string {
	focused := m.focus == PanelEditor

	opts := theme.PanelTitleOptions{Title: "EDITOR"}
	if m.session.HasOpenFile() {
		opts.Title = fstree.DisplayName(fstree.Node{Path: m.session.OpenPath})
		opts.Modified = m.session.Dirty
		opts.Badge = m.editor.Language()
	}
	if focused {
		opts.BottomHints = "^s:save  tab:tree"
	}

	return theme.RenderPanelWithTitle(m.editor.View(), opts, m.layout.RightWidth, m.layout.MainHeight, focused)
}

func (m Model) renderStatusBar() string {
	style := theme.StatusBarStyle.Width(m.layout.TotalWidth)

	path := m.relativePath(m.session.OpenPath)
	if path == "" {
		path = m.relativePath(m.fileTree.Root())
	}
	left := path
	if m.session.Dirty {
		left += theme.StatusDirtyStyle.Render(" " + theme.IconModified)
	}

	if m.status != "" {
		msgStyle := theme.StatusHintStyle
		switch m.statusKind {
		case statusSaved:
			msgStyle = theme.StatusSavedStyle
		case statusError:
			msgStyle = theme.StatusErrorStyle
		}
		left += theme.StatusHintStyle.Render(" │ ") + msgStyle.Render(m.status)
	}

	line, col := m.editor.Cursor()
	right := theme.StatusHintStyle.Render("Ln "+strconv.Itoa(line)+", Col "+strconv.Itoa(col)+" │ f1 help │ ") + Version

	// Padding(0, 1) on the bar
	room := m.layout.TotalWidth - 2 - lipgloss.Width(right) - 1
	left = ansi.Truncate(left, max(room, 0), "…")

	gap := max(m.layout.TotalWidth-2-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return style.Render(left + strings.Repeat(" ", gap) + right)
}

// relativePath shows paths under the root relative to it.
func (m Model) relativePath(path string) string {
	if path == "" {
		return ""
	}
	root := m.fileTree.Root()
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		if rel == "." {
			return fstree.DisplayName(fstree.Node{Path: root})
		}
		return rel
	}
	return path
}

// Focus returns the currently focused panel.
func (m Model) Focus() PanelID {
	return m.focus
}

// Session returns the editor session state.
func (m Model) Session() session.State {
	return m.session
}

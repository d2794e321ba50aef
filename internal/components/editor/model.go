// Package editor provides the text pane: a bubbles textarea that reports
// user edits and the language of the file it shows.
package editor

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/atotto/clipboard"
	"github.com/avitaltamir/zazo/internal/components"
	"github.com/avitaltamir/zazo/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PlainText is the language reported when no lexer matches.
const PlainText = "Plain Text"

// TabGlyph stands in for a tab character inside the textarea, which
// would otherwise expand tabs to spaces. Text converts it back.
const TabGlyph = "⇥"

const placeholder = "Select a file in the tree to edit it"

var readClipboard = clipboard.ReadAll

// PasteMsg carries clipboard text to insert at the cursor.
type PasteMsg struct {
	Text string
	Err  error
}

// Model is the editor pane.
type Model struct {
	components.Base

	textarea textarea.Model
	paste    key.Binding
	language string
	edits    int

	crlf  bool // Text restores CRLF line endings
	tabs  bool // Text restores tabs from TabGlyph
	lossy bool // Last SetText could not be shown unchanged
}

// New creates an empty editor.
func New(lineNumbers bool) Model {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.Prompt = ""
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = lineNumbers
	// Paste is handled here so tabs and line endings survive it
	ta.KeyMap.Paste.SetEnabled(false)

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(theme.DeepSpace)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(theme.DimPurple)
	ta.FocusedStyle.CursorLineNumber = lipgloss.NewStyle().Foreground(theme.MagentaBlaze)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.MutedLavender)
	ta.BlurredStyle.LineNumber = lipgloss.NewStyle().Foreground(theme.DimPurple)
	ta.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.MutedLavender)
	ta.Blur()

	return Model{
		textarea: ta,
		paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		language: PlainText,
		tabs:     true,
	}
}

// Init initializes the editor.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes input to the textarea. Any message that changes the text
// counts as an edit; programmatic SetText calls never do.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, isKey := msg.(tea.KeyMsg); isKey && !m.Focused() {
		return m, nil
	}

	before := m.textarea.Value()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.paste):
			cmd = pasteCmd
		case msg.Paste:
			m.textarea.InsertString(m.toBuffer(string(msg.Runes)))
		default:
			m.textarea, cmd = m.textarea.Update(msg)
		}

	case PasteMsg:
		if msg.Err != nil {
			log.Printf("paste failed: %v", msg.Err)
			break
		}
		m.textarea.InsertString(m.toBuffer(msg.Text))

	default:
		m.textarea, cmd = m.textarea.Update(msg)
	}

	if m.textarea.Value() != before {
		m.edits++
	}
	return m, cmd
}

func pasteCmd() tea.Msg {
	text, err := readClipboard()
	return PasteMsg{Text: text, Err: err}
}

// toBuffer maps file text to what the textarea shows.
func (m Model) toBuffer(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if m.tabs {
		text = strings.ReplaceAll(text, "\t", TabGlyph)
	}
	return text
}

// View renders the editor.
func (m Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}
	return m.textarea.View()
}

// Text returns the current contents as they would be written to disk.
func (m Model) Text() string {
	text := m.textarea.Value()
	if m.tabs {
		text = strings.ReplaceAll(text, TabGlyph, "\t")
	}
	if m.crlf {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	return text
}

// SetText replaces the contents and puts the cursor at the top. Files
// whose line breaks are all CRLF keep them. Tabs are shown as TabGlyph
// unless the text already contains that glyph.
func (m *Model) SetText(text string) {
	newlines := strings.Count(text, "\n")
	m.crlf = newlines > 0 && strings.Count(text, "\r\n") == newlines
	m.tabs = !strings.Contains(text, TabGlyph)

	m.textarea.SetValue(m.toBuffer(text))
	for m.textarea.Line() > 0 {
		m.textarea.CursorUp()
	}
	m.textarea.CursorStart()

	m.lossy = m.Text() != text
}

// Lossy reports whether the last SetText had to alter the text, e.g. mixed
// line endings or control characters. Saving writes the altered text.
func (m Model) Lossy() bool {
	return m.lossy
}

// Edits counts user edits so far.
func (m Model) Edits() int {
	return m.edits
}

// SetPath detects the language of the shown file.
func (m *Model) SetPath(path string) {
	m.language = detectLanguage(path)
	if path != "" {
		m.textarea.Placeholder = ""
	}
}

// Language returns the display name of the shown file's language.
func (m Model) Language() string {
	return m.language
}

// Cursor returns the 1-based line and column of the cursor.
func (m Model) Cursor() (line, col int) {
	info := m.textarea.LineInfo()
	return m.textarea.Line() + 1, info.StartColumn + info.ColumnOffset + 1
}

// LineCount returns the number of lines in the buffer.
func (m Model) LineCount() int {
	return m.textarea.LineCount()
}

// SetLineNumbers toggles the line number gutter.
func (m *Model) SetLineNumbers(show bool) {
	m.textarea.ShowLineNumbers = show
}

// LineNumbers reports whether the gutter is shown.
func (m Model) LineNumbers() bool {
	return m.textarea.ShowLineNumbers
}

// Focus gives focus to the editor.
func (m Model) Focus() (Model, tea.Cmd) {
	m.Base.Focus()
	cmd := m.textarea.Focus()
	return m, cmd
}

// Blur removes focus from the editor.
func (m Model) Blur() Model {
	m.Base.Blur()
	m.textarea.Blur()
	return m
}

// SetSize updates the editor's dimensions.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	w, h := m.Size()
	m.textarea.SetWidth(w)
	m.textarea.SetHeight(h)
	return m
}

func detectLanguage(path string) string {
	if path == "" {
		return PlainText
	}
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return PlainText
	}
	return lexer.Config().Name
}

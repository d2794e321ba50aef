package filetree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avitaltamir/zazo/internal/fstree"
	"github.com/avitaltamir/zazo/internal/fsys"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModel builds a focused tree over:
//
//	root/
//	  .hidden
//	  a.txt
//	  sub/
//	    b.go
func newTestModel(t *testing.T) (Model, *fstree.Tree, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.go"), []byte("package b"), 0644))

	tree := fstree.New(fsys.OS{}, root)
	m := New(tree).SetSize(40, 20).Focus()
	return m, tree, root
}

func press(m Model, msg tea.KeyMsg) Model {
	m, _ = m.Update(msg)
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDot   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'.'}}
)

func TestNew(t *testing.T) {
	m, tree, root := newTestModel(t)

	require.Len(t, m.rows, 4)
	assert.Equal(t, root, m.rows[0].node.Path)
	assert.Equal(t, []string{".hidden", "a.txt", "sub"}, []string{m.rows[1].name(), m.rows[2].name(), m.rows[3].name()})
	assert.Equal(t, root, m.Root())
	assert.Equal(t, root, m.CursorPath())

	_, ok := m.Selection()
	assert.False(t, ok, "nothing is selected at start")
	assert.Zero(t, m.Selections())

	assert.False(t, tree.Expanded(fstree.Node{Path: filepath.Join(root, "sub")}), "collapsed directories are not listed")
}

func TestModelFocusBlur(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.True(t, m.Focused())

	m = m.Blur()
	assert.False(t, m.Focused())
}

func TestModelSetSize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = m.SetSize(30, 12)

	w, h := m.Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 12, h)
}

func TestCursorMovementSelects(t *testing.T) {
	m, _, root := newTestModel(t)

	m = press(m, keyDown)
	m = press(m, keyDown)

	sel, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "a.txt"), sel.Path)
	assert.Equal(t, 2, m.Selections())

	m = press(m, keyUp)
	sel, _ = m.Selection()
	assert.Equal(t, filepath.Join(root, ".hidden"), sel.Path)
	assert.Equal(t, 3, m.Selections())
}

func TestCursorAtEdgeDoesNotSelect(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(m, keyUp)
	assert.Zero(t, m.Selections())

	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 1, m.Selections())
	m = press(m, keyDown)
	assert.Equal(t, 1, m.Selections())
}

func TestIgnoresKeysWhenBlurred(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = m.Blur()

	m = press(m, keyDown)
	assert.Zero(t, m.Selections())
	assert.Equal(t, 0, m.cursor)
}

func TestEnterReselectsFile(t *testing.T) {
	m, _, root := newTestModel(t)
	m = press(m, keyDown)
	m = press(m, keyDown)
	require.Equal(t, 2, m.Selections())

	m = press(m, keyEnter)

	sel, _ := m.Selection()
	assert.Equal(t, filepath.Join(root, "a.txt"), sel.Path)
	assert.Equal(t, 3, m.Selections())
	assert.Equal(t, 2, m.cursor)
}

func TestEnterTogglesDirectory(t *testing.T) {
	m, tree, root := newTestModel(t)
	sub := fstree.Node{Path: filepath.Join(root, "sub")}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, sub.Path, m.CursorPath())
	before := m.Selections()

	m = press(m, keyEnter)
	require.Len(t, m.rows, 5)
	assert.Equal(t, "b.go", m.rows[4].name())
	assert.Equal(t, 1, m.rows[4].depth)
	assert.True(t, tree.Expanded(sub))
	assert.Equal(t, before, m.Selections(), "toggling is not a selection")

	m = press(m, keyEnter)
	assert.Len(t, m.rows, 4)
	assert.Equal(t, sub.Path, m.CursorPath())
}

func TestRightExpandsLeftCollapses(t *testing.T) {
	m, _, root := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})

	m = press(m, keyRight)
	require.Len(t, m.rows, 5)

	// Right on an expanded directory is a no-op.
	m = press(m, keyRight)
	assert.Len(t, m.rows, 5)

	m = press(m, keyDown)
	assert.Equal(t, filepath.Join(root, "sub", "b.go"), m.CursorPath())

	// Left on a file jumps to its parent.
	m = press(m, keyLeft)
	assert.Equal(t, filepath.Join(root, "sub"), m.CursorPath())
	sel, _ := m.Selection()
	assert.Equal(t, filepath.Join(root, "sub"), sel.Path)

	m = press(m, keyLeft)
	assert.Len(t, m.rows, 4)
}

func TestCollapsedChildrenSurviveReopen(t *testing.T) {
	m, _, root := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	m = press(m, keyEnter)

	// A file created after the first listing stays invisible.
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "late.txt"), []byte(""), 0644))

	m = press(m, keyEnter)
	m = press(m, keyEnter)
	assert.Len(t, m.rows, 5)
}

func TestToggleHidden(t *testing.T) {
	m, _, root := newTestModel(t)
	m = press(m, keyDown)
	m = press(m, keyDown)
	require.Equal(t, filepath.Join(root, "a.txt"), m.CursorPath())

	m = press(m, keyDot)
	assert.False(t, m.ShowHidden())
	require.Len(t, m.rows, 3)
	assert.Equal(t, filepath.Join(root, "a.txt"), m.CursorPath(), "cursor follows its row")

	m = press(m, keyDot)
	assert.True(t, m.ShowHidden())
	assert.Len(t, m.rows, 4)
}

func TestCompactIndent(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.False(t, m.CompactIndent())

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}, Alt: true})
	assert.True(t, m.CompactIndent())

	m.SetCompactIndent(false)
	assert.False(t, m.CompactIndent())
}

func TestMouse(t *testing.T) {
	t.Run("click selects row", func(t *testing.T) {
		m, _, root := newTestModel(t)

		m, _ = m.Update(tea.MouseMsg{X: 3, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

		sel, ok := m.Selection()
		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, "a.txt"), sel.Path)
	})

	t.Run("second click on directory toggles it", func(t *testing.T) {
		m, _, _ := newTestModel(t)
		click := tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}

		m, _ = m.Update(click)
		assert.Len(t, m.rows, 4)
		m, _ = m.Update(click)
		assert.Len(t, m.rows, 5)
	})

	t.Run("click below rows is ignored", func(t *testing.T) {
		m, _, _ := newTestModel(t)

		m, _ = m.Update(tea.MouseMsg{X: 3, Y: 15, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
		assert.Zero(t, m.Selections())
	})

	t.Run("wheel scrolls without selecting", func(t *testing.T) {
		m, _, _ := newTestModel(t)
		m = m.SetSize(40, 2)

		m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
		assert.Equal(t, 2, m.offset)
		assert.Zero(t, m.Selections())

		m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp})
		assert.Equal(t, 0, m.offset)
	})
}

func TestScrollFollowsCursor(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = m.SetSize(40, 2)

	m = press(m, keyDown)
	m = press(m, keyDown)
	assert.Equal(t, 1, m.offset)

	m = press(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.offset)
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "a.txt")
	assert.Contains(t, view, "sub/")
	assert.Contains(t, view, ".hidden")

	m = m.SetSize(0, 0)
	assert.Empty(t, m.View())
}

func TestViewTruncatesLongNames(t *testing.T) {
	root := t.TempDir()
	long := "a-very-long-file-name-that-does-not-fit.txt"
	require.NoError(t, os.WriteFile(filepath.Join(root, long), []byte(""), 0644))

	m := New(fstree.New(fsys.OS{}, root)).SetSize(16, 5)
	view := m.View()
	assert.NotContains(t, view, long)
	assert.Contains(t, view, "…")
}

func TestMissingRoot(t *testing.T) {
	m := New(fstree.New(fsys.OS{}, filepath.Join(t.TempDir(), "gone"))).SetSize(20, 5).Focus()

	require.Len(t, m.rows, 1)
	m = press(m, keyEnter)
	assert.Len(t, m.rows, 1, "vanished root lists nothing")
}

func TestHidingCursorRowSelectsNearestVisibleRow(t *testing.T) {
	m, _, root := newTestModel(t)
	m = press(m, keyDown)
	require.Equal(t, filepath.Join(root, ".hidden"), m.CursorPath())
	before := m.Selections()

	m = press(m, keyDot)

	assert.Equal(t, root, m.CursorPath())
	sel, _ := m.Selection()
	assert.Equal(t, root, sel.Path, "selection follows the cursor")
	assert.Equal(t, before+1, m.Selections())
}

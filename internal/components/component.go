// Package components holds what the tree and editor panes share.
package components

// Base tracks focus and the inner size a parent assigned to a pane.
// Embed it in pane models.
type Base struct {
	focused bool
	width   int
	height  int
}

// NewBase creates a Base with the given dimensions.
func NewBase(width, height int) Base {
	return Base{
		width:  width,
		height: height,
	}
}

// Focus sets the focused state to true.
func (b *Base) Focus() {
	b.focused = true
}

// Blur sets the focused state to false.
func (b *Base) Blur() {
	b.focused = false
}

// Focused returns the current focus state.
func (b Base) Focused() bool {
	return b.focused
}

// SetSize updates the pane's dimensions. Negative values are treated as zero.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

// Size returns the pane's current dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

package layout

// Layout constants
const (
	DefaultLeftPanelPercent = 20
	MinLeftPanelPercent     = 10
	MaxLeftPanelPercent     = 60
	StatusBarHeight         = 1
	MinPanelWidth           = 12
	MinPanelHeight          = 3
)

// Layout holds calculated dimensions for the tree pane, the editor pane and
// the status bar.
type Layout struct {
	// Total terminal dimensions
	TotalWidth  int
	TotalHeight int

	// Panel widths
	LeftWidth  int
	RightWidth int

	// Height shared by both panes
	MainHeight int

	StatusHeight int
}

// ClampLeftPercent bounds the tree pane's share of the width.
func ClampLeftPercent(percent int) int {
	if percent < MinLeftPanelPercent {
		return MinLeftPanelPercent
	}
	if percent > MaxLeftPanelPercent {
		return MaxLeftPanelPercent
	}
	return percent
}

// Calculate computes the layout dimensions based on terminal size.
// leftPercent controls the width of the tree pane.
func Calculate(width, height int, leftPercent int) Layout {
	l := Layout{
		TotalWidth:   width,
		TotalHeight:  height,
		StatusHeight: StatusBarHeight,
	}

	leftPercent = ClampLeftPercent(leftPercent)

	l.LeftWidth = max(width*leftPercent/100, MinPanelWidth)
	l.RightWidth = max(width-l.LeftWidth, MinPanelWidth)

	// Ensure we don't exceed total width
	if l.LeftWidth+l.RightWidth > width {
		l.RightWidth = max(width-l.LeftWidth, 0)
	}

	l.MainHeight = max(height-l.StatusHeight, MinPanelHeight)

	return l
}

// LeftPanelBounds returns the position and size of the tree pane.
func (l Layout) LeftPanelBounds() (x, y, width, height int) {
	return 0, 0, l.LeftWidth, l.MainHeight
}

// RightPanelBounds returns the position and size of the editor pane.
func (l Layout) RightPanelBounds() (x, y, width, height int) {
	return l.LeftWidth, 0, l.RightWidth, l.MainHeight
}

// StatusBarBounds returns the position and size of the status bar.
func (l Layout) StatusBarBounds() (x, y, width, height int) {
	return 0, l.MainHeight, l.TotalWidth, l.StatusHeight
}

// Contains reports whether the cell (px, py) falls inside the given bounds.
func Contains(px, py, x, y, width, height int) bool {
	return px >= x && px < x+width && py >= y && py < y+height
}

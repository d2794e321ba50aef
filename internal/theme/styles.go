package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Border definitions
var (
	// NeonBorder uses heavy lines for the focused pane
	NeonBorder = lipgloss.Border{
		Top:         "━",
		Bottom:      "━",
		Left:        "┃",
		Right:       "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}

	// GlowBorder uses rounded corners for unfocused panes
	GlowBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
)

// File tree styles
var (
	FileTreeDir = lipgloss.NewStyle().
			Foreground(CyberCyan).
			Bold(true)

	FileTreeFile = lipgloss.NewStyle().
			Foreground(PureWhite)

	FileTreeSelected = lipgloss.NewStyle().
				Foreground(MagentaBlaze).
				Background(Twilight).
				Bold(true)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Silver).
			Padding(0, 1)

	StatusSavedStyle = lipgloss.NewStyle().
				Foreground(MatrixGreen)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(NeonRed).
				Bold(true)

	StatusDirtyStyle = lipgloss.NewStyle().
				Foreground(ElectricYellow)

	StatusHintStyle = lipgloss.NewStyle().
			Foreground(DimPurple)
)

// Dialog styles
var (
	DialogStyle = lipgloss.NewStyle().
			Border(NeonBorder).
			BorderForeground(MagentaBlaze).
			Background(DeepSpace).
			Padding(1, 3)

	DialogErrorStyle = lipgloss.NewStyle().
				Border(NeonBorder).
				BorderForeground(NeonRed).
				Background(DeepSpace).
				Padding(1, 3)

	DialogTitleStyle = lipgloss.NewStyle().
				Foreground(CyberCyan).
				Bold(true)

	DialogHintStyle = lipgloss.NewStyle().
			Foreground(MutedLavender).
			Italic(true)
)

// PanelTitleOptions configures what to show in panel borders.
type PanelTitleOptions struct {
	Title       string // Main title text (e.g., "FILES", "main.go")
	Modified    bool   // Show the unsaved marker after the title
	Badge       string // Right-aligned tag in the top border (e.g., "Go")
	BottomHints string // Key hints for bottom border (e.g., "tab:tree  ^s:save")
}

// RenderPanelWithTitle renders content in a panel with title embedded in the border.
func RenderPanelWithTitle(content string, opts PanelTitleOptions, width, height int, focused bool) string {
	if width < 4 || height < 2 {
		return ""
	}

	var border lipgloss.Border
	var borderColor lipgloss.Color
	var titleColor lipgloss.Color

	if focused {
		border = NeonBorder
		borderColor = MagentaBlaze
		titleColor = CyberCyan
	} else {
		border = GlowBorder
		borderColor = DimPurple
		titleColor = DimPurple
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)

	innerWidth := width - 2

	topBorder := buildTopBorder(border, borderStyle, titleStyle, opts, innerWidth)
	bottomBorder := buildBottomBorder(border, borderStyle, opts.BottomHints, innerWidth)

	contentHeight := max(height-2, 0)
	contentLines := strings.Split(content, "\n")
	renderedLines := make([]string, contentHeight)

	for i := 0; i < contentHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], innerWidth, "")
		}
		if w := ansi.StringWidth(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		renderedLines[i] = borderStyle.Render(border.Left) + line + borderStyle.Render(border.Right)
	}

	var result strings.Builder
	result.WriteString(topBorder)
	result.WriteString("\n")
	result.WriteString(strings.Join(renderedLines, "\n"))
	result.WriteString("\n")
	result.WriteString(bottomBorder)

	return result.String()
}

// buildTopBorder creates the top border with title, modified marker and badge.
func buildTopBorder(border lipgloss.Border, borderStyle, titleStyle lipgloss.Style, opts PanelTitleOptions, innerWidth int) string {
	const leftFiller = 2 // Small gap after corner

	titleSegment := "[ " + titleStyle.Render(opts.Title)
	if opts.Modified {
		titleSegment += " " + StatusDirtyStyle.Render(IconModified)
	}
	titleSegment += " ]"
	titleSegment = ansi.Truncate(titleSegment, max(innerWidth-leftFiller, 0), "…")

	var badgeSegment string
	if opts.Badge != "" {
		badgeSegment = "[ " + lipgloss.NewStyle().Foreground(LaserPurple).Render(opts.Badge) + " ]"
	}

	titleWidth := ansi.StringWidth(titleSegment)
	badgeWidth := ansi.StringWidth(badgeSegment)

	rightFiller := innerWidth - leftFiller - titleWidth - badgeWidth
	if rightFiller < 1 {
		// No room for the badge
		badgeSegment = ""
		rightFiller = max(innerWidth-leftFiller-titleWidth, 0)
	}

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.TopLeft))
	result.WriteString(borderStyle.Render(strings.Repeat(border.Top, leftFiller)))
	result.WriteString(titleSegment)
	if badgeSegment != "" {
		result.WriteString(borderStyle.Render(strings.Repeat(border.Top, rightFiller-1)))
		result.WriteString(badgeSegment)
		result.WriteString(borderStyle.Render(border.Top))
	} else {
		result.WriteString(borderStyle.Render(strings.Repeat(border.Top, rightFiller)))
	}
	result.WriteString(borderStyle.Render(border.TopRight))

	return result.String()
}

// buildBottomBorder creates the bottom border with optional key hints.
func buildBottomBorder(border lipgloss.Border, borderStyle lipgloss.Style, hints string, innerWidth int) string {
	if hints == "" {
		return borderStyle.Render(border.BottomLeft) +
			borderStyle.Render(strings.Repeat(border.Bottom, innerWidth)) +
			borderStyle.Render(border.BottomRight)
	}

	const leftFiller = 2

	hintSegment := "[ " + lipgloss.NewStyle().Foreground(MutedLavender).Render(hints) + " ]"
	hintSegment = ansi.Truncate(hintSegment, max(innerWidth-leftFiller, 0), "…")
	rightFiller := max(innerWidth-leftFiller-ansi.StringWidth(hintSegment), 0)

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.BottomLeft))
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, leftFiller)))
	result.WriteString(hintSegment)
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, rightFiller)))
	result.WriteString(borderStyle.Render(border.BottomRight))

	return result.String()
}

// RenderDialog centers a bordered box over a width x height area.
func RenderDialog(style lipgloss.Style, title, body, hint string, width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		DialogTitleStyle.Render(title),
		"",
		body,
		"",
		DialogHintStyle.Render(hint),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, style.Render(content))
}

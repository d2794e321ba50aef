package theme

import "github.com/charmbracelet/lipgloss"

// Accent colors
var (
	MagentaBlaze   = lipgloss.Color("#FF00FF") // Focused borders
	CyberCyan      = lipgloss.Color("#00FFFF") // Titles, directories
	MatrixGreen    = lipgloss.Color("#39FF14") // Saved
	NeonRed        = lipgloss.Color("#FF3131") // Errors
	ElectricYellow = lipgloss.Color("#FFFF00") // Unsaved edits
	LaserPurple    = lipgloss.Color("#7B68EE") // Language badge
)

// Background Colors
var (
	DeepSpace = lipgloss.Color("#1A0A2E") // Dialog backgrounds
	Twilight  = lipgloss.Color("#2D1B4E") // Selected tree row
)

// Text Colors - Text hierarchy from bright to dim
var (
	PureWhite     = lipgloss.Color("#FFFFFF") // Primary text
	Silver        = lipgloss.Color("#E0E0E0") // Secondary text
	MutedLavender = lipgloss.Color("#888899") // Hints
	DimPurple     = lipgloss.Color("#4A4A6A") // Unfocused borders, line numbers
)

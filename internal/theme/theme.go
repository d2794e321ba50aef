package theme

// Theme holds the icon configuration for the tree.
type Theme struct {
	// Name of the theme
	Name string

	// Whether to use Nerd Font icons
	UseNerdFonts bool
}

// DefaultTheme returns the default theme with plain icons.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "Cyberpunk",
	}
}

// GetFileIcon returns the icon for a file, respecting the UseNerdFonts setting.
func (t *Theme) GetFileIcon(ext string) string {
	if !t.UseNerdFonts {
		return IconFile
	}
	return GetFileIcon(ext)
}

// GetDirIcon returns the icon for a directory, respecting the UseNerdFonts setting.
func (t *Theme) GetDirIcon(name string, expanded bool) string {
	if t.UseNerdFonts {
		if icon := GetDirIcon(name); icon != "" {
			return icon
		}
	}

	if expanded {
		return IconDirExpanded
	}
	return IconDirCollapsed
}

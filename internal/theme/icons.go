package theme

// Directory and tree icons
const (
	IconDirCollapsed = "▸"
	IconDirExpanded  = "▾"
	IconFile         = " "
	IconModified     = "●"
)

// Tree indentation
const (
	TreeSpace        = "    "
	TreeSpaceCompact = "  "
)

// Panel decorations
const (
	PanelDiamond = "◈"
)

// FileIcons maps file extensions to Nerd Font icons
var FileIcons = map[string]string{
	".go":   "\ue627",
	".mod":  "\ue627",
	".sum":  "\ue627",
	".md":   "\ue609",
	".txt":  "\uf15c",
	".json": "\ue60b",
	".yaml": "\ue6a8",
	".yml":  "\ue6a8",
	".toml": "\ue6b2",
	".sh":   "\ue795",
	".py":   "\ue606",
	".rs":   "\ue7a8",
	".java": "\ue738",
	".js":   "\ue74e",
	".ts":   "\ue628",
	".html": "\ue736",
	".css":  "\ue749",
	".c":    "\ue61e",
	".h":    "\ue61e",

	// Default
	"": "\uf15b",
}

// DirIcons maps directory names to Nerd Font icons
var DirIcons = map[string]string{
	".git":         "", // Git icon
	"node_modules": "", // Node icon
	"vendor":       "", // Package icon
	"cmd":          "", // Terminal
	"internal":     "", // Lock
	"docs":         "", // Book
	".config":      "", // Cog
}

// GetFileIcon returns the appropriate icon for a file extension.
func GetFileIcon(ext string) string {
	if icon, ok := FileIcons[ext]; ok {
		return icon
	}
	return FileIcons[""]
}

// GetDirIcon returns the appropriate icon for a directory name.
func GetDirIcon(name string) string {
	if icon, ok := DirIcons[name]; ok {
		return icon
	}
	return ""
}

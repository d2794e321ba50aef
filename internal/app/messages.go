package app

import "github.com/fsnotify/fsnotify"

// PanelID identifies which panel has focus.
type PanelID int

const (
	PanelNone PanelID = iota
	PanelFileTree
	PanelEditor
)

// String returns the panel name for debugging.
func (p PanelID) String() string {
	switch p {
	case PanelNone:
		return "None"
	case PanelFileTree:
		return "FileTree"
	case PanelEditor:
		return "Editor"
	default:
		return "Unknown"
	}
}

// FileChangeMsg is sent when the directory holding the open file changes.
type FileChangeMsg struct {
	Path string
	Op   fsnotify.Op
}

// statusKind picks the status bar style for a message.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSaved
	statusError
)

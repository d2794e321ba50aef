package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/avitaltamir/zazo/internal/layout"
)

const (
	configDirName = ".config"
	appDirName    = "zazo"
	stateFileName = "state.json"
	logFileName   = "zazo.log"
)

// State represents the persisted UI preferences.
type State struct {
	// LeftPanelPercent is the width percentage of the tree pane
	LeftPanelPercent int `json:"left_panel_percent,omitempty"`
	// ShowHidden controls whether dot-files appear in the tree
	ShowHidden bool `json:"show_hidden"`
	// CompactIndent indicates if the tree uses compact (2-space) indentation
	CompactIndent bool `json:"compact_indent,omitempty"`
	// LineNumbers toggles the editor gutter
	LineNumbers bool `json:"line_numbers"`
	// NerdFonts switches tree icons to Nerd Font glyphs
	NerdFonts bool `json:"nerd_fonts,omitempty"`
}

// DefaultState returns the default state for first run.
func DefaultState() State {
	return State{
		LeftPanelPercent: layout.DefaultLeftPanelPercent,
		ShowHidden:       true,
		LineNumbers:      true,
	}
}

// configDir returns the path to the config directory (~/.config/zazo).
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, appDirName), nil
}

// statePath returns the global path to the state file.
func statePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFileName), nil
}

// LogPath returns the log file location, creating its directory.
func LogPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// Load reads the global application state.
// Returns default state if file doesn't exist or can't be read.
func Load() State {
	path, err := statePath()
	if err != nil {
		return DefaultState()
	}
	return LoadFrom(path)
}

// LoadFrom reads state from path. Missing or invalid files yield defaults;
// out-of-range values are clamped.
func LoadFrom(path string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultState()
	}

	s := DefaultState()
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultState()
	}

	if s.LeftPanelPercent == 0 {
		s.LeftPanelPercent = layout.DefaultLeftPanelPercent
	}
	s.LeftPanelPercent = layout.ClampLeftPercent(s.LeftPanelPercent)
	return s
}

// Save writes the global application state.
func Save(s State) error {
	path, err := statePath()
	if err != nil {
		return err
	}
	return SaveTo(path, s)
}

// SaveTo writes s to path, creating parent directories.
func SaveTo(path string, s State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

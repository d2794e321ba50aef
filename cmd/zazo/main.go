package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/avitaltamir/zazo/internal/app"
	"github.com/avitaltamir/zazo/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

var version = "dev"

func main() {
	// Set the app version for display in the UI
	app.Version = version

	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println("zazo", version)
		return
	}

	// The UI owns the terminal; log to a file or nowhere.
	log.SetOutput(io.Discard)
	if path, err := state.LogPath(); err == nil {
		if f, err := tea.LogToFile(path, "zazo"); err == nil {
			defer f.Close()
		}
	}

	p := tea.NewProgram(
		app.New(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package session implements the load/autosave rules that tie the directory
// tree to the editing buffer.
//
// The controller holds no session data of its own. Callers own a State
// value and pass it to every transition, so the rules can be driven from
// tests without any UI.
package session

import (
	"fmt"
	"log"

	"github.com/avitaltamir/zazo/internal/fsys"
)

// FileNotFound is shown in the buffer when a selected target cannot be read.
const FileNotFound = "File Not Found"

// State is the editor session: which file the buffer belongs to and whether
// the buffer has been edited since it was last loaded or saved.
type State struct {
	OpenPath string
	Dirty    bool
}

// HasOpenFile reports whether a file has been selected yet.
func (s State) HasOpenFile() bool {
	return s.OpenPath != ""
}

// Buffer is the text surface the controller loads into and saves from.
type Buffer interface {
	Text() string
	SetText(text string)
}

// Notifier surfaces non-fatal errors to the user.
type Notifier interface {
	NotifyError(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// NotifyError calls f(message).
func (f NotifierFunc) NotifyError(message string) {
	f(message)
}

// Outcome describes the side effects of one transition.
type Outcome struct {
	// Saved is true when the buffer was written to SavedPath without error.
	Saved     bool
	SavedPath string
	// SaveErr is a *WriteError when a save was attempted and failed.
	SaveErr error
	// LoadErr is a *ReadError when the selected target could not be read.
	LoadErr error
}

// Controller applies selection and edit events to a State.
type Controller struct {
	fs       fsys.FS
	notifier Notifier
}

// NewController returns a controller doing its I/O through fs. A nil
// notifier discards save errors after logging them.
func NewController(fs fsys.FS, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	return &Controller{fs: fs, notifier: notifier}
}

// BufferChanged records a user edit. Idempotent.
func (c *Controller) BufferChanged(st *State) {
	st.Dirty = true
}

// Select moves the session to target.
//
// The previous file is flushed first (see Flush), then OpenPath becomes
// target whether or not the flush succeeded, then target is read into buf.
// If the read fails buf shows FileNotFound, but OpenPath still points at
// target: a later edit followed by another selection will try to save
// there. On return the state is clean; loading is not an edit.
func (c *Controller) Select(st *State, buf Buffer, target string) Outcome {
	out := c.Flush(st, buf)

	st.OpenPath = target

	data, err := c.fs.ReadFile(target)
	if err != nil {
		log.Printf("read failed: %s: %v", target, err)
		out.LoadErr = &ReadError{Path: target, Err: err}
		buf.SetText(FileNotFound)
	} else {
		buf.SetText(string(data))
	}

	st.Dirty = false
	return out
}

// Flush writes buf to the open file if the session is dirty. The write
// replaces the whole file. Success or failure, a flush that attempted a
// write leaves the state clean; failures are reported through the
// notifier and never retried. A dirty session with no open file has
// nowhere to save to and stays dirty.
func (c *Controller) Flush(st *State, buf Buffer) Outcome {
	var out Outcome
	if !st.Dirty || !st.HasOpenFile() {
		return out
	}

	path := st.OpenPath
	if err := c.fs.WriteFile(path, []byte(buf.Text())); err != nil {
		log.Printf("save failed: %s: %v", path, err)
		out.SaveErr = &WriteError{Path: path, Err: err}
		c.notifier.NotifyError(fmt.Sprintf("Error saving file: %v", err))
	} else {
		out.Saved = true
		out.SavedPath = path
	}

	st.Dirty = false
	return out
}

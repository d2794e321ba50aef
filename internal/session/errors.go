package session

import "fmt"

// ReadError reports that a selected target could not be loaded into the
// buffer. It is recovered by showing the FileNotFound placeholder.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports that the buffer could not be saved to its file. It is
// recovered by notifying the user; the session carries on as if the save
// had succeeded.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

package filetree

import (
	"path/filepath"
	"strings"

	"github.com/avitaltamir/zazo/internal/fstree"
)

// row is one visible line of the tree.
type row struct {
	node  fstree.Node
	depth int
	leaf  bool
}

func (r row) name() string {
	return fstree.DisplayName(r.node)
}

// hidden reports whether the entry is a dot-file.
func (r row) hidden() bool {
	return strings.HasPrefix(r.name(), ".")
}

// extension returns the lowercased file extension (empty for directories).
func (r row) extension() string {
	if !r.leaf {
		return ""
	}
	return strings.ToLower(filepath.Ext(r.name()))
}

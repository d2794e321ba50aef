// Package fstree provides a lazily expanded view of a directory hierarchy.
//
// A Tree never re-reads the filesystem for a node it has already looked at:
// a directory's children are listed once, on first request, and a node's
// leaf classification is computed once, on first query. Later changes on
// disk are not reflected.
package fstree

import (
	"log"
	"path/filepath"
	"slices"

	"github.com/avitaltamir/zazo/internal/fsys"
)

// Node identifies one filesystem entry in the tree.
// Nodes are plain values; all cached state lives in the Tree.
type Node struct {
	Path string
}

// Name returns the display name of the node.
func (n Node) Name() string {
	return DisplayName(n)
}

// DisplayName returns the final path segment of n, or the full path when
// there is no final segment (for example the filesystem root).
func DisplayName(n Node) string {
	name := filepath.Base(n.Path)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return n.Path
	}
	return name
}

// Tree is a snapshot-on-expand mirror of a directory hierarchy.
// It is not safe for concurrent use.
type Tree struct {
	fs   fsys.FS
	root Node

	children map[string][]Node // path -> listed children; absent means unexpanded
	leaf     map[string]bool   // path -> is regular file; absent means unclassified
	parent   map[string]string // child path -> parent path
}

// New creates a tree rooted at path. Relative paths are made absolute.
// Nothing is read from disk until the tree is queried.
func New(fs fsys.FS, path string) *Tree {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Tree{
		fs:       fs,
		root:     Node{Path: path},
		children: make(map[string][]Node),
		leaf:     make(map[string]bool),
		parent:   make(map[string]string),
	}
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.root
}

// Children returns the immediate children of n, listing the directory on
// the first call only. Entries keep the order the directory listing
// returned. A node that cannot be listed (a file, a vanished directory, a
// permission error) has no children; that empty result is cached as well.
func (t *Tree) Children(n Node) []Node {
	if cached, ok := t.children[n.Path]; ok {
		return slices.Clone(cached)
	}

	entries, err := t.fs.ReadDir(n.Path)
	if err != nil {
		log.Printf("list failed: %s: %v", n.Path, err)
	}

	children := make([]Node, 0, len(entries))
	for _, entry := range entries {
		child := Node{Path: filepath.Join(n.Path, entry.Name())}
		t.parent[child.Path] = n.Path
		children = append(children, child)
	}

	t.children[n.Path] = children
	return slices.Clone(children)
}

// IsLeaf reports whether n is a regular file. The answer is computed with a
// single stat on first query and cached. A path that no longer exists is
// not a leaf.
func (t *Tree) IsLeaf(n Node) bool {
	if leaf, ok := t.leaf[n.Path]; ok {
		return leaf
	}

	leaf := false
	if info, err := t.fs.Stat(n.Path); err == nil {
		leaf = info.Mode().IsRegular()
	}
	t.leaf[n.Path] = leaf
	return leaf
}

// Expanded reports whether the children of n have been listed.
func (t *Tree) Expanded(n Node) bool {
	_, ok := t.children[n.Path]
	return ok
}

// Classified reports whether IsLeaf has been computed for n.
func (t *Tree) Classified(n Node) bool {
	_, ok := t.leaf[n.Path]
	return ok
}

// Parent returns the node n was listed under. The root has no parent.
func (t *Tree) Parent(n Node) (Node, bool) {
	p, ok := t.parent[n.Path]
	if !ok {
		return Node{}, false
	}
	return Node{Path: p}, true
}

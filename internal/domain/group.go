package domain

import (
	"path/filepath"
	"strings"
)

// Group is a directory of related test cases, relative to the corpus root
type Group struct {
	Path string
}

// NewGroups converts a list of relative paths into groups, keeping their order
func NewGroups(paths []string) []Group {
	groups := make([]Group, 0, len(paths))
	for _, p := range paths {
		groups = append(groups, Group{Path: p})
	}
	return groups
}

// Dir resolves the group directory against the corpus root
func (g Group) Dir(root string) string {
	if filepath.IsAbs(g.Path) {
		return filepath.Clean(g.Path)
	}
	return filepath.Join(root, g.Path)
}

// Key returns a name for the group that is safe to use as a single path segment.
// The corpus root itself is keyed as "root".
func (g Group) Key() string {
	p := filepath.ToSlash(filepath.Clean(g.Path))
	p = strings.Trim(p, "/")
	if p == "" || p == "." {
		return "root"
	}
	p = strings.ReplaceAll(p, "../", "up_")
	return strings.ReplaceAll(p, "/", "_")
}

// String returns the group path as configured
func (g Group) String() string {
	if g.Path == "" {
		return "."
	}
	return g.Path
}

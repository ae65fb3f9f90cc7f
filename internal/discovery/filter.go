package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters case names by pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters case names using wildcard matching.
// Supports patterns like "test0*" or "*array*"; a pattern without wildcards
// matches as a substring. Order is preserved.
func (f *Filter) FilterByName(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	var filtered []string
	for _, name := range names {
		if f.Match(name, pattern) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// Match reports whether a single case name matches pattern
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to matching the literal parts in order, for patterns
	// filepath.Match rejects or that span characters it treats specially
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	return found
}

package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ltr/internal/domain"
)

// Scanner enumerates test cases in a group directory
type Scanner struct {
	suffix string
}

// NewScanner creates a new Scanner matching files with the given source suffix
func NewScanner(suffix string) *Scanner {
	return &Scanner{suffix: suffix}
}

// Scan returns the names of all cases in dir: every regular file ending with
// the source suffix, suffix stripped, sorted ascending. Subdirectories are not
// descended into.
func (s *Scanner) Scan(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: test path does not exist: %s", domain.ErrDiscovery, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: test path is not a directory: %s", domain.ErrDiscovery, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDiscovery, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, s.suffix) || len(name) == len(s.suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, s.suffix))
	}

	// ReadDir sorts by file name, but the stripped names must be sorted on their own
	sort.Strings(names)

	return names, nil
}

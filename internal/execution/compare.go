package execution

import (
	"bytes"
	"fmt"
	"os"
)

// Compare reports whether the two files have identical contents.
// No normalisation is applied, trailing newlines included.
func Compare(expected, actual string) (bool, error) {
	want, err := os.ReadFile(expected)
	if err != nil {
		return false, fmt.Errorf("read expected output: %w", err)
	}
	got, err := os.ReadFile(actual)
	if err != nil {
		return false, fmt.Errorf("read actual output: %w", err)
	}
	return bytes.Equal(want, got), nil
}

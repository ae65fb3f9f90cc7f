package cli

import (
	"errors"
	"fmt"

	"ltr/internal/domain"
)

// ExitError carries a process exit status out of a command. Its message has
// already been shown to the user by the time it is returned.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an error returned by a command to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return domain.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, domain.ErrConfig) {
		return domain.ExitUsage
	}
	return domain.ExitIncomplete
}

// Silent reports whether err needs no further message
func Silent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

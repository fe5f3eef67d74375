package commands

import "fmt"

// ExitError carries a process exit code through cobra's error return. The
// run command uses it to report the failure count without printing an error.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// errors.go
package mpkg

import (
	"fmt"

	"github.com/arc-language/mpkg/pkg/core"
)

var (
	// ErrUnsupportedOperation indicates the manager has no command for the requested kind
	ErrUnsupportedOperation = core.ErrUnsupportedOperation

	// ErrInvalidArguments indicates arguments rejected before any process was started
	ErrInvalidArguments = core.ErrInvalidArguments

	// ErrManagerNotAvailable indicates the manager is not installed or not runnable
	ErrManagerNotAvailable = core.ErrManagerNotAvailable

	// ErrLaunchFailed indicates the manager binary could not be started
	ErrLaunchFailed = core.ErrLaunchFailed

	// ErrInvalidPackage indicates the package specification is invalid
	ErrInvalidPackage = core.ErrInvalidPackage

	// ErrNotVerified indicates a token not issued by the verifier
	ErrNotVerified = core.ErrNotVerified

	// ErrUnknownManager indicates a manager that is not compiled in
	ErrUnknownManager = core.ErrUnknownManager
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Manager string // Manager name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Manager != "" {
		return fmt.Sprintf("%s %s: %v", e.Manager, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

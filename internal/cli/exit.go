// internal/cli/exit.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/manager"
)

// Exit codes
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitNotAvailable = 2
	ExitUnsupported  = 3
	ExitInvalid      = 4
	ExitLaunch       = 5
)

// exitError carries a manager's own non-zero exit status
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// ExitCode maps an error returned by Execute to a process exit code
func ExitCode(err error) int {
	var ee *exitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &ee):
		if ee.code > 0 && ee.code < 256 {
			return ee.code
		}
		return ExitFailure
	case errors.Is(err, core.ErrManagerNotAvailable):
		return ExitNotAvailable
	case errors.Is(err, core.ErrUnsupportedOperation):
		return ExitUnsupported
	case errors.Is(err, core.ErrInvalidArguments),
		errors.Is(err, core.ErrInvalidPackage),
		errors.Is(err, core.ErrUnknownManager):
		return ExitInvalid
	case errors.Is(err, core.ErrLaunchFailed):
		return ExitLaunch
	}
	return ExitFailure
}

// unknownManager decorates err with the closest known manager names
func unknownManager(name string, err error) error {
	matches := fuzzy.Find(strings.ToLower(name), manager.Names())
	if len(matches) == 0 {
		return fmt.Errorf("%w (known: %s)", err, joinNames())
	}
	return fmt.Errorf("%w, did you mean %q?", err, matches[0].Str)
}

func joinNames() string {
	return strings.Join(manager.Names(), ", ")
}

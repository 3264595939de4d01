// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedOperation indicates the manager has no command for the requested kind
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidArguments indicates the caller's arguments cannot form a command
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrManagerNotAvailable indicates the manager is not installed or not runnable
	ErrManagerNotAvailable = errors.New("package manager not available")

	// ErrLaunchFailed indicates the manager binary could not be started at all
	ErrLaunchFailed = errors.New("launch failed")

	// ErrInvalidPackage indicates a package specification could not be parsed
	ErrInvalidPackage = errors.New("invalid package")

	// ErrNotVerified indicates a verified-tier call was given a token the verifier did not issue
	ErrNotVerified = errors.New("manager not verified")

	// ErrUnknownManager indicates a manager name that is not compiled in
	ErrUnknownManager = errors.New("unknown package manager")
)

// UnsupportedError reports a (manager, command) pair without a table row
type UnsupportedError struct {
	Manager string
	Cmd     Cmd
}

func (e *UnsupportedError) Error() string {
	if e.Manager == "" {
		return fmt.Sprintf("%s: %v", e.Cmd, ErrUnsupportedOperation)
	}
	return fmt.Sprintf("%s %s: %v", e.Manager, e.Cmd, ErrUnsupportedOperation)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupportedOperation
}

// ArgumentError reports arguments rejected before any process was started
type ArgumentError struct {
	Cmd    Cmd
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Cmd, ErrInvalidArguments, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArguments
}

// LaunchError reports a binary that could not be located or started
type LaunchError struct {
	Binary string
	Args   []string
	Err    error
}

func (e *LaunchError) Error() string {
	cmdline := strings.TrimSpace(e.Binary + " " + strings.Join(e.Args, " "))
	return fmt.Sprintf("%v: %s: %v", ErrLaunchFailed, cmdline, e.Err)
}

// Is matches ErrLaunchFailed as well as the underlying cause
func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunchFailed
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed package specification
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidPackage, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidPackage
}

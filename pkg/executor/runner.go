// pkg/executor/runner.go
package executor

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Runner is the process boundary. Implementations pass args as argv
// directly, never through a shell.
type Runner interface {
	// LookPath resolves a binary name against PATH
	LookPath(name string) (string, error)

	// Run starts name with args, waits for it, and returns its exit code.
	// The error is non-nil only when the process could not be started or
	// ctx ended before it exited.
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) (int, error)

	// Start launches name with args and returns without waiting
	Start(name string, args []string, stdout, stderr io.Writer) (Process, error)
}

// Process is a running child started by Runner.Start
type Process interface {
	// Wait blocks until the process exits and returns its exit code
	Wait() (int, error)
	Kill() error
	Pid() int
}

// Real implements Runner using os/exec
type Real struct{}

// NewReal creates a real runner
func NewReal() *Real {
	return &Real{}
}

// LookPath checks if a command exists
func (r *Real) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes a command and waits for it
func (r *Real) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return -1, err
	}
	werr := cmd.Wait()
	if werr != nil && ctx.Err() != nil {
		return -1, ctx.Err()
	}
	return exitCode(werr)
}

// Start launches a command in the background
func (r *Real) Start(name string, args []string, stdout, stderr io.Writer) (Process, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &realProcess{cmd: cmd}, nil
}

type realProcess struct {
	cmd *exec.Cmd
}

func (p *realProcess) Wait() (int, error) {
	return exitCode(p.cmd.Wait())
}

func (p *realProcess) Kill() error {
	return p.cmd.Process.Kill()
}

func (p *realProcess) Pid() int {
	return p.cmd.Process.Pid
}

// exitCode turns the result of Cmd.Wait into an exit code. A non-zero
// exit is data, not an error; a signalled process reports -1.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

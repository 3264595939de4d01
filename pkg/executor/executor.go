// pkg/executor/executor.go
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/arc-language/mpkg/pkg/core"
)

// Status is the completion status of a manager invocation.
// A non-zero code is data for the caller to interpret, not an error.
type Status struct {
	Code int
	// Line is the command line that ran, sudo included
	Line string
}

// Success reports a zero exit code
func (s Status) Success() bool {
	return s.Code == 0
}

func (s Status) String() string {
	return fmt.Sprintf("exit status %d", s.Code)
}

// Output is the captured result of a blocking invocation
type Output struct {
	Stdout []byte
	Stderr []byte
	Status Status
}

// Executor runs manager binaries in one of three modes
type Executor struct {
	runner Runner
	logger *log.Logger
	sudo   bool
	stdout io.Writer
	stderr io.Writer
	euid   func() int
	goos   string
}

// Option configures an Executor
type Option func(*Executor)

// WithLogger sets the logger; nil discards
func WithLogger(l *log.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSudo prefixes invocations with sudo on Linux when not running as root
func WithSudo(enabled bool) Option {
	return func(e *Executor) {
		e.sudo = enabled
	}
}

// WithPlatform overrides the host OS and effective uid used to decide on sudo
func WithPlatform(goos string, euid int) Option {
	return func(e *Executor) {
		e.goos = goos
		e.euid = func() int { return euid }
	}
}

// WithStream forwards the child's output of ExecStatus and Spawn to w
func WithStream(stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

// New creates an executor; a nil runner uses the real os/exec runner
func New(runner Runner, opts ...Option) *Executor {
	if runner == nil {
		runner = NewReal()
	}
	e := &Executor{
		runner: runner,
		logger: log.New(io.Discard, "", 0),
		euid:   os.Geteuid,
		goos:   runtime.GOOS,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Unprivileged returns a copy of e that never uses sudo
func (e *Executor) Unprivileged() *Executor {
	c := *e
	c.sudo = false
	return &c
}

// Runner returns the underlying process runner
func (e *Executor) Runner() Runner {
	return e.runner
}

// Exec runs binary with args, waits for it, and captures its output
func (e *Executor) Exec(ctx context.Context, binary string, args []string) (*Output, error) {
	name, argv := e.commandLine(binary, args)
	e.logger.Printf("Executing %s with args %q", name, argv)

	var stdout, stderr bytes.Buffer
	code, err := e.runner.Run(ctx, name, argv, &stdout, &stderr)
	if err != nil {
		return nil, e.runError(ctx, name, argv, err)
	}

	e.logger.Printf(">>> %s: exit status %d, %d bytes stdout", name, code, stdout.Len())
	return &Output{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
		Status: Status{Code: code, Line: line(name, argv)},
	}, nil
}

// ExecStatus runs binary with args and returns only its completion status
func (e *Executor) ExecStatus(ctx context.Context, binary string, args []string) (Status, error) {
	name, argv := e.commandLine(binary, args)
	e.logger.Printf("Executing %s with args %q", name, argv)

	code, err := e.runner.Run(ctx, name, argv, e.stdout, e.stderr)
	if err != nil {
		return Status{Code: -1, Line: line(name, argv)}, e.runError(ctx, name, argv, err)
	}

	e.logger.Printf(">>> %s: exit status %d", name, code)
	return Status{Code: code, Line: line(name, argv)}, nil
}

// Spawn starts binary with args and returns without waiting.
// The caller owns the returned handle.
func (e *Executor) Spawn(binary string, args []string) (*Child, error) {
	name, argv := e.commandLine(binary, args)
	e.logger.Printf("Spawning %s with args %q", name, argv)

	proc, err := e.runner.Start(name, argv, e.stdout, e.stderr)
	if err != nil {
		return nil, &core.LaunchError{Binary: name, Args: argv, Err: err}
	}
	return &Child{proc: proc, Binary: name, Args: argv}, nil
}

// CommandLine returns the name and argv that would be executed
func (e *Executor) CommandLine(binary string, args []string) string {
	return line(e.commandLine(binary, args))
}

func line(name string, argv []string) string {
	return strings.TrimSpace(name + " " + strings.Join(argv, " "))
}

func (e *Executor) commandLine(binary string, args []string) (string, []string) {
	argv := append([]string(nil), args...)
	if e.needsSudo() {
		return "sudo", append([]string{binary}, argv...)
	}
	return binary, argv
}

func (e *Executor) needsSudo() bool {
	if !e.sudo || e.goos != "linux" {
		return false
	}
	return e.euid() != 0
}

func (e *Executor) runError(ctx context.Context, name string, argv []string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", name, ctx.Err())
	}
	e.logger.Printf("✗ Failed to launch %s: %v", name, err)
	return &core.LaunchError{Binary: name, Args: argv, Err: err}
}

// Child is a handle to a spawned manager process
type Child struct {
	proc   Process
	Binary string
	Args   []string
}

// Wait blocks until the child exits
func (c *Child) Wait() (Status, error) {
	code, err := c.proc.Wait()
	if err != nil {
		return Status{Code: -1, Line: line(c.Binary, c.Args)}, fmt.Errorf("waiting for %s: %w", c.Binary, err)
	}
	return Status{Code: code, Line: line(c.Binary, c.Args)}, nil
}

// Kill terminates the child
func (c *Child) Kill() error {
	return c.proc.Kill()
}

// Pid returns the child's process id
func (c *Child) Pid() int {
	return c.proc.Pid()
}

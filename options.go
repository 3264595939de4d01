// options.go
package mpkg

import (
	"io"
	"log"

	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/executor"
	"github.com/arc-language/mpkg/pkg/manager"
)

// Resolver renames a package for a specific manager, e.g. an alias
// registry mapping "sqlite3" to "libsqlite3-dev" on apt
type Resolver interface {
	ResolvePackage(pkg core.Package, id manager.ID) core.Package
}

// Option configures a PackageManager or VerifiedPackageManager
type Option func(*options)

type options struct {
	executor   *executor.Executor
	runner     executor.Runner
	logger     *log.Logger
	sudo       bool
	stdout     io.Writer
	stderr     io.Writer
	extraFlags map[core.Cmd][]string
	resolver   Resolver
	version    string
}

// WithExecutor uses e for every invocation. It takes precedence over
// WithRunner, WithSudo and WithStream.
func WithExecutor(e *executor.Executor) Option {
	return func(o *options) {
		o.executor = e
	}
}

// WithRunner sets the process boundary, e.g. executor.NewMock in tests
func WithRunner(r executor.Runner) Option {
	return func(o *options) {
		o.runner = r
	}
}

// WithLogger sets the logger; nil discards
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSudo runs mutating commands through sudo on Linux when not root.
// Managers that refuse root, such as Homebrew, never use it.
func WithSudo(enabled bool) Option {
	return func(o *options) {
		o.sudo = enabled
	}
}

// WithStream forwards the manager's output of status-only invocations
func WithStream(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithExtraFlags appends flags after the default flags of cmd.
// Repeated calls accumulate.
func WithExtraFlags(cmd core.Cmd, flags ...string) Option {
	return func(o *options) {
		if o.extraFlags == nil {
			o.extraFlags = make(map[core.Cmd][]string)
		}
		o.extraFlags[cmd] = append(o.extraFlags[cmd], flags...)
	}
}

// WithResolver renames packages before they reach the command line
func WithResolver(r Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithManagerVersion selects the command table for a manager release,
// e.g. "1.4.0" for Chocolatey 1.x. The verified tier defaults to the
// version reported while verifying.
func WithManagerVersion(version string) Option {
	return func(o *options) {
		o.version = version
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}
	if o.executor == nil {
		o.executor = executor.New(o.runner,
			executor.WithLogger(o.logger),
			executor.WithSudo(o.sudo),
			executor.WithStream(o.stdout, o.stderr),
		)
	}
	return o
}

// pkg/verify/verify.go
package verify

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"

	"github.com/arc-language/mpkg/pkg/executor"
	"github.com/arc-language/mpkg/pkg/manager"
)

// Verified is proof that a manager was found and answered its version check.
// Only Verifier.Verify issues tokens; the zero value is not verified.
type Verified struct {
	id      manager.ID
	path    string
	version string
	issued  bool
}

// Manager returns the verified manager
func (v *Verified) Manager() manager.ID {
	if v == nil {
		return ""
	}
	return v.id
}

// Path returns the resolved path of the manager binary
func (v *Verified) Path() string {
	if v == nil {
		return ""
	}
	return v.path
}

// Version returns the first line the manager printed for --version
func (v *Verified) Version() string {
	if v == nil {
		return ""
	}
	return v.version
}

// Valid reports whether the token was issued by a Verifier
func (v *Verified) Valid() bool {
	return v != nil && v.issued && v.id.Valid()
}

// Verifier checks that managers are installed and runnable
type Verifier struct {
	runner executor.Runner
	logger *log.Logger
}

// New creates a verifier; a nil runner uses the host, a nil logger discards
func New(runner executor.Runner, logger *log.Logger) *Verifier {
	if runner == nil {
		runner = executor.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Verifier{runner: runner, logger: logger}
}

// Verify locates id's binary on PATH and runs `<binary> --version`.
// It returns (nil, false) when the manager is unknown, absent, fails to
// start or exits non-zero. No process is launched for an absent binary.
func (v *Verifier) Verify(ctx context.Context, id manager.ID) (*Verified, bool) {
	b := id.Backend()
	if b == nil {
		v.logger.Printf("Unknown package manager %q", id)
		return nil, false
	}

	path, err := v.runner.LookPath(b.Binary())
	if err != nil {
		v.logger.Printf("%s not found: %v", b.Binary(), err)
		return nil, false
	}

	var stdout bytes.Buffer
	code, err := v.runner.Run(ctx, b.Binary(), []string{"--version"}, &stdout, io.Discard)
	if err != nil {
		v.logger.Printf("%s --version failed: %v", b.Binary(), err)
		return nil, false
	}
	if code != 0 {
		v.logger.Printf("%s --version exited with %d", b.Binary(), code)
		return nil, false
	}

	version := firstLine(stdout.String())
	v.logger.Printf("✓ Verified %s %s at %s", id, version, path)
	return &Verified{id: id, path: path, version: version, issued: true}, true
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// Available reports whether id is usable on this host
func Available(ctx context.Context, id manager.ID) bool {
	_, ok := New(nil, nil).Verify(ctx, id)
	return ok
}

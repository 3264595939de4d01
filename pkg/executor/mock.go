// pkg/executor/mock.go
package executor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Response is a canned result for a mocked command
type Response struct {
	Stdout string
	Stderr string
	Code   int
}

// Mock implements Runner for testing
type Mock struct {
	Commands      map[string]bool     // which binaries exist on the fake PATH
	Responses     map[string]Response // command line prefix -> response
	Errors        map[string]error    // command line prefix -> launch error
	RecordedCalls []RecordedCall      // all Run and Start calls made

	mu sync.Mutex
}

// RecordedCall captures a command invocation
type RecordedCall struct {
	Name  string
	Args  []string
	Spawn bool
}

// Line renders the call as "name arg1 arg2"
func (c RecordedCall) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// NewMock creates a mock runner where the given binaries exist
func NewMock(binaries ...string) *Mock {
	m := &Mock{
		Commands:  make(map[string]bool),
		Responses: make(map[string]Response),
		Errors:    make(map[string]error),
	}
	for _, b := range binaries {
		m.Commands[b] = true
	}
	return m
}

// Calls returns a snapshot of the recorded calls
func (m *Mock) Calls() []RecordedCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedCall(nil), m.RecordedCalls...)
}

// LookPath checks if a command exists in the mock
func (m *Mock) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Commands[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

// Run records the call and writes the mocked response
func (m *Mock) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) (int, error) {
	resp, err := m.record(name, args, false)
	if err != nil {
		return -1, err
	}
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	if stdout != nil {
		io.WriteString(stdout, resp.Stdout)
	}
	if stderr != nil {
		io.WriteString(stderr, resp.Stderr)
	}
	return resp.Code, nil
}

// Start records the call and returns an already finished process
func (m *Mock) Start(name string, args []string, stdout, stderr io.Writer) (Process, error) {
	resp, err := m.record(name, args, true)
	if err != nil {
		return nil, err
	}
	if stdout != nil {
		io.WriteString(stdout, resp.Stdout)
	}
	if stderr != nil {
		io.WriteString(stderr, resp.Stderr)
	}
	return &mockProcess{code: resp.Code}, nil
}

func (m *Mock) record(name string, args []string, spawn bool) (Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RecordedCalls = append(m.RecordedCalls, RecordedCall{
		Name:  name,
		Args:  append([]string(nil), args...),
		Spawn: spawn,
	})

	if !m.Commands[name] {
		return Response{}, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}

	// Build command key for lookup
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))

	// Check for exact match first
	if err, ok := m.Errors[key]; ok {
		return Response{}, err
	}
	if resp, ok := m.Responses[key]; ok {
		return resp, nil
	}

	// Then the longest prefix match
	var (
		best    string
		bestErr error
		found   bool
	)
	for pattern, err := range m.Errors {
		if strings.HasPrefix(key, pattern) && len(pattern) > len(best) {
			best, bestErr, found = pattern, err, true
		}
	}
	if found {
		return Response{}, bestErr
	}

	var bestResp Response
	for pattern, resp := range m.Responses {
		if strings.HasPrefix(key, pattern) && len(pattern) > len(best) {
			best, bestResp = pattern, resp
		}
	}

	// Default response is an empty, successful run
	return bestResp, nil
}

type mockProcess struct {
	code   int
	killed bool
}

func (p *mockProcess) Wait() (int, error) {
	if p.killed {
		return -1, nil
	}
	return p.code, nil
}

func (p *mockProcess) Kill() error {
	p.killed = true
	return nil
}

func (p *mockProcess) Pid() int {
	return 0
}

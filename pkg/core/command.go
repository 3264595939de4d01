// pkg/core/command.go
package core

import (
	"fmt"
	"slices"
)

// Cmd is a command kind, the key into a manager's command table
type Cmd int

const (
	CmdInstall Cmd = iota + 1
	CmdUninstall
	CmdUpdate
	CmdUpdateAll
	CmdSearch
	CmdListInstalled
	// CmdList is the raw listing command without listing flags, only
	// reachable through manual consolidation.
	CmdList
	CmdSync
	CmdAddRepo
)

// AllCmds lists every command kind in declaration order
var AllCmds = []Cmd{
	CmdInstall,
	CmdUninstall,
	CmdUpdate,
	CmdUpdateAll,
	CmdSearch,
	CmdListInstalled,
	CmdList,
	CmdSync,
	CmdAddRepo,
}

var cmdNames = map[Cmd]string{
	CmdInstall:       "install",
	CmdUninstall:     "uninstall",
	CmdUpdate:        "update",
	CmdUpdateAll:     "update-all",
	CmdSearch:        "search",
	CmdListInstalled: "list-installed",
	CmdList:          "list",
	CmdSync:          "sync",
	CmdAddRepo:       "add-repo",
}

func (c Cmd) String() string {
	if s, ok := cmdNames[c]; ok {
		return s
	}
	return fmt.Sprintf("cmd(%d)", int(c))
}

// ParseCmd maps a command name as printed by String back to a Cmd
func ParseCmd(s string) (Cmd, error) {
	for c, name := range cmdNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command kind %q", s)
}

// RequiresTargets reports whether the command needs at least one argument
func (c Cmd) RequiresTargets() bool {
	switch c {
	case CmdInstall, CmdUninstall, CmdUpdate, CmdAddRepo:
		return true
	}
	return false
}

// Mutates reports whether cmd changes installed state or repository
// configuration
func (c Cmd) Mutates() bool {
	switch c {
	case CmdInstall, CmdUninstall, CmdUpdate, CmdUpdateAll, CmdSync, CmdAddRepo:
		return true
	}
	return false
}

// Operation is the high-level vocabulary exposed by the facade
type Operation int

const (
	OpInstall Operation = iota + 1
	OpUninstall
	OpUpdate
	OpUpdateAll
	OpSearch
	OpListInstalled
)

// Cmd returns the command kind an operation consults
func (o Operation) Cmd() Cmd {
	switch o {
	case OpInstall:
		return CmdInstall
	case OpUninstall:
		return CmdUninstall
	case OpUpdate:
		return CmdUpdate
	case OpUpdateAll:
		return CmdUpdateAll
	case OpSearch:
		return CmdSearch
	case OpListInstalled:
		return CmdListInstalled
	}
	return 0
}

// Mutates reports whether the operation changes installed state
func (o Operation) Mutates() bool {
	switch o {
	case OpInstall, OpUninstall, OpUpdate, OpUpdateAll:
		return true
	}
	return false
}

func (o Operation) String() string {
	if c := o.Cmd(); c != 0 {
		return c.String()
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

// Row is one command table entry: the manager sub-command tokens and the
// default flags appended after caller arguments
type Row struct {
	Tokens []string
	Flags  []string
}

// Table maps command kinds to rows for a single manager.
// Managers keep their tables private and hand out clones.
type Table map[Cmd]Row

// Lookup returns a copy of the row for cmd, or an *UnsupportedError
func (t Table) Lookup(cmd Cmd) (Row, error) {
	row, ok := t[cmd]
	if !ok || len(row.Tokens) == 0 {
		return Row{}, &UnsupportedError{Cmd: cmd}
	}
	return Row{
		Tokens: slices.Clone(row.Tokens),
		Flags:  slices.Clone(row.Flags),
	}, nil
}

// Clone returns a deep copy of t
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for cmd, row := range t {
		out[cmd] = Row{
			Tokens: slices.Clone(row.Tokens),
			Flags:  slices.Clone(row.Flags),
		}
	}
	return out
}

// Supports reports whether the table has a usable row for cmd
func (t Table) Supports(cmd Cmd) bool {
	row, ok := t[cmd]
	return ok && len(row.Tokens) > 0
}

// Cmds returns the supported command kinds in declaration order
func (t Table) Cmds() []Cmd {
	var cmds []Cmd
	for _, c := range AllCmds {
		if t.Supports(c) {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

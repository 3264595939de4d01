// pkg/choco/commands.go
package choco

import (
	"strconv"
	"strings"

	"github.com/arc-language/mpkg/pkg/core"
)

// Binary is the Chocolatey executable
const Binary = "choco"

// commands is the Chocolatey command table. Sync has no equivalent.
var commands = core.Table{
	core.CmdInstall:       {Tokens: []string{"install"}, Flags: []string{"-y"}},
	core.CmdUninstall:     {Tokens: []string{"uninstall"}, Flags: []string{"-y"}},
	core.CmdUpdate:        {Tokens: []string{"upgrade"}, Flags: []string{"-y"}},
	core.CmdUpdateAll:     {Tokens: []string{"upgrade", "all"}, Flags: []string{"-y"}},
	core.CmdSearch:        {Tokens: []string{"search"}, Flags: []string{"-r"}},
	core.CmdListInstalled: {Tokens: []string{"list"}, Flags: []string{"-r"}},
	core.CmdList:          {Tokens: []string{"list"}},
	core.CmdAddRepo:       {Tokens: []string{"source", "add"}},
}

// localOnly restricts `list` to installed packages on Chocolatey 1.x,
// where it otherwise queries the remote feed
const localOnly = "--local-only"

// Manager drives Chocolatey
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "chocolatey" }
func (Manager) NeedsRoot() bool { return false }

// PackageArgs pins versions with --version
func (Manager) PackageArgs(p core.Package) []string {
	if p.HasVersion() {
		return []string{p.Name(), "--version", p.Version()}
	}
	return []string{p.Name()}
}

func (Manager) ParseList(out []byte) *core.PackageIter { return Parse(out) }
func (Manager) ParseSearch(out []byte) *core.PackageIter { return Parse(out) }

// CommandsFor returns the table for the Chocolatey release version
func (Manager) CommandsFor(version string) core.Table {
	t := commands.Clone()
	if major := majorVersion(version); major >= 0 && major < 2 {
		row := t[core.CmdListInstalled]
		row.Flags = append(row.Flags, localOnly)
		t[core.CmdListInstalled] = row
	}
	return t
}

// majorVersion reads the major number of "1.4.0" or "v2.2.2", or -1
func majorVersion(version string) int {
	fields := strings.Fields(version)
	if len(fields) == 0 {
		return -1
	}
	major, _, _ := strings.Cut(strings.TrimPrefix(fields[0], "v"), ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return -1
	}
	return n
}

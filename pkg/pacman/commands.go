// pkg/pacman/commands.go
package pacman

import "github.com/arc-language/mpkg/pkg/core"

// Binary is the pacman executable
const Binary = "pacman"

// commands is the pacman command table. Repositories are configured in
// pacman.conf, so AddRepo has no row.
var commands = core.Table{
	core.CmdInstall:       {Tokens: []string{"-S"}, Flags: []string{"--noconfirm"}},
	core.CmdUninstall:     {Tokens: []string{"-R"}, Flags: []string{"--noconfirm"}},
	core.CmdUpdate:        {Tokens: []string{"-S"}, Flags: []string{"--noconfirm"}},
	core.CmdUpdateAll:     {Tokens: []string{"-Syu"}, Flags: []string{"--noconfirm"}},
	core.CmdSearch:        {Tokens: []string{"-Ss"}},
	core.CmdListInstalled: {Tokens: []string{"-Q"}},
	core.CmdList:          {Tokens: []string{"-Q"}},
	core.CmdSync:          {Tokens: []string{"-Sy"}},
}

// Manager drives pacman
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "alpm" }
func (Manager) NeedsRoot() bool { return true }

// PackageArgs pins versions as name=version
func (Manager) PackageArgs(p core.Package) []string {
	if p.HasVersion() {
		return []string{p.Name() + "=" + p.Version()}
	}
	return []string{p.Name()}
}

func (Manager) ParseList(out []byte) *core.PackageIter { return ParseList(out) }
func (Manager) ParseSearch(out []byte) *core.PackageIter { return ParseSearch(out) }

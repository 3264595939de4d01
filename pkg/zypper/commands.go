// pkg/zypper/commands.go
package zypper

import "github.com/arc-language/mpkg/pkg/core"

// Binary is the zypper executable
const Binary = "zypper"

// commands is the zypper command table. Global options such as
// --non-interactive and --xmlout precede the sub-command.
var commands = core.Table{
	core.CmdInstall:       {Tokens: []string{"--non-interactive", "install"}},
	core.CmdUninstall:     {Tokens: []string{"--non-interactive", "remove"}},
	core.CmdUpdate:        {Tokens: []string{"--non-interactive", "update"}},
	core.CmdUpdateAll:     {Tokens: []string{"--non-interactive", "dist-upgrade"}},
	core.CmdSearch:        {Tokens: []string{"--xmlout", "search"}},
	core.CmdListInstalled: {Tokens: []string{"--xmlout", "search"}, Flags: []string{"-i", "-s"}},
	core.CmdList:          {Tokens: []string{"search"}},
	core.CmdSync:          {Tokens: []string{"refresh"}},
	core.CmdAddRepo:       {Tokens: []string{"addrepo"}, Flags: []string{"-f"}},
}

// Manager drives zypper
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "rpm" }
func (Manager) NeedsRoot() bool { return true }

// PackageArgs pins versions as name-version
func (Manager) PackageArgs(p core.Package) []string {
	if p.HasVersion() {
		return []string{p.Name() + "-" + p.Version()}
	}
	return []string{p.Name()}
}

func (Manager) ParseList(out []byte) *core.PackageIter { return ParseInstalled(out) }
func (Manager) ParseSearch(out []byte) *core.PackageIter { return Parse(out) }

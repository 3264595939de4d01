// pkg/flatpak/commands.go
package flatpak

import "github.com/arc-language/mpkg/pkg/core"

// Binary is the flatpak executable
const Binary = "flatpak"

// commands is the flatpak command table. Appstream data is refreshed by
// update itself, so there is no Sync row.
var commands = core.Table{
	core.CmdInstall:       {Tokens: []string{"install"}, Flags: []string{"-y"}},
	core.CmdUninstall:     {Tokens: []string{"uninstall"}, Flags: []string{"-y"}},
	core.CmdUpdate:        {Tokens: []string{"update"}, Flags: []string{"-y"}},
	core.CmdUpdateAll:     {Tokens: []string{"update"}, Flags: []string{"-y"}},
	core.CmdSearch:        {Tokens: []string{"search"}},
	core.CmdListInstalled: {Tokens: []string{"list"}, Flags: []string{"--columns=application,version"}},
	core.CmdList:          {Tokens: []string{"list"}},
	core.CmdAddRepo:       {Tokens: []string{"remote-add"}, Flags: []string{"--if-not-exists"}},
}

// Manager drives flatpak
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "flatpak" }
func (Manager) NeedsRoot() bool { return true }

// PackageArgs passes the application id only; flatpak refs select
// branches, not versions
func (Manager) PackageArgs(p core.Package) []string {
	return []string{p.Name()}
}

func (Manager) ParseList(out []byte) *core.PackageIter { return Parse(out) }
func (Manager) ParseSearch(out []byte) *core.PackageIter { return Parse(out) }

// pkg/winget/commands.go
package winget

import "github.com/arc-language/mpkg/pkg/core"

// Binary is the Windows Package Manager client
const Binary = "winget"

var agreements = []string{"--accept-package-agreements", "--accept-source-agreements"}

// commands is the winget command table
var commands = core.Table{
	core.CmdInstall:       {Tokens: []string{"install"}, Flags: agreements},
	core.CmdUninstall:     {Tokens: []string{"uninstall"}},
	core.CmdUpdate:        {Tokens: []string{"upgrade"}},
	core.CmdUpdateAll:     {Tokens: []string{"upgrade"}, Flags: append([]string{"--all"}, agreements...)},
	core.CmdSearch:        {Tokens: []string{"search"}},
	core.CmdListInstalled: {Tokens: []string{"list"}},
	core.CmdList:          {Tokens: []string{"list"}},
	core.CmdSync:          {Tokens: []string{"source", "update"}},
	core.CmdAddRepo:       {Tokens: []string{"source", "add"}},
}

// Manager drives winget
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "winget" }
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

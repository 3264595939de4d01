// pkg/brew/commands.go
package brew

import "github.com/arc-language/mpkg/pkg/core"

// Binary is the Homebrew executable
const Binary = "brew"

// commands is the Homebrew command table
var commands = core.Table{
	core.CmdInstall:       {Tokens: []string{"install"}},
	core.CmdUninstall:     {Tokens: []string{"uninstall"}},
	core.CmdUpdate:        {Tokens: []string{"upgrade"}},
	core.CmdUpdateAll:     {Tokens: []string{"upgrade"}},
	core.CmdSearch:        {Tokens: []string{"search"}},
	core.CmdListInstalled: {Tokens: []string{"list"}, Flags: []string{"--versions"}},
	core.CmdList:          {Tokens: []string{"list"}},
	core.CmdSync:          {Tokens: []string{"update"}},
	core.CmdAddRepo:       {Tokens: []string{"tap"}},
}

// Manager drives Homebrew
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "brew" }

// NeedsRoot is false: Homebrew refuses to run as root
func (Manager) NeedsRoot() bool { return false }

// PackageArgs renders versioned formulae as name@version
func (Manager) PackageArgs(p core.Package) []string {
	if p.HasVersion() {
		return []string{p.Name() + "@" + p.Version()}
	}
	return []string{p.Name()}
}

func (Manager) ParseList(out []byte) *core.PackageIter { return ParseList(out) }
func (Manager) ParseSearch(out []byte) *core.PackageIter { return ParseSearch(out) }

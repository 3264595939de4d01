// pkg/apt/commands.go
package apt

import "github.com/arc-language/mpkg/pkg/core"

// Binary is the apt front end. apt-get lacks list and search.
const Binary = "apt"

// commands is the apt command table. Repositories are added by editing
// sources.list, which has no command form.
var commands = core.Table{
	core.CmdInstall:       {Tokens: []string{"install"}, Flags: []string{"-y"}},
	core.CmdUninstall:     {Tokens: []string{"remove"}, Flags: []string{"-y"}},
	core.CmdUpdate:        {Tokens: []string{"install"}, Flags: []string{"-y", "--only-upgrade"}},
	core.CmdUpdateAll:     {Tokens: []string{"upgrade"}, Flags: []string{"-y"}},
	core.CmdSearch:        {Tokens: []string{"search"}},
	core.CmdListInstalled: {Tokens: []string{"list"}, Flags: []string{"--installed"}},
	core.CmdList:          {Tokens: []string{"list"}},
	core.CmdSync:          {Tokens: []string{"update"}},
}

// Manager drives apt
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "deb" }
func (Manager) NeedsRoot() bool { return true }

// PackageArgs pins versions as name=version
func (Manager) PackageArgs(p core.Package) []string {
	if p.HasVersion() {
		return []string{p.Name() + "=" + p.Version()}
	}
	return []string{p.Name()}
}

func (Manager) ParseList(out []byte) *core.PackageIter { return Parse(out) }
func (Manager) ParseSearch(out []byte) *core.PackageIter { return Parse(out) }

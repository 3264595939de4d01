// pkg/apk/commands.go
package apk

import "github.com/arc-language/mpkg/pkg/core"

// Binary is the Alpine package keeper
const Binary = "apk"

// commands is the apk command table. Repositories are lines in
// /etc/apk/repositories, so AddRepo has no row.
var commands = core.Table{
	core.CmdInstall:       {Tokens: []string{"add"}},
	core.CmdUninstall:     {Tokens: []string{"del"}},
	core.CmdUpdate:        {Tokens: []string{"add"}, Flags: []string{"--upgrade"}},
	core.CmdUpdateAll:     {Tokens: []string{"upgrade"}},
	core.CmdSearch:        {Tokens: []string{"search"}, Flags: []string{"-v"}},
	core.CmdListInstalled: {Tokens: []string{"list"}, Flags: []string{"--installed"}},
	core.CmdList:          {Tokens: []string{"list"}},
	core.CmdSync:          {Tokens: []string{"update"}},
}

// Manager drives apk
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "apk" }
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

// pkg/nix/commands.go
package nix

import "github.com/arc-language/mpkg/pkg/core"

// Binary is the classic nix profile tool
const Binary = "nix-env"

// commands is the nix-env command table. Channels are managed by
// nix-channel, so Sync and AddRepo have no row.
var commands = core.Table{
	core.CmdInstall:       {Tokens: []string{"-iA"}},
	core.CmdUninstall:     {Tokens: []string{"-e"}},
	core.CmdUpdate:        {Tokens: []string{"-uA"}},
	core.CmdUpdateAll:     {Tokens: []string{"-u"}},
	core.CmdSearch:        {Tokens: []string{"-qaP"}},
	core.CmdListInstalled: {Tokens: []string{"-q"}, Flags: []string{"--installed", "--out-path"}},
	core.CmdList:          {Tokens: []string{"-q"}},
}

// Manager drives nix-env
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "nix" }
func (Manager) NeedsRoot() bool { return false }

// PackageArgs passes the attribute path; nix-env selects versions through
// the channel, not the command line
func (Manager) PackageArgs(p core.Package) []string {
	return []string{p.Name()}
}

func (Manager) ParseList(out []byte) *core.PackageIter { return ParseList(out) }
func (Manager) ParseSearch(out []byte) *core.PackageIter { return ParseSearch(out) }

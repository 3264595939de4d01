// pkg/dnf/commands.go
package dnf

import "github.com/arc-language/mpkg/pkg/core"

// Binary is the DNF executable
const Binary = "dnf"

// commands is the DNF command table. The repository flag precedes the
// repository argument, so it lives in the tokens.
var commands = core.Table{
	core.CmdInstall:       {Tokens: []string{"install"}, Flags: []string{"-y"}},
	core.CmdUninstall:     {Tokens: []string{"remove"}, Flags: []string{"-y"}},
	core.CmdUpdate:        {Tokens: []string{"upgrade"}, Flags: []string{"-y"}},
	core.CmdUpdateAll:     {Tokens: []string{"distro-sync"}, Flags: []string{"-y"}},
	core.CmdSearch:        {Tokens: []string{"search"}, Flags: []string{"-q"}},
	core.CmdListInstalled: {Tokens: []string{"list"}, Flags: []string{"--installed", "-q"}},
	core.CmdList:          {Tokens: []string{"list"}},
	core.CmdSync:          {Tokens: []string{"makecache"}},
	core.CmdAddRepo:       {Tokens: []string{"config-manager", "--add-repo"}},
}

// ConfigManagerPlugin provides the config-manager sub-command used by AddRepo
const ConfigManagerPlugin = "dnf-command(config-manager)"

// Manager drives DNF
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "rpm" }
func (Manager) NeedsRoot() bool { return true }

// PackageArgs pins versions as name-version
func (Manager) PackageArgs(p core.Package) []string {
	return PackageArgs(p)
}

// RepoPrerequisites lists packages that must be installed before AddRepo
func (Manager) RepoPrerequisites() []core.Package {
	return []core.Package{core.NewPackage(ConfigManagerPlugin, "")}
}

func (Manager) ParseList(out []byte) *core.PackageIter { return ParseList(out) }
func (Manager) ParseSearch(out []byte) *core.PackageIter { return ParseSearch(out) }

// PackageArgs renders an rpm target; shared with yum
func PackageArgs(p core.Package) []string {
	if p.HasVersion() {
		return []string{p.Name() + "-" + p.Version()}
	}
	return []string{p.Name()}
}

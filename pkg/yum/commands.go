// pkg/yum/commands.go
package yum

import (
	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/dnf"
)

// Binary is the YUM executable
const Binary = "yum"

// commands is the YUM command table. It follows DNF except that a full
// upgrade is `yum update`.
var commands = func() core.Table {
	t := dnf.Manager{}.Commands()
	t[core.CmdUpdateAll] = core.Row{Tokens: []string{"update"}, Flags: []string{"-y"}}
	return t
}()

// Manager drives YUM with DNF's output parsing
type Manager struct{}

func (Manager) Binary() string { return Binary }
func (Manager) Commands() core.Table { return commands.Clone() }
func (Manager) PURLType() string { return "rpm" }
func (Manager) NeedsRoot() bool { return true }

func (Manager) PackageArgs(p core.Package) []string { return dnf.PackageArgs(p) }

func (Manager) ParseList(out []byte) *core.PackageIter { return dnf.ParseList(out) }
func (Manager) ParseSearch(out []byte) *core.PackageIter { return dnf.ParseSearch(out) }

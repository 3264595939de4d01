// pkg/manager/manager.go
package manager

import (
	"fmt"
	"strings"

	packageurl "github.com/package-url/packageurl-go"

	"github.com/arc-language/mpkg/pkg/apk"
	"github.com/arc-language/mpkg/pkg/apt"
	"github.com/arc-language/mpkg/pkg/brew"
	"github.com/arc-language/mpkg/pkg/choco"
	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/dnf"
	"github.com/arc-language/mpkg/pkg/flatpak"
	"github.com/arc-language/mpkg/pkg/nix"
	"github.com/arc-language/mpkg/pkg/pacman"
	"github.com/arc-language/mpkg/pkg/winget"
	"github.com/arc-language/mpkg/pkg/yum"
	"github.com/arc-language/mpkg/pkg/zypper"
)

// ID identifies a supported package manager
type ID string

const (
	// Brew is Homebrew (macOS, Linux)
	Brew ID = "brew"
	// Choco is Chocolatey (Windows)
	Choco ID = "choco"
	// Apt is the Debian/Ubuntu front end
	Apt ID = "apt"
	// Dnf is the Fedora/RHEL package manager
	Dnf ID = "dnf"
	// Yum is the legacy RHEL/CentOS package manager
	Yum ID = "yum"
	// Zypper is the openSUSE package manager
	Zypper ID = "zypper"
	// Flatpak is the cross-distribution application manager
	Flatpak ID = "flatpak"
	// Nix is nix-env
	Nix ID = "nix"
	// Pacman is the Arch Linux package manager
	Pacman ID = "pacman"
	// Apk is the Alpine package keeper
	Apk ID = "apk"
	// Winget is the Windows Package Manager
	Winget ID = "winget"
)

// All lists every compiled-in manager
var All = []ID{Brew, Choco, Apt, Dnf, Yum, Zypper, Flatpak, Nix, Pacman, Apk, Winget}

var aliases = map[string]ID{
	"homebrew":   Brew,
	"chocolatey": Choco,
	"apt-get":    Apt,
	"nix-env":    Nix,
}

// Backend is the per-manager knowledge: binary, command table, target
// rendering and output parsing. Implementations are stateless.
type Backend interface {
	Binary() string
	Commands() core.Table
	// PackageArgs renders one target for the command line
	PackageArgs(core.Package) []string
	ParseList([]byte) *core.PackageIter
	ParseSearch([]byte) *core.PackageIter
	PURLType() string
	// NeedsRoot reports whether mutating commands run through sudo
	// when elevation is requested
	NeedsRoot() bool
}

// VersionedBackend is implemented by backends whose command table
// depends on the installed manager release
type VersionedBackend interface {
	CommandsFor(version string) core.Table
}

// RepoPreparer is implemented by backends whose AddRepo depends on a plugin
// package being installed first
type RepoPreparer interface {
	RepoPrerequisites() []core.Package
}

// ParseID resolves a manager name, case-insensitively
func ParseID(s string) (ID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if id, ok := aliases[name]; ok {
		return id, nil
	}
	for _, id := range All {
		if string(id) == name {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownManager, s)
}

// Names returns the names of all compiled-in managers
func Names() []string {
	names := make([]string, len(All))
	for i, id := range All {
		names[i] = string(id)
	}
	return names
}

func (id ID) String() string {
	return string(id)
}

// Valid reports whether id is compiled in
func (id ID) Valid() bool {
	return id.Backend() != nil
}

// Backend returns the manager's backend, or nil for an unknown id
func (id ID) Backend() Backend {
	switch id {
	case Brew:
		return brew.Manager{}
	case Choco:
		return choco.Manager{}
	case Apt:
		return apt.Manager{}
	case Dnf:
		return dnf.Manager{}
	case Yum:
		return yum.Manager{}
	case Zypper:
		return zypper.Manager{}
	case Flatpak:
		return flatpak.Manager{}
	case Nix:
		return nix.Manager{}
	case Pacman:
		return pacman.Manager{}
	case Apk:
		return apk.Manager{}
	case Winget:
		return winget.Manager{}
	}
	return nil
}

// Binary returns the executable name, or "" for an unknown id
func (id ID) Binary() string {
	if b := id.Backend(); b != nil {
		return b.Binary()
	}
	return ""
}

// Lookup returns the command table row for (id, cmd)
func Lookup(id ID, cmd core.Cmd) (core.Row, error) {
	return LookupVersion(id, "", cmd)
}

// LookupVersion returns the row for (id, cmd) as used by the given
// manager release, as reported by `--version`. An empty version selects
// the current release.
func LookupVersion(id ID, version string, cmd core.Cmd) (core.Row, error) {
	b := id.Backend()
	if b == nil {
		return core.Row{}, fmt.Errorf("%w: %q", core.ErrUnknownManager, string(id))
	}
	table := b.Commands()
	if vb, ok := b.(VersionedBackend); ok && version != "" {
		table = vb.CommandsFor(version)
	}
	row, err := table.Lookup(cmd)
	if err != nil {
		return core.Row{}, &core.UnsupportedError{Manager: string(id), Cmd: cmd}
	}
	return row, nil
}

// Supported lists the command kinds id has a row for, in declaration order
func Supported(id ID) []core.Cmd {
	b := id.Backend()
	if b == nil {
		return nil
	}
	return b.Commands().Cmds()
}

// PackageArgs renders every target for id's command line
func PackageArgs(id ID, pkgs []core.Package) []string {
	b := id.Backend()
	if b == nil {
		return nil
	}
	var args []string
	for _, p := range pkgs {
		args = append(args, b.PackageArgs(p)...)
	}
	return args
}

// PURL renders pkg as a package URL under id's ecosystem
func PURL(id ID, pkg core.Package) string {
	purlType := "generic"
	if b := id.Backend(); b != nil {
		purlType = b.PURLType()
	}
	name := pkg.Name()
	namespace := ""
	if i := strings.LastIndexByte(name, '/'); i > 0 {
		namespace, name = name[:i], name[i+1:]
	}
	return packageurl.NewPackageURL(purlType, namespace, name, pkg.Version(), nil, "").ToString()
}

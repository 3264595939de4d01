package manager

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/arc-language/mpkg/pkg/core"
)

func TestTableTotality(t *testing.T) {
	ops := []core.Operation{
		core.OpInstall,
		core.OpUninstall,
		core.OpUpdate,
		core.OpUpdateAll,
		core.OpSearch,
		core.OpListInstalled,
	}
	for _, id := range All {
		for _, op := range ops {
			row, err := Lookup(id, op.Cmd())
			if err != nil {
				t.Errorf("%s %s: no row for %s: %v", id, op, op.Cmd(), err)
				continue
			}
			if len(row.Tokens) == 0 {
				t.Errorf("%s %s: empty tokens", id, op)
			}
		}
	}
}

func TestSupportedMatchesLookup(t *testing.T) {
	for _, id := range All {
		supported := Supported(id)
		for _, cmd := range core.AllCmds {
			_, err := Lookup(id, cmd)
			if slices.Contains(supported, cmd) {
				if err != nil {
					t.Errorf("%s %s: listed as supported but Lookup failed: %v", id, cmd, err)
				}
				continue
			}
			if !errors.Is(err, core.ErrUnsupportedOperation) {
				t.Errorf("%s %s: expected ErrUnsupportedOperation, got %v", id, cmd, err)
			}
			var ue *core.UnsupportedError
			if errors.As(err, &ue) && ue.Manager != string(id) {
				t.Errorf("%s %s: error names manager %q", id, cmd, ue.Manager)
			}
		}
	}
}

func TestCommands_ReturnsCopy(t *testing.T) {
	for _, id := range All {
		table := id.Backend().Commands()
		for cmd, row := range table {
			if len(row.Tokens) > 0 {
				row.Tokens[0] = "mutated"
			}
			delete(table, cmd)
		}
		if _, err := Lookup(id, core.CmdInstall); err != nil {
			t.Errorf("%s: table emptied through Commands(): %v", id, err)
		}
		if row, _ := Lookup(id, core.CmdInstall); slices.Contains(row.Tokens, "mutated") {
			t.Errorf("%s: install row mutated through Commands(): %q", id, row.Tokens)
		}
	}
}

func TestNeedsRoot(t *testing.T) {
	want := map[ID]bool{
		Brew: false, Choco: false, Nix: false, Winget: false,
		Apt: true, Dnf: true, Yum: true, Zypper: true, Flatpak: true, Pacman: true, Apk: true,
	}
	for _, id := range All {
		if got := id.Backend().NeedsRoot(); got != want[id] {
			t.Errorf("%s.NeedsRoot() = %v, want %v", id, got, want[id])
		}
	}
}

func TestUnsupportedPairs(t *testing.T) {
	pairs := []struct {
		id  ID
		cmd core.Cmd
	}{
		{Choco, core.CmdSync},
		{Apt, core.CmdAddRepo},
		{Flatpak, core.CmdSync},
		{Nix, core.CmdSync},
		{Nix, core.CmdAddRepo},
		{Pacman, core.CmdAddRepo},
		{Apk, core.CmdAddRepo},
	}
	for _, p := range pairs {
		if _, err := Lookup(p.id, p.cmd); !errors.Is(err, core.ErrUnsupportedOperation) {
			t.Errorf("Lookup(%s, %s) = %v, want ErrUnsupportedOperation", p.id, p.cmd, err)
		}
	}
}

func TestLookup_Rows(t *testing.T) {
	tests := []struct {
		id     ID
		cmd    core.Cmd
		tokens []string
		flags  []string
	}{
		{Brew, core.CmdInstall, []string{"install"}, nil},
		{Brew, core.CmdListInstalled, []string{"list"}, []string{"--versions"}},
		{Choco, core.CmdUpdateAll, []string{"upgrade", "all"}, []string{"-y"}},
		{Apt, core.CmdUpdate, []string{"install"}, []string{"-y", "--only-upgrade"}},
		{Dnf, core.CmdAddRepo, []string{"config-manager", "--add-repo"}, nil},
		{Yum, core.CmdUpdateAll, []string{"update"}, []string{"-y"}},
		{Zypper, core.CmdInstall, []string{"--non-interactive", "install"}, nil},
		{Nix, core.CmdInstall, []string{"-iA"}, nil},
		{Pacman, core.CmdUpdateAll, []string{"-Syu"}, []string{"--noconfirm"}},
		{Winget, core.CmdSync, []string{"source", "update"}, nil},
	}
	for _, tt := range tests {
		row, err := Lookup(tt.id, tt.cmd)
		if err != nil {
			t.Fatalf("Lookup(%s, %s) error = %v", tt.id, tt.cmd, err)
		}
		if !reflect.DeepEqual(row.Tokens, tt.tokens) {
			t.Errorf("%s %s tokens = %q, want %q", tt.id, tt.cmd, row.Tokens, tt.tokens)
		}
		if len(row.Flags) != len(tt.flags) || (len(tt.flags) > 0 && !reflect.DeepEqual(row.Flags, tt.flags)) {
			t.Errorf("%s %s flags = %q, want %q", tt.id, tt.cmd, row.Flags, tt.flags)
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	row, _ := Lookup(Brew, core.CmdInstall)
	row.Tokens[0] = "mutated"

	again, _ := Lookup(Brew, core.CmdInstall)
	if again.Tokens[0] != "install" {
		t.Errorf("table mutated through lookup result: %q", again.Tokens)
	}
}

func TestLookup_UnknownManager(t *testing.T) {
	if _, err := Lookup(ID("portage"), core.CmdInstall); !errors.Is(err, core.ErrUnknownManager) {
		t.Errorf("expected ErrUnknownManager, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want ID
		err  bool
	}{
		{"brew", Brew, false},
		{"Homebrew", Brew, false},
		{" DNF ", Dnf, false},
		{"chocolatey", Choco, false},
		{"nix-env", Nix, false},
		{"portage", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if tt.err {
			if !errors.Is(err, core.ErrUnknownManager) {
				t.Errorf("ParseID(%q) error = %v, want ErrUnknownManager", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseID(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestBackendBinaries(t *testing.T) {
	want := map[ID]string{
		Brew: "brew", Choco: "choco", Apt: "apt", Dnf: "dnf", Yum: "yum", Zypper: "zypper",
		Flatpak: "flatpak", Nix: "nix-env", Pacman: "pacman", Apk: "apk", Winget: "winget",
	}
	for _, id := range All {
		if !id.Valid() {
			t.Errorf("%s not valid", id)
		}
		if got := id.Binary(); got != want[id] {
			t.Errorf("%s.Binary() = %q, want %q", id, got, want[id])
		}
	}
	if ID("portage").Valid() {
		t.Error("unknown id reported valid")
	}
}

func TestPackageArgs(t *testing.T) {
	pkgs := []core.Package{core.NewPackage("git", "2.43.0"), core.NewPackage("curl", "")}
	got := PackageArgs(Apt, pkgs)
	want := []string{"git=2.43.0", "curl"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PackageArgs() = %q, want %q", got, want)
	}
}

func TestPURL(t *testing.T) {
	tests := []struct {
		id   ID
		pkg  core.Package
		want string
	}{
		{Brew, core.NewPackage("jq", "1.7.1"), "pkg:brew/jq@1.7.1"},
		{Dnf, core.NewPackage("bash", ""), "pkg:rpm/bash"},
		{Apk, core.NewPackage("curl", "8.5.0-r0"), "pkg:apk/curl@8.5.0-r0"},
	}
	for _, tt := range tests {
		if got := PURL(tt.id, tt.pkg); got != tt.want {
			t.Errorf("PURL(%s, %v) = %q, want %q", tt.id, tt.pkg, got, tt.want)
		}
	}
}

func TestRepoPreparer(t *testing.T) {
	if _, ok := Dnf.Backend().(RepoPreparer); !ok {
		t.Error("dnf backend should prepare repositories")
	}
	if _, ok := Brew.Backend().(RepoPreparer); ok {
		t.Error("brew backend should not prepare repositories")
	}
}

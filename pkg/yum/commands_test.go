package yum

import (
	"reflect"
	"testing"

	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/dnf"
)

func TestCommands_FollowDNF(t *testing.T) {
	yum, dnfTable := Manager{}.Commands(), dnf.Manager{}.Commands()
	for _, cmd := range core.AllCmds {
		if cmd == core.CmdUpdateAll {
			continue
		}
		if !reflect.DeepEqual(yum[cmd], dnfTable[cmd]) {
			t.Errorf("%s: yum row %+v differs from dnf row %+v", cmd, yum[cmd], dnfTable[cmd])
		}
	}
}

func TestCommands_IndependentOfDNF(t *testing.T) {
	dnfTable := dnf.Manager{}.Commands()
	dnfTable[core.CmdInstall].Flags[0] = "--assumeno"
	dnfTable[core.CmdUninstall] = core.Row{Tokens: []string{"install"}}

	row, err := Manager{}.Commands().Lookup(core.CmdInstall)
	if err != nil || !reflect.DeepEqual(row.Flags, []string{"-y"}) {
		t.Errorf("yum install row = %+v, %v", row, err)
	}
	row, err = dnf.Manager{}.Commands().Lookup(core.CmdUninstall)
	if err != nil || !reflect.DeepEqual(row.Tokens, []string{"remove"}) {
		t.Errorf("dnf uninstall row = %+v, %v", row, err)
	}
}

func TestCommands_UpdateAll(t *testing.T) {
	row, err := Manager{}.Commands().Lookup(core.CmdUpdateAll)
	if err != nil {
		t.Fatalf("Lookup(UpdateAll) error = %v", err)
	}
	if !reflect.DeepEqual(row.Tokens, []string{"update"}) || !reflect.DeepEqual(row.Flags, []string{"-y"}) {
		t.Errorf("UpdateAll row = %+v", row)
	}
}

func TestParseList(t *testing.T) {
	out := []byte("Installed Packages\nyum.noarch    3.4.3-168.el7.centos    @anaconda\n")
	got := Manager{}.ParseList(out).Collect()
	want := []core.Package{core.NewPackage("yum", "3.4.3-168.el7.centos")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseList() = %v, want %v", got, want)
	}
}

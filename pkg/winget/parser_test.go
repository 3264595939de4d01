package winget

import (
	"reflect"
	"testing"

	"github.com/arc-language/mpkg/pkg/core"
)

func TestParse_List(t *testing.T) {
	out := []byte("   - \r   \\ \r" +
		"Name                 Id                        Version        Available Source\r\n" +
		"-------------------------------------------------------------------------------\r\n" +
		"Git                  Git.Git                   2.43.0                   winget\r\n" +
		"Microsoft Edge       Microsoft.Edge            120.0.2210.91  121.0.1   winget\r\n" +
		"Visual C++ 2015 x64  ARP\\Machine\\X64\\{d992c1}  14.0.24215.1\r\n" +
		"2 upgrades available.\r\n")

	got := Parse(out).Collect()
	want := []core.Package{
		core.NewPackage("Git.Git", "2.43.0"),
		core.NewPackage("Microsoft.Edge", "120.0.2210.91"),
		core.NewPackage(`ARP\Machine\X64\{d992c1}`, "14.0.24215.1"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_WideNames(t *testing.T) {
	// 微信 occupies four display cells but six bytes
	out := []byte("Name    Id             Version Match Source\n" +
		"-------------------------------------------\n" +
		"微信    Tencent.WeChat 3.9.8   Tag:  winget\n")

	got := Parse(out).Collect()
	want := []core.Package{core.NewPackage("Tencent.WeChat", "3.9.8")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_NoHeader(t *testing.T) {
	out := []byte("No installed package found matching input criteria.\n")
	if got := Parse(out).Collect(); len(got) != 0 {
		t.Errorf("Parse() = %v, want nothing", got)
	}
}

func TestParse_Idempotent(t *testing.T) {
	out := []byte("Name Id      Version\n--------------------\nGit  Git.Git 2.43.0\n")
	a, b := Parse(out).Collect(), Parse(out).Collect()
	if len(a) != 1 || !reflect.DeepEqual(a, b) {
		t.Errorf("parsing twice: %v vs %v", a, b)
	}
}

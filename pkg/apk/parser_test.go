package apk

import (
	"reflect"
	"testing"

	"github.com/arc-language/mpkg/pkg/core"
)

func TestSplitPackageID(t *testing.T) {
	tests := []struct {
		in            string
		name, version string
		ok            bool
	}{
		{"busybox-1.36.1-r15", "busybox", "1.36.1-r15", true},
		{"py3-requests-2.31.0-r1", "py3-requests", "2.31.0-r1", true},
		{"musl-1.2.4_git20230717-r4", "musl", "1.2.4_git20230717-r4", true},
		{"busybox", "", "", false},
		{"busybox-1.36.1", "", "", false},
		{"-1.0-r0", "", "", false},
	}
	for _, tt := range tests {
		name, version, ok := SplitPackageID(tt.in)
		if name != tt.name || version != tt.version || ok != tt.ok {
			t.Errorf("SplitPackageID(%q) = %q, %q, %v", tt.in, name, version, ok)
		}
	}
}

func TestParse(t *testing.T) {
	out := []byte(`WARNING: opening /var/cache/apk: No such file or directory
busybox-1.36.1-r15 x86_64 {busybox} (GPL-2.0-only) [installed]
curl-8.5.0-r0 x86_64 {curl} (curl) [installed]
py3-requests-2.31.0-r1 - HTTP request library for Python
`)

	got := Parse(out).Collect()
	want := []core.Package{
		core.NewPackage("busybox", "1.36.1-r15"),
		core.NewPackage("curl", "8.5.0-r0"),
		core.NewPackage("py3-requests", "2.31.0-r1"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_Idempotent(t *testing.T) {
	out := []byte("curl-8.5.0-r0 x86_64\nnoise\n")
	if a, b := Parse(out).Collect(), Parse(out).Collect(); !reflect.DeepEqual(a, b) {
		t.Errorf("parsing twice differs: %v vs %v", a, b)
	}
}

// pkg/nix/parser.go
package nix

import (
	"strings"

	nixstore "zombiezen.com/go/nix"

	"github.com/arc-language/mpkg/pkg/core"
)

// ParseList reads `nix-env -q --installed --out-path`:
//
//	hello-2.12.1  /nix/store/<digest>-hello-2.12.1
//
// Lines whose output path is not a valid store path are skipped.
func ParseList(out []byte) *core.PackageIter {
	return core.ParseLines(out, func(line string) (core.Package, bool) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return core.Package{}, false
		}
		// Multiple outputs are rendered as out=/nix/store/...;dev=/nix/store/...
		path := fields[1]
		if i := strings.IndexByte(path, ';'); i >= 0 {
			path = path[:i]
		}
		if _, p, ok := strings.Cut(path, "="); ok {
			path = p
		}
		if _, err := nixstore.ParseStorePath(path); err != nil {
			return core.Package{}, false
		}
		name, version := SplitDrvName(fields[0])
		return core.NewPackage(name, version), true
	})
}

// ParseSearch reads `nix-env -qaP`, which prints the attribute path and the
// derivation name. The attribute path is what -iA expects, so it becomes
// the package name.
func ParseSearch(out []byte) *core.PackageIter {
	return core.ParseLines(out, func(line string) (core.Package, bool) {
		fields := strings.Fields(line)
		if len(fields) != 2 || strings.HasPrefix(fields[0], "error:") {
			return core.Package{}, false
		}
		_, version := SplitDrvName(fields[1])
		return core.NewPackage(fields[0], version), true
	})
}

// SplitDrvName splits a derivation name the way builtins.parseDrvName does:
// the version starts at the first dash followed by a non-letter.
func SplitDrvName(s string) (name, version string) {
	for i := 0; i < len(s)-1; i++ {
		if s[i] != '-' {
			continue
		}
		c := s[i+1]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

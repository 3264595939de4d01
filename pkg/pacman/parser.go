// pkg/pacman/parser.go
package pacman

import (
	"strings"

	"github.com/arc-language/mpkg/pkg/core"
)

// ParseList reads `pacman -Q`: one "name version" pair per line
func ParseList(out []byte) *core.PackageIter {
	return core.ParseLines(out, func(line string) (core.Package, bool) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return core.Package{}, false
		}
		return core.NewPackage(fields[0], fields[1]), true
	})
}

// ParseSearch reads `pacman -Ss`:
//
//	core/linux 6.7.arch3-1 [installed]
//	    The Linux kernel and modules
//
// The repository prefix is dropped and description lines are skipped.
func ParseSearch(out []byte) *core.PackageIter {
	return core.ParseRawLines(out, func(line string) (core.Package, bool) {
		if line[0] == ' ' || line[0] == '\t' {
			return core.Package{}, false
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return core.Package{}, false
		}
		repo, name, ok := strings.Cut(fields[0], "/")
		if !ok || repo == "" || name == "" {
			return core.Package{}, false
		}
		return core.NewPackage(name, fields[1]), true
	})
}

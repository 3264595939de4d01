// pkg/brew/parser.go
package brew

import (
	"strings"

	"github.com/arc-language/mpkg/pkg/core"
)

// ParseList parses `brew list --versions`. Each line is a name followed by
// every installed version; the last one is the linked version.
func ParseList(out []byte) *core.PackageIter {
	return core.ParseLines(out, func(line string) (core.Package, bool) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return core.Package{}, false
		}
		return core.NewPackage(fields[0], fields[len(fields)-1]), true
	})
}

// ParseSearch parses `brew search`, which prints bare names grouped under
// "==> Formulae" and "==> Casks" headers
func ParseSearch(out []byte) *core.PackageIter {
	return core.ParseLines(out, func(line string) (core.Package, bool) {
		if strings.HasPrefix(line, "==>") {
			return core.Package{}, false
		}
		fields := strings.Fields(line)
		// Installed entries carry a trailing check mark
		if len(fields) == 0 || len(fields) > 2 {
			return core.Package{}, false
		}
		if len(fields) == 2 && fields[1] != "✔" {
			return core.Package{}, false
		}
		return core.NewPackage(fields[0], ""), true
	})
}

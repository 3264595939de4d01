// pkg/choco/parser.go
package choco

import (
	"strings"

	"github.com/arc-language/mpkg/pkg/core"
)

// Parse reads the limited output (-r) of list and search: one name|version
// pair per line. Banner and summary lines have no pipe and are skipped.
func Parse(out []byte) *core.PackageIter {
	return core.ParseLines(out, parseLine)
}

func parseLine(line string) (core.Package, bool) {
	name, version, ok := strings.Cut(line, "|")
	if !ok {
		return core.Package{}, false
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return core.Package{}, false
	}
	// Extra columns (e.g. upgrade listings) follow the version
	version, _, _ = strings.Cut(version, "|")
	return core.NewPackage(name, strings.TrimSpace(version)), true
}

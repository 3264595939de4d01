// pkg/apt/parser.go
package apt

import (
	"strings"

	"github.com/arc-language/mpkg/pkg/core"
)

// Parse reads apt list and apt search output:
//
//	git/jammy-updates,now 1:2.34.1-1ubuntu1.10 amd64 [installed]
//	  fast, scalable, distributed revision control system
//
// Description lines are indented and skipped, as are the
// "Listing..." and "Sorting..." progress lines.
func Parse(out []byte) *core.PackageIter {
	return core.ParseRawLines(out, parseLine)
}

func parseLine(line string) (core.Package, bool) {
	if line[0] == ' ' || line[0] == '\t' {
		return core.Package{}, false
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return core.Package{}, false
	}
	name, suites, ok := strings.Cut(fields[0], "/")
	if !ok || name == "" || suites == "" {
		return core.Package{}, false
	}
	return core.NewPackage(name, fields[1]), true
}

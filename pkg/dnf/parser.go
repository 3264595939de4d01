// pkg/dnf/parser.go
package dnf

import (
	"strings"

	"github.com/arc-language/mpkg/pkg/core"
)

// ParseList reads `dnf list --installed -q`:
//
//	Installed Packages
//	bash.x86_64        5.2.15-3.fc38      @anaconda
//
// Names too long for the first column are wrapped, with the version
// and repository on the following indented line.
func ParseList(out []byte) *core.PackageIter {
	var pending string
	return core.ParseRawLines(out, func(line string) (core.Package, bool) {
		fields := strings.Fields(line)
		indented := line[0] == ' ' || line[0] == '\t'

		if indented && pending != "" && len(fields) >= 1 {
			name := pending
			pending = ""
			return core.NewPackage(name, fields[0]), true
		}
		pending = ""

		switch {
		case indented:
			return core.Package{}, false
		case len(fields) == 1:
			if name, ok := stripArch(fields[0]); ok {
				pending = name
			}
			return core.Package{}, false
		case len(fields) < 3:
			return core.Package{}, false
		}

		name, ok := stripArch(fields[0])
		if !ok {
			return core.Package{}, false
		}
		return core.NewPackage(name, fields[1]), true
	})
}

// ParseSearch reads `dnf search -q`, which prints "name.arch : summary"
// lines under "====" banners. Search results carry no version.
func ParseSearch(out []byte) *core.PackageIter {
	return core.ParseLines(out, func(line string) (core.Package, bool) {
		if strings.HasPrefix(line, "=") {
			return core.Package{}, false
		}
		head, _, ok := strings.Cut(line, " : ")
		if !ok {
			return core.Package{}, false
		}
		name, ok := stripArch(strings.TrimSpace(head))
		if !ok {
			return core.Package{}, false
		}
		return core.NewPackage(name, ""), true
	})
}

// stripArch splits "name.arch" and returns name
func stripArch(s string) (string, bool) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 || strings.ContainsAny(s, " :") {
		return "", false
	}
	return s[:i], true
}

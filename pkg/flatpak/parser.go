// pkg/flatpak/parser.go
package flatpak

import (
	"strings"

	"github.com/arc-language/mpkg/pkg/core"
)

// Parse reads tab-separated flatpak output. The column layout is
// recognised by its width:
//
//	2 columns: application, version (list --columns=application,version)
//	4 or 5:    name, application, version, ... (search without description)
//	6:         name, description, application, version, branch, remotes
func Parse(out []byte) *core.PackageIter {
	return core.ParseLines(out, parseLine)
}

func parseLine(line string) (core.Package, bool) {
	cols := strings.Split(line, "\t")

	var id, version string
	switch len(cols) {
	case 1:
		id = cols[0]
	case 2:
		id, version = cols[0], cols[1]
	case 4, 5:
		id, version = cols[1], cols[2]
	case 6:
		id, version = cols[2], cols[3]
	default:
		return core.Package{}, false
	}

	id = strings.TrimSpace(id)
	if !isAppID(id) {
		return core.Package{}, false
	}
	return core.NewPackage(id, strings.TrimSpace(version)), true
}

// isAppID reports whether s looks like a reverse-DNS application id
func isAppID(s string) bool {
	if strings.ContainsAny(s, " /") {
		return false
	}
	parts := strings.Split(s, ".")
	if len(parts) < 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

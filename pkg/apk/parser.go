// pkg/apk/parser.go
package apk

import (
	"strings"

	"github.com/arc-language/mpkg/pkg/core"
)

// Parse reads apk list and apk search -v output. Both start each line with
// name-version-rN:
//
//	busybox-1.36.1-r15 x86_64 {busybox} (GPL-2.0-only) [installed]
//	busybox-1.36.1-r15 - Size optimized toolbox of many common UNIX utilities
func Parse(out []byte) *core.PackageIter {
	return core.ParseLines(out, func(line string) (core.Package, bool) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return core.Package{}, false
		}
		name, version, ok := SplitPackageID(fields[0])
		if !ok {
			return core.Package{}, false
		}
		return core.NewPackage(name, version), true
	})
}

// SplitPackageID splits name-version-rN into name and version-rN
func SplitPackageID(s string) (name, version string, ok bool) {
	rel := strings.LastIndexByte(s, '-')
	if rel <= 0 || !isRelease(s[rel+1:]) {
		return "", "", false
	}
	ver := strings.LastIndexByte(s[:rel], '-')
	if ver <= 0 || ver+1 == rel {
		return "", "", false
	}
	return s[:ver], s[ver+1:], true
}

// isRelease matches the package release suffix "r<digits>"
func isRelease(s string) bool {
	if len(s) < 2 || s[0] != 'r' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

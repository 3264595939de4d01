// pkg/zypper/parser.go
package zypper

import (
	"bytes"
	"encoding/xml"

	"github.com/arc-language/mpkg/pkg/core"
)

// Solvable is one entry of a search result solvable-list
type Solvable struct {
	Name    string `xml:"name,attr"`
	Edition string `xml:"edition,attr"`
	Kind    string `xml:"kind,attr"`
	Status  string `xml:"status,attr"`
	Summary string `xml:"summary,attr"`
}

// Parse streams the solvables out of `zypper --xmlout search` output.
// Only package solvables are returned. Decoding stops at the first
// syntax error, keeping the packages read so far.
func Parse(out []byte) *core.PackageIter {
	decoder := xml.NewDecoder(bytes.NewReader(out))

	return core.NewPackageIter(func() (core.Package, bool) {
		for {
			t, err := decoder.Token()
			if t == nil || err != nil {
				return core.Package{}, false
			}

			se, ok := t.(xml.StartElement)
			if !ok || se.Name.Local != "solvable" {
				continue
			}

			var s Solvable
			if err := decoder.DecodeElement(&s, &se); err != nil {
				continue
			}
			if s.Name == "" || (s.Kind != "" && s.Kind != "package") {
				continue
			}
			return core.NewPackage(s.Name, s.Edition), true
		}
	})
}

// ParseInstalled reads `zypper --xmlout search -i -s` output. With -s
// every installed edition is listed once per repository carrying it, so
// entries are de-duplicated on name and edition.
func ParseInstalled(out []byte) *core.PackageIter {
	all := Parse(out)
	seen := make(map[core.Package]bool)

	return core.NewPackageIter(func() (core.Package, bool) {
		for all.Next() {
			p := all.Package()
			if seen[p] {
				continue
			}
			seen[p] = true
			return p, true
		}
		return core.Package{}, false
	})
}

// pkg/winget/parser.go
package winget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arc-language/mpkg/pkg/core"
)

// Parse reads winget's column-aligned tables (list, search, upgrade):
//
//	Name           Id             Version   Available Source
//	--------------------------------------------------------
//	Git            Git.Git        2.43.0              winget
//
// Columns are located from the header by display width, so names with
// wide characters do not shift the Id and Version columns. Progress
// spinner output preceding a carriage return is dropped.
func Parse(out []byte) *core.PackageIter {
	var cols *columns
	return core.ParseRawLines(out, func(line string) (core.Package, bool) {
		if i := strings.LastIndexByte(line, '\r'); i >= 0 {
			line = line[i+1:]
		}
		if c, ok := parseHeader(line); ok {
			cols = c
			return core.Package{}, false
		}
		if cols == nil || isSeparator(line) {
			return core.Package{}, false
		}

		id := strings.TrimSpace(cellRange(line, cols.id, cols.version))
		version := strings.TrimSpace(cellRange(line, cols.version, cols.next))
		if id == "" || strings.ContainsAny(id, " \t") {
			return core.Package{}, false
		}
		return core.NewPackage(id, version), true
	})
}

// columns holds display-cell offsets taken from the header line.
// next is the start of the column after Version, or -1 at end of line.
type columns struct {
	id, version, next int
}

func parseHeader(line string) (*columns, bool) {
	starts := make(map[string]int)
	var order []string

	cell := 0
	inWord := false
	var word strings.Builder
	wordStart := 0
	flush := func() {
		if word.Len() > 0 {
			starts[word.String()] = wordStart
			order = append(order, word.String())
			word.Reset()
		}
	}
	for _, r := range line {
		if r == ' ' || r == '\t' {
			if inWord {
				flush()
				inWord = false
			}
		} else {
			if !inWord {
				wordStart = cell
				inWord = true
			}
			word.WriteRune(r)
		}
		cell += runewidth.RuneWidth(r)
	}
	flush()

	id, okID := starts["Id"]
	version, okVersion := starts["Version"]
	if !okID || !okVersion || version <= id {
		return nil, false
	}

	c := &columns{id: id, version: version, next: -1}
	for i, w := range order {
		if w == "Version" && i+1 < len(order) {
			c.next = starts[order[i+1]]
		}
	}
	return c, true
}

func isSeparator(line string) bool {
	s := strings.TrimSpace(line)
	return s != "" && strings.Trim(s, "-") == ""
}

// cellRange returns the part of line between display cells from and to;
// to < 0 means end of line
func cellRange(line string, from, to int) string {
	var b strings.Builder
	cell := 0
	for _, r := range line {
		if to >= 0 && cell >= to {
			break
		}
		if cell >= from {
			b.WriteRune(r)
		}
		cell += runewidth.RuneWidth(r)
	}
	return b.String()
}

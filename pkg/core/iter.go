// pkg/core/iter.go
package core

import (
	"bufio"
	"bytes"
	"iter"
	"strings"
)

// LineParser turns one trimmed, non-empty output line into a package.
// It returns false for lines that are not package entries or are malformed.
type LineParser func(line string) (Package, bool)

// PackageIter is a finite, one-shot sequence of packages parsed from
// captured manager output. Once exhausted it stays exhausted.
type PackageIter struct {
	next func() (Package, bool)
	cur  Package
	done bool
}

// NewPackageIter wraps a pull function; next returns false when exhausted
func NewPackageIter(next func() (Package, bool)) *PackageIter {
	return &PackageIter{next: next}
}

// ParseLines lazily applies parse to every non-blank line of out.
// Lines the parser rejects are skipped.
func ParseLines(out []byte, parse LineParser) *PackageIter {
	return scanLines(out, strings.TrimSpace, parse)
}

// ParseRawLines is ParseLines for column or indentation sensitive formats:
// only trailing whitespace is removed before parse sees the line.
func ParseRawLines(out []byte, parse LineParser) *PackageIter {
	return scanLines(out, func(s string) string {
		return strings.TrimRight(s, " \t\r")
	}, parse)
}

func scanLines(out []byte, trim func(string) string, parse LineParser) *PackageIter {
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return NewPackageIter(func() (Package, bool) {
		for sc.Scan() {
			line := trim(sc.Text())
			if strings.TrimSpace(line) == "" {
				continue
			}
			if pkg, ok := parse(line); ok && pkg.Name() != "" {
				return pkg, true
			}
		}
		return Package{}, false
	})
}

// PackagesOf returns an iterator over an already materialized slice
func PackagesOf(pkgs []Package) *PackageIter {
	i := 0
	return NewPackageIter(func() (Package, bool) {
		if i >= len(pkgs) {
			return Package{}, false
		}
		p := pkgs[i]
		i++
		return p, true
	})
}

// Next advances to the next package
func (it *PackageIter) Next() bool {
	if it == nil || it.done {
		return false
	}
	p, ok := it.next()
	if !ok {
		it.done = true
		it.cur = Package{}
		return false
	}
	it.cur = p
	return true
}

// Package returns the current package after a successful Next
func (it *PackageIter) Package() Package {
	return it.cur
}

// All adapts the iterator for range-over-func. It consumes the iterator.
func (it *PackageIter) All() iter.Seq[Package] {
	return func(yield func(Package) bool) {
		for it.Next() {
			if !yield(it.Package()) {
				return
			}
		}
	}
}

// Collect drains the remaining packages into a slice
func (it *PackageIter) Collect() []Package {
	var pkgs []Package
	for it.Next() {
		pkgs = append(pkgs, it.Package())
	}
	return pkgs
}

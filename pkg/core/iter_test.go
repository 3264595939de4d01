package core

import (
	"reflect"
	"strings"
	"testing"
)

func splitParser(line string) (Package, bool) {
	name, version, ok := strings.Cut(line, " ")
	if !ok {
		return Package{}, false
	}
	return NewPackage(name, version), true
}

func TestParseLines(t *testing.T) {
	out := []byte("git 2.43.0\n\n  garbage\ncurl 8.5.0\r\n")

	it := ParseLines(out, splitParser)
	got := it.Collect()
	want := []Package{NewPackage("git", "2.43.0"), NewPackage("curl", "8.5.0")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}

	// one-shot
	if it.Next() {
		t.Errorf("exhausted iterator yielded %v", it.Package())
	}
}

func TestParseRawLines_KeepsIndentation(t *testing.T) {
	out := []byte("git 2.43.0\n  indented description\n")

	var seen []string
	got := ParseRawLines(out, func(line string) (Package, bool) {
		seen = append(seen, line)
		if strings.HasPrefix(line, " ") {
			return Package{}, false
		}
		return splitParser(line)
	}).Collect()

	if len(got) != 1 || got[0].Name() != "git" {
		t.Fatalf("Collect() = %v", got)
	}
	if len(seen) != 2 || seen[1] != "  indented description" {
		t.Errorf("parser saw %q", seen)
	}
}

func TestPackageIter_All(t *testing.T) {
	it := PackagesOf([]Package{NewPackage("a", ""), NewPackage("b", ""), NewPackage("c", "")})

	var names []string
	for p := range it.All() {
		names = append(names, p.Name())
		if p.Name() == "b" {
			break
		}
	}
	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Errorf("names = %v", names)
	}

	// the remaining element is still pending
	rest := it.Collect()
	if len(rest) != 1 || rest[0].Name() != "c" {
		t.Errorf("rest = %v", rest)
	}
}

func TestPackageIter_Nil(t *testing.T) {
	var it *PackageIter
	if it.Next() {
		t.Errorf("nil iterator advanced")
	}
}

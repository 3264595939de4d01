// pkg/core/package.go
package core

import (
	"encoding/json"
	"strings"
)

// VersionSeparator separates name and version in the "name@version" form
const VersionSeparator = "@"

// Package represents a universal package across all managers.
// The zero value is not a valid package; use NewPackage or ParsePackage.
type Package struct {
	name    string
	version string
}

// NewPackage creates a package from a name and an optional version ("" for none)
func NewPackage(name, version string) Package {
	return Package{name: name, version: version}
}

// ParsePackage parses "name" or "name@version".
//
// "pkg@", "@1.0", "a@b@c" and names or versions containing whitespace are
// rejected with a *ParseError.
func ParsePackage(s string) (Package, error) {
	if s == "" {
		return Package{}, &ParseError{Input: s, Reason: "empty package name"}
	}

	name, version, found := strings.Cut(s, VersionSeparator)
	switch {
	case name == "":
		return Package{}, &ParseError{Input: s, Reason: "missing name before '@'"}
	case found && version == "":
		return Package{}, &ParseError{Input: s, Reason: "missing version after '@'"}
	case strings.Contains(version, VersionSeparator):
		return Package{}, &ParseError{Input: s, Reason: "more than one '@' separator"}
	case strings.ContainsAny(s, " \t\r\n"):
		return Package{}, &ParseError{Input: s, Reason: "whitespace in package spec"}
	}

	return Package{name: name, version: version}, nil
}

// ParsePackages parses every spec, stopping at the first error
func ParsePackages(specs []string) ([]Package, error) {
	pkgs := make([]Package, 0, len(specs))
	for _, s := range specs {
		p, err := ParsePackage(s)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}

// Name returns the manager-local package identifier
func (p Package) Name() string {
	return p.name
}

// Version returns the version, or "" if none was given
func (p Package) Version() string {
	return p.version
}

// HasVersion reports whether the package carries a version
func (p Package) HasVersion() bool {
	return p.version != ""
}

// IsZero reports whether p is the zero Package
func (p Package) IsZero() bool {
	return p.name == "" && p.version == ""
}

// String renders the package in the "name@version" form
func (p Package) String() string {
	if p.version == "" {
		return p.name
	}
	return p.name + VersionSeparator + p.version
}

type packageJSON struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// MarshalJSON encodes the package as {"name": ..., "version": ...}
func (p Package) MarshalJSON() ([]byte, error) {
	return json.Marshal(packageJSON{Name: p.name, Version: p.version})
}

// UnmarshalJSON decodes the object form produced by MarshalJSON
func (p *Package) UnmarshalJSON(data []byte) error {
	var v packageJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Name == "" {
		return &ParseError{Input: string(data), Reason: "missing name"}
	}
	*p = Package{name: v.Name, version: v.Version}
	return nil
}

// pkg/platform/osrelease.go
package platform

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/arc-language/mpkg/pkg/manager"
)

// DefaultOSReleasePath is the freedesktop os-release location
const DefaultOSReleasePath = "/etc/os-release"

// OSRelease holds the identifying fields of os-release(5)
type OSRelease struct {
	ID        string   // e.g. "ubuntu"
	IDLike    []string // e.g. ["debian"]
	Name      string
	VersionID string
}

// ReadOSRelease reads and parses an os-release file
func ReadOSRelease(path string) (*OSRelease, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading os-release: %w", err)
	}
	return ParseOSRelease(data), nil
}

// ParseOSRelease parses KEY=value lines; values may be quoted
func ParseOSRelease(data []byte) *OSRelease {
	rel := &OSRelease{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if unquoted, err := strconv.Unquote(value); err == nil {
			value = unquoted
		} else {
			value = strings.Trim(value, `'"`)
		}

		switch key {
		case "ID":
			rel.ID = strings.ToLower(value)
		case "ID_LIKE":
			rel.IDLike = strings.Fields(strings.ToLower(value))
		case "NAME":
			rel.Name = value
		case "VERSION_ID":
			rel.VersionID = value
		}
	}
	return rel
}

// Is reports whether the distribution is id or derives from it
func (r *OSRelease) Is(id string) bool {
	return r.ID == id || slices.Contains(r.IDLike, id)
}

// NativeManagers returns the distribution's own managers, preferred first
func (r *OSRelease) NativeManagers() []manager.ID {
	switch {
	case r.Is("alpine"):
		return []manager.ID{manager.Apk}
	case r.Is("fedora"), r.Is("rhel"), r.Is("centos"):
		return []manager.ID{manager.Dnf, manager.Yum}
	case r.Is("arch"), r.Is("manjaro"):
		return []manager.ID{manager.Pacman}
	case r.Is("suse"), r.Is("opensuse"), r.Is("sles"), strings.HasPrefix(r.ID, "opensuse"):
		return []manager.ID{manager.Zypper}
	case r.Is("debian"), r.Is("ubuntu"):
		return []manager.ID{manager.Apt}
	case r.Is("nixos"):
		return []manager.ID{manager.Nix}
	}
	return nil
}

// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/manager"
)

// ErrNotFound indicates a canonical name with no alias entry
var ErrNotFound = errors.New("registry: package not found")

// Entry represents a single <name>/index.toml file
type Entry struct {
	Name        string            `toml:"name"`
	Description string            `toml:"description,omitempty"`
	Backends    map[string]string `toml:"backends"`
}

// Registry maps canonical package names to per-manager names, e.g.
//
//	# sqlite3/index.toml
//	name = "sqlite3"
//	[backends]
//	apt = "libsqlite3-dev"
//	brew = "sqlite"
type Registry struct {
	dir string
}

// New creates a Registry rooted at dir
func New(dir string) *Registry {
	return &Registry{dir: dir}
}

// Dir returns the registry root
func (r *Registry) Dir() string {
	return r.dir
}

// Resolve takes a canonical package name and a manager,
// returns the manager-specific package name.
// e.g. Resolve("sqlite3", manager.Apt) -> "libsqlite3-dev"
func (r *Registry) Resolve(name string, id manager.ID) (string, error) {
	entry, err := r.Load(name)
	if err != nil {
		return "", err
	}

	pkgName, ok := entry.Backends[string(id)]
	if !ok || pkgName == "" {
		return "", fmt.Errorf("%w: '%s' has no entry for %s", ErrNotFound, name, id)
	}

	return pkgName, nil
}

// ResolvePackage renames pkg for id, keeping its version. Names without
// an alias are returned unchanged.
func (r *Registry) ResolvePackage(pkg core.Package, id manager.ID) core.Package {
	if r == nil || r.dir == "" {
		return pkg
	}
	name, err := r.Resolve(pkg.Name(), id)
	if err != nil {
		return pkg
	}
	return core.NewPackage(name, pkg.Version())
}

// Load reads and parses <dir>/<name>/index.toml
func (r *Registry) Load(name string) (*Entry, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("%w: invalid name %q", ErrNotFound, name)
	}

	path := filepath.Join(r.dir, name, "index.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: '%s'", ErrNotFound, name)
		}
		return nil, fmt.Errorf("registry: reading '%s': %w", name, err)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}
	if entry.Name == "" {
		entry.Name = name
	}

	return &entry, nil
}

// Save writes entry to <dir>/<entry.Name>/index.toml
func (r *Registry) Save(entry *Entry) error {
	if entry == nil || entry.Name == "" || strings.ContainsAny(entry.Name, `/\`) {
		return fmt.Errorf("registry: entry needs a plain name")
	}

	dir := filepath.Join(r.dir, entry.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("registry: creating '%s': %w", dir, err)
	}

	f, err := os.Create(filepath.Join(dir, "index.toml"))
	if err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(entry); err != nil {
		f.Close()
		return fmt.Errorf("registry: encoding '%s': %w", entry.Name, err)
	}
	// Buffered writes can surface their error only here.
	if err := f.Close(); err != nil {
		return fmt.Errorf("registry: closing '%s': %w", f.Name(), err)
	}
	return nil
}

// pkg/platform/detect.go
package platform

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/arc-language/mpkg/pkg/executor"
	"github.com/arc-language/mpkg/pkg/manager"
	"github.com/arc-language/mpkg/pkg/verify"
)

// Platform represents the detected system platform
type Platform struct {
	OS        string       // linux, darwin, windows
	Arch      string       // amd64, arm64, 386, arm
	Distro    *OSRelease   // nil off Linux or when os-release is unreadable
	Available []manager.ID // Verified managers, most preferred first
	Preferred manager.ID   // First available, "" when none

	tokens map[manager.ID]*verify.Verified
}

// Detector inspects the host for package managers
type Detector struct {
	GOOS      string
	Arch      string
	OSRelease string // path to os-release
	Runner    executor.Runner
	Logger    *log.Logger
}

// NewDetector creates a detector for the running host
func NewDetector(runner executor.Runner, logger *log.Logger) *Detector {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Detector{
		GOOS:      runtime.GOOS,
		Arch:      runtime.GOARCH,
		OSRelease: DefaultOSReleasePath,
		Runner:    runner,
		Logger:    logger,
	}
}

// Detect detects the current platform and available package managers
func Detect(ctx context.Context) (*Platform, error) {
	return NewDetector(nil, nil).Detect(ctx)
}

// Detect verifies every candidate manager concurrently and orders the
// available ones by platform preference
func (d *Detector) Detect(ctx context.Context) (*Platform, error) {
	p := &Platform{
		OS:   d.GOOS,
		Arch: d.Arch,
	}

	if d.GOOS == "linux" {
		rel, err := ReadOSRelease(d.OSRelease)
		if err != nil {
			d.Logger.Printf("Reading %s: %v", d.OSRelease, err)
		} else {
			p.Distro = rel
		}
	}

	candidates := Candidates(d.GOOS, p.Distro)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("unsupported operating system: %s", d.GOOS)
	}

	verifier := verify.New(d.Runner, d.Logger)
	found := make([]*verify.Verified, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range candidates {
		g.Go(func() error {
			found[i], _ = verifier.Verify(gctx, id)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("detecting package managers: %w", err)
	}

	p.tokens = make(map[manager.ID]*verify.Verified)
	for i, id := range candidates {
		if found[i] != nil {
			p.Available = append(p.Available, id)
			p.tokens[id] = found[i]
		}
	}
	if len(p.Available) > 0 {
		p.Preferred = p.Available[0]
	}

	d.Logger.Printf("Detected %s", p)
	return p, nil
}

// Candidates returns the managers worth probing on goos, most preferred
// first. On Linux the distribution's native manager leads.
func Candidates(goos string, rel *OSRelease) []manager.ID {
	switch goos {
	case "darwin":
		return []manager.ID{manager.Brew, manager.Nix}
	case "windows":
		return []manager.ID{manager.Winget, manager.Choco}
	case "linux":
		generic := []manager.ID{
			manager.Apt, manager.Dnf, manager.Yum, manager.Zypper, manager.Pacman,
			manager.Apk, manager.Nix, manager.Flatpak, manager.Brew,
		}
		var ids []manager.ID
		if rel != nil {
			ids = append(ids, rel.NativeManagers()...)
		}
		for _, id := range generic {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
		return ids
	case "freebsd", "openbsd", "netbsd":
		return []manager.ID{manager.Nix, manager.Brew}
	}
	return nil
}

// Has reports whether id was found on the host
func (p *Platform) Has(id manager.ID) bool {
	return slices.Contains(p.Available, id)
}

// Verified returns the token issued while probing id, or nil
func (p *Platform) Verified(id manager.ID) *verify.Verified {
	return p.tokens[id]
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	distro := ""
	if p.Distro != nil {
		distro = " " + p.Distro.ID
	}
	return fmt.Sprintf("%s/%s%s (available: %v, preferred: %s)",
		p.OS, p.Arch, distro, p.Available, p.Preferred)
}

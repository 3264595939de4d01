// pkg/platform/resolver.go
package platform

import (
	"fmt"

	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/manager"
)

// Resolve picks the manager to use.
//
// Priority:
// 1. Explicitly requested manager (flag or config default_manager)
// 2. Platform preferred manager
func Resolve(p *Platform, requested string) (manager.ID, error) {
	if requested != "" {
		id, err := manager.ParseID(requested)
		if err != nil {
			return "", err
		}
		if p != nil && !p.Has(id) {
			return "", fmt.Errorf("%w: %s is not installed on this system", core.ErrManagerNotAvailable, id)
		}
		return id, nil
	}

	if p == nil || p.Preferred == "" {
		return "", fmt.Errorf("%w: no supported package manager found", core.ErrManagerNotAvailable)
	}
	return p.Preferred, nil
}

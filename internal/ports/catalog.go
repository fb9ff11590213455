// Package ports defines the interfaces (contracts) that adapters must implement.
// Domain logic never depends on concrete adapters; the app layer wires them.
package ports

import (
	"github.com/corey/ridecheck/internal/domain/access"
	"github.com/corey/ridecheck/internal/domain/limits"
)

// Catalog is a read-only set of attractions and the profiles they use.
// Implementations are immutable after load and safe for concurrent reads.
type Catalog interface {
	// Lookup finds an attraction by name, ignoring case and surrounding space.
	Lookup(name string) (*access.Attraction, bool)

	// Attractions returns every attraction sorted by name.
	Attractions() []*access.Attraction

	// Profiles returns built-in profiles first, then custom ones by name.
	Profiles() []*limits.Profile
}

// Package registry holds the process-wide chain of custom record
// decoders. Registration appends to the end of the chain; readers take
// a snapshot copy so a conversion in progress never observes a
// partially updated chain.
package registry

import (
	"slices"
	"sync"

	"github.com/zonekit/zoned/internal/zones/domain"
)

// Registry is the guarded, append-only-by-policy list of custom
// decoders. The zero value is not usable; call New.
type Registry struct {
	mu    sync.RWMutex
	chain []domain.RecordDecoder
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register appends one decoder to the end of the chain.
func (r *Registry) Register(d domain.RecordDecoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chain = append(r.chain, d)
}

// RegisterAll appends the given decoders in order, after all prior
// registrations.
func (r *Registry) RegisterAll(ds []domain.RecordDecoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chain = append(r.chain, ds...)
}

// Decoders returns a snapshot copy of the current chain. Later
// registrations do not affect a snapshot already handed out.
func (r *Registry) Decoders() []domain.RecordDecoder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.chain)
}

package infrastructure

import (
	"maps"

	"github.com/sglre6355/rolebot/internal/modules/reaction_role/domain"
)

// snapshot copies the whole mapping under a single read lock.
func snapshot(r *MemoryRegistry) domain.ReactionRoles {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.roles)
}

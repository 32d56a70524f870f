package infrastructure

import (
	"context"
	"maps"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/domain"
)

// MemoryRegistry is an in-memory implementation of ReactionRoleRepository.
// Readers share the lock; Replace holds it exclusively, so a reader sees
// either the previous mapping or the new one in full.
type MemoryRegistry struct {
	mu    sync.RWMutex
	roles domain.ReactionRoles
}

// NewMemoryRegistry creates an empty MemoryRegistry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		roles: make(domain.ReactionRoles),
	}
}

// Replace swaps the stored mapping for a copy of roles.
func (r *MemoryRegistry) Replace(_ context.Context, roles domain.ReactionRoles) error {
	next := maps.Clone(roles)
	if next == nil {
		next = make(domain.ReactionRoles)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.roles = next
	return nil
}

// Lookup returns the role mapped to emoji.
func (r *MemoryRegistry) Lookup(_ context.Context, emoji domain.Emoji) (snowflake.ID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roleID, ok := r.roles[emoji]
	return roleID, ok
}

// Count returns the number of entries (for testing/monitoring).
func (r *MemoryRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.roles)
}

// Ensure MemoryRegistry implements ReactionRoleRepository.
var _ domain.ReactionRoleRepository = (*MemoryRegistry)(nil)

package domain

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// ReactionRoleRepository stores the emoji to role mapping.
type ReactionRoleRepository interface {
	// Replace swaps the whole mapping for roles in one step.
	Replace(ctx context.Context, roles ReactionRoles) error

	// Lookup returns the role mapped to emoji, or false if there is none.
	Lookup(ctx context.Context, emoji Emoji) (snowflake.ID, bool)
}

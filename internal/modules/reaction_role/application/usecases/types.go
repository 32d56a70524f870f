package usecases

import (
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/domain"
)

// Re-export domain types for presentation layer use.

// Emoji is an alias for domain.Emoji.
type Emoji = domain.Emoji

// ReactionRoles is an alias for domain.ReactionRoles.
type ReactionRoles = domain.ReactionRoles

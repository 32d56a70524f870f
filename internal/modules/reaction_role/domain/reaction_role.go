package domain

import (
	"maps"
	"slices"

	"github.com/disgoorg/snowflake/v2"
)

// Emoji is a Unicode emoji as delivered in a reaction event, e.g. "🔥".
// Custom guild emoji are never represented.
type Emoji string

// ReactionRole binds an emoji to the role it grants.
type ReactionRole struct {
	Emoji  Emoji
	RoleID snowflake.ID
}

// ReactionRoles maps each emoji to exactly one role.
type ReactionRoles map[Emoji]snowflake.ID

// Apply inserts an entry for every role named in cfg that exists in roleIDs.
// An emoji already present is overwritten. Role names are visited in sorted
// order so two names sharing one emoji always resolve the same way.
func (r ReactionRoles) Apply(roleIDs map[string]snowflake.ID, cfg AdminConfig) {
	for _, name := range slices.Sorted(maps.Keys(cfg.ReactionRoles)) {
		roleID, ok := roleIDs[name]
		if !ok {
			continue
		}
		r[cfg.ReactionRoles[name]] = roleID
	}
}

// Entries returns the mapping as a slice sorted by emoji.
func (r ReactionRoles) Entries() []ReactionRole {
	entries := make([]ReactionRole, 0, len(r))
	for _, emoji := range slices.Sorted(maps.Keys(r)) {
		entries = append(entries, ReactionRole{Emoji: emoji, RoleID: r[emoji]})
	}
	return entries
}

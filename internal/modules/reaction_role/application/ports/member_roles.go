package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// MemberRoleEditor defines the interface for changing a member's roles.
// Adding a role the member already has, or removing one it lacks, must
// succeed without error.
type MemberRoleEditor interface {
	// Member resolves a user to a guild member.
	Member(ctx context.Context, guildID, userID snowflake.ID) (*Member, error)

	// AddRole grants roleID to the member.
	AddRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error

	// RemoveRole revokes roleID from the member.
	RemoveRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error
}

package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// RoleSource defines the interface for listing a guild's roles.
type RoleSource interface {
	GuildRoles(ctx context.Context, guildID snowflake.ID) ([]Role, error)
}

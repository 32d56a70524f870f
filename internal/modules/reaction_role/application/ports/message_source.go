package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// MessageSource defines the interface for reading channel history.
type MessageSource interface {
	// RecentMessages returns up to limit of the channel's most recent messages,
	// newest first.
	RecentMessages(ctx context.Context, channelID snowflake.ID, limit int) ([]Message, error)
}

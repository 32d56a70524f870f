package reaction_role

import "github.com/disgoorg/snowflake/v2"

// Config holds the reaction role module configuration.
type Config struct {
	// DataChannelID is the channel scanned for admin config messages.
	DataChannelID snowflake.ID `env:"BOT_DATA_CHANNEL,notEmpty"`
	// AdminID is the only author whose messages are read as config.
	AdminID snowflake.ID `env:"ADMIN_ID,notEmpty"`
}

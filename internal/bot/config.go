package bot

import (
	"log/slog"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
)

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	DiscordToken  string       `env:"DISCORD_TOKEN,notEmpty"`
	ApplicationID snowflake.ID `env:"APPLICATION_ID,notEmpty"`
	GuildID       snowflake.ID `env:"GUILD_ID,notEmpty"`
	LogLevel      slog.Level   `env:"LOG_LEVEL"                envDefault:"INFO"`
}

// LoadConfig loads configuration from environment variables.
// Returns an error if required fields are missing or malformed.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseEnv populates v from environment variables.
// Snowflake fields are parsed as Discord ids, so modules should use this
// instead of calling env.Parse directly.
func ParseEnv(v any) error {
	return env.ParseWithOptions(v, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeFor[snowflake.ID](): func(value string) (any, error) {
				return snowflake.Parse(value)
			},
		},
	})
}

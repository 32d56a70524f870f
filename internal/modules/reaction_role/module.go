package reaction_role

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/rolebot/internal/bot"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/application/ports"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/application/usecases"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/infrastructure"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/presentation/discord"
)

func init() {
	bot.Register(&ReactionRoleModule{})
}

// Compile-time interface checks.
var (
	_ bot.ConfigurableModule = (*ReactionRoleModule)(nil)
	_ bot.ReadyModule        = (*ReactionRoleModule)(nil)
)

// gateway is everything the module needs from the chat platform.
type gateway interface {
	ports.MessageSource
	ports.RoleSource
	ports.MemberRoleEditor
}

// ReactionRoleModule grants and revokes roles when members react with mapped emoji.
type ReactionRoleModule struct {
	config        *Config
	guildID       snowflake.ID
	registry      *infrastructure.MemoryRegistry
	populate      *usecases.PopulateService
	eventHandlers *discord.EventHandlers
}

// Name returns the module name.
func (m *ReactionRoleModule) Name() string {
	return "reaction_role"
}

// Commands returns the slash commands for this module.
func (m *ReactionRoleModule) Commands() []*discordgo.ApplicationCommand {
	return nil
}

// CommandHandlers returns the command handlers for this module.
func (m *ReactionRoleModule) CommandHandlers() map[string]bot.InteractionHandler {
	return nil
}

// EventHandlers returns the event handlers for this module.
func (m *ReactionRoleModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		m.eventHandlers.HandleReactionAdd,
		m.eventHandlers.HandleReactionRemove,
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *ReactionRoleModule) LoadConfig() error {
	cfg := &Config{}
	if err := bot.ParseEnv(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *ReactionRoleModule) Init(deps bot.ModuleDependencies) error {
	if deps.Session == nil {
		return errors.New("reaction_role module requires a Discord session")
	}
	if deps.Config == nil {
		return errors.New("reaction_role module requires the bot config")
	}

	return m.init(deps.Config.GuildID, infrastructure.NewDiscordGateway(deps.Session))
}

func (m *ReactionRoleModule) init(guildID snowflake.ID, gw gateway) error {
	if m.config == nil {
		return errors.New("reaction_role module config not loaded")
	}

	m.guildID = guildID
	m.registry = infrastructure.NewMemoryRegistry()
	m.populate = usecases.NewPopulateService(m.registry, gw, gw)

	roles := usecases.NewRoleAssignmentService(m.registry, gw)
	m.eventHandlers = discord.NewEventHandlers(guildID, roles)

	return nil
}

// Ready builds the reaction role mapping from the admin config messages.
func (m *ReactionRoleModule) Ready(ctx context.Context) error {
	output, err := m.populate.Populate(ctx, usecases.PopulateInput{
		GuildID:   m.guildID,
		ChannelID: m.config.DataChannelID,
		AdminID:   m.config.AdminID,
	})
	if err != nil {
		return fmt.Errorf("failed to populate reaction roles: %w", err)
	}

	for _, entry := range output.Roles.Entries() {
		slog.Debug("mapped reaction role", "emoji", entry.Emoji, "role", entry.RoleID)
	}
	slog.Info("populated reaction roles",
		"guild", m.guildID,
		"admin_messages", output.AdminMessages,
		"count", m.registry.Count(),
	)

	return nil
}

// Shutdown cleans up module resources.
func (m *ReactionRoleModule) Shutdown() error {
	return nil
}

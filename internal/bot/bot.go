package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// gatewaySession is the part of the Discord session used once the connection is open.
type gatewaySession interface {
	AddHandler(handler any) func()
	ApplicationCommandBulkOverwrite(
		appID, guildID string,
		commands []*discordgo.ApplicationCommand,
		options ...discordgo.RequestOption,
	) ([]*discordgo.ApplicationCommand, error)
	Close() error
}

var _ gatewaySession = (*discordgo.Session)(nil)

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config   *Config
	session  *discordgo.Session
	modules  []Module
	handlers map[string]InteractionHandler
	fallback InteractionHandler
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:   cfg,
		modules:  make([]Module, 0),
		handlers: make(map[string]InteractionHandler),
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Start initializes the bot, connects to Discord, and registers commands.
func (b *Bot) Start(ctx context.Context) error {
	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessageReactions
	b.session = session

	// Initialize modules
	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	// Build handler map
	if err := b.buildHandlerMap(); err != nil {
		return fmt.Errorf("failed to build handler map: %w", err)
	}

	// Register interaction handler
	b.session.AddHandler(b.handleInteraction)

	// Open connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.finishStartup(ctx, b.session); err != nil {
		return err
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
		"guild", b.config.GuildID,
	)

	return nil
}

// finishStartup runs everything that needs an open gateway connection.
// On failure the session is closed before returning.
func (b *Bot) finishStartup(ctx context.Context, s gatewaySession) error {
	err := b.prepareGateway(ctx, s)
	if err != nil {
		if closeErr := s.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}
	return err
}

func (b *Bot) prepareGateway(ctx context.Context, s gatewaySession) error {
	if err := b.readyModules(ctx); err != nil {
		return fmt.Errorf("failed to prepare modules: %w", err)
	}

	// Module event handlers are attached only once every module is ready.
	b.registerEventHandlers(s)

	if err := b.registerCommands(s); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// initModules loads module configuration and initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Config:  b.config,
		Session: b.session,
	}

	for _, mod := range b.modules {
		if cm, ok := mod.(ConfigurableModule); ok {
			if err := cm.LoadConfig(); err != nil {
				return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
			}
		}
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// readyModules runs the Ready hook of every module that has one.
func (b *Bot) readyModules(ctx context.Context) error {
	for _, mod := range b.modules {
		rm, ok := mod.(ReadyModule)
		if !ok {
			continue
		}
		if err := rm.Ready(ctx); err != nil {
			return fmt.Errorf("%s module: %w", mod.Name(), err)
		}
		slog.Debug("module ready", "module", mod.Name())
	}
	return nil
}

// buildHandlerMap builds the command name to handler mapping.
// Two modules claiming the same command name is a startup error.
func (b *Bot) buildHandlerMap() error {
	owners := make(map[string]string)
	for _, mod := range b.modules {
		for name, handler := range mod.CommandHandlers() {
			if owner, ok := owners[name]; ok {
				return fmt.Errorf("command %s is handled by both %s and %s", name, owner, mod.Name())
			}
			owners[name] = mod.Name()
			b.handlers[name] = handler
		}
		if fm, ok := mod.(FallbackModule); ok && b.fallback == nil {
			b.fallback = fm.FallbackHandler()
		}
	}
	return nil
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers(s gatewaySession) {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			s.AddHandler(handler)
		}
	}
}

// collectCommands gathers all commands from loaded modules.
func (b *Bot) collectCommands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	for _, mod := range b.modules {
		commands = append(commands, mod.Commands()...)
	}
	return commands
}

// registerCommands replaces the guild's command set with the modules' commands.
func (b *Bot) registerCommands(s gatewaySession) error {
	commands := b.collectCommands()

	created, err := s.ApplicationCommandBulkOverwrite(
		b.config.ApplicationID.String(),
		b.config.GuildID.String(),
		commands,
	)
	if err != nil {
		return err
	}

	for _, cmd := range created {
		slog.Debug("registered command", "command", cmd.Name, "id", cmd.ID)
	}
	slog.Info("registered commands", "guild", b.config.GuildID, "count", len(created))

	return nil
}

// handleInteraction routes incoming interactions to the appropriate handler.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	b.dispatch(s, i, NewDiscordResponder(s, i.Interaction))
}

// dispatch runs the handler for the interaction's command. Errors are only
// logged; a failed response is never retried.
func (b *Bot) dispatch(s *discordgo.Session, i *discordgo.InteractionCreate, r Responder) {
	cmdName := i.ApplicationCommandData().Name
	handler, ok := b.handlers[cmdName]
	if !ok {
		if b.fallback == nil {
			slog.Warn("found no handler for command", "command", cmdName)
			return
		}
		handler = b.fallback
	}

	if err := handler(s, i, r); err != nil {
		slog.Error("failed to handle command", "command", cmdName, "error", err)
	}
}

package general

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/rolebot/internal/bot"
	"github.com/sglre6355/rolebot/internal/modules/general/domain"
	"github.com/sglre6355/rolebot/internal/modules/general/presentation"
)

func init() {
	bot.Register(&GeneralModule{})
}

var _ bot.FallbackModule = (*GeneralModule)(nil)

// GeneralModule provides the ping, id and say commands and answers
// interactions no other module handles.
type GeneralModule struct {
	definitions []domain.Definition
	handler     *presentation.CommandHandler
}

// Name returns the module name.
func (m *GeneralModule) Name() string {
	return "general"
}

// Commands returns the slash commands for this module.
func (m *GeneralModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands(m.definitions)
}

// CommandHandlers returns the command handlers for this module.
func (m *GeneralModule) CommandHandlers() map[string]bot.InteractionHandler {
	handlers := make(map[string]bot.InteractionHandler, len(m.definitions))
	for _, def := range m.definitions {
		handlers[def.Name] = m.handler.Handle
	}
	return handlers
}

// FallbackHandler returns the handler for unrecognized commands.
func (m *GeneralModule) FallbackHandler() bot.InteractionHandler {
	return m.handler.Handle
}

// EventHandlers returns the event handlers for this module.
func (m *GeneralModule) EventHandlers() []bot.EventHandler {
	return nil
}

// Init initializes the module.
func (m *GeneralModule) Init(deps bot.ModuleDependencies) error {
	defs := domain.Definitions()
	if err := domain.ValidateDefinitions(defs); err != nil {
		return fmt.Errorf("invalid general commands: %w", err)
	}

	m.definitions = defs
	m.handler = presentation.NewCommandHandler()
	return nil
}

// Shutdown cleans up module resources.
func (m *GeneralModule) Shutdown() error {
	return nil
}

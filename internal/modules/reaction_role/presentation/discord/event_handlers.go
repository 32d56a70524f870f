package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/application/usecases"
)

// EventHandlers handles Discord reaction events for reaction roles.
type EventHandlers struct {
	guildID snowflake.ID
	roles   *usecases.RoleAssignmentService
}

// NewEventHandlers creates a new EventHandlers for a single guild.
func NewEventHandlers(guildID snowflake.ID, roles *usecases.RoleAssignmentService) *EventHandlers {
	return &EventHandlers{
		guildID: guildID,
		roles:   roles,
	}
}

// HandleReactionAdd grants the role mapped to the added reaction.
func (h *EventHandlers) HandleReactionAdd(s *discordgo.Session, event *discordgo.MessageReactionAdd) {
	if event == nil || event.MessageReaction == nil {
		return
	}
	h.handle(s, event.MessageReaction, "add", h.roles.Grant)
}

// HandleReactionRemove revokes the role mapped to the removed reaction.
func (h *EventHandlers) HandleReactionRemove(s *discordgo.Session, event *discordgo.MessageReactionRemove) {
	if event == nil || event.MessageReaction == nil {
		return
	}
	h.handle(s, event.MessageReaction, "remove", h.roles.Revoke)
}

type reactionFunc func(context.Context, usecases.ReactionInput) (*usecases.ReactionOutput, error)

func (h *EventHandlers) handle(
	s *discordgo.Session,
	reaction *discordgo.MessageReaction,
	action string,
	apply reactionFunc,
) {
	input, ok := h.reactionInput(s, reaction)
	if !ok {
		return
	}

	output, err := apply(context.Background(), input)
	switch {
	case errors.Is(err, usecases.ErrMemberNotFound):
		slog.Debug("skipped reaction from unresolved member",
			"guild", input.GuildID,
			"user", input.UserID,
			"error", err,
		)
	case err != nil:
		slog.Error("failed to apply reaction role",
			"action", action,
			"guild", input.GuildID,
			"user", input.UserID,
			"emoji", input.Emoji,
			"error", err,
		)
	case output.Changed:
		slog.Debug("applied reaction role",
			"action", action,
			"user", input.UserID,
			"role", output.RoleID,
		)
	}
}

// reactionInput converts a reaction into use case input. It reports false for
// reactions the module ignores: other guilds, custom emoji and the bot's own.
func (h *EventHandlers) reactionInput(
	s *discordgo.Session,
	reaction *discordgo.MessageReaction,
) (usecases.ReactionInput, bool) {
	// Custom and animated emoji carry an ID; only Unicode emoji are mapped.
	if reaction.Emoji.ID != "" || reaction.Emoji.Name == "" {
		return usecases.ReactionInput{}, false
	}

	if reaction.GuildID != h.guildID.String() {
		return usecases.ReactionInput{}, false
	}

	if s != nil && s.State != nil && s.State.User != nil && reaction.UserID == s.State.User.ID {
		return usecases.ReactionInput{}, false
	}

	userID, err := snowflake.Parse(reaction.UserID)
	if err != nil {
		slog.Error("failed to parse user ID in reaction event", "error", err)
		return usecases.ReactionInput{}, false
	}

	return usecases.ReactionInput{
		GuildID: h.guildID,
		UserID:  userID,
		Emoji:   usecases.Emoji(reaction.Emoji.Name),
	}, true
}

package presentation

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/rolebot/internal/bot"
	"github.com/sglre6355/rolebot/internal/modules/general/application"
	"github.com/sglre6355/rolebot/internal/modules/general/domain"
)

// CommandHandler handles every general command interaction.
type CommandHandler struct {
	interactor *application.DispatchInteractor
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		interactor: application.NewDispatchInteractor(),
	}
}

// Handle dispatches the command and sends its reply.
func (h *CommandHandler) Handle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	data := i.ApplicationCommandData()

	result := h.interactor.Execute(application.DispatchInput{
		Command:   data.Name,
		Arguments: arguments(data),
	})

	return bot.RespondText(r, result.Content)
}

// arguments converts interaction options to positional command arguments.
// Options of other types are dropped.
func arguments(data discordgo.ApplicationCommandInteractionData) []domain.Argument {
	args := make([]domain.Argument, 0, len(data.Options))
	for _, opt := range data.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionUser:
			if arg, ok := userArgument(data, opt); ok {
				args = append(args, arg)
			}
		case discordgo.ApplicationCommandOptionString:
			args = append(args, domain.TextArgument{Text: opt.StringValue()})
		}
	}
	return args
}

func userArgument(
	data discordgo.ApplicationCommandInteractionData,
	opt *discordgo.ApplicationCommandInteractionDataOption,
) (domain.UserArgument, bool) {
	rawID, ok := opt.Value.(string)
	if !ok || data.Resolved == nil {
		return domain.UserArgument{}, false
	}
	user, ok := data.Resolved.Users[rawID]
	if !ok || user == nil {
		return domain.UserArgument{}, false
	}

	id, err := snowflake.Parse(user.ID)
	if err != nil {
		slog.Warn("failed to parse resolved user ID", "user", user.ID, "error", err)
		return domain.UserArgument{}, false
	}

	return domain.UserArgument{ID: id, Tag: user.String()}, true
}

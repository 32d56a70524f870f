package presentation

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/rolebot/internal/modules/general/domain"
)

var optionTypes = map[domain.ArgumentKind]discordgo.ApplicationCommandOptionType{
	domain.ArgumentUser: discordgo.ApplicationCommandOptionUser,
	domain.ArgumentText: discordgo.ApplicationCommandOptionString,
}

// Commands converts command definitions to slash commands. Every parameter is required.
func Commands(defs []domain.Definition) []*discordgo.ApplicationCommand {
	commands := make([]*discordgo.ApplicationCommand, 0, len(defs))
	for _, def := range defs {
		cmd := &discordgo.ApplicationCommand{
			Name:        def.Name,
			Description: def.Description,
		}
		for _, p := range def.Parameters {
			cmd.Options = append(cmd.Options, &discordgo.ApplicationCommandOption{
				Type:        optionTypes[p.Kind],
				Name:        p.Name,
				Description: p.Description,
				Required:    true,
			})
		}
		commands = append(commands, cmd)
	}
	return commands
}

package infrastructure

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/application/ports"
)

// Ensure DiscordGateway implements the reaction role ports.
var (
	_ ports.MessageSource    = (*DiscordGateway)(nil)
	_ ports.RoleSource       = (*DiscordGateway)(nil)
	_ ports.MemberRoleEditor = (*DiscordGateway)(nil)
)

// DiscordGateway implements the reaction role ports using a Discord session.
type DiscordGateway struct {
	session *discordgo.Session
}

// NewDiscordGateway creates a new DiscordGateway.
func NewDiscordGateway(session *discordgo.Session) *DiscordGateway {
	return &DiscordGateway{session: session}
}

// RecentMessages fetches the channel's most recent messages, newest first.
func (g *DiscordGateway) RecentMessages(
	ctx context.Context,
	channelID snowflake.ID,
	limit int,
) ([]ports.Message, error) {
	msgs, err := g.session.ChannelMessages(
		channelID.String(), limit, "", "", "",
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel messages: %w", err)
	}

	result := make([]ports.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Author == nil {
			continue
		}
		msg, err := toMessage(m)
		if err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, nil
}

// GuildRoles fetches all roles of the guild.
func (g *DiscordGateway) GuildRoles(ctx context.Context, guildID snowflake.ID) ([]ports.Role, error) {
	roles, err := g.session.GuildRoles(guildID.String(), discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild roles: %w", err)
	}

	result := make([]ports.Role, 0, len(roles))
	for _, r := range roles {
		id, err := snowflake.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse role ID %q: %w", r.ID, err)
		}
		result = append(result, ports.Role{ID: id, Name: r.Name})
	}
	return result, nil
}

// Member fetches a guild member.
func (g *DiscordGateway) Member(
	ctx context.Context,
	guildID, userID snowflake.ID,
) (*ports.Member, error) {
	if _, err := g.session.GuildMember(guildID.String(), userID.String(), discordgo.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("failed to fetch guild member: %w", err)
	}

	return &ports.Member{UserID: userID}, nil
}

// AddRole grants a role to a guild member.
func (g *DiscordGateway) AddRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error {
	return g.session.GuildMemberRoleAdd(
		guildID.String(), userID.String(), roleID.String(),
		discordgo.WithContext(ctx),
	)
}

// RemoveRole revokes a role from a guild member.
func (g *DiscordGateway) RemoveRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error {
	return g.session.GuildMemberRoleRemove(
		guildID.String(), userID.String(), roleID.String(),
		discordgo.WithContext(ctx),
	)
}

func toMessage(m *discordgo.Message) (ports.Message, error) {
	id, err := snowflake.Parse(m.ID)
	if err != nil {
		return ports.Message{}, fmt.Errorf("failed to parse message ID %q: %w", m.ID, err)
	}
	authorID, err := snowflake.Parse(m.Author.ID)
	if err != nil {
		return ports.Message{}, fmt.Errorf("failed to parse author ID %q: %w", m.Author.ID, err)
	}
	return ports.Message{
		ID:       id,
		AuthorID: authorID,
		Content:  m.Content,
	}, nil
}

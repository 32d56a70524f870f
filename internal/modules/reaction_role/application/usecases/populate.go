package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/application/ports"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultScanLimit is how many recent data channel messages are scanned for admin configs.
const DefaultScanLimit = 50

// PopulateService builds the reaction role mapping from admin config messages.
type PopulateService struct {
	repo     domain.ReactionRoleRepository
	messages ports.MessageSource
	roles    ports.RoleSource
}

// NewPopulateService creates a new PopulateService.
func NewPopulateService(
	repo domain.ReactionRoleRepository,
	messages ports.MessageSource,
	roles ports.RoleSource,
) *PopulateService {
	return &PopulateService{
		repo:     repo,
		messages: messages,
		roles:    roles,
	}
}

// PopulateInput contains the input for the Populate use case.
type PopulateInput struct {
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	AdminID   snowflake.ID
	// ScanLimit defaults to DefaultScanLimit when zero.
	ScanLimit int
}

// PopulateOutput contains the result of the Populate use case.
type PopulateOutput struct {
	Roles         domain.ReactionRoles
	AdminMessages int
}

// Populate reads the guild roles and the data channel history, applies every
// admin-authored config in scan order and replaces the repository contents.
// The repository is untouched unless every admin message parses.
func (p *PopulateService) Populate(ctx context.Context, input PopulateInput) (*PopulateOutput, error) {
	limit := input.ScanLimit
	if limit <= 0 {
		limit = DefaultScanLimit
	}

	var (
		guildRoles []ports.Role
		messages   []ports.Message
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		roles, err := p.roles.GuildRoles(gctx, input.GuildID)
		if err != nil {
			return fmt.Errorf("%w: guild roles: %w", ErrSourceUnavailable, err)
		}
		guildRoles = roles
		return nil
	})
	g.Go(func() error {
		msgs, err := p.messages.RecentMessages(gctx, input.ChannelID, limit)
		if err != nil {
			return fmt.Errorf("%w: channel %d: %w", ErrSourceUnavailable, input.ChannelID, err)
		}
		messages = msgs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Role names are not unique; the last role the platform lists wins.
	roleIDs := make(map[string]snowflake.ID, len(guildRoles))
	for _, role := range guildRoles {
		if prev, ok := roleIDs[role.Name]; ok {
			slog.Debug("found duplicate role name",
				"guild", input.GuildID,
				"name", role.Name,
				"ignored_role", prev,
				"role", role.ID,
			)
		}
		roleIDs[role.Name] = role.ID
	}

	// Later-scanned admin messages overwrite earlier ones on emoji collision.
	// The history is newest first, so the oldest admin message wins.
	roles := make(domain.ReactionRoles)
	adminMessages := 0
	for _, msg := range messages {
		if msg.AuthorID != input.AdminID {
			continue
		}
		adminMessages++

		cfg, err := domain.ParseAdminConfig(msg.Content)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", msg.ID, err)
		}
		roles.Apply(roleIDs, cfg)
	}

	if err := p.repo.Replace(ctx, roles); err != nil {
		return nil, err
	}

	slog.Debug("applied admin configs",
		"channel", input.ChannelID,
		"scanned", len(messages),
		"admin_messages", adminMessages,
	)

	return &PopulateOutput{
		Roles:         roles,
		AdminMessages: adminMessages,
	}, nil
}

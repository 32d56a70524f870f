package usecases

import (
	"context"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/application/ports"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/domain"
)

// RoleAssignmentService grants and revokes roles in response to reactions.
type RoleAssignmentService struct {
	repo    domain.ReactionRoleRepository
	members ports.MemberRoleEditor
}

// NewRoleAssignmentService creates a new RoleAssignmentService.
func NewRoleAssignmentService(
	repo domain.ReactionRoleRepository,
	members ports.MemberRoleEditor,
) *RoleAssignmentService {
	return &RoleAssignmentService{
		repo:    repo,
		members: members,
	}
}

// ReactionInput contains the input for the Grant and Revoke use cases.
type ReactionInput struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
	Emoji   domain.Emoji
}

// ReactionOutput contains the result of the Grant and Revoke use cases.
type ReactionOutput struct {
	// Changed is false when the emoji is not mapped to any role.
	Changed bool
	RoleID  snowflake.ID
}

// Grant adds the role mapped to the reaction's emoji to the reacting member.
func (s *RoleAssignmentService) Grant(ctx context.Context, input ReactionInput) (*ReactionOutput, error) {
	return s.apply(ctx, input, s.members.AddRole)
}

// Revoke removes the role mapped to the reaction's emoji from the reacting member.
func (s *RoleAssignmentService) Revoke(ctx context.Context, input ReactionInput) (*ReactionOutput, error) {
	return s.apply(ctx, input, s.members.RemoveRole)
}

type roleChangeFunc func(ctx context.Context, guildID, userID, roleID snowflake.ID) error

func (s *RoleAssignmentService) apply(
	ctx context.Context,
	input ReactionInput,
	change roleChangeFunc,
) (*ReactionOutput, error) {
	member, err := s.members.Member(ctx, input.GuildID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMemberNotFound, err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	roleID, ok := s.repo.Lookup(ctx, input.Emoji)
	if !ok {
		return &ReactionOutput{}, nil
	}

	// Membership in the role is not checked; the platform treats a
	// redundant add or remove as a no-op.
	if err := change(ctx, input.GuildID, member.UserID, roleID); err != nil {
		return nil, fmt.Errorf("%w %d for user %d: %w", ErrRoleChangeFailed, roleID, member.UserID, err)
	}

	return &ReactionOutput{
		Changed: true,
		RoleID:  roleID,
	}, nil
}

package usecases

import (
	"context"
	"errors"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/application/ports"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/domain"
)

type mockRepository struct {
	roles    domain.ReactionRoles
	replaced int
	err      error
}

func newMockRepository(roles domain.ReactionRoles) *mockRepository {
	if roles == nil {
		roles = make(domain.ReactionRoles)
	}
	return &mockRepository{roles: roles}
}

func (m *mockRepository) Replace(_ context.Context, roles domain.ReactionRoles) error {
	if m.err != nil {
		return m.err
	}
	m.replaced++
	m.roles = roles
	return nil
}

func (m *mockRepository) Lookup(_ context.Context, emoji domain.Emoji) (snowflake.ID, bool) {
	roleID, ok := m.roles[emoji]
	return roleID, ok
}

type mockMessageSource struct {
	messages  []ports.Message
	err       error
	lastLimit int
}

func (m *mockMessageSource) RecentMessages(
	_ context.Context,
	_ snowflake.ID,
	limit int,
) ([]ports.Message, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if len(m.messages) > limit {
		return m.messages[:limit], nil
	}
	return m.messages, nil
}

type mockRoleSource struct {
	roles []ports.Role
	err   error
}

func (m *mockRoleSource) GuildRoles(_ context.Context, _ snowflake.ID) ([]ports.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.roles, nil
}

type roleChange struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
	RoleID  snowflake.ID
}

// mockMemberRoleEditor records every role mutation it receives.
type mockMemberRoleEditor struct {
	mu        sync.Mutex
	members   map[snowflake.ID]*ports.Member
	memberErr error
	changeErr error
	added     []roleChange
	removed   []roleChange
}

func newMockMemberRoleEditor(userIDs ...snowflake.ID) *mockMemberRoleEditor {
	m := &mockMemberRoleEditor{members: make(map[snowflake.ID]*ports.Member)}
	for _, id := range userIDs {
		m.members[id] = &ports.Member{UserID: id}
	}
	return m
}

func (m *mockMemberRoleEditor) Member(
	_ context.Context,
	_, userID snowflake.ID,
) (*ports.Member, error) {
	if m.memberErr != nil {
		return nil, m.memberErr
	}
	member, ok := m.members[userID]
	if !ok {
		return nil, errUnknownMember
	}
	return member, nil
}

func (m *mockMemberRoleEditor) AddRole(_ context.Context, guildID, userID, roleID snowflake.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.changeErr != nil {
		return m.changeErr
	}
	m.added = append(m.added, roleChange{guildID, userID, roleID})
	return nil
}

func (m *mockMemberRoleEditor) RemoveRole(_ context.Context, guildID, userID, roleID snowflake.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.changeErr != nil {
		return m.changeErr
	}
	m.removed = append(m.removed, roleChange{guildID, userID, roleID})
	return nil
}

var errUnknownMember = errors.New("HTTP 404 Not Found, Unknown Member")

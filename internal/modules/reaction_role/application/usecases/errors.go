package usecases

import "errors"

// Errors returned by the reaction role use cases.
var (
	// ErrMemberNotFound is returned when the reacting user cannot be resolved to a guild member.
	ErrMemberNotFound = errors.New("member not found")

	// ErrRoleChangeFailed is returned when the platform rejects a role add or remove.
	ErrRoleChangeFailed = errors.New("failed to change member role")

	// ErrSourceUnavailable is returned when guild roles or channel history cannot be fetched.
	ErrSourceUnavailable = errors.New("failed to read reaction role source")
)

package domain

import "github.com/disgoorg/snowflake/v2"

// ArgumentKind identifies the shape of a command argument.
type ArgumentKind int

const (
	ArgumentUser ArgumentKind = iota + 1
	ArgumentText
)

// String returns the kind name.
func (k ArgumentKind) String() string {
	switch k {
	case ArgumentUser:
		return "user"
	case ArgumentText:
		return "text"
	default:
		return "unknown"
	}
}

// Argument is a resolved command argument. The set of implementations is closed.
type Argument interface {
	Kind() ArgumentKind
	argument()
}

// UserArgument references a platform user.
type UserArgument struct {
	ID  snowflake.ID
	Tag string
}

// Kind returns ArgumentUser.
func (UserArgument) Kind() ArgumentKind { return ArgumentUser }
func (UserArgument) argument()          {}

// TextArgument is free text.
type TextArgument struct {
	Text string
}

// Kind returns ArgumentText.
func (TextArgument) Kind() ArgumentKind { return ArgumentText }
func (TextArgument) argument()          {}

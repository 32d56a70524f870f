package ports

import "github.com/disgoorg/snowflake/v2"

// Message is a channel message as seen by the reaction role module.
type Message struct {
	ID       snowflake.ID
	AuthorID snowflake.ID
	Content  string
}

// Role is a guild role.
type Role struct {
	ID   snowflake.ID
	Name string
}

// Member is a resolved guild member.
type Member struct {
	UserID snowflake.ID
}

package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrConfigParse is returned when an admin message is not a valid admin config document.
var ErrConfigParse = errors.New("failed to parse admin config")

// AdminConfig is the document an administrator posts in the bot data channel.
//
//	{"reaction_roles": {"Fire Squad": "🔥", "Water Squad": "💧"}}
type AdminConfig struct {
	// ReactionRoles maps a role display name to the emoji that grants it.
	ReactionRoles map[string]Emoji `json:"reaction_roles"`
}

// ParseAdminConfig decodes an admin config document from message content.
// The JSON may be wrapped in a Markdown code fence.
func ParseAdminConfig(content string) (AdminConfig, error) {
	var cfg AdminConfig
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &cfg); err != nil {
		return AdminConfig{}, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	if cfg.ReactionRoles == nil {
		return AdminConfig{}, fmt.Errorf("%w: missing reaction_roles", ErrConfigParse)
	}
	return cfg, nil
}

// stripCodeFence removes a surrounding ``` fence and its optional language tag.
func stripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")

	// The language tag, e.g. ```json, ends at the first newline or where
	// the document starts on the same line.
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "{[") {
		s = s[nl+1:]
	} else if end := strings.IndexFunc(s, notTagRune); end > 0 {
		if rest := strings.TrimLeft(s[end:], " \t"); strings.HasPrefix(rest, "{") || strings.HasPrefix(rest, "[") {
			s = rest
		}
	}
	return strings.TrimSpace(s)
}

func notTagRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

package domain

import (
	"errors"
	"fmt"
)

// Fixed replies.
const (
	PingResponse        = "pong"
	UnknownResponse     = "not implemented :("
	InvalidUserResponse = "Please provide a valid user"
	InvalidTextResponse = "```OwO```"
)

// Command names.
const (
	CommandPing = "ping"
	CommandID   = "id"
	CommandSay  = "say"
)

// Parameter describes one positional argument of a command.
type Parameter struct {
	Name        string
	Description string
	Kind        ArgumentKind
}

// Definition describes a command and the arguments it takes.
type Definition struct {
	Name        string
	Description string
	Parameters  []Parameter
}

// Definitions returns every command the dispatcher understands.
func Definitions() []Definition {
	return []Definition{
		{
			Name:        CommandPing,
			Description: "Ping the bot!",
		},
		{
			Name:        CommandID,
			Description: "Get the id of a user",
			Parameters: []Parameter{
				{Name: "id", Description: "The user to lookup", Kind: ArgumentUser},
			},
		},
		{
			Name:        CommandSay,
			Description: "Have a crab say something",
			Parameters: []Parameter{
				{Name: "text", Description: "The thing to say", Kind: ArgumentText},
			},
		},
	}
}

// ValidateDefinitions checks that names are unique and every parameter has a known kind.
func ValidateDefinitions(defs []Definition) error {
	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			return errors.New("command with empty name")
		}
		if _, ok := seen[def.Name]; ok {
			return fmt.Errorf("duplicate command %s", def.Name)
		}
		seen[def.Name] = struct{}{}

		for _, p := range def.Parameters {
			if p.Kind != ArgumentUser && p.Kind != ArgumentText {
				return fmt.Errorf("command %s: parameter %s has unknown kind %d", def.Name, p.Name, p.Kind)
			}
		}
	}
	return nil
}

// Command is one of the closed set of commands: Ping, LookupID or Say.
type Command interface {
	Name() string
	Respond() string
	command()
}

// Ping replies with a constant.
type Ping struct{}

// LookupID reports a user's tag and id.
type LookupID struct {
	Target Argument
}

// Say renders text in a speech bubble.
type Say struct {
	Text Argument
}

func (Ping) Name() string     { return CommandPing }
func (LookupID) Name() string { return CommandID }
func (Say) Name() string      { return CommandSay }

func (Ping) command()     {}
func (LookupID) command() {}
func (Say) command()      {}

// Respond returns the ping reply.
func (Ping) Respond() string {
	return PingResponse
}

// Respond returns the user's tag and id, or a placeholder if Target is not a user.
func (c LookupID) Respond() string {
	user, ok := c.Target.(UserArgument)
	if !ok {
		return InvalidUserResponse
	}
	return fmt.Sprintf("%s's id is %d", user.Tag, user.ID)
}

// Respond returns the text spoken by the crab in a code block, or a
// placeholder if Text is not free text.
func (c Say) Respond() string {
	text, ok := c.Text.(TextArgument)
	if !ok {
		return InvalidTextResponse
	}
	return "```\n" + SayBubble(text.Text, SayWidth) + "```"
}

// ParseCommand builds the command named name from its arguments.
// Missing arguments are left nil and produce the command's placeholder reply.
func ParseCommand(name string, args []Argument) (Command, bool) {
	switch name {
	case CommandPing:
		return Ping{}, true
	case CommandID:
		return LookupID{Target: argAt(args, 0)}, true
	case CommandSay:
		return Say{Text: argAt(args, 0)}, true
	default:
		return nil, false
	}
}

// Dispatch returns the reply for a command invocation.
func Dispatch(name string, args []Argument) string {
	cmd, ok := ParseCommand(name, args)
	if !ok {
		return UnknownResponse
	}
	return cmd.Respond()
}

func argAt(args []Argument, i int) Argument {
	if i < len(args) {
		return args[i]
	}
	return nil
}

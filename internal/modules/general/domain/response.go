package domain

// CommandResponse is the reply produced for one command invocation.
type CommandResponse struct {
	Command string
	Content string
}

// NewCommandResponse dispatches the command and wraps its reply.
func NewCommandResponse(name string, args []Argument) *CommandResponse {
	return &CommandResponse{
		Command: name,
		Content: Dispatch(name, args),
	}
}

package application

import "github.com/sglre6355/rolebot/internal/modules/general/domain"

// DispatchInteractor handles the command dispatch use case.
type DispatchInteractor struct{}

// NewDispatchInteractor creates a new DispatchInteractor.
func NewDispatchInteractor() *DispatchInteractor {
	return &DispatchInteractor{}
}

// DispatchInput contains the input for the dispatch use case.
type DispatchInput struct {
	Command   string
	Arguments []domain.Argument
}

// Execute computes the reply for the command and returns the result.
func (d *DispatchInteractor) Execute(input DispatchInput) *domain.CommandResponse {
	return domain.NewCommandResponse(input.Command, input.Arguments)
}

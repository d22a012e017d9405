package port

import (
	"context"
	"convbot/internal/core/domain"
	"time"
)

type Responder interface {
	// Respond handles a decoded update within the given timeout and answers the originating chat.
	Respond(ctx context.Context, timeout time.Duration, update *domain.Update) error
}

type Command interface {
	Responder
	// GetCommand retrieves the command identifier associated with a specific command handler.
	GetCommand() string
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler Command)
	// Get retrieves a registered Command based on its string identifier or returns an error if not found.
	Get(command string) (Command, error)
	// ListCommands returns a list of all command identifiers currently registered in the command registry.
	ListCommands() []string
}

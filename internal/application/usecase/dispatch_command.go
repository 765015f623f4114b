package usecase

import (
	"context"

	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/logging"
)

// CommandAction is a parameterless side effect bound to a command name.
type CommandAction func(ctx context.Context)

// DispatchCommandUseCase maps command names to their actions.
// The command table is built once at startup and read from the UI loop only.
type DispatchCommandUseCase struct {
	commands []entity.Command
	actions  map[string]CommandAction
}

// NewDispatchCommandUseCase creates an empty dispatcher.
func NewDispatchCommandUseCase() *DispatchCommandUseCase {
	return &DispatchCommandUseCase{
		actions: make(map[string]CommandAction),
	}
}

// Register binds an action to a command. Registering the same name again
// replaces the action and keeps the original position.
func (uc *DispatchCommandUseCase) Register(cmd entity.Command, action CommandAction) {
	if _, exists := uc.actions[cmd.Name]; !exists {
		uc.commands = append(uc.commands, cmd)
	}
	uc.actions[cmd.Name] = action
}

// Commands returns the registered commands in registration order.
func (uc *DispatchCommandUseCase) Commands() []entity.Command {
	out := make([]entity.Command, len(uc.commands))
	copy(out, uc.commands)
	return out
}

// Has reports whether token is an exact command name.
func (uc *DispatchCommandUseCase) Has(token string) bool {
	_, ok := uc.actions[token]
	return ok
}

// Execute runs the action registered under token.
// Matching is exact and case-sensitive. Returns false, with no side effect,
// for unknown tokens.
func (uc *DispatchCommandUseCase) Execute(ctx context.Context, token string) bool {
	log := logging.FromContext(ctx)

	action, ok := uc.actions[token]
	if !ok {
		log.Debug().Str("token", token).Err(ErrUnknownCommand).Msg("command not dispatched")
		return false
	}

	log.Debug().Str("command", token).Msg("dispatching command")
	if action != nil {
		action(ctx)
	}
	return true
}

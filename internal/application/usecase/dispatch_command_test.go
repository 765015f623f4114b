package usecase_test

import (
	"context"
	"testing"

	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestDispatchCommand_ExecuteKnownCommand(t *testing.T) {
	ctx := testContext()
	dispatcher := usecase.NewDispatchCommandUseCase()

	calls := 0
	dispatcher.Register(entity.Command{Name: ":help"}, func(context.Context) { calls++ })

	assert.True(t, dispatcher.Execute(ctx, ":help"))
	assert.Equal(t, 1, calls)
}

func TestDispatchCommand_UnknownOrMiscasedTokenHasNoEffect(t *testing.T) {
	ctx := testContext()
	dispatcher := usecase.NewDispatchCommandUseCase()

	calls := 0
	dispatcher.Register(entity.Command{Name: ":help"}, func(context.Context) { calls++ })

	assert.False(t, dispatcher.Execute(ctx, ":HELP"))
	assert.False(t, dispatcher.Execute(ctx, ":hel"))
	assert.False(t, dispatcher.Execute(ctx, ""))
	assert.Zero(t, calls)
}

func TestDispatchCommand_ReRegisterKeepsOrder(t *testing.T) {
	dispatcher := usecase.NewDispatchCommandUseCase()

	first, second := 0, 0
	dispatcher.Register(entity.Command{Name: ":a"}, nil)
	dispatcher.Register(entity.Command{Name: ":b"}, func(context.Context) { first++ })
	dispatcher.Register(entity.Command{Name: ":b"}, func(context.Context) { second++ })

	names := []string{}
	for _, c := range dispatcher.Commands() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{":a", ":b"}, names)

	assert.True(t, dispatcher.Execute(testContext(), ":b"))
	assert.Zero(t, first)
	assert.Equal(t, 1, second)
	assert.True(t, dispatcher.Has(":a"))
	assert.True(t, dispatcher.Execute(testContext(), ":a"))
}

package model

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/cli/styles"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/infrastructure/config"
)

type fakePurger struct {
	targets  []entity.PurgeTarget
	scanErr  error
	executed []entity.PurgeTargetType
}

func (f *fakePurger) GetPurgeTargets(context.Context) ([]entity.PurgeTarget, error) {
	return f.targets, f.scanErr
}

func (f *fakePurger) Execute(_ context.Context, in usecase.PurgeInput) (*usecase.PurgeOutput, error) {
	f.executed = in.TargetTypes
	out := &usecase.PurgeOutput{}
	for _, t := range f.targets {
		for _, tt := range in.TargetTypes {
			if t.Type == tt {
				out.Results = append(out.Results, entity.PurgeResult{Target: t, Success: true})
				out.SuccessCount++
			}
		}
	}
	return out, nil
}

func newPurgeFixture(t *testing.T, purger *fakePurger) PurgeModel {
	t.Helper()
	m := NewPurgeModel(context.Background(), styles.NewTheme(config.DefaultConfig()), purger)

	for _, msg := range runCmd(m.Init()) {
		if loaded, ok := msg.(purgeTargetsLoadedMsg); ok {
			next, _ := m.Update(loaded)
			m = next.(PurgeModel)
		}
	}
	return m
}

func pressPurge(t *testing.T, m PurgeModel, k tea.KeyMsg) (PurgeModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	return next.(PurgeModel), cmd
}

func TestPurgeModel_PurgesSelectedTargets(t *testing.T) {
	purger := &fakePurger{targets: []entity.PurgeTarget{
		{Type: entity.PurgeTargetConfig, Path: "/cfg/orbit", Exists: true, Size: 512},
		{Type: entity.PurgeTargetData, Path: "/data/orbit", Exists: true, Size: 4096},
		{Type: entity.PurgeTargetState, Path: "/state/orbit"},
	}}
	m := newPurgeFixture(t, purger)
	assert.Contains(t, m.View(), "/data/orbit")

	// Deselect config, keep data.
	m, _ = pressPurge(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := pressPurge(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.purging)

	for _, msg := range runCmd(cmd) {
		if done, ok := msg.(purgeCompleteMsg); ok {
			next, _ := m.Update(done)
			m = next.(PurgeModel)
		}
	}

	assert.Equal(t, []entity.PurgeTargetType{entity.PurgeTargetData}, purger.executed)
	assert.True(t, m.done)
	view := m.View()
	assert.Contains(t, view, "Purge complete")
	assert.Contains(t, view, "1 succeeded, 0 failed")

	_, cmd = pressPurge(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPurgeModel_NothingSelected(t *testing.T) {
	purger := &fakePurger{targets: []entity.PurgeTarget{
		{Type: entity.PurgeTargetConfig, Path: "/cfg/orbit", Exists: true},
	}}
	m := newPurgeFixture(t, purger)

	m, _ = pressPurge(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = pressPurge(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, purger.executed)
	assert.True(t, m.done)
	assert.Contains(t, m.View(), "Nothing selected")
}

func TestPurgeModel_CancelQuits(t *testing.T) {
	m := newPurgeFixture(t, &fakePurger{targets: []entity.PurgeTarget{
		{Type: entity.PurgeTargetData, Path: "/data/orbit", Exists: true},
	}})

	_, cmd := pressPurge(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPurgeModel_ScanError(t *testing.T) {
	m := newPurgeFixture(t, &fakePurger{scanErr: errors.New("no home")})

	assert.True(t, m.done)
	assert.Contains(t, m.View(), "no home")
}

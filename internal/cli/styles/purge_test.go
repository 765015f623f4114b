package styles_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/orbit/internal/cli/styles"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/infrastructure/config"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(config.DefaultConfig())
}

func testTargets() []entity.PurgeTarget {
	return []entity.PurgeTarget{
		{Type: entity.PurgeTargetConfig, Path: "/config/orbit", Exists: true, Size: 100},
		{Type: entity.PurgeTargetData, Path: "/data/orbit", Exists: true, Size: 2048},
		{Type: entity.PurgeTargetState, Path: "/state/orbit", Exists: false},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPurgeModel_ExistingTargetsStartSelected(t *testing.T) {
	m := styles.NewPurge(testTheme(), testTargets())

	assert.Equal(t, []entity.PurgeTargetType{entity.PurgeTargetConfig, entity.PurgeTargetData}, m.SelectedTypes())
	assert.Equal(t, 2, m.SelectedCount())
	assert.Equal(t, int64(2148), m.SelectedSize())
}

func TestPurgeModel_CursorSkipsMissingTargets(t *testing.T) {
	targets := testTargets()
	targets[0].Exists = false
	m := styles.NewPurge(testTheme(), targets)
	require.Equal(t, 1, m.Cursor, "cursor starts on the first existing target")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor, "only one target exists")
}

func TestPurgeModel_ToggleCurrent(t *testing.T) {
	m := styles.NewPurge(testTheme(), testTargets())

	m, _ = m.Update(keyRune(' '))
	assert.Equal(t, []entity.PurgeTargetType{entity.PurgeTargetData}, m.SelectedTypes())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(keyRune(' '))
	assert.Empty(t, m.SelectedTypes())
}

func TestPurgeModel_ToggleAll(t *testing.T) {
	m := styles.NewPurge(testTheme(), testTargets())

	m, _ = m.Update(keyRune('a'))
	assert.Empty(t, m.SelectedTypes(), "all selected, so toggle clears")

	m, _ = m.Update(keyRune('a'))
	assert.Len(t, m.SelectedTypes(), 2, "missing targets are never selected")
}

func TestPurgeModel_ConfirmAndCancel(t *testing.T) {
	m := styles.NewPurge(testTheme(), testTargets())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Done())
	assert.True(t, m.Confirmed)

	m = styles.NewPurge(testTheme(), testTargets())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Done())
	assert.True(t, m.Canceled)
}

func TestPurgeModel_View(t *testing.T) {
	view := styles.NewPurge(testTheme(), testTargets()).View()

	assert.Contains(t, view, "/data/orbit")
	assert.Contains(t, view, "(not found)")
	assert.Contains(t, view, "2 selected")
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, styles.FormatSize(tt.in))
	}
}

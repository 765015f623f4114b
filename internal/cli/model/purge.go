package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/cli/styles"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/logging"
)

// Purger lists and removes orbit's directories.
type Purger interface {
	GetPurgeTargets(ctx context.Context) ([]entity.PurgeTarget, error)
	Execute(ctx context.Context, input usecase.PurgeInput) (*usecase.PurgeOutput, error)
}

// PurgeModel wraps styles.PurgeModel for standalone CLI use.
type PurgeModel struct {
	selector styles.PurgeModel
	loading  styles.LoadingModel
	purger   Purger

	scanning bool
	purging  bool
	done     bool

	results *usecase.PurgeOutput
	info    string
	err     error

	theme *styles.Theme
	ctx   context.Context
}

// NewPurgeModel creates a new purge command model.
func NewPurgeModel(ctx context.Context, theme *styles.Theme, purger Purger) PurgeModel {
	return PurgeModel{
		loading:  styles.NewLoading(theme, "Scanning purge targets..."),
		purger:   purger,
		scanning: true,
		theme:    theme,
		ctx:      ctx,
	}
}

type purgeTargetsLoadedMsg struct {
	targets []entity.PurgeTarget
	err     error
}

type purgeCompleteMsg struct {
	output *usecase.PurgeOutput
	err    error
}

// Init implements tea.Model.
func (m PurgeModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Spinner.Tick, m.loadTargets())
}

func (m PurgeModel) loadTargets() tea.Cmd {
	return func() tea.Msg {
		targets, err := m.purger.GetPurgeTargets(m.ctx)
		return purgeTargetsLoadedMsg{targets: targets, err: err}
	}
}

// Update implements tea.Model.
func (m PurgeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case purgeTargetsLoadedMsg:
		m.scanning = false
		if msg.err != nil {
			m.err = msg.err
			m.done = true
			return m, nil
		}
		m.selector = styles.NewPurge(m.theme, msg.targets)
		return m, nil

	case purgeCompleteMsg:
		m.purging = false
		m.done = true
		m.results = msg.output
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.scanning && !m.purging {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.done {
			return m, tea.Quit
		}
		if m.scanning || m.purging {
			return m, nil
		}
		return m.updateSelector(msg)
	}

	return m, nil
}

func (m PurgeModel) updateSelector(msg tea.Msg) (tea.Model, tea.Cmd) {
	selector, cmd := m.selector.Update(msg)
	m.selector = selector

	if !m.selector.Done() {
		return m, cmd
	}
	if m.selector.Canceled {
		return m, tea.Quit
	}

	targetTypes := m.selector.SelectedTypes()
	if len(targetTypes) == 0 {
		m.done = true
		m.info = "Nothing selected"
		return m, nil
	}

	m.purging = true
	m.loading.Message = "Purging..."
	return m, tea.Batch(m.loading.Spinner.Tick, m.performPurge(targetTypes))
}

func (m PurgeModel) performPurge(targetTypes []entity.PurgeTargetType) tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Debug().Int("targets", len(targetTypes)).Msg("purging")
		out, err := m.purger.Execute(m.ctx, usecase.PurgeInput{TargetTypes: targetTypes})
		return purgeCompleteMsg{output: out, err: err}
	}
}

// View implements tea.Model.
func (m PurgeModel) View() string {
	t := m.theme

	if m.scanning || m.purging {
		return t.Box.Render(m.loading.View())
	}

	if m.done {
		if m.info != "" {
			return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
				t.Subtle.Render(m.info),
				"",
				t.Subtle.Render("Press any key to exit"),
			))
		}
		if m.err != nil && m.results == nil {
			return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
				t.ErrorStyle.Render("Error: "+m.err.Error()),
				"",
				t.Subtle.Render("Press any key to exit"),
			))
		}
		return m.renderResults()
	}

	return m.selector.View()
}

func (m PurgeModel) renderResults() string {
	t := m.theme
	lines := []string{t.Title.Render("Purge complete")}

	if m.results != nil {
		for _, r := range m.results.Results {
			lines = append(lines, PurgeResultLine(t, r))
		}
		lines = append(lines, "", t.Subtle.Render(fmt.Sprintf(
			"%d succeeded, %d failed", m.results.SuccessCount, m.results.FailureCount,
		)))
	}

	lines = append(lines, "", t.Subtle.Render("Press any key to exit"))
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// PurgeResultLine renders one purge result with a check or cross.
func PurgeResultLine(t *styles.Theme, r entity.PurgeResult) string {
	if r.Success {
		return fmt.Sprintf("%s %s", t.SuccessStyle.Render(styles.IconCheck), r.Target.Path)
	}
	return fmt.Sprintf("%s %s: %v", t.ErrorStyle.Render(styles.IconX), r.Target.Path, r.Error)
}

var _ tea.Model = PurgeModel{}

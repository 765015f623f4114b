package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/orbit/internal/domain/entity"
)

const (
	iconCursor          = "\uf054"
	iconCheckboxEmpty   = "\uf096"
	iconCheckboxChecked = "\uf046"
)

// PurgeItem wraps entity.PurgeTarget with selection state for the UI.
type PurgeItem struct {
	entity.PurgeTarget
	Selected bool
}

// PurgeModel is the multi-select purge modal.
type PurgeModel struct {
	Items     []PurgeItem
	Cursor    int
	Confirmed bool
	Canceled  bool
	keys      PurgeKeyMap
	theme     *Theme
}

// PurgeKeyMap defines keybindings for purge modal.
type PurgeKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultPurgeKeyMap returns default keybindings.
func DefaultPurgeKeyMap() PurgeKeyMap {
	return PurgeKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
	}
}

// NewPurge creates a purge modal. Existing targets start selected.
func NewPurge(theme *Theme, targets []entity.PurgeTarget) PurgeModel {
	items := make([]PurgeItem, 0, len(targets))
	for _, t := range targets {
		items = append(items, PurgeItem{PurgeTarget: t, Selected: t.Exists})
	}

	m := PurgeModel{Items: items, keys: DefaultPurgeKeyMap(), theme: theme}
	m.Cursor = m.firstSelectableIndex()
	return m
}

// Update handles a key press.
func (m PurgeModel) Update(msg tea.Msg) (PurgeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggleCurrent()
	case key.Matches(keyMsg, m.keys.ToggleAll):
		m.toggleAll()
	case key.Matches(keyMsg, m.keys.Confirm):
		m.Confirmed = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.Canceled = true
	}
	return m, nil
}

// moveCursor steps through existing targets only, wrapping at both ends.
func (m *PurgeModel) moveCursor(delta int) {
	var selectable []int
	for i, it := range m.Items {
		if it.Exists {
			selectable = append(selectable, i)
		}
	}
	if len(selectable) == 0 {
		return
	}

	current := 0
	for i, idx := range selectable {
		if idx == m.Cursor {
			current = i
			break
		}
	}
	next := (current + delta + len(selectable)) % len(selectable)
	m.Cursor = selectable[next]
}

func (m PurgeModel) firstSelectableIndex() int {
	for i, it := range m.Items {
		if it.Exists {
			return i
		}
	}
	return 0
}

func (m *PurgeModel) toggleCurrent() {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) || !m.Items[m.Cursor].Exists {
		return
	}
	m.Items[m.Cursor].Selected = !m.Items[m.Cursor].Selected
}

// toggleAll selects every existing target, or clears them all when all are
// already selected.
func (m *PurgeModel) toggleAll() {
	anyUnselected := false
	for _, it := range m.Items {
		if it.Exists && !it.Selected {
			anyUnselected = true
			break
		}
	}
	for i := range m.Items {
		if m.Items[i].Exists {
			m.Items[i].Selected = anyUnselected
		}
	}
}

// View renders the modal.
func (m PurgeModel) View() string {
	t := m.theme

	rows := make([]string, 0, len(m.Items))
	for i, it := range m.Items {
		rows = append(rows, m.renderItemRow(i, it))
	}

	summary := t.Subtle.Render("0 selected")
	if n := m.SelectedCount(); n > 0 {
		summary = lipgloss.JoinHorizontal(lipgloss.Left,
			t.WarningStyle.Render(IconWarning),
			" ",
			t.Subtle.Render(fmt.Sprintf("%d selected (%s)", n, FormatSize(m.SelectedSize()))),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(IconTrash+" Purge"),
		t.Subtle.Render("Select what to remove"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		summary,
		"",
		t.Subtle.Render("↑/↓ j/k move • space toggle • a all • enter • esc"),
	)
	return t.Box.Render(content)
}

func (m PurgeModel) renderItemRow(i int, it PurgeItem) string {
	t := m.theme

	cursor := "  "
	if i == m.Cursor {
		cursor = iconCursor + " "
	}
	checkbox := iconCheckboxEmpty
	if it.Selected {
		checkbox = iconCheckboxChecked
	}

	accent := lipgloss.NewStyle().Foreground(t.Accent)
	cursorStyle, checkboxStyle, labelStyle := accent, accent, t.Normal
	tail := t.Subtle.Render(FormatSize(it.Size))
	if !it.Exists {
		checkbox = iconCheckboxEmpty
		cursorStyle, checkboxStyle, labelStyle = t.Subtle, t.Subtle, t.Subtle
		tail = t.Subtle.Render("(not found)")
	}

	const labelPadWidth = 12
	return lipgloss.JoinHorizontal(lipgloss.Left,
		cursorStyle.Render(cursor),
		checkboxStyle.Render(checkbox),
		" ",
		labelStyle.Render(padRight(purgeLabel(it.Type), labelPadWidth)),
		t.Subtle.Render(it.Path),
		" ",
		tail,
	)
}

func purgeLabel(t entity.PurgeTargetType) string {
	switch t {
	case entity.PurgeTargetConfig:
		return IconConfig + " Config"
	case entity.PurgeTargetData:
		return IconDatabase + " Data"
	case entity.PurgeTargetState:
		return IconLogs + " State"
	default:
		return "Item"
	}
}

func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// FormatSize renders a byte count with a binary unit.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// Done returns true if the modal is complete.
func (m PurgeModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// SelectedTypes returns the selected target types in list order.
func (m PurgeModel) SelectedTypes() []entity.PurgeTargetType {
	var out []entity.PurgeTargetType
	for _, it := range m.Items {
		if it.Exists && it.Selected {
			out = append(out, it.Type)
		}
	}
	return out
}

// SelectedCount returns the number of selected targets.
func (m PurgeModel) SelectedCount() int {
	return len(m.SelectedTypes())
}

// SelectedSize returns the total size of selected targets.
func (m PurgeModel) SelectedSize() int64 {
	var total int64
	for _, it := range m.Items {
		if it.Exists && it.Selected {
			total += it.Size
		}
	}
	return total
}

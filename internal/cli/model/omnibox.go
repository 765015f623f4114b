// Package model provides Bubble Tea models for the orbit TUI.
package model

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/cli/styles"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/domain/query"
	"github.com/bnema/orbit/internal/domain/quote"
	"github.com/bnema/orbit/internal/infrastructure/config"
	"github.com/bnema/orbit/internal/infrastructure/quotes"
	"github.com/bnema/orbit/internal/logging"
)

const (
	maxContentWidth = 80
	clockInterval   = time.Minute
)

// BookmarkSource reloads the stored bookmark list.
type BookmarkSource interface {
	Refresh(ctx context.Context) ([]*entity.Bookmark, error)
}

// DataTransfer exports and imports the export document.
type DataTransfer interface {
	BuildDocument(ctx context.Context) (*entity.ExportDocument, error)
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) (usecase.ImportOutput, error)
	ImportDocument(ctx context.Context, doc *entity.ExportDocument) (usecase.ImportOutput, error)
}

// Resetter restores default bookmarks and settings.
type Resetter interface {
	Execute(ctx context.Context, confirmed bool) error
}

// TextCopier puts text on the clipboard.
type TextCopier interface {
	Copy(ctx context.Context, text string) error
}

// OmniboxConfig holds the dependencies of the start page model.
type OmniboxConfig struct {
	Bookmarks BookmarkSource
	Transfer  DataTransfer
	Store     port.ExportStore
	Reset     Resetter
	Copier    TextCopier
	Transport port.SuggestionTransport
	Navigator port.Navigator

	Resolver   usecase.ResolverConfig
	Appearance config.AppearanceConfig
	ExportPath string
	ConfigPath string

	// Editor builds the command used by :config and :bookmark.
	Editor func(path string) *exec.Cmd
	// TempDir receives the file edited by :bookmark. Empty means os.TempDir.
	TempDir string

	// BookmarkChanges and ConfigChanges are optional change feeds.
	BookmarkChanges <-chan struct{}
	ConfigChanges   <-chan *config.Config

	Now func() time.Time
}

// Omnibox is the start page: a greeting header, the input and the active
// result set.
type Omnibox struct {
	// UI components
	input   textinput.Model
	help    help.Model
	keys    styles.OmniboxKeyMap
	confirm *styles.ConfirmModel

	// State
	resolver   *usecase.ResolveQueryUseCase
	dispatcher *usecase.DispatchCommandUseCase
	effects    []tea.Cmd
	showHelp   bool
	status     string
	statusErr  bool
	clock      time.Time
	quotes     quote.Rotation
	quoteSeq   int
	width      int
	height     int
	appearance config.AppearanceConfig
	pick       func(n int) int

	// Dependencies
	ctx   context.Context
	cfg   OmniboxConfig
	theme *styles.Theme
}

// NewOmnibox creates the start page model with the builtin commands registered.
func NewOmnibox(ctx context.Context, theme *styles.Theme, cfg OmniboxConfig) *Omnibox {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	input := styles.NewOmniboxInput(theme)
	input.Focus()

	m := &Omnibox{
		input:      input,
		help:       styles.NewStyledHelp(theme),
		keys:       styles.DefaultOmniboxKeyMap(),
		dispatcher: usecase.NewDispatchCommandUseCase(),
		clock:      cfg.Now(),
		width:      maxContentWidth,
		height:     24,
		appearance: cfg.Appearance,
		pick:       rand.IntN,
		ctx:        logging.WithComponent(ctx, "omnibox"),
		cfg:        cfg,
		theme:      theme,
	}
	m.quotes = quote.NewRotation(nil, m.pick(len(quote.Defaults)))
	m.registerCommands()
	m.resolver = usecase.NewResolveQueryUseCase(m.dispatcher, cfg.Transport, cfg.Navigator, cfg.Resolver)
	return m
}

// bookmarksLoadedMsg carries a refreshed bookmark snapshot.
type bookmarksLoadedMsg struct {
	bookmarks []*entity.Bookmark
	err       error
}

// bookmarksChangedMsg is sent when the store changed on disk.
type bookmarksChangedMsg struct{}

// configChangedMsg carries a reloaded configuration.
type configChangedMsg struct {
	cfg *config.Config
}

// suggestionsMsg carries a finished suggestion lookup.
type suggestionsMsg struct {
	result port.SuggestionResult
}

// clockMsg refreshes the greeting.
type clockMsg time.Time

// quotesLoadedMsg carries the quote list read from appearance.quote_file.
type quotesLoadedMsg struct {
	quotes []string
	err    error
}

// quoteMsg rotates the quote. Ticks from an older schedule carry a stale seq.
type quoteMsg struct {
	seq int
}

// Init implements tea.Model.
func (m *Omnibox) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadBookmarks(),
		waitForBookmarkChange(m.cfg.BookmarkChanges),
		waitForConfigChange(m.cfg.ConfigChanges),
		tickClock(),
		m.initialQuotes(),
		m.tickQuote(),
	)
}

// initialQuotes reads the configured quote source. The builtin list is
// already in place when none is set.
func (m *Omnibox) initialQuotes() tea.Cmd {
	if m.appearance.QuoteFile == "" {
		return nil
	}
	return m.loadQuotes()
}

// Update implements tea.Model.
func (m *Omnibox) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m, m.handleConfirm(keyMsg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = m.contentWidth() - lipgloss.Width(m.input.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.FocusMsg:
		return m, m.loadBookmarks()

	case bookmarksLoadedMsg:
		if msg.err != nil {
			logging.FromContext(m.ctx).Error().Err(msg.err).Msg("bookmark refresh failed")
			m.setError(msg.err)
			return m, nil
		}
		m.resolver.SetBookmarks(msg.bookmarks)
		return m, nil

	case bookmarksChangedMsg:
		logging.FromContext(m.ctx).Debug().Msg("bookmark store changed")
		return m, tea.Batch(m.loadBookmarks(), waitForBookmarkChange(m.cfg.BookmarkChanges))

	case configChangedMsg:
		cmd := m.applyConfig(msg.cfg)
		return m, tea.Batch(cmd, waitForConfigChange(m.cfg.ConfigChanges))

	case suggestionsMsg:
		m.resolver.ApplySuggestions(m.ctx, msg.result, m.input.Value())
		return m, nil

	case clockMsg:
		m.clock = time.Time(msg)
		return m, tickClock()

	case quotesLoadedMsg:
		if msg.err != nil {
			logging.FromContext(m.ctx).Warn().Err(msg.err).Msg("quote file unusable, using builtin quotes")
			m.setError(msg.err)
			msg.quotes = nil
		}
		n := len(msg.quotes)
		if n == 0 {
			n = len(quote.Defaults)
		}
		m.quotes = quote.NewRotation(msg.quotes, m.pick(n))
		return m, nil

	case quoteMsg:
		if msg.seq != m.quoteSeq {
			return m, nil
		}
		m.quotes = m.quotes.Next()
		return m, m.tickQuote()

	case editorFinishedMsg:
		return m, m.handleEditorFinished(msg)

	case bookmarkEditReadyMsg:
		return m, m.handleBookmarkEditReady(msg)

	case transferDoneMsg:
		return m, m.handleTransferDone(msg)

	case resetDoneMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.resolver.Clear()
		m.input.SetValue("")
		m.setStatus("settings and bookmarks reset")
		return m, m.loadBookmarks()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Omnibox) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.resolver.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil

	case key.Matches(msg, m.keys.NextQuote):
		if m.appearance.QuoteInterval <= 0 {
			return nil
		}
		m.quotes = m.quotes.Next()
		return m.restartQuoteTimer()

	case key.Matches(msg, m.keys.Clear):
		if m.showHelp {
			m.showHelp = false
			return nil
		}
		m.resolver.Clear()
		m.input.SetValue("")
		m.clearStatus()
		return nil

	case key.Matches(msg, m.keys.Up):
		m.resolver.MoveSelection(query.Up)
		return nil

	case key.Matches(msg, m.keys.Down):
		m.resolver.MoveSelection(query.Down)
		return nil

	case key.Matches(msg, m.keys.Open):
		return m.commit()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}
	m.clearStatus()
	return tea.Batch(cmd, m.resolve())
}

// resolve feeds the current input to the resolver and wraps a remote
// lookup, if one was started, as a command.
func (m *Omnibox) resolve() tea.Cmd {
	lookup := m.resolver.Resolve(m.ctx, m.input.Value())
	if lookup == nil {
		return nil
	}
	return func() tea.Msg {
		return suggestionsMsg{result: lookup()}
	}
}

func (m *Omnibox) commit() tea.Cmd {
	out := m.resolver.Commit(m.ctx)

	switch out.Kind {
	case usecase.CommitNavigate:
		if out.Err != nil {
			m.setError(out.Err)
			return nil
		}
		m.resolver.Clear()
		m.input.SetValue("")
		m.setStatus("opened " + out.URL)
		return nil

	case usecase.CommitCommand:
		if !m.resolver.ShowingAll() {
			m.resolver.Clear()
		}
		m.input.SetValue(m.resolver.Input())
		return m.drainEffects()
	}
	return nil
}

func (m *Omnibox) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !confirm.Done() {
		return cmd
	}
	m.confirm = nil
	if !confirm.Result() {
		m.setStatus("reset cancelled")
		return cmd
	}
	return tea.Batch(cmd, m.resetData())
}

func (m *Omnibox) applyConfig(cfg *config.Config) tea.Cmd {
	if cfg == nil {
		return nil
	}
	logging.FromContext(m.ctx).Debug().Msg("applying reloaded config")

	prev := m.appearance

	m.resolver.SetConfig(usecase.ResolverConfig{
		SearchEngine:       cfg.SearchEngine,
		SuggestionsEnabled: cfg.Suggestions.Enabled,
	})
	m.appearance = cfg.Appearance
	m.theme = styles.NewTheme(cfg)

	value, pos := m.input.Value(), m.input.Position()
	width := m.input.Width
	m.input = styles.NewOmniboxInput(m.theme)
	m.input.Width = width
	m.input.SetValue(value)
	m.input.SetCursor(pos)
	m.input.Focus()

	helpWidth := m.help.Width
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = helpWidth

	var cmds []tea.Cmd
	if cfg.Appearance.QuoteFile != prev.QuoteFile {
		cmds = append(cmds, m.loadQuotes())
	}
	if cfg.Appearance.QuoteInterval != prev.QuoteInterval {
		cmds = append(cmds, m.restartQuoteTimer())
	}
	return tea.Batch(cmds...)
}

func (m *Omnibox) loadQuotes() tea.Cmd {
	ctx, source := m.ctx, m.appearance.QuoteFile
	return func() tea.Msg {
		list, err := quotes.Load(ctx, source)
		return quotesLoadedMsg{quotes: list, err: err}
	}
}

// restartQuoteTimer drops the pending rotation tick and schedules a new one.
func (m *Omnibox) restartQuoteTimer() tea.Cmd {
	m.quoteSeq++
	return m.tickQuote()
}

func (m *Omnibox) tickQuote() tea.Cmd {
	minutes := m.appearance.QuoteInterval
	if minutes <= 0 {
		return nil
	}
	seq := m.quoteSeq
	return tea.Tick(time.Duration(minutes)*time.Minute, func(time.Time) tea.Msg {
		return quoteMsg{seq: seq}
	})
}

func (m *Omnibox) loadBookmarks() tea.Cmd {
	if m.cfg.Bookmarks == nil {
		return nil
	}
	ctx, source := m.ctx, m.cfg.Bookmarks
	return func() tea.Msg {
		bookmarks, err := source.Refresh(ctx)
		return bookmarksLoadedMsg{bookmarks: bookmarks, err: err}
	}
}

func waitForBookmarkChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return bookmarksChangedMsg{}
	}
}

func waitForConfigChange(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configChangedMsg{cfg: cfg}
	}
}

func tickClock() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func (m *Omnibox) setStatus(text string) {
	m.status, m.statusErr = text, false
}

func (m *Omnibox) setError(err error) {
	m.status, m.statusErr = fmt.Sprintf("Error: %v", err), true
}

func (m *Omnibox) clearStatus() {
	m.status, m.statusErr = "", false
}

func (m *Omnibox) contentWidth() int {
	w := m.width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Input returns the current input text.
func (m *Omnibox) Input() string { return m.input.Value() }

// Results returns the visible result set.
func (m *Omnibox) Results() query.ResultSet { return m.resolver.Results() }

// Cursor returns the selected row.
func (m *Omnibox) Cursor() int { return m.resolver.Cursor() }

// Close cancels any in-flight lookup.
func (m *Omnibox) Close() { m.resolver.Close() }

var _ tea.Model = (*Omnibox)(nil)

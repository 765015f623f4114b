package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/application/port/mocks"
	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/cli/styles"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/domain/query"
	"github.com/bnema/orbit/internal/domain/quote"
	"github.com/bnema/orbit/internal/infrastructure/config"
)

type fakeBookmarks struct {
	items []*entity.Bookmark
	err   error
	calls int
}

func (f *fakeBookmarks) Refresh(context.Context) ([]*entity.Bookmark, error) {
	f.calls++
	return f.items, f.err
}

type fakeTransfer struct {
	exported []string
	imported []string
	output   usecase.ImportOutput
	err      error
}

func (f *fakeTransfer) BuildDocument(context.Context) (*entity.ExportDocument, error) {
	return &entity.ExportDocument{Version: entity.ExportVersion}, f.err
}

func (f *fakeTransfer) Export(_ context.Context, path string) error {
	f.exported = append(f.exported, path)
	return f.err
}

func (f *fakeTransfer) Import(_ context.Context, path string) (usecase.ImportOutput, error) {
	f.imported = append(f.imported, path)
	return f.output, f.err
}

func (f *fakeTransfer) ImportDocument(context.Context, *entity.ExportDocument) (usecase.ImportOutput, error) {
	return f.output, f.err
}

type fakeResetter struct {
	confirmed []bool
}

func (f *fakeResetter) Execute(_ context.Context, confirmed bool) error {
	f.confirmed = append(f.confirmed, confirmed)
	return nil
}

type fakeCopier struct {
	copied []string
	err    error
}

func (f *fakeCopier) Copy(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

type omniboxFixture struct {
	model     *Omnibox
	bookmarks *fakeBookmarks
	transfer  *fakeTransfer
	reset     *fakeResetter
	copier    *fakeCopier
	navigator *mocks.MockNavigator
}

func newOmniboxFixture(t *testing.T) *omniboxFixture {
	t.Helper()

	f := &omniboxFixture{
		bookmarks: &fakeBookmarks{items: entity.DefaultBookmarks()},
		transfer:  &fakeTransfer{},
		reset:     &fakeResetter{},
		copier:    &fakeCopier{},
		navigator: mocks.NewMockNavigator(t),
	}

	cfg := config.DefaultConfig()
	f.model = NewOmnibox(context.Background(), styles.NewTheme(cfg), OmniboxConfig{
		Bookmarks:  f.bookmarks,
		Transfer:   f.transfer,
		Reset:      f.reset,
		Copier:     f.copier,
		Transport:  mocks.NewMockSuggestionTransport(t),
		Navigator:  f.navigator,
		Resolver:   usecase.ResolverConfig{SearchEngine: cfg.SearchEngine, SuggestionsEnabled: true},
		Appearance: cfg.Appearance,
		ExportPath: t.TempDir() + "/orbit-export.json",
		Now:        func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) },
	})

	f.send(bookmarksLoadedMsg{bookmarks: f.bookmarks.items})
	return f
}

func (f *omniboxFixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.model.Update(msg)
	return cmd
}

func (f *omniboxFixture) typeText(text string) {
	for _, r := range text {
		f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (f *omniboxFixture) press(k tea.KeyType) tea.Cmd {
	return f.send(tea.KeyMsg{Type: k})
}

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestOmnibox_TypingFiltersBookmarks(t *testing.T) {
	f := newOmniboxFixture(t)

	f.typeText("git")

	rs, ok := f.model.Results().(query.Bookmarks)
	require.True(t, ok, "expected bookmark results, got %T", f.model.Results())
	require.Len(t, rs.Items, 1)
	assert.Equal(t, "GitHub", rs.Items[0].Name)
}

func TestOmnibox_CommandPrefixListsCommands(t *testing.T) {
	f := newOmniboxFixture(t)

	f.typeText(":")

	rs, ok := f.model.Results().(query.Commands)
	require.True(t, ok)
	assert.Len(t, rs.Items, len(entity.BuiltinCommands()))
}

func TestOmnibox_EnterOpensSelectedBookmark(t *testing.T) {
	f := newOmniboxFixture(t)
	f.navigator.EXPECT().Navigate(mock.Anything, "https://github.com").Return(nil).Once()

	f.typeText("git")
	f.press(tea.KeyEnter)

	assert.Empty(t, f.model.Input())
	assert.Equal(t, 0, f.model.Results().Len())
	assert.Contains(t, f.model.View(), "opened https://github.com")
}

func TestOmnibox_NavigationFailureIsShown(t *testing.T) {
	f := newOmniboxFixture(t)
	f.navigator.EXPECT().Navigate(mock.Anything, "https://github.com").Return(errors.New("no opener")).Once()

	f.typeText("git")
	f.press(tea.KeyEnter)

	assert.True(t, f.model.statusErr)
	assert.Contains(t, f.model.status, "no opener")
}

func TestOmnibox_SuggestionsAppliedOnlyWhenCurrent(t *testing.T) {
	f := newOmniboxFixture(t)

	f.typeText("weather")
	epoch := f.model.resolver.Epoch()
	require.NotZero(t, epoch)

	f.send(suggestionsMsg{result: port.SuggestionResult{
		Query: "weather", Epoch: epoch - 1, Suggestions: []string{"stale"},
	}})
	assert.Equal(t, 0, f.model.Results().Len())

	f.send(suggestionsMsg{result: port.SuggestionResult{
		Query: "weather", Epoch: epoch, Suggestions: []string{"weather today", "weather radar"},
	}})
	rs, ok := f.model.Results().(query.RemoteSuggestions)
	require.True(t, ok)
	assert.Equal(t, []string{"weather today", "weather radar"}, rs.Items)
}

func TestOmnibox_ArrowKeysMoveSelection(t *testing.T) {
	f := newOmniboxFixture(t)
	f.typeText(":")

	f.press(tea.KeyDown)
	f.press(tea.KeyDown)
	assert.Equal(t, 2, f.model.Cursor())

	f.press(tea.KeyUp)
	assert.Equal(t, 1, f.model.Cursor())
}

func TestOmnibox_ListCommandShowsAllBookmarks(t *testing.T) {
	f := newOmniboxFixture(t)

	f.typeText(":list")
	f.press(tea.KeyEnter)

	assert.Empty(t, f.model.Input())
	assert.True(t, f.model.resolver.ShowingAll())
	rs, ok := f.model.Results().(query.Bookmarks)
	require.True(t, ok)
	assert.Len(t, rs.Items, len(f.bookmarks.items))
	assert.Contains(t, f.model.View(), "all bookmarks")
}

func TestOmnibox_EscapeClosesHelpBeforeClearing(t *testing.T) {
	f := newOmniboxFixture(t)
	f.typeText(":list")
	f.press(tea.KeyEnter)
	f.press(tea.KeyF1)
	require.True(t, f.model.showHelp)

	f.press(tea.KeyEsc)
	assert.False(t, f.model.showHelp)
	assert.True(t, f.model.resolver.ShowingAll(), "first escape only closes help")

	f.press(tea.KeyEsc)
	assert.False(t, f.model.resolver.ShowingAll())
	assert.Equal(t, 0, f.model.Results().Len())
}

func TestOmnibox_CtrlHDeletesInsteadOfTogglingHelp(t *testing.T) {
	f := newOmniboxFixture(t)
	f.typeText("abc")

	f.press(tea.KeyCtrlH)

	assert.False(t, f.model.showHelp)
	assert.Equal(t, "ab", f.model.Input())
}

func TestOmnibox_HelpCommandTogglesOverlay(t *testing.T) {
	f := newOmniboxFixture(t)

	f.typeText(":help")
	f.press(tea.KeyEnter)

	require.True(t, f.model.showHelp)
	view := f.model.View()
	assert.Contains(t, view, entity.CommandReset)
	assert.Contains(t, view, "Commands")
}

func TestOmnibox_ResetNeedsConfirmation(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		f := newOmniboxFixture(t)
		f.typeText(":reset")
		f.press(tea.KeyEnter)
		require.NotNil(t, f.model.confirm)

		cmd := f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

		assert.Nil(t, f.model.confirm)
		assert.Empty(t, runCmd(cmd))
		assert.Empty(t, f.reset.confirmed)
		assert.Equal(t, "reset cancelled", f.model.status)
	})

	t.Run("confirmed", func(t *testing.T) {
		f := newOmniboxFixture(t)
		f.typeText(":reset")
		f.press(tea.KeyEnter)

		cmd := f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
		msgs := runCmd(cmd)
		require.Len(t, msgs, 1)
		assert.Equal(t, []bool{true}, f.reset.confirmed)

		refresh := f.send(msgs[0])
		assert.Equal(t, "settings and bookmarks reset", f.model.status)
		assert.NotEmpty(t, runCmd(refresh))
	})
}

func TestOmnibox_ExportCopiesPath(t *testing.T) {
	f := newOmniboxFixture(t)

	f.typeText(":export")
	msgs := runCmd(f.press(tea.KeyEnter))
	require.Len(t, msgs, 1)
	f.send(msgs[0])

	path := f.model.cfg.ExportPath
	assert.Equal(t, []string{path}, f.transfer.exported)
	assert.Equal(t, []string{path}, f.copier.copied)
	assert.Contains(t, f.model.status, "path copied")
}

func TestOmnibox_ExportWithoutClipboard(t *testing.T) {
	f := newOmniboxFixture(t)
	f.copier.err = errors.New("clipboard unavailable")

	f.typeText(":export")
	msgs := runCmd(f.press(tea.KeyEnter))
	require.Len(t, msgs, 1)
	f.send(msgs[0])

	assert.False(t, f.model.statusErr)
	assert.NotContains(t, f.model.status, "copied")
}

func TestOmnibox_ImportReloadsBookmarks(t *testing.T) {
	f := newOmniboxFixture(t)
	f.transfer.output = usecase.ImportOutput{Bookmarks: 3, BookmarksLoaded: true, SettingsApplied: true}

	f.typeText(":import")
	msgs := runCmd(f.press(tea.KeyEnter))
	require.Len(t, msgs, 1)

	before := f.bookmarks.calls
	refresh := f.send(msgs[0])
	assert.Equal(t, "imported 3 bookmarks and settings", f.model.status)

	loaded := runCmd(refresh)
	require.Len(t, loaded, 1)
	assert.IsType(t, bookmarksLoadedMsg{}, loaded[0])
	assert.Equal(t, before+1, f.bookmarks.calls)
}

func TestOmnibox_ImportFailureIsShown(t *testing.T) {
	f := newOmniboxFixture(t)
	f.transfer.err = usecase.ErrInvalidBookmark

	f.typeText(":import")
	msgs := runCmd(f.press(tea.KeyEnter))
	require.Len(t, msgs, 1)
	f.send(msgs[0])

	assert.True(t, f.model.statusErr)
	assert.Contains(t, f.model.status, "invalid bookmark")
}

func TestOmnibox_ConfigEditorMissing(t *testing.T) {
	f := newOmniboxFixture(t)

	f.typeText(":config")
	cmd := f.press(tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.True(t, f.model.statusErr)
}

func TestOmnibox_FocusRefreshesBookmarks(t *testing.T) {
	f := newOmniboxFixture(t)
	f.bookmarks.items = []*entity.Bookmark{entity.NewBookmark("Go", "https://go.dev", "lang")}

	msgs := runCmd(f.send(tea.FocusMsg{}))
	require.Len(t, msgs, 1)
	f.send(msgs[0])

	f.typeText("go.dev")
	rs, ok := f.model.Results().(query.Bookmarks)
	require.True(t, ok)
	require.Len(t, rs.Items, 1)
	assert.Equal(t, "Go", rs.Items[0].Name)
}

func TestOmnibox_ConfigChangeUpdatesSearch(t *testing.T) {
	f := newOmniboxFixture(t)
	f.navigator.EXPECT().Navigate(mock.Anything, "https://duckduckgo.com/?q=zzz").Return(nil).Once()

	cfg := config.DefaultConfig()
	cfg.SearchEngine = "https://duckduckgo.com/?q="
	cfg.Suggestions.Enabled = false
	cfg.Appearance.UserName = "nova"
	f.send(configChangedMsg{cfg: cfg})

	f.typeText("zzz")
	assert.Zero(t, f.model.resolver.Epoch(), "suggestions are disabled")
	assert.Contains(t, f.model.View(), "nova")

	f.press(tea.KeyEnter)
}

func TestWaitForBookmarkChange(t *testing.T) {
	assert.Nil(t, waitForBookmarkChange(nil))

	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	assert.IsType(t, bookmarksChangedMsg{}, waitForBookmarkChange(ch)())

	close(ch)
	assert.Nil(t, waitForBookmarkChange(ch)())
}

func TestWaitForConfigChange(t *testing.T) {
	assert.Nil(t, waitForConfigChange(nil))

	ch := make(chan *config.Config, 1)
	ch <- config.DefaultConfig()
	msg, ok := waitForConfigChange(ch)().(configChangedMsg)
	require.True(t, ok)
	assert.NotNil(t, msg.cfg)
}

func TestOmnibox_ViewShowsHeader(t *testing.T) {
	f := newOmniboxFixture(t)

	view := f.model.View()
	assert.Contains(t, view, "Orbit")
	assert.Contains(t, view, "good morning")
	assert.Contains(t, view, "axis")
}

func TestOmnibox_QuitCancelsPendingLookup(t *testing.T) {
	f := newOmniboxFixture(t)
	f.typeText("weather")

	cmd := f.press(tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOmnibox_QuoteRotation(t *testing.T) {
	f := newOmniboxFixture(t)
	f.model.pick = func(int) int { return 0 }
	f.send(quotesLoadedMsg{quotes: []string{"alpha", "beta"}})
	require.Contains(t, f.model.View(), "alpha")

	stale := quoteMsg{seq: f.model.quoteSeq}
	cmd := f.press(tea.KeyF2)
	assert.NotNil(t, cmd, "manual skip restarts the rotation timer")
	assert.Equal(t, "beta", f.model.quotes.Current())
	assert.Equal(t, "", f.model.Input())

	f.send(stale)
	assert.Equal(t, "beta", f.model.quotes.Current(), "tick from the old schedule is ignored")

	f.send(quoteMsg{seq: f.model.quoteSeq})
	assert.Equal(t, "alpha", f.model.quotes.Current())
	assert.Contains(t, f.model.View(), "alpha")
}

func TestOmnibox_QuoteFileFromConfig(t *testing.T) {
	f := newOmniboxFixture(t)
	f.model.pick = func(int) int { return 1 }

	cfg := config.DefaultConfig()
	cfg.Appearance.QuoteFile = "first quote\nsecond quote"
	for _, msg := range runCmd(f.send(configChangedMsg{cfg: cfg})) {
		f.send(msg)
	}

	assert.Equal(t, 2, f.model.quotes.Len())
	assert.Contains(t, f.model.View(), "second quote")
}

func TestOmnibox_UnreadableQuoteFileFallsBack(t *testing.T) {
	f := newOmniboxFixture(t)

	f.send(quotesLoadedMsg{err: errors.New("read quote file: no such file")})

	assert.True(t, f.model.statusErr)
	assert.Equal(t, len(quote.Defaults), f.model.quotes.Len())
}

func TestOmnibox_ZeroQuoteIntervalHidesQuote(t *testing.T) {
	f := newOmniboxFixture(t)
	f.model.pick = func(int) int { return 0 }
	f.send(quotesLoadedMsg{quotes: []string{"hidden wisdom"}})

	cfg := config.DefaultConfig()
	cfg.Appearance.QuoteInterval = 0
	cmd := f.send(configChangedMsg{cfg: cfg})

	assert.Empty(t, runCmd(cmd), "no rotation is scheduled")
	assert.NotContains(t, f.model.View(), "hidden wisdom")

	f.press(tea.KeyF2)
	assert.Equal(t, "hidden wisdom", f.model.quotes.Current())
}

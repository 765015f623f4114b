package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/domain/query"
	domainurl "github.com/bnema/orbit/internal/domain/url"
	"github.com/bnema/orbit/internal/logging"
)

// Lookup performs one remote suggestion request. It blocks, so callers run
// it off the UI loop and hand the result back to ApplySuggestions.
type Lookup func() port.SuggestionResult

// ResolverConfig holds the settings the resolver reads on every keystroke.
type ResolverConfig struct {
	SearchEngine       string
	SuggestionsEnabled bool
}

// ResolveQueryUseCase turns omnibox input into the active result set.
//
// It owns the result set, the selection cursor and the request epoch. All
// methods must be called from one goroutine (the UI loop); only the Lookup
// it hands out runs elsewhere, and its result is gated on the epoch and the
// live input before it is applied.
type ResolveQueryUseCase struct {
	dispatcher *DispatchCommandUseCase
	transport  port.SuggestionTransport
	navigator  port.Navigator
	cfg        ResolverConfig

	bookmarks []*entity.Bookmark
	input     string
	results   query.ResultSet
	cursor    query.Cursor
	showAll   bool

	epoch         uint64
	cancelPending context.CancelFunc
}

// NewResolveQueryUseCase creates a resolver in the idle state.
func NewResolveQueryUseCase(
	dispatcher *DispatchCommandUseCase,
	transport port.SuggestionTransport,
	navigator port.Navigator,
	cfg ResolverConfig,
) *ResolveQueryUseCase {
	return &ResolveQueryUseCase{
		dispatcher: dispatcher,
		transport:  transport,
		navigator:  navigator,
		cfg:        cfg,
		results:    query.Empty{},
	}
}

// Results returns the active result set.
func (uc *ResolveQueryUseCase) Results() query.ResultSet { return uc.results }

// Cursor returns the selection index into Results.
func (uc *ResolveQueryUseCase) Cursor() int { return int(uc.cursor) }

// Input returns the text the resolver last saw or set.
func (uc *ResolveQueryUseCase) Input() string { return uc.input }

// Epoch returns the current request epoch.
func (uc *ResolveQueryUseCase) Epoch() uint64 { return uc.epoch }

// ShowingAll reports whether empty input lists every bookmark.
func (uc *ResolveQueryUseCase) ShowingAll() bool { return uc.showAll }

// SetConfig swaps the search settings, typically after a config reload.
func (uc *ResolveQueryUseCase) SetConfig(cfg ResolverConfig) { uc.cfg = cfg }

// SetBookmarks replaces the bookmark snapshot. The visible result set is only
// recomputed in show-all mode; other views pick the snapshot up on the next
// keystroke.
func (uc *ResolveQueryUseCase) SetBookmarks(bookmarks []*entity.Bookmark) {
	snapshot := make([]*entity.Bookmark, len(bookmarks))
	copy(snapshot, bookmarks)
	uc.bookmarks = snapshot

	if uc.showAll && query.Classify(uc.input) == query.ModeEmpty {
		uc.replace(query.Bookmarks{Items: uc.bookmarks})
	}
}

// Resolve handles a text change. It synchronously replaces the result set
// and returns a Lookup when a remote suggestion request should start, or nil.
func (uc *ResolveQueryUseCase) Resolve(ctx context.Context, text string) Lookup {
	log := logging.FromContext(ctx)
	uc.input = text

	mode := query.Classify(text)
	log.Trace().Str("mode", mode.String()).Msg("resolving input")

	switch mode {
	case query.ModeEmpty:
		uc.cancel()
		if uc.showAll {
			uc.replace(query.Bookmarks{Items: uc.bookmarks})
		} else {
			uc.replace(query.Empty{})
		}
		return nil

	case query.ModeCommand:
		uc.cancel()
		uc.showAll = false
		uc.replace(query.Commands{Items: query.MatchCommands(uc.dispatcher.Commands(), text)})
		return nil
	}

	trimmed := strings.TrimSpace(text)
	matches := query.MatchBookmarks(uc.bookmarks, trimmed)
	uc.replace(query.Bookmarks{Items: matches})

	if len(matches) > 0 {
		uc.cancel()
		return nil
	}

	if domainurl.LooksLikeURL(trimmed) {
		uc.cancel()
		uc.replace(query.Empty{})
		return nil
	}

	if !uc.cfg.SuggestionsEnabled || uc.transport == nil {
		uc.cancel()
		return nil
	}

	return uc.startLookup(ctx, trimmed)
}

// startLookup bumps the epoch, supersedes the previous request and returns
// the new one.
func (uc *ResolveQueryUseCase) startLookup(ctx context.Context, text string) Lookup {
	uc.cancel()
	uc.epoch++

	req := port.SuggestionRequest{Query: text, Epoch: uc.epoch}
	lookupCtx, cancel := context.WithCancel(logging.WithEpoch(ctx, req.Epoch))
	uc.cancelPending = cancel

	logging.FromContext(lookupCtx).Debug().Str("query", text).Msg("requesting suggestions")

	transport := uc.transport
	return func() port.SuggestionResult {
		return transport.Suggest(lookupCtx, req)
	}
}

// ApplySuggestions installs a lookup result if it is still wanted: its epoch
// must be the current one and liveInput, trimmed and lower-cased, must still
// equal the request text. Returns whether the result was applied.
func (uc *ResolveQueryUseCase) ApplySuggestions(ctx context.Context, res port.SuggestionResult, liveInput string) bool {
	log := logging.FromContext(ctx).With().Uint64("epoch", res.Epoch).Logger()

	if res.Epoch != uc.epoch {
		log.Debug().Uint64("current_epoch", uc.epoch).Msg("discarding stale suggestions")
		return false
	}

	// The request is settled either way; release its context.
	uc.cancel()

	if errors.Is(res.Err, query.ErrCancelled) {
		log.Debug().Msg("discarding cancelled suggestions")
		return false
	}

	if query.Fold(liveInput) != query.Fold(res.Query) {
		log.Debug().Msg("discarding suggestions for outdated input")
		return false
	}

	if res.Err != nil {
		log.Debug().Err(res.Err).Str("query", res.Query).Msg("suggestion lookup resolved empty")
	}

	uc.replace(query.NewRemoteSuggestions(res.Query, res.Suggestions))
	return true
}

// MoveSelection moves the cursor one step. It is a no-op on an empty set and
// clamps at both ends.
func (uc *ResolveQueryUseCase) MoveSelection(dir query.Direction) {
	uc.cursor = uc.cursor.Move(dir, uc.results.Len())
}

// ShowAll switches to listing every bookmark and clears the input.
func (uc *ResolveQueryUseCase) ShowAll() {
	uc.cancel()
	uc.showAll = true
	uc.input = ""
	uc.replace(query.Bookmarks{Items: uc.bookmarks})
}

// Clear empties the input and the result set and leaves show-all mode.
func (uc *ResolveQueryUseCase) Clear() {
	uc.cancel()
	uc.showAll = false
	uc.input = ""
	uc.replace(query.Empty{})
}

// Close cancels any in-flight lookup.
func (uc *ResolveQueryUseCase) Close() {
	uc.cancel()
}

func (uc *ResolveQueryUseCase) replace(rs query.ResultSet) {
	uc.results = rs
	uc.cursor = 0
}

func (uc *ResolveQueryUseCase) cancel() {
	if uc.cancelPending != nil {
		uc.cancelPending()
		uc.cancelPending = nil
	}
}

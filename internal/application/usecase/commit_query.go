package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/domain/query"
	domainurl "github.com/bnema/orbit/internal/domain/url"
	"github.com/bnema/orbit/internal/logging"
)

// CommitKind tells what a commit did.
type CommitKind int

const (
	// CommitNone means the input produced no action.
	CommitNone CommitKind = iota
	// CommitNavigate means a URL was opened.
	CommitNavigate
	// CommitCommand means a command action ran.
	CommitCommand
)

// CommitOutput describes the outcome of Commit.
type CommitOutput struct {
	Kind    CommitKind
	URL     string
	Command string
	Err     error // navigation failure, if any
}

// Commit resolves the current input and selection into a single action.
//
// Priority, first match wins:
//  1. command matches: dispatch the selected command
//  2. remote suggestions: search for the selected suggestion
//  3. input is exactly a command name: dispatch it
//  4. bookmark matches: open the selected bookmark
//  5. other non-command input: open it if URL-shaped, else search for it
func (uc *ResolveQueryUseCase) Commit(ctx context.Context) CommitOutput {
	log := logging.FromContext(ctx)
	raw := strings.TrimSpace(uc.input)

	switch rs := uc.results.(type) {
	case query.Commands:
		if rs.Len() > 0 {
			cmd := rs.Items[uc.cursor.Clamp(rs.Len())]
			uc.cancel()
			uc.input = cmd.Name
			uc.replace(query.Empty{})
			uc.dispatcher.Execute(ctx, cmd.Name)
			return CommitOutput{Kind: CommitCommand, Command: cmd.Name}
		}
	case query.RemoteSuggestions:
		if rs.Len() > 0 {
			suggestion := rs.Items[uc.cursor.Clamp(rs.Len())]
			return uc.navigate(ctx, domainurl.BuildSearchURL(uc.cfg.SearchEngine, suggestion))
		}
	}

	if uc.dispatcher.Execute(ctx, raw) {
		return CommitOutput{Kind: CommitCommand, Command: raw}
	}

	if rs, ok := uc.results.(query.Bookmarks); ok && rs.Len() > 0 {
		bookmark := rs.Items[uc.cursor.Clamp(rs.Len())]
		return uc.navigate(ctx, domainurl.Normalize(bookmark.URL))
	}

	if raw != "" && !strings.HasPrefix(raw, entity.CommandPrefix) {
		if domainurl.LooksLikeURL(raw) {
			return uc.navigate(ctx, domainurl.Normalize(raw))
		}
		return uc.navigate(ctx, domainurl.BuildSearchURL(uc.cfg.SearchEngine, raw))
	}

	log.Debug().Str("input", raw).Msg("nothing to commit")
	return CommitOutput{Kind: CommitNone}
}

func (uc *ResolveQueryUseCase) navigate(ctx context.Context, target string) CommitOutput {
	ctx = logging.WithURL(ctx, target)
	log := logging.FromContext(ctx)

	uc.cancel()
	out := CommitOutput{Kind: CommitNavigate, URL: target}
	if uc.navigator == nil {
		return out
	}
	if err := uc.navigator.Navigate(ctx, target); err != nil {
		log.Warn().Err(err).Msg("navigation failed")
		out.Err = fmt.Errorf("open %s: %w", target, err)
		return out
	}
	log.Info().Msg("navigated")
	return out
}

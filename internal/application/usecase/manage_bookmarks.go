package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/domain/repository"
	"github.com/bnema/orbit/internal/logging"
)

const refreshKey = "bookmarks"

// ManageBookmarksUseCase handles the stored bookmark list.
type ManageBookmarksUseCase struct {
	repo  repository.BookmarkRepository
	seed  []*entity.Bookmark
	group singleflight.Group
}

// NewManageBookmarksUseCase creates a bookmark use case. seed is the list
// written on first start and by RestoreDefaults; nil means the builtin defaults.
func NewManageBookmarksUseCase(repo repository.BookmarkRepository, seed []*entity.Bookmark) *ManageBookmarksUseCase {
	return &ManageBookmarksUseCase{repo: repo, seed: seed}
}

// AddBookmarkInput contains parameters for adding a bookmark.
type AddBookmarkInput struct {
	Name string
	URL  string
	Tags []string
}

// List returns all bookmarks in list order.
func (uc *ManageBookmarksUseCase) List(ctx context.Context) ([]*entity.Bookmark, error) {
	bookmarks, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Refresh reloads the bookmark list. Concurrent calls share one query and
// the returned slice, which callers must not modify.
func (uc *ManageBookmarksUseCase) Refresh(ctx context.Context) ([]*entity.Bookmark, error) {
	v, err, shared := uc.group.Do(refreshKey, func() (any, error) {
		return uc.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logging.FromContext(ctx).Trace().Msg("bookmark refresh coalesced")
	}
	return v.([]*entity.Bookmark), nil
}

// Add creates a bookmark at the end of the list.
func (uc *ManageBookmarksUseCase) Add(ctx context.Context, input AddBookmarkInput) (*entity.Bookmark, error) {
	log := logging.FromContext(ctx)

	b := entity.NewBookmark(input.Name, input.URL, input.Tags...)
	if err := ValidateBookmark(b); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save bookmark: %w", err)
	}

	log.Info().Str("name", b.Name).Int64("id", int64(b.ID)).Msg("bookmark added")
	return b, nil
}

// Remove deletes a bookmark by ID.
func (uc *ManageBookmarksUseCase) Remove(ctx context.Context, id entity.BookmarkID) error {
	log := logging.FromContext(ctx)
	log.Debug().Int64("id", int64(id)).Msg("removing bookmark")

	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	log.Info().Int64("id", int64(id)).Msg("bookmark removed")
	return nil
}

// Replace validates every bookmark, then swaps the whole list.
// Nothing is written if any bookmark is invalid.
func (uc *ManageBookmarksUseCase) Replace(ctx context.Context, bookmarks []*entity.Bookmark) error {
	for i, b := range bookmarks {
		if err := ValidateBookmark(b); err != nil {
			return fmt.Errorf("bookmark %d: %w", i+1, err)
		}
	}

	if err := uc.repo.ReplaceAll(ctx, bookmarks); err != nil {
		return fmt.Errorf("failed to replace bookmarks: %w", err)
	}

	logging.FromContext(ctx).Info().Int("count", len(bookmarks)).Msg("bookmarks replaced")
	return nil
}

// SeedIfEmpty writes the seed list when the store holds no bookmarks.
// Returns whether it seeded.
func (uc *ManageBookmarksUseCase) SeedIfEmpty(ctx context.Context) (bool, error) {
	n, err := uc.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	if err := uc.RestoreDefaults(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// RestoreDefaults replaces the list with the seed bookmarks.
func (uc *ManageBookmarksUseCase) RestoreDefaults(ctx context.Context) error {
	return uc.Replace(ctx, uc.defaults())
}

// defaults returns fresh copies, since the repository assigns IDs in place.
func (uc *ManageBookmarksUseCase) defaults() []*entity.Bookmark {
	if uc.seed == nil {
		return entity.DefaultBookmarks()
	}
	out := make([]*entity.Bookmark, 0, len(uc.seed))
	for _, b := range uc.seed {
		if b != nil {
			out = append(out, entity.NewBookmark(b.Name, b.URL, b.Tags...))
		}
	}
	return out
}

// ValidateBookmark checks that a bookmark has a name and a URL.
func ValidateBookmark(b *entity.Bookmark) error {
	if b == nil {
		return fmt.Errorf("%w: nil bookmark", ErrInvalidBookmark)
	}
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidBookmark)
	}
	if strings.TrimSpace(b.URL) == "" {
		return fmt.Errorf("%w: url is empty for %q", ErrInvalidBookmark, b.Name)
	}
	return nil
}

package repository

import (
	"context"

	"github.com/bnema/orbit/internal/domain/entity"
)

// BookmarkRepository defines operations for bookmark persistence.
type BookmarkRepository interface {
	// Save creates a bookmark at the end of the list, or updates it when ID is set.
	Save(ctx context.Context, bookmark *entity.Bookmark) error

	// GetAll retrieves all bookmarks in list order.
	GetAll(ctx context.Context) ([]*entity.Bookmark, error)

	// Count returns the number of stored bookmarks.
	Count(ctx context.Context) (int, error)

	// ReplaceAll atomically swaps the whole list for the given bookmarks.
	ReplaceAll(ctx context.Context, bookmarks []*entity.Bookmark) error

	// Delete removes a bookmark by ID.
	Delete(ctx context.Context, id entity.BookmarkID) error
}

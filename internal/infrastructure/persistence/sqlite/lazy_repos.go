package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/domain/repository"
)

// LazyBookmarkRepository opens the database on the first repository call.
type LazyBookmarkRepository struct {
	provider port.DatabaseProvider
	repo     repository.BookmarkRepository
	once     sync.Once
	initErr  error
}

// NewLazyBookmarkRepository creates a lazy-loading bookmark repository.
func NewLazyBookmarkRepository(provider port.DatabaseProvider) repository.BookmarkRepository {
	return &LazyBookmarkRepository{provider: provider}
}

func (r *LazyBookmarkRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewBookmarkRepository(db)
	})
	return r.initErr
}

func (r *LazyBookmarkRepository) Save(ctx context.Context, b *entity.Bookmark) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, b)
}

func (r *LazyBookmarkRepository) GetAll(ctx context.Context) ([]*entity.Bookmark, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetAll(ctx)
}

func (r *LazyBookmarkRepository) Count(ctx context.Context) (int, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.Count(ctx)
}

func (r *LazyBookmarkRepository) ReplaceAll(ctx context.Context, bookmarks []*entity.Bookmark) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.ReplaceAll(ctx, bookmarks)
}

func (r *LazyBookmarkRepository) Delete(ctx context.Context, id entity.BookmarkID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, id)
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/domain/repository"
	"github.com/bnema/orbit/internal/logging"
)

const (
	insertBookmark = `INSERT INTO bookmarks (name, url, tags, position, created_at, updated_at)
VALUES (?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM bookmarks), ?, ?)
RETURNING id, position`

	updateBookmark = `UPDATE bookmarks SET name = ?, url = ?, tags = ?, updated_at = ? WHERE id = ?`

	selectBookmarks = `SELECT id, name, url, tags, position, created_at, updated_at
FROM bookmarks ORDER BY position, id`

	countBookmarks = `SELECT COUNT(*) FROM bookmarks`

	deleteBookmark = `DELETE FROM bookmarks WHERE id = ?`

	deleteAllBookmarks = `DELETE FROM bookmarks`

	insertBookmarkAt = `INSERT INTO bookmarks (name, url, tags, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id`
)

type bookmarkRepo struct {
	db *sql.DB
}

// NewBookmarkRepository creates a new SQLite-backed bookmark repository.
func NewBookmarkRepository(db *sql.DB) repository.BookmarkRepository {
	return &bookmarkRepo{db: db}
}

func (r *bookmarkRepo) Save(ctx context.Context, b *entity.Bookmark) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("name", b.Name).Str("url", b.URL).Msg("saving bookmark")

	tags, err := encodeTags(b.Tags)
	if err != nil {
		return err
	}

	now := time.Now()
	if b.ID != 0 {
		res, err := r.db.ExecContext(ctx, updateBookmark, b.Name, b.URL, tags, now.Unix(), int64(b.ID))
		if err != nil {
			return fmt.Errorf("update bookmark %d: %w", b.ID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("update bookmark %d: %w", b.ID, repository.ErrNotFound)
		}
		b.UpdatedAt = now
		return nil
	}

	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	var id, position int64
	err = r.db.QueryRowContext(ctx, insertBookmark,
		b.Name, b.URL, tags, b.CreatedAt.Unix(), b.UpdatedAt.Unix(),
	).Scan(&id, &position)
	if err != nil {
		return fmt.Errorf("insert bookmark: %w", err)
	}
	b.ID = entity.BookmarkID(id)
	b.Position = int(position)
	return nil
}

func (r *bookmarkRepo) GetAll(ctx context.Context) ([]*entity.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, selectBookmarks)
	if err != nil {
		return nil, fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := make([]*entity.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *bookmarkRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countBookmarks).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return n, nil
}

// ReplaceAll swaps the whole list in one transaction. Positions follow the
// slice order.
func (r *bookmarkRepo) ReplaceAll(ctx context.Context, bookmarks []*entity.Bookmark) (err error) {
	log := logging.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteAllBookmarks); err != nil {
		return fmt.Errorf("clear bookmarks: %w", err)
	}

	now := time.Now()
	for i, b := range bookmarks {
		if b == nil {
			continue
		}
		var tags string
		if tags, err = encodeTags(b.Tags); err != nil {
			return err
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		b.UpdatedAt = now
		b.Position = i

		var id int64
		err = tx.QueryRowContext(ctx, insertBookmarkAt,
			b.Name, b.URL, tags, i, b.CreatedAt.Unix(), b.UpdatedAt.Unix(),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert bookmark %q: %w", b.Name, err)
		}
		b.ID = entity.BookmarkID(id)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}

	log.Debug().Int("count", len(bookmarks)).Msg("bookmarks replaced")
	return nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, id entity.BookmarkID) error {
	res, err := r.db.ExecContext(ctx, deleteBookmark, int64(id))
	if err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete bookmark %d: %w", id, repository.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row rowScanner) (*entity.Bookmark, error) {
	var (
		b                entity.Bookmark
		id               int64
		tags             string
		position         int64
		created, updated int64
	)
	if err := row.Scan(&id, &b.Name, &b.URL, &tags, &position, &created, &updated); err != nil {
		return nil, fmt.Errorf("scan bookmark: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &b.Tags); err != nil {
		return nil, fmt.Errorf("decode tags of bookmark %d: %w", id, err)
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	b.ID = entity.BookmarkID(id)
	b.Position = int(position)
	b.CreatedAt = time.Unix(created, 0)
	b.UpdatedAt = time.Unix(updated, 0)
	return &b, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(data), nil
}

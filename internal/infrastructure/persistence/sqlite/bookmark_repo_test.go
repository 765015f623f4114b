package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/domain/repository"
	"github.com/bnema/orbit/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/orbit/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestRepo(t *testing.T) repository.BookmarkRepository {
	t.Helper()

	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "orbit.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlite.NewBookmarkRepository(db)
}

func TestBookmarkRepository_SaveAppendsInOrder(t *testing.T) {
	ctx := testCtx()
	repo := newTestRepo(t)

	github := entity.NewBookmark("GitHub", "https://github.com", "dev", "code")
	google := entity.NewBookmark("Google", "https://google.com")
	require.NoError(t, repo.Save(ctx, github))
	require.NoError(t, repo.Save(ctx, google))

	assert.NotZero(t, github.ID)
	assert.Equal(t, 0, github.Position)
	assert.Equal(t, 1, google.Position)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "GitHub", all[0].Name)
	assert.Equal(t, []string{"dev", "code"}, all[0].Tags)
	assert.Equal(t, "Google", all[1].Name)
	assert.Equal(t, []string{}, all[1].Tags)
}

func TestBookmarkRepository_SaveUpdatesExisting(t *testing.T) {
	ctx := testCtx()
	repo := newTestRepo(t)

	b := entity.NewBookmark("Wiki", "wiki.lan")
	require.NoError(t, repo.Save(ctx, b))

	b.URL = "https://wiki.lan"
	b.Tags = []string{"docs"}
	require.NoError(t, repo.Save(ctx, b))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "https://wiki.lan", all[0].URL)
	assert.Equal(t, []string{"docs"}, all[0].Tags)
}

func TestBookmarkRepository_UpdateMissing(t *testing.T) {
	repo := newTestRepo(t)

	b := entity.NewBookmark("Ghost", "https://ghost.example")
	b.ID = 42

	err := repo.Save(testCtx(), b)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBookmarkRepository_Delete(t *testing.T) {
	ctx := testCtx()
	repo := newTestRepo(t)

	b := entity.NewBookmark("GitHub", "https://github.com")
	require.NoError(t, repo.Save(ctx, b))

	require.NoError(t, repo.Delete(ctx, b.ID))
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), repository.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBookmarkRepository_ReplaceAll(t *testing.T) {
	ctx := testCtx()
	repo := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, entity.NewBookmark("Old", "https://old.example")))

	replacement := []*entity.Bookmark{
		entity.NewBookmark("Reddit", "https://reddit.com", "social"),
		entity.NewBookmark("YouTube", "https://youtube.com", "video"),
	}
	require.NoError(t, repo.ReplaceAll(ctx, replacement))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Reddit", all[0].Name)
	assert.Equal(t, "YouTube", all[1].Name)
	assert.Equal(t, 1, all[1].Position)
	assert.NotZero(t, replacement[0].ID)
}

func TestBookmarkRepository_ReplaceAllEmpty(t *testing.T) {
	ctx := testCtx()
	repo := newTestRepo(t)

	for _, b := range entity.DefaultBookmarks() {
		require.NoError(t, repo.Save(ctx, b))
	}
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

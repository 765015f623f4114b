package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "orbit.sqlite"))

	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_ReturnsSameConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "orbit.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	db1, err := lazy.DB(ctx)
	require.NoError(t, err)
	db2, err := lazy.DB(ctx)
	require.NoError(t, err)

	assert.Same(t, db1, db2)
	assert.True(t, lazy.IsInitialized())
}

func TestLazyDB_ConcurrentAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "orbit.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 10
	var wg sync.WaitGroup
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "orbit.sqlite"))

	assert.NoError(t, lazy.Close())
}

func TestLazyBookmarkRepository_OpensOnFirstCall(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "orbit.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyBookmarkRepository(lazy)
	require.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Save(ctx, entity.NewBookmark("GitHub", "https://github.com")))
	assert.True(t, lazy.IsInitialized())

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLazyDB_MigratesOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "orbit.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// A second run is a no-op.
	require.NoError(t, sqlite.RunMigrations(ctx, db))
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/orbit/internal/application/port/mocks"
	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/domain/entity"
	repomocks "github.com/bnema/orbit/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transferFixture struct {
	repo     *repomocks.MockBookmarkRepository
	settings *portmocks.MockSettingsStore
	store    *portmocks.MockExportStore
	uc       *usecase.TransferDataUseCase
}

func newTransferFixture(t *testing.T) transferFixture {
	t.Helper()
	f := transferFixture{
		repo:     repomocks.NewMockBookmarkRepository(t),
		settings: portmocks.NewMockSettingsStore(t),
		store:    portmocks.NewMockExportStore(t),
	}
	bookmarks := usecase.NewManageBookmarksUseCase(f.repo, nil)
	f.uc = usecase.NewTransferDataUseCase(bookmarks, f.settings, f.store)
	return f
}

func TestTransferData_ExportWritesSnapshot(t *testing.T) {
	ctx := testContext()
	f := newTransferFixture(t)

	settings := entity.Settings{SearchEngine: testSearchEngine, UserName: "axis", TabName: "Orbit"}
	f.repo.EXPECT().GetAll(mock.Anything).Return(testBookmarks(), nil).Once()
	f.settings.EXPECT().Settings().Return(settings).Once()

	var written *entity.ExportDocument
	f.store.EXPECT().WriteDocument(mock.Anything, "/tmp/orbit.json", mock.Anything).
		Run(func(_ context.Context, _ string, doc *entity.ExportDocument) { written = doc }).
		Return(nil).Once()

	require.NoError(t, f.uc.Export(ctx, "/tmp/orbit.json"))

	require.NotNil(t, written)
	assert.Equal(t, entity.ExportVersion, written.Version)
	assert.False(t, written.ExportedAt.IsZero())
	require.NotNil(t, written.Config)
	assert.Equal(t, settings, *written.Config)
	require.Len(t, written.Bookmarks, 3)
	assert.Equal(t, entity.ExportedBookmark{Name: "GitHub", URL: "https://github.com", Tags: []string{"dev", "code"}}, written.Bookmarks[0])
}

func TestTransferData_ImportReplacesAndApplies(t *testing.T) {
	ctx := testContext()
	f := newTransferFixture(t)

	doc := &entity.ExportDocument{
		Version: 1,
		Config:  &entity.Settings{UserName: "nova"},
		Bookmarks: []entity.ExportedBookmark{
			{Name: "Reddit", URL: "https://reddit.com", Tags: []string{"social"}},
		},
	}
	f.store.EXPECT().ReadDocument(mock.Anything, "in.yaml").Return(doc, nil).Once()
	f.repo.EXPECT().ReplaceAll(mock.Anything, mock.MatchedBy(func(bs []*entity.Bookmark) bool {
		return len(bs) == 1 && bs[0].Name == "Reddit"
	})).Return(nil).Once()
	f.settings.EXPECT().ApplySettings(mock.Anything, entity.Settings{UserName: "nova"}).Return(nil).Once()

	out, err := f.uc.Import(ctx, "in.yaml")

	require.NoError(t, err)
	assert.Equal(t, usecase.ImportOutput{Bookmarks: 1, BookmarksLoaded: true, SettingsApplied: true}, out)
}

func TestTransferData_ImportWithoutBookmarksKeepsList(t *testing.T) {
	ctx := testContext()
	f := newTransferFixture(t)

	// A config-only document, as written by hand.
	doc := &entity.ExportDocument{Config: &entity.Settings{TabName: "Home"}}
	f.settings.EXPECT().ApplySettings(mock.Anything, entity.Settings{TabName: "Home"}).Return(nil).Once()

	out, err := f.uc.ImportDocument(ctx, doc)

	require.NoError(t, err)
	assert.False(t, out.BookmarksLoaded)
	assert.True(t, out.SettingsApplied)
}

func TestTransferData_ImportRejectsInvalidDocument(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name    string
		doc     *entity.ExportDocument
		wantErr error
	}{
		{
			name:    "nil document",
			doc:     nil,
			wantErr: usecase.ErrUnsupportedExport,
		},
		{
			name:    "future version",
			doc:     &entity.ExportDocument{Version: entity.ExportVersion + 1},
			wantErr: usecase.ErrUnsupportedExport,
		},
		{
			name: "bookmark without url",
			doc: &entity.ExportDocument{
				Version:   1,
				Config:    &entity.Settings{UserName: "nova"},
				Bookmarks: []entity.ExportedBookmark{{Name: "GitHub", URL: "https://github.com"}, {Name: "Broken"}},
			},
			wantErr: usecase.ErrInvalidBookmark,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository or settings expectations: nothing may be written.
			f := newTransferFixture(t)

			_, err := f.uc.ImportDocument(ctx, tt.doc)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransferData_ImportReadFailure(t *testing.T) {
	f := newTransferFixture(t)

	readErr := errors.New("no such file")
	f.store.EXPECT().ReadDocument(mock.Anything, "missing.json").Return(nil, readErr).Once()

	_, err := f.uc.Import(testContext(), "missing.json")
	assert.ErrorIs(t, err, readErr)
}

package usecase_test

import (
	"errors"
	"testing"

	portmocks "github.com/bnema/orbit/internal/application/port/mocks"
	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/domain/entity"
	repomocks "github.com/bnema/orbit/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResetData_DeclinedChangesNothing(t *testing.T) {
	repo := repomocks.NewMockBookmarkRepository(t)
	settings := portmocks.NewMockSettingsStore(t)
	uc := usecase.NewResetDataUseCase(usecase.NewManageBookmarksUseCase(repo, nil), settings)

	err := uc.Execute(testContext(), false)

	assert.ErrorIs(t, err, usecase.ErrResetNotConfirmed)
}

func TestResetData_ConfirmedRestoresDefaults(t *testing.T) {
	repo := repomocks.NewMockBookmarkRepository(t)
	settings := portmocks.NewMockSettingsStore(t)
	uc := usecase.NewResetDataUseCase(usecase.NewManageBookmarksUseCase(repo, nil), settings)

	repo.EXPECT().ReplaceAll(mock.Anything, mock.MatchedBy(func(bs []*entity.Bookmark) bool {
		return len(bs) == len(entity.DefaultBookmarks())
	})).Return(nil).Once()
	settings.EXPECT().ResetToDefaults(mock.Anything).Return(nil).Once()

	assert.NoError(t, uc.Execute(testContext(), true))
}

func TestResetData_BookmarkFailureStopsReset(t *testing.T) {
	repo := repomocks.NewMockBookmarkRepository(t)
	settings := portmocks.NewMockSettingsStore(t)
	uc := usecase.NewResetDataUseCase(usecase.NewManageBookmarksUseCase(repo, nil), settings)

	dbErr := errors.New("database is locked")
	repo.EXPECT().ReplaceAll(mock.Anything, mock.Anything).Return(dbErr).Once()

	assert.ErrorIs(t, uc.Execute(testContext(), true), dbErr)
}

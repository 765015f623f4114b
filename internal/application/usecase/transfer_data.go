package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/logging"
)

// TransferDataUseCase exports and imports settings and bookmarks.
type TransferDataUseCase struct {
	bookmarks *ManageBookmarksUseCase
	settings  port.SettingsStore
	store     port.ExportStore
	now       func() time.Time
}

// NewTransferDataUseCase creates a new TransferDataUseCase.
func NewTransferDataUseCase(
	bookmarks *ManageBookmarksUseCase,
	settings port.SettingsStore,
	store port.ExportStore,
) *TransferDataUseCase {
	return &TransferDataUseCase{
		bookmarks: bookmarks,
		settings:  settings,
		store:     store,
		now:       time.Now,
	}
}

// ImportOutput summarizes an import.
type ImportOutput struct {
	Bookmarks       int
	BookmarksLoaded bool // false when the document carried no bookmark list
	SettingsApplied bool
}

// BuildDocument snapshots the current settings and bookmarks.
func (uc *TransferDataUseCase) BuildDocument(ctx context.Context) (*entity.ExportDocument, error) {
	bookmarks, err := uc.bookmarks.List(ctx)
	if err != nil {
		return nil, err
	}

	doc := &entity.ExportDocument{
		Version:    entity.ExportVersion,
		ExportedAt: uc.now().UTC(),
		Bookmarks:  make([]entity.ExportedBookmark, 0, len(bookmarks)),
	}
	if uc.settings != nil {
		s := uc.settings.Settings()
		doc.Config = &s
	}
	for _, b := range bookmarks {
		doc.Bookmarks = append(doc.Bookmarks, entity.ExportedBookmark{
			Name: b.Name,
			URL:  b.URL,
			Tags: b.Tags,
		})
	}
	return doc, nil
}

// Export writes the export document to path.
func (uc *TransferDataUseCase) Export(ctx context.Context, path string) error {
	log := logging.FromContext(ctx)

	doc, err := uc.BuildDocument(ctx)
	if err != nil {
		return err
	}
	if err := uc.store.WriteDocument(ctx, path, doc); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	log.Info().Str("path", path).Int("bookmarks", len(doc.Bookmarks)).Msg("data exported")
	return nil
}

// Import reads the document at path. A bookmark list, when present,
// replaces the stored one; config fields, when present, are applied.
// Nothing is written if the document fails validation.
func (uc *TransferDataUseCase) Import(ctx context.Context, path string) (ImportOutput, error) {
	log := logging.FromContext(ctx)

	doc, err := uc.store.ReadDocument(ctx, path)
	if err != nil {
		return ImportOutput{}, fmt.Errorf("failed to read import: %w", err)
	}

	out, err := uc.ImportDocument(ctx, doc)
	if err != nil {
		return out, err
	}

	log.Info().
		Str("path", path).
		Int("bookmarks", out.Bookmarks).
		Bool("settings", out.SettingsApplied).
		Msg("data imported")
	return out, nil
}

// ImportDocument applies an already decoded document.
func (uc *TransferDataUseCase) ImportDocument(ctx context.Context, doc *entity.ExportDocument) (ImportOutput, error) {
	var out ImportOutput
	if doc == nil {
		return out, fmt.Errorf("%w: empty document", ErrUnsupportedExport)
	}
	// Version 0 is a document written without the field.
	if doc.Version < 0 || doc.Version > entity.ExportVersion {
		return out, fmt.Errorf("%w: %d", ErrUnsupportedExport, doc.Version)
	}

	var bookmarks []*entity.Bookmark
	if doc.Bookmarks != nil {
		bookmarks = make([]*entity.Bookmark, 0, len(doc.Bookmarks))
		for i, eb := range doc.Bookmarks {
			b := entity.NewBookmark(eb.Name, eb.URL, eb.Tags...)
			if err := ValidateBookmark(b); err != nil {
				return out, fmt.Errorf("bookmark %d: %w", i+1, err)
			}
			bookmarks = append(bookmarks, b)
		}
	}

	if bookmarks != nil {
		if err := uc.bookmarks.Replace(ctx, bookmarks); err != nil {
			return out, err
		}
		out.Bookmarks = len(bookmarks)
		out.BookmarksLoaded = true
	}

	if doc.Config != nil && !doc.Config.IsZero() && uc.settings != nil {
		if err := uc.settings.ApplySettings(ctx, *doc.Config); err != nil {
			return out, fmt.Errorf("failed to apply settings: %w", err)
		}
		out.SettingsApplied = true
	}

	return out, nil
}

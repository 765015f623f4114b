package port

import (
	"context"

	"github.com/bnema/orbit/internal/domain/entity"
)

// ExportStore reads and writes export documents. The encoding is chosen by
// the implementation, typically from the file extension.
type ExportStore interface {
	WriteDocument(ctx context.Context, path string, doc *entity.ExportDocument) error
	ReadDocument(ctx context.Context, path string) (*entity.ExportDocument, error)
}

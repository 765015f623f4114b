// Package exchange reads and writes export documents as JSON or YAML.
package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	// maxDocumentSize bounds what ReadDocument will load.
	maxDocumentSize = 8 << 20
)

// ErrInvalidDocument wraps every decode failure.
var ErrInvalidDocument = errors.New("invalid export document")

// Format is an export document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the encoding from the file extension. Anything that is not
// .yaml or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Store implements port.ExportStore on the local filesystem.
type Store struct{}

// NewStore creates a file-backed export store.
func NewStore() *Store {
	return &Store{}
}

// WriteDocument encodes doc by extension and replaces path atomically.
func (s *Store) WriteDocument(ctx context.Context, path string, doc *entity.ExportDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}

	data, err := Encode(doc, FormatFor(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".orbit-export-*")
	if err != nil {
		return fmt.Errorf("create temp export: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace export: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Int("bytes", len(data)).Msg("export document written")
	return nil
}

// ReadDocument loads and decodes path by extension.
func (s *Store) ReadDocument(ctx context.Context, path string) (*entity.ExportDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(f, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	if n > maxDocumentSize {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrInvalidDocument, maxDocumentSize)
	}

	doc, err := Decode(buf.Bytes(), FormatFor(path))
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Str("path", path).Int("bookmarks", len(doc.Bookmarks)).Msg("export document read")
	return doc, nil
}

// Encode renders doc in the given format.
func Encode(doc *entity.ExportDocument, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml export: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json export: %w", err)
		}
		return append(data, '\n'), nil
	}
}

// Decode parses data in the given format. JSON files written by the browser
// start page (camelCase config, exportDate, no version) are accepted too.
func Decode(data []byte, format Format) (*entity.ExportDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidDocument)
	}

	if format == FormatYAML {
		var doc entity.ExportDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return &doc, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if _, versioned := fields["version"]; !versioned {
		if _, legacy := fields["exportDate"]; legacy {
			return decodeLegacy(data)
		}
	}

	var doc entity.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

type legacyDocument struct {
	Config *struct {
		SearchEngine string `json:"searchEngine"`
		UserName     string `json:"userName"`
		TabName      string `json:"tabName"`
	} `json:"config"`
	Bookmarks  []entity.ExportedBookmark `json:"bookmarks"`
	ExportDate string                    `json:"exportDate"`
}

func decodeLegacy(data []byte) (*entity.ExportDocument, error) {
	var legacy legacyDocument
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	doc := &entity.ExportDocument{Bookmarks: legacy.Bookmarks}
	if ts, err := time.Parse(time.RFC3339, legacy.ExportDate); err == nil {
		doc.ExportedAt = ts
	}
	if legacy.Config != nil {
		doc.Config = &entity.Settings{
			SearchEngine: legacy.Config.SearchEngine,
			UserName:     legacy.Config.UserName,
			TabName:      legacy.Config.TabName,
		}
	}
	return doc, nil
}

var _ port.ExportStore = (*Store)(nil)

// Package bookfile implements whole-file JSON persistence for the catalog.
// The backing file is opened, fully read or fully written, and closed within
// each call; no handles are held across operations.
package bookfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrCorrupt = errors.New("corrupt backing file")
)

// Store reads and writes the serialized catalog as a single flat file.
type Store struct {
	path   string
	tracer trace.Tracer
}

// NewStore creates a store for the given file path. The file is not touched
// until the first Load or Save.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		tracer: otel.Tracer("bookshelf/bookfile"),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file and decodes its full contents into v.
// A missing file surfaces as a wrapped fs.ErrNotExist; undecodable contents
// surface as a wrapped ErrCorrupt. The caller decides whether either is fatal.
func (s *Store) Load(ctx context.Context, v any) error {
	_, span := s.tracer.Start(ctx, "bookfile.load",
		trace.WithAttributes(
			attribute.String("file.path", s.path),
		),
	)
	defer span.End()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read backing file: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	span.SetAttributes(attribute.Int("file.bytes", len(data)))
	return nil
}

// Save encodes v as pretty-printed JSON and overwrites the backing file.
// HTML escaping is disabled so non-ASCII text is preserved verbatim.
func (s *Store) Save(ctx context.Context, v any) error {
	_, span := s.tracer.Start(ctx, "bookfile.save",
		trace.WithAttributes(
			attribute.String("file.path", s.path),
		),
	)
	defer span.End()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write backing file: %w", err)
	}

	span.SetAttributes(attribute.Int("file.bytes", buf.Len()))
	return nil
}

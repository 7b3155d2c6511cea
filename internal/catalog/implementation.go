// internal/catalog/implementation.go
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"bookshelf/pkg/bookfile"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// service implements the Service interface over a file-backed store.
type service struct {
	store  *bookfile.Store
	logger *zap.Logger
	tracer trace.Tracer
	books  []Book
}

// NewService creates a catalog service and loads the backing file. A missing
// or undecodable file yields an empty catalog; this is deliberate recovery,
// not an error.
func NewService(store *bookfile.Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &service{
		store:  store,
		logger: logger,
		tracer: otel.Tracer("bookshelf/catalog"),
	}
	s.books = s.load(context.Background())
	return s
}

// load reads and converts all records from the backing file. Any failure, at
// file or record granularity, results in an empty sequence.
func (s *service) load(ctx context.Context) []Book {
	var docs []bookDocument
	if err := s.store.Load(ctx, &docs); err != nil {
		s.logger.Debug("starting with empty catalog", zap.String("path", s.store.Path()), zap.Error(err))
		return nil
	}

	books := make([]Book, 0, len(docs))
	for i, doc := range docs {
		book, err := doc.toBook()
		if err != nil {
			s.logger.Debug("starting with empty catalog",
				zap.String("path", s.store.Path()),
				zap.Int("record", i),
				zap.Error(err),
			)
			return nil
		}
		books = append(books, book)
	}
	return books
}

// persist serializes the full in-memory sequence back to the backing file.
func (s *service) persist(ctx context.Context) error {
	docs := make([]bookDocument, len(s.books))
	for i, book := range s.books {
		docs[i] = documentFromBook(book)
	}
	if err := s.store.Save(ctx, docs); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}

// Add appends a new book with the next free id and persists the catalog.
func (s *service) Add(ctx context.Context, title, author string, year int) (*Book, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.add",
		trace.WithAttributes(attribute.String("book.title", title)),
	)
	defer span.End()

	if title == "" {
		return nil, ErrEmptyTitle
	}
	if year < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	book := Book{
		ID:     s.nextID(),
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusAvailable,
	}
	s.books = append(s.books, book)

	if err := s.persist(ctx); err != nil {
		// Roll the append back so memory never claims a record the file lost.
		s.books = s.books[:len(s.books)-1]
		return nil, err
	}

	span.SetAttributes(attribute.Int("book.id", book.ID))
	s.logger.Info("book added", zap.Int("id", book.ID), zap.String("title", book.Title))
	return &book, nil
}

// nextID returns one greater than the current maximum id, or 1 when empty.
// Removed ids are never reused unless the maximum itself was removed.
func (s *service) nextID() int {
	maxID := 0
	for _, book := range s.books {
		if book.ID > maxID {
			maxID = book.ID
		}
	}
	return maxID + 1
}

// Remove deletes the book with the given id and persists the catalog.
func (s *service) Remove(ctx context.Context, id int) error {
	ctx, span := s.tracer.Start(ctx, "catalog.remove",
		trace.WithAttributes(attribute.Int("book.id", id)),
	)
	defer span.End()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	removed := s.books[idx]
	s.books = append(s.books[:idx], s.books[idx+1:]...)

	if err := s.persist(ctx); err != nil {
		s.books = append(s.books[:idx], append([]Book{removed}, s.books[idx:]...)...)
		return err
	}

	s.logger.Info("book removed", zap.Int("id", id))
	return nil
}

// Search performs a case-insensitive substring match of keyword against the
// textual rendering of the chosen field. An empty keyword matches everything.
func (s *service) Search(ctx context.Context, keyword, field string) ([]Book, error) {
	_, span := s.tracer.Start(ctx, "catalog.search",
		trace.WithAttributes(
			attribute.String("search.field", field),
			attribute.String("search.keyword", keyword),
		),
	)
	defer span.End()

	render, ok := searchFields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	needle := strings.ToLower(keyword)
	var results []Book
	for _, book := range s.books {
		if strings.Contains(strings.ToLower(render(book)), needle) {
			results = append(results, book)
		}
	}

	span.SetAttributes(attribute.Int("search.hits", len(results)))
	return results, nil
}

var searchFields = map[string]func(Book) string{
	"title":  func(b Book) string { return b.Title },
	"author": func(b Book) string { return b.Author },
	"year":   func(b Book) string { return strconv.Itoa(b.Year) },
}

// ListAll returns the full sequence in insertion order. The returned slice is
// a copy; the catalog owns its records exclusively.
func (s *service) ListAll(ctx context.Context) []Book {
	_, span := s.tracer.Start(ctx, "catalog.list_all")
	defer span.End()

	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// ChangeStatus updates the lending status of the book with the given id and
// persists the catalog. An invalid status leaves both memory and file untouched.
func (s *service) ChangeStatus(ctx context.Context, id int, status Status) error {
	ctx, span := s.tracer.Start(ctx, "catalog.change_status",
		trace.WithAttributes(
			attribute.Int("book.id", id),
			attribute.String("book.status", string(status)),
		),
	)
	defer span.End()

	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	previous := s.books[idx].Status
	s.books[idx].Status = status

	if err := s.persist(ctx); err != nil {
		s.books[idx].Status = previous
		return err
	}

	s.logger.Info("book status changed",
		zap.Int("id", id),
		zap.String("status", string(status)),
	)
	return nil
}

// FindByID returns the book with the given id, if present.
func (s *service) FindByID(ctx context.Context, id int) (Book, bool) {
	_, span := s.tracer.Start(ctx, "catalog.find_by_id",
		trace.WithAttributes(attribute.Int("book.id", id)),
	)
	defer span.End()

	idx := s.indexOf(id)
	if idx < 0 {
		return Book{}, false
	}
	return s.books[idx], true
}

func (s *service) indexOf(id int) int {
	for i, book := range s.books {
		if book.ID == id {
			return i
		}
	}
	return -1
}

// internal/catalog/domain.go
package catalog

import "fmt"

// Status is the lending status of a book.
type Status string

const (
	StatusAvailable  Status = "AVAILABLE"
	StatusCheckedOut Status = "CHECKED_OUT"
)

// IsValid reports whether s is one of the two known statuses.
func (s Status) IsValid() bool {
	return s == StatusAvailable || s == StatusCheckedOut
}

// ParseStatus converts free-form input into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// Book is one catalog record. The ID never changes after creation; the other
// fields mutate in place.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}

// bookDocument is the persisted wire shape. Pointer fields distinguish an
// absent key from a zero value so conversion can reject incomplete records.
type bookDocument struct {
	ID     *int    `json:"id"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Year   *int    `json:"year"`
	Status *string `json:"status"`
}

// MalformedRecordError reports a persisted record that cannot be converted
// into a Book.
type MalformedRecordError struct {
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: field %q: %s", e.Field, e.Reason)
}

// toBook validates the document and converts it into a Book.
func (d bookDocument) toBook() (Book, error) {
	switch {
	case d.ID == nil:
		return Book{}, &MalformedRecordError{Field: "id", Reason: "missing"}
	case *d.ID < 1:
		return Book{}, &MalformedRecordError{Field: "id", Reason: "must be a positive integer"}
	case d.Title == nil:
		return Book{}, &MalformedRecordError{Field: "title", Reason: "missing"}
	case *d.Title == "":
		return Book{}, &MalformedRecordError{Field: "title", Reason: "must not be empty"}
	case d.Author == nil:
		return Book{}, &MalformedRecordError{Field: "author", Reason: "missing"}
	case d.Year == nil:
		return Book{}, &MalformedRecordError{Field: "year", Reason: "missing"}
	case *d.Year < 0:
		return Book{}, &MalformedRecordError{Field: "year", Reason: "must not be negative"}
	case d.Status == nil:
		return Book{}, &MalformedRecordError{Field: "status", Reason: "missing"}
	}

	status := Status(*d.Status)
	if !status.IsValid() {
		return Book{}, &MalformedRecordError{Field: "status", Reason: fmt.Sprintf("unknown value %q", *d.Status)}
	}

	return Book{
		ID:     *d.ID,
		Title:  *d.Title,
		Author: *d.Author,
		Year:   *d.Year,
		Status: status,
	}, nil
}

func documentFromBook(b Book) bookDocument {
	status := string(b.Status)
	return bookDocument{
		ID:     &b.ID,
		Title:  &b.Title,
		Author: &b.Author,
		Year:   &b.Year,
		Status: &status,
	}
}

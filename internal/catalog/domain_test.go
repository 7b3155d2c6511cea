// internal/catalog/domain_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("AVAILABLE")
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, status)

	status, err = ParseStatus("CHECKED_OUT")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedOut, status)

	_, err = ParseStatus("checked_out")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDocumentConversion(t *testing.T) {
	book := Book{ID: 3, Title: "Title", Author: "Author", Year: 1984, Status: StatusCheckedOut}

	got, err := documentFromBook(book).toBook()
	require.NoError(t, err)
	assert.Equal(t, book, got)
}

func TestDocumentConversionRejectsMalformedRecords(t *testing.T) {
	id := 1
	badID := 0
	title := "Title"
	emptyTitle := ""
	author := "Author"
	year := 2000
	badYear := -1
	status := "AVAILABLE"
	badStatus := "LOST"

	cases := []struct {
		name  string
		doc   bookDocument
		field string
	}{
		{"missing id", bookDocument{Title: &title, Author: &author, Year: &year, Status: &status}, "id"},
		{"non-positive id", bookDocument{ID: &badID, Title: &title, Author: &author, Year: &year, Status: &status}, "id"},
		{"missing title", bookDocument{ID: &id, Author: &author, Year: &year, Status: &status}, "title"},
		{"empty title", bookDocument{ID: &id, Title: &emptyTitle, Author: &author, Year: &year, Status: &status}, "title"},
		{"missing author", bookDocument{ID: &id, Title: &title, Year: &year, Status: &status}, "author"},
		{"missing year", bookDocument{ID: &id, Title: &title, Author: &author, Status: &status}, "year"},
		{"negative year", bookDocument{ID: &id, Title: &title, Author: &author, Year: &badYear, Status: &status}, "year"},
		{"missing status", bookDocument{ID: &id, Title: &title, Author: &author, Year: &year}, "status"},
		{"unknown status", bookDocument{ID: &id, Title: &title, Author: &author, Year: &year, Status: &badStatus}, "status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.doc.toBook()
			require.Error(t, err)

			var malformed *MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.field, malformed.Field)
		})
	}
}

// internal/catalog/service.go
package catalog

import "context"

// Service defines the interface for the catalog service.
type Service interface {
	Add(ctx context.Context, title, author string, year int) (*Book, error)
	Remove(ctx context.Context, id int) error
	Search(ctx context.Context, keyword, field string) ([]Book, error)
	ListAll(ctx context.Context) []Book
	ChangeStatus(ctx context.Context, id int, status Status) error
	FindByID(ctx context.Context, id int) (Book, bool)
}

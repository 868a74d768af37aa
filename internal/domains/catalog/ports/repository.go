package ports

import (
	"context"
	"errors"

	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
)

var (
	ErrNotFound = errors.New("catalog entry not found")
	ErrConflict = errors.New("catalog entry already exists")
)

// Repository keeps the categories and orders a service has created. Entities
// are stored by reference: they are mutable and shared with their products.
type Repository interface {
	// CreateCategory registers c under its name; names compare case-insensitively.
	// A taken name yields ErrConflict.
	CreateCategory(ctx context.Context, c *domain.Category) error
	GetCategory(ctx context.Context, name string) (*domain.Category, error)
	// ListCategories returns categories in registration order.
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	// CreateOrder registers o under its id. A taken id yields ErrConflict.
	CreateOrder(ctx context.Context, o *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	// ListOrders returns orders in registration order.
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}

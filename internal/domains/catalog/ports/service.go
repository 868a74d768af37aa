package ports

import (
	"context"

	types "github.com/Apurer/retail-catalog/internal/domains/catalog/application/types"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
)

// Service exposes the catalog use cases to adapters (inbound/driving port).
type Service interface {
	CreateCategory(ctx context.Context, input types.CreateCategoryInput) (*domain.Category, error)
	AddProduct(ctx context.Context, input types.AddProductInput) (*types.AddProductResult, error)
	ChangePrice(ctx context.Context, input types.ChangePriceInput) (*types.ChangePriceResult, error)
	PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error)
	GetCategory(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	// Containers lists frozen copies of every category followed by every order.
	Containers(ctx context.Context) ([]domain.Container, error)
	Stats(ctx context.Context) domain.Snapshot
	Import(ctx context.Context, seed types.Seed) ([]*domain.Category, error)
}

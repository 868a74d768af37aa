package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory registry of categories and orders. It keeps
// entity pointers as given; it does not copy them.
type Repository struct {
	mu sync.RWMutex

	categories    map[string]*domain.Category
	categoryOrder []string
	orders        map[string]*domain.Order
	orderOrder    []string
}

func NewRepository() *Repository {
	return &Repository{
		categories: map[string]*domain.Category{},
		orders:     map[string]*domain.Order{},
	}
}

func categoryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *Repository) CreateCategory(_ context.Context, c *domain.Category) error {
	if c == nil {
		return errors.New("category is nil")
	}
	key := categoryKey(c.Name())
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[key]; ok {
		return fmt.Errorf("%w: category %q", ports.ErrConflict, c.Name())
	}
	r.categories[key] = c
	r.categoryOrder = append(r.categoryOrder, key)
	return nil
}

func (r *Repository) GetCategory(_ context.Context, name string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[categoryKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: category %q", ports.ErrNotFound, name)
	}
	return c, nil
}

func (r *Repository) ListCategories(_ context.Context) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Category, 0, len(r.categoryOrder))
	for _, key := range r.categoryOrder {
		list = append(list, r.categories[key])
	}
	return list, nil
}

func (r *Repository) CreateOrder(_ context.Context, o *domain.Order) error {
	if o == nil {
		return errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID()]; ok {
		return fmt.Errorf("%w: order %q", ports.ErrConflict, o.ID())
	}
	r.orders[o.ID()] = o
	r.orderOrder = append(r.orderOrder, o.ID())
	return nil
}

func (r *Repository) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %q", ports.ErrNotFound, id)
	}
	return o, nil
}

func (r *Repository) ListOrders(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orderOrder))
	for _, id := range r.orderOrder {
		list = append(list, r.orders[id])
	}
	return list, nil
}

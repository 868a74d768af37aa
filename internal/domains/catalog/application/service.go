package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	types "github.com/Apurer/retail-catalog/internal/domains/catalog/application/types"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/ports"
)

// Service orchestrates the catalog use cases. Domain entities are not safe
// for concurrent use, so every use case runs under a single lock. Categories
// and orders returned by the getters and listers are the live entities and
// must not be read while another goroutine calls the service; Containers
// returns frozen copies instead.
type Service struct {
	mu    sync.Mutex
	repo  ports.Repository
	stats *domain.Stats

	productOpts []domain.Option
}

// Option configures the service and the products it builds.
type Option func(*Service)

// WithStats routes category, product and order counts to stats.
func WithStats(stats *domain.Stats) Option {
	return func(s *Service) {
		s.stats = stats
	}
}

// WithConfirmer sets who approves price decreases of every built product.
func WithConfirmer(c domain.Confirmer) Option {
	return func(s *Service) {
		s.productOpts = append(s.productOpts, domain.WithConfirmer(c))
	}
}

// WithCurrency sets the unit products print after their price.
func WithCurrency(unit string) Option {
	return func(s *Service) {
		s.productOpts = append(s.productOpts, domain.WithCurrency(unit))
	}
}

// WithDecreaseConfirmation toggles the confirmation step for price decreases.
func WithDecreaseConfirmation(enabled bool) Option {
	return func(s *Service) {
		s.productOpts = append(s.productOpts, domain.WithDecreaseConfirmation(enabled))
	}
}

// WithLogger sets the logger products report price notices to.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.productOpts = append(s.productOpts, domain.WithLogger(logger))
	}
}

// NewService wires the catalog service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.stats == nil {
		s.stats = domain.DefaultStats()
	}
	return s
}

// CreateCategory builds the listed products and registers a new category.
func (s *Service) CreateCategory(ctx context.Context, input types.CreateCategoryInput) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCategory(ctx, input)
}

func (s *Service) createCategory(ctx context.Context, input types.CreateCategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, mapError(errBlankName)
	}
	if _, err := s.repo.GetCategory(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: category %q", ports.ErrConflict, name)
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}

	products := make([]domain.Product, 0, len(input.Products))
	for _, in := range input.Products {
		p, err := in.Build(s.productOpts...)
		if err != nil {
			return nil, mapError(fmt.Errorf("product %q: %w", in.Name, err))
		}
		products = append(products, p)
	}
	category, err := domain.NewCategory(name, input.Description, products, domain.WithCategoryStats(s.stats))
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, mapError(err)
	}
	return category, nil
}

// AddProduct puts a product into a category, merging it by name into a
// matching product the category already holds.
func (s *Service) AddProduct(ctx context.Context, input types.AddProductInput) (*types.AddProductResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := input.Product.CheckKind(); err != nil {
		return nil, mapError(err)
	}
	category, err := s.repo.GetCategory(ctx, input.Category)
	if err != nil {
		return nil, mapError(err)
	}

	build := func(rec domain.Record) (domain.Product, error) {
		in := input.Product
		in.Record = rec
		return in.Build(s.productOpts...)
	}
	p, merged, err := domain.NewProductWith(input.Product.Record, category.ProductsList(), build)
	if err != nil {
		return nil, mapError(err)
	}
	if !merged {
		if err := category.AddProduct(p); err != nil {
			return nil, mapError(err)
		}
	}
	return &types.AddProductResult{Product: p, Merged: merged}, nil
}

// ChangePrice proposes a new price to a product. A refused or rejected
// proposal is reported through the outcome, not as an error.
func (s *Service) ChangePrice(ctx context.Context, input types.ChangePriceInput) (*types.ChangePriceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.findProduct(ctx, input.Category, input.Product)
	if err != nil {
		return nil, err
	}
	outcome := p.SetPrice(input.Price)
	return &types.ChangePriceResult{Product: p, Outcome: outcome}, nil
}

// PlaceOrder books a quantity of a category's product.
func (s *Service) PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.findProduct(ctx, input.Category, input.Product)
	if err != nil {
		return nil, err
	}
	if input.OrderID != "" {
		if _, err := s.repo.GetOrder(ctx, input.OrderID); err == nil {
			return nil, fmt.Errorf("%w: order %q", ports.ErrConflict, input.OrderID)
		} else if !errors.Is(err, ports.ErrNotFound) {
			return nil, err
		}
	}

	opts := []domain.OrderOption{domain.WithOrderStats(s.stats)}
	if input.OrderID != "" {
		opts = append(opts, domain.WithOrderID(input.OrderID))
	}
	order, err := domain.NewOrder(p, input.Quantity, opts...)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (s *Service) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.GetCategory(ctx, name)
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.ListCategories(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.ListOrders(ctx)
}

// Containers freezes every category followed by every order, so callers can
// price and count them uniformly while the catalog keeps changing.
func (s *Service) Containers(ctx context.Context) ([]domain.Container, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Container, 0, len(categories)+len(orders))
	for _, c := range categories {
		result = append(result, domain.Freeze(c))
	}
	for _, o := range orders {
		result = append(result, domain.Freeze(o))
	}
	return result, nil
}

// Stats reports the counters this service writes to.
func (s *Service) Stats(_ context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Snapshot()
}

// Import creates every category of the seed in order and stops at the first
// failure. Categories created before it are kept.
func (s *Service) Import(ctx context.Context, seed types.Seed) ([]*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]*domain.Category, 0, len(seed.Categories))
	for _, input := range seed.Categories {
		category, err := s.createCategory(ctx, input)
		if err != nil {
			return created, fmt.Errorf("import category %q: %w", input.Name, err)
		}
		created = append(created, category)
	}
	return created, nil
}

func (s *Service) findProduct(ctx context.Context, categoryName, productName string) (domain.Product, error) {
	category, err := s.repo.GetCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	p, ok := category.Find(productName)
	if !ok {
		return nil, fmt.Errorf("%w: product %q in category %q", ports.ErrNotFound, productName, category.Name())
	}
	return p, nil
}

var _ ports.Service = (*Service)(nil)

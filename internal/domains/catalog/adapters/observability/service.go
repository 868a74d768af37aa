package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	types "github.com/Apurer/retail-catalog/internal/domains/catalog/application/types"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/ports"
)

const tracerName = "github.com/Apurer/retail-catalog/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog port with tracing, logging, and metrics.
// Every entity the inner service constructs is logged with its diagnostic
// representation.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// CreateCategory registers a category with instrumentation.
func (s *Service) CreateCategory(ctx context.Context, input types.CreateCategoryInput) (*domain.Category, error) {
	ctx, span := s.startSpan(ctx, "Service.CreateCategory",
		attribute.String("category.name", input.Name),
		attribute.Int("category.products.requested", len(input.Products)))
	defer span.End()

	s.logInfo(ctx, "creating category", slog.String("category", input.Name))
	category, err := s.inner.CreateCategory(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create category", slog.String("category", input.Name))
	}
	s.recordCategory(ctx, category)
	return category, nil
}

// AddProduct adds or merges a product with instrumentation.
func (s *Service) AddProduct(ctx context.Context, input types.AddProductInput) (*types.AddProductResult, error) {
	ctx, span := s.startSpan(ctx, "Service.AddProduct",
		attribute.String("category.name", input.Category),
		attribute.String("product.name", input.Product.Name),
		attribute.String("product.kind", string(input.Product.ResolvedKind())))
	defer span.End()

	s.logInfo(ctx, "adding product", slog.String("category", input.Category), slog.String("product", input.Product.Name))
	result, err := s.inner.AddProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add product",
			slog.String("category", input.Category), slog.String("product", input.Product.Name))
	}
	if result != nil && result.Product != nil {
		span.SetAttributes(attribute.Bool("product.merged", result.Merged))
		s.metrics.recordProductAdded(ctx, result.Product.Kind(), result.Merged)
		if result.Merged {
			s.logInfo(ctx, "product merged", slog.String("repr", result.Product.String()))
		} else {
			s.logInfo(ctx, "product created", slog.String("repr", result.Product.String()))
		}
	}
	return result, nil
}

// ChangePrice proposes a price with instrumentation.
func (s *Service) ChangePrice(ctx context.Context, input types.ChangePriceInput) (*types.ChangePriceResult, error) {
	ctx, span := s.startSpan(ctx, "Service.ChangePrice",
		attribute.String("category.name", input.Category),
		attribute.String("product.name", input.Product),
		attribute.Float64("price.proposed", input.Price))
	defer span.End()

	s.logInfo(ctx, "changing price", slog.String("product", input.Product), slog.Float64("price", input.Price))
	result, err := s.inner.ChangePrice(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to change price", slog.String("product", input.Product))
	}
	if result != nil {
		span.SetAttributes(attribute.String("price.outcome", string(result.Outcome)))
		s.metrics.recordPriceChange(ctx, result.Outcome)
		s.logInfo(ctx, "price change handled",
			slog.String("product", input.Product),
			slog.String("outcome", string(result.Outcome)),
			slog.Float64("price", result.Product.Price()))
	}
	return result, nil
}

// PlaceOrder books an order with instrumentation.
func (s *Service) PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.PlaceOrder",
		attribute.String("category.name", input.Category),
		attribute.String("product.name", input.Product),
		attribute.Int("order.quantity", input.Quantity))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.String("product", input.Product), slog.Int("quantity", input.Quantity))
	order, err := s.inner.PlaceOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order",
			slog.String("product", input.Product), slog.Int("quantity", input.Quantity))
	}
	if order != nil {
		span.SetAttributes(attribute.String("order.id", order.ID()))
		s.metrics.recordOrderPlaced(ctx)
		s.logInfo(ctx, "order created", slog.String("order.id", order.ID()), slog.String("summary", order.Summary()))
	}
	return order, nil
}

// GetCategory loads a category with instrumentation.
func (s *Service) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	ctx, span := s.startSpan(ctx, "Service.GetCategory", attribute.String("category.name", name))
	defer span.End()

	category, err := s.inner.GetCategory(ctx, name)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get category", slog.String("category", name))
	}
	return category, nil
}

// ListCategories lists categories with instrumentation.
func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	ctx, span := s.startSpan(ctx, "Service.ListCategories")
	defer span.End()

	result, err := s.inner.ListCategories(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list categories")
	}
	span.SetAttributes(attribute.Int("category.result.count", len(result)))
	return result, nil
}

// GetOrder loads an order with instrumentation.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.GetOrder", attribute.String("order.id", id))
	defer span.End()

	order, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get order", slog.String("order.id", id))
	}
	return order, nil
}

// ListOrders lists orders with instrumentation.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.result.count", len(result)))
	return result, nil
}

// Containers lists categories and orders with instrumentation.
func (s *Service) Containers(ctx context.Context) ([]domain.Container, error) {
	ctx, span := s.startSpan(ctx, "Service.Containers")
	defer span.End()

	result, err := s.inner.Containers(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list containers")
	}
	span.SetAttributes(attribute.Int("container.result.count", len(result)))
	return result, nil
}

func (s *Service) Stats(ctx context.Context) domain.Snapshot {
	return s.inner.Stats(ctx)
}

// Import loads a seed with instrumentation. Categories created before a
// failure are still logged and counted.
func (s *Service) Import(ctx context.Context, seed types.Seed) ([]*domain.Category, error) {
	ctx, span := s.startSpan(ctx, "Service.Import", attribute.Int("seed.categories", len(seed.Categories)))
	defer span.End()

	s.logInfo(ctx, "importing seed", slog.Int("categories", len(seed.Categories)))
	created, err := s.inner.Import(ctx, seed)
	for _, category := range created {
		s.recordCategory(ctx, category)
	}
	span.SetAttributes(attribute.Int("seed.categories.created", len(created)))
	if err != nil {
		return created, s.handleError(ctx, span, err, "failed to import seed", slog.Int("created", len(created)))
	}
	return created, nil
}

func (s *Service) recordCategory(ctx context.Context, category *domain.Category) {
	if category == nil {
		return
	}
	for p := range category.All() {
		s.metrics.recordProductAdded(ctx, p.Kind(), false)
		s.logInfo(ctx, "product created", slog.String("repr", p.String()))
	}
	s.metrics.recordCategoryCreated(ctx)
	s.logInfo(ctx, "category created", slog.String("repr", category.Repr()))
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	categoriesCreated metric.Int64Counter
	productsAdded     metric.Int64Counter
	priceChanges      metric.Int64Counter
	ordersPlaced      metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	categoriesCreated, _ := m.Int64Counter("catalog.service.categories_created", metric.WithDescription("Number of categories created"))
	productsAdded, _ := m.Int64Counter("catalog.service.products_added", metric.WithDescription("Number of products added to categories"))
	priceChanges, _ := m.Int64Counter("catalog.service.price_changes", metric.WithDescription("Number of price change proposals by outcome"))
	ordersPlaced, _ := m.Int64Counter("catalog.service.orders_placed", metric.WithDescription("Number of orders placed"))
	return serviceMetrics{
		categoriesCreated: categoriesCreated,
		productsAdded:     productsAdded,
		priceChanges:      priceChanges,
		ordersPlaced:      ordersPlaced,
	}
}

func (m serviceMetrics) recordCategoryCreated(ctx context.Context) {
	addCounter(ctx, m.categoriesCreated, 1)
}

func (m serviceMetrics) recordProductAdded(ctx context.Context, kind domain.Kind, merged bool) {
	addCounter(ctx, m.productsAdded, 1,
		attribute.String("product.kind", string(kind)),
		attribute.Bool("product.merged", merged))
}

func (m serviceMetrics) recordPriceChange(ctx context.Context, outcome domain.PriceOutcome) {
	addCounter(ctx, m.priceChanges, 1, attribute.String("price.outcome", string(outcome)))
}

func (m serviceMetrics) recordOrderPlaced(ctx context.Context) {
	addCounter(ctx, m.ordersPlaced, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)

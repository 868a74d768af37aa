package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Apurer/retail-catalog/internal/domains/catalog/adapters/memory"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/application"
	types "github.com/Apurer/retail-catalog/internal/domains/catalog/application/types"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/ports"
)

type harness struct {
	svc    ports.Service
	spans  *tracetest.SpanRecorder
	reader *sdkmetric.ManualReader
	logs   *bytes.Buffer
}

func newHarness(t *testing.T, opts ...application.Option) *harness {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	logs := &bytes.Buffer{}
	opts = append([]application.Option{application.WithStats(domain.NewStats())}, opts...)
	inner := application.NewService(memory.NewRepository(), opts...)
	svc := New(inner,
		WithLogger(slog.New(slog.NewTextHandler(logs, nil))),
		WithTracer(tp.Tracer(tracerName)),
		WithMeter(mp.Meter(tracerName)),
	)
	return &harness{svc: svc, spans: spans, reader: reader, logs: logs}
}

func (h *harness) counter(t *testing.T, name string, match ...attribute.KeyValue) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, h.reader.Collect(context.Background(), &rm))
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				if hasAttributes(dp.Attributes, match) {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func hasAttributes(set attribute.Set, want []attribute.KeyValue) bool {
	for _, kv := range want {
		v, ok := set.Value(kv.Key)
		if !ok || v != kv.Value {
			return false
		}
	}
	return true
}

func (h *harness) span(t *testing.T, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, s := range h.spans.Ended() {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("span %q not recorded", name)
	return nil
}

func grassInput() types.CreateCategoryInput {
	return types.CreateCategoryInput{
		Name: "Lawn grass",
		Products: []types.ProductInput{
			{
				Kind:      domain.KindLawnGrass,
				Record:    domain.Record{Name: "Premium grass", Description: "elite", Price: 500, Quantity: 20},
				LawnGrass: &domain.LawnGrassSpec{Country: "Russia", GerminationPeriod: 7, Color: "green"},
			},
			{Record: domain.Record{Name: "Seeder", Price: 3000, Quantity: 2}},
		},
	}
}

func TestCreateCategory_LogsConstructionAndCounts(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.CreateCategory(context.Background(), grassInput())
	require.NoError(t, err)

	require.Contains(t, h.logs.String(), "category created")
	require.Contains(t, h.logs.String(), "Category('Lawn grass', '', 2 products)")
	require.Contains(t, h.logs.String(), "LawnGrass('Premium grass', 'elite', 500.0, 20, 'Russia', 7, 'green')")
	require.Contains(t, h.logs.String(), "Product('Seeder', '', 3000.0, 2)")

	require.Equal(t, int64(1), h.counter(t, "catalog.service.categories_created"))
	require.Equal(t, int64(2), h.counter(t, "catalog.service.products_added"))
	require.Equal(t, int64(1), h.counter(t, "catalog.service.products_added",
		attribute.String("product.kind", string(domain.KindLawnGrass))))

	span := h.span(t, "Service.CreateCategory")
	require.Equal(t, codes.Unset, span.Status().Code)
}

func TestAddProduct_RecordsMerge(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, err := h.svc.CreateCategory(ctx, grassInput())
	require.NoError(t, err)

	result, err := h.svc.AddProduct(ctx, types.AddProductInput{
		Category: "Lawn grass",
		Product:  types.ProductInput{Record: domain.Record{Name: "seeder", Price: 3000, Quantity: 1}},
	})
	require.NoError(t, err)
	require.True(t, result.Merged)

	require.Equal(t, int64(1), h.counter(t, "catalog.service.products_added", attribute.Bool("product.merged", true)))
	require.Contains(t, h.logs.String(), "product merged")
}

func TestChangePrice_CountsOutcome(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, application.WithConfirmer(domain.ConfirmerFunc(func(string) (string, error) {
		return "Y", nil
	})))
	_, err := h.svc.CreateCategory(ctx, grassInput())
	require.NoError(t, err)

	result, err := h.svc.ChangePrice(ctx, types.ChangePriceInput{Category: "Lawn grass", Product: "Seeder", Price: 2500})
	require.NoError(t, err)
	require.Equal(t, domain.PriceApplied, result.Outcome)

	_, err = h.svc.ChangePrice(ctx, types.ChangePriceInput{Category: "Lawn grass", Product: "Seeder", Price: -1})
	require.NoError(t, err)

	require.Equal(t, int64(1), h.counter(t, "catalog.service.price_changes", attribute.String("price.outcome", "applied")))
	require.Equal(t, int64(1), h.counter(t, "catalog.service.price_changes", attribute.String("price.outcome", "rejected")))
}

func TestPlaceOrder_RecordsErrors(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, err := h.svc.CreateCategory(ctx, grassInput())
	require.NoError(t, err)

	_, err = h.svc.PlaceOrder(ctx, types.PlaceOrderInput{Category: "Lawn grass", Product: "Seeder", Quantity: 5})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	span := h.span(t, "Service.PlaceOrder")
	require.Equal(t, codes.Error, span.Status().Code)
	require.Contains(t, h.logs.String(), "failed to place order")
	require.Equal(t, int64(0), h.counter(t, "catalog.service.orders_placed"))

	order, err := h.svc.PlaceOrder(ctx, types.PlaceOrderInput{Category: "Lawn grass", Product: "Seeder", Quantity: 2})
	require.NoError(t, err)
	require.Contains(t, h.logs.String(), "Order "+order.ID()+": Seeder x 2 = 6000.0 rub.")
	require.Equal(t, int64(1), h.counter(t, "catalog.service.orders_placed"))
}

func TestImport_RecordsCreatedCategories(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	created, err := h.svc.Import(ctx, types.Seed{Categories: []types.CreateCategoryInput{
		grassInput(),
		{Name: ""},
	}})
	require.ErrorIs(t, err, application.ErrInvalidInput)
	require.Len(t, created, 1)
	require.Equal(t, int64(1), h.counter(t, "catalog.service.categories_created"))
	require.Equal(t, codes.Error, h.span(t, "Service.Import").Status().Code)
}

func TestNew_DefaultsAreSafe(t *testing.T) {
	inner := application.NewService(memory.NewRepository(), application.WithStats(domain.NewStats()))
	svc := New(inner, nil, WithLogger(nil), WithTracer(nil))

	_, err := svc.CreateCategory(context.Background(), grassInput())
	require.NoError(t, err)
	containers, err := svc.Containers(context.Background())
	require.NoError(t, err)
	require.Len(t, containers, 1)
}

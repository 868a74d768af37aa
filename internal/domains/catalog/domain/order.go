package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Order books a quantity of one product. It does not reserve stock: the
// product's quantity is only checked, never decremented.
type Order struct {
	id       string
	product  Product
	quantity int
}

// OrderOption tunes an order at construction time.
type OrderOption func(*orderConfig)

type orderConfig struct {
	id    string
	stats *Stats
}

// WithOrderID uses id instead of a generated one.
func WithOrderID(id string) OrderOption {
	return func(c *orderConfig) {
		c.id = id
	}
}

// WithOrderStats makes the order report to s instead of DefaultStats.
func WithOrderStats(s *Stats) OrderOption {
	return func(c *orderConfig) {
		c.stats = s
	}
}

// NewOrder validates the request against the product's current stock. A
// generated id has the form ORDER_000042, numbered by the order counter.
func NewOrder(product Product, quantity int, opts ...OrderOption) (*Order, error) {
	if isNil(product) {
		return nil, ErrNotProduct
	}
	if quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}
	if quantity > product.Quantity() {
		return nil, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, quantity, product.Quantity())
	}

	cfg := orderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.stats == nil {
		cfg.stats = DefaultStats()
	}
	seq := cfg.stats.orders.Add(1)
	if cfg.id == "" {
		cfg.id = fmt.Sprintf("ORDER_%06d", seq)
	}
	return &Order{id: cfg.id, product: product, quantity: quantity}, nil
}

func (o *Order) ID() string       { return o.id }
func (o *Order) Product() Product { return o.product }
func (o *Order) Quantity() int    { return o.quantity }

// TotalPrice is the current product price times the ordered quantity.
func (o *Order) TotalPrice() float64 {
	return o.total().InexactFloat64()
}

func (o *Order) total() decimal.Decimal {
	return lineTotal(o.product.Price(), o.quantity)
}

// ProductsCount is always 1: an order holds a single line.
func (o *Order) ProductsCount() int { return 1 }

func (o *Order) Len() int { return 1 }

// Summary renders "Order {id}: {product} x {quantity} = {total} {currency}."
func (o *Order) Summary() string {
	return fmt.Sprintf("Order %s: %s x %d = %s %s.",
		o.id, o.product.Name(), o.quantity, formatDecimal(o.total()), o.product.Currency())
}

func (o *Order) String() string { return o.Summary() }

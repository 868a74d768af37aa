package domain

import (
	"fmt"
	"log/slog"
	"math"
)

// Kind identifies the concrete variant of a Product.
type Kind string

const (
	KindProduct    Kind = "product"
	KindSmartphone Kind = "smartphone"
	KindLawnGrass  Kind = "lawn_grass"
)

// PriceOutcome tells what SetPrice did with the proposed value.
type PriceOutcome string

const (
	PriceApplied   PriceOutcome = "applied"
	PriceUnchanged PriceOutcome = "unchanged"
	PriceRejected  PriceOutcome = "rejected"
	PriceDeclined  PriceOutcome = "declined"
)

// Record carries the common product attributes. It is the input of every
// constructor and of NewProduct.
type Record struct {
	Name        string  `yaml:"name" json:"name" mapstructure:"name"`
	Description string  `yaml:"description" json:"description" mapstructure:"description"`
	Price       float64 `yaml:"price" json:"price" mapstructure:"price"`
	Quantity    int     `yaml:"quantity" json:"quantity" mapstructure:"quantity"`
}

// Product is the capability set shared by every sellable variant. The set is
// closed: only Item, Smartphone and LawnGrass implement it.
type Product interface {
	Name() string
	Description() string
	Currency() string
	Price() float64
	// SetPrice never fails. Non-positive and non-finite values are logged and
	// ignored; decreases need an affirmative answer from the product's Confirmer.
	SetPrice(newPrice float64) PriceOutcome
	Quantity() int
	SetQuantity(quantity int) error
	Kind() Kind
	Describe() string
	Combine(other Product) (float64, error)
	String() string

	base() *core
}

// Option tunes a product at construction time.
type Option func(*core)

// WithConfirmer sets who is asked before a price decrease.
func WithConfirmer(c Confirmer) Option {
	return func(p *core) {
		p.confirmer = c
	}
}

// WithLogger sets the logger receiving price notices.
func WithLogger(logger *slog.Logger) Option {
	return func(p *core) {
		p.logger = logger
	}
}

// WithDecreaseConfirmation toggles whether price decreases need confirmation.
func WithDecreaseConfirmation(enabled bool) Option {
	return func(p *core) {
		p.confirmDecrease = enabled
	}
}

// WithCurrency overrides the unit printed after prices.
func WithCurrency(unit string) Option {
	return func(p *core) {
		if unit != "" {
			p.currency = unit
		}
	}
}

// core holds the state and behaviour common to all variants.
type core struct {
	name        string
	description string
	price       float64
	quantity    int
	currency    string

	confirmer       Confirmer
	logger          *slog.Logger
	confirmDecrease bool
}

func newCore(rec Record, opts []Option) (core, error) {
	if rec.Quantity < 0 {
		return core{}, ErrNegativeQuantity
	}
	if math.IsInf(rec.Price, 1) {
		return core{}, ErrNonFinitePrice
	}
	if !validPrice(rec.Price) {
		return core{}, ErrNonPositivePrice
	}
	c := core{
		name:            rec.Name,
		description:     rec.Description,
		price:           rec.Price,
		quantity:        rec.Quantity,
		currency:        DefaultCurrency,
		confirmDecrease: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c, nil
}

func (p *core) Name() string        { return p.name }
func (p *core) Description() string { return p.description }
func (p *core) Currency() string    { return p.currency }
func (p *core) Price() float64      { return p.price }
func (p *core) Quantity() int       { return p.quantity }

func (p *core) SetPrice(newPrice float64) PriceOutcome {
	if !validPrice(newPrice) {
		p.log().Warn("price must be positive and finite, keeping the current one",
			slog.String("product", p.name),
			slog.Float64("price", p.price),
			slog.Float64("rejected", newPrice))
		return PriceRejected
	}
	if newPrice == p.price {
		return PriceUnchanged
	}
	if newPrice < p.price && p.confirmDecrease && !p.approveDecrease(newPrice) {
		p.log().Info("price decrease cancelled",
			slog.String("product", p.name),
			slog.Float64("price", p.price),
			slog.Float64("proposed", newPrice))
		return PriceDeclined
	}
	p.price = newPrice
	return PriceApplied
}

func (p *core) approveDecrease(newPrice float64) bool {
	if p.confirmer == nil {
		return false
	}
	question := fmt.Sprintf("Price drops from %s to %s. Confirm the change (y/n): ",
		FormatAmount(p.price), FormatAmount(newPrice))
	answer, err := p.confirmer.Confirm(question)
	if err != nil {
		p.log().Debug("no confirmation available", slog.String("product", p.name), slog.String("error", err.Error()))
		return false
	}
	return Affirmative(answer)
}

func (p *core) SetQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	p.quantity = quantity
	return nil
}

// Describe renders "{name}, {price} {currency}. Remaining: {quantity} units."
func (p *core) Describe() string {
	return fmt.Sprintf("%s, %s %s. Remaining: %d units.", p.name, FormatAmount(p.price), p.currency, p.quantity)
}

func (p *core) log() *slog.Logger {
	if p.logger == nil {
		return slog.Default()
	}
	return p.logger
}

// Item is the plain product variant.
type Item struct {
	core
}

// NewItem validates rec and builds a plain product.
func NewItem(rec Record, opts ...Option) (*Item, error) {
	c, err := newCore(rec, opts)
	if err != nil {
		return nil, err
	}
	return &Item{core: c}, nil
}

func (p *Item) Kind() Kind { return KindProduct }

// Combine returns the stock value of both products. other must be an Item.
func (p *Item) Combine(other Product) (float64, error) { return Combine(p, other) }

func (p *Item) String() string {
	return fmt.Sprintf("Product('%s', '%s', %s, %d)", p.name, p.description, FormatAmount(p.price), p.quantity)
}

func (p *Item) base() *core {
	if p == nil {
		return nil
	}
	return &p.core
}

// Combine returns a.price*a.quantity + b.price*b.quantity. Both products must
// be of exactly the same variant; otherwise ErrIncompatibleProducts.
func Combine(a, b Product) (float64, error) {
	if isNil(a) || isNil(b) || a.Kind() != b.Kind() {
		return 0, ErrIncompatibleProducts
	}
	total := lineTotal(a.Price(), a.Quantity()).Add(lineTotal(b.Price(), b.Quantity()))
	return total.InexactFloat64(), nil
}

// isNil catches both untyped nil and a nil pointer stored in the interface.
func isNil(p Product) bool {
	return p == nil || p.base() == nil
}

package domain

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// Category owns an ordered list of products.
type Category struct {
	name        string
	description string
	products    []Product
	stats       *Stats
}

// CategoryOption tunes a category at construction time.
type CategoryOption func(*Category)

// WithCategoryStats makes the category report to s instead of DefaultStats.
func WithCategoryStats(s *Stats) CategoryOption {
	return func(c *Category) {
		c.stats = s
	}
}

// NewCategory adds every product through AddProduct, so the same checks
// apply as for later additions, and then counts the category. When a product
// is rejected the error is returned and the category is not counted; the
// products accepted before it stay counted.
func NewCategory(name, description string, products []Product, opts ...CategoryOption) (*Category, error) {
	c := &Category{
		name:        name,
		description: description,
		products:    make([]Product, 0, len(products)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.stats == nil {
		c.stats = DefaultStats()
	}
	for _, p := range products {
		if err := c.AddProduct(p); err != nil {
			return nil, err
		}
	}
	c.stats.categories.Add(1)
	return c, nil
}

func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }

// AddProduct appends p and bumps the product counter.
func (c *Category) AddProduct(p Product) error {
	if isNil(p) {
		return ErrNotProduct
	}
	c.products = append(c.products, p)
	c.stats.products.Add(1)
	return nil
}

// Summary renders "{name}, quantity of products: {total stock} units."
func (c *Category) Summary() string {
	units := 0
	for _, p := range c.products {
		units += p.Quantity()
	}
	return fmt.Sprintf("%s, quantity of products: %d units.", c.name, units)
}

func (c *Category) String() string { return c.Summary() }

// Repr is the diagnostic form: Category('name', 'description', N products).
func (c *Category) Repr() string {
	return fmt.Sprintf("Category('%s', '%s', %d products)", c.name, c.description, len(c.products))
}

// TotalPrice sums price*quantity over all products.
func (c *Category) TotalPrice() float64 {
	total := decimal.Zero
	for _, p := range c.products {
		total = total.Add(lineTotal(p.Price(), p.Quantity()))
	}
	return total.InexactFloat64()
}

// ProductsCount is the number of product entries, not the stock they hold.
func (c *Category) ProductsCount() int { return len(c.products) }

func (c *Category) Len() int { return len(c.products) }

// Iterate returns a fresh iterator; iterators never share a cursor.
func (c *Category) Iterate() *Iterator {
	n := len(c.products)
	return &Iterator{products: c.products[:n:n]}
}

// All yields the products in insertion order.
func (c *Category) All() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		it := c.Iterate()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// ProductsText lists Describe() of every product, one per line, each line
// terminated by a newline. Empty category gives "".
func (c *Category) ProductsText() string {
	var b strings.Builder
	for _, p := range c.products {
		b.WriteString(p.Describe())
		b.WriteByte('\n')
	}
	return b.String()
}

// ProductsList returns a copy of the product list. The products themselves
// are shared, so changes made through them are visible in the category.
func (c *Category) ProductsList() []Product {
	list := make([]Product, len(c.products))
	copy(list, c.products)
	return list
}

// Find looks a product up by name, ignoring case.
func (c *Category) Find(name string) (Product, bool) {
	for _, p := range c.products {
		if strings.EqualFold(p.Name(), name) {
			return p, true
		}
	}
	return nil, false
}

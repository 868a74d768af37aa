package domain

import "strings"

// Builder constructs the product NewProductWith creates when nothing merges.
type Builder func(rec Record) (Product, error)

// NewProduct builds a plain product from rec, unless existing already holds a
// product with the same name (case-insensitive). See NewProductWith.
func NewProduct(rec Record, existing []Product, opts ...Option) (Product, bool, error) {
	return NewProductWith(rec, existing, func(rec Record) (Product, error) {
		item, err := NewItem(rec, opts...)
		if err != nil {
			return nil, err
		}
		return item, nil
	})
}

// NewProductWith builds a product with build, unless existing already holds a
// product with the same name (case-insensitive), whatever its variant.
//
// In that case nothing is built. The existing product is mutated in place and
// returned: its quantity grows by rec.Quantity and its price is raised to
// rec.Price when that is strictly higher. The second result reports whether
// such a merge happened. Callers holding the existing product will observe
// the change.
func NewProductWith(rec Record, existing []Product, build Builder) (Product, bool, error) {
	if rec.Quantity < 0 {
		return nil, false, ErrNegativeQuantity
	}
	for _, p := range existing {
		if isNil(p) || !strings.EqualFold(p.Name(), rec.Name) {
			continue
		}
		if err := p.SetQuantity(p.Quantity() + rec.Quantity); err != nil {
			return nil, false, err
		}
		if rec.Price > p.Price() {
			p.SetPrice(rec.Price)
		}
		return p, true, nil
	}
	p, err := build(rec)
	if err != nil {
		return nil, false, err
	}
	if isNil(p) {
		return nil, false, ErrNotProduct
	}
	return p, false, nil
}

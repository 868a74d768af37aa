package domain

// Iterator walks a category's products once, in insertion order. Obtain a
// new one from Category.Iterate to start over.
type Iterator struct {
	products []Product
	index    int
}

// Next returns the following product, or false once the sequence is spent.
func (it *Iterator) Next() (Product, bool) {
	if it.index >= len(it.products) {
		return nil, false
	}
	p := it.products[it.index]
	it.index++
	return p, true
}

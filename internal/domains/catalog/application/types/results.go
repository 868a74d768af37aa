package types

import "github.com/Apurer/retail-catalog/internal/domains/catalog/domain"

// AddProductResult reports the product now held by the category. When Merged
// is true Product is a pre-existing entity whose stock (and maybe price) grew.
type AddProductResult struct {
	Product domain.Product
	Merged  bool
}

// ChangePriceResult carries the product and what happened to the proposal.
type ChangePriceResult struct {
	Product domain.Product
	Outcome domain.PriceOutcome
}

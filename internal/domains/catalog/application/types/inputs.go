package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
)

// ErrUnknownKind indicates a product input names a variant the catalog does not sell.
var ErrUnknownKind = errors.New("unknown product kind")

// ProductInput describes one product to build. Kind selects the variant; an
// empty Kind means a plain product. The variant block matching Kind is optional
// for variants and ignored otherwise.
type ProductInput struct {
	Kind          domain.Kind `yaml:"kind,omitempty" json:"kind,omitempty"`
	domain.Record `yaml:",inline"`

	Smartphone *domain.SmartphoneSpec `yaml:"smartphone,omitempty" json:"smartphone,omitempty"`
	LawnGrass  *domain.LawnGrassSpec  `yaml:"lawn_grass,omitempty" json:"lawn_grass,omitempty"`
}

// ResolvedKind is Kind with the plain-product default applied.
func (in ProductInput) ResolvedKind() domain.Kind {
	if in.Kind == "" {
		return domain.KindProduct
	}
	return domain.Kind(strings.ToLower(string(in.Kind)))
}

// CheckKind fails with ErrUnknownKind for a variant the catalog does not sell.
func (in ProductInput) CheckKind() error {
	switch in.ResolvedKind() {
	case domain.KindProduct, domain.KindSmartphone, domain.KindLawnGrass:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}
}

// Build constructs the product variant described by the input.
func (in ProductInput) Build(opts ...domain.Option) (domain.Product, error) {
	var (
		p   domain.Product
		err error
	)
	switch in.ResolvedKind() {
	case domain.KindProduct:
		p, err = domain.NewItem(in.Record, opts...)
	case domain.KindSmartphone:
		spec := domain.SmartphoneSpec{}
		if in.Smartphone != nil {
			spec = *in.Smartphone
		}
		p, err = domain.NewSmartphone(in.Record, spec, opts...)
	case domain.KindLawnGrass:
		spec := domain.LawnGrassSpec{}
		if in.LawnGrass != nil {
			spec = *in.LawnGrass
		}
		p, err = domain.NewLawnGrass(in.Record, spec, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateCategoryInput describes a category and its initial products.
type CreateCategoryInput struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Products    []ProductInput `yaml:"products" json:"products"`
}

// AddProductInput adds (or merges) a product into an existing category.
type AddProductInput struct {
	Category string
	Product  ProductInput
}

// ChangePriceInput proposes a new price for a product of a category.
type ChangePriceInput struct {
	Category string
	Product  string
	Price    float64
}

// PlaceOrderInput books Quantity units of a category's product. OrderID is
// optional; an empty one is generated.
type PlaceOrderInput struct {
	Category string
	Product  string
	Quantity int
	OrderID  string
}

// Seed is a whole catalogue loaded at start-up.
type Seed struct {
	Categories []CreateCategoryInput `yaml:"categories" json:"categories"`
}

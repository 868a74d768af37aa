package domain

// Container is implemented by aggregates that can be priced and counted:
// a Category sums over all of its products, an Order over its single line.
type Container interface {
	TotalPrice() float64
	ProductsCount() int
	Len() int
	Summary() string
}

var (
	_ Container = (*Category)(nil)
	_ Container = (*Order)(nil)
	_ Container = ContainerSnapshot{}
)

// ContainerSnapshot is a Container frozen at the moment it was taken. It
// shares no state with its source and is safe to read from any goroutine.
type ContainerSnapshot struct {
	summary       string
	totalPrice    float64
	productsCount int
	length        int
}

// Freeze captures the current figures of c.
func Freeze(c Container) ContainerSnapshot {
	return ContainerSnapshot{
		summary:       c.Summary(),
		totalPrice:    c.TotalPrice(),
		productsCount: c.ProductsCount(),
		length:        c.Len(),
	}
}

func (s ContainerSnapshot) TotalPrice() float64 { return s.totalPrice }
func (s ContainerSnapshot) ProductsCount() int  { return s.productsCount }
func (s ContainerSnapshot) Len() int            { return s.length }
func (s ContainerSnapshot) Summary() string     { return s.summary }

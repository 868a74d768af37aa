package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/ports"
)

// WriteReport prints every category with its products, then every container
// (categories and orders) with its totals, then the process counters.
func WriteReport(ctx context.Context, w io.Writer, svc ports.Service) error {
	categories, err := svc.ListCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if _, err := fmt.Fprintf(w, "%s\n%s", c.Summary(), c.ProductsText()); err != nil {
			return err
		}
		if c.Description() != "" {
			if _, err := fmt.Fprintf(w, "  %s\n", c.Description()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	containers, err := svc.Containers(ctx)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Containers:"); err != nil {
		return err
	}
	for _, c := range containers {
		_, err := fmt.Fprintf(w, "  %s total=%s products=%d len=%d\n",
			c.Summary(), domain.FormatAmount(c.TotalPrice()), c.ProductsCount(), c.Len())
		if err != nil {
			return err
		}
	}

	stats := svc.Stats(ctx)
	_, err = fmt.Fprintf(w, "Categories: %d, products: %d, orders: %d\n", stats.Categories, stats.Products, stats.Orders)
	return err
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	types "github.com/Apurer/retail-catalog/internal/domains/catalog/application/types"
)

// Execute runs the catalog CLI with args, writing command output to out.
// Telemetry is flushed whether or not the command succeeds.
func Execute(ctx context.Context, term IO, out io.Writer, args []string) error {
	root, closeApp := newRootCommand(term)
	root.SetArgs(args)
	root.SetOut(out)
	err := root.ExecuteContext(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Join(err, closeApp(shutdownCtx))
}

func newRootCommand(term IO) (*cobra.Command, func(context.Context) error) {
	var (
		configPath string
		seedPath   string
		app        *App
	)

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Inspect and operate an in-memory retail catalogue",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if seedPath != "" {
				cfg.Catalog.SeedPath = seedPath
			}
			if term.Prompt == nil {
				term.Prompt = cmd.OutOrStdout()
			}
			if term.In == nil {
				term.In = cmd.InOrStdin()
			}
			app, err = New(cmd.Context(), cfg, term)
			return err
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&seedPath, "seed", "", "path to a YAML catalogue to import (overrides catalog.seed_path)")

	current := func() *App { return app }
	root.AddCommand(
		newReportCommand(current),
		newRepriceCommand(current),
		newOrderCommand(current),
	)
	return root, func(ctx context.Context) error { return app.Close(ctx) }
}

func newReportCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print categories, containers and counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return WriteReport(cmd.Context(), cmd.OutOrStdout(), app().Service)
		},
	}
}

func newRepriceCommand(app func() *App) *cobra.Command {
	var input types.ChangePriceInput
	cmd := &cobra.Command{
		Use:   "reprice",
		Short: "Propose a new price for a product; decreases ask for confirmation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app().Service.ChangePrice(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(),
				fmt.Sprintf("Price change %s.", result.Outcome),
				result.Product.Describe())
		},
	}
	cmd.Flags().StringVar(&input.Category, "category", "", "category name")
	cmd.Flags().StringVar(&input.Product, "product", "", "product name")
	cmd.Flags().Float64Var(&input.Price, "price", 0, "proposed price")
	markRequired(cmd, "category", "product", "price")
	return cmd
}

func newOrderCommand(app func() *App) *cobra.Command {
	var input types.PlaceOrderInput
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place an order for a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := app().Service.PlaceOrder(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), order.Summary())
		},
	}
	cmd.Flags().StringVar(&input.Category, "category", "", "category name")
	cmd.Flags().StringVar(&input.Product, "product", "", "product name")
	cmd.Flags().IntVar(&input.Quantity, "quantity", 1, "units to order")
	cmd.Flags().StringVar(&input.OrderID, "id", "", "order id; generated when empty")
	markRequired(cmd, "category", "product")
	return cmd
}

// markRequired panics when a name does not match a defined flag.
func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("%s: mark flag %q required: %v", cmd.Name(), name, err))
		}
	}
}

func printLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

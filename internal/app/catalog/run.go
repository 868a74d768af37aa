package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Apurer/retail-catalog/internal/domains/catalog/adapters/console"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/Apurer/retail-catalog/internal/domains/catalog/adapters/observability"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/adapters/seed"
	catalogapp "github.com/Apurer/retail-catalog/internal/domains/catalog/application"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/domain"
	"github.com/Apurer/retail-catalog/internal/domains/catalog/ports"
	platformobservability "github.com/Apurer/retail-catalog/internal/platform/observability"
)

const instrumentationName = "internal.catalog.application"

// IO is the terminal the process talks to. Answers to price confirmations
// are read from In; questions go to Prompt; logs and exported spans go to Log.
type IO struct {
	In     io.Reader
	Prompt io.Writer
	Log    io.Writer
}

// App is a wired catalog process.
type App struct {
	Config  Config
	Service ports.Service
	Logger  *slog.Logger
	Stats   *domain.Stats

	shutdown func(context.Context) error
}

// New boots observability, builds the catalog service around an in-memory
// repository and imports the configured seed, if any.
func New(ctx context.Context, cfg Config, term IO) (*App, error) {
	if term.In == nil {
		term.In = os.Stdin
	}
	if term.Prompt == nil {
		term.Prompt = os.Stdout
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
		LogLevel:    cfg.Log.Level,
		LogFormat:   cfg.Log.Format,
		Output:      term.Log,
		Exporter:    cfg.Telemetry.Exporter,
		Endpoint:    cfg.Telemetry.Endpoint,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}
	logger := instruments.Logger

	stats := domain.DefaultStats()
	core := catalogapp.NewService(
		memory.NewRepository(),
		catalogapp.WithStats(stats),
		catalogapp.WithConfirmer(console.NewConfirmer(term.In, term.Prompt)),
		catalogapp.WithCurrency(cfg.Catalog.Currency),
		catalogapp.WithDecreaseConfirmation(cfg.Catalog.ConfirmPriceDecrease),
		catalogapp.WithLogger(logger),
	)
	svc := catalogobs.New(
		core,
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer(instrumentationName)),
		catalogobs.WithMeter(instruments.Meter(instrumentationName)),
	)

	app := &App{Config: cfg, Service: svc, Logger: logger, Stats: stats, shutdown: shutdown}
	if cfg.Catalog.SeedPath != "" {
		if err := app.importSeed(ctx, cfg.Catalog.SeedPath); err != nil {
			_ = app.Close(ctx)
			return nil, err
		}
	}
	return app, nil
}

func (a *App) importSeed(ctx context.Context, path string) error {
	s, err := seed.Load(path)
	if err != nil {
		return err
	}
	created, err := a.Service.Import(ctx, s)
	if err != nil {
		return err
	}
	a.Logger.Info("seed imported", slog.String("path", path), slog.Int("categories", len(created)))
	return nil
}

// Close flushes telemetry.
func (a *App) Close(ctx context.Context) error {
	if a == nil || a.shutdown == nil {
		return nil
	}
	if err := a.shutdown(ctx); err != nil {
		a.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		return err
	}
	return nil
}

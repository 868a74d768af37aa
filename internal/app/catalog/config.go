package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	platformobservability "github.com/Apurer/retail-catalog/internal/platform/observability"
)

// EnvPrefix prefixes every environment override, e.g. CATALOG_LOG_LEVEL.
const EnvPrefix = "CATALOG"

// Config carries the settings of the catalog process.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"` // local, staging, production
}

// CatalogConfig holds the business switches of the catalog.
type CatalogConfig struct {
	Currency             string `mapstructure:"currency"`
	ConfirmPriceDecrease bool   `mapstructure:"confirm_price_decrease"`
	// SeedPath points at a YAML catalogue imported at start-up. Empty skips it.
	SeedPath string `mapstructure:"seed_path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

type TelemetryConfig struct {
	Exporter string `mapstructure:"exporter"` // none, stdout, otlp
	Endpoint string `mapstructure:"endpoint"`
	Insecure bool   `mapstructure:"insecure"`
}

// LoadConfig reads configPath (or ./catalog.yaml, ./configs/catalog.yaml when
// empty), applies CATALOG_* environment overrides and defaults, and
// validates the result. A missing default config file is not an error.
func LoadConfig(configPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("catalog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Catalog.Currency) == "" {
		return errors.New("catalog.currency must not be empty")
	}
	if _, err := platformobservability.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	switch strings.ToLower(c.Telemetry.Exporter) {
	case platformobservability.ExporterNone, platformobservability.ExporterStdout, platformobservability.ExporterOTLP:
	default:
		return fmt.Errorf("telemetry.exporter must be none, stdout or otlp, got %q", c.Telemetry.Exporter)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "retail-catalog")
	v.SetDefault("app.env", "local")

	v.SetDefault("catalog.currency", "rub")
	v.SetDefault("catalog.confirm_price_decrease", true)
	v.SetDefault("catalog.seed_path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("telemetry.exporter", platformobservability.ExporterNone)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.insecure", true)
}

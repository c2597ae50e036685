package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config represents the full application configuration surface.
type Config struct {
	Data     DataConfig
	Planning PlanningConfig
	Daemon   DaemonConfig
	Logging  LoggingConfig
}

// DataConfig holds the catalog and order file locations.
type DataConfig struct {
	ProductsFile        string
	BlendsFile          string
	SalesOrdersFile     string
	RecurringOrdersFile string
}

// PlanningConfig holds scheduling policy knobs applied outside the engine.
type PlanningConfig struct {
	// DefaultOveragePercent is applied to orders that do not specify one.
	DefaultOveragePercent decimal.Decimal
	// DefaultLeadTimeDays bounds recurring-order lookahead when an order
	// does not carry its own.
	DefaultLeadTimeDays int
	// FallbackYieldOz substitutes for products with no yield history.
	// Zero disables the fallback and such products fail to schedule.
	FallbackYieldOz decimal.Decimal
}

// DaemonConfig holds planning daemon settings.
type DaemonConfig struct {
	CronSchedule string
	Timezone     string
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	overage, err := decimal.NewFromString(getenvWithDefault("GROWPLAN_DEFAULT_OVERAGE_PERCENT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid GROWPLAN_DEFAULT_OVERAGE_PERCENT: %w", err)
	}
	leadTime, err := strconv.Atoi(getenvWithDefault("GROWPLAN_DEFAULT_LEAD_TIME_DAYS", "14"))
	if err != nil {
		return nil, fmt.Errorf("invalid GROWPLAN_DEFAULT_LEAD_TIME_DAYS: %w", err)
	}
	fallbackYield, err := decimal.NewFromString(getenvWithDefault("GROWPLAN_FALLBACK_YIELD_OZ", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid GROWPLAN_FALLBACK_YIELD_OZ: %w", err)
	}

	cfg := &Config{
		Data: DataConfig{
			ProductsFile:        getenvWithDefault("GROWPLAN_PRODUCTS_FILE", "data/products.csv"),
			BlendsFile:          getenvWithDefault("GROWPLAN_BLENDS_FILE", "data/blends.yaml"),
			SalesOrdersFile:     getenvWithDefault("GROWPLAN_SALES_ORDERS_FILE", "data/sales_orders.csv"),
			RecurringOrdersFile: getenvWithDefault("GROWPLAN_RECURRING_ORDERS_FILE", "data/recurring_orders.csv"),
		},
		Planning: PlanningConfig{
			DefaultOveragePercent: overage,
			DefaultLeadTimeDays:   leadTime,
			FallbackYieldOz:       fallbackYield,
		},
		Daemon: DaemonConfig{
			CronSchedule: getenvWithDefault("GROWPLAN_CRON_SCHEDULE", "0 5 * * *"),
			Timezone:     getenvWithDefault("GROWPLAN_TIMEZONE", "UTC"),
		},
		Logging: LoggingConfig{
			Level: getenvWithDefault("GROWPLAN_LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch {
	case c.Data.ProductsFile == "":
		return errors.New("GROWPLAN_PRODUCTS_FILE must be provided")
	case c.Data.BlendsFile == "":
		return errors.New("GROWPLAN_BLENDS_FILE must be provided")
	case c.Data.SalesOrdersFile == "":
		return errors.New("GROWPLAN_SALES_ORDERS_FILE must be provided")
	case c.Data.RecurringOrdersFile == "":
		return errors.New("GROWPLAN_RECURRING_ORDERS_FILE must be provided")
	}

	if c.Planning.DefaultOveragePercent.Sign() < 0 {
		return errors.New("GROWPLAN_DEFAULT_OVERAGE_PERCENT must not be negative")
	}
	if c.Planning.DefaultLeadTimeDays <= 0 {
		return errors.New("GROWPLAN_DEFAULT_LEAD_TIME_DAYS must be positive")
	}
	if c.Planning.FallbackYieldOz.Sign() < 0 {
		return errors.New("GROWPLAN_FALLBACK_YIELD_OZ must not be negative")
	}

	if c.Daemon.CronSchedule == "" {
		return errors.New("GROWPLAN_CRON_SCHEDULE must be provided")
	}
	if c.Daemon.Timezone == "" {
		return errors.New("GROWPLAN_TIMEZONE must be provided")
	}

	if c.Logging.Level == "" {
		return errors.New("GROWPLAN_LOG_LEVEL must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/growplan/pkg/application/services"
	"github.com/vsinha/growplan/pkg/application/worker"
	"github.com/vsinha/growplan/pkg/infrastructure/config"
	"github.com/vsinha/growplan/pkg/infrastructure/events"
	"github.com/vsinha/growplan/pkg/logger"
)

// DaemonConfig holds configuration for the daemon command
type DaemonConfig struct {
	EnvFile string
	RunNow  bool
	Help    bool
}

// DaemonCommand runs the planning worker until interrupted. Unlike the
// other commands it is configured through the environment, so it can run
// under a process supervisor with no arguments.
type DaemonCommand struct {
	config DaemonConfig
}

// NewDaemonCommand creates a new daemon command with the given configuration
func NewDaemonCommand(config DaemonConfig) *DaemonCommand {
	return &DaemonCommand{
		config: config,
	}
}

// Execute runs the daemon until the context is cancelled
func (c *DaemonCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	cfg, err := config.Load(c.config.EnvFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.NewWithLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	files := DataFiles{
		Products:        cfg.Data.ProductsFile,
		Blends:          cfg.Data.BlendsFile,
		SalesOrders:     cfg.Data.SalesOrdersFile,
		RecurringOrders: cfg.Data.RecurringOrdersFile,
	}
	if err := requireFiles(map[string]string{
		"Products":         files.Products,
		"Blends":           files.Blends,
		"Sales Orders":     files.SalesOrders,
		"Recurring Orders": files.RecurringOrders,
	}); err != nil {
		return err
	}

	set, err := loadRepositories(files)
	if err != nil {
		return err
	}
	log.Info("data loaded",
		zap.Int("products", set.productCount),
		zap.Int("blends", set.blendCount),
		zap.Int("sales_orders", set.salesCount),
		zap.Int("recurring_orders", set.recurringCount))

	location, err := time.LoadLocation(cfg.Daemon.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %s: %w", cfg.Daemon.Timezone, err)
	}

	store := events.NewInMemoryEventStore()
	planner := services.NewPlannerService(
		set.products,
		set.blends,
		set.sales,
		set.recurring,
		store,
		logger.Named(log, "planner"),
		services.PlanningPolicy{
			DefaultOveragePercent: cfg.Planning.DefaultOveragePercent,
			DefaultLeadTimeDays:   cfg.Planning.DefaultLeadTimeDays,
			FallbackYieldOz:       cfg.Planning.FallbackYieldOz,
		},
	)

	w := worker.NewWorker(
		planner,
		worker.NewLogDispatcher(logger.Named(log, "dispatch")),
		store,
		logger.Named(log, "worker"),
		worker.Config{
			CronSpec: cfg.Daemon.CronSchedule,
			Location: location,
		},
	)

	if c.config.RunNow {
		if _, err := w.RunOnce(ctx, time.Now()); err != nil {
			return fmt.Errorf("initial planning run failed: %w", err)
		}
	}

	if err := w.Start(); err != nil {
		return err
	}
	log.Info("daemon running",
		zap.String("cron", cfg.Daemon.CronSchedule),
		zap.String("timezone", cfg.Daemon.Timezone))

	<-ctx.Done()

	w.Stop()
	log.Info("daemon stopped")
	return nil
}

// showHelp displays the help message
func (c *DaemonCommand) showHelp() {
	fmt.Printf(`growplan daemon - replan standing orders on a schedule

USAGE:
    growplan daemon [-env <file>] [-run-now]

OPTIONS:
    -env <file>   Load environment variables from this file
    -run-now      Run one planning cycle immediately on startup
    -help         Show this help message

ENVIRONMENT:
    GROWPLAN_PRODUCTS_FILE            Products CSV (default: data/products.csv)
    GROWPLAN_BLENDS_FILE              Blends YAML (default: data/blends.yaml)
    GROWPLAN_SALES_ORDERS_FILE        Sales orders CSV (default: data/sales_orders.csv)
    GROWPLAN_RECURRING_ORDERS_FILE    Recurring orders CSV (default: data/recurring_orders.csv)
    GROWPLAN_CRON_SCHEDULE            Planning cadence (default: "0 5 * * *")
    GROWPLAN_TIMEZONE                 Cron clock timezone (default: UTC)
    GROWPLAN_DEFAULT_OVERAGE_PERCENT  Overage for orders that carry none (default: 10)
    GROWPLAN_DEFAULT_LEAD_TIME_DAYS   Lookahead for orders without one (default: 14)
    GROWPLAN_FALLBACK_YIELD_OZ        Yield for products with no history (default: 0, disabled)
    GROWPLAN_LOG_LEVEL                Log level (default: info)

The daemon plans every active order on each cron tick and dispatches newly
planned runs exactly once. Stop it with SIGINT or SIGTERM.
`)
}

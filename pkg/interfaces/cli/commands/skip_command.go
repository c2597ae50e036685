package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/vsinha/growplan/pkg/application/services"
	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/growplan/pkg/infrastructure/repositories/memory"
)

// SkipConfig holds configuration for the skip and restore commands
type SkipConfig struct {
	DataDir             string
	RecurringOrdersFile string
	OrderID             string
	Date                string
	Restore             bool
	Help                bool
}

// SkipCommand strikes a delivery date from a standing order, or restores
// one, and writes the updated orders file back.
type SkipCommand struct {
	config SkipConfig
}

// NewSkipCommand creates a new skip command with the given configuration
func NewSkipCommand(config SkipConfig) *SkipCommand {
	return &SkipCommand{
		config: config,
	}
}

// Execute runs the skip command
func (c *SkipCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.OrderID == "" {
		return fmt.Errorf("validation error: -order is required")
	}
	if c.config.Date == "" {
		return fmt.Errorf("validation error: -date is required")
	}
	date, err := time.Parse("2006-01-02", c.config.Date)
	if err != nil {
		return fmt.Errorf("invalid date %s (expected YYYY-MM-DD)", c.config.Date)
	}

	files := resolveDataFiles(c.config.DataDir, DataFiles{
		RecurringOrders: c.config.RecurringOrdersFile,
	})
	if err := requireFiles(map[string]string{"Recurring Orders": files.RecurringOrders}); err != nil {
		return err
	}

	orders, err := csv.NewLoader().LoadRecurringOrders(files.RecurringOrders)
	if err != nil {
		return fmt.Errorf("error loading recurring orders: %w", err)
	}

	recurring := memory.NewRecurringOrderRepository(len(orders))
	if err := recurring.LoadRecurringOrders(orders); err != nil {
		return fmt.Errorf("failed to load recurring orders into repository: %w", err)
	}

	// Only the recurring repository is touched here; the planner carries
	// the skip bookkeeping so the change is recorded like any other.
	planner := services.NewPlannerService(nil, nil, nil, recurring, nil, nil, services.PlanningPolicy{})

	orderID := entities.OrderID(c.config.OrderID)
	if c.config.Restore {
		if err := planner.RestoreDelivery(ctx, orderID, date); err != nil {
			return err
		}
	} else {
		if err := planner.SkipDelivery(ctx, orderID, date); err != nil {
			return err
		}
	}

	updated, err := recurring.GetAllRecurringOrders()
	if err != nil {
		return fmt.Errorf("failed to read updated orders: %w", err)
	}
	if err := csv.NewWriter().WriteRecurringOrders(files.RecurringOrders, updated); err != nil {
		return err
	}

	verb := "Skipped"
	if c.config.Restore {
		verb = "Restored"
	}
	fmt.Printf("✅ %s delivery %s for %s\n", verb, date.Format("2006-01-02"), orderID)

	order, err := recurring.GetRecurringOrder(orderID)
	if err == nil {
		if next, ok, err := order.NextDelivery(time.Now()); err == nil && ok {
			fmt.Printf("Next delivery: %s (%s)\n", next.Format("2006-01-02"), next.Weekday())
		}
	}

	return nil
}

// showHelp displays the help message
func (c *SkipCommand) showHelp() {
	fmt.Printf(`growplan skip - strike one delivery date from a standing order
growplan restore - put a skipped date back

USAGE:
    growplan skip -order <id> -date <YYYY-MM-DD> -data <directory>
    growplan restore -order <id> -date <YYYY-MM-DD> -data <directory>

OPTIONS:
    -order <id>         Recurring order to modify (required)
    -date <YYYY-MM-DD>  Delivery date to skip or restore (required)
    -data <dir>         Path to data directory containing recurring_orders.csv
    -recurring <file>   Path to recurring orders CSV file
    -help               Show this help message

The updated skip list is written back to the recurring orders file.

EXAMPLES:
    # Customer is closed for a holiday
    growplan skip -order ro-1 -date 2025-07-04 -data data

    # They reopened after all
    growplan restore -order ro-1 -date 2025-07-04 -data data
`)
}

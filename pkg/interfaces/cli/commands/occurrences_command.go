package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/growplan"
	"github.com/vsinha/growplan/pkg/infrastructure/repositories/csv"
)

// OccurrencesConfig holds configuration for the occurrences command
type OccurrencesConfig struct {
	DataDir             string
	RecurringOrdersFile string
	OrderID             string
	FromDate            string
	LeadTimeDays        int
	Help                bool
}

// OccurrencesCommand lists the upcoming deliveries of a standing order
type OccurrencesCommand struct {
	config OccurrencesConfig
}

// NewOccurrencesCommand creates a new occurrences command with the given
// configuration
func NewOccurrencesCommand(config OccurrencesConfig) *OccurrencesCommand {
	return &OccurrencesCommand{
		config: config,
	}
}

// Execute runs the occurrences command
func (c *OccurrencesCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.OrderID == "" {
		return fmt.Errorf("validation error: -order is required")
	}

	files := resolveDataFiles(c.config.DataDir, DataFiles{
		RecurringOrders: c.config.RecurringOrdersFile,
	})
	if err := requireFiles(map[string]string{"Recurring Orders": files.RecurringOrders}); err != nil {
		return err
	}

	order, err := c.findOrder(files.RecurringOrders)
	if err != nil {
		return err
	}

	from := time.Now()
	if c.config.FromDate != "" {
		from, err = time.Parse("2006-01-02", c.config.FromDate)
		if err != nil {
			return fmt.Errorf("invalid from date %s (expected YYYY-MM-DD)", c.config.FromDate)
		}
	}

	// An explicit horizon overrides the order's own
	if c.config.LeadTimeDays > 0 {
		order.Schedule.LeadTimeDays = c.config.LeadTimeDays
	}

	dates, err := order.Occurrences(from)
	if err != nil {
		return fmt.Errorf("error enumerating deliveries: %w", err)
	}

	c.printOccurrences(order, dates, from)
	return nil
}

// findOrder loads the recurring orders file and picks out the target order
func (c *OccurrencesCommand) findOrder(filename string) (*entities.RecurringOrder, error) {
	orders, err := csv.NewLoader().LoadRecurringOrders(filename)
	if err != nil {
		return nil, fmt.Errorf("error loading recurring orders: %w", err)
	}

	for _, order := range orders {
		if order.ID == entities.OrderID(c.config.OrderID) {
			return order, nil
		}
	}
	return nil, fmt.Errorf("recurring order not found: %s", c.config.OrderID)
}

// printOccurrences renders the delivery list
func (c *OccurrencesCommand) printOccurrences(order *entities.RecurringOrder, dates []time.Time, from time.Time) {
	target := fmt.Sprintf("product %s", order.ProductID)
	if order.IsBlend() {
		target = fmt.Sprintf("blend %s", order.BlendID)
	}

	fmt.Printf("📆 Upcoming deliveries for %s (%s, %s)\n", order.ID, order.Customer, target)
	if !order.Active {
		fmt.Println("⚠️  This order is paused; the planner will not schedule it.")
	}
	if len(order.SkipDates) > 0 {
		fmt.Printf("Skipped dates: %d on file\n", len(order.SkipDates))
	}
	fmt.Println()

	if len(dates) == 0 {
		fmt.Printf("No deliveries within %d days of %s.\n",
			order.Schedule.LeadTimeDays, growplan.Midnight(from).Format("2006-01-02"))
		return
	}

	for i, date := range dates {
		fmt.Printf("  %2d. %s  %-9s %s\n",
			i+1,
			date.Format("2006-01-02"),
			date.Weekday(),
			growplan.DateLabel(date, from))
	}
}

// showHelp displays the help message
func (c *OccurrencesCommand) showHelp() {
	fmt.Printf(`growplan occurrences - list a standing order's upcoming deliveries

USAGE:
    growplan occurrences -order <id> -data <directory>

OPTIONS:
    -order <id>         Recurring order to inspect (required)
    -data <dir>         Path to data directory containing recurring_orders.csv
    -recurring <file>   Path to recurring orders CSV file
    -from <YYYY-MM-DD>  Enumerate from this date (default: today)
    -lead-time <days>   Override the order's lookahead horizon
    -help               Show this help message

EXAMPLES:
    # Next deliveries for a weekly order
    growplan occurrences -order ro-1 -data data

    # What would ship in the next 30 days
    growplan occurrences -order ro-1 -data data -lead-time 30
`)
}

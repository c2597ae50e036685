package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/growplan/pkg/application/services"
	"github.com/vsinha/growplan/pkg/interfaces/cli/output"
)

// PlanConfig holds configuration for the plan command
type PlanConfig struct {
	DataDir             string
	ProductsFile        string
	BlendsFile          string
	SalesOrdersFile     string
	RecurringOrdersFile string
	PlanDate            string
	Format              string
	OutputDir           string
	DefaultOverage      string
	FallbackYield       string
	Verbose             bool
	Help                bool
}

// PlanCommand computes the full production plan from data files
type PlanCommand struct {
	config PlanConfig
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config PlanConfig) *PlanCommand {
	return &PlanCommand{
		config: config,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	files := resolveDataFiles(c.config.DataDir, DataFiles{
		Products:        c.config.ProductsFile,
		Blends:          c.config.BlendsFile,
		SalesOrders:     c.config.SalesOrdersFile,
		RecurringOrders: c.config.RecurringOrdersFile,
	})
	inputFiles := map[string]string{
		"Products":         files.Products,
		"Blends":           files.Blends,
		"Sales Orders":     files.SalesOrders,
		"Recurring Orders": files.RecurringOrders,
	}
	if err := requireFiles(inputFiles); err != nil {
		return err
	}

	planDate, err := c.resolvePlanDate()
	if err != nil {
		return err
	}

	policy, err := c.resolvePolicy()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		c.printHeader(files, planDate)
		fmt.Println("📂 Loading data files...")
	}

	set, err := loadRepositories(files)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Products: %d\n", set.productCount)
		fmt.Printf("  Blends: %d\n", set.blendCount)
		fmt.Printf("  Sales Orders: %d\n", set.salesCount)
		fmt.Printf("  Recurring Orders: %d\n", set.recurringCount)
		fmt.Println()
	}

	planner := services.NewPlannerService(
		set.products,
		set.blends,
		set.sales,
		set.recurring,
		nil,
		nil,
		policy,
	)

	if c.config.Verbose {
		fmt.Println("🔄 Computing backward schedules...")
	}

	startTime := time.Now()
	result, err := planner.PlanAll(ctx, planDate)
	planTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error computing plan: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Planning completed in %v\n\n", planTime)
	}

	outputConfig := output.Config{
		Format:     c.config.Format,
		OutputDir:  c.config.OutputDir,
		Verbose:    c.config.Verbose,
		PlanTime:   planTime,
		InputFiles: inputFiles,
	}

	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Plan complete!")
	}

	return nil
}

// validateInputs validates the command configuration
func (c *PlanCommand) validateInputs() error {
	if c.config.DataDir == "" &&
		(c.config.ProductsFile == "" || c.config.BlendsFile == "" ||
			c.config.SalesOrdersFile == "" || c.config.RecurringOrdersFile == "") {
		return fmt.Errorf("must specify either -data directory or individual data files")
	}
	return nil
}

// resolvePlanDate parses the plan date flag, defaulting to today
func (c *PlanCommand) resolvePlanDate() (time.Time, error) {
	if c.config.PlanDate == "" {
		return time.Now(), nil
	}

	date, err := time.Parse("2006-01-02", c.config.PlanDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid plan date %s (expected YYYY-MM-DD)", c.config.PlanDate)
	}
	return date, nil
}

// resolvePolicy parses the policy flags into a planning policy
func (c *PlanCommand) resolvePolicy() (services.PlanningPolicy, error) {
	var policy services.PlanningPolicy

	if c.config.DefaultOverage != "" {
		overage, err := decimal.NewFromString(c.config.DefaultOverage)
		if err != nil {
			return policy, fmt.Errorf("invalid default overage %s", c.config.DefaultOverage)
		}
		policy.DefaultOveragePercent = overage
	}

	if c.config.FallbackYield != "" {
		yield, err := decimal.NewFromString(c.config.FallbackYield)
		if err != nil {
			return policy, fmt.Errorf("invalid fallback yield %s", c.config.FallbackYield)
		}
		policy.FallbackYieldOz = yield
	}

	return policy, nil
}

// printHeader prints the command header information
func (c *PlanCommand) printHeader(files DataFiles, planDate time.Time) {
	fmt.Printf("🌱 GrowPlan CLI\n")
	fmt.Printf("Plan date: %s\n", planDate.Format("2006-01-02"))
	fmt.Printf("Input files:\n")
	fmt.Printf("  Products: %s\n", files.Products)
	fmt.Printf("  Blends: %s\n", files.Blends)
	fmt.Printf("  Sales Orders: %s\n", files.SalesOrders)
	fmt.Printf("  Recurring Orders: %s\n", files.RecurringOrders)
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *PlanCommand) showHelp() {
	fmt.Printf(`growplan plan - compute the production schedule for every order

USAGE:
    growplan plan -data <directory>            # Use data directory with standard file names
    growplan plan -products <file> ...         # Use individual data files

OPTIONS:
    -data <dir>         Path to data directory containing the standard files
    -products <file>    Path to products CSV file
    -blends <file>      Path to blends YAML file
    -sales <file>       Path to sales orders CSV file
    -recurring <file>   Path to recurring orders CSV file
    -date <YYYY-MM-DD>  Plan as of this date (default: today)
    -format <fmt>       Output format: text, json, svg (default: text)
    -output <dir>       Output directory for results (optional)
    -default-overage <pct>  Overage percent for orders that carry none
    -fallback-yield <oz>    Yield per tray for products with no history
    -verbose            Enable verbose output
    -help               Show this help message

DATA DIRECTORY STRUCTURE:
    data/
    ├── products.csv           # Crop catalog with growth timings
    ├── blends.yaml            # Blend recipes
    ├── sales_orders.csv       # One-off orders
    └── recurring_orders.csv   # Standing orders

DATA FILE FORMATS:

products.csv:
    product_id,name,days_soaking,days_germination,days_light,avg_oz_per_tray,seed_oz_per_tray
    pea,Pea Shoots,1,2,4,5,8

blends.yaml:
    blends:
      - blend_id: house-blend
        name: House Blend
        components:
          - product_id: pea
            ratio_percent: 40
          - product_id: radish
            ratio_percent: 60

sales_orders.csv:
    order_id,customer,target_type,target_id,quantity_oz,overage_percent,delivery_date
    so-1,Green Fork Bistro,product,pea,20,10,2025-06-15

recurring_orders.csv:
    order_id,customer,target_type,target_id,quantity_oz,overage_percent,schedule_type,days_of_week,interval_days,start_date,end_date,lead_time_days,skip_dates,active
    ro-1,Harvest Market,blend,house-blend,24,10,FixedDay,Sun,,2025-05-04,,14,,true

EXAMPLES:
    # Plan everything in a data directory
    growplan plan -data data -verbose

    # Plan as of a specific date
    growplan plan -data data -date 2025-06-02

    # Emit JSON for another system
    growplan plan -data data -format json -output results/

    # Render the grow timeline
    growplan plan -data data -format svg -output results/
`)
}

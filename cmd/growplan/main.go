package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vsinha/growplan/pkg/interfaces/cli/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "plan":
		err = runPlan(os.Args[2:])
	case "occurrences":
		err = runOccurrences(os.Args[2:])
	case "skip":
		err = runSkip(os.Args[2:], false)
	case "restore":
		err = runSkip(os.Args[2:], true)
	case "daemon":
		err = runDaemon(os.Args[2:])
	case "help", "-help", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	var (
		dataDir        = fs.String("data", "", "Path to data directory containing all input files")
		productsFile   = fs.String("products", "", "Path to products CSV file")
		blendsFile     = fs.String("blends", "", "Path to blends YAML file")
		salesFile      = fs.String("sales", "", "Path to sales orders CSV file")
		recurringFile  = fs.String("recurring", "", "Path to recurring orders CSV file")
		planDate       = fs.String("date", "", "Plan as of this date, YYYY-MM-DD (default: today)")
		format         = fs.String("format", "text", "Output format: text, json, svg")
		outputDir      = fs.String("output", "", "Output directory for results (optional)")
		defaultOverage = fs.String("default-overage", "", "Overage percent for orders that carry none")
		fallbackYield  = fs.String("fallback-yield", "", "Yield in oz/tray for products with no history")
		verbose        = fs.Bool("verbose", false, "Enable verbose output")
		help           = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	config := commands.PlanConfig{
		DataDir:             *dataDir,
		ProductsFile:        *productsFile,
		BlendsFile:          *blendsFile,
		SalesOrdersFile:     *salesFile,
		RecurringOrdersFile: *recurringFile,
		PlanDate:            *planDate,
		Format:              *format,
		OutputDir:           *outputDir,
		DefaultOverage:      *defaultOverage,
		FallbackYield:       *fallbackYield,
		Verbose:             *verbose,
		Help:                *help,
	}

	return commands.NewPlanCommand(config).Execute(context.Background())
}

func runOccurrences(args []string) error {
	fs := flag.NewFlagSet("occurrences", flag.ExitOnError)
	var (
		dataDir       = fs.String("data", "", "Path to data directory containing all input files")
		recurringFile = fs.String("recurring", "", "Path to recurring orders CSV file")
		orderID       = fs.String("order", "", "Recurring order ID to inspect")
		fromDate      = fs.String("from", "", "List deliveries from this date, YYYY-MM-DD (default: today)")
		leadTime      = fs.Int("lead-time", 0, "Override the order's lookahead window in days")
		help          = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	config := commands.OccurrencesConfig{
		DataDir:             *dataDir,
		RecurringOrdersFile: *recurringFile,
		OrderID:             *orderID,
		FromDate:            *fromDate,
		LeadTimeDays:        *leadTime,
		Help:                *help,
	}

	return commands.NewOccurrencesCommand(config).Execute(context.Background())
}

func runSkip(args []string, restore bool) error {
	name := "skip"
	if restore {
		name = "restore"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	var (
		dataDir       = fs.String("data", "", "Path to data directory containing all input files")
		recurringFile = fs.String("recurring", "", "Path to recurring orders CSV file")
		orderID       = fs.String("order", "", "Recurring order ID to modify")
		date          = fs.String("date", "", "Delivery date to skip or restore, YYYY-MM-DD")
		help          = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	config := commands.SkipConfig{
		DataDir:             *dataDir,
		RecurringOrdersFile: *recurringFile,
		OrderID:             *orderID,
		Date:                *date,
		Restore:             restore,
		Help:                *help,
	}

	return commands.NewSkipCommand(config).Execute(context.Background())
}

func runDaemon(args []string) error {
	fs := flag.NewFlagSet("daemon", flag.ExitOnError)
	var (
		envFile = fs.String("env", "", "Load environment variables from this file")
		runNow  = fs.Bool("run-now", false, "Run one planning cycle immediately on startup")
		help    = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	config := commands.DaemonConfig{
		EnvFile: *envFile,
		RunNow:  *runNow,
		Help:    *help,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return commands.NewDaemonCommand(config).Execute(ctx)
}

func printUsage() {
	fmt.Printf(`growplan - production scheduling for a microgreens farm

USAGE:
    growplan <command> [options]

COMMANDS:
    plan         Plan all deliveries and print the production schedule
    occurrences  List upcoming deliveries for a recurring order
    skip         Skip one delivery date on a recurring order
    restore      Restore a previously skipped delivery date
    daemon       Run the planning worker on a cron schedule
    help         Show this help message

Run 'growplan <command> -help' for command-specific options.
`)
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vsinha/growplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/growplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/growplan/pkg/infrastructure/repositories/yamlfile"
)

// DataFiles names the catalog and order inputs
type DataFiles struct {
	Products        string
	Blends          string
	SalesOrders     string
	RecurringOrders string
}

// resolveDataFiles fills unset paths from the conventional data directory
// layout
func resolveDataFiles(dataDir string, files DataFiles) DataFiles {
	if dataDir == "" {
		return files
	}
	if files.Products == "" {
		files.Products = filepath.Join(dataDir, "products.csv")
	}
	if files.Blends == "" {
		files.Blends = filepath.Join(dataDir, "blends.yaml")
	}
	if files.SalesOrders == "" {
		files.SalesOrders = filepath.Join(dataDir, "sales_orders.csv")
	}
	if files.RecurringOrders == "" {
		files.RecurringOrders = filepath.Join(dataDir, "recurring_orders.csv")
	}
	return files
}

// requireFiles validates that each named input file exists
func requireFiles(files map[string]string) error {
	for name, path := range files {
		if path == "" {
			return fmt.Errorf("%s file not specified", name)
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("%s file not found: %s", name, path)
		}
	}
	return nil
}

// repositorySet bundles loaded in-memory repositories with their row counts
type repositorySet struct {
	products  *memory.ProductRepository
	blends    *memory.BlendRepository
	sales     *memory.SalesOrderRepository
	recurring *memory.RecurringOrderRepository

	productCount   int
	blendCount     int
	salesCount     int
	recurringCount int
}

// loadRepositories reads all four data files into memory repositories
func loadRepositories(files DataFiles) (*repositorySet, error) {
	csvLoader := csv.NewLoader()
	yamlLoader := yamlfile.NewLoader()

	products, err := csvLoader.LoadProducts(files.Products)
	if err != nil {
		return nil, fmt.Errorf("error loading products: %w", err)
	}

	blends, err := yamlLoader.LoadBlends(files.Blends)
	if err != nil {
		return nil, fmt.Errorf("error loading blends: %w", err)
	}

	salesOrders, err := csvLoader.LoadSalesOrders(files.SalesOrders)
	if err != nil {
		return nil, fmt.Errorf("error loading sales orders: %w", err)
	}

	recurringOrders, err := csvLoader.LoadRecurringOrders(files.RecurringOrders)
	if err != nil {
		return nil, fmt.Errorf("error loading recurring orders: %w", err)
	}

	set := &repositorySet{
		products:       memory.NewProductRepository(len(products)),
		blends:         memory.NewBlendRepository(len(blends)),
		sales:          memory.NewSalesOrderRepository(len(salesOrders)),
		recurring:      memory.NewRecurringOrderRepository(len(recurringOrders)),
		productCount:   len(products),
		blendCount:     len(blends),
		salesCount:     len(salesOrders),
		recurringCount: len(recurringOrders),
	}

	if err := set.products.LoadProducts(products); err != nil {
		return nil, fmt.Errorf("failed to load products into repository: %w", err)
	}
	if err := set.blends.LoadBlends(blends); err != nil {
		return nil, fmt.Errorf("failed to load blends into repository: %w", err)
	}
	if err := set.sales.LoadSalesOrders(salesOrders); err != nil {
		return nil, fmt.Errorf("failed to load sales orders into repository: %w", err)
	}
	if err := set.recurring.LoadRecurringOrders(recurringOrders); err != nil {
		return nil, fmt.Errorf("failed to load recurring orders into repository: %w", err)
	}

	return set, nil
}

package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/growplan"
	"github.com/vsinha/growplan/pkg/infrastructure/repositories/memory"
)

// mustCreateProduct is a helper for tests - panics on validation error
func mustCreateProduct(
	id, name string,
	daysSoaking, daysGermination, daysLight int,
	avgOzPerTray, seedOzPerTray string,
) *entities.Product {
	product, err := entities.NewProduct(
		entities.ProductID(id),
		name,
		daysSoaking,
		daysGermination,
		daysLight,
		decimal.RequireFromString(avgOzPerTray),
		decimal.RequireFromString(seedOzPerTray),
	)
	if err != nil {
		panic(err)
	}
	return product
}

// mustCreateBlend is a helper for tests - panics on validation error
func mustCreateBlend(id, name string, components []entities.BlendComponent) *entities.Blend {
	blend, err := entities.NewBlend(entities.BlendID(id), name, components)
	if err != nil {
		panic(err)
	}
	return blend
}

func component(productID string, ratioPercent string) entities.BlendComponent {
	return entities.BlendComponent{
		ProductID:    entities.ProductID(productID),
		RatioPercent: decimal.RequireFromString(ratioPercent),
	}
}

// BuildFarmTestData builds a small microgreens farm: a five-crop catalog, two
// blends, one dated sales order, and two standing orders. The dates are fixed
// so tests can plan from 2025-06-02 (a Monday) and assert exact results.
func BuildFarmTestData() (*memory.ProductRepository, *memory.BlendRepository, *memory.SalesOrderRepository, *memory.RecurringOrderRepository) {
	productRepo := memory.NewProductRepository(5)
	blendRepo := memory.NewBlendRepository(2)
	salesRepo := memory.NewSalesOrderRepository(1)
	recurringRepo := memory.NewRecurringOrderRepository(2)

	products := []*entities.Product{
		mustCreateProduct("pea", "Pea Shoots", 1, 2, 4, "5", "8"),
		mustCreateProduct("radish", "Radish", 0, 2, 4, "4", "1.5"),
		mustCreateProduct("sunflower", "Sunflower", 1, 3, 5, "6", "9"),
		mustCreateProduct("broccoli", "Broccoli", 0, 2, 6, "3", "1"),
		// No yield history yet; scheduling this crop needs the fallback policy.
		mustCreateProduct("amaranth", "Amaranth", 0, 3, 9, "0", "0.5"),
	}
	if err := productRepo.LoadProducts(products); err != nil {
		panic(err)
	}

	blends := []*entities.Blend{
		mustCreateBlend("spicy-mix", "Spicy Mix", []entities.BlendComponent{
			component("radish", "50"),
			component("broccoli", "50"),
		}),
		mustCreateBlend("house-blend", "House Blend", []entities.BlendComponent{
			component("pea", "40"),
			component("sunflower", "30"),
			component("radish", "30"),
		}),
	}
	if err := blendRepo.LoadBlends(blends); err != nil {
		panic(err)
	}

	salesOrder, err := entities.NewSalesOrder(
		"so-1",
		"Green Fork Bistro",
		"pea",
		"",
		decimal.NewFromInt(20),
		decimal.NewFromInt(10),
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	if err := salesRepo.LoadSalesOrders([]*entities.SalesOrder{salesOrder}); err != nil {
		panic(err)
	}

	// Sunday deliveries for the house blend, two weeks of visibility.
	weekly, err := entities.NewRecurringOrder(
		"ro-1",
		"Harvest Market",
		"",
		"house-blend",
		decimal.NewFromInt(24),
		decimal.NewFromInt(10),
		growplan.RecurringSchedule{
			Type:         growplan.FixedDay,
			DaysOfWeek:   []time.Weekday{time.Sunday},
			StartDate:    time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC),
			LeadTimeDays: 14,
		},
	)
	if err != nil {
		panic(err)
	}

	paused, err := entities.NewRecurringOrder(
		"ro-2",
		"Riverbend Co-op",
		"radish",
		"",
		decimal.NewFromInt(12),
		decimal.NewFromInt(0),
		growplan.RecurringSchedule{
			Type:         growplan.Interval,
			IntervalDays: 7,
			StartDate:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			LeadTimeDays: 14,
		},
	)
	if err != nil {
		panic(err)
	}
	paused.Active = false

	if err := recurringRepo.LoadRecurringOrders([]*entities.RecurringOrder{weekly, paused}); err != nil {
		panic(err)
	}

	return productRepo, blendRepo, salesRepo, recurringRepo
}

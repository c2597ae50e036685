package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/growplan"
)

func testRecurringOrder(id entities.OrderID) *entities.RecurringOrder {
	return &entities.RecurringOrder{
		ID:         id,
		Customer:   "Harvest Market",
		ProductID:  "sunflower",
		QuantityOz: decimal.NewFromInt(32),
		Schedule: growplan.RecurringSchedule{
			Type:         growplan.FixedDay,
			DaysOfWeek:   []time.Weekday{time.Monday},
			StartDate:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			LeadTimeDays: 14,
		},
		Active: true,
	}
}

func TestSalesOrderRepository_LoadAndGet(t *testing.T) {
	repo := NewSalesOrderRepository(5)

	orders := []*entities.SalesOrder{
		{
			ID:           "so-1",
			Customer:     "Green Leaf Cafe",
			ProductID:    "sunflower",
			QuantityOz:   decimal.NewFromInt(32),
			DeliveryDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	if err := repo.LoadSalesOrders(orders); err != nil {
		t.Fatalf("Failed to load orders: %v", err)
	}

	retrieved, err := repo.GetSalesOrder("so-1")
	if err != nil {
		t.Fatalf("Failed to get order: %v", err)
	}
	if retrieved.Customer != "Green Leaf Cafe" {
		t.Errorf("Expected customer Green Leaf Cafe, got %s", retrieved.Customer)
	}

	if _, err := repo.GetSalesOrder("missing"); err == nil {
		t.Error("Expected error for missing order, got nil")
	}
}

func TestRecurringOrderRepository_SkipDates(t *testing.T) {
	repo := NewRecurringOrderRepository(5)
	if err := repo.LoadRecurringOrders([]*entities.RecurringOrder{testRecurringOrder("ro-1")}); err != nil {
		t.Fatalf("Failed to load orders: %v", err)
	}

	skip := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	if err := repo.AddSkipDate("ro-1", skip); err != nil {
		t.Fatalf("Failed to add skip date: %v", err)
	}
	// Adding the same day twice stays a single entry.
	if err := repo.AddSkipDate("ro-1", skip.Add(6*time.Hour)); err != nil {
		t.Fatalf("Failed to re-add skip date: %v", err)
	}

	order, err := repo.GetRecurringOrder("ro-1")
	if err != nil {
		t.Fatalf("Failed to get order: %v", err)
	}
	if len(order.SkipDates) != 1 {
		t.Fatalf("Expected 1 skip date, got %d", len(order.SkipDates))
	}

	if err := repo.RemoveSkipDate("ro-1", skip); err != nil {
		t.Fatalf("Failed to remove skip date: %v", err)
	}
	order, err = repo.GetRecurringOrder("ro-1")
	if err != nil {
		t.Fatalf("Failed to get order: %v", err)
	}
	if len(order.SkipDates) != 0 {
		t.Errorf("Expected no skip dates, got %d", len(order.SkipDates))
	}

	if err := repo.AddSkipDate("missing", skip); err == nil {
		t.Error("Expected error for missing order, got nil")
	}
}

func TestRecurringOrderRepository_ReturnsCopies(t *testing.T) {
	repo := NewRecurringOrderRepository(1)
	if err := repo.LoadRecurringOrders([]*entities.RecurringOrder{testRecurringOrder("ro-1")}); err != nil {
		t.Fatalf("Failed to load orders: %v", err)
	}

	order, err := repo.GetRecurringOrder("ro-1")
	if err != nil {
		t.Fatalf("Failed to get order: %v", err)
	}
	order.SkipDates = append(order.SkipDates, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC))

	fresh, err := repo.GetRecurringOrder("ro-1")
	if err != nil {
		t.Fatalf("Failed to get order: %v", err)
	}
	if len(fresh.SkipDates) != 0 {
		t.Error("Mutating a returned order leaked into the repository")
	}
}

func TestRecurringOrderRepository_ConcurrentAccess(t *testing.T) {
	repo := NewRecurringOrderRepository(1)
	if err := repo.LoadRecurringOrders([]*entities.RecurringOrder{testRecurringOrder("ro-1")}); err != nil {
		t.Fatalf("Failed to load orders: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		day := time.Date(2025, 6, 2+i, 0, 0, 0, 0, time.UTC)
		go func() {
			defer wg.Done()
			_ = repo.AddSkipDate("ro-1", day)
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.GetAllRecurringOrders()
		}()
	}
	wg.Wait()

	order, err := repo.GetRecurringOrder("ro-1")
	if err != nil {
		t.Fatalf("Failed to get order: %v", err)
	}
	if len(order.SkipDates) != 8 {
		t.Errorf("Expected 8 skip dates, got %d", len(order.SkipDates))
	}
}

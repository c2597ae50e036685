package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/domain/repositories"

	"github.com/vsinha/growplan/pkg/growplan"
)

// SalesOrderRepository provides in-memory storage for one-off orders
type SalesOrderRepository struct {
	orders    []entities.SalesOrder
	ordersMap map[entities.OrderID]int
}

// NewSalesOrderRepository creates a new in-memory sales order repository
func NewSalesOrderRepository(expectedOrders int) *SalesOrderRepository {
	return &SalesOrderRepository{
		orders:    make([]entities.SalesOrder, 0, expectedOrders),
		ordersMap: make(map[entities.OrderID]int, expectedOrders),
	}
}

// Verify interface compliance
var _ repositories.SalesOrderRepository = (*SalesOrderRepository)(nil)

// LoadSalesOrders loads orders into the repository
func (r *SalesOrderRepository) LoadSalesOrders(orders []*entities.SalesOrder) error {
	for _, order := range orders {
		r.AddSalesOrder(*order)
	}
	return nil
}

// AddSalesOrder adds an order to the repository
func (r *SalesOrderRepository) AddSalesOrder(order entities.SalesOrder) {
	r.ordersMap[order.ID] = len(r.orders)
	r.orders = append(r.orders, order)
}

// GetSalesOrder returns the order with the given id
func (r *SalesOrderRepository) GetSalesOrder(id entities.OrderID) (*entities.SalesOrder, error) {
	index, exists := r.ordersMap[id]
	if !exists {
		return nil, fmt.Errorf("sales order not found: %s", id)
	}
	return &r.orders[index], nil
}

// GetAllSalesOrders returns all orders
func (r *SalesOrderRepository) GetAllSalesOrders() ([]*entities.SalesOrder, error) {
	var orders []*entities.SalesOrder
	for i := range r.orders {
		orders = append(orders, &r.orders[i])
	}
	return orders, nil
}

// RecurringOrderRepository provides in-memory storage for standing orders.
// Unlike the catalog repositories it is written to after load: the daemon
// and CLI can mark deliveries skipped while reads are in flight, so access
// is guarded.
type RecurringOrderRepository struct {
	mu        sync.RWMutex
	orders    []entities.RecurringOrder
	ordersMap map[entities.OrderID]int
}

// NewRecurringOrderRepository creates a new in-memory recurring order repository
func NewRecurringOrderRepository(expectedOrders int) *RecurringOrderRepository {
	return &RecurringOrderRepository{
		orders:    make([]entities.RecurringOrder, 0, expectedOrders),
		ordersMap: make(map[entities.OrderID]int, expectedOrders),
	}
}

// Verify interface compliance
var _ repositories.RecurringOrderRepository = (*RecurringOrderRepository)(nil)

// LoadRecurringOrders loads orders into the repository
func (r *RecurringOrderRepository) LoadRecurringOrders(orders []*entities.RecurringOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range orders {
		r.ordersMap[order.ID] = len(r.orders)
		r.orders = append(r.orders, *order)
	}
	return nil
}

// GetRecurringOrder returns a copy of the order with the given id
func (r *RecurringOrderRepository) GetRecurringOrder(id entities.OrderID) (*entities.RecurringOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	index, exists := r.ordersMap[id]
	if !exists {
		return nil, fmt.Errorf("recurring order not found: %s", id)
	}
	order := r.orders[index]
	order.SkipDates = append([]time.Time(nil), r.orders[index].SkipDates...)
	return &order, nil
}

// GetAllRecurringOrders returns copies of all orders
func (r *RecurringOrderRepository) GetAllRecurringOrders() ([]*entities.RecurringOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]*entities.RecurringOrder, 0, len(r.orders))
	for i := range r.orders {
		order := r.orders[i]
		order.SkipDates = append([]time.Time(nil), r.orders[i].SkipDates...)
		orders = append(orders, &order)
	}
	return orders, nil
}

// AddSkipDate records a skipped delivery date on an existing order
func (r *RecurringOrderRepository) AddSkipDate(id entities.OrderID, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	index, exists := r.ordersMap[id]
	if !exists {
		return fmt.Errorf("recurring order not found: %s", id)
	}

	day := growplan.Midnight(date)
	for _, s := range r.orders[index].SkipDates {
		if growplan.SameDay(s, day) {
			return nil
		}
	}
	r.orders[index].SkipDates = append(r.orders[index].SkipDates, day)
	return nil
}

// RemoveSkipDate restores a previously skipped delivery date
func (r *RecurringOrderRepository) RemoveSkipDate(id entities.OrderID, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	index, exists := r.ordersMap[id]
	if !exists {
		return fmt.Errorf("recurring order not found: %s", id)
	}

	skips := r.orders[index].SkipDates
	for i, s := range skips {
		if growplan.SameDay(s, date) {
			r.orders[index].SkipDates = append(skips[:i], skips[i+1:]...)
			return nil
		}
	}
	return nil
}

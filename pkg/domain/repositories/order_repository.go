package repositories

import (
	"time"

	"github.com/vsinha/growplan/pkg/domain/entities"
)

// SalesOrderRepository provides access to one-off customer orders
type SalesOrderRepository interface {
	GetSalesOrder(id entities.OrderID) (*entities.SalesOrder, error)
	GetAllSalesOrders() ([]*entities.SalesOrder, error)
	LoadSalesOrders(orders []*entities.SalesOrder) error
}

// RecurringOrderRepository provides access to standing order definitions
type RecurringOrderRepository interface {
	GetRecurringOrder(id entities.OrderID) (*entities.RecurringOrder, error)
	GetAllRecurringOrders() ([]*entities.RecurringOrder, error)
	LoadRecurringOrders(orders []*entities.RecurringOrder) error
	// AddSkipDate records a skipped delivery date on an existing order.
	AddSkipDate(id entities.OrderID, date time.Time) error
	// RemoveSkipDate restores a previously skipped delivery date.
	RemoveSkipDate(id entities.OrderID, date time.Time) error
}

package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/growplan/pkg/growplan"
)

// OrderID represents a unique order identifier
type OrderID string

// SalesOrder represents a one-off customer order for a product or a blend,
// due on a fixed delivery date. Exactly one of ProductID and BlendID is set.
type SalesOrder struct {
	ID             OrderID
	Customer       string
	ProductID      ProductID
	BlendID        BlendID
	QuantityOz     decimal.Decimal
	OveragePercent decimal.Decimal
	DeliveryDate   time.Time
}

// NewSalesOrder creates a validated SalesOrder
func NewSalesOrder(
	id OrderID,
	customer string,
	productID ProductID,
	blendID BlendID,
	quantityOz, overagePercent decimal.Decimal,
	deliveryDate time.Time,
) (*SalesOrder, error) {
	if err := validateOrderTarget(id, customer, productID, blendID, quantityOz, overagePercent); err != nil {
		return nil, err
	}
	if deliveryDate.IsZero() {
		return nil, fmt.Errorf("delivery date cannot be zero")
	}

	return &SalesOrder{
		ID:             id,
		Customer:       customer,
		ProductID:      productID,
		BlendID:        blendID,
		QuantityOz:     quantityOz,
		OveragePercent: overagePercent,
		DeliveryDate:   deliveryDate,
	}, nil
}

// IsBlend reports whether the order targets a blend rather than a single crop
func (o *SalesOrder) IsBlend() bool {
	return string(o.BlendID) != ""
}

// RecurringOrder represents a standing order that generates deliveries on a
// repeating schedule. Individual occurrences can be skipped without touching
// the definition.
type RecurringOrder struct {
	ID             OrderID
	Customer       string
	ProductID      ProductID
	BlendID        BlendID
	QuantityOz     decimal.Decimal
	OveragePercent decimal.Decimal
	Schedule       growplan.RecurringSchedule
	SkipDates      []time.Time
	Active         bool
}

// NewRecurringOrder creates a validated RecurringOrder. The recurrence
// definition itself is validated when occurrences are enumerated.
func NewRecurringOrder(
	id OrderID,
	customer string,
	productID ProductID,
	blendID BlendID,
	quantityOz, overagePercent decimal.Decimal,
	schedule growplan.RecurringSchedule,
) (*RecurringOrder, error) {
	if err := validateOrderTarget(id, customer, productID, blendID, quantityOz, overagePercent); err != nil {
		return nil, err
	}
	if schedule.StartDate.IsZero() {
		return nil, fmt.Errorf("schedule start date cannot be zero")
	}

	return &RecurringOrder{
		ID:             id,
		Customer:       customer,
		ProductID:      productID,
		BlendID:        blendID,
		QuantityOz:     quantityOz,
		OveragePercent: overagePercent,
		Schedule:       schedule,
		Active:         true,
	}, nil
}

// IsBlend reports whether the order targets a blend rather than a single crop
func (o *RecurringOrder) IsBlend() bool {
	return string(o.BlendID) != ""
}

// Occurrences enumerates this order's upcoming delivery dates from the given
// day, honoring the order's skip list.
func (o *RecurringOrder) Occurrences(from time.Time) ([]time.Time, error) {
	return growplan.Occurrences(o.Schedule, o.SkipDates, from)
}

// NextDelivery returns the first upcoming delivery date, if any falls inside
// the order's lead-time horizon.
func (o *RecurringOrder) NextDelivery(from time.Time) (time.Time, bool, error) {
	return growplan.NextOccurrence(o.Schedule, o.SkipDates, from)
}

func validateOrderTarget(
	id OrderID,
	customer string,
	productID ProductID,
	blendID BlendID,
	quantityOz, overagePercent decimal.Decimal,
) error {
	if string(id) == "" {
		return fmt.Errorf("order id cannot be empty")
	}
	if customer == "" {
		return fmt.Errorf("customer cannot be empty")
	}
	hasProduct := string(productID) != ""
	hasBlend := string(blendID) != ""
	if hasProduct == hasBlend {
		return fmt.Errorf("order must target exactly one of product or blend")
	}
	if quantityOz.Sign() <= 0 {
		return fmt.Errorf("quantity must be positive, got %s", quantityOz)
	}
	if overagePercent.Sign() < 0 {
		return fmt.Errorf("overage percent cannot be negative, got %s", overagePercent)
	}
	return nil
}

package events

import (
	"time"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/growplan"
)

const (
	ScheduleComputedEvent     = "schedule.computed"
	BlendComputedEvent        = "blend.computed"
	OccurrencesGeneratedEvent = "occurrences.generated"
	RunDispatchedEvent        = "run.dispatched"
	DeliverySkippedEvent      = "delivery.skipped"
)

// ScheduleComputed records a single-crop backward schedule produced for an
// order.
type ScheduleComputed struct {
	OrderID   entities.OrderID            `json:"order_id"`
	ProductID entities.ProductID          `json:"product_id"`
	Schedule  growplan.ProductionSchedule `json:"schedule"`
}

// BlendComputed records a blend schedule produced for an order.
type BlendComputed struct {
	OrderID entities.OrderID       `json:"order_id"`
	BlendID entities.BlendID       `json:"blend_id"`
	Blend   growplan.BlendSchedule `json:"blend"`
}

// OccurrencesGenerated records one enumeration of a recurring order's
// upcoming deliveries.
type OccurrencesGenerated struct {
	OrderID entities.OrderID `json:"order_id"`
	From    time.Time        `json:"from"`
	Dates   []time.Time      `json:"dates"`
}

// RunDispatched records a planned run handed to downstream systems.
type RunDispatched struct {
	Run entities.PlannedRun `json:"run"`
}

// DeliverySkipped records one delivery date struck from a recurring order.
type DeliverySkipped struct {
	OrderID entities.OrderID `json:"order_id"`
	Date    time.Time        `json:"date"`
}

func NewScheduleComputedEvent(orderID entities.OrderID, productID entities.ProductID, schedule growplan.ProductionSchedule) Event {
	return NewEvent(ScheduleComputedEvent, string(orderID), ScheduleComputed{
		OrderID:   orderID,
		ProductID: productID,
		Schedule:  schedule,
	})
}

func NewBlendComputedEvent(orderID entities.OrderID, blendID entities.BlendID, blend growplan.BlendSchedule) Event {
	return NewEvent(BlendComputedEvent, string(orderID), BlendComputed{
		OrderID: orderID,
		BlendID: blendID,
		Blend:   blend,
	})
}

func NewOccurrencesGeneratedEvent(orderID entities.OrderID, from time.Time, dates []time.Time) Event {
	return NewEvent(OccurrencesGeneratedEvent, string(orderID), OccurrencesGenerated{
		OrderID: orderID,
		From:    from,
		Dates:   dates,
	})
}

func NewRunDispatchedEvent(run entities.PlannedRun) Event {
	return NewEvent(RunDispatchedEvent, string(run.OrderID), RunDispatched{Run: run})
}

func NewDeliverySkippedEvent(orderID entities.OrderID, date time.Time) Event {
	return NewEvent(DeliverySkippedEvent, string(orderID), DeliverySkipped{
		OrderID: orderID,
		Date:    date,
	})
}

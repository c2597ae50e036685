package entities

import (
	"time"

	"github.com/vsinha/growplan/pkg/growplan"
)

// ProductionTask represents one dated operation on the grow room floor:
// soak, seed, move to light, or harvest some number of trays for an order.
type ProductionTask struct {
	ID          string
	OrderID     OrderID
	ProductID   ProductID
	ProductName string
	Stage       growplan.Stage
	DueDate     time.Time
	Trays       int64
	Completed   bool
}

// Status derives the task's state relative to the given day
func (t *ProductionTask) Status(today time.Time) growplan.TaskStatus {
	return growplan.StatusFor(t.DueDate, t.Completed, today)
}

// PlannedRun represents one dispatched production run: the tasks generated
// for a single order delivery. Runs are what the scheduling daemon hands to
// downstream systems.
type PlannedRun struct {
	ID          string
	OrderID     OrderID
	Customer    string
	TargetName  string
	HarvestDate time.Time
	Tasks       []ProductionTask
	CreatedAt   time.Time
}

// FirstActionDate returns the due date of the earliest task in the run
func (r *PlannedRun) FirstActionDate() time.Time {
	var earliest time.Time
	for _, task := range r.Tasks {
		if earliest.IsZero() || task.DueDate.Before(earliest) {
			earliest = task.DueDate
		}
	}
	return earliest
}

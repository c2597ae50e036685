package dto

import (
	"time"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/growplan"
)

// OrderPlan is the planned production for one delivery of one order.
// Exactly one of Crop and Blend is set, matching the order's target.
type OrderPlan struct {
	OrderID     entities.OrderID             `json:"order_id"`
	Customer    string                       `json:"customer"`
	TargetName  string                       `json:"target_name"`
	HarvestDate time.Time                    `json:"harvest_date"`
	Crop        *growplan.ProductionSchedule `json:"crop,omitempty"`
	Blend       *growplan.BlendSchedule      `json:"blend,omitempty"`
	Lead        *growplan.BlendLeadAnalysis  `json:"lead,omitempty"`
	Tasks       []entities.ProductionTask    `json:"tasks"`
}

// IsBlend reports whether this plan is for a blended product
func (p *OrderPlan) IsBlend() bool {
	return p.Blend != nil
}

// PlanResult contains the complete output of a planning run
type PlanResult struct {
	PlanDate time.Time                 `json:"plan_date"`
	Plans    []OrderPlan               `json:"plans"`
	Tasks    []entities.ProductionTask `json:"tasks"`
}

// TasksDue returns the tasks due on the given day
func (r *PlanResult) TasksDue(day time.Time) []entities.ProductionTask {
	var due []entities.ProductionTask
	for _, task := range r.Tasks {
		if growplan.SameDay(task.DueDate, day) {
			due = append(due, task)
		}
	}
	return due
}

// OverdueTasks returns the tasks already past due on the given day
func (r *PlanResult) OverdueTasks(day time.Time) []entities.ProductionTask {
	var overdue []entities.ProductionTask
	for _, task := range r.Tasks {
		if growplan.Overdue(task.DueDate, day) && !task.Completed {
			overdue = append(overdue, task)
		}
	}
	return overdue
}

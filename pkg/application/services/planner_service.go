package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/growplan/pkg/application/dto"
	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/domain/repositories"
	"github.com/vsinha/growplan/pkg/growplan"
	"github.com/vsinha/growplan/pkg/infrastructure/events"
)

// PlanningPolicy holds scheduling decisions that belong to the caller, not
// the engine. Every field treats zero as "disabled", so an empty policy
// plans orders exactly as written.
type PlanningPolicy struct {
	// DefaultOveragePercent is applied to orders that carry no overage of
	// their own.
	DefaultOveragePercent decimal.Decimal
	// DefaultLeadTimeDays bounds recurring-order lookahead for orders that
	// do not carry a horizon.
	DefaultLeadTimeDays int
	// FallbackYieldOz substitutes for catalog products with no yield
	// history. Zero disables the fallback; scheduling such a product
	// fails instead.
	FallbackYieldOz decimal.Decimal
}

// PlannerService turns orders into dated production plans using the
// scheduling engine and the catalog repositories.
type PlannerService struct {
	products  repositories.ProductRepository
	blends    repositories.BlendRepository
	sales     repositories.SalesOrderRepository
	recurring repositories.RecurringOrderRepository
	store     events.EventStore
	logger    *zap.Logger
	policy    PlanningPolicy

	newID func() string
}

// NewPlannerService creates a planner over the given repositories. The event
// store may be nil when nothing consumes planning events.
func NewPlannerService(
	products repositories.ProductRepository,
	blends repositories.BlendRepository,
	sales repositories.SalesOrderRepository,
	recurring repositories.RecurringOrderRepository,
	store events.EventStore,
	logger *zap.Logger,
	policy PlanningPolicy,
) *PlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PlannerService{
		products:  products,
		blends:    blends,
		sales:     sales,
		recurring: recurring,
		store:     store,
		logger:    logger,
		policy:    policy,
		newID:     uuid.NewString,
	}
}

// deliverySpec is one delivery to plan, independent of which order kind it
// came from.
type deliverySpec struct {
	orderID        entities.OrderID
	customer       string
	productID      entities.ProductID
	blendID        entities.BlendID
	quantityOz     decimal.Decimal
	overagePercent decimal.Decimal
	harvestDate    time.Time
}

// PlanSalesOrder computes the production plan for a one-off order.
func (s *PlannerService) PlanSalesOrder(ctx context.Context, id entities.OrderID) (*dto.OrderPlan, error) {
	order, err := s.sales.GetSalesOrder(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales order: %w", err)
	}

	plan, err := s.planDelivery(deliverySpec{
		orderID:        order.ID,
		customer:       order.Customer,
		productID:      order.ProductID,
		blendID:        order.BlendID,
		quantityOz:     order.QuantityOz,
		overagePercent: order.OveragePercent,
		harvestDate:    order.DeliveryDate,
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// PlanRecurringOrder plans every upcoming delivery of one standing order
// from the given day. Inactive orders yield no plans.
func (s *PlannerService) PlanRecurringOrder(ctx context.Context, id entities.OrderID, from time.Time) ([]dto.OrderPlan, error) {
	order, err := s.recurring.GetRecurringOrder(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring order: %w", err)
	}
	return s.planRecurring(ctx, order, from)
}

// PlanAll computes the full production plan: every undelivered sales order
// plus every upcoming delivery of every active recurring order.
func (s *PlannerService) PlanAll(ctx context.Context, from time.Time) (*dto.PlanResult, error) {
	today := growplan.Midnight(from)
	result := &dto.PlanResult{PlanDate: today}

	salesOrders, err := s.sales.GetAllSalesOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to load sales orders: %w", err)
	}
	for _, order := range salesOrders {
		if order.DeliveryDate.Before(today) {
			continue // already delivered
		}
		plan, err := s.planDelivery(deliverySpec{
			orderID:        order.ID,
			customer:       order.Customer,
			productID:      order.ProductID,
			blendID:        order.BlendID,
			quantityOz:     order.QuantityOz,
			overagePercent: order.OveragePercent,
			harvestDate:    order.DeliveryDate,
		})
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", order.ID, err)
		}
		result.Plans = append(result.Plans, plan)
	}

	recurringOrders, err := s.recurring.GetAllRecurringOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring orders: %w", err)
	}
	for _, order := range recurringOrders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plans, err := s.planRecurring(ctx, order, from)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", order.ID, err)
		}
		result.Plans = append(result.Plans, plans...)
	}

	for _, plan := range result.Plans {
		result.Tasks = append(result.Tasks, plan.Tasks...)
	}
	sortTasks(result.Tasks)

	s.logger.Info("planning run complete",
		zap.Time("plan_date", today),
		zap.Int("plans", len(result.Plans)),
		zap.Int("tasks", len(result.Tasks)))

	return result, nil
}

// SkipDelivery strikes one delivery date from a standing order. Planning
// runs after this call will not schedule production for that date.
func (s *PlannerService) SkipDelivery(ctx context.Context, id entities.OrderID, date time.Time) error {
	if err := s.recurring.AddSkipDate(id, date); err != nil {
		return fmt.Errorf("failed to skip delivery: %w", err)
	}
	s.emit(events.NewDeliverySkippedEvent(id, growplan.Midnight(date)))
	s.logger.Info("delivery skipped",
		zap.String("order_id", string(id)),
		zap.Time("date", growplan.Midnight(date)))
	return nil
}

// RestoreDelivery removes a previously skipped date from a standing order.
func (s *PlannerService) RestoreDelivery(ctx context.Context, id entities.OrderID, date time.Time) error {
	if err := s.recurring.RemoveSkipDate(id, date); err != nil {
		return fmt.Errorf("failed to restore delivery: %w", err)
	}
	s.logger.Info("delivery restored",
		zap.String("order_id", string(id)),
		zap.Time("date", growplan.Midnight(date)))
	return nil
}

func (s *PlannerService) planRecurring(ctx context.Context, order *entities.RecurringOrder, from time.Time) ([]dto.OrderPlan, error) {
	if !order.Active {
		s.logger.Debug("skipping inactive recurring order", zap.String("order_id", string(order.ID)))
		return nil, nil
	}

	if order.Schedule.LeadTimeDays == 0 && s.policy.DefaultLeadTimeDays > 0 {
		order.Schedule.LeadTimeDays = s.policy.DefaultLeadTimeDays
	}

	dates, err := order.Occurrences(from)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate deliveries: %w", err)
	}
	s.emit(events.NewOccurrencesGeneratedEvent(order.ID, growplan.Midnight(from), dates))

	var plans []dto.OrderPlan
	for _, date := range dates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan, err := s.planDelivery(deliverySpec{
			orderID:        order.ID,
			customer:       order.Customer,
			productID:      order.ProductID,
			blendID:        order.BlendID,
			quantityOz:     order.QuantityOz,
			overagePercent: order.OveragePercent,
			harvestDate:    date,
		})
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (s *PlannerService) planDelivery(spec deliverySpec) (dto.OrderPlan, error) {
	if spec.overagePercent.IsZero() && s.policy.DefaultOveragePercent.Sign() > 0 {
		spec.overagePercent = s.policy.DefaultOveragePercent
	}

	if string(spec.blendID) != "" {
		return s.planBlendDelivery(spec)
	}
	return s.planCropDelivery(spec)
}

func (s *PlannerService) planCropDelivery(spec deliverySpec) (dto.OrderPlan, error) {
	product, err := s.products.GetProduct(spec.productID)
	if err != nil {
		return dto.OrderPlan{}, fmt.Errorf("failed to resolve product: %w", err)
	}

	sched, err := growplan.Schedule(growplan.ProductionRequest{
		QuantityOz:     spec.quantityOz,
		OveragePercent: spec.overagePercent,
		HarvestDate:    spec.harvestDate,
	}, s.timingFor(product))
	if err != nil {
		return dto.OrderPlan{}, fmt.Errorf("failed to schedule %s: %w", product.Name, err)
	}

	tasks := s.stageTasks(spec.orderID, product.ID, product.Name, sched)
	s.emit(events.NewScheduleComputedEvent(spec.orderID, product.ID, sched))
	s.logger.Debug("computed crop schedule",
		zap.String("order_id", string(spec.orderID)),
		zap.String("product", product.Name),
		zap.Int64("trays", sched.TraysNeeded),
		zap.Time("harvest", sched.HarvestDate))

	return dto.OrderPlan{
		OrderID:     spec.orderID,
		Customer:    spec.customer,
		TargetName:  product.Name,
		HarvestDate: sched.HarvestDate,
		Crop:        &sched,
		Tasks:       tasks,
	}, nil
}

func (s *PlannerService) planBlendDelivery(spec deliverySpec) (dto.OrderPlan, error) {
	blend, err := s.blends.GetBlend(spec.blendID)
	if err != nil {
		return dto.OrderPlan{}, fmt.Errorf("failed to resolve blend: %w", err)
	}

	ingredients := make([]growplan.BlendIngredient, 0, len(blend.Components))
	for _, component := range blend.Components {
		product, err := s.products.GetProduct(component.ProductID)
		if err != nil {
			return dto.OrderPlan{}, fmt.Errorf("blend %s: failed to resolve component: %w", blend.Name, err)
		}
		ingredients = append(ingredients, growplan.BlendIngredient{
			ProductID:    string(product.ID),
			ProductName:  product.Name,
			RatioPercent: component.RatioPercent,
			Timing:       s.timingFor(product),
		})
	}

	sched, err := growplan.ScheduleBlend(growplan.ProductionRequest{
		QuantityOz:     spec.quantityOz,
		OveragePercent: spec.overagePercent,
		HarvestDate:    spec.harvestDate,
	}, ingredients)
	if err != nil {
		return dto.OrderPlan{}, fmt.Errorf("failed to schedule blend %s: %w", blend.Name, err)
	}

	var tasks []entities.ProductionTask
	for _, ing := range sched.Ingredients {
		tasks = append(tasks, s.stageTasks(spec.orderID, entities.ProductID(ing.ProductID), ing.ProductName, ing.ProductionSchedule)...)
	}
	sortTasks(tasks)

	s.emit(events.NewBlendComputedEvent(spec.orderID, blend.ID, sched))
	s.logger.Debug("computed blend schedule",
		zap.String("order_id", string(spec.orderID)),
		zap.String("blend", blend.Name),
		zap.Int("ingredients", len(sched.Ingredients)),
		zap.Time("earliest_start", sched.EarliestStartDate))

	return dto.OrderPlan{
		OrderID:     spec.orderID,
		Customer:    spec.customer,
		TargetName:  blend.Name,
		HarvestDate: sched.HarvestDate,
		Blend:       &sched,
		Lead:        growplan.AnalyzeLeadTimes(sched),
		Tasks:       tasks,
	}, nil
}

// timingFor applies the fallback yield policy on top of the catalog timing.
func (s *PlannerService) timingFor(product *entities.Product) growplan.CropTiming {
	timing := product.Timing()
	if timing.AvgYieldPerTray.IsZero() && s.policy.FallbackYieldOz.Sign() > 0 {
		timing.AvgYieldPerTray = s.policy.FallbackYieldOz
	}
	return timing
}

// stageTasks expands one computed schedule into dated floor tasks. Soak
// appears only for crops that soak; the other stages are always present.
func (s *PlannerService) stageTasks(orderID entities.OrderID, productID entities.ProductID, productName string, sched growplan.ProductionSchedule) []entities.ProductionTask {
	var tasks []entities.ProductionTask
	if sched.RequiresSoaking {
		tasks = append(tasks, s.stageTask(orderID, productID, productName, growplan.StageSoak, sched.SoakDate, sched.TraysNeeded))
	}
	tasks = append(tasks,
		s.stageTask(orderID, productID, productName, growplan.StageSeed, sched.SeedDate, sched.TraysNeeded),
		s.stageTask(orderID, productID, productName, growplan.StageMoveToLight, sched.MoveToLightDate, sched.TraysNeeded),
		s.stageTask(orderID, productID, productName, growplan.StageHarvest, sched.HarvestDate, sched.TraysNeeded),
	)
	return tasks
}

func (s *PlannerService) stageTask(orderID entities.OrderID, productID entities.ProductID, productName string, stage growplan.Stage, due time.Time, trays int64) entities.ProductionTask {
	return entities.ProductionTask{
		ID:          s.newID(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Stage:       stage,
		DueDate:     due,
		Trays:       trays,
	}
}

func (s *PlannerService) emit(event events.Event) {
	if s.store == nil {
		return
	}
	if err := s.store.AppendEvent(event.StreamID(), event); err != nil {
		s.logger.Warn("failed to record planning event",
			zap.String("event_type", event.Type()),
			zap.Error(err))
	}
}

func sortTasks(tasks []entities.ProductionTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}
		if tasks[i].Stage != tasks[j].Stage {
			return tasks[i].Stage < tasks[j].Stage
		}
		return tasks[i].ProductName < tasks[j].ProductName
	})
}

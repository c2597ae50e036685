package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vsinha/growplan/pkg/application/dto"
	"github.com/vsinha/growplan/pkg/application/services"
	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/growplan"
	"github.com/vsinha/growplan/pkg/infrastructure/events"
)

// Dispatcher hands a planned run to whatever executes it: a print queue, a
// task board, a grower's phone.
type Dispatcher interface {
	Dispatch(ctx context.Context, run entities.PlannedRun) error
}

// LogDispatcher writes each run to the log. It is the default sink when no
// downstream system is wired in.
type LogDispatcher struct {
	logger *zap.Logger
}

// NewLogDispatcher creates a dispatcher that logs runs.
func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogDispatcher{logger: logger}
}

// Verify interface compliance
var _ Dispatcher = (*LogDispatcher)(nil)

// Dispatch logs the run summary.
func (d *LogDispatcher) Dispatch(ctx context.Context, run entities.PlannedRun) error {
	d.logger.Info("production run ready",
		zap.String("run_id", run.ID),
		zap.String("order_id", string(run.OrderID)),
		zap.String("customer", run.Customer),
		zap.String("target", run.TargetName),
		zap.Time("harvest", run.HarvestDate),
		zap.Time("first_action", run.FirstActionDate()),
		zap.Int("tasks", len(run.Tasks)))
	return nil
}

// Config controls the worker's cadence.
type Config struct {
	// CronSpec is a standard five-field cron expression.
	CronSpec string
	// Location anchors the cron clock; nil means the system local zone.
	Location *time.Location
	// Timeout bounds one planning run; zero means two minutes.
	Timeout time.Duration
}

// Worker replans standing orders on a cron cadence and dispatches the
// resulting runs. Each order delivery is dispatched once; replanning the
// same horizon does not resend runs already handed off.
type Worker struct {
	cron       *cron.Cron
	planner    *services.PlannerService
	dispatcher Dispatcher
	store      events.EventStore
	logger     *zap.Logger
	cfg        Config

	mutex      sync.Mutex
	dispatched map[string]time.Time // run key to harvest day

	now   func() time.Time
	newID func() string
}

// NewWorker creates a worker over the given planner. The event store may be
// nil when nothing consumes dispatch events.
func NewWorker(planner *services.PlannerService, dispatcher Dispatcher, store events.EventStore, logger *zap.Logger, cfg Config) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dispatcher == nil {
		dispatcher = NewLogDispatcher(logger)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}

	opts := []cron.Option{}
	if cfg.Location != nil {
		opts = append(opts, cron.WithLocation(cfg.Location))
	}

	return &Worker{
		cron:       cron.New(opts...),
		planner:    planner,
		dispatcher: dispatcher,
		store:      store,
		logger:     logger,
		cfg:        cfg,
		dispatched: make(map[string]time.Time),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Start schedules the planning job and starts the cron loop.
func (w *Worker) Start() error {
	w.logger.Info("starting planning worker", zap.String("cron", w.cfg.CronSpec))

	if _, err := w.cron.AddFunc(w.cfg.CronSpec, w.runScheduled); err != nil {
		return fmt.Errorf("failed to schedule planning job: %w", err)
	}

	w.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (w *Worker) Stop() {
	w.logger.Info("stopping planning worker")
	<-w.cron.Stop().Done()
}

func (w *Worker) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.Timeout)
	defer cancel()

	if _, err := w.RunOnce(ctx, w.now()); err != nil {
		w.logger.Error("scheduled planning run failed", zap.Error(err))
	}
}

// RunOnce plans all orders as of the given day and dispatches every run not
// already handed off. It returns the full plan for callers that want to
// render it.
func (w *Worker) RunOnce(ctx context.Context, from time.Time) (*dto.PlanResult, error) {
	result, err := w.planner.PlanAll(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to plan orders: %w", err)
	}

	w.pruneDispatched(growplan.Midnight(from))

	var sent int
	for _, plan := range result.Plans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		key := runKey(plan.OrderID, plan.HarvestDate)
		if w.alreadyDispatched(key) {
			continue
		}

		run := entities.PlannedRun{
			ID:          w.newID(),
			OrderID:     plan.OrderID,
			Customer:    plan.Customer,
			TargetName:  plan.TargetName,
			HarvestDate: plan.HarvestDate,
			Tasks:       plan.Tasks,
			CreatedAt:   w.now(),
		}

		if err := w.dispatcher.Dispatch(ctx, run); err != nil {
			// Leave the run unmarked so the next cycle retries it.
			w.logger.Error("failed to dispatch run",
				zap.String("order_id", string(run.OrderID)),
				zap.Time("harvest", run.HarvestDate),
				zap.Error(err))
			continue
		}

		w.markDispatched(key, run.HarvestDate)
		w.emit(events.NewRunDispatchedEvent(run))
		sent++
	}

	w.logger.Info("planning cycle complete",
		zap.Time("from", growplan.Midnight(from)),
		zap.Int("plans", len(result.Plans)),
		zap.Int("dispatched", sent))

	return result, nil
}

func runKey(orderID entities.OrderID, harvest time.Time) string {
	return string(orderID) + "@" + growplan.DayKey(harvest)
}

func (w *Worker) alreadyDispatched(key string) bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	_, ok := w.dispatched[key]
	return ok
}

func (w *Worker) markDispatched(key string, harvest time.Time) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.dispatched[key] = harvest
}

// pruneDispatched drops bookkeeping for harvests that are already in the
// past, so the map stays bounded by the planning horizon.
func (w *Worker) pruneDispatched(today time.Time) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	for key, harvest := range w.dispatched {
		if harvest.Before(today) {
			delete(w.dispatched, key)
		}
	}
}

func (w *Worker) emit(event events.Event) {
	if w.store == nil {
		return
	}
	if err := w.store.AppendEvent(event.StreamID(), event); err != nil {
		w.logger.Warn("failed to record dispatch event",
			zap.String("event_type", event.Type()),
			zap.Error(err))
	}
}

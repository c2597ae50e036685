package worker

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/vsinha/growplan/pkg/application/services"
	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/infrastructure/events"
	testhelpers "github.com/vsinha/growplan/pkg/infrastructure/testing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// captureDispatcher records dispatched runs and can refuse orders to
// simulate a downstream outage.
type captureDispatcher struct {
	mutex sync.Mutex
	runs  []entities.PlannedRun
	fail  map[entities.OrderID]bool
}

func (d *captureDispatcher) Dispatch(ctx context.Context, run entities.PlannedRun) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.fail[run.OrderID] {
		return fmt.Errorf("downstream unavailable")
	}
	d.runs = append(d.runs, run)
	return nil
}

func (d *captureDispatcher) dispatched() []entities.PlannedRun {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return append([]entities.PlannedRun(nil), d.runs...)
}

func newTestWorker(dispatcher Dispatcher) (*Worker, *events.InMemoryEventStore) {
	products, blends, sales, recurring := testhelpers.BuildFarmTestData()
	store := events.NewInMemoryEventStore()
	planner := services.NewPlannerService(products, blends, sales, recurring, store, nil, services.PlanningPolicy{})
	return NewWorker(planner, dispatcher, store, nil, Config{CronSpec: "0 5 * * *"}), store
}

func TestWorker_RunOnce(t *testing.T) {
	ctx := context.Background()
	dispatcher := &captureDispatcher{}
	worker, store := newTestWorker(dispatcher)

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	result, err := worker.RunOnce(ctx, from)
	if err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if len(result.Plans) != 3 {
		t.Fatalf("Expected 3 plans, got %d", len(result.Plans))
	}

	runs := dispatcher.dispatched()
	if len(runs) != 3 {
		t.Fatalf("Expected 3 dispatched runs, got %d", len(runs))
	}

	seen := make(map[string]bool)
	for _, run := range runs {
		if run.ID == "" {
			t.Error("Expected a generated run ID")
		}
		if seen[run.ID] {
			t.Errorf("Duplicate run ID %s", run.ID)
		}
		seen[run.ID] = true
		if run.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be stamped")
		}
		if len(run.Tasks) == 0 {
			t.Errorf("Run %s has no tasks", run.ID)
		}
	}

	// The sales order stream ends with its dispatch record.
	salesEvents, err := store.ReadEvents("so-1", 1)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(salesEvents) == 0 {
		t.Fatal("Expected events on so-1")
	}
	last := salesEvents[len(salesEvents)-1]
	if last.Type() != events.RunDispatchedEvent {
		t.Errorf("Expected final event %s, got %s", events.RunDispatchedEvent, last.Type())
	}
}

func TestWorker_RunOnce_DispatchesEachDeliveryOnce(t *testing.T) {
	ctx := context.Background()
	dispatcher := &captureDispatcher{}
	worker, _ := newTestWorker(dispatcher)

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	if _, err := worker.RunOnce(ctx, from); err != nil {
		t.Fatalf("First RunOnce failed: %v", err)
	}
	if _, err := worker.RunOnce(ctx, from); err != nil {
		t.Fatalf("Second RunOnce failed: %v", err)
	}

	if runs := dispatcher.dispatched(); len(runs) != 3 {
		t.Errorf("Expected replanning to dispatch nothing new, got %d runs", len(runs))
	}

	// A later planning day reaches June 22nd, which is new; the deliveries
	// already handed off stay quiet.
	later := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	if _, err := worker.RunOnce(ctx, later); err != nil {
		t.Fatalf("Later RunOnce failed: %v", err)
	}

	runs := dispatcher.dispatched()
	if len(runs) != 4 {
		t.Fatalf("Expected exactly one new run from the later horizon, got %d total", len(runs))
	}
	wantHarvest := time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)
	if !runs[3].HarvestDate.Equal(wantHarvest) {
		t.Errorf("Expected new run harvest %s, got %s", wantHarvest.Format("2006-01-02"), runs[3].HarvestDate.Format("2006-01-02"))
	}
}

func TestWorker_RunOnce_RetriesFailedDispatch(t *testing.T) {
	ctx := context.Background()
	dispatcher := &captureDispatcher{fail: map[entities.OrderID]bool{"so-1": true}}
	worker, _ := newTestWorker(dispatcher)

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	if _, err := worker.RunOnce(ctx, from); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if runs := dispatcher.dispatched(); len(runs) != 2 {
		t.Fatalf("Expected 2 runs while so-1 is failing, got %d", len(runs))
	}

	// Outage over: the next cycle picks the order back up.
	dispatcher.mutex.Lock()
	dispatcher.fail = nil
	dispatcher.mutex.Unlock()

	if _, err := worker.RunOnce(ctx, from); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	runs := dispatcher.dispatched()
	if len(runs) != 3 {
		t.Fatalf("Expected the failed run to be retried, got %d total", len(runs))
	}
	if runs[2].OrderID != "so-1" {
		t.Errorf("Expected retried run for so-1, got %s", runs[2].OrderID)
	}
}

func TestWorker_StartStop(t *testing.T) {
	dispatcher := &captureDispatcher{}
	worker, _ := newTestWorker(dispatcher)
	worker.cfg.CronSpec = "@every 1h"

	if err := worker.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	worker.Stop()
}

func TestWorker_StartRejectsBadCronSpec(t *testing.T) {
	dispatcher := &captureDispatcher{}
	worker, _ := newTestWorker(dispatcher)
	worker.cfg.CronSpec = "not a cron spec"

	if err := worker.Start(); err == nil {
		t.Error("Expected error for invalid cron expression")
	}
}

package csv

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/growplan"
)

func TestWriteRecurringOrdersRoundTrip(t *testing.T) {
	weekly, err := entities.NewRecurringOrder(
		"ro-1",
		"Harvest Market",
		"",
		"house-blend",
		decimal.RequireFromString("24.5"),
		decimal.NewFromInt(10),
		growplan.RecurringSchedule{
			Type:         growplan.FixedDay,
			DaysOfWeek:   []time.Weekday{time.Monday, time.Thursday},
			StartDate:    time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			LeadTimeDays: 14,
		},
	)
	require.NoError(t, err)
	weekly.SkipDates = []time.Time{
		time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
	}

	paused, err := entities.NewRecurringOrder(
		"ro-2",
		"Riverbend Co-op",
		"radish",
		"",
		decimal.NewFromInt(12),
		decimal.Zero,
		growplan.RecurringSchedule{
			Type:         growplan.Interval,
			IntervalDays: 7,
			StartDate:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			LeadTimeDays: 10,
		},
	)
	require.NoError(t, err)
	paused.Active = false

	orders := []*entities.RecurringOrder{weekly, paused}

	path := filepath.Join(t.TempDir(), "recurring_orders.csv")
	require.NoError(t, NewWriter().WriteRecurringOrders(path, orders))

	loaded, err := NewLoader().LoadRecurringOrders(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	if diff := cmp.Diff(orders, loaded); diff != "" {
		t.Errorf("Round trip changed orders (-want +got):\n%s", diff)
	}
}

func TestWriteRecurringOrdersBadPath(t *testing.T) {
	err := NewWriter().WriteRecurringOrders(filepath.Join(t.TempDir(), "missing", "orders.csv"), nil)
	require.Error(t, err)
}

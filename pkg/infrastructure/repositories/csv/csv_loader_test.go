package csv

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/growplan/pkg/growplan"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProducts(t *testing.T) {
	path := writeFixture(t, "products.csv",
		`product_id,name,days_soaking,days_germination,days_light,avg_oz_per_tray,seed_oz_per_tray
sunflower,Sunflower,1,3,7,8,4.2
arugula,Arugula,0,4,6,,0.5
`)

	products, err := NewLoader().LoadProducts(path)
	require.NoError(t, err)
	require.Len(t, products, 2)

	sunflower := products[0]
	assert.Equal(t, "Sunflower", sunflower.Name)
	assert.Equal(t, 1, sunflower.DaysSoaking)
	assert.Equal(t, 3, sunflower.DaysGermination)
	assert.Equal(t, 7, sunflower.DaysLight)
	assert.True(t, sunflower.AvgOzPerTray.Equal(decimal.NewFromInt(8)))
	assert.True(t, sunflower.RequiresSoaking())

	// Missing yield column stays zero; scheduling policy decides later.
	arugula := products[1]
	assert.True(t, arugula.AvgOzPerTray.IsZero())
	assert.False(t, arugula.RequiresSoaking())
}

func TestLoadProductsHeaderMismatch(t *testing.T) {
	path := writeFixture(t, "products.csv",
		`id,name
sunflower,Sunflower
`)

	_, err := NewLoader().LoadProducts(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header mismatch")
}

func TestLoadProductsRowError(t *testing.T) {
	path := writeFixture(t, "products.csv",
		`product_id,name,days_soaking,days_germination,days_light,avg_oz_per_tray,seed_oz_per_tray
sunflower,Sunflower,one,3,7,8,4
`)

	_, err := NewLoader().LoadProducts(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "days_soaking")
}

func TestLoadSalesOrders(t *testing.T) {
	path := writeFixture(t, "sales_orders.csv",
		`order_id,customer,target_type,target_id,quantity_oz,overage_percent,delivery_date
so-1,Green Leaf Cafe,product,sunflower,32,10,2025-06-15
so-2,Harvest Market,blend,spicy-mix,20,,2025-06-20
`)

	orders, err := NewLoader().LoadSalesOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.False(t, orders[0].IsBlend())
	assert.Equal(t, "sunflower", string(orders[0].ProductID))
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), orders[0].DeliveryDate)

	assert.True(t, orders[1].IsBlend())
	assert.Equal(t, "spicy-mix", string(orders[1].BlendID))
	assert.True(t, orders[1].OveragePercent.IsZero())
}

func TestLoadSalesOrdersBadTarget(t *testing.T) {
	path := writeFixture(t, "sales_orders.csv",
		`order_id,customer,target_type,target_id,quantity_oz,overage_percent,delivery_date
so-1,Green Leaf Cafe,subscription,sunflower,32,10,2025-06-15
`)

	_, err := NewLoader().LoadSalesOrders(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target_type")
}

func TestLoadRecurringOrders(t *testing.T) {
	path := writeFixture(t, "recurring_orders.csv",
		`order_id,customer,target_type,target_id,quantity_oz,overage_percent,schedule_type,days_of_week,interval_days,start_date,end_date,lead_time_days,skip_dates,active
ro-1,Harvest Market,product,sunflower,32,10,FixedDay,Mon;Thu,,2025-05-01,,14,2025-06-12;2025-07-03,true
ro-2,Green Leaf Cafe,blend,spicy-mix,20,0,Interval,,7,2025-01-06,2025-12-31,14,,false
`)

	orders, err := NewLoader().LoadRecurringOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	fixed := orders[0]
	assert.Equal(t, growplan.FixedDay, fixed.Schedule.Type)
	assert.Equal(t, []time.Weekday{time.Monday, time.Thursday}, fixed.Schedule.DaysOfWeek)
	assert.True(t, fixed.Schedule.EndDate.IsZero())
	assert.Equal(t, 14, fixed.Schedule.LeadTimeDays)
	require.Len(t, fixed.SkipDates, 2)
	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), fixed.SkipDates[0])
	assert.True(t, fixed.Active)

	interval := orders[1]
	assert.Equal(t, growplan.Interval, interval.Schedule.Type)
	assert.Equal(t, 7, interval.Schedule.IntervalDays)
	assert.Empty(t, interval.Schedule.DaysOfWeek)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), interval.Schedule.EndDate)
	assert.False(t, interval.Active)
}

func TestLoadRecurringOrdersBadWeekday(t *testing.T) {
	path := writeFixture(t, "recurring_orders.csv",
		`order_id,customer,target_type,target_id,quantity_oz,overage_percent,schedule_type,days_of_week,interval_days,start_date,end_date,lead_time_days,skip_dates,active
ro-1,Harvest Market,product,sunflower,32,10,FixedDay,Mon;Zonday,,2025-05-01,,14,,true
`)

	_, err := NewLoader().LoadRecurringOrders(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day_of_week")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().LoadProducts(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

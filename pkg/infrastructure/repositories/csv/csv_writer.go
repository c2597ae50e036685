package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/growplan"
)

// Writer persists order data back to CSV files. Skip dates and activity
// flags change at runtime, so standing orders are the one dataset that
// round-trips.
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteRecurringOrders writes standing orders in the column layout
// LoadRecurringOrders reads. Any existing file is replaced.
func (w *Writer) WriteRecurringOrders(filename string, orders []*entities.RecurringOrder) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create recurring orders file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(recurringOrdersHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, order := range orders {
		if err := writer.Write(formatRecurringOrder(order)); err != nil {
			return fmt.Errorf("failed to write order %s: %w", order.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush recurring orders CSV: %w", err)
	}
	return nil
}

func formatRecurringOrder(order *entities.RecurringOrder) []string {
	targetType, targetID := "product", string(order.ProductID)
	if order.IsBlend() {
		targetType, targetID = "blend", string(order.BlendID)
	}

	intervalDays := ""
	if order.Schedule.IntervalDays != 0 {
		intervalDays = strconv.Itoa(order.Schedule.IntervalDays)
	}

	endDate := ""
	if !order.Schedule.EndDate.IsZero() {
		endDate = order.Schedule.EndDate.Format("2006-01-02")
	}

	return []string{
		string(order.ID),
		order.Customer,
		targetType,
		targetID,
		order.QuantityOz.String(),
		order.OveragePercent.String(),
		order.Schedule.Type.String(),
		formatDaysOfWeek(order.Schedule.DaysOfWeek),
		intervalDays,
		order.Schedule.StartDate.Format("2006-01-02"),
		endDate,
		strconv.Itoa(order.Schedule.LeadTimeDays),
		formatSkipDates(order.SkipDates),
		strconv.FormatBool(order.Active),
	}
}

func formatDaysOfWeek(days []time.Weekday) string {
	names := make([]string, 0, len(days))
	for _, day := range days {
		names = append(names, day.String()[:3])
	}
	return strings.Join(names, ";")
}

func formatSkipDates(dates []time.Time) string {
	keys := make([]string, 0, len(dates))
	for _, date := range dates {
		keys = append(keys, growplan.DayKey(date))
	}
	return strings.Join(keys, ";")
}

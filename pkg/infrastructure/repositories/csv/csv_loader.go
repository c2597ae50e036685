package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/growplan/pkg/domain/entities"
	"github.com/vsinha/growplan/pkg/growplan"
)

// recurringOrdersHeader is the column layout shared by the loader and the
// writer, so files written here load back unchanged.
var recurringOrdersHeader = []string{"order_id", "customer", "target_type", "target_id", "quantity_oz", "overage_percent", "schedule_type", "days_of_week", "interval_days", "start_date", "end_date", "lead_time_days", "skip_dates", "active"}

// Loader handles loading catalog and order data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProducts loads crop products from a CSV file
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	records, err := readAll(filename, "products")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"product_id", "name", "days_soaking", "days_germination", "days_light", "avg_oz_per_tray", "seed_oz_per_tray"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var products []*entities.Product
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		product, err := parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}

		products = append(products, product)
	}

	return products, nil
}

// LoadSalesOrders loads one-off orders from a CSV file
func (l *Loader) LoadSalesOrders(filename string) ([]*entities.SalesOrder, error) {
	records, err := readAll(filename, "sales orders")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"order_id", "customer", "target_type", "target_id", "quantity_oz", "overage_percent", "delivery_date"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("sales orders CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var orders []*entities.SalesOrder
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("sales orders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		order, err := parseSalesOrder(record)
		if err != nil {
			return nil, fmt.Errorf("sales orders CSV row %d: %w", i+2, err)
		}

		orders = append(orders, order)
	}

	return orders, nil
}

// LoadRecurringOrders loads standing order definitions from a CSV file
func (l *Loader) LoadRecurringOrders(filename string) ([]*entities.RecurringOrder, error) {
	records, err := readAll(filename, "recurring orders")
	if err != nil {
		return nil, err
	}

	expectedHeader := recurringOrdersHeader
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("recurring orders CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var orders []*entities.RecurringOrder
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("recurring orders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		order, err := parseRecurringOrder(record)
		if err != nil {
			return nil, fmt.Errorf("recurring orders CSV row %d: %w", i+2, err)
		}

		orders = append(orders, order)
	}

	return orders, nil
}

// Helper functions for parsing CSV records

func readAll(filename, label string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", label, filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", label, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", label)
	}
	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseProduct(record []string) (*entities.Product, error) {
	id := entities.ProductID(record[0])
	name := record[1]

	daysSoaking, err := strconv.Atoi(record[2])
	if err != nil {
		return nil, fmt.Errorf("invalid days_soaking: %s", record[2])
	}
	daysGermination, err := strconv.Atoi(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid days_germination: %s", record[3])
	}
	daysLight, err := strconv.Atoi(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid days_light: %s", record[4])
	}

	avgOz, err := parseOptionalDecimal(record[5])
	if err != nil {
		return nil, fmt.Errorf("invalid avg_oz_per_tray: %s", record[5])
	}
	seedOz, err := parseOptionalDecimal(record[6])
	if err != nil {
		return nil, fmt.Errorf("invalid seed_oz_per_tray: %s", record[6])
	}

	return entities.NewProduct(id, name, daysSoaking, daysGermination, daysLight, avgOz, seedOz)
}

func parseSalesOrder(record []string) (*entities.SalesOrder, error) {
	id := entities.OrderID(record[0])
	customer := record[1]

	productID, blendID, err := parseTarget(record[2], record[3])
	if err != nil {
		return nil, err
	}

	quantity, err := decimal.NewFromString(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid quantity_oz: %s", record[4])
	}
	overage, err := parseOptionalDecimal(record[5])
	if err != nil {
		return nil, fmt.Errorf("invalid overage_percent: %s", record[5])
	}

	deliveryDate, err := time.Parse("2006-01-02", record[6])
	if err != nil {
		return nil, fmt.Errorf("invalid delivery_date format: %s (expected YYYY-MM-DD)", record[6])
	}

	return entities.NewSalesOrder(id, customer, productID, blendID, quantity, overage, deliveryDate)
}

func parseRecurringOrder(record []string) (*entities.RecurringOrder, error) {
	id := entities.OrderID(record[0])
	customer := record[1]

	productID, blendID, err := parseTarget(record[2], record[3])
	if err != nil {
		return nil, err
	}

	quantity, err := decimal.NewFromString(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid quantity_oz: %s", record[4])
	}
	overage, err := parseOptionalDecimal(record[5])
	if err != nil {
		return nil, fmt.Errorf("invalid overage_percent: %s", record[5])
	}

	scheduleType, err := parseScheduleType(record[6])
	if err != nil {
		return nil, err
	}

	daysOfWeek, err := parseDaysOfWeek(record[7])
	if err != nil {
		return nil, err
	}

	intervalDays := 0
	if record[8] != "" {
		intervalDays, err = strconv.Atoi(record[8])
		if err != nil {
			return nil, fmt.Errorf("invalid interval_days: %s", record[8])
		}
	}

	startDate, err := time.Parse("2006-01-02", record[9])
	if err != nil {
		return nil, fmt.Errorf("invalid start_date format: %s (expected YYYY-MM-DD)", record[9])
	}

	var endDate time.Time
	if record[10] != "" {
		endDate, err = time.Parse("2006-01-02", record[10])
		if err != nil {
			return nil, fmt.Errorf("invalid end_date format: %s (expected YYYY-MM-DD)", record[10])
		}
	}

	leadTimeDays, err := strconv.Atoi(record[11])
	if err != nil {
		return nil, fmt.Errorf("invalid lead_time_days: %s", record[11])
	}

	skipDates, err := parseSkipDates(record[12])
	if err != nil {
		return nil, err
	}

	active, err := strconv.ParseBool(record[13])
	if err != nil {
		return nil, fmt.Errorf("invalid active flag: %s", record[13])
	}

	schedule := growplan.RecurringSchedule{
		Type:         scheduleType,
		DaysOfWeek:   daysOfWeek,
		IntervalDays: intervalDays,
		StartDate:    startDate,
		EndDate:      endDate,
		LeadTimeDays: leadTimeDays,
	}

	order, err := entities.NewRecurringOrder(id, customer, productID, blendID, quantity, overage, schedule)
	if err != nil {
		return nil, err
	}
	order.SkipDates = skipDates
	order.Active = active
	return order, nil
}

func parseTarget(targetType, targetID string) (entities.ProductID, entities.BlendID, error) {
	switch strings.ToLower(targetType) {
	case "product":
		return entities.ProductID(targetID), "", nil
	case "blend":
		return "", entities.BlendID(targetID), nil
	default:
		return "", "", fmt.Errorf("invalid target_type: %s (expected 'product' or 'blend')", targetType)
	}
}

func parseScheduleType(s string) (growplan.ScheduleType, error) {
	switch strings.ToLower(s) {
	case "fixedday", "fixed_day":
		return growplan.FixedDay, nil
	case "interval":
		return growplan.Interval, nil
	default:
		return growplan.FixedDay, fmt.Errorf("invalid schedule_type: %s (expected: FixedDay or Interval)", s)
	}
}

// parseDaysOfWeek parses a semicolon-joined weekday list like "Mon;Thu".
// Empty input is valid; interval schedules leave the column blank.
func parseDaysOfWeek(s string) ([]time.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var days []time.Weekday
	for _, part := range strings.Split(s, ";") {
		day, err := parseWeekday(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(s) {
	case "sun", "sunday":
		return time.Sunday, nil
	case "mon", "monday":
		return time.Monday, nil
	case "tue", "tuesday":
		return time.Tuesday, nil
	case "wed", "wednesday":
		return time.Wednesday, nil
	case "thu", "thursday":
		return time.Thursday, nil
	case "fri", "friday":
		return time.Friday, nil
	case "sat", "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("invalid day_of_week: %s", s)
	}
}

// parseSkipDates parses a semicolon-joined date list like
// "2025-06-12;2025-07-03". Empty input means no skips.
func parseSkipDates(s string) ([]time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var dates []time.Time
	for _, part := range strings.Split(s, ";") {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid skip date: %s (expected YYYY-MM-DD)", part)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

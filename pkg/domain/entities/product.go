package entities

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/growplan/pkg/growplan"
)

// ProductID represents a unique crop product identifier
type ProductID string

// Product represents one crop in the catalog with its growth timing and
// yield data
type Product struct {
	ID              ProductID
	Name            string
	DaysSoaking     int
	DaysGermination int
	DaysLight       int
	AvgOzPerTray    decimal.Decimal // zero when the catalog has no yield data yet
	SeedOzPerTray   decimal.Decimal // seed weight per tray, for purchasing
}

// NewProduct creates a validated Product
func NewProduct(
	id ProductID,
	name string,
	daysSoaking, daysGermination, daysLight int,
	avgOzPerTray, seedOzPerTray decimal.Decimal,
) (*Product, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if daysGermination < 0 {
		return nil, fmt.Errorf("germination days cannot be negative, got %d", daysGermination)
	}
	if daysLight < 0 {
		return nil, fmt.Errorf("light days cannot be negative, got %d", daysLight)
	}
	if avgOzPerTray.Sign() < 0 {
		return nil, fmt.Errorf("avg oz per tray cannot be negative, got %s", avgOzPerTray)
	}
	if seedOzPerTray.Sign() < 0 {
		return nil, fmt.Errorf("seed oz per tray cannot be negative, got %s", seedOzPerTray)
	}

	return &Product{
		ID:              id,
		Name:            name,
		DaysSoaking:     daysSoaking,
		DaysGermination: daysGermination,
		DaysLight:       daysLight,
		AvgOzPerTray:    avgOzPerTray,
		SeedOzPerTray:   seedOzPerTray,
	}, nil
}

// Timing converts the catalog record into the scheduling engine's timing
// input. Non-positive soak days collapse to no soak.
func (p *Product) Timing() growplan.CropTiming {
	return growplan.CropTiming{
		Soak:            growplan.SoakFor(p.DaysSoaking),
		GerminationDays: p.DaysGermination,
		LightDays:       p.DaysLight,
		AvgYieldPerTray: p.AvgOzPerTray,
	}
}

// RequiresSoaking reports whether the crop has a soak phase
func (p *Product) RequiresSoaking() bool {
	return growplan.SoakFor(p.DaysSoaking).Required()
}

// TotalGrowthDays returns the full seed-to-harvest cycle length in days
func (p *Product) TotalGrowthDays() int {
	return growplan.SoakFor(p.DaysSoaking).Days() + p.DaysGermination + p.DaysLight
}

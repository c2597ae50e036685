package growplan

import (
	"time"
)

// stageDates is the backward walk shared by single-crop and blend scheduling.
type stageDates struct {
	soak            time.Time
	seed            time.Time
	moveToLight     time.Time
	harvest         time.Time
	growthDays      int
	requiresSoaking bool
}

// walkBack derives the stage dates by subtracting stage durations from the
// harvest date, normalized to local midnight. When soaking is skipped the
// soak date is the seed date itself, not a subtraction by zero; the equality
// is exact.
func walkBack(harvestDate time.Time, timing CropTiming) (stageDates, error) {
	if timing.GerminationDays < 0 {
		return stageDates{}, invalidParam("daysGermination", "must not be negative, got %d", timing.GerminationDays)
	}
	if timing.LightDays < 0 {
		return stageDates{}, invalidParam("daysLight", "must not be negative, got %d", timing.LightDays)
	}

	harvest := Midnight(harvestDate)
	moveToLight := AddDays(harvest, -timing.LightDays)
	seed := AddDays(moveToLight, -timing.GerminationDays)
	soak := seed
	if timing.Soak.Required() {
		soak = AddDays(seed, -timing.Soak.Days())
	}

	return stageDates{
		soak:            soak,
		seed:            seed,
		moveToLight:     moveToLight,
		harvest:         harvest,
		growthDays:      timing.Soak.Days() + timing.GerminationDays + timing.LightDays,
		requiresSoaking: timing.Soak.Required(),
	}, nil
}

// Schedule computes the full backward production schedule for a single crop:
// tray count, total quantity with overage, and the soak/seed/move-to-light
// dates walked back from the harvest date. Zero-length stages collapse their
// date onto the next stage's date; that is well-defined output, not an error.
func Schedule(req ProductionRequest, timing CropTiming) (ProductionSchedule, error) {
	trays, err := TraysNeeded(req.QuantityOz, timing.AvgYieldPerTray, req.OveragePercent)
	if err != nil {
		return ProductionSchedule{}, err
	}

	dates, err := walkBack(req.HarvestDate, timing)
	if err != nil {
		return ProductionSchedule{}, err
	}

	return ProductionSchedule{
		TraysNeeded:     trays,
		TotalQuantityOz: TotalWithOverage(req.QuantityOz, req.OveragePercent),
		RequiresSoaking: dates.requiresSoaking,
		SoakDate:        dates.soak,
		SeedDate:        dates.seed,
		MoveToLightDate: dates.moveToLight,
		HarvestDate:     dates.harvest,
		TotalGrowthDays: dates.growthDays,
	}, nil
}

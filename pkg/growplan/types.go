package growplan

import (
	"time"

	"github.com/shopspring/decimal"
)

// SoakStage models the optional pre-seeding soak phase of a crop. Crops that
// are seeded dry carry NoSoak; the degenerate soakDate == seedDate behavior
// falls out of the type instead of a nullable field.
type SoakStage struct {
	days int
}

// NoSoak returns the soak stage for crops seeded without soaking.
func NoSoak() SoakStage { return SoakStage{} }

// SoakFor returns a soak stage of the given length in days. Values <= 0
// collapse to NoSoak, mirroring catalog records that leave the field unset.
func SoakFor(days int) SoakStage {
	if days <= 0 {
		return SoakStage{}
	}
	return SoakStage{days: days}
}

// Required reports whether the crop has a soak phase at all.
func (s SoakStage) Required() bool { return s.days > 0 }

// Days returns the soak duration; zero when soaking is skipped.
func (s SoakStage) Days() int { return s.days }

// CropTiming carries the growth-stage durations and yield data for one crop.
type CropTiming struct {
	Soak            SoakStage
	GerminationDays int
	LightDays       int
	AvgYieldPerTray decimal.Decimal // ounces harvested per tray, on average
}

// ProductionRequest is the order-side input to scheduling: how much, by when,
// and with what safety margin.
type ProductionRequest struct {
	QuantityOz     decimal.Decimal
	OveragePercent decimal.Decimal
	HarvestDate    time.Time
}

// ProductionSchedule is the computed backward schedule for a single crop.
// Dates are local midnights satisfying SoakDate <= SeedDate <=
// MoveToLightDate <= HarvestDate, with equality wherever a stage has zero
// length. When RequiresSoaking is false, SoakDate equals SeedDate exactly.
type ProductionSchedule struct {
	TraysNeeded     int64
	TotalQuantityOz decimal.Decimal
	RequiresSoaking bool
	SoakDate        time.Time
	SeedDate        time.Time
	MoveToLightDate time.Time
	HarvestDate     time.Time
	TotalGrowthDays int
}

// StartDate returns the day production actually begins: the soak date for
// soaked crops, otherwise the seed date.
func (s ProductionSchedule) StartDate() time.Time {
	if s.RequiresSoaking {
		return s.SoakDate
	}
	return s.SeedDate
}

// BlendIngredient is one component of a blended product: its identity, its
// share of the blend, and its own growth timing.
type BlendIngredient struct {
	ProductID    string
	ProductName  string
	RatioPercent decimal.Decimal
	Timing       CropTiming
}

// IngredientSchedule is a per-ingredient production schedule inside a blend,
// annotated with the ingredient's allocated quantity and ratio.
type IngredientSchedule struct {
	ProductionSchedule

	ProductID    string
	ProductName  string
	TargetOz     decimal.Decimal
	RatioPercent decimal.Decimal
}

// BlendSchedule is the full production plan for a blended product: every
// ingredient scheduled independently against the shared harvest date, plus
// the blend-level summary.
type BlendSchedule struct {
	HarvestDate       time.Time
	TotalQuantityOz   decimal.Decimal
	EarliestStartDate time.Time
	Ingredients       []IngredientSchedule
}

// ScheduleType selects how a recurring order repeats.
type ScheduleType int

const (
	// FixedDay repeats on fixed days of the week.
	FixedDay ScheduleType = iota
	// Interval repeats every IntervalDays days from the start date.
	Interval
)

func (t ScheduleType) String() string {
	switch t {
	case FixedDay:
		return "FixedDay"
	case Interval:
		return "Interval"
	default:
		return "Unknown"
	}
}

// RecurringSchedule defines a repeating order. EndDate may be the zero time,
// meaning the order has no end; the lookahead horizon bounds enumeration
// either way.
type RecurringSchedule struct {
	Type         ScheduleType
	DaysOfWeek   []time.Weekday // FixedDay only
	IntervalDays int            // Interval only
	StartDate    time.Time
	EndDate      time.Time // zero = open ended
	LeadTimeDays int
}

// Stage identifies one discrete production operation derived from a schedule.
type Stage int

const (
	StageSoak Stage = iota
	StageSeed
	StageMoveToLight
	StageHarvest
)

func (s Stage) String() string {
	switch s {
	case StageSoak:
		return "Soak"
	case StageSeed:
		return "Seed"
	case StageMoveToLight:
		return "Move to Light"
	case StageHarvest:
		return "Harvest"
	default:
		return "Unknown"
	}
}

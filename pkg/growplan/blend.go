package growplan

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleBlend schedules every ingredient of a blended product against one
// shared harvest date. Each ingredient runs its own backward walk with its
// own timing, so slow growers start earlier; the blend's earliest start is
// whichever ingredient has the longest cycle. The blend total (with overage)
// is allocated across ingredients by each ingredient's own ratio; ratios are
// never required to sum to 100.
//
// Any ingredient that cannot be scheduled fails the whole call. Downstream
// rack planning cannot work with a partial blend.
func ScheduleBlend(req ProductionRequest, ingredients []BlendIngredient) (BlendSchedule, error) {
	if len(ingredients) == 0 {
		return BlendSchedule{}, invalidParam("ingredients", "blend has no ingredients")
	}
	if req.QuantityOz.Sign() <= 0 {
		return BlendSchedule{}, invalidParam("quantityOz", "must be positive, got %s", req.QuantityOz)
	}
	if req.OveragePercent.Sign() < 0 {
		return BlendSchedule{}, invalidParam("overagePercent", "must not be negative, got %s", req.OveragePercent)
	}

	totalWithOverage := TotalWithOverage(req.QuantityOz, req.OveragePercent)

	blend := BlendSchedule{
		HarvestDate:     Midnight(req.HarvestDate),
		TotalQuantityOz: totalWithOverage,
		Ingredients:     make([]IngredientSchedule, 0, len(ingredients)),
	}

	var earliest time.Time
	for _, ing := range ingredients {
		sched, err := scheduleIngredient(totalWithOverage, req.HarvestDate, ing)
		if err != nil {
			return BlendSchedule{}, fmt.Errorf("ingredient %s: %w", ingredientLabel(ing), err)
		}
		blend.Ingredients = append(blend.Ingredients, sched)

		start := sched.StartDate()
		if earliest.IsZero() || start.Before(earliest) {
			earliest = start
		}
	}
	blend.EarliestStartDate = earliest

	return blend, nil
}

// scheduleIngredient allocates the ingredient's share of the blend total and
// runs the single-crop walk for it. The share already includes the blend
// overage, so trays are computed with no further margin.
func scheduleIngredient(totalWithOverage decimal.Decimal, harvestDate time.Time, ing BlendIngredient) (IngredientSchedule, error) {
	if ing.RatioPercent.Sign() <= 0 || ing.RatioPercent.Cmp(oneHundred) > 0 {
		return IngredientSchedule{}, invalidParam("ratioPercent", "must be in (0, 100], got %s", ing.RatioPercent)
	}

	targetOz := totalWithOverage.Mul(ing.RatioPercent.Div(oneHundred))

	trays, err := TraysNeeded(targetOz, ing.Timing.AvgYieldPerTray, decimal.Zero)
	if err != nil {
		return IngredientSchedule{}, err
	}

	dates, err := walkBack(harvestDate, ing.Timing)
	if err != nil {
		return IngredientSchedule{}, err
	}

	return IngredientSchedule{
		ProductionSchedule: ProductionSchedule{
			TraysNeeded:     trays,
			TotalQuantityOz: targetOz,
			RequiresSoaking: dates.requiresSoaking,
			SoakDate:        dates.soak,
			SeedDate:        dates.seed,
			MoveToLightDate: dates.moveToLight,
			HarvestDate:     dates.harvest,
			TotalGrowthDays: dates.growthDays,
		},
		ProductID:    ing.ProductID,
		ProductName:  ing.ProductName,
		TargetOz:     targetOz,
		RatioPercent: ing.RatioPercent,
	}, nil
}

func ingredientLabel(ing BlendIngredient) string {
	if ing.ProductName != "" {
		return ing.ProductName
	}
	if ing.ProductID != "" {
		return ing.ProductID
	}
	return "(unnamed)"
}

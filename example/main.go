package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vsinha/growplan/pkg/growplan"
)

func main() {
	// A restaurant wants 32 oz of spicy mix every Friday.
	harvestDate := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)
	request := growplan.ProductionRequest{
		QuantityOz:     decimal.NewFromInt(32),
		OveragePercent: decimal.NewFromInt(10), // plan 10% extra for trim loss
		HarvestDate:    harvestDate,
	}

	fmt.Println("🌱 Planning a spicy mix delivery...")
	fmt.Printf("Order: %s oz + %s%% overage, harvest %s\n",
		request.QuantityOz.String(),
		request.OveragePercent.String(),
		harvestDate.Format("2006-01-02"))
	fmt.Println()

	// Schedule every ingredient backward from the shared harvest date
	blend, err := growplan.ScheduleBlend(request, spicyMixIngredients())
	if err != nil {
		fmt.Printf("❌ Scheduling failed: %v\n", err)
		return
	}

	fmt.Println("📊 Blend Schedule:")
	fmt.Printf("  Total to grow: %s oz\n", blend.TotalQuantityOz.StringFixed(2))
	fmt.Printf("  Earliest start: %s\n", blend.EarliestStartDate.Format("2006-01-02"))
	fmt.Println()

	fmt.Println("🌿 Ingredients:")
	for _, ing := range blend.Ingredients {
		fmt.Printf("  %s: %s oz (%s%%) on %d trays\n",
			ing.ProductName,
			ing.TargetOz.StringFixed(2),
			ing.RatioPercent.String(),
			ing.TraysNeeded)
		if ing.RequiresSoaking {
			fmt.Printf("    Soak %s | Seed %s | Light %s | Harvest %s\n",
				ing.SoakDate.Format("Jan 2"),
				ing.SeedDate.Format("Jan 2"),
				ing.MoveToLightDate.Format("Jan 2"),
				ing.HarvestDate.Format("Jan 2"))
		} else {
			fmt.Printf("    Seed %s | Light %s | Harvest %s\n",
				ing.SeedDate.Format("Jan 2"),
				ing.MoveToLightDate.Format("Jan 2"),
				ing.HarvestDate.Format("Jan 2"))
		}
	}
	fmt.Println()

	// The slowest ingredient controls how late the order can be placed
	analysis := growplan.AnalyzeLeadTimes(blend)
	fmt.Println("⏱️  Lead Times:")
	fmt.Printf("  %s\n", analysis.Summary())
	for _, lead := range analysis.Ranking {
		fmt.Printf("  %s: %d days\n", lead.ProductName, lead.TotalGrowthDays)
	}
	fmt.Println()

	// Enumerate the standing order's delivery dates two weeks out
	weekly := growplan.RecurringSchedule{
		Type:         growplan.FixedDay,
		DaysOfWeek:   []time.Weekday{time.Friday},
		StartDate:    time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		LeadTimeDays: 14,
	}
	from := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	deliveries, err := growplan.Occurrences(weekly, nil, from)
	if err != nil {
		fmt.Printf("❌ Occurrence listing failed: %v\n", err)
		return
	}

	fmt.Println("📆 Upcoming Friday deliveries:")
	for _, d := range deliveries {
		fmt.Printf("  %s\n", d.Format("Mon 2006-01-02"))
	}
	fmt.Println()

	fmt.Println("✅ Plan complete!")
}

func spicyMixIngredients() []growplan.BlendIngredient {
	return []growplan.BlendIngredient{
		{
			ProductID:    "radish",
			ProductName:  "Radish",
			RatioPercent: decimal.NewFromInt(50),
			Timing: growplan.CropTiming{
				Soak:            growplan.NoSoak(),
				GerminationDays: 2,
				LightDays:       4,
				AvgYieldPerTray: decimal.NewFromInt(4),
			},
		},
		{
			ProductID:    "mustard",
			ProductName:  "Mustard",
			RatioPercent: decimal.NewFromInt(30),
			Timing: growplan.CropTiming{
				Soak:            growplan.NoSoak(),
				GerminationDays: 3,
				LightDays:       5,
				AvgYieldPerTray: decimal.NewFromInt(3),
			},
		},
		{
			ProductID:    "pea",
			ProductName:  "Pea Shoots",
			RatioPercent: decimal.NewFromInt(20),
			Timing: growplan.CropTiming{
				Soak:            growplan.SoakFor(1),
				GerminationDays: 2,
				LightDays:       4,
				AvgYieldPerTray: decimal.NewFromInt(5),
			},
		},
	}
}

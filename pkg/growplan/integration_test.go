package growplan

import (
	"testing"
	"time"
)

// End-to-end walk of a standing blend order: enumerate the next delivery
// from the recurring definition, schedule the blend backward from it, then
// derive day-of statuses for the resulting stage work.
func TestStandingBlendOrderScenario(t *testing.T) {
	today := date(2025, time.June, 2) // a Monday

	recurring := RecurringSchedule{
		Type:         FixedDay,
		DaysOfWeek:   []time.Weekday{time.Sunday},
		StartDate:    date(2025, time.March, 1),
		LeadTimeDays: 14,
	}

	harvest, ok, err := NextOccurrence(recurring, nil, today)
	if err != nil {
		t.Fatalf("NextOccurrence() error = %v", err)
	}
	if !ok {
		t.Fatal("NextOccurrence() found no delivery inside the lead time")
	}
	if !harvest.Equal(date(2025, time.June, 8)) {
		t.Fatalf("next delivery = %v, want Sunday 2025-06-08", harvest)
	}

	req := ProductionRequest{
		QuantityOz:     dec("24"),
		OveragePercent: dec("10"),
		HarvestDate:    harvest,
	}
	ingredients := []BlendIngredient{
		{ProductID: "pea", ProductName: "Pea Shoots", RatioPercent: dec("50"), Timing: timing(1, 2, 4, "5")},
		{ProductID: "broc", ProductName: "Broccoli", RatioPercent: dec("50"), Timing: timing(0, 3, 6, "4")},
	}

	blend, err := ScheduleBlend(req, ingredients)
	if err != nil {
		t.Fatalf("ScheduleBlend() error = %v", err)
	}

	t.Logf("Blend plan for %s:", harvest.Format("2006-01-02"))
	for _, ing := range blend.Ingredients {
		t.Logf("  %s: %s oz, %d trays, start %s",
			ing.ProductName, ing.TargetOz, ing.TraysNeeded, ing.StartDate().Format("2006-01-02"))
	}

	// 24 oz + 10% = 26.4 oz, split evenly.
	for _, ing := range blend.Ingredients {
		if !ing.TargetOz.Equal(dec("13.2")) {
			t.Errorf("%s TargetOz = %s, want 13.2", ing.ProductName, ing.TargetOz)
		}
	}

	pea, broc := blend.Ingredients[0], blend.Ingredients[1]
	if pea.TraysNeeded != 3 { // 13.2 / 5
		t.Errorf("pea trays = %d, want 3", pea.TraysNeeded)
	}
	if broc.TraysNeeded != 4 { // 13.2 / 4
		t.Errorf("broccoli trays = %d, want 4", broc.TraysNeeded)
	}

	// Pea: 7-day cycle, soak Jun 1. Broccoli: 9-day cycle, seed May 30.
	if !pea.StartDate().Equal(date(2025, time.June, 1)) {
		t.Errorf("pea start = %v, want 2025-06-01", pea.StartDate())
	}
	if !broc.StartDate().Equal(date(2025, time.May, 30)) {
		t.Errorf("broccoli start = %v, want 2025-05-30", broc.StartDate())
	}
	if !blend.EarliestStartDate.Equal(date(2025, time.May, 30)) {
		t.Errorf("EarliestStartDate = %v, want 2025-05-30", blend.EarliestStartDate)
	}

	analysis := AnalyzeLeadTimes(blend)
	if analysis.Bottleneck.ProductID != "broc" {
		t.Errorf("bottleneck = %s, want broc", analysis.Bottleneck.ProductID)
	}

	// Both starts have already slipped: pea should have soaked yesterday
	// and seeds today, broccoli's seeding is three days gone.
	if got := StatusFor(pea.SoakDate, false, today); got != TaskOverdue {
		t.Errorf("pea soak status = %v, want Overdue", got)
	}
	if got := StatusFor(pea.SeedDate, false, today); got != TaskDueToday {
		t.Errorf("pea seed status = %v, want DueToday", got)
	}
	if got := DateLabel(pea.SeedDate, today); got != "Today" {
		t.Errorf("pea seed label = %q, want Today", got)
	}
	if got := OverdueLabel(broc.SeedDate, today); got != "3 days overdue" {
		t.Errorf("broccoli seed label = %q, want \"3 days overdue\"", got)
	}
}

package growplan

import (
	"testing"
	"time"
)

func TestScheduleNoSoakCrop(t *testing.T) {
	req := ProductionRequest{
		QuantityOz:     dec("16"),
		OveragePercent: dec("0"),
		HarvestDate:    date(2025, time.June, 15),
	}
	got, err := Schedule(req, timing(0, 3, 7, "8"))
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if !got.MoveToLightDate.Equal(date(2025, time.June, 8)) {
		t.Errorf("MoveToLightDate = %v, want 2025-06-08", got.MoveToLightDate)
	}
	if !got.SeedDate.Equal(date(2025, time.June, 5)) {
		t.Errorf("SeedDate = %v, want 2025-06-05", got.SeedDate)
	}
	if !got.SoakDate.Equal(got.SeedDate) {
		t.Errorf("SoakDate = %v, want SeedDate %v for a no-soak crop", got.SoakDate, got.SeedDate)
	}
	if got.RequiresSoaking {
		t.Error("RequiresSoaking = true, want false")
	}
	if got.TotalGrowthDays != 10 {
		t.Errorf("TotalGrowthDays = %d, want 10", got.TotalGrowthDays)
	}
	if got.TraysNeeded != 2 {
		t.Errorf("TraysNeeded = %d, want 2", got.TraysNeeded)
	}
}

func TestScheduleSoakedCrop(t *testing.T) {
	req := ProductionRequest{
		QuantityOz:     dec("10"),
		OveragePercent: dec("0"),
		HarvestDate:    date(2025, time.June, 15),
	}
	got, err := Schedule(req, timing(1, 2, 4, "5"))
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if !got.MoveToLightDate.Equal(date(2025, time.June, 11)) {
		t.Errorf("MoveToLightDate = %v, want 2025-06-11", got.MoveToLightDate)
	}
	if !got.SeedDate.Equal(date(2025, time.June, 9)) {
		t.Errorf("SeedDate = %v, want 2025-06-09", got.SeedDate)
	}
	if !got.SoakDate.Equal(date(2025, time.June, 8)) {
		t.Errorf("SoakDate = %v, want 2025-06-08", got.SoakDate)
	}
	if !got.RequiresSoaking {
		t.Error("RequiresSoaking = false, want true")
	}
	if got.TotalGrowthDays != 7 {
		t.Errorf("TotalGrowthDays = %d, want 7", got.TotalGrowthDays)
	}
	if !got.StartDate().Equal(got.SoakDate) {
		t.Errorf("StartDate() = %v, want SoakDate %v", got.StartDate(), got.SoakDate)
	}
}

func TestScheduleZeroLengthStages(t *testing.T) {
	harvest := date(2025, time.June, 15)
	req := ProductionRequest{
		QuantityOz:     dec("4"),
		OveragePercent: dec("0"),
		HarvestDate:    harvest,
	}
	got, err := Schedule(req, timing(0, 0, 0, "8"))
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	for _, d := range []time.Time{got.SoakDate, got.SeedDate, got.MoveToLightDate, got.HarvestDate} {
		if !d.Equal(harvest) {
			t.Errorf("stage date = %v, want harvest date %v", d, harvest)
		}
	}
	if got.TotalGrowthDays != 0 {
		t.Errorf("TotalGrowthDays = %d, want 0", got.TotalGrowthDays)
	}
}

func TestScheduleStageOrdering(t *testing.T) {
	tests := []struct {
		name  string
		soak  int
		germ  int
		light int
	}{
		{name: "all stages", soak: 2, germ: 4, light: 8},
		{name: "no soak", soak: 0, germ: 3, light: 7},
		{name: "zero germination", soak: 1, germ: 0, light: 5},
		{name: "zero light", soak: 1, germ: 3, light: 0},
		{name: "long cycle", soak: 3, germ: 10, light: 21},
	}

	harvest := date(2025, time.September, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ProductionRequest{
				QuantityOz:     dec("8"),
				OveragePercent: dec("5"),
				HarvestDate:    harvest,
			}
			got, err := Schedule(req, timing(tt.soak, tt.germ, tt.light, "4"))
			if err != nil {
				t.Fatalf("Schedule() error = %v", err)
			}

			if got.SoakDate.After(got.SeedDate) {
				t.Errorf("SoakDate %v after SeedDate %v", got.SoakDate, got.SeedDate)
			}
			if got.SeedDate.After(got.MoveToLightDate) {
				t.Errorf("SeedDate %v after MoveToLightDate %v", got.SeedDate, got.MoveToLightDate)
			}
			if got.MoveToLightDate.After(got.HarvestDate) {
				t.Errorf("MoveToLightDate %v after HarvestDate %v", got.MoveToLightDate, got.HarvestDate)
			}
			if !got.RequiresSoaking && !got.SoakDate.Equal(got.SeedDate) {
				t.Errorf("no-soak crop has SoakDate %v != SeedDate %v", got.SoakDate, got.SeedDate)
			}
			wantGrowth := tt.soak + tt.germ + tt.light
			if got.TotalGrowthDays != wantGrowth {
				t.Errorf("TotalGrowthDays = %d, want %d", got.TotalGrowthDays, wantGrowth)
			}
		})
	}
}

func TestScheduleStripsTimeOfDay(t *testing.T) {
	req := ProductionRequest{
		QuantityOz:     dec("8"),
		OveragePercent: dec("0"),
		HarvestDate:    time.Date(2025, time.June, 15, 15, 42, 7, 0, time.UTC),
	}
	got, err := Schedule(req, timing(0, 3, 7, "8"))
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if !got.HarvestDate.Equal(date(2025, time.June, 15)) {
		t.Errorf("HarvestDate = %v, want midnight 2025-06-15", got.HarvestDate)
	}
	if !got.SeedDate.Equal(date(2025, time.June, 5)) {
		t.Errorf("SeedDate = %v, want midnight 2025-06-05", got.SeedDate)
	}
}

func TestScheduleInvalidDurations(t *testing.T) {
	req := ProductionRequest{
		QuantityOz:     dec("8"),
		OveragePercent: dec("0"),
		HarvestDate:    date(2025, time.June, 15),
	}

	t.Run("negative germination", func(t *testing.T) {
		_, err := Schedule(req, timing(0, -1, 7, "8"))
		if !IsInvalidParameter(err) {
			t.Errorf("Schedule() error = %v, want InvalidParameterError", err)
		}
	})

	t.Run("negative light", func(t *testing.T) {
		_, err := Schedule(req, timing(0, 3, -2, "8"))
		if !IsInvalidParameter(err) {
			t.Errorf("Schedule() error = %v, want InvalidParameterError", err)
		}
	})

	t.Run("negative soak collapses to no soak", func(t *testing.T) {
		got, err := Schedule(req, timing(-3, 3, 7, "8"))
		if err != nil {
			t.Fatalf("Schedule() error = %v", err)
		}
		if got.RequiresSoaking {
			t.Error("RequiresSoaking = true, want false")
		}
		if !got.SoakDate.Equal(got.SeedDate) {
			t.Errorf("SoakDate = %v, want SeedDate %v", got.SoakDate, got.SeedDate)
		}
	})
}

func TestScheduleInvalidQuantities(t *testing.T) {
	tm := timing(0, 3, 7, "8")
	harvest := date(2025, time.June, 15)

	tests := []struct {
		name    string
		qty     string
		overage string
		yield   string
	}{
		{name: "zero quantity", qty: "0", overage: "0", yield: "8"},
		{name: "negative overage", qty: "16", overage: "-5", yield: "8"},
		{name: "zero yield", qty: "16", overage: "0", yield: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm.AvgYieldPerTray = dec(tt.yield)
			req := ProductionRequest{
				QuantityOz:     dec(tt.qty),
				OveragePercent: dec(tt.overage),
				HarvestDate:    harvest,
			}
			_, err := Schedule(req, tm)
			if !IsInvalidParameter(err) {
				t.Errorf("Schedule() error = %v, want InvalidParameterError", err)
			}
		})
	}
}

package growplan

import (
	"testing"
)

func TestSoakStage(t *testing.T) {
	tests := []struct {
		name         string
		stage        SoakStage
		wantRequired bool
		wantDays     int
	}{
		{name: "no soak", stage: NoSoak(), wantRequired: false, wantDays: 0},
		{name: "positive days", stage: SoakFor(3), wantRequired: true, wantDays: 3},
		{name: "zero collapses", stage: SoakFor(0), wantRequired: false, wantDays: 0},
		{name: "negative collapses", stage: SoakFor(-2), wantRequired: false, wantDays: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stage.Required(); got != tt.wantRequired {
				t.Errorf("Required() = %v, want %v", got, tt.wantRequired)
			}
			if got := tt.stage.Days(); got != tt.wantDays {
				t.Errorf("Days() = %d, want %d", got, tt.wantDays)
			}
		})
	}

	if SoakFor(0) != NoSoak() {
		t.Error("SoakFor(0) != NoSoak()")
	}
}

func TestScheduleTypeString(t *testing.T) {
	tests := []struct {
		in   ScheduleType
		want string
	}{
		{FixedDay, "FixedDay"},
		{Interval, "Interval"},
		{ScheduleType(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("ScheduleType(%d).String() = %q, want %q", int(tt.in), got, tt.want)
		}
	}
}

func TestStageString(t *testing.T) {
	tests := []struct {
		in   Stage
		want string
	}{
		{StageSoak, "Soak"},
		{StageSeed, "Seed"},
		{StageMoveToLight, "Move to Light"},
		{StageHarvest, "Harvest"},
		{Stage(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", int(tt.in), got, tt.want)
		}
	}
}

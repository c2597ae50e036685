package growplan

import (
	"time"
)

// Occurrences enumerates the delivery dates a recurring order generates
// inside its lookahead horizon. The search window is
// [max(StartDate, from), min(EndDate, from+LeadTimeDays)], inclusive on
// both ends. Dates in skip are excluded at day granularity; time-of-day is
// stripped from every input.
//
// Interval schedules fast-forward from StartDate in IntervalDays steps
// until the window opens, one step per elapsed interval.
func Occurrences(sched RecurringSchedule, skip []time.Time, from time.Time) ([]time.Time, error) {
	if err := validateRecurring(sched); err != nil {
		return nil, err
	}

	start := Midnight(sched.StartDate)
	today := Midnight(from)

	windowStart := start
	if today.After(windowStart) {
		windowStart = today
	}
	windowEnd := AddDays(today, sched.LeadTimeDays)
	if !sched.EndDate.IsZero() {
		if end := Midnight(sched.EndDate); end.Before(windowEnd) {
			windowEnd = end
		}
	}
	if windowEnd.Before(windowStart) {
		return nil, nil
	}

	skipped := make(map[string]struct{}, len(skip))
	for _, s := range skip {
		skipped[DayKey(s)] = struct{}{}
	}

	switch sched.Type {
	case FixedDay:
		return fixedDayOccurrences(sched.DaysOfWeek, skipped, windowStart, windowEnd), nil
	case Interval:
		return intervalOccurrences(sched.IntervalDays, skipped, start, windowStart, windowEnd), nil
	default:
		return nil, invalidParam("scheduleType", "unknown schedule type %d", int(sched.Type))
	}
}

// NextOccurrence returns the first upcoming occurrence, if any.
func NextOccurrence(sched RecurringSchedule, skip []time.Time, from time.Time) (time.Time, bool, error) {
	dates, err := Occurrences(sched, skip, from)
	if err != nil {
		return time.Time{}, false, err
	}
	if len(dates) == 0 {
		return time.Time{}, false, nil
	}
	return dates[0], true, nil
}

func fixedDayOccurrences(daysOfWeek []time.Weekday, skipped map[string]struct{}, windowStart, windowEnd time.Time) []time.Time {
	want := make(map[time.Weekday]bool, len(daysOfWeek))
	for _, dow := range daysOfWeek {
		want[dow] = true
	}

	var dates []time.Time
	for d := windowStart; !d.After(windowEnd); d = AddDays(d, 1) {
		if !want[d.Weekday()] {
			continue
		}
		if _, skip := skipped[DayKey(d)]; skip {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

func intervalOccurrences(intervalDays int, skipped map[string]struct{}, start, windowStart, windowEnd time.Time) []time.Time {
	// Fast-forward to the first interval step inside the window.
	d := start
	for d.Before(windowStart) {
		d = AddDays(d, intervalDays)
	}

	var dates []time.Time
	for ; !d.After(windowEnd); d = AddDays(d, intervalDays) {
		if _, skip := skipped[DayKey(d)]; skip {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

func validateRecurring(sched RecurringSchedule) error {
	if sched.LeadTimeDays <= 0 {
		return invalidParam("leadTimeDays", "must be positive, got %d", sched.LeadTimeDays)
	}

	switch sched.Type {
	case FixedDay:
		if len(sched.DaysOfWeek) == 0 {
			return invalidParam("daysOfWeek", "fixed-day schedule has no days")
		}
		for _, dow := range sched.DaysOfWeek {
			if dow < time.Sunday || dow > time.Saturday {
				return invalidParam("daysOfWeek", "day %d out of range", int(dow))
			}
		}
	case Interval:
		if sched.IntervalDays <= 0 {
			return invalidParam("intervalDays", "must be positive, got %d", sched.IntervalDays)
		}
	}

	return nil
}

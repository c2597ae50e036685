package growplan

import (
	"fmt"
	"time"
)

// TaskStatus classifies a production task relative to a reference day.
type TaskStatus int

const (
	TaskUpcoming TaskStatus = iota
	TaskDueToday
	TaskOverdue
	TaskCompleted
)

func (s TaskStatus) String() string {
	switch s {
	case TaskUpcoming:
		return "Upcoming"
	case TaskDueToday:
		return "Due Today"
	case TaskOverdue:
		return "Overdue"
	case TaskCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Overdue reports whether a task due on due has slipped past today. The
// comparison is at day granularity; a task is never overdue on its own due
// date.
func Overdue(due, today time.Time) bool {
	return Midnight(due).Before(Midnight(today))
}

// StatusFor derives the status of a task from its due date and completion
// state. Completion wins over lateness: a task finished after its due date
// is Completed, not Overdue.
func StatusFor(due time.Time, completed bool, today time.Time) TaskStatus {
	switch {
	case completed:
		return TaskCompleted
	case Overdue(due, today):
		return TaskOverdue
	case SameDay(due, today):
		return TaskDueToday
	default:
		return TaskUpcoming
	}
}

// DateLabel renders a short human label for d relative to today: "Today",
// "Tomorrow", "Yesterday", a weekday name inside the coming week, otherwise
// "Mon, Jan 2".
func DateLabel(d, today time.Time) string {
	switch days := DaysBetween(today, d); {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 1 && days < 7:
		return d.Format("Monday")
	default:
		return d.Format("Mon, Jan 2")
	}
}

// OverdueLabel renders "N days overdue" style annotations for task lists;
// empty when the task is not overdue.
func OverdueLabel(due, today time.Time) string {
	if !Overdue(due, today) {
		return ""
	}
	days := DaysBetween(due, today)
	if days == 1 {
		return "1 day overdue"
	}
	return fmt.Sprintf("%d days overdue", days)
}

package stats

import (
	"sort"
	"time"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/timecalc"
)

// Window is the aggregation range, anchored at the current instant.
type Window string

const (
	WindowDaily   Window = "daily"
	WindowWeekly  Window = "weekly"
	WindowMonthly Window = "monthly"
)

// ParseWindow validates a window string.
func ParseWindow(s string) (Window, bool) {
	switch Window(s) {
	case WindowDaily, WindowWeekly, WindowMonthly:
		return Window(s), true
	}
	return "", false
}

// CategoryTotal is one aggregated row. CategoryID may be unresolvable
// against the current registry; renderers fall back to the raw ID with the
// unknown label.
type CategoryTotal struct {
	CategoryID   string
	TotalSeconds int64
}

// Start returns the window's lower boundary: local midnight today, local
// midnight of the most recent weekStart day, or local midnight on the 1st
// of the current month.
func (w Window) Start(now time.Time, weekStart time.Weekday) time.Time {
	switch w {
	case WindowWeekly:
		return timecalc.StartOfWeek(now, weekStart)
	case WindowMonthly:
		return timecalc.StartOfMonth(now)
	default:
		return timecalc.StartOfDay(now)
	}
}

// Aggregate filters logs to the window and sums durations per category.
// Filtering compares each log's StartTime against the boundary, not its
// date string; Date is the grouping key only for daily goal totals. Rows
// come back descending by total, ties keeping first-seen category order —
// the ordering renderers rely on for "top categories".
func Aggregate(logs []model.TimeLog, w Window, now time.Time, weekStart time.Weekday) []CategoryTotal {
	boundary := w.Start(now, weekStart).UnixMilli()

	totals := map[string]int64{}
	var order []string
	for _, l := range logs {
		if l.StartTime < boundary {
			continue
		}
		if _, seen := totals[l.CategoryID]; !seen {
			order = append(order, l.CategoryID)
		}
		totals[l.CategoryID] += l.DurationSeconds
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		out = append(out, CategoryTotal{CategoryID: id, TotalSeconds: totals[id]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSeconds > out[j].TotalSeconds
	})
	return out
}

// Total is the grand total across all rows of a window.
func Total(totals []CategoryTotal) int64 {
	var sum int64
	for _, t := range totals {
		sum += t.TotalSeconds
	}
	return sum
}

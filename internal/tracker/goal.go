package tracker

import "github.com/focusflow/focusflow/internal/model"

// Crossing reports which goal thresholds a pending append would cross.
type Crossing struct {
	Crossed80     bool
	Crossed100    bool
	TargetSeconds int64
}

// EvaluateCrossing compares the category's daily total before and after
// adding addedSeconds on logDate. Only daily goals are evaluated, and only
// when logDate is the current logical day: a backdated entry cannot
// represent "just now" progress, so it never triggers an alert. logs must be
// the store's pre-append state.
func EvaluateCrossing(goals []model.Goal, logs []model.TimeLog, categoryID string, addedSeconds int64, logDate, today string) Crossing {
	var c Crossing
	if logDate != today {
		return c
	}

	var goal model.Goal
	found := false
	for _, g := range goals {
		if g.CategoryID == categoryID && g.Type == model.GoalDaily {
			goal = g
			found = true
			break
		}
	}
	if !found || goal.TargetSeconds <= 0 {
		return c
	}

	var previous int64
	for _, l := range logs {
		if l.Date == logDate && l.CategoryID == categoryID {
			previous += l.DurationSeconds
		}
	}
	next := previous + addedSeconds

	target := float64(goal.TargetSeconds)
	c.TargetSeconds = goal.TargetSeconds
	c.Crossed100 = previous < goal.TargetSeconds && next >= goal.TargetSeconds
	c.Crossed80 = float64(previous) < 0.8*target && float64(next) >= 0.8*target
	return c
}

package model

// SubCategory is a user-defined refinement within a category. Its ID is
// unique within the parent category only.
type SubCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category is a top-level activity bucket the user logs time against.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Color         Color         `json:"color"`
	Icon          Icon          `json:"icon"`
	SubCategories []SubCategory `json:"subCategories"`
}

// FindSub returns the sub-category with the given ID, if present.
func (c Category) FindSub(id string) (SubCategory, bool) {
	for _, s := range c.SubCategories {
		if s.ID == id {
			return s, true
		}
	}
	return SubCategory{}, false
}

// TimeLog is one completed, immutable record of time spent. Category and
// sub-category references are soft: the referenced entry may have been
// deleted since, and consumers must fall back to UnknownLabel.
//
// Date is the authoritative grouping key for daily totals. It is stored at
// creation time and never re-derived from StartTime, so a backdated entry
// keeps its logical day even though StartTime is anchored at noon of that day.
type TimeLog struct {
	ID              string `json:"id"`
	CategoryID      string `json:"categoryId"`
	SubCategoryID   string `json:"subCategoryId,omitempty"`
	StartTime       int64  `json:"startTime"` // ms since epoch
	EndTime         int64  `json:"endTime"`   // ms since epoch
	DurationSeconds int64  `json:"durationSeconds"`
	Date            string `json:"date"` // YYYY-MM-DD
}

// GoalType is the period a goal applies to.
type GoalType string

const (
	GoalDaily  GoalType = "daily"
	GoalWeekly GoalType = "weekly"
)

// ParseGoalType validates a goal type string.
func ParseGoalType(s string) (GoalType, bool) {
	switch GoalType(s) {
	case GoalDaily, GoalWeekly:
		return GoalType(s), true
	}
	return "", false
}

// Goal is a target duration per category per period. At most one goal exists
// per (CategoryID, Type) pair.
type Goal struct {
	CategoryID    string   `json:"categoryId"`
	Type          GoalType `json:"type"`
	TargetSeconds int64    `json:"targetSeconds"`
}

// ActiveSession is the in-memory state of a running timer. It is never
// persisted; stopping the timer finalizes it into a single TimeLog.
// Elapsed time is AccumulatedSeconds plus the time since LastResumeTime.
type ActiveSession struct {
	CategoryID         string
	SubCategoryID      string
	StartTime          int64 // ms since epoch, original start
	AccumulatedSeconds int64 // banked from prior pause/resume cycles
	LastResumeTime     int64 // ms since epoch; 0 while paused
}

// UnknownLabel is the display fallback for unresolvable category references.
const UnknownLabel = "Unknown"

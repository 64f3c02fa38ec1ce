package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/storage"
	"github.com/focusflow/focusflow/internal/timecalc"
)

var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrEmptyName       = errors.New("name must not be empty")
	ErrEmptySession    = errors.New("session too short to record")
)

// Notifier surfaces a user-visible alert. Implementations are best-effort;
// failures must not propagate into the mutation path.
type Notifier interface {
	Notify(title, body string)
}

// Tracker owns the three collections and writes each one through to the
// store after every successful mutation. It is the single source of truth;
// the store only mirrors it.
type Tracker struct {
	Categories []model.Category
	Logs       []model.TimeLog
	Goals      []model.Goal

	store    *storage.Store
	notifier Notifier
	now      func() time.Time
}

type Option func(*Tracker)

// WithNotifier sets the gateway used for goal-crossing alerts.
func WithNotifier(n Notifier) Option {
	return func(t *Tracker) { t.notifier = n }
}

// WithClock replaces the wall clock, letting tests drive synthetic time.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New loads all three collections from the store. Missing or corrupt slots
// fall back to their defaults inside the store; only I/O failures surface.
func New(store *storage.Store, opts ...Option) (*Tracker, error) {
	t := &Tracker{store: store, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}

	var err error
	if t.Categories, err = store.LoadCategories(); err != nil {
		return nil, err
	}
	if t.Logs, err = store.LoadLogs(); err != nil {
		return nil, err
	}
	if t.Goals, err = store.LoadGoals(); err != nil {
		return nil, err
	}
	return t, nil
}

// Now returns the current instant on the tracker's clock.
func (t *Tracker) Now() time.Time { return t.now() }

// Today returns the current logical day as YYYY-MM-DD.
func (t *Tracker) Today() string { return timecalc.DateString(t.now()) }

// FindCategory resolves a category ID against the registry.
func (t *Tracker) FindCategory(id string) (model.Category, bool) {
	for _, c := range t.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// DisplayName resolves a category ID to its name, falling back to the fixed
// unknown label for deleted or never-known categories.
func (t *Tracker) DisplayName(id string) string {
	if c, ok := t.FindCategory(id); ok {
		return c.Name
	}
	return model.UnknownLabel
}

// CreateCategory adds a category with a fresh unique ID and an empty
// sub-category list.
func (t *Tracker) CreateCategory(name string, color model.Color, icon model.Icon) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, ErrEmptyName
	}
	c := model.Category{
		ID:            uuid.NewString(),
		Name:          name,
		Color:         color,
		Icon:          icon,
		SubCategories: []model.SubCategory{},
	}
	t.Categories = append(t.Categories, c)
	return c, t.persistCategories()
}

// CategoryUpdate holds the fields a category update may change. Nil fields
// are left untouched; the ID is immutable.
type CategoryUpdate struct {
	Name  *string
	Color *model.Color
	Icon  *model.Icon
}

// UpdateCategory merges the given fields into the category. An unknown ID is
// a silent no-op.
func (t *Tracker) UpdateCategory(id string, upd CategoryUpdate) error {
	for i := range t.Categories {
		if t.Categories[i].ID != id {
			continue
		}
		if upd.Name != nil {
			name := strings.TrimSpace(*upd.Name)
			if name == "" {
				return ErrEmptyName
			}
			t.Categories[i].Name = name
		}
		if upd.Color != nil {
			t.Categories[i].Color = *upd.Color
		}
		if upd.Icon != nil {
			t.Categories[i].Icon = *upd.Icon
		}
		return t.persistCategories()
	}
	return nil
}

// DeleteCategory removes the category from the registry only. Historical
// logs keep referencing the ID and resolve to the unknown label from then
// on. An unknown ID is a silent no-op.
func (t *Tracker) DeleteCategory(id string) error {
	kept := t.Categories[:0]
	removed := false
	for _, c := range t.Categories {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return nil
	}
	t.Categories = kept
	return t.persistCategories()
}

// AddSubCategory appends a sub-category with a fresh ID to the given
// category. Case-sensitive duplicate names are allowed here; callers that
// want case-insensitive reuse go through FindOrAddSubCategory. An unknown
// category ID is a silent no-op returning a zero SubCategory.
func (t *Tracker) AddSubCategory(categoryID, name string) (model.SubCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.SubCategory{}, ErrEmptyName
	}
	for i := range t.Categories {
		if t.Categories[i].ID != categoryID {
			continue
		}
		sub := model.SubCategory{ID: uuid.NewString(), Name: name}
		t.Categories[i].SubCategories = append(t.Categories[i].SubCategories, sub)
		return sub, t.persistCategories()
	}
	return model.SubCategory{}, nil
}

// FindOrAddSubCategory reuses an existing sub-category matching the name
// case-insensitively, creating one otherwise. This is the entry-boundary
// dedup the registry itself deliberately does not perform.
func (t *Tracker) FindOrAddSubCategory(categoryID, name string) (model.SubCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.SubCategory{}, ErrEmptyName
	}
	if c, ok := t.FindCategory(categoryID); ok {
		for _, s := range c.SubCategories {
			if strings.EqualFold(s.Name, name) {
				return s, nil
			}
		}
	}
	return t.AddSubCategory(categoryID, name)
}

// SetGoal replaces the (category, type) goal with targetSeconds = minutes*60.
// Minutes <= 0 removes the pair entirely. The replace is atomic from the
// caller's perspective.
func (t *Tracker) SetGoal(categoryID string, typ model.GoalType, minutes int64) error {
	next := make([]model.Goal, 0, len(t.Goals)+1)
	for _, g := range t.Goals {
		if g.CategoryID == categoryID && g.Type == typ {
			continue
		}
		next = append(next, g)
	}
	if minutes > 0 {
		next = append(next, model.Goal{CategoryID: categoryID, Type: typ, TargetSeconds: minutes * 60})
	}
	t.Goals = next
	return t.persistGoals()
}

// Goal returns the goal for the (category, type) pair, if set.
func (t *Tracker) Goal(categoryID string, typ model.GoalType) (model.Goal, bool) {
	for _, g := range t.Goals {
		if g.CategoryID == categoryID && g.Type == typ {
			return g, true
		}
	}
	return model.Goal{}, false
}

// AppendLog records a completed entry of durationMinutes against the
// category on the given logical day. See appendSeconds for the protocol.
func (t *Tracker) AppendLog(categoryID string, durationMinutes int64, date, subCategoryID string) (model.TimeLog, error) {
	if durationMinutes <= 0 {
		return model.TimeLog{}, ErrInvalidDuration
	}
	return t.appendSeconds(categoryID, durationMinutes*60, date, subCategoryID, true)
}

// appendSeconds is the append protocol: the crossing check runs against the
// pre-append state, startTime is now for today's entries and local noon for
// backdated ones, and the new log is appended without touching prior
// entries. notify=false suppresses the crossing alert when the caller (the
// live timer) has already surfaced it.
func (t *Tracker) appendSeconds(categoryID string, durationSeconds int64, date, subCategoryID string, notify bool) (model.TimeLog, error) {
	if durationSeconds <= 0 {
		return model.TimeLog{}, ErrInvalidDuration
	}
	now := t.now()
	day, err := timecalc.ParseDate(date, now.Location())
	if err != nil {
		return model.TimeLog{}, err
	}

	crossing := EvaluateCrossing(t.Goals, t.Logs, categoryID, durationSeconds, date, t.Today())
	if notify && crossing.Crossed100 && t.notifier != nil {
		t.notifier.Notify("Goal reached! 🎉", t.goalReachedBody(categoryID))
	}

	startTime := now.UnixMilli()
	if date != t.Today() {
		startTime = timecalc.Noon(day).UnixMilli()
	}

	log := model.TimeLog{
		ID:              uuid.NewString(),
		CategoryID:      categoryID,
		SubCategoryID:   subCategoryID,
		StartTime:       startTime,
		EndTime:         startTime + durationSeconds*1000,
		DurationSeconds: durationSeconds,
		Date:            date,
	}
	t.Logs = append(t.Logs, log)
	return log, t.persistLogs()
}

func (t *Tracker) goalReachedBody(categoryID string) string {
	if c, ok := t.FindCategory(categoryID); ok {
		return fmt.Sprintf("Congratulations! You reached your daily goal for %s.", c.Name)
	}
	return "Congratulations! You reached your daily goal."
}

// Query returns a filtered copy of the log store in append order.
func (t *Tracker) Query(pred func(model.TimeLog) bool) []model.TimeLog {
	var out []model.TimeLog
	for _, l := range t.Logs {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}

// DayTotal sums logged seconds for the category on the given logical day.
func (t *Tracker) DayTotal(categoryID, date string) int64 {
	var total int64
	for _, l := range t.Logs {
		if l.Date == date && l.CategoryID == categoryID {
			total += l.DurationSeconds
		}
	}
	return total
}

func (t *Tracker) persistCategories() error { return t.store.SaveCategories(t.Categories) }
func (t *Tracker) persistLogs() error       { return t.store.SaveLogs(t.Logs) }
func (t *Tracker) persistGoals() error      { return t.store.SaveGoals(t.Goals) }

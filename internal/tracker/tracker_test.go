package tracker_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/storage"
	"github.com/focusflow/focusflow/internal/timecalc"
	"github.com/focusflow/focusflow/internal/tracker"
)

type recordingNotifier struct {
	titles []string
	bodies []string
}

func (n *recordingNotifier) Notify(title, body string) {
	n.titles = append(n.titles, title)
	n.bodies = append(n.bodies, body)
}

// newTestTracker builds a tracker on a fresh temp store with a fixed clock.
func newTestTracker(t *testing.T, now time.Time) (*tracker.Tracker, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	tr, err := tracker.New(storage.NewStore(t.TempDir()),
		tracker.WithNotifier(n),
		tracker.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("tracker.New: %v", err)
	}
	return tr, n
}

var testNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func TestAppendGrowsByOneAndPreservesPriorEntries(t *testing.T) {
	tr, _ := newTestTracker(t, testNow)
	today := tr.Today()

	first, err := tr.AppendLog("work", 30, today, "")
	if err != nil {
		t.Fatalf("AppendLog: %v", err)
	}
	if len(tr.Logs) != 1 {
		t.Fatalf("store size = %d, want 1", len(tr.Logs))
	}

	if _, err := tr.AppendLog("study", 10, today, ""); err != nil {
		t.Fatalf("AppendLog: %v", err)
	}
	if len(tr.Logs) != 2 {
		t.Fatalf("store size = %d, want 2", len(tr.Logs))
	}
	if tr.Logs[0] != first {
		t.Error("prior entry mutated by a later append")
	}
}

func TestAppendDurationLaw(t *testing.T) {
	tr, _ := newTestTracker(t, testNow)

	log, err := tr.AppendLog("work", 25, tr.Today(), "")
	if err != nil {
		t.Fatalf("AppendLog: %v", err)
	}
	if log.DurationSeconds != 25*60 {
		t.Errorf("DurationSeconds = %d, want %d", log.DurationSeconds, 25*60)
	}
	if log.EndTime-log.StartTime != log.DurationSeconds*1000 {
		t.Errorf("endTime-startTime = %d, want %d", log.EndTime-log.StartTime, log.DurationSeconds*1000)
	}
	if log.StartTime != testNow.UnixMilli() {
		t.Errorf("today's entry startTime = %d, want now (%d)", log.StartTime, testNow.UnixMilli())
	}
}

func TestBackdatedAppendAnchorsAtNoon(t *testing.T) {
	// Late evening wall clock must not leak into the backdated entry.
	evening := time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC)
	tr, _ := newTestTracker(t, evening)

	log, err := tr.AppendLog("work", 60, "2026-03-01", "")
	if err != nil {
		t.Fatalf("AppendLog: %v", err)
	}
	wantStart := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
	if log.StartTime != wantStart {
		t.Errorf("backdated startTime = %d, want noon (%d)", log.StartTime, wantStart)
	}
	if log.Date != "2026-03-01" {
		t.Errorf("Date = %q, want the backdated day", log.Date)
	}
}

func TestAppendRejectsInvalidInput(t *testing.T) {
	tr, _ := newTestTracker(t, testNow)

	if _, err := tr.AppendLog("work", 0, tr.Today(), ""); !errors.Is(err, tracker.ErrInvalidDuration) {
		t.Errorf("zero minutes: err = %v, want ErrInvalidDuration", err)
	}
	if _, err := tr.AppendLog("work", -5, tr.Today(), ""); !errors.Is(err, tracker.ErrInvalidDuration) {
		t.Errorf("negative minutes: err = %v, want ErrInvalidDuration", err)
	}
	if _, err := tr.AppendLog("work", 10, "03/10/2026", ""); err == nil {
		t.Error("malformed date accepted")
	}
	if len(tr.Logs) != 0 {
		t.Errorf("rejected input created %d entries", len(tr.Logs))
	}
}

func TestGoalCrossingScenario(t *testing.T) {
	// Daily goal 60m on work; 50m then 15m. Only the second append crosses
	// and it must carry the category display name.
	tr, n := newTestTracker(t, testNow)
	today := tr.Today()

	if err := tr.SetGoal("work", model.GoalDaily, 60); err != nil {
		t.Fatal(err)
	}

	if _, err := tr.AppendLog("work", 50, today, ""); err != nil {
		t.Fatal(err)
	}
	if len(n.titles) != 0 {
		t.Fatalf("first append notified: %v", n.titles)
	}

	if _, err := tr.AppendLog("work", 15, today, ""); err != nil {
		t.Fatal(err)
	}
	if len(n.titles) != 1 {
		t.Fatalf("second append notifications = %d, want 1", len(n.titles))
	}
	if !strings.Contains(n.bodies[0], "Work") {
		t.Errorf("notification body %q does not name the category", n.bodies[0])
	}

	// Already past the target: a third append must not re-fire.
	if _, err := tr.AppendLog("work", 5, today, ""); err != nil {
		t.Fatal(err)
	}
	if len(n.titles) != 1 {
		t.Errorf("crossing re-fired after target was met")
	}
}

func TestCrossingExactBoundary(t *testing.T) {
	tr, _ := newTestTracker(t, testNow)
	today := tr.Today()

	if err := tr.SetGoal("work", model.GoalDaily, 60); err != nil {
		t.Fatal(err)
	}
	// previousTotal = target - 1 second is not reachable through whole
	// minutes, so drive the evaluator directly.
	logs := []model.TimeLog{{CategoryID: "work", Date: today, DurationSeconds: 3599}}
	c := tracker.EvaluateCrossing(tr.Goals, logs, "work", 1, today, today)
	if !c.Crossed100 {
		t.Error("reaching the target exactly did not cross")
	}

	logs = append(logs, model.TimeLog{CategoryID: "work", Date: today, DurationSeconds: 1})
	c = tracker.EvaluateCrossing(tr.Goals, logs, "work", 1, today, today)
	if c.Crossed100 {
		t.Error("crossing fired again with previousTotal at target")
	}
}

func TestBackdatedAppendNeverNotifies(t *testing.T) {
	tr, n := newTestTracker(t, testNow)

	if err := tr.SetGoal("work", model.GoalDaily, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AppendLog("work", 120, "2026-03-01", ""); err != nil {
		t.Fatal(err)
	}
	if len(n.titles) != 0 {
		t.Errorf("backdated entry triggered a notification: %v", n.titles)
	}
}

func TestCrossingNotificationOmitsUnknownCategoryName(t *testing.T) {
	tr, n := newTestTracker(t, testNow)
	today := tr.Today()

	if err := tr.SetGoal("ghost", model.GoalDaily, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AppendLog("ghost", 10, today, ""); err != nil {
		t.Fatal(err)
	}
	if len(n.bodies) != 1 {
		t.Fatalf("notifications = %d, want 1", len(n.bodies))
	}
	if strings.Contains(n.bodies[0], model.UnknownLabel) || strings.Contains(n.bodies[0], "ghost") {
		t.Errorf("notification body %q should omit the unresolved name", n.bodies[0])
	}
}

func TestEvaluateCrossing80(t *testing.T) {
	goals := []model.Goal{{CategoryID: "work", Type: model.GoalDaily, TargetSeconds: 3600}}
	today := "2026-03-10"

	// 0 -> 3000s crosses 80% (2880) but not 100%.
	c := tracker.EvaluateCrossing(goals, nil, "work", 3000, today, today)
	if !c.Crossed80 || c.Crossed100 {
		t.Errorf("0->3000: Crossed80=%v Crossed100=%v, want true/false", c.Crossed80, c.Crossed100)
	}

	// 3000 -> 3900 crosses 100% only; 80% was already passed.
	logs := []model.TimeLog{{CategoryID: "work", Date: today, DurationSeconds: 3000}}
	c = tracker.EvaluateCrossing(goals, logs, "work", 900, today, today)
	if c.Crossed80 || !c.Crossed100 {
		t.Errorf("3000->3900: Crossed80=%v Crossed100=%v, want false/true", c.Crossed80, c.Crossed100)
	}
}

func TestWeeklyGoalNeverCrossesLive(t *testing.T) {
	tr, n := newTestTracker(t, testNow)
	today := tr.Today()

	if err := tr.SetGoal("work", model.GoalWeekly, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AppendLog("work", 60, today, ""); err != nil {
		t.Fatal(err)
	}
	if len(n.titles) != 0 {
		t.Errorf("weekly goal triggered a live notification")
	}
}

func TestSetGoalReplaceAndRemove(t *testing.T) {
	tr, _ := newTestTracker(t, testNow)

	if err := tr.SetGoal("study", model.GoalWeekly, 120); err != nil {
		t.Fatal(err)
	}
	g, ok := tr.Goal("study", model.GoalWeekly)
	if !ok || g.TargetSeconds != 120*60 {
		t.Fatalf("goal = %+v ok=%v, want 7200s", g, ok)
	}

	if err := tr.SetGoal("study", model.GoalWeekly, 90); err != nil {
		t.Fatal(err)
	}
	g, _ = tr.Goal("study", model.GoalWeekly)
	if g.TargetSeconds != 90*60 {
		t.Errorf("replaced target = %d, want %d", g.TargetSeconds, 90*60)
	}
	count := 0
	for _, g := range tr.Goals {
		if g.CategoryID == "study" && g.Type == model.GoalWeekly {
			count++
		}
	}
	if count != 1 {
		t.Errorf("found %d goals for the pair, want 1", count)
	}

	if err := tr.SetGoal("study", model.GoalWeekly, 0); err != nil {
		t.Fatal(err)
	}
	if _, ok := tr.Goal("study", model.GoalWeekly); ok {
		t.Error("goal still present after setting 0 minutes")
	}
}

func TestDeleteCategoryKeepsLogs(t *testing.T) {
	tr, _ := newTestTracker(t, testNow)
	today := tr.Today()

	for i := 0; i < 3; i++ {
		if _, err := tr.AppendLog("exercise", 10, today, ""); err != nil {
			t.Fatal(err)
		}
	}
	if err := tr.DeleteCategory("exercise"); err != nil {
		t.Fatal(err)
	}

	if _, ok := tr.FindCategory("exercise"); ok {
		t.Error("category still in registry after delete")
	}
	remaining := tr.Query(func(l model.TimeLog) bool { return l.CategoryID == "exercise" })
	if len(remaining) != 3 {
		t.Errorf("historical logs = %d, want 3", len(remaining))
	}
	if tr.DisplayName("exercise") != model.UnknownLabel {
		t.Errorf("DisplayName = %q, want %q", tr.DisplayName("exercise"), model.UnknownLabel)
	}
	if tr.DayTotal("exercise", today) != 3*10*60 {
		t.Errorf("DayTotal = %d, want %d", tr.DayTotal("exercise", today), 3*10*60)
	}
}

func TestUnknownIDMutationsAreSilentNoOps(t *testing.T) {
	tr, _ := newTestTracker(t, testNow)
	before := len(tr.Categories)

	name := "Renamed"
	if err := tr.UpdateCategory("no-such-id", tracker.CategoryUpdate{Name: &name}); err != nil {
		t.Errorf("UpdateCategory on unknown id: %v", err)
	}
	if err := tr.DeleteCategory("no-such-id"); err != nil {
		t.Errorf("DeleteCategory on unknown id: %v", err)
	}
	sub, err := tr.AddSubCategory("no-such-id", "Sprint")
	if err != nil {
		t.Errorf("AddSubCategory on unknown id: %v", err)
	}
	if sub.ID != "" {
		t.Errorf("AddSubCategory on unknown id returned %+v", sub)
	}
	if len(tr.Categories) != before {
		t.Error("registry changed by unknown-id mutations")
	}
}

func TestFindOrAddSubCategoryDedupesCaseInsensitively(t *testing.T) {
	tr, _ := newTestTracker(t, testNow)

	first, err := tr.FindOrAddSubCategory("work", "Deep Work")
	if err != nil {
		t.Fatal(err)
	}
	second, err := tr.FindOrAddSubCategory("work", "deep work")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Error("case-insensitive match created a duplicate sub-category")
	}

	// The registry itself allows case-sensitive duplicates.
	dup, err := tr.AddSubCategory("work", "deep work")
	if err != nil {
		t.Fatal(err)
	}
	if dup.ID == first.ID {
		t.Error("AddSubCategory deduplicated; that is the caller's job")
	}
}

func TestAppendPersistsThrough(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewStore(dir)
	tr, err := tracker.New(store, tracker.WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AppendLog("work", 30, tr.Today(), ""); err != nil {
		t.Fatal(err)
	}

	// A second tracker over the same directory sees the entry.
	reloaded, err := tracker.New(storage.NewStore(dir))
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded.Logs) != 1 {
		t.Errorf("reloaded logs = %d, want 1", len(reloaded.Logs))
	}
	if reloaded.Logs[0].Date != timecalc.DateString(testNow) {
		t.Errorf("reloaded Date = %q", reloaded.Logs[0].Date)
	}
}

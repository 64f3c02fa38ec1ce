package tracker

import (
	"time"

	"github.com/focusflow/focusflow/internal/model"
)

// Milestone names match the live-timer thresholds.
const (
	Milestone80  = "80"
	Milestone100 = "100"
)

// Session is a running timer. It lives only in memory and is finalized into
// a single TimeLog on stop. The fired set guarantees at most one event per
// threshold per session no matter how often the tick polls.
type Session struct {
	model.ActiveSession
	fired map[string]bool
}

// NewSession starts a session for the category at now.
func NewSession(categoryID, subCategoryID string, now time.Time) *Session {
	ms := now.UnixMilli()
	return &Session{
		ActiveSession: model.ActiveSession{
			CategoryID:     categoryID,
			SubCategoryID:  subCategoryID,
			StartTime:      ms,
			LastResumeTime: ms,
		},
		fired: map[string]bool{},
	}
}

// Running reports whether the session is currently accumulating time.
func (s *Session) Running() bool { return s.LastResumeTime != 0 }

// Pause banks the time since the last resume. Pausing a paused session is a
// no-op.
func (s *Session) Pause(now time.Time) {
	if !s.Running() {
		return
	}
	s.AccumulatedSeconds += (now.UnixMilli() - s.LastResumeTime) / 1000
	s.LastResumeTime = 0
}

// Resume restarts accumulation. Resuming a running session is a no-op.
func (s *Session) Resume(now time.Time) {
	if s.Running() {
		return
	}
	s.LastResumeTime = now.UnixMilli()
}

// Elapsed is the banked time plus, while running, the time since the last
// resume.
func (s *Session) Elapsed(now time.Time) int64 {
	if !s.Running() {
		return s.AccumulatedSeconds
	}
	return s.AccumulatedSeconds + (now.UnixMilli()-s.LastResumeTime)/1000
}

// Milestones reports goal thresholds newly reached at now, each at most once
// per session. initialDaySeconds is the time already logged for the category
// today before this session started.
func (s *Session) Milestones(initialDaySeconds, targetSeconds int64, now time.Time) []string {
	if targetSeconds <= 0 {
		return nil
	}
	progress := float64(initialDaySeconds+s.Elapsed(now)) / float64(targetSeconds)

	var reached []string
	if progress >= 1.0 && !s.fired[Milestone100] {
		s.fired[Milestone100] = true
		reached = append(reached, Milestone100)
	} else if progress >= 0.8 && progress < 1.0 && !s.fired[Milestone80] {
		s.fired[Milestone80] = true
		reached = append(reached, Milestone80)
	}
	return reached
}

// Fired reports whether the given milestone already triggered this session.
func (s *Session) Fired(milestone string) bool { return s.fired[milestone] }

// FinalizeSession stops the session and performs exactly one append with the
// final accumulated duration, dated today. The append-path crossing alert is
// suppressed when the session already fired it live. A session that banked
// no whole second is not recorded.
func (t *Tracker) FinalizeSession(s *Session) (model.TimeLog, error) {
	s.Pause(t.now())
	if s.AccumulatedSeconds <= 0 {
		return model.TimeLog{}, ErrEmptySession
	}
	notify := !s.Fired(Milestone100)
	return t.appendSeconds(s.CategoryID, s.AccumulatedSeconds, t.Today(), s.SubCategoryID, notify)
}

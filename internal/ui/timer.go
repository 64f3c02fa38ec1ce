// Package ui holds the interactive live-timer view. The one-second tick
// only reads session and goal state; the single log append happens once, on
// stop, and no tick is processed afterwards.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/timecalc"
	"github.com/focusflow/focusflow/internal/tracker"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 4)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	clockStyle = lipgloss.NewStyle().
			Bold(true)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	goalMetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// TimerModel drives one live session from start to finalization.
type TimerModel struct {
	Tracker  *tracker.Tracker
	Session  *tracker.Session
	Category model.Category
	SubName  string
	Notifier tracker.Notifier

	Goal              model.Goal
	HasGoal           bool
	InitialDaySeconds int64

	// Set on quit for the command layer to report.
	Final model.TimeLog
	Err   error

	width   int
	stopped bool
}

func NewTimerModel(tr *tracker.Tracker, cat model.Category, subName string, session *tracker.Session, n tracker.Notifier) TimerModel {
	goal, hasGoal := tr.Goal(cat.ID, model.GoalDaily)
	return TimerModel{
		Tracker:           tr,
		Session:           session,
		Category:          cat,
		SubName:           subName,
		Notifier:          n,
		Goal:              goal,
		HasGoal:           hasGoal,
		InitialDaySeconds: tr.DayTotal(cat.ID, tr.Today()),
	}
}

func (m TimerModel) Init() tea.Cmd {
	return tickCmd()
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "s", "ctrl+c":
			m.stopped = true
			m.Final, m.Err = m.Tracker.FinalizeSession(m.Session)
			return m, tea.Quit
		case "p":
			now := m.Tracker.Now()
			if m.Session.Running() {
				m.Session.Pause(now)
			} else {
				m.Session.Resume(now)
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		if m.stopped {
			return m, nil
		}
		if m.HasGoal && m.Notifier != nil {
			for _, milestone := range m.Session.Milestones(m.InitialDaySeconds, m.Goal.TargetSeconds, m.Tracker.Now()) {
				m.notifyMilestone(milestone)
			}
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m TimerModel) notifyMilestone(milestone string) {
	switch milestone {
	case tracker.Milestone100:
		m.Notifier.Notify("Goal reached! 🎉",
			fmt.Sprintf("Congratulations! You reached your daily goal for %s.", m.Category.Name))
	case tracker.Milestone80:
		m.Notifier.Notify("Almost there!",
			fmt.Sprintf("You're at 80%% of your daily goal for %s.", m.Category.Name))
	}
}

func (m TimerModel) View() string {
	if m.stopped {
		return ""
	}

	now := m.Tracker.Now()
	elapsed := m.Session.Elapsed(now)

	catStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.Category.Color.Hex())).
		Bold(true)

	title := catStyle.Render(m.Category.Name)
	if m.SubName != "" {
		title += labelStyle.Render(" · " + m.SubName)
	}

	status := runningStyle.Render("● recording")
	if !m.Session.Running() {
		status = pausedStyle.Render("◌ paused")
	}

	lines := []string{
		labelStyle.Render("CURRENT FOCUS"),
		title,
		"",
		clockStyle.Render(timecalc.FormatDurationHHMMSS(elapsed)),
		status,
	}

	if m.HasGoal {
		lines = append(lines, "", m.goalProgress(elapsed))
	}

	lines = append(lines, "", helpStyle.Render("p pause/resume · s/q stop"))

	box := boxStyle.Render(strings.Join(lines, "\n"))
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
	}
	return box
}

func (m TimerModel) goalProgress(elapsed int64) string {
	total := m.InitialDaySeconds + elapsed
	pct := int(total * 100 / m.Goal.TargetSeconds)
	if pct > 100 {
		pct = 100
	}

	bar := progressBar(pct, 24)
	if total >= m.Goal.TargetSeconds {
		return fmt.Sprintf("%s %s", bar, goalMetStyle.Render("Goal met!"))
	}
	remaining := (m.Goal.TargetSeconds - total + 59) / 60
	return fmt.Sprintf("%s %s", bar, labelStyle.Render(fmt.Sprintf("%d%% · %dm remaining", pct, remaining)))
}

func progressBar(percentage, width int) string {
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Render(bar)
}

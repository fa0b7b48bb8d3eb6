package model

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"transitionbutton/button"
	"transitionbutton/config"
)

func defaultRand(n int) int {
	return rand.Intn(n)
}

// randomStyles are the outcomes "random" chooses from
var randomStyles = []button.StopStyle{button.Normal, button.Expand, button.Shake}

// RunTask starts the simulated background task and returns the command
// reporting its end after the configured duration.
func (m *Model) RunTask() tea.Cmd {
	m.TaskSeq++
	m.Running = true
	seq := m.TaskSeq
	d := m.Config.Task.Duration

	m.Record("task %d started (%s)", seq, d)
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TaskDoneMsg{Seq: seq}
	})
}

// FinishTask marks the task done and picks the style to stop with. ok is
// false for a stale report.
func (m *Model) FinishTask(msg TaskDoneMsg) (style button.StopStyle, ok bool) {
	if msg.Seq != m.TaskSeq || !m.Running {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Model] stale task report %d (current %d)", msg.Seq, m.TaskSeq)
		}
		return button.Normal, false
	}
	m.Running = false

	style = m.PickStyle()
	m.Record("task %d done, stopping with %s", msg.Seq, style)
	return style, true
}

// PickStyle resolves the configured outcome into a stop style
func (m *Model) PickStyle() button.StopStyle {
	if m.Outcome == "random" {
		return randomStyles[m.Rand(len(randomStyles))]
	}
	style, err := button.ParseStopStyle(m.Outcome)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Model] %v, falling back to normal", err)
		}
		return button.Normal
	}
	return style
}

// CompleteTask records the button's completion for a task. ok is false when
// the completion belongs to an older task.
func (m *Model) CompleteTask(msg TaskCompleteMsg) (ok bool) {
	if msg.Seq != m.TaskSeq {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Model] stale completion %d (current %d)", msg.Seq, m.TaskSeq)
		}
		return false
	}
	m.Record("completion (%s)", msg.Style)
	return true
}

// Completion builds the command the button runs once it has resolved
func (m *Model) Completion(style button.StopStyle) tea.Cmd {
	seq := m.TaskSeq
	return func() tea.Msg {
		return TaskCompleteMsg{Seq: seq, Style: style}
	}
}

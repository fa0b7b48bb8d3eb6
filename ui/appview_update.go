package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"transitionbutton/button"
	"transitionbutton/config"
	appmodel "transitionbutton/model"
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.relayout()
		if a.screen == screenHelp {
			return a, a.renderHelp()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case appmodel.TaskDoneMsg:
		style, ok := a.dataModel.FinishTask(msg)
		if !ok {
			return a, nil
		}
		cmd := a.button.Stop(style, a.dataModel.Config.Task.RevertDelay, a.dataModel.Completion(style))
		a.refreshLog()
		return a, cmd

	case appmodel.TaskCompleteMsg:
		if !a.dataModel.CompleteTask(msg) {
			return a, nil
		}
		if msg.Style == button.Expand {
			a.screen = screenTransitioned
		}
		a.refreshLog()
		return a, nil

	case appmodel.HelpRenderedMsg:
		a.helpRendered = msg.Rendered
		return a, nil
	}

	// Frames and revert timers belong to the button
	cmd := a.button.Update(msg)
	a.refreshLog()
	return a, cmd
}

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	switch a.screen {
	case screenHelp:
		if key.Matches(msg, a.keys.Help, a.keys.Back) {
			a.screen = screenButton
		}
		return a, nil

	case screenTransitioned:
		if key.Matches(msg, a.keys.Back) {
			a.screen = screenButton
			a.dataModel.Record("left transitioned view")
			a.refreshLog()
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Tap):
		return a.tap()

	case key.Matches(msg, a.keys.Normal):
		a.setOutcome("normal")
	case key.Matches(msg, a.keys.Expand):
		a.setOutcome("expand")
	case key.Matches(msg, a.keys.Shake):
		a.setOutcome("shake")
	case key.Matches(msg, a.keys.Random):
		a.setOutcome("random")

	case key.Matches(msg, a.keys.Toggle):
		enabled := !a.button.Enabled()
		a.button.SetEnabled(enabled)
		if enabled {
			a.dataModel.Record("button enabled")
		} else {
			a.dataModel.Record("button disabled")
		}
		a.refreshLog()

	case key.Matches(msg, a.keys.Yank):
		a.yankLog()

	case key.Matches(msg, a.keys.Help):
		a.screen = screenHelp
		return a, a.renderHelp()

	default:
		var cmd tea.Cmd
		a.eventLog, cmd = a.eventLog.Update(msg)
		return a, cmd
	}

	return a, nil
}

// tap starts the button and the simulated task behind it
func (a AppView) tap() (tea.Model, tea.Cmd) {
	if !a.button.Enabled() {
		a.status = "button is disabled"
		return a, nil
	}
	if a.button.State() != button.Idle || !a.button.Interactive() {
		a.status = fmt.Sprintf("button is busy (%s)", a.button.State())
		return a, nil
	}

	a.status = ""
	start := a.button.Start()
	task := a.dataModel.RunTask()
	a.refreshLog()
	return a, tea.Batch(start, task)
}

func (a *AppView) setOutcome(outcome string) {
	if a.dataModel.Outcome == outcome {
		return
	}
	a.dataModel.Outcome = outcome
	a.dataModel.Record("outcome set to %s", outcome)
	a.refreshLog()
}

func (a *AppView) yankLog() {
	if len(a.dataModel.Events) == 0 {
		a.status = "event log is empty"
		return
	}
	if err := clipboard.WriteAll(a.dataModel.LogText()); err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[AppView] clipboard write failed: %v", err)
		}
		a.status = "copy failed: " + err.Error()
		return
	}
	a.status = fmt.Sprintf("copied %d events", len(a.dataModel.Events))
}

// refreshLog pushes new events into the log viewport
func (a *AppView) refreshLog() {
	if a.dataModel.Recorded == a.logSeen {
		return
	}
	a.logSeen = a.dataModel.Recorded

	lines := make([]string, 0, len(a.dataModel.Events))
	for _, e := range a.dataModel.Events {
		lines = append(lines, e.String())
	}
	a.eventLog.SetContent(strings.Join(lines, "\n"))
	a.eventLog.GotoBottom()
}

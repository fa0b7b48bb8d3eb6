package model

import (
	"fmt"
	"strings"
	"time"

	"transitionbutton/button"
	"transitionbutton/config"
)

// maxEvents bounds the event log kept for the demo
const maxEvents = 200

// Event is one line of the transition log
type Event struct {
	At   time.Time
	Text string
}

func (e Event) String() string {
	return e.At.Format("15:04:05.000") + "  " + e.Text
}

// Model holds the demo's application data, independent of rendering
type Model struct {
	Config *config.Config

	// Outcome applied when the simulated task reports
	Outcome string

	// Events recorded from the button's transition hook and completions
	Events []Event
	// Recorded counts every event ever recorded, including dropped ones
	Recorded int

	// TaskSeq identifies the task in flight; older reports are stale
	TaskSeq int
	Running bool

	Clock func() time.Time
	Rand  func(n int) int

	Version string
	License string
}

// NewModel creates a new Model with the given configuration
func NewModel(cfg *config.Config, version, license string) *Model {
	return &Model{
		Config:  cfg,
		Outcome: cfg.Task.Outcome,
		Clock:   time.Now,
		Rand:    defaultRand,
		Version: version,
		License: license,
	}
}

// Record appends an event, dropping the oldest once the log is full
func (m *Model) Record(format string, args ...any) {
	e := Event{At: m.Clock(), Text: fmt.Sprintf(format, args...)}
	m.Events = append(m.Events, e)
	m.Recorded++
	if len(m.Events) > maxEvents {
		m.Events = m.Events[len(m.Events)-maxEvents:]
	}
	if config.DebugLog != nil {
		config.DebugLog.Printf("[Model] %s", e.Text)
	}
}

// RecordTransition is suitable for button.WithTransitionHook
func (m *Model) RecordTransition(t button.Transition) {
	if t.To == button.Resolving {
		m.Record("%s → %s (%s)", t.From, t.To, t.Style)
		return
	}
	m.Record("%s → %s", t.From, t.To)
}

// LogText renders the whole event log, oldest first
func (m *Model) LogText() string {
	var b strings.Builder
	for _, e := range m.Events {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

package button

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"transitionbutton/anim"
)

// step is the follow-up fired when a tagged animation completes
type step int

const (
	stepNone step = iota
	stepRounded
	stepRestored
	stepShaken
	stepExpanded
)

// Start hides the content, rounds the corners and then shrinks the button
// into a circle with the spinner running. It is ignored unless the button
// is idle.
func (m *Model) Start() tea.Cmd {
	if m.state != Idle {
		m.logf("start ignored while %s", m.state)
		return nil
	}

	m.run = uuid.New()
	m.interactive = false
	m.cached = &Content{Title: m.title, Image: m.image}
	m.title, m.image = "", ""

	now := m.clock()
	m.layer.Add(keyCornerRadius,
		anim.NewBasic(m.radius, m.frame.H/2, m.profile.CornerDuration, m.profile.CornerCurve, now),
		anim.FillRemoved, int(stepRounded))
	m.radius = m.frame.H / 2
	m.transition(Shrinking)

	return m.tick()
}

// Stop resolves a running sequence with the given style. delay is clamped
// to the profile's minimum revert delay. completion runs exactly once: after
// the revert for Normal, after the shake for Shake and at the end of the
// expansion (before the silent revert) for Expand.
//
// A stop issued while the button is still shrinking is queued and applied
// as soon as the spinner shows; only the first one is kept. Any other
// request outside Spinning is dropped and its completion never runs.
func (m *Model) Stop(style StopStyle, delay time.Duration, completion tea.Cmd) tea.Cmd {
	switch m.state {
	case Shrinking:
		if m.queued != nil {
			m.logf("stop (%s) ignored, %s already queued", style, m.queued.style)
			return nil
		}
		m.queued = &stopRequest{style: style, delay: delay, completion: completion}
		m.logf("stop (%s) queued until spinning", style)
		return nil
	case Spinning:
		return m.resolve(style, delay, completion)
	}
	m.logf("stop (%s) ignored while %s", style, m.state)
	return nil
}

// Update consumes the button's own frame and revert messages; anything
// else is ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != m.id {
			return nil
		}
		m.ticking = false
		return m.advance()

	case revertMsg:
		if msg.id != m.id || msg.run != m.run || m.state != Resolving {
			return nil
		}
		return m.revert()
	}
	return nil
}

// tick schedules the next frame while anything animates. Only one frame
// is ever in flight per button.
func (m *Model) tick() tea.Cmd {
	if m.ticking || !m.Animating() {
		return nil
	}
	m.ticking = true
	id := m.id
	return tea.Tick(m.profile.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg{id: id, time: t}
	})
}

func (m *Model) advance() tea.Cmd {
	now := m.clock()
	var cmds []tea.Cmd
	for _, f := range m.layer.Advance(now) {
		cmds = append(cmds, m.dispatch(step(f.Tag), now))
	}
	cmds = append(cmds, m.tick())
	return tea.Batch(cmds...)
}

func (m *Model) dispatch(s step, now time.Time) tea.Cmd {
	switch s {
	case stepRounded:
		return m.shrink(now)
	case stepRestored, stepShaken:
		return m.finish()
	case stepExpanded:
		return m.expanded()
	}
	return nil
}

func (m *Model) shrink(now time.Time) tea.Cmd {
	if m.state != Shrinking {
		return nil
	}

	m.layer.Add(keyWidth,
		anim.NewBasic(m.frame.W, m.frame.H, m.profile.ShrinkDuration, m.profile.ShrinkCurve, now),
		anim.FillForwards, int(stepNone))
	m.spinner.Start()
	m.transition(Spinning)

	if q := m.queued; q != nil {
		m.queued = nil
		return m.resolve(q.style, q.delay, q.completion)
	}
	return nil
}

func (m *Model) resolve(style StopStyle, delay time.Duration, completion tea.Cmd) tea.Cmd {
	m.style = style
	m.revertDelay = m.profile.RevertDelay(delay)
	m.completion = completion
	m.transition(Resolving)

	if style != Expand {
		return m.scheduleRevert()
	}

	// the spinner must be gone before the expansion starts
	m.spinner.Stop()
	m.expandScale = m.profile.ExpandScale(m.viewport.Size().H, m.frame.H)
	m.layer.Add(keyScale,
		anim.NewBasic(1, m.expandScale, m.profile.ExpandDuration, m.profile.ExpandCurve, m.clock()),
		anim.FillForwards, int(stepExpanded))
	return m.tick()
}

func (m *Model) scheduleRevert() tea.Cmd {
	id, run := m.id, m.run
	return tea.Tick(m.revertDelay, func(time.Time) tea.Msg {
		return revertMsg{id: id, run: run}
	})
}

// expanded hands control to the caller while the button still covers the
// screen, then schedules the silent revert.
func (m *Model) expanded() tea.Cmd {
	if m.state != Resolving || m.style != Expand {
		return nil
	}
	return tea.Batch(m.takeCompletion(), m.scheduleRevert())
}

func (m *Model) revert() tea.Cmd {
	now := m.clock()

	switch m.style {
	case Normal:
		m.restore(now, stepRestored)
	case Shake:
		m.restore(now, stepNone)
		m.layer.Add(keyPosition,
			anim.NewKeyframes(m.profile.ShakeOffsets(), m.profile.ShakeDuration, m.profile.ShakeCurve, now),
			anim.FillForwards, int(stepShaken))
	case Expand:
		m.restore(now, stepNone)
		m.layer.RemoveAll()
		m.transition(Idle)
		return nil
	}
	return m.tick()
}

// restore brings back the original size, content and interaction. done is
// fired when the width animation completes.
func (m *Model) restore(now time.Time, done step) {
	m.layer.Add(keyWidth,
		anim.NewBasic(m.frame.H, m.frame.W, m.profile.RevertDuration, m.profile.RevertCurve, now),
		anim.FillForwards, int(done))
	m.spinner.Stop()
	if m.cached != nil {
		m.title, m.image = m.cached.Title, m.cached.Image
		m.cached = nil
	}
	m.interactive = true
	m.radius = m.cornerRadius
	m.transition(Reverting)
}

func (m *Model) finish() tea.Cmd {
	if m.state != Reverting {
		return nil
	}
	m.layer.RemoveAll()
	m.transition(Idle)
	return m.takeCompletion()
}

func (m *Model) takeCompletion() tea.Cmd {
	c := m.completion
	m.completion = nil
	return c
}

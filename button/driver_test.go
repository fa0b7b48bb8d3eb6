package button

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"transitionbutton/anim"
	"transitionbutton/geom"
)

// fastProfile keeps the real choreography but shrinks every duration so
// tests can run the Bubble Tea command loop for real.
func fastProfile() anim.TimingProfile {
	p := anim.DefaultTimingProfile()
	p.CornerDuration = time.Millisecond
	p.ShrinkDuration = time.Millisecond
	p.RevertDuration = time.Millisecond
	p.ExpandDuration = 2 * time.Millisecond
	p.SpinCycle = 4 * time.Millisecond
	p.ShakeDuration = 3 * time.Millisecond
	p.MinRevertDelay = time.Millisecond
	p.FrameInterval = time.Millisecond
	return p
}

var testFrame = geom.Rect{X: 10, Y: 8, W: 30, H: 6}

// driver executes the commands a button returns, one at a time, feeding the
// resulting messages back into Update the way a Bubble Tea program would.
type driver struct {
	t     *testing.T
	b     *Model
	queue []tea.Cmd
	seen  []tea.Msg
}

func newDriver(t *testing.T, b *Model) *driver {
	return &driver{t: t, b: b}
}

func (d *driver) push(cmd tea.Cmd) {
	if cmd != nil {
		d.queue = append(d.queue, cmd)
	}
}

func (d *driver) step() {
	cmd := d.queue[0]
	d.queue = d.queue[1:]

	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			d.push(c)
		}
	default:
		d.seen = append(d.seen, msg)
		d.push(d.b.Update(msg))
	}
}

// runUntil processes commands until cond holds
func (d *driver) runUntil(cond func() bool) {
	d.t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if len(d.queue) == 0 {
			d.t.Fatalf("no commands left and condition never held (state %s)", d.b.State())
		}
		if time.Now().After(deadline) {
			d.t.Fatalf("timed out waiting for condition (state %s)", d.b.State())
		}
		d.step()
	}
}

// settle processes commands until none are left
func (d *driver) settle() {
	d.t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for len(d.queue) > 0 {
		if time.Now().After(deadline) {
			d.t.Fatalf("button never settled (state %s)", d.b.State())
		}
		d.step()
	}
}

type completionMsg struct{}

// recorder collects transitions and completion calls in order
type recorder struct {
	events []string
	calls  int
}

func (r *recorder) hook(tr Transition) {
	r.events = append(r.events, tr.To.String())
}

func (r *recorder) completion(observe func()) tea.Cmd {
	return func() tea.Msg {
		r.calls++
		r.events = append(r.events, "completion")
		if observe != nil {
			observe()
		}
		return completionMsg{}
	}
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

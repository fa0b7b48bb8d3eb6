// Package loader implements the circular spinner shown inside a transition
// button while its task runs.
package loader

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"transitionbutton/anim"
	"transitionbutton/geom"
)

const (
	rotationKey = "transform.rotation.z"

	// DefaultStrokeEnd is the share of the circumference the stroke covers
	DefaultStrokeEnd = 0.4
	DefaultLineWidth = 1.0
)

// DefaultCycle is one full rotation of the default timing profile
var DefaultCycle = anim.DefaultTimingProfile().SpinCycle

// Indicator is a partial circle that spins continuously while visible
type Indicator struct {
	frame     geom.Rect
	path      geom.Arc
	strokeEnd float64
	lineWidth float64
	color     lipgloss.TerminalColor
	style     lipgloss.Style
	visible   bool
	cycle     time.Duration
	clock     func() time.Time
	layer     *anim.Layer
}

type Option func(*Indicator)

func WithColor(c lipgloss.TerminalColor) Option {
	return func(i *Indicator) {
		i.color = c
	}
}

// WithCycle sets the duration of one full revolution
func WithCycle(d time.Duration) Option {
	return func(i *Indicator) {
		i.cycle = d
	}
}

func WithClock(clock func() time.Time) Option {
	return func(i *Indicator) {
		i.clock = clock
	}
}

// New creates a hidden indicator sized to fit frame
func New(frame geom.Rect, opts ...Option) *Indicator {
	i := &Indicator{
		strokeEnd: DefaultStrokeEnd,
		lineWidth: DefaultLineWidth,
		color:     lipgloss.Color("15"),
		cycle:     DefaultCycle,
		clock:     time.Now,
		layer:     anim.NewLayer(),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.restyle()
	i.Configure(frame)
	return i
}

// Configure recomputes the square frame and arc path for the given rect.
// The side follows the rect height; the running rotation is left alone.
func (i *Indicator) Configure(rect geom.Rect) {
	side := math.Max(rect.H, 0)
	i.frame = geom.Rect{X: 0, Y: 0, W: side, H: side}
	i.path = geom.Arc{
		Center:     geom.Point{X: side / 2, Y: i.frame.Center().Y},
		Radius:     (side / 2) * 0.5,
		StartAngle: -math.Pi / 2,
		EndAngle:   2*math.Pi - math.Pi/2,
		Clockwise:  true,
	}
}

// Start shows the indicator and installs the infinite rotation. Calling it
// again replaces the rotation rather than stacking another one.
func (i *Indicator) Start() {
	i.visible = true
	i.layer.Add(rotationKey, &anim.Basic{
		From:     0,
		To:       2 * math.Pi,
		Duration: i.cycle,
		Curve:    anim.Linear,
		Begin:    i.clock(),
		Repeat:   anim.Forever,
	}, anim.FillForwards, 0)
}

// Stop hides the indicator and drops every animation at once
func (i *Indicator) Stop() {
	i.visible = false
	i.layer.RemoveAll()
}

// SetColor restyles the stroke; a running rotation keeps going
func (i *Indicator) SetColor(c lipgloss.TerminalColor) {
	i.color = c
	i.restyle()
}

func (i *Indicator) restyle() {
	i.style = lipgloss.NewStyle().Foreground(i.color).Bold(true)
}

func (i *Indicator) Frame() geom.Rect              { return i.frame }
func (i *Indicator) Path() geom.Arc                { return i.path }
func (i *Indicator) StrokeEnd() float64            { return i.strokeEnd }
func (i *Indicator) LineWidth() float64            { return i.lineWidth }
func (i *Indicator) Color() lipgloss.TerminalColor { return i.color }
func (i *Indicator) Visible() bool                 { return i.visible }
func (i *Indicator) AnimationCount() int           { return i.layer.Len() }

// Animating reports whether the rotation is installed
func (i *Indicator) Animating() bool {
	return i.layer.Has(rotationKey)
}

// Angle returns the current rotation in radians, 0 when not spinning
func (i *Indicator) Angle(now time.Time) float64 {
	v, ok := i.layer.Value(rotationKey, now)
	if !ok {
		return 0
	}
	return v
}

// quarter-circle glyphs, clockwise from the top-left quadrant
var arcGlyphs = [4]string{"◜", "◝", "◞", "◟"}

// View renders the stroke head as a single glyph in the stroke colour
func (i *Indicator) View() string {
	if !i.visible {
		return ""
	}
	return i.style.Render(i.glyph(i.clock()))
}

// glyph picks the quadrant holding the middle of the visible stroke.
func (i *Indicator) glyph(now time.Time) string {
	mid := i.path.StartAngle + i.path.Sweep()*i.strokeEnd/2 + i.Angle(now)
	// quadrant 0 is the top-left quarter, matching ◜
	turn := math.Mod(mid+math.Pi, 2*math.Pi)
	if turn < 0 {
		turn += 2 * math.Pi
	}
	q := int(turn/(math.Pi/2)) % 4
	return arcGlyphs[q]
}

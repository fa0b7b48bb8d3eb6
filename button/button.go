// Package button implements a transition button for Bubble Tea programs.
//
// On Start the button hides its content, rounds and shrinks into a circle
// and shows a spinner. Stop resolves the sequence in one of three styles
// (normal, expand, shake) and restores the original content once the revert
// delay has elapsed. Every step is driven from the completion of the
// previous one through the button's own messages, so a host only has to
// forward messages to Update and render View.
package button

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"transitionbutton/anim"
	"transitionbutton/geom"
	"transitionbutton/loader"
)

// animation keys on the button layer
const (
	keyCornerRadius = "cornerRadius"
	keyWidth        = "bounds.size.width"
	keyScale        = "transform.scale"
	keyPosition     = "position.x"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type stopRequest struct {
	style      StopStyle
	delay      time.Duration
	completion tea.Cmd
}

// Model is a transition button. Use New to create one.
type Model struct {
	id    int
	run   uuid.UUID
	state State
	style StopStyle

	profile      anim.TimingProfile
	viewport     Viewport
	clock        func() time.Time
	logger       *log.Logger
	onTransition func(Transition)

	frame        geom.Rect
	cornerRadius float64 // configured
	radius       float64 // model value, H/2 while animating

	title       string
	image       string
	cached      *Content
	interactive bool
	enabled     bool

	foreground         lipgloss.TerminalColor
	background         lipgloss.TerminalColor
	disabledBackground lipgloss.TerminalColor
	spinnerColor       lipgloss.TerminalColor

	layer   *anim.Layer
	spinner *loader.Indicator

	queued      *stopRequest
	completion  tea.Cmd
	revertDelay time.Duration
	expandScale float64
	ticking     bool
}

type Option func(*Model)

func WithImage(image string) Option {
	return func(m *Model) {
		m.image = image
	}
}

func WithTimingProfile(p anim.TimingProfile) Option {
	return func(m *Model) {
		m.profile = p
	}
}

func WithViewport(v Viewport) Option {
	return func(m *Model) {
		m.viewport = v
	}
}

func WithClock(clock func() time.Time) Option {
	return func(m *Model) {
		m.clock = clock
	}
}

func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithTransitionHook registers fn to be called on every state change
func WithTransitionHook(fn func(Transition)) Option {
	return func(m *Model) {
		m.onTransition = fn
	}
}

func WithCornerRadius(r float64) Option {
	return func(m *Model) {
		m.cornerRadius = r
	}
}

func WithSpinnerColor(c lipgloss.TerminalColor) Option {
	return func(m *Model) {
		m.spinnerColor = c
	}
}

func WithColors(fg, bg lipgloss.TerminalColor) Option {
	return func(m *Model) {
		m.foreground = fg
		m.background = bg
	}
}

func WithDisabledBackgroundColor(c lipgloss.TerminalColor) Option {
	return func(m *Model) {
		m.disabledBackground = c
	}
}

// New creates an idle button showing title inside frame
func New(title string, frame geom.Rect, opts ...Option) *Model {
	m := &Model{
		id:                 nextID(),
		profile:            anim.DefaultTimingProfile(),
		viewport:           FixedViewport{},
		clock:              time.Now,
		frame:              frame,
		title:              title,
		interactive:        true,
		enabled:            true,
		foreground:         lipgloss.Color("15"),
		background:         lipgloss.Color("12"),
		disabledBackground: lipgloss.Color("7"),
		spinnerColor:       lipgloss.Color("15"),
		layer:              anim.NewLayer(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.spinner = loader.New(frame,
		loader.WithColor(m.spinnerColor),
		loader.WithCycle(m.profile.SpinCycle),
		loader.WithClock(m.clock),
	)
	m.radius = m.cornerRadius
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf("button %d: %s", m.id, fmt.Sprintf(format, args...))
	}
}

func (m *Model) transition(to State) {
	from := m.state
	m.state = to
	if to == Resolving {
		m.logf("%s -> %s (%s)", from, to, m.style)
	} else {
		m.logf("%s -> %s", from, to)
	}
	if m.onTransition != nil {
		m.onTransition(Transition{From: from, To: to, Style: m.style})
	}
}

// SetTitle changes the visible title
func (m *Model) SetTitle(title string) {
	m.title = title
}

func (m *Model) SetImage(image string) {
	m.image = image
}

// SetSpinnerColor restyles the spinner stroke, even mid spin
func (m *Model) SetSpinnerColor(c lipgloss.TerminalColor) {
	m.spinnerColor = c
	m.spinner.SetColor(c)
}

func (m *Model) SetDisabledBackgroundColor(c lipgloss.TerminalColor) {
	m.disabledBackground = c
}

func (m *Model) SetColors(fg, bg lipgloss.TerminalColor) {
	m.foreground = fg
	m.background = bg
}

// SetCornerRadius changes the configured corner radius. It shows while the
// button is idle; running animations keep their own radius.
func (m *Model) SetCornerRadius(r float64) {
	m.cornerRadius = r
	if m.state == Idle {
		m.radius = r
	}
}

// SetEnabled toggles the disabled look of the button
func (m *Model) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// SetFrame applies a layout change and refits the spinner to it
func (m *Model) SetFrame(frame geom.Rect) {
	m.frame = frame
	m.spinner.Configure(frame)
}

func (m *Model) ID() int                    { return m.id }
func (m *Model) State() State               { return m.state }
func (m *Model) Style() StopStyle           { return m.style }
func (m *Model) Title() string              { return m.title }
func (m *Model) Image() string              { return m.image }
func (m *Model) Interactive() bool          { return m.interactive }
func (m *Model) Enabled() bool              { return m.enabled }
func (m *Model) Frame() geom.Rect           { return m.frame }
func (m *Model) Spinner() *loader.Indicator { return m.spinner }
func (m *Model) SpinnerVisible() bool       { return m.spinner.Visible() }

// Cached returns the content snapshot taken by Start, if any
func (m *Model) Cached() (Content, bool) {
	if m.cached == nil {
		return Content{}, false
	}
	return *m.cached, true
}

// RevertDelay returns the clamped delay of the last accepted stop request
func (m *Model) RevertDelay() time.Duration {
	return m.revertDelay
}

// ExpandScale returns the scale factor of the last expand resolution
func (m *Model) ExpandScale() float64 {
	return m.expandScale
}

// Width returns the presented width at now
func (m *Model) Width(now time.Time) float64 {
	if v, ok := m.layer.Value(keyWidth, now); ok {
		return v
	}
	return m.frame.W
}

func (m *Model) CornerRadius(now time.Time) float64 {
	if v, ok := m.layer.Value(keyCornerRadius, now); ok {
		return v
	}
	return m.radius
}

func (m *Model) Scale(now time.Time) float64 {
	if v, ok := m.layer.Value(keyScale, now); ok {
		return v
	}
	return 1
}

// OffsetX returns the horizontal shake displacement at now
func (m *Model) OffsetX(now time.Time) float64 {
	if v, ok := m.layer.Value(keyPosition, now); ok {
		return v
	}
	return 0
}

// Animating reports whether the button still needs frames
func (m *Model) Animating() bool {
	return m.layer.Active() || m.spinner.Animating()
}

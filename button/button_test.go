package button

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"transitionbutton/geom"
)

func newTestButton(rec *recorder, opts ...Option) *Model {
	base := []Option{
		WithImage("➜"),
		WithTimingProfile(fastProfile()),
		WithCornerRadius(1),
		WithViewport(FixedViewport{W: 160, H: 96}),
	}
	if rec != nil {
		base = append(base, WithTransitionHook(rec.hook))
	}
	return New("Sign in", testFrame, append(base, opts...)...)
}

// startSpinning runs Start until the shrink has settled with the spinner on
func startSpinning(t *testing.T, b *Model) *driver {
	t.Helper()
	d := newDriver(t, b)
	d.push(b.Start())
	d.runUntil(func() bool {
		return b.State() == Spinning && b.Width(time.Now()) == b.Frame().H
	})
	return d
}

func TestNewIsIdle(t *testing.T) {
	b := newTestButton(nil)

	if b.State() != Idle {
		t.Errorf("State = %v, want idle", b.State())
	}
	if !b.Interactive() || !b.Enabled() {
		t.Error("new button should be interactive and enabled")
	}
	if _, ok := b.Cached(); ok {
		t.Error("new button should have no cached content")
	}
	if b.SpinnerVisible() {
		t.Error("spinner should be hidden while idle")
	}
	if b.Animating() {
		t.Error("idle button should not request frames")
	}
	if cmd := b.Init(); cmd != nil {
		t.Error("Init should not return a command")
	}
}

func TestStartReachesSpinning(t *testing.T) {
	rec := &recorder{}
	b := newTestButton(rec)
	startSpinning(t, b)

	cached, ok := b.Cached()
	if !ok {
		t.Fatal("expected cached content while spinning")
	}
	if diff := cmp.Diff(Content{Title: "Sign in", Image: "➜"}, cached); diff != "" {
		t.Errorf("cached content mismatch (-want +got):\n%s", diff)
	}
	if b.Title() != "" || b.Image() != "" {
		t.Errorf("visible content = %q/%q, want empty", b.Title(), b.Image())
	}
	if b.Interactive() {
		t.Error("user interaction should be disabled while spinning")
	}
	if !b.SpinnerVisible() {
		t.Error("spinner should be visible while spinning")
	}
	if got := b.CornerRadius(time.Now()); got != testFrame.H/2 {
		t.Errorf("CornerRadius = %v, want %v", got, testFrame.H/2)
	}

	want := []string{"shrinking", "spinning"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestStartRoundsBeforeShrinking(t *testing.T) {
	clock := newFakeClock()
	b := newTestButton(nil, WithClock(clock.Now))

	if cmd := b.Start(); cmd == nil {
		t.Fatal("Start should schedule a frame")
	}
	if b.State() != Shrinking {
		t.Fatalf("State = %v, want shrinking", b.State())
	}
	if b.SpinnerVisible() {
		t.Error("spinner must wait for the corner animation")
	}
	if got := b.Width(clock.Now()); got != testFrame.W {
		t.Errorf("width changed before the corners were rounded: %v", got)
	}

	clock.Advance(500 * time.Microsecond)
	if got := b.CornerRadius(clock.Now()); got <= 1 || got >= testFrame.H/2 {
		t.Errorf("CornerRadius mid animation = %v, want between 1 and %v", got, testFrame.H/2)
	}

	clock.Advance(time.Millisecond)
	b.Update(frameMsg{id: b.ID()})

	if b.State() != Spinning {
		t.Fatalf("State = %v, want spinning once the corners are round", b.State())
	}
	if !b.SpinnerVisible() {
		t.Error("spinner should start together with the shrink")
	}
	if got := b.Width(clock.Now()); got != testFrame.W {
		t.Errorf("shrink should start from the full width, got %v", got)
	}

	clock.Advance(time.Millisecond)
	b.Update(frameMsg{id: b.ID()})
	if got := b.Width(clock.Now()); got != testFrame.H {
		t.Errorf("Width after shrink = %v, want the height %v", got, testFrame.H)
	}
}

func TestStopNormal(t *testing.T) {
	rec := &recorder{}
	b := newTestButton(rec)
	d := startSpinning(t, b)

	cmd := b.Stop(Normal, 0, rec.completion(nil))
	if cmd == nil {
		t.Fatal("Stop should schedule the revert")
	}
	if rec.calls != 0 {
		t.Fatal("completion must not run synchronously")
	}
	if b.State() != Resolving || b.Style() != Normal {
		t.Errorf("State = %v/%v, want resolving/normal", b.State(), b.Style())
	}
	if !b.SpinnerVisible() {
		t.Error("spinner keeps running until the revert")
	}

	d.push(cmd)
	d.settle()

	if b.State() != Idle {
		t.Errorf("State = %v, want idle", b.State())
	}
	if b.Title() != "Sign in" || b.Image() != "➜" {
		t.Errorf("content = %q/%q, want the original", b.Title(), b.Image())
	}
	if !b.Interactive() {
		t.Error("user interaction should be enabled again")
	}
	if _, ok := b.Cached(); ok {
		t.Error("cache should be cleared after the revert")
	}
	if b.SpinnerVisible() {
		t.Error("spinner should be hidden after the revert")
	}
	if got := b.Width(time.Now()); got != testFrame.W {
		t.Errorf("Width = %v, want %v", got, testFrame.W)
	}
	if got := b.CornerRadius(time.Now()); got != 1 {
		t.Errorf("CornerRadius = %v, want the configured 1", got)
	}
	if rec.calls != 1 {
		t.Errorf("completion called %d times, want 1", rec.calls)
	}

	want := []string{"shrinking", "spinning", "resolving", "reverting", "idle", "completion"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}
}

func TestStopShake(t *testing.T) {
	rec := &recorder{}
	b := newTestButton(rec)
	d := startSpinning(t, b)

	var offsetAtCompletion float64
	var shakingAtCompletion bool
	d.push(b.Stop(Shake, 0, rec.completion(func() {
		offsetAtCompletion = b.OffsetX(time.Now())
		shakingAtCompletion = b.layer.Has(keyPosition)
	})))

	d.runUntil(func() bool { return b.layer.Has(keyPosition) })

	if b.State() != Reverting {
		t.Errorf("State during the shake = %v, want reverting", b.State())
	}
	if b.Title() != "Sign in" || !b.Interactive() {
		t.Error("original state should be restored before the shake plays")
	}
	if b.SpinnerVisible() {
		t.Error("spinner should be stopped by the restore")
	}
	if rec.calls != 0 {
		t.Error("completion must wait for the shake to finish")
	}

	d.settle()

	if rec.calls != 1 {
		t.Fatalf("completion called %d times, want 1", rec.calls)
	}
	if shakingAtCompletion || offsetAtCompletion != 0 {
		t.Errorf("completion ran with shake still installed (%v) at offset %v", shakingAtCompletion, offsetAtCompletion)
	}
	if b.State() != Idle {
		t.Errorf("State = %v, want idle", b.State())
	}

	want := []string{"shrinking", "spinning", "resolving", "reverting", "idle", "completion"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}
}

func TestShakeOscillatesAroundOrigin(t *testing.T) {
	clock := newFakeClock()
	b := newTestButton(nil, WithClock(clock.Now))
	spinWithClock(t, b, clock)

	b.Stop(Shake, 0, nil)
	clock.Advance(time.Millisecond)
	b.Update(revertMsg{id: b.ID(), run: b.run})

	profile := fastProfile()
	var offsets []float64
	for i := 0; i <= 7; i++ {
		at := clock.Now().Add(profile.ShakeDuration * time.Duration(i) / 7)
		offsets = append(offsets, b.OffsetX(at))
	}

	if offsets[0] != 0 || offsets[7] != 0 {
		t.Errorf("shake should start and end at the original position, got %v", offsets)
	}
	if slices.Max(offsets) <= 0 || slices.Min(offsets) >= 0 {
		t.Errorf("shake should swing both ways, got %v", offsets)
	}
	if slices.Max(offsets) > profile.ShakeAmplitude || slices.Min(offsets) < -profile.ShakeAmplitude {
		t.Errorf("shake exceeded its amplitude: %v", offsets)
	}
}

func TestStopExpand(t *testing.T) {
	rec := &recorder{}
	b := newTestButton(rec, WithViewport(FixedViewport{W: 160, H: 200}))
	d := startSpinning(t, b)

	var stateAtCompletion State
	var scaleAtCompletion float64
	cmd := b.Stop(Expand, 0, rec.completion(func() {
		stateAtCompletion = b.State()
		scaleAtCompletion = b.Scale(time.Now())
	}))

	if b.SpinnerVisible() {
		t.Error("spinner should be hidden before the expansion starts")
	}
	wantScale := 2 * 200 / testFrame.H
	if got := b.ExpandScale(); got != wantScale {
		t.Errorf("ExpandScale = %v, want %v", got, wantScale)
	}

	d.push(cmd)
	d.settle()

	if rec.calls != 1 {
		t.Fatalf("completion called %d times, want 1", rec.calls)
	}
	if stateAtCompletion != Resolving {
		t.Errorf("completion ran in state %v, want resolving (before the revert)", stateAtCompletion)
	}
	if scaleAtCompletion != wantScale {
		t.Errorf("scale at completion = %v, want the full %v", scaleAtCompletion, wantScale)
	}

	want := []string{"shrinking", "spinning", "resolving", "completion", "reverting", "idle"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}

	if b.Scale(time.Now()) != 1 || b.Width(time.Now()) != testFrame.W {
		t.Error("silent revert should clear every animation")
	}
	if b.Title() != "Sign in" || !b.Interactive() {
		t.Error("silent revert should restore the original content")
	}
}

func TestExpandScaleFloor(t *testing.T) {
	clock := newFakeClock()
	b := newTestButton(nil, WithClock(clock.Now), WithViewport(FixedViewport{W: 80, H: 48}))
	spinWithClock(t, b, clock)

	b.Stop(Expand, 0, nil)
	if got := b.ExpandScale(); got != 26 {
		t.Errorf("ExpandScale = %v, want the 26 floor", got)
	}
}

// spinWithClock drives a button to Spinning with manual frames
func spinWithClock(t *testing.T, b *Model, clock *fakeClock) {
	t.Helper()
	b.Start()
	for i := 0; i < 4 && b.State() != Spinning; i++ {
		clock.Advance(time.Millisecond)
		b.Update(frameMsg{id: b.ID()})
	}
	if b.State() != Spinning {
		t.Fatalf("State = %v, want spinning", b.State())
	}
}

func TestStopRevertDelayFloor(t *testing.T) {
	tests := []struct {
		delay time.Duration
		want  time.Duration
	}{
		{0, 200 * time.Millisecond},
		{50 * time.Millisecond, 200 * time.Millisecond},
		{200 * time.Millisecond, 200 * time.Millisecond},
		{time.Second, time.Second},
	}

	for _, style := range []StopStyle{Normal, Expand, Shake} {
		for _, tt := range tests {
			clock := newFakeClock()
			b := New("Go", testFrame, WithClock(clock.Now))
			b.Start()
			clock.Advance(100 * time.Millisecond)
			b.Update(frameMsg{id: b.ID()})
			if b.State() != Spinning {
				t.Fatalf("State = %v, want spinning", b.State())
			}

			b.Stop(style, tt.delay, nil)
			if got := b.RevertDelay(); got != tt.want {
				t.Errorf("%v: RevertDelay for %v = %v, want %v", style, tt.delay, got, tt.want)
			}
		}
	}
}

func TestStartIgnoredWhileBusy(t *testing.T) {
	rec := &recorder{}
	b := newTestButton(rec)
	startSpinning(t, b)

	if cmd := b.Start(); cmd != nil {
		t.Error("second Start should be rejected")
	}
	if b.State() != Spinning {
		t.Errorf("State = %v, want spinning", b.State())
	}
	cached, _ := b.Cached()
	if cached.Title != "Sign in" {
		t.Errorf("cache overwritten by rejected start: %+v", cached)
	}
	if len(rec.events) != 2 {
		t.Errorf("rejected start produced transitions: %v", rec.events)
	}
}

func TestStopIgnoredWhenIdle(t *testing.T) {
	rec := &recorder{}
	b := newTestButton(rec)

	if cmd := b.Stop(Normal, 0, rec.completion(nil)); cmd != nil {
		t.Error("Stop on an idle button should be rejected")
	}
	if b.State() != Idle || len(rec.events) != 0 {
		t.Errorf("rejected stop changed state: %v %v", b.State(), rec.events)
	}
}

func TestSecondStopIgnored(t *testing.T) {
	first := &recorder{}
	second := &recorder{}
	b := newTestButton(first)
	d := startSpinning(t, b)

	d.push(b.Stop(Normal, 0, first.completion(nil)))
	if cmd := b.Stop(Shake, 0, second.completion(nil)); cmd != nil {
		t.Error("a second stop should be rejected")
	}
	d.settle()

	if first.calls != 1 || second.calls != 0 {
		t.Errorf("completions: first %d, second %d; want 1 and 0", first.calls, second.calls)
	}
	if b.Style() != Normal {
		t.Errorf("Style = %v, want the first request's normal", b.Style())
	}
}

func TestStopQueuedWhileShrinking(t *testing.T) {
	rec := &recorder{}
	b := newTestButton(rec)
	d := newDriver(t, b)

	d.push(b.Start())
	if cmd := b.Stop(Normal, 0, rec.completion(nil)); cmd != nil {
		t.Error("stop during the shrink should be queued, not dispatched")
	}
	if b.State() != Shrinking {
		t.Fatalf("State = %v, want shrinking", b.State())
	}

	d.settle()

	if b.State() != Idle || rec.calls != 1 {
		t.Errorf("queued stop: state %v, completions %d; want idle and 1", b.State(), rec.calls)
	}
	want := []string{"shrinking", "spinning", "resolving", "reverting", "idle", "completion"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}
}

func TestSecondStopWhileShrinkingIgnored(t *testing.T) {
	first := &recorder{}
	second := &recorder{}
	b := newTestButton(first)
	d := newDriver(t, b)

	d.push(b.Start())
	if cmd := b.Stop(Normal, 0, first.completion(nil)); cmd != nil {
		t.Error("first stop during the shrink should be queued")
	}
	if cmd := b.Stop(Shake, 0, second.completion(nil)); cmd != nil {
		t.Error("second stop during the shrink should be rejected")
	}
	d.settle()

	if first.calls != 1 || second.calls != 0 {
		t.Errorf("completions: first %d, second %d; want 1 and 0", first.calls, second.calls)
	}
	if b.Style() != Normal || b.State() != Idle {
		t.Errorf("Style = %v, State = %v; want the first request's normal and idle", b.Style(), b.State())
	}
}

func TestShrinkWidthStaysWithinFrame(t *testing.T) {
	clock := newFakeClock()
	b := newTestButton(nil, WithClock(clock.Now))
	p := fastProfile()

	b.Start()
	clock.Advance(p.CornerDuration)
	b.Update(frameMsg{id: b.ID()})
	if b.State() != Spinning {
		t.Fatalf("State = %v, want spinning once the corners are round", b.State())
	}

	const samples = 40
	start := clock.Now()
	prev := b.Frame().W
	for i := 0; i <= samples; i++ {
		now := start.Add(p.ShrinkDuration * time.Duration(i) / samples)
		w := b.Width(now)
		if w < b.Frame().H || w > b.Frame().W {
			t.Fatalf("Width at %d/%d = %v, outside [%v, %v]", i, samples, w, b.Frame().H, b.Frame().W)
		}
		if w > prev {
			t.Fatalf("Width grew from %v to %v at %d/%d", prev, w, i, samples)
		}
		prev = w
	}
	if prev != b.Frame().H {
		t.Errorf("Width at the end of the shrink = %v, want %v", prev, b.Frame().H)
	}
}

func TestStaleMessagesIgnored(t *testing.T) {
	clock := newFakeClock()
	b := newTestButton(nil, WithClock(clock.Now))
	spinWithClock(t, b, clock)
	b.Stop(Normal, 0, nil)

	if cmd := b.Update(revertMsg{id: b.ID(), run: uuid.New()}); cmd != nil || b.State() != Resolving {
		t.Error("revert from another run should be ignored")
	}
	if cmd := b.Update(revertMsg{id: b.ID() + 1000, run: b.run}); cmd != nil || b.State() != Resolving {
		t.Error("revert addressed to another button should be ignored")
	}
	if cmd := b.Update(frameMsg{id: b.ID() + 1000}); cmd != nil {
		t.Error("frame addressed to another button should be ignored")
	}

	b.Update(revertMsg{id: b.ID(), run: b.run})
	if b.State() != Reverting {
		t.Errorf("State = %v, want reverting", b.State())
	}
	if cmd := b.Update(revertMsg{id: b.ID(), run: b.run}); cmd != nil {
		t.Error("a revert can only fire once per run")
	}
}

func TestSetFrameRefitsSpinner(t *testing.T) {
	b := newTestButton(nil)
	b.SetFrame(geom.Rect{X: 2, Y: 2, W: 40, H: 10})

	if got := b.Spinner().Frame(); got != (geom.Rect{W: 10, H: 10}) {
		t.Errorf("spinner frame = %v, want a 10x10 square", got)
	}
	if got := b.Spinner().Path().Radius; got != 2.5 {
		t.Errorf("spinner radius = %v, want 2.5", got)
	}
}

func TestSetCornerRadiusOnlyWhileIdle(t *testing.T) {
	clock := newFakeClock()
	b := newTestButton(nil, WithClock(clock.Now))

	b.SetCornerRadius(2)
	if got := b.CornerRadius(clock.Now()); got != 2 {
		t.Errorf("idle CornerRadius = %v, want 2", got)
	}

	spinWithClock(t, b, clock)
	b.SetCornerRadius(0)
	if got := b.CornerRadius(clock.Now()); got != testFrame.H/2 {
		t.Errorf("CornerRadius while spinning = %v, want %v", got, testFrame.H/2)
	}

	b.Stop(Normal, 0, nil)
	b.Update(revertMsg{id: b.ID(), run: b.run})
	if got := b.CornerRadius(clock.Now()); got != 0 {
		t.Errorf("CornerRadius after revert = %v, want the new configured 0", got)
	}
}

func TestSpinnerColorChangesWhileSpinning(t *testing.T) {
	clock := newFakeClock()
	b := newTestButton(nil, WithClock(clock.Now), WithSpinnerColor(lipgloss.Color("11")))
	if b.Spinner().Color() != lipgloss.Color("11") {
		t.Errorf("spinner colour = %v, want 11", b.Spinner().Color())
	}

	spinWithClock(t, b, clock)
	b.SetSpinnerColor(lipgloss.Color("9"))

	if b.Spinner().Color() != lipgloss.Color("9") || !b.Spinner().Animating() {
		t.Error("colour change should apply without stopping the spinner")
	}
}

func TestViewFollowsState(t *testing.T) {
	clock := newFakeClock()
	b := newTestButton(nil, WithClock(clock.Now))

	idle := b.View()
	if !strings.Contains(idle, "Sign in") {
		t.Errorf("idle view should show the title:\n%s", idle)
	}
	if got := lipgloss.Width(idle); got != int(testFrame.W) {
		t.Errorf("idle view width = %d, want %v", got, testFrame.W)
	}
	if got := lipgloss.Height(idle); got != int(testFrame.H/RowPoints) {
		t.Errorf("idle view height = %d, want %v", got, testFrame.H/RowPoints)
	}

	spinWithClock(t, b, clock)
	clock.Advance(time.Millisecond)
	spinning := b.View()
	if strings.Contains(spinning, "Sign in") {
		t.Error("spinning view should hide the title")
	}
	if got := lipgloss.Width(spinning); got != int(testFrame.H) {
		t.Errorf("spinning view width = %d, want the circle's %v", got, testFrame.H)
	}
}

func TestViewTruncatesLongTitle(t *testing.T) {
	b := New("A very long call to action that never fits", geom.Rect{W: 12, H: 6})
	view := b.View()

	if got := lipgloss.Width(view); got != 12 {
		t.Errorf("view width = %d, want 12", got)
	}
	if !strings.Contains(view, "…") {
		t.Errorf("long title should be truncated with an ellipsis:\n%s", view)
	}
}

func TestViewShakeKeepsWidth(t *testing.T) {
	clock := newFakeClock()
	b := newTestButton(nil, WithClock(clock.Now))
	spinWithClock(t, b, clock)
	b.Stop(Shake, 0, nil)
	clock.Advance(time.Millisecond)
	b.Update(revertMsg{id: b.ID(), run: b.run})

	// let the width restore finish first
	clock.Advance(fastProfile().RevertDuration)

	widths := map[int]bool{}
	for i := 0; i < 6; i++ {
		clock.Advance(fastProfile().ShakeDuration / 8)
		widths[lipgloss.Width(b.View())] = true
	}
	if len(widths) != 1 {
		t.Errorf("shaking view changed its total width: %v", widths)
	}
}

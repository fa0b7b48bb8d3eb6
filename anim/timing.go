package anim

import "time"

// TimingProfile gathers every duration, curve and constant used by the
// transition button. The zero value is not useful; start from
// DefaultTimingProfile.
type TimingProfile struct {
	CornerDuration time.Duration
	CornerCurve    Curve

	ShrinkDuration time.Duration
	ShrinkCurve    Curve

	RevertDuration time.Duration
	RevertCurve    Curve

	ExpandDuration time.Duration
	ExpandCurve    Curve
	MinExpandScale float64

	SpinCycle time.Duration

	ShakeDuration  time.Duration
	ShakeCurve     Curve
	ShakeAmplitude float64

	// MinRevertDelay is the floor applied to every caller supplied revert delay
	MinRevertDelay time.Duration

	FrameInterval time.Duration
}

func DefaultTimingProfile() TimingProfile {
	return TimingProfile{
		CornerDuration: 100 * time.Millisecond,
		CornerCurve:    Linear,
		ShrinkDuration: 100 * time.Millisecond,
		ShrinkCurve:    Linear,
		RevertDuration: 100 * time.Millisecond,
		RevertCurve:    Linear,
		ExpandDuration: time.Second,
		ExpandCurve:    ExpandCurve,
		MinExpandScale: 26.0,
		SpinCycle:      400 * time.Millisecond,
		ShakeDuration:  3 * time.Second,
		ShakeCurve:     EaseInEaseOut,
		ShakeAmplitude: 10,
		MinRevertDelay: 200 * time.Millisecond,
		FrameInterval:  time.Second / 60,
	}
}

// RevertDelay clamps a caller supplied delay to MinRevertDelay
func (p TimingProfile) RevertDelay(d time.Duration) time.Duration {
	return max(d, p.MinRevertDelay)
}

// ExpandScale returns the scale factor that makes a button of the given
// height cover a screen of the given height, never below MinExpandScale.
func (p TimingProfile) ExpandScale(screenHeight, buttonHeight float64) float64 {
	if buttonHeight <= 0 {
		return p.MinExpandScale
	}
	return max(2*screenHeight/buttonHeight, p.MinExpandScale)
}

// ShakeOffsets returns the horizontal displacement keyframes of the failure
// shake: three full swings around the start position and back to it.
func (p TimingProfile) ShakeOffsets() []float64 {
	a := p.ShakeAmplitude
	return []float64{0, -a, a, -a, a, -a, a, 0}
}

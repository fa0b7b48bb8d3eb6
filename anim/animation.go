package anim

import (
	"math"
	"time"
)

// Animation is a scalar value driven by wall-clock time
type Animation interface {
	Value(now time.Time) float64
	Done(now time.Time) bool
}

// Forever repeats an animation until it is removed
const Forever = -1

// Basic interpolates From → To over Duration using Curve.
// Repeat is the number of cycles (0 and 1 both mean once) or Forever.
type Basic struct {
	From     float64
	To       float64
	Duration time.Duration
	Curve    Curve
	Begin    time.Time
	Repeat   int
}

func NewBasic(from, to float64, d time.Duration, c Curve, begin time.Time) *Basic {
	return &Basic{From: from, To: to, Duration: d, Curve: c, Begin: begin}
}

func (b *Basic) cycles() int {
	if b.Repeat < 1 && b.Repeat != Forever {
		return 1
	}
	return b.Repeat
}

// progress returns the linear progress within the current cycle
func (b *Basic) progress(now time.Time) float64 {
	if b.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(b.Begin)
	if elapsed <= 0 {
		return 0
	}
	if b.Repeat == Forever {
		return math.Mod(float64(elapsed), float64(b.Duration)) / float64(b.Duration)
	}
	if elapsed >= b.Duration*time.Duration(b.cycles()) {
		return 1
	}
	return math.Mod(float64(elapsed), float64(b.Duration)) / float64(b.Duration)
}

func (b *Basic) Value(now time.Time) float64 {
	return b.From + (b.To-b.From)*b.Curve.Ease(b.progress(now))
}

func (b *Basic) Done(now time.Time) bool {
	if b.Repeat == Forever {
		return false
	}
	if b.Duration <= 0 {
		return true
	}
	return now.Sub(b.Begin) >= b.Duration*time.Duration(b.cycles())
}

// Keyframes steps through evenly spaced Values. Curve applies to the
// progress of the whole animation, not to each segment.
type Keyframes struct {
	Values   []float64
	Duration time.Duration
	Curve    Curve
	Begin    time.Time
}

func NewKeyframes(values []float64, d time.Duration, c Curve, begin time.Time) *Keyframes {
	return &Keyframes{Values: values, Duration: d, Curve: c, Begin: begin}
}

func (k *Keyframes) Value(now time.Time) float64 {
	switch len(k.Values) {
	case 0:
		return 0
	case 1:
		return k.Values[0]
	}

	p := 1.0
	if k.Duration > 0 {
		p = float64(now.Sub(k.Begin)) / float64(k.Duration)
	}
	p = k.Curve.Ease(p)

	segments := len(k.Values) - 1
	pos := p * float64(segments)
	i := int(pos)
	if i >= segments {
		return k.Values[segments]
	}
	frac := pos - float64(i)
	return k.Values[i] + (k.Values[i+1]-k.Values[i])*frac
}

func (k *Keyframes) Done(now time.Time) bool {
	return now.Sub(k.Begin) >= k.Duration
}

package anim

import (
	"sort"
	"time"
)

// Fill decides what a finished animation leaves behind
type Fill int

const (
	// FillRemoved drops the animation once it finishes so the model value
	// shows through again.
	FillRemoved Fill = iota
	// FillForwards keeps the final value until the animation is superseded
	// or cleared.
	FillForwards
)

// Finished identifies an animation that completed during Advance
type Finished struct {
	Key string
	Tag int
}

type entry struct {
	anim     Animation
	fill     Fill
	tag      int
	finished bool
}

// Layer is a keyed set of running animations. Adding under an existing key
// supersedes the previous animation, so repeated adds never accumulate.
type Layer struct {
	entries map[string]*entry
}

func NewLayer() *Layer {
	return &Layer{entries: make(map[string]*entry)}
}

// Add installs a under key. tag is reported back through Advance when the
// animation completes; callers use it to chain the next step.
func (l *Layer) Add(key string, a Animation, fill Fill, tag int) {
	l.entries[key] = &entry{anim: a, fill: fill, tag: tag}
}

func (l *Layer) Has(key string) bool {
	_, ok := l.entries[key]
	return ok
}

func (l *Layer) Remove(key string) {
	delete(l.entries, key)
}

func (l *Layer) RemoveAll() {
	clear(l.entries)
}

func (l *Layer) Len() int {
	return len(l.entries)
}

// Value returns the presentation value for key, or false when nothing is
// animating it.
func (l *Layer) Value(key string, now time.Time) (float64, bool) {
	e, ok := l.entries[key]
	if !ok {
		return 0, false
	}
	return e.anim.Value(now), true
}

// Active reports whether any animation has yet to be reported finished by
// Advance. Infinite animations keep the layer active until removed.
func (l *Layer) Active() bool {
	for _, e := range l.entries {
		if !e.finished {
			return true
		}
	}
	return false
}

// Advance reports every animation that completed since the previous call,
// each exactly once, ordered by key. Finished FillRemoved entries are dropped.
func (l *Layer) Advance(now time.Time) []Finished {
	keys := make([]string, 0, len(l.entries))
	for key, e := range l.entries {
		if !e.finished && e.anim.Done(now) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	done := make([]Finished, 0, len(keys))
	for _, key := range keys {
		e := l.entries[key]
		e.finished = true
		if e.fill == FillRemoved {
			delete(l.entries, key)
		}
		done = append(done, Finished{Key: key, Tag: e.tag})
	}
	return done
}

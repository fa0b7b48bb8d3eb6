package button

import (
	"fmt"
	"strings"
)

// State is the visual state of a transition button
type State int

const (
	Idle State = iota
	Shrinking
	Spinning
	Resolving
	Reverting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Shrinking:
		return "shrinking"
	case Spinning:
		return "spinning"
	case Resolving:
		return "resolving"
	case Reverting:
		return "reverting"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// StopStyle selects how the button resolves once its task reports back.
//   - Normal reverts to the original state.
//   - Expand grows the button over the whole screen, handy right before a
//     screen transition.
//   - Shake reverts and then shakes to signal that the task failed.
type StopStyle int

const (
	Normal StopStyle = iota
	Expand
	Shake
)

func (s StopStyle) String() string {
	switch s {
	case Normal:
		return "normal"
	case Expand:
		return "expand"
	case Shake:
		return "shake"
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// ParseStopStyle parses the lower-case style names used in config files
func ParseStopStyle(s string) (StopStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "":
		return Normal, nil
	case "expand":
		return Expand, nil
	case "shake":
		return Shake, nil
	}
	return Normal, fmt.Errorf("unknown stop style %q", s)
}

// Content is what the button shows while idle. Image holds an icon glyph.
type Content struct {
	Title string
	Image string
}

func (c Content) Empty() bool {
	return c.Title == "" && c.Image == ""
}

// Transition describes one state change, reported through the transition hook
type Transition struct {
	From  State
	To    State
	Style StopStyle
}

package model

import "transitionbutton/button"

// TaskDoneMsg reports the end of the simulated background task
type TaskDoneMsg struct {
	Seq int
}

// TaskCompleteMsg is the completion handed to the button's Stop. It arrives
// once the button finished resolving with Style.
type TaskCompleteMsg struct {
	Seq   int
	Style button.StopStyle
}

type HelpRenderedMsg struct {
	Width    int
	Rendered string
}

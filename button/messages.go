package button

import (
	"time"

	"github.com/google/uuid"
)

// frameMsg advances the running animations of one button
type frameMsg struct {
	id   int
	time time.Time
}

// revertMsg fires once the revert delay of a stop request has elapsed.
// run ties it to the start/stop sequence that scheduled it.
type revertMsg struct {
	id  int
	run uuid.UUID
}

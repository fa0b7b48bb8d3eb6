package button

import "transitionbutton/geom"

// Viewport reports the size of the visible screen in points. The expand
// resolution uses it to pick a scale that covers the whole screen.
type Viewport interface {
	Size() geom.Size
}

type ViewportFunc func() geom.Size

func (f ViewportFunc) Size() geom.Size {
	return f()
}

// FixedViewport is a viewport that never changes size
type FixedViewport geom.Size

func (v FixedViewport) Size() geom.Size {
	return geom.Size(v)
}

// CellViewport converts a terminal size in cells into a viewport in points
func CellViewport(cols, rows int) FixedViewport {
	return FixedViewport{W: float64(cols), H: float64(rows) * RowPoints}
}

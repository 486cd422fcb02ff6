package splitview

import "dwex-demo/internal/domain"

// Cursor hints for an active divider drag.
const (
	CursorColResize = "col-resize"
	CursorRowResize = "row-resize"
)

// Point is a pointer position in client coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the split container's bounding box in client coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Drag translates divider pointer events into ratio updates.
type Drag struct {
	svc         *Service
	dragging    bool
	orientation domain.SplitOrientation
}

// NewDrag binds a drag to svc.
func NewDrag(svc *Service) *Drag {
	return &Drag{svc: svc}
}

// Begin starts a drag using the split view's current orientation and returns
// the cursor to show until End.
func (d *Drag) Begin() string {
	d.dragging = true
	d.orientation = d.svc.Orientation()
	if d.orientation == domain.SplitHorizontal {
		return CursorRowResize
	}
	return CursorColResize
}

// Move updates the ratio from pointer p inside container c. Moves outside a
// drag and containers with no extent along the drag axis are ignored.
func (d *Drag) Move(p Point, c Rect) {
	if !d.dragging {
		return
	}
	var coord, origin, extent float64
	if d.orientation == domain.SplitHorizontal {
		coord, origin, extent = p.Y, c.Top, c.Height
	} else {
		coord, origin, extent = p.X, c.Left, c.Width
	}
	if extent <= 0 {
		return
	}
	d.svc.SetSplitRatio((coord - origin) / extent * 100)
}

// End stops the drag.
func (d *Drag) End() {
	d.dragging = false
}

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool { return d.dragging }

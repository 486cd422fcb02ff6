package splitview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dwex-demo/internal/domain"
)

func TestDrag_Vertical(t *testing.T) {
	t.Parallel()
	svc := NewService(testRoutes(), nil)
	d := NewDrag(svc)
	box := Rect{Left: 0, Top: 0, Width: 1000, Height: 500}

	assert.Equal(t, CursorColResize, d.Begin())
	d.Move(Point{X: 700, Y: 10}, box)
	assert.InDelta(t, 70, svc.Ratio(), 0.001)

	d.Move(Point{X: 950}, box)
	assert.InDelta(t, 80, svc.Ratio(), 0.001)

	d.End()
	d.Move(Point{X: 400}, box)
	assert.InDelta(t, 80, svc.Ratio(), 0.001, "moves after End are ignored")
}

func TestDrag_HorizontalUsesYAxis(t *testing.T) {
	t.Parallel()
	svc := NewService(testRoutes(), nil)
	svc.SetOrientation(domain.SplitHorizontal)
	d := NewDrag(svc)

	assert.Equal(t, CursorRowResize, d.Begin())
	d.Move(Point{X: 900, Y: 300}, Rect{Left: 0, Top: 100, Width: 1000, Height: 500})
	assert.InDelta(t, 40, svc.Ratio(), 0.001)
}

func TestDrag_IgnoredWithoutBegin(t *testing.T) {
	t.Parallel()
	svc := NewService(testRoutes(), nil)
	d := NewDrag(svc)
	d.Move(Point{X: 700}, Rect{Width: 1000})
	assert.InDelta(t, 50, svc.Ratio(), 0.001)
	assert.False(t, d.Dragging())
}

func TestDrag_ZeroExtentIgnored(t *testing.T) {
	t.Parallel()
	svc := NewService(testRoutes(), nil)
	d := NewDrag(svc)
	d.Begin()
	d.Move(Point{X: 700}, Rect{Width: 0, Height: 400})
	assert.InDelta(t, 50, svc.Ratio(), 0.001)
	assert.True(t, d.Dragging())
}

func TestDrag_OffsetContainer(t *testing.T) {
	t.Parallel()
	svc := NewService(testRoutes(), nil)
	d := NewDrag(svc)
	d.Begin()
	d.Move(Point{X: 540}, Rect{Left: 240, Width: 600})
	assert.InDelta(t, 50, svc.Ratio(), 0.001)
}

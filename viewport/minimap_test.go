package viewport

import (
	"math"
	"testing"

	"github.com/meikuraledutech/nodegraph"
	"github.com/stretchr/testify/assert"
)

func TestGraphBounds(t *testing.T) {
	assert.Equal(t, Bounds{0, 0, 1000, 1000}, GraphBounds(nil, DefaultPadding))

	nodes := []nodegraph.Node{
		{X: 0, Y: 0, Width: 100, Height: 50},
		{X: 300, Y: 200, Width: 100, Height: 50},
	}
	assert.Equal(t, Bounds{MinX: -50, MinY: -50, MaxX: 450, MaxY: 300}, GraphBounds(nodes, 50))
}

func TestMinimapProjection(t *testing.T) {
	m := NewMinimap(Bounds{MinX: 0, MinY: 0, MaxX: 400, MaxY: 200}, 200, 150)

	assert.InDelta(t, 0.5, m.Scale, eps)
	assert.InDelta(t, 0, m.OffsetX, eps)
	assert.InDelta(t, 25, m.OffsetY, eps)

	px, py := m.Project(200, 100)
	assert.InDelta(t, 100, px, eps)
	assert.InDelta(t, 75, py, eps)

	x, y := m.Unproject(px, py)
	assert.InDelta(t, 200, x, eps)
	assert.InDelta(t, 100, y, eps)
}

func TestMinimapCenterOn(t *testing.T) {
	m := NewMinimap(Bounds{MinX: 0, MinY: 0, MaxX: 400, MaxY: 200}, 200, 150)
	v := Viewport{Width: 100, Height: 60, Scale: 1}

	c := m.CenterOn(100, 75, v)
	assert.InDelta(t, 150, c.X, eps)
	assert.InDelta(t, 70, c.Y, eps)
	assert.Nil(t, c.Scale)

	mv := m.MoveViewTo(100, 75)
	assert.InDelta(t, 200, mv.X, eps)
	assert.InDelta(t, 100, mv.Y, eps)
}

func TestMinimapViewRect(t *testing.T) {
	m := NewMinimap(Bounds{MinX: 0, MinY: 0, MaxX: 400, MaxY: 200}, 200, 150)
	r := m.ViewRect(Viewport{X: 100, Y: 0, Width: 200, Height: 100, Scale: 1})
	assert.InDelta(t, 50, r.X, eps)
	assert.InDelta(t, 25, r.Y, eps)
	assert.InDelta(t, 100, r.Width, eps)
	assert.InDelta(t, 50, r.Height, eps)

	rects := m.NodeRects([]nodegraph.Node{{X: 0, Y: 0, Width: 40, Height: 20}})
	assert.Equal(t, []Rect{{X: 0, Y: 25, Width: 20, Height: 10}}, rects)
}

func TestMinimapZeroSizeUsesDefaults(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 400, MaxY: 200}
	for _, size := range [][2]float64{{0, 0}, {-10, 150}, {200, math.NaN()}} {
		m := NewMinimap(b, size[0], size[1])
		assert.Equal(t, float64(DefaultMinimapWidth), m.Width)
		assert.Equal(t, float64(DefaultMinimapHeight), m.Height)
		assert.InDelta(t, 0.5, m.Scale, eps)

		c := m.CenterOn(10, 10, Viewport{Width: 800, Height: 600, Scale: 1})
		assert.False(t, math.IsInf(c.X, 0) || math.IsNaN(c.X), "x=%v", c.X)
		assert.False(t, math.IsInf(c.Y, 0) || math.IsNaN(c.Y), "y=%v", c.Y)
	}
}

func TestApplyIgnoresNonFinite(t *testing.T) {
	tr := New(800, 600)
	tr.Apply(Change{X: 10, Y: 20})
	want := tr.Viewport()

	bad := math.Inf(1)
	nan := math.NaN()
	tr.Apply(Change{X: bad, Y: 0})
	tr.Apply(Change{X: 0, Y: nan})
	tr.Apply(Change{X: 1, Y: 1, Scale: &bad})
	tr.Set(Viewport{X: nan, Y: 0, Width: 800, Height: 600, Scale: 1})
	assert.Equal(t, want, tr.Viewport())
}

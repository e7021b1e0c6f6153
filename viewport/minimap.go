package viewport

import (
	"math"

	"github.com/meikuraledutech/nodegraph"
)

// Minimap defaults.
const (
	DefaultMinimapWidth  = 200
	DefaultMinimapHeight = 150
	DefaultPadding       = 50

	// emptyExtent is the world size shown for a graph with no nodes.
	emptyExtent = 1000
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bounds is a world-space bounding box.
type Bounds struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// GraphBounds returns the box enclosing every node's extent, grown by
// padding on each side. An empty graph yields a fixed box at the origin.
func GraphBounds(nodes []nodegraph.Node, padding float64) Bounds {
	if len(nodes) == 0 {
		return Bounds{MaxX: emptyExtent, MaxY: emptyExtent}
	}

	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, n := range nodes {
		b.MinX = min(b.MinX, n.X)
		b.MinY = min(b.MinY, n.Y)
		b.MaxX = max(b.MaxX, n.X+n.Width)
		b.MaxY = max(b.MaxY, n.Y+n.Height)
	}

	b.MinX -= padding
	b.MinY -= padding
	b.MaxX += padding
	b.MaxY += padding
	return b
}

// Minimap is a read-only projection of the graph bounds onto a fixed pixel
// area. The content is scaled uniformly and centered.
type Minimap struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Bounds  Bounds  `json:"bounds"`
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// NewMinimap fits b into a w×h pixel minimap. Non-positive or non-finite
// sizes fall back to the defaults.
func NewMinimap(b Bounds, w, h float64) Minimap {
	if !(w > 0) || math.IsInf(w, 1) {
		w = DefaultMinimapWidth
	}
	if !(h > 0) || math.IsInf(h, 1) {
		h = DefaultMinimapHeight
	}
	bw, bh := b.Width(), b.Height()
	if bw <= 0 {
		bw = emptyExtent
	}
	if bh <= 0 {
		bh = emptyExtent
	}
	scale := min(w/bw, h/bh)
	return Minimap{
		Width:   w,
		Height:  h,
		Bounds:  b,
		Scale:   scale,
		OffsetX: (w - bw*scale) / 2,
		OffsetY: (h - bh*scale) / 2,
	}
}

// Project maps a world point into minimap pixels.
func (m Minimap) Project(x, y float64) (px, py float64) {
	return m.OffsetX + (x-m.Bounds.MinX)*m.Scale,
		m.OffsetY + (y-m.Bounds.MinY)*m.Scale
}

// Unproject maps minimap pixels back to a world point.
func (m Minimap) Unproject(px, py float64) (x, y float64) {
	return m.Bounds.MinX + (px-m.OffsetX)/m.Scale,
		m.Bounds.MinY + (py-m.OffsetY)/m.Scale
}

// ProjectRect maps a world rectangle into minimap pixels.
func (m Minimap) ProjectRect(r Rect) Rect {
	x, y := m.Project(r.X, r.Y)
	return Rect{X: x, Y: y, Width: r.Width * m.Scale, Height: r.Height * m.Scale}
}

// ViewRect is the main viewport as drawn on the minimap.
func (m Minimap) ViewRect(v Viewport) Rect {
	return m.ProjectRect(Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height})
}

// NodeRects projects every node for drawing.
func (m Minimap) NodeRects(nodes []nodegraph.Node) []Rect {
	out := make([]Rect, len(nodes))
	for i, n := range nodes {
		out[i] = m.ProjectRect(Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height})
	}
	return out
}

// CenterOn builds the change that centers v on the world point under a
// minimap click.
func (m Minimap) CenterOn(px, py float64, v Viewport) Change {
	x, y := m.Unproject(px, py)
	return Change{X: x - v.Width/2, Y: y - v.Height/2}
}

// MoveViewTo builds the change that puts the viewport's top-left corner at
// the given minimap position, as when dragging the view rectangle.
func (m Minimap) MoveViewTo(px, py float64) Change {
	x, y := m.Unproject(px, py)
	return Change{X: x, Y: y}
}

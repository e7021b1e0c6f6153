// Package viewport maps between screen pixels and world coordinates for the
// main canvas and projects the whole graph onto a minimap.
//
// A Viewport is the world-space rectangle visible in the canvas. Its Width
// and Height are the canvas pixel size divided by Scale, and X, Y is the
// world position of the canvas's top-left pixel.
package viewport

import "math"

// Zoom limits.
const (
	ZoomFactor = 1.1
	MinScale   = 0.1
	MaxScale   = 5.0
)

// Direction selects zooming in or out by one step.
type Direction int

const (
	ZoomOut Direction = -1
	ZoomIn  Direction = 1
)

// Viewport is the visible world-space window.
type Viewport struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scale  float64 `json:"scale"`
}

// Change is a request to reposition the viewport, as emitted by the
// minimap. Scale is optional.
type Change struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Scale *float64 `json:"scale,omitempty"`
}

// Transform owns the canvas viewport and its pixel size.
type Transform struct {
	view    Viewport
	canvasW float64
	canvasH float64
}

// New returns a transform for a canvas of the given pixel size at scale 1
// with the world origin in the top-left corner.
func New(canvasW, canvasH float64) *Transform {
	return &Transform{
		view:    Viewport{Width: canvasW, Height: canvasH, Scale: 1},
		canvasW: canvasW,
		canvasH: canvasH,
	}
}

// Viewport returns the current viewport.
func (t *Transform) Viewport() Viewport { return t.view }

// Canvas returns the canvas size in pixels.
func (t *Transform) Canvas() (w, h float64) { return t.canvasW, t.canvasH }

// Set replaces the viewport. The scale is clamped and a zero size is derived
// from the canvas size.
func (t *Transform) Set(v Viewport) {
	if !finite(v.X, v.Y, v.Scale, v.Width, v.Height) {
		return
	}
	if v.Scale <= 0 {
		v.Scale = 1
	}
	v.Scale = clampScale(v.Scale)
	if v.Width <= 0 || v.Height <= 0 {
		v.Width = t.canvasW / v.Scale
		v.Height = t.canvasH / v.Scale
	}
	t.view = v
}

// SetCanvasSize records a new canvas size, keeping origin and scale.
func (t *Transform) SetCanvasSize(w, h float64) {
	t.canvasW, t.canvasH = w, h
	t.view.Width = w / t.view.Scale
	t.view.Height = h / t.view.Scale
}

// ScreenToWorld converts a canvas pixel position to world coordinates.
func (t *Transform) ScreenToWorld(sx, sy float64) (x, y float64) {
	return t.view.X + sx/t.canvasW*t.view.Width,
		t.view.Y + sy/t.canvasH*t.view.Height
}

// WorldToScreen converts world coordinates to a canvas pixel position.
func (t *Transform) WorldToScreen(x, y float64) (sx, sy float64) {
	return (x - t.view.X) / t.view.Width * t.canvasW,
		(y - t.view.Y) / t.view.Height * t.canvasH
}

// ScreenDelta converts a pixel delta to a world delta. Node drags must go
// through it; raw pixel deltas are only correct at scale 1.
func (t *Transform) ScreenDelta(dx, dy float64) (wx, wy float64) {
	return dx * t.view.Width / t.canvasW, dy * t.view.Height / t.canvasH
}

// Zoom scales the viewport by one step around the cursor at (sx, sy) so the
// world point under the cursor stays there. It reports false when the
// scale is already at its limit.
func (t *Transform) Zoom(sx, sy float64, dir Direction) bool {
	wx, wy := t.ScreenToWorld(sx, sy)

	scale := t.view.Scale
	if dir == ZoomIn {
		scale *= ZoomFactor
	} else {
		scale /= ZoomFactor
	}
	scale = clampScale(scale)
	if scale == t.view.Scale {
		return false
	}

	k := scale / t.view.Scale
	t.view.Scale = scale
	t.view.Width /= k
	t.view.Height /= k

	// worldX = newX + (sx / canvasW) * newWidth
	t.view.X = wx - sx/t.canvasW*t.view.Width
	t.view.Y = wy - sy/t.canvasH*t.view.Height
	return true
}

// Pan moves the viewport by a pixel delta. Dragging the canvas right moves
// the visible window left.
func (t *Transform) Pan(dx, dy float64) {
	wx, wy := t.ScreenDelta(dx, dy)
	t.view.X -= wx
	t.view.Y -= wy
}

// Apply performs a change request. Requests carrying a non-finite
// coordinate or scale are ignored.
func (t *Transform) Apply(c Change) {
	if !finite(c.X, c.Y) || (c.Scale != nil && !finite(*c.Scale)) {
		return
	}
	if c.Scale != nil && *c.Scale > 0 {
		t.view.Scale = clampScale(*c.Scale)
		t.view.Width = t.canvasW / t.view.Scale
		t.view.Height = t.canvasH / t.view.Scale
	}
	t.view.X = c.X
	t.view.Y = c.Y
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, s))
}

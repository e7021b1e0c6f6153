package editor

import (
	"fmt"

	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/viewport"
)

// Viewport returns the canvas viewport.
func (e *Editor) Viewport() viewport.Viewport { return e.view.Viewport() }

// SetViewport replaces the canvas viewport.
func (e *Editor) SetViewport(v viewport.Viewport) {
	e.view.Set(v)
	e.emit(ViewportChanged)
}

// SetCanvasSize records the canvas pixel size reported by the UI.
func (e *Editor) SetCanvasSize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	e.view.SetCanvasSize(w, h)
	e.emit(ViewportChanged)
}

// ScreenToWorld converts a canvas pixel position to world coordinates.
func (e *Editor) ScreenToWorld(sx, sy float64) (x, y float64) {
	return e.view.ScreenToWorld(sx, sy)
}

// ZoomAt zooms one step around the cursor position.
func (e *Editor) ZoomAt(sx, sy float64, dir viewport.Direction) bool {
	if !e.view.Zoom(sx, sy, dir) {
		return false
	}
	e.emit(ViewportChanged)
	return true
}

// Pan moves the viewport by a pixel delta.
func (e *Editor) Pan(dx, dy float64) {
	e.view.Pan(dx, dy)
	e.emit(ViewportChanged)
}

// Minimap projects the current graph onto a w×h pixel minimap.
func (e *Editor) Minimap(w, h float64) viewport.Minimap {
	return viewport.NewMinimap(viewport.GraphBounds(e.graph.Nodes, e.minimapPadding), w, h)
}

// ApplyViewportChange performs a change request coming from the minimap.
func (e *Editor) ApplyViewportChange(c viewport.Change) {
	e.view.Apply(c)
	e.emit(ViewportChanged)
}

// DragNode moves a node by a pointer delta given in canvas pixels. The
// delta is converted through the current transform so drags track the
// pointer at any zoom level.
func (e *Editor) DragNode(id string, screenDX, screenDY float64) error {
	n := e.graph.Node(id)
	if n == nil {
		return e.reject("drag node", fmt.Errorf("%w: %q", nodegraph.ErrNodeNotFound, id))
	}
	dx, dy := e.view.ScreenDelta(screenDX, screenDY)
	x, y := n.X+dx, n.Y+dy
	return e.UpdateNode(id, NodePatch{X: &x, Y: &y})
}

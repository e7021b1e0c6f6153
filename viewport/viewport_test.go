package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestZoomKeepsCursorPoint(t *testing.T) {
	tr := New(800, 600)

	wx, wy := tr.ScreenToWorld(400, 300)
	assert.True(t, tr.Zoom(400, 300, ZoomIn))

	v := tr.Viewport()
	assert.InDelta(t, 1.1, v.Scale, eps)
	assert.InDelta(t, 800/1.1, v.Width, eps)
	assert.InDelta(t, 600/1.1, v.Height, eps)

	gx, gy := tr.ScreenToWorld(400, 300)
	assert.InDelta(t, wx, gx, eps)
	assert.InDelta(t, wy, gy, eps)
	assert.InDelta(t, 400-400/1.1, v.X, eps)
}

func TestZoomClamps(t *testing.T) {
	tr := New(800, 600)
	for range 100 {
		tr.Zoom(0, 0, ZoomIn)
	}
	assert.Equal(t, MaxScale, tr.Viewport().Scale)
	assert.False(t, tr.Zoom(0, 0, ZoomIn))

	for range 200 {
		tr.Zoom(0, 0, ZoomOut)
	}
	assert.Equal(t, MinScale, tr.Viewport().Scale)
	assert.False(t, tr.Zoom(0, 0, ZoomOut))
}

func TestPanAndScreenDelta(t *testing.T) {
	tr := New(800, 600)
	tr.Apply(Change{X: 0, Y: 0, Scale: ptr(2)})

	dx, dy := tr.ScreenDelta(100, 50)
	assert.InDelta(t, 50, dx, eps)
	assert.InDelta(t, 25, dy, eps)

	tr.Pan(100, 50)
	v := tr.Viewport()
	assert.InDelta(t, -50, v.X, eps)
	assert.InDelta(t, -25, v.Y, eps)
}

func TestWorldScreenInverse(t *testing.T) {
	tr := New(1024, 768)
	tr.Zoom(300, 200, ZoomIn)
	tr.Pan(-40, 15)

	sx, sy := tr.WorldToScreen(123, 456)
	x, y := tr.ScreenToWorld(sx, sy)
	assert.InDelta(t, 123, x, 1e-6)
	assert.InDelta(t, 456, y, 1e-6)
}

func TestSetCanvasSizeKeepsScale(t *testing.T) {
	tr := New(800, 600)
	tr.Apply(Change{Scale: ptr(2)})
	tr.SetCanvasSize(1000, 500)

	v := tr.Viewport()
	assert.InDelta(t, 2, v.Scale, eps)
	assert.InDelta(t, 500, v.Width, eps)
	assert.InDelta(t, 250, v.Height, eps)
}

func ptr(f float64) *float64 { return &f }

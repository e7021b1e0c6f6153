package server

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/meikuraledutech/nodegraph/viewport"
)

type zoomBody struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Direction string  `json:"direction"` // "in", "out"
}

type sizeBody struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// minimapView is everything the minimap component draws.
type minimapView struct {
	Minimap viewport.Minimap `json:"minimap"`
	View    viewport.Rect    `json:"view"`
	Nodes   []viewport.Rect  `json:"nodes"`
}

func (s *Server) getViewport(c fiber.Ctx) error {
	return c.JSON(s.ed.Viewport())
}

func (s *Server) putViewport(c fiber.Ctx) error {
	var v viewport.Viewport
	if err := c.Bind().JSON(&v); err != nil {
		return badBody(c)
	}
	s.ed.SetViewport(v)
	return c.JSON(s.ed.Viewport())
}

func (s *Server) putCanvas(c fiber.Ctx) error {
	var body sizeBody
	if err := c.Bind().JSON(&body); err != nil {
		return badBody(c)
	}
	if body.Width <= 0 || body.Height <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "canvas size must be positive"})
	}
	s.ed.SetCanvasSize(body.Width, body.Height)
	return c.JSON(s.ed.Viewport())
}

func (s *Server) zoom(c fiber.Ctx) error {
	var body zoomBody
	if err := c.Bind().JSON(&body); err != nil {
		return badBody(c)
	}
	var dir viewport.Direction
	switch body.Direction {
	case "in":
		dir = viewport.ZoomIn
	case "out":
		dir = viewport.ZoomOut
	default:
		return badBody(c)
	}
	s.ed.ZoomAt(body.X, body.Y, dir)
	return c.JSON(s.ed.Viewport())
}

func (s *Server) pan(c fiber.Ctx) error {
	var body deltaBody
	if err := c.Bind().JSON(&body); err != nil {
		return badBody(c)
	}
	s.ed.Pan(body.DX, body.DY)
	return c.JSON(s.ed.Viewport())
}

// minimap returns the projection for the requested pixel size, falling back
// to the configured size for missing or malformed query values.
func (s *Server) minimap(c fiber.Ctx) viewport.Minimap {
	w := queryFloat(c, "width", s.opts.MinimapWidth)
	h := queryFloat(c, "height", s.opts.MinimapHeight)
	return s.ed.Minimap(w, h)
}

func queryFloat(c fiber.Ctx, key string, def float64) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func (s *Server) getMinimap(c fiber.Ctx) error {
	m := s.minimap(c)
	return c.JSON(minimapView{
		Minimap: m,
		View:    m.ViewRect(s.ed.Viewport()),
		Nodes:   m.NodeRects(s.ed.Nodes()),
	})
}

func (s *Server) minimapChange(c fiber.Ctx) error {
	var change viewport.Change
	if err := c.Bind().JSON(&change); err != nil {
		return badBody(c)
	}
	s.ed.ApplyViewportChange(change)
	return c.JSON(s.ed.Viewport())
}

// minimapClick centers the canvas on the world point under a click given
// in minimap pixels.
func (s *Server) minimapClick(c fiber.Ctx) error {
	var p pointBody
	if err := c.Bind().JSON(&p); err != nil {
		return badBody(c)
	}
	m := s.minimap(c)
	s.ed.ApplyViewportChange(m.CenterOn(p.X, p.Y, s.ed.Viewport()))
	return c.JSON(s.ed.Viewport())
}

package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/editor"
)

type portRef struct {
	NodeID string `json:"nodeId"`
	PortID string `json:"portId"`
}

type pointBody struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) listEdges(c fiber.Ctx) error {
	return c.JSON(s.ed.Edges())
}

func (s *Server) addEdge(c fiber.Ctx) error {
	var e nodegraph.Edge
	if err := c.Bind().JSON(&e); err != nil {
		return badBody(c)
	}
	id, err := s.ed.AddEdge(e)
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// removeEdge answers 204 whether or not the edge existed.
func (s *Server) removeEdge(c fiber.Ctx) error {
	s.ed.RemoveEdge(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Pending connection ───────────────────────────────────────────────

func (s *Server) getConnection(c fiber.Ctx) error {
	conn, ok := s.ed.PendingConnection()
	if !ok {
		return notFound(c, "connection")
	}
	return c.JSON(conn)
}

func (s *Server) beginConnection(c fiber.Ctx) error {
	var ref portRef
	if err := c.Bind().JSON(&ref); err != nil {
		return badBody(c)
	}
	if err := s.ed.BeginConnection(ref.NodeID, ref.PortID); err != nil {
		return s.fail(c, err)
	}
	conn, _ := s.ed.PendingConnection()
	return c.Status(fiber.StatusCreated).JSON(conn)
}

// moveConnection takes the pointer position in canvas pixels.
func (s *Server) moveConnection(c fiber.Ctx) error {
	var p pointBody
	if err := c.Bind().JSON(&p); err != nil {
		return badBody(c)
	}
	s.ed.MoveConnection(p.X, p.Y)
	conn, ok := s.ed.PendingConnection()
	if !ok {
		return s.fail(c, editor.ErrNoPendingConnection)
	}
	return c.JSON(conn)
}

func (s *Server) finishConnection(c fiber.Ctx) error {
	var ref portRef
	if err := c.Bind().JSON(&ref); err != nil {
		return badBody(c)
	}
	id, err := s.ed.FinishConnection(ref.NodeID, ref.PortID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) cancelConnection(c fiber.Ctx) error {
	s.ed.CancelConnection()
	return c.SendStatus(fiber.StatusNoContent)
}

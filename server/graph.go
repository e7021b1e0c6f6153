package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/meikuraledutech/nodegraph"
)

func (s *Server) getGraph(c fiber.Ctx) error {
	return c.JSON(s.ed.ExportGraph())
}

// putGraph imports a raw JSON document, replacing the session.
func (s *Server) putGraph(c fiber.Ctx) error {
	g, err := nodegraph.ParseDocument(c.Body())
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.importGraph(g); err != nil {
		return s.fail(c, err)
	}
	s.log.Info("graph imported", "nodes", len(g.Nodes), "edges", len(g.Edges))
	return c.JSON(s.ed.Stats())
}

func (s *Server) deleteGraph(c fiber.Ctx) error {
	s.ed.ClearGraph()
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) getStats(c fiber.Ctx) error {
	return c.JSON(s.ed.Stats())
}

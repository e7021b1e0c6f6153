package server

import (
	"github.com/gofiber/fiber/v3"
)

type valueBody struct {
	Value string `json:"value"`
}

// ── Schema ───────────────────────────────────────────────────────────

func (s *Server) createSchema(c fiber.Ctx) error {
	if err := s.store.CreateSchema(c.Context()); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "schema created"})
}

func (s *Server) dropSchema(c fiber.Ctx) error {
	if err := s.store.DropSchema(c.Context()); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "schema dropped"})
}

// ── Documents ────────────────────────────────────────────────────────

func (s *Server) listDocuments(c fiber.Ctx) error {
	names, err := s.store.ListGraphs(c.Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(names)
}

// saveDocument stores the current graph under :name.
func (s *Server) saveDocument(c fiber.Ctx) error {
	g := s.ed.ExportGraph()
	if err := s.store.SaveGraph(c.Context(), c.Params("name"), &g); err != nil {
		return s.fail(c, err)
	}
	s.log.Info("document saved", "name", c.Params("name"), "nodes", len(g.Nodes), "edges", len(g.Edges))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": c.Params("name")})
}

// openDocument loads :name into the session and returns it.
func (s *Server) openDocument(c fiber.Ctx) error {
	g, err := s.store.GetGraph(c.Context(), c.Params("name"))
	if err != nil {
		return s.fail(c, err)
	}
	if g == nil {
		return notFound(c, "document")
	}
	if err := s.importGraph(*g); err != nil {
		return s.fail(c, err)
	}
	s.log.Info("document opened", "name", c.Params("name"))
	return c.JSON(s.ed.ExportGraph())
}

func (s *Server) deleteDocument(c fiber.Ctx) error {
	if err := s.store.DeleteGraph(c.Context(), c.Params("name")); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Preferences ──────────────────────────────────────────────────────

func (s *Server) getPreference(c fiber.Ctx) error {
	v, ok, err := s.store.GetPreference(c.Context(), c.Params("key"))
	if err != nil {
		return s.fail(c, err)
	}
	if !ok {
		return notFound(c, "preference")
	}
	return c.JSON(fiber.Map{"key": c.Params("key"), "value": v})
}

func (s *Server) putPreference(c fiber.Ctx) error {
	var body valueBody
	if err := c.Bind().JSON(&body); err != nil {
		return badBody(c)
	}
	if err := s.store.SetPreference(c.Context(), c.Params("key"), body.Value); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

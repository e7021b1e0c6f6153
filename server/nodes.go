package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/editor"
)

type propertyBody struct {
	Value any `json:"value"`
}

type imageBody struct {
	URL string `json:"url"`
}

type deltaBody struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

func (s *Server) listNodes(c fiber.Ctx) error {
	return c.JSON(s.ed.Nodes())
}

func (s *Server) addNode(c fiber.Ctx) error {
	var n nodegraph.Node
	if err := c.Bind().JSON(&n); err != nil {
		return badBody(c)
	}
	id, err := s.ed.AddNode(n)
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) getNode(c fiber.Ctx) error {
	n, ok := s.ed.Node(c.Params("id"))
	if !ok {
		return notFound(c, "node")
	}
	return c.JSON(n)
}

func (s *Server) updateNode(c fiber.Ctx) error {
	var patch editor.NodePatch
	if err := c.Bind().JSON(&patch); err != nil {
		return badBody(c)
	}
	if err := s.ed.UpdateNode(c.Params("id"), patch); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) removeNode(c fiber.Ctx) error {
	if err := s.ed.RemoveNode(c.Params("id")); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) duplicateNode(c fiber.Ctx) error {
	id, err := s.ed.DuplicateNode(c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) setProperty(c fiber.Ctx) error {
	var body propertyBody
	if err := c.Bind().JSON(&body); err != nil {
		return badBody(c)
	}
	if err := s.ed.UpdateNodeProperty(c.Params("id"), c.Params("key"), body.Value); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) setImage(c fiber.Ctx) error {
	var body imageBody
	if err := c.Bind().JSON(&body); err != nil {
		return badBody(c)
	}
	if err := s.ed.UpdateNodeImage(c.Params("id"), body.URL); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// dragNode moves a node by a pointer delta in canvas pixels.
func (s *Server) dragNode(c fiber.Ctx) error {
	var body deltaBody
	if err := c.Bind().JSON(&body); err != nil {
		return badBody(c)
	}
	if err := s.ed.DragNode(c.Params("id"), body.DX, body.DY); err != nil {
		return s.fail(c, err)
	}
	n, _ := s.ed.Node(c.Params("id"))
	return c.JSON(n)
}

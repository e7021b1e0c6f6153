package server

import (
	"github.com/gofiber/fiber/v3"
)

type selectBody struct {
	ID       string `json:"id"`
	Additive bool   `json:"additive"`
	Toggle   bool   `json:"toggle"`
}

// historyState is what the undo/redo buttons need.
type historyState struct {
	CanUndo         bool   `json:"canUndo"`
	CanRedo         bool   `json:"canRedo"`
	UndoDescription string `json:"undoDescription,omitempty"`
	RedoDescription string `json:"redoDescription,omitempty"`
	UndoDepth       int    `json:"undoDepth"`
	RedoDepth       int    `json:"redoDepth"`
}

func (s *Server) history() historyState {
	st := s.ed.Stats()
	return historyState{
		CanUndo:         s.ed.CanUndo(),
		CanRedo:         s.ed.CanRedo(),
		UndoDescription: st.UndoDescription,
		RedoDescription: st.RedoDescription,
		UndoDepth:       st.UndoDepth,
		RedoDepth:       st.RedoDepth,
	}
}

// ── Selection ────────────────────────────────────────────────────────

func (s *Server) getSelection(c fiber.Ctx) error {
	nodes := s.ed.SelectedNodeIDs()
	edges := s.ed.SelectedEdgeIDs()
	if nodes == nil {
		nodes = []string{}
	}
	if edges == nil {
		edges = []string{}
	}
	return c.JSON(fiber.Map{"nodes": nodes, "edges": edges})
}

func (s *Server) selectEntity(c fiber.Ctx) error {
	var body selectBody
	if err := c.Bind().JSON(&body); err != nil {
		return badBody(c)
	}
	var ok bool
	if body.Toggle {
		ok = s.ed.ToggleSelect(body.ID)
	} else {
		ok = s.ed.Select(body.ID, body.Additive)
	}
	if !ok {
		return notFound(c, "node or edge")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) deselectEntity(c fiber.Ctx) error {
	s.ed.Deselect(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) clearSelection(c fiber.Ctx) error {
	s.ed.ClearSelection()
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) deleteSelected(c fiber.Ctx) error {
	n := s.ed.DeleteSelectedNodes()
	return c.JSON(fiber.Map{"deleted": n})
}

// ── History ──────────────────────────────────────────────────────────

func (s *Server) getHistory(c fiber.Ctx) error {
	return c.JSON(s.history())
}

func (s *Server) undo(c fiber.Ctx) error {
	applied := s.ed.Undo()
	return c.JSON(fiber.Map{"applied": applied, "history": s.history()})
}

func (s *Server) redo(c fiber.Ctx) error {
	applied := s.ed.Redo()
	return c.JSON(fiber.Map{"applied": applied, "history": s.history()})
}

func (s *Server) clearHistory(c fiber.Ctx) error {
	s.ed.ClearHistory()
	return c.SendStatus(fiber.StatusNoContent)
}

// Package server exposes an editor session over HTTP for the browser UI.
// Requests are applied one at a time, in arrival order.
package server

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/editor"
	"github.com/meikuraledutech/nodegraph/viewport"
)

// Options tunes the API.
type Options struct {
	MinimapWidth  float64
	MinimapHeight float64
}

// Server holds one editor session and the document store.
type Server struct {
	mu    sync.Mutex
	ed    *editor.Editor
	store nodegraph.Store
	log   *slog.Logger
	opts  Options
}

// New builds the fiber app serving ed and store.
func New(ed *editor.Editor, store nodegraph.Store, log *slog.Logger, opts Options) *fiber.App {
	if opts.MinimapWidth <= 0 {
		opts.MinimapWidth = viewport.DefaultMinimapWidth
	}
	if opts.MinimapHeight <= 0 {
		opts.MinimapHeight = viewport.DefaultMinimapHeight
	}
	s := &Server{ed: ed, store: store, log: log, opts: opts}

	app := fiber.New()
	s.routes(app)
	return app
}

func (s *Server) routes(app *fiber.App) {
	h := s.locked

	// ── Schema ────────────────────────────────────────────────────────
	app.Post("/schema", h(s.createSchema))
	app.Delete("/schema", h(s.dropSchema))

	// ── Graph ─────────────────────────────────────────────────────────
	app.Get("/graph", h(s.getGraph))
	app.Put("/graph", h(s.putGraph))
	app.Delete("/graph", h(s.deleteGraph))
	app.Get("/stats", h(s.getStats))

	// ── Nodes ─────────────────────────────────────────────────────────
	app.Get("/nodes", h(s.listNodes))
	app.Post("/nodes", h(s.addNode))
	app.Get("/nodes/:id", h(s.getNode))
	app.Patch("/nodes/:id", h(s.updateNode))
	app.Delete("/nodes/:id", h(s.removeNode))
	app.Post("/nodes/:id/duplicate", h(s.duplicateNode))
	app.Put("/nodes/:id/properties/:key", h(s.setProperty))
	app.Put("/nodes/:id/image", h(s.setImage))
	app.Post("/nodes/:id/drag", h(s.dragNode))

	// ── Edges ─────────────────────────────────────────────────────────
	app.Get("/edges", h(s.listEdges))
	app.Post("/edges", h(s.addEdge))
	app.Delete("/edges/:id", h(s.removeEdge))

	// ── Pending connection ────────────────────────────────────────────
	app.Get("/connection", h(s.getConnection))
	app.Post("/connection", h(s.beginConnection))
	app.Put("/connection", h(s.moveConnection))
	app.Post("/connection/finish", h(s.finishConnection))
	app.Delete("/connection", h(s.cancelConnection))

	// ── Selection ─────────────────────────────────────────────────────
	app.Get("/selection", h(s.getSelection))
	app.Post("/selection", h(s.selectEntity))
	app.Delete("/selection", h(s.clearSelection))
	app.Delete("/selection/:id", h(s.deselectEntity))
	app.Post("/selection/delete", h(s.deleteSelected))

	// ── History ───────────────────────────────────────────────────────
	app.Get("/history", h(s.getHistory))
	app.Post("/history/undo", h(s.undo))
	app.Post("/history/redo", h(s.redo))
	app.Delete("/history", h(s.clearHistory))

	// ── Viewport ──────────────────────────────────────────────────────
	app.Get("/viewport", h(s.getViewport))
	app.Put("/viewport", h(s.putViewport))
	app.Put("/canvas", h(s.putCanvas))
	app.Post("/viewport/zoom", h(s.zoom))
	app.Post("/viewport/pan", h(s.pan))
	app.Get("/minimap", h(s.getMinimap))
	app.Post("/minimap/change", h(s.minimapChange))
	app.Post("/minimap/click", h(s.minimapClick))

	// ── Documents ─────────────────────────────────────────────────────
	app.Get("/documents", h(s.listDocuments))
	app.Post("/documents/:name", h(s.saveDocument))
	app.Get("/documents/:name", h(s.openDocument))
	app.Delete("/documents/:name", h(s.deleteDocument))

	// ── Preferences ───────────────────────────────────────────────────
	app.Get("/preferences/:key", h(s.getPreference))
	app.Put("/preferences/:key", h(s.putPreference))
}

// locked serializes handlers so the editor sees one request at a time.
func (s *Server) locked(fn fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return fn(c)
	}
}

// statusOf maps core errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, nodegraph.ErrInvalidDocument),
		errors.Is(err, nodegraph.ErrInvalidConfig),
		errors.Is(err, nodegraph.ErrInvalidName),
		errors.Is(err, nodegraph.ErrInvalidPort),
		errors.Is(err, nodegraph.ErrLimitExceeded),
		errors.Is(err, nodegraph.ErrDirectionMismatch),
		errors.Is(err, editor.ErrNoPendingConnection):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, nodegraph.ErrNodeNotFound),
		errors.Is(err, nodegraph.ErrEdgeNotFound),
		errors.Is(err, nodegraph.ErrPortNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, nodegraph.ErrDuplicateEdge),
		errors.Is(err, nodegraph.ErrDuplicateNode):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

func (s *Server) fail(c fiber.Ctx, err error) error {
	code := statusOf(err)
	if code >= fiber.StatusInternalServerError {
		s.log.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
	} else {
		s.log.Warn("request rejected", "method", c.Method(), "path", c.Path(), "err", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func badBody(c fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
}

func notFound(c fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": what + " not found"})
}

// importGraph replaces the session with g: nodes, edges and config, and
// drops history that referred to the old graph.
func (s *Server) importGraph(g nodegraph.Graph) error {
	if err := s.ed.LoadGraph(g); err != nil {
		return err
	}
	if err := s.ed.Reconfigure(g.Config); err != nil {
		return err
	}
	s.ed.ClearHistory()
	return nil
}

// Package editor is the graph store behind the node editor. It is the only
// code that mutates nodes and edges: every change is validated up front,
// applied in full, recorded in history when significant, and announced to
// subscribers.
//
// An Editor is not safe for concurrent use. Callers serialize access the
// way a UI event loop does.
package editor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/history"
	"github.com/meikuraledutech/nodegraph/selection"
	"github.com/meikuraledutech/nodegraph/viewport"
)

// DuplicateOffset is how far a duplicated node is shifted on both axes.
const DuplicateOffset = 20

// Default canvas size used until the UI reports its own.
const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)

var ErrNoPendingConnection = errors.New("editor: no connection in progress")

// EventKind says what part of the editor state changed.
type EventKind int

const (
	GraphChanged EventKind = iota
	SelectionChanged
	HistoryChanged
	ViewportChanged
	ConnectionChanged
)

func (k EventKind) String() string {
	switch k {
	case GraphChanged:
		return "graph"
	case SelectionChanged:
		return "selection"
	case HistoryChanged:
		return "history"
	case ViewportChanged:
		return "viewport"
	case ConnectionChanged:
		return "connection"
	}
	return "unknown"
}

// Event is delivered to subscribers after a change has been applied.
type Event struct {
	Kind EventKind
}

// Listener receives change events.
type Listener func(Event)

type subscriber struct {
	id int
	fn Listener
}

// Editor owns the live graph and everything derived from it.
type Editor struct {
	cfg       nodegraph.Config
	graph     nodegraph.Graph
	history   *history.Engine
	selection *selection.Manager
	view      *viewport.Transform
	draft     *Connection

	minimapPadding float64
	historyLimit   int

	subs   []subscriber
	nextID int

	newID func() string
	log   *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithHistoryLimit sets the undo/redo stack capacity.
func WithHistoryLimit(n int) Option {
	return func(e *Editor) { e.historyLimit = n }
}

// WithIDGenerator replaces uuid-based id generation.
func WithIDGenerator(fn func() string) Option {
	return func(e *Editor) { e.newID = fn }
}

// WithCanvasSize sets the initial canvas pixel size.
func WithCanvasSize(w, h float64) Option {
	return func(e *Editor) { e.view = viewport.New(w, h) }
}

// WithMinimapPadding sets the world-space padding around the graph bounds.
func WithMinimapPadding(p float64) Option {
	return func(e *Editor) { e.minimapPadding = p }
}

// New creates an editor with an empty graph. Zero config fields take the
// built-in defaults.
func New(cfg nodegraph.Config, opts ...Option) (*Editor, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Editor{
		cfg:            cfg,
		graph:          nodegraph.Graph{Nodes: []nodegraph.Node{}, Edges: []nodegraph.Edge{}, Config: cfg},
		minimapPadding: viewport.DefaultPadding,
		newID:          uuid.NewString,
		log:            slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.view == nil {
		e.view = viewport.New(DefaultCanvasWidth, DefaultCanvasHeight)
	}
	e.history = history.New(e.historyLimit)
	e.selection = selection.New(selection.MarkerFunc(e.mark))
	return e, nil
}

// Config returns the active config.
func (e *Editor) Config() nodegraph.Config { return e.cfg }

// Reconfigure replaces the config after validating it. Existing nodes and
// edges are kept even when they exceed the new caps; only later additions
// are refused.
func (e *Editor) Reconfigure(cfg nodegraph.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	e.graph.Config = cfg
	e.log.Debug("editor reconfigured", "max_nodes", cfg.MaxNodes, "max_edges", cfg.MaxEdges)
	return nil
}

// Subscribe registers l for change events and returns a function that
// removes it.
func (e *Editor) Subscribe(l Listener) (cancel func()) {
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, subscriber{id: id, fn: l})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

func (e *Editor) emit(kinds ...EventKind) {
	subs := append([]subscriber(nil), e.subs...)
	for _, k := range kinds {
		for _, s := range subs {
			s.fn(Event{Kind: k})
		}
	}
}

// snapshot is the normalized deep copy used for exports and history.
func (e *Editor) snapshot() nodegraph.Graph {
	g := e.graph.Normalized()
	g.Config = e.cfg
	return g
}

// commit records the change from before to the current state.
func (e *Editor) commit(kind history.Kind, description string, before nodegraph.Graph) {
	if e.history.Record(kind, description, before, e.snapshot()) {
		e.log.Debug("history recorded", "kind", kind, "description", description)
	}
	e.emit(GraphChanged, HistoryChanged)
}

// reject logs a refused operation and passes the error through.
func (e *Editor) reject(op string, err error) error {
	e.log.Debug("operation rejected", "op", op, "err", err)
	return err
}

// restore swaps in the nodes and edges of g. The config is not touched.
// Selection is pruned to ids that still exist and mirrored again.
func (e *Editor) restore(g nodegraph.Graph) {
	g = g.Normalized()
	e.graph.Nodes = g.Nodes
	e.graph.Edges = g.Edges
	nodegraph.ApplyNodeDefaults(&e.graph)

	e.selection.Retain(e.exists)
	for _, id := range e.selection.IDs() {
		e.mark(id, true)
	}
	if e.draft != nil && e.graph.Node(e.draft.SourceNodeID) == nil {
		e.draft = nil
	}
}

func (e *Editor) exists(id string) bool {
	return e.graph.NodeIndex(id) >= 0 || e.graph.EdgeIndex(id) >= 0
}

func (e *Editor) mark(id string, selected bool) {
	if n := e.graph.Node(id); n != nil {
		n.Selected = selected
		return
	}
	if ed := e.graph.Edge(id); ed != nil {
		ed.Selected = selected
	}
}

// Nodes returns a deep copy of the live nodes, selection flags included.
func (e *Editor) Nodes() []nodegraph.Node {
	return e.graph.Clone().Nodes
}

// Edges returns a copy of the live edges, selection flags included.
func (e *Editor) Edges() []nodegraph.Edge {
	return e.graph.Clone().Edges
}

// Node returns a copy of one node.
func (e *Editor) Node(id string) (nodegraph.Node, bool) {
	n := e.graph.Node(id)
	if n == nil {
		return nodegraph.Node{}, false
	}
	return n.Clone(), true
}

// Edge returns a copy of one edge.
func (e *Editor) Edge(id string) (nodegraph.Edge, bool) {
	ed := e.graph.Edge(id)
	if ed == nil {
		return nodegraph.Edge{}, false
	}
	return *ed, true
}

// Stats summarizes editor state.
type Stats struct {
	Nodes           int    `json:"nodes"`
	Edges           int    `json:"edges"`
	Selected        int    `json:"selected"`
	MaxNodes        int    `json:"maxNodes"`
	MaxEdges        int    `json:"maxEdges"`
	UndoDepth       int    `json:"undoDepth"`
	RedoDepth       int    `json:"redoDepth"`
	UndoDescription string `json:"undoDescription,omitempty"`
	RedoDescription string `json:"redoDescription,omitempty"`
}

// Stats returns current counts.
func (e *Editor) Stats() Stats {
	return Stats{
		Nodes:           len(e.graph.Nodes),
		Edges:           len(e.graph.Edges),
		Selected:        e.selection.Len(),
		MaxNodes:        e.cfg.MaxNodes,
		MaxEdges:        e.cfg.MaxEdges,
		UndoDepth:       e.history.UndoLen(),
		RedoDepth:       e.history.RedoLen(),
		UndoDescription: e.history.UndoDescription(),
		RedoDescription: e.history.RedoDescription(),
	}
}

func label(n *nodegraph.Node) string {
	switch {
	case n.Title != "":
		return n.Title
	case n.Kind != "":
		return n.Kind
	}
	return n.ID
}

func portLabel(n *nodegraph.Node, portID string) string {
	if p := n.Port(portID); p != nil && p.Name != "" {
		return fmt.Sprintf("%s.%s", label(n), p.Name)
	}
	return label(n)
}

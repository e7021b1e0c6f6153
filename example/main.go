package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/editor"
	"github.com/meikuraledutech/nodegraph/filestore"
	"github.com/meikuraledutech/nodegraph/viewport"
)

func main() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "nodegraph-example")
	if err != nil {
		log.Fatalf("temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	// Any Store works here; the file store needs no database.
	var store nodegraph.Store = filestore.New(dir)
	if err := store.CreateSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	ed, err := editor.New(nodegraph.Config{MaxNodes: 10, MaxEdges: 20})
	if err != nil {
		log.Fatalf("editor: %v", err)
	}
	ed.Subscribe(func(ev editor.Event) {
		if ev.Kind == editor.HistoryChanged {
			fmt.Printf("  [history] undo: %q\n", ed.UndoDescription())
		}
	})

	// ── Build a small pipeline ───────────────────────────────────────
	source, err := ed.AddNode(nodegraph.Node{
		Kind:  "http-request",
		Title: "Fetch users",
		X:     40,
		Y:     40,
		Ports: []nodegraph.Port{{ID: "body", Name: "body", Direction: nodegraph.Output, DataType: "json"}},
		Properties: map[string]any{
			"url":    "https://example.com/users",
			"method": "GET",
		},
	})
	if err != nil {
		log.Fatalf("add node: %v", err)
	}

	filter, err := ed.AddNode(nodegraph.Node{
		Kind:  "filter",
		Title: "Active only",
		X:     240,
		Y:     40,
		Ports: []nodegraph.Port{
			{ID: "in", Name: "in", Direction: nodegraph.Input, DataType: "json", Required: true},
			{ID: "out", Name: "out", Direction: nodegraph.Output, DataType: "json"},
		},
	})
	if err != nil {
		log.Fatalf("add node: %v", err)
	}

	if _, err := ed.AddEdge(nodegraph.Edge{
		SourceNodeID: source, SourcePortID: "body",
		TargetNodeID: filter, TargetPortID: "in",
	}); err != nil {
		log.Fatalf("add edge: %v", err)
	}

	// ── Rejected connections leave the graph untouched ───────────────
	_, err = ed.AddEdge(nodegraph.Edge{
		SourceNodeID: filter, SourcePortID: "in",
		TargetNodeID: source, TargetPortID: "body",
	})
	fmt.Printf("\ninput→output rejected: %v\n", errors.Is(err, nodegraph.ErrDirectionMismatch))

	// ── Drag a connection out of a port, the way the canvas does ─────
	sink, err := ed.AddNode(nodegraph.Node{
		Kind:  "log",
		Title: "Print",
		X:     440,
		Y:     40,
		Ports: []nodegraph.Port{{ID: "in", Name: "in", Direction: nodegraph.Input}},
	})
	if err != nil {
		log.Fatalf("add node: %v", err)
	}
	if err := ed.BeginConnection(filter, "out"); err != nil {
		log.Fatalf("begin connection: %v", err)
	}
	ed.MoveConnection(430, 70)
	if _, err := ed.FinishConnection(sink, "in"); err != nil {
		log.Fatalf("finish connection: %v", err)
	}

	// ── Edit, duplicate, undo ────────────────────────────────────────
	if err := ed.UpdateNodeProperty(filter, "field", "active"); err != nil {
		log.Fatalf("set property: %v", err)
	}
	copyID, err := ed.DuplicateNode(filter)
	if err != nil {
		log.Fatalf("duplicate: %v", err)
	}
	dup, _ := ed.Node(copyID)
	fmt.Printf("\nduplicated %q at (%.0f, %.0f)\n", dup.Title, dup.X, dup.Y)

	ed.Undo()
	fmt.Printf("after undo: %d nodes, redo: %q\n", len(ed.Nodes()), ed.RedoDescription())

	// Removing a node takes its edges along; one undo restores both.
	if err := ed.RemoveNode(filter); err != nil {
		log.Fatalf("remove node: %v", err)
	}
	fmt.Printf("after remove: %d nodes, %d edges\n", len(ed.Nodes()), len(ed.Edges()))
	ed.Undo()
	fmt.Printf("after undo:   %d nodes, %d edges\n", len(ed.Nodes()), len(ed.Edges()))

	// ── Viewport and minimap ─────────────────────────────────────────
	ed.ZoomAt(400, 300, viewport.ZoomIn)
	v := ed.Viewport()
	fmt.Printf("\nviewport: x=%.1f y=%.1f scale=%.2f\n", v.X, v.Y, v.Scale)

	m := ed.Minimap(viewport.DefaultMinimapWidth, viewport.DefaultMinimapHeight)
	ed.ApplyViewportChange(m.CenterOn(100, 75, ed.Viewport()))
	v = ed.Viewport()
	fmt.Printf("centered from minimap: x=%.1f y=%.1f\n", v.X, v.Y)

	// ── Save and reopen ──────────────────────────────────────────────
	g := ed.ExportGraph()
	if err := store.SaveGraph(ctx, "users-pipeline", &g); err != nil {
		log.Fatalf("save: %v", err)
	}
	loaded, err := store.GetGraph(ctx, "users-pipeline")
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	fmt.Println("\ndocument reopened:")
	printJSON(loaded)

	fmt.Println("\nstats:")
	printJSON(ed.Stats())
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}

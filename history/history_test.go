package history

import (
	"fmt"
	"testing"

	"github.com/meikuraledutech/nodegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphOf(ids ...string) nodegraph.Graph {
	g := nodegraph.Graph{Nodes: []nodegraph.Node{}, Edges: []nodegraph.Edge{}}
	for _, id := range ids {
		g.Nodes = append(g.Nodes, nodegraph.Node{ID: id})
	}
	return g
}

func TestUndoRedo(t *testing.T) {
	e := New(0)
	assert.Equal(t, DefaultLimit, e.Limit())

	require.True(t, e.Record(AddNode, "add a", graphOf(), graphOf("a")))
	require.True(t, e.Record(AddNode, "add b", graphOf("a"), graphOf("a", "b")))

	var applied nodegraph.Graph
	apply := func(g nodegraph.Graph) { applied = g }

	a, ok := e.Undo(apply)
	require.True(t, ok)
	assert.Equal(t, "add b", a.Description)
	assert.Len(t, applied.Nodes, 1)
	assert.Equal(t, "add a", e.UndoDescription())
	assert.Equal(t, "add b", e.RedoDescription())

	a, ok = e.Redo(apply)
	require.True(t, ok)
	assert.Equal(t, AddNode, a.Kind)
	assert.Len(t, applied.Nodes, 2)
	assert.False(t, e.CanRedo())
}

func TestEmptyStacks(t *testing.T) {
	e := New(5)
	called := false
	_, ok := e.Undo(func(nodegraph.Graph) { called = true })
	assert.False(t, ok)
	_, ok = e.Redo(func(nodegraph.Graph) { called = true })
	assert.False(t, ok)
	assert.False(t, called)
	assert.Empty(t, e.UndoDescription())
}

func TestRecordClearsRedo(t *testing.T) {
	e := New(5)
	e.Record(AddNode, "one", graphOf(), graphOf("a"))
	e.Undo(nil)
	require.True(t, e.CanRedo())

	e.Record(AddNode, "two", graphOf(), graphOf("b"))
	assert.False(t, e.CanRedo())
	assert.Equal(t, 1, e.UndoLen())
}

func TestLimitEvictsOldest(t *testing.T) {
	e := New(DefaultLimit)
	for i := range 25 {
		e.Record(MoveNode, fmt.Sprintf("move %d", i), graphOf(), graphOf())
	}
	assert.Equal(t, DefaultLimit, e.UndoLen())
	assert.Equal(t, "move 24", e.UndoDescription())

	for e.CanUndo() {
		e.Undo(nil)
	}
	assert.Equal(t, DefaultLimit, e.RedoLen())
	assert.Equal(t, "move 5", e.RedoDescription())
}

func TestReplayIgnoresRecord(t *testing.T) {
	e := New(5)
	e.Record(AddNode, "add", graphOf(), graphOf("a"))

	e.Undo(func(g nodegraph.Graph) {
		assert.True(t, e.Replaying())
		assert.False(t, e.Record(RemoveNode, "nested", graphOf("a"), graphOf()))
	})
	assert.False(t, e.Replaying())
	assert.Equal(t, 0, e.UndoLen())
	assert.Equal(t, 1, e.RedoLen())
}

func TestClear(t *testing.T) {
	e := New(5)
	e.Record(AddNode, "a", graphOf(), graphOf("a"))
	e.Record(AddNode, "b", graphOf("a"), graphOf("a", "b"))
	e.Undo(nil)
	e.Clear()
	assert.False(t, e.CanUndo())
	assert.False(t, e.CanRedo())
}

func TestKindText(t *testing.T) {
	assert.Equal(t, "duplicate_node", DuplicateNode.String())
	text, err := DeleteSelected.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "delete_selected", string(text))
}

// Package history records before/after graph snapshots and replays them for
// linear undo/redo.
package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/meikuraledutech/nodegraph"
)

// DefaultLimit is the stack capacity used when none is configured.
const DefaultLimit = 20

// Kind classifies a recorded action.
type Kind int

const (
	AddNode Kind = iota
	RemoveNode
	AddEdge
	RemoveEdge
	MoveNode
	UpdateProperty
	DuplicateNode
	DeleteSelected
)

var kindNames = [...]string{
	AddNode:        "add_node",
	RemoveNode:     "remove_node",
	AddEdge:        "add_edge",
	RemoveEdge:     "remove_edge",
	MoveNode:       "move_node",
	UpdateProperty: "update_property",
	DuplicateNode:  "duplicate_node",
	DeleteSelected: "delete_selected",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Action is one undoable step. Before and After are independent snapshots
// and must not be modified after recording.
type Action struct {
	ID          string          `json:"id"`
	Kind        Kind            `json:"kind"`
	Timestamp   time.Time       `json:"timestamp"`
	Before      nodegraph.Graph `json:"-"`
	After       nodegraph.Graph `json:"-"`
	Description string          `json:"description"`
}

// Engine owns the undo and redo stacks. An action lives on exactly one of
// them at a time.
type Engine struct {
	undo      []Action
	redo      []Action
	limit     int
	replaying bool
	now       func() time.Time
}

// New creates an engine whose stacks hold at most limit actions each.
// A non-positive limit selects DefaultLimit.
func New(limit int) *Engine {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Engine{limit: limit, now: time.Now}
}

// Record pushes a new action and discards the redo stack. It is ignored
// while an undo or redo is being applied; the return value reports whether
// the action was kept.
func (e *Engine) Record(kind Kind, description string, before, after nodegraph.Graph) bool {
	if e.replaying {
		return false
	}
	e.undo = push(e.undo, Action{
		ID:          uuid.NewString(),
		Kind:        kind,
		Timestamp:   e.now(),
		Before:      before,
		After:       after,
		Description: description,
	}, e.limit)
	e.redo = nil
	return true
}

// Undo moves the most recent action to the redo stack and calls apply with
// its Before snapshot. apply runs with Replaying set, so anything it
// records is dropped.
func (e *Engine) Undo(apply func(nodegraph.Graph)) (Action, bool) {
	if len(e.undo) == 0 {
		return Action{}, false
	}
	a := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.redo = push(e.redo, a, e.limit)
	e.replay(apply, a.Before)
	return a, true
}

// Redo moves the most recently undone action back to the undo stack and
// calls apply with its After snapshot.
func (e *Engine) Redo(apply func(nodegraph.Graph)) (Action, bool) {
	if len(e.redo) == 0 {
		return Action{}, false
	}
	a := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.undo = push(e.undo, a, e.limit)
	e.replay(apply, a.After)
	return a, true
}

func (e *Engine) replay(apply func(nodegraph.Graph), g nodegraph.Graph) {
	if apply == nil {
		return
	}
	e.replaying = true
	defer func() { e.replaying = false }()
	apply(g)
}

// Clear empties both stacks.
func (e *Engine) Clear() {
	e.undo = nil
	e.redo = nil
}

// Replaying reports whether an undo or redo is currently being applied.
func (e *Engine) Replaying() bool { return e.replaying }

func (e *Engine) CanUndo() bool { return len(e.undo) > 0 }
func (e *Engine) CanRedo() bool { return len(e.redo) > 0 }
func (e *Engine) UndoLen() int  { return len(e.undo) }
func (e *Engine) RedoLen() int  { return len(e.redo) }
func (e *Engine) Limit() int    { return e.limit }

// UndoDescription describes the action the next Undo would revert, or "".
func (e *Engine) UndoDescription() string {
	if len(e.undo) == 0 {
		return ""
	}
	return e.undo[len(e.undo)-1].Description
}

// RedoDescription describes the action the next Redo would reapply, or "".
func (e *Engine) RedoDescription() string {
	if len(e.redo) == 0 {
		return ""
	}
	return e.redo[len(e.redo)-1].Description
}

// push appends a and evicts from the front past limit.
func push(stack []Action, a Action, limit int) []Action {
	stack = append(stack, a)
	if over := len(stack) - limit; over > 0 {
		// Copy down so the evicted snapshots can be collected.
		n := copy(stack, stack[over:])
		clear(stack[n:])
		stack = stack[:n]
	}
	return stack
}

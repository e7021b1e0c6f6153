// Package selection tracks which nodes and edges are selected. It holds ids
// only and is never serialized or recorded in history.
package selection

// Marker mirrors selection state onto the entity with the given id so
// renderers can read it off the entity.
type Marker interface {
	Mark(id string, selected bool)
}

// MarkerFunc adapts a function to Marker.
type MarkerFunc func(id string, selected bool)

func (f MarkerFunc) Mark(id string, selected bool) { f(id, selected) }

// Manager is an insertion-ordered set of selected ids.
type Manager struct {
	ids    []string
	marker Marker
}

// New creates an empty selection. m may be nil.
func New(m Marker) *Manager {
	return &Manager{marker: m}
}

// Select adds id. Without additive the current selection is cleared first.
func (s *Manager) Select(id string, additive bool) {
	if !additive {
		s.Clear()
	}
	if s.Has(id) {
		return
	}
	s.ids = append(s.ids, id)
	s.mark(id, true)
}

// Toggle removes id when selected and adds it additively otherwise.
func (s *Manager) Toggle(id string) {
	if s.Has(id) {
		s.Deselect(id)
		return
	}
	s.Select(id, true)
}

// Deselect removes id. Unknown ids are ignored.
func (s *Manager) Deselect(id string) {
	for i, x := range s.ids {
		if x == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			s.mark(id, false)
			return
		}
	}
}

// Clear deselects everything.
func (s *Manager) Clear() {
	ids := s.ids
	s.ids = nil
	for _, id := range ids {
		s.mark(id, false)
	}
}

// Retain keeps only the ids for which keep returns true. Dropped ids are
// not marked; they are expected to no longer exist.
func (s *Manager) Retain(keep func(id string) bool) {
	out := s.ids[:0]
	for _, id := range s.ids {
		if keep(id) {
			out = append(out, id)
		}
	}
	clear(s.ids[len(out):])
	s.ids = out
}

// Has reports whether id is selected.
func (s *Manager) Has(id string) bool {
	for _, x := range s.ids {
		if x == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the selected ids in selection order.
func (s *Manager) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected ids.
func (s *Manager) Len() int { return len(s.ids) }

func (s *Manager) mark(id string, selected bool) {
	if s.marker != nil {
		s.marker.Mark(id, selected)
	}
}

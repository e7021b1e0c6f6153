package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder map[string]bool

func (r recorder) Mark(id string, selected bool) { r[id] = selected }

func TestSelectReplacesUnlessAdditive(t *testing.T) {
	marks := recorder{}
	s := New(marks)

	s.Select("a", false)
	s.Select("b", true)
	assert.Equal(t, []string{"a", "b"}, s.IDs())

	s.Select("c", false)
	assert.Equal(t, []string{"c"}, s.IDs())
	assert.Equal(t, recorder{"a": false, "b": false, "c": true}, marks)
}

func TestSelectTwiceKeepsOneEntry(t *testing.T) {
	s := New(nil)
	s.Select("a", true)
	s.Select("a", true)
	assert.Equal(t, 1, s.Len())
}

func TestToggleAndDeselect(t *testing.T) {
	marks := recorder{}
	s := New(marks)

	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("a")
	assert.Equal(t, []string{"b"}, s.IDs())
	assert.False(t, marks["a"])

	s.Deselect("missing")
	s.Deselect("b")
	assert.Zero(t, s.Len())
	assert.False(t, s.Has("b"))
}

func TestRetain(t *testing.T) {
	s := New(nil)
	s.Select("a", true)
	s.Select("b", true)
	s.Select("c", true)

	s.Retain(func(id string) bool { return id != "b" })
	assert.Equal(t, []string{"a", "c"}, s.IDs())
}

func TestIDsIsACopy(t *testing.T) {
	s := New(nil)
	s.Select("a", false)
	ids := s.IDs()
	ids[0] = "z"
	assert.True(t, s.Has("a"))
}

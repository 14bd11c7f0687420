package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessedSet_ZeroValue(t *testing.T) {
	var s ProcessedSet

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("2024-01-01T10:00:00Z"))
	assert.Empty(t, s.Values())

	assert.True(t, s.Add("2024-01-01T10:00:00Z"))
	assert.True(t, s.Contains("2024-01-01T10:00:00Z"))
}

func TestProcessedSet_NilReceiver(t *testing.T) {
	var s *ProcessedSet

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("x"))
	assert.Nil(t, s.Values())
}

func TestNewProcessedSet_DropsDuplicatesAndEmpties(t *testing.T) {
	s := NewProcessedSet("a", "b", "", "a", "c")

	assert.Equal(t, []string{"a", "b", "c"}, s.Values())
	assert.Equal(t, 3, s.Len())
}

func TestProcessedSet_Add(t *testing.T) {
	s := NewProcessedSet("a")

	assert.False(t, s.Add("a"), "duplicate add must not change the set")
	assert.False(t, s.Add(""), "empty id must be ignored")
	assert.True(t, s.Add("b"))
	assert.Equal(t, []string{"a", "b"}, s.Values())
}

func TestProcessedSet_Union(t *testing.T) {
	prev := NewProcessedSet("a", "b")
	added := NewProcessedSet("b", "c")

	u := prev.Union(added)

	assert.Equal(t, []string{"a", "b", "c"}, u.Values())
	// Inputs untouched
	assert.Equal(t, []string{"a", "b"}, prev.Values())
	assert.Equal(t, []string{"b", "c"}, added.Values())
}

func TestProcessedSet_UnionWithNil(t *testing.T) {
	prev := NewProcessedSet("a")

	u := prev.Union(nil)

	assert.Equal(t, []string{"a"}, u.Values())
}

func TestProcessedSet_ValuesIsCopy(t *testing.T) {
	s := NewProcessedSet("a")
	vals := s.Values()
	vals[0] = "mutated"

	assert.True(t, s.Contains("a"))
	assert.Equal(t, []string{"a"}, s.Values())
}

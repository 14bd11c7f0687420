package domain

// ProcessedSet is the ordered, duplicate-free set of submission timestamps
// that have already been merged into the target presentation.
// The zero value is an empty set ready to use.
type ProcessedSet struct {
	ids   []string
	index map[string]struct{}
}

// NewProcessedSet creates a set from ids, dropping duplicates and empties.
func NewProcessedSet(ids ...string) *ProcessedSet {
	s := &ProcessedSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Contains reports whether id is in the set.
func (s *ProcessedSet) Contains(id string) bool {
	if s == nil || s.index == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Add appends id if it is non-empty and not already present.
// Returns true if the set changed.
func (s *ProcessedSet) Add(id string) bool {
	if id == "" || s.Contains(id) {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Union returns a new set holding s followed by the members of other.
func (s *ProcessedSet) Union(other *ProcessedSet) *ProcessedSet {
	out := NewProcessedSet(s.Values()...)
	for _, id := range other.Values() {
		out.Add(id)
	}
	return out
}

// Values returns the members in insertion order.
func (s *ProcessedSet) Values() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of members.
func (s *ProcessedSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

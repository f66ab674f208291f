package pointedit

import "sort"

// Selection is an immutable set of entity indices. The zero value is the
// empty selection. Every method that changes membership returns a new
// Selection and leaves the receiver untouched, so a Selection can be shared
// between snapshots freely.
type Selection struct {
	ids []int // sorted, unique
}

// NewSelection builds a selection from ids. Duplicates and negative ids are dropped.
func NewSelection(ids ...int) Selection {
	if len(ids) == 0 {
		return Selection{}
	}
	buf := make([]int, 0, len(ids))
	for _, id := range ids {
		if id >= 0 {
			buf = append(buf, id)
		}
	}
	sort.Ints(buf)
	out := buf[:0]
	for i, id := range buf {
		if i > 0 && buf[i-1] == id {
			continue
		}
		out = append(out, id)
	}
	return Selection{ids: out}
}

// Len returns the number of selected indices.
func (s Selection) Len() int {
	return len(s.ids)
}

// Has reports whether id is selected.
func (s Selection) Has(id int) bool {
	i := sort.SearchInts(s.ids, id)
	return i < len(s.ids) && s.ids[i] == id
}

// Indices returns the selected indices in ascending order. The caller owns
// the returned slice.
func (s Selection) Indices() []int {
	if len(s.ids) == 0 {
		return nil
	}
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// With returns s plus id.
func (s Selection) With(id int) Selection {
	if id < 0 || s.Has(id) {
		return s
	}
	i := sort.SearchInts(s.ids, id)
	out := make([]int, 0, len(s.ids)+1)
	out = append(out, s.ids[:i]...)
	out = append(out, id)
	out = append(out, s.ids[i:]...)
	return Selection{ids: out}
}

// Without returns s minus id.
func (s Selection) Without(id int) Selection {
	i := sort.SearchInts(s.ids, id)
	if i >= len(s.ids) || s.ids[i] != id {
		return s
	}
	out := make([]int, 0, len(s.ids)-1)
	out = append(out, s.ids[:i]...)
	out = append(out, s.ids[i+1:]...)
	return Selection{ids: out}
}

// Union returns the indices present in either s or other.
func (s Selection) Union(other Selection) Selection {
	if len(other.ids) == 0 {
		return s
	}
	if len(s.ids) == 0 {
		return other
	}
	out := make([]int, 0, len(s.ids)+len(other.ids))
	i, j := 0, 0
	for i < len(s.ids) && j < len(other.ids) {
		switch {
		case s.ids[i] < other.ids[j]:
			out = append(out, s.ids[i])
			i++
		case s.ids[i] > other.ids[j]:
			out = append(out, other.ids[j])
			j++
		default:
			out = append(out, s.ids[i])
			i++
			j++
		}
	}
	out = append(out, s.ids[i:]...)
	out = append(out, other.ids[j:]...)
	return Selection{ids: out}
}

// Clamp drops every index >= n, i.e. indices that do not refer to an entity
// in a list of length n.
func (s Selection) Clamp(n int) Selection {
	i := sort.SearchInts(s.ids, n)
	if i == len(s.ids) {
		return s
	}
	return Selection{ids: s.ids[:i:i]}
}

// Equal reports whether s and other hold the same indices.
func (s Selection) Equal(other Selection) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

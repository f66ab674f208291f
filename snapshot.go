package pointedit

// Snapshot is the observable result of the editor after an event. It owns
// its slices; callers may keep snapshots indefinitely.
type Snapshot struct {
	State    State
	Entities []Point
	// Selected never holds an index >= len(Entities).
	Selected Selection
	// Hovered is the index of the entity under the pointer, or -1.
	Hovered int
	// DragRegion is the rubber-band rectangle while selecting, nil otherwise.
	DragRegion *Region
	View       View
}

// NewSnapshot derives the observable snapshot of a state and context.
// Indices that do not refer to an existing entity are dropped rather than
// reported.
func NewSnapshot(state State, ctx Context) Snapshot {
	n := len(ctx.Entities)
	snap := Snapshot{
		State:    state,
		Entities: clonePoints(ctx.Entities),
		Selected: ctx.Selected.Clamp(n),
		Hovered:  ctx.Hovered,
		View:     ctx.View,
	}
	if snap.Entities == nil {
		snap.Entities = []Point{}
	}
	if snap.Hovered < 0 || snap.Hovered >= n {
		snap.Hovered = -1
	}
	if state == StateSelecting && ctx.Session != nil && ctx.Session.HasEnd {
		s := ctx.Session
		snap.DragRegion = &Region{X1: s.Start.X, Y1: s.Start.Y, X2: s.End.X, Y2: s.End.Y}
	}
	return snap
}

// IsSelected reports whether entity i is selected.
func (s Snapshot) IsSelected(i int) bool {
	return s.Selected.Has(i)
}

// Equal reports whether s and o describe the same observable state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.State != o.State || s.Hovered != o.Hovered || s.View != o.View {
		return false
	}
	if !s.Selected.Equal(o.Selected) || len(s.Entities) != len(o.Entities) {
		return false
	}
	for i := range s.Entities {
		if s.Entities[i] != o.Entities[i] {
			return false
		}
	}
	switch {
	case s.DragRegion == nil && o.DragRegion == nil:
		return true
	case s.DragRegion == nil || o.DragRegion == nil:
		return false
	}
	return *s.DragRegion == *o.DragRegion
}

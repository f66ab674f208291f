package pointedit

import "math"

// Input is the optional construction input of an editor. Zero fields take
// their defaults; malformed values are clamped rather than rejected.
type Input struct {
	// Entities is the initial entity list. It is copied.
	Entities []Point
	// View is the initial pan/zoom transform. Nil means DefaultView.
	View *View
	// Speed is the wheel sensitivity. Values <= 0 fall back to DefaultSpeed.
	Speed float64
	// HitThreshold is the hover and press hit distance. Values <= 0 fall
	// back to DefaultHitThreshold.
	HitThreshold float64
	// MoveThreshold is the press-to-drag distance. Values <= 0 fall back to
	// DefaultMoveThreshold.
	MoveThreshold float64
}

// Held records the entity under the pointer at press time.
type Held struct {
	Index       int
	Point       Point // position before the drag
	WasSelected bool  // selection state before the press
	// Deleted is set when the entity was removed while the session was
	// open. The release then leaves the selection alone.
	Deleted bool
}

// DragSession is the transient state of a press. It exists only while the
// editor is in StateHold, StateSelecting or StateMoving.
type DragSession struct {
	Start  Point
	End    Point
	HasEnd bool
	// Held is nil when the press landed on empty space.
	Held *Held
	// Relations holds the pre-drag position of every entity selected at
	// press time. It is never modified after the press.
	Relations map[int]Point
}

// Context is the complete data the reducer operates on. Transition treats it
// as a value: slices and maps reachable from a Context are never modified in
// place, so an old Context stays valid after a transition.
type Context struct {
	Entities []Point
	Selected Selection
	Session  *DragSession
	// Hovered is the index of the entity under the pointer, or -1.
	Hovered int
	View    View
	Speed   float64

	HitThreshold  float64
	MoveThreshold float64

	input Input
}

// NewContext creates the initial context for in.
func NewContext(in Input) Context {
	in = normalizeInput(in)
	return Context{
		Entities:      clonePoints(in.Entities),
		Hovered:       -1,
		View:          *in.View,
		Speed:         in.Speed,
		HitThreshold:  in.HitThreshold,
		MoveThreshold: in.MoveThreshold,
		input:         in,
	}
}

// Input returns a copy of the construction input the context restarts to.
func (c Context) Input() Input {
	in := c.input
	in.Entities = clonePoints(in.Entities)
	if in.View != nil {
		v := *in.View
		in.View = &v
	}
	return in
}

// normalizeInput fills defaults, clamps malformed values, and detaches the
// result from the caller's memory.
func normalizeInput(in Input) Input {
	out := Input{
		Entities:      clonePoints(in.Entities),
		Speed:         in.Speed,
		HitThreshold:  in.HitThreshold,
		MoveThreshold: in.MoveThreshold,
	}
	v := DefaultView
	if in.View != nil {
		v = in.View.sanitize()
	}
	out.View = &v
	if !validPositive(out.Speed) {
		out.Speed = DefaultSpeed
	}
	if !validPositive(out.HitThreshold) {
		out.HitThreshold = DefaultHitThreshold
	}
	if !validPositive(out.MoveThreshold) {
		out.MoveThreshold = DefaultMoveThreshold
	}
	return out
}

func validPositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func clonePoints(ps []Point) []Point {
	if ps == nil {
		return nil
	}
	out := make([]Point, len(ps))
	copy(out, ps)
	return out
}

// Transition computes the state and context that follow ev. It is pure:
// the same arguments always produce the same result and ctx is not modified.
// Events that have no meaning in the current state leave both unchanged.
func Transition(state State, ctx Context, ev Event) (State, Context) {
	// Events handled the same way in every state.
	switch ev.Type {
	case EventPointerLeave:
		ctx.Session = nil
		return StateIdle, ctx
	case EventWheel:
		return state, applyWheel(ctx, ev)
	case EventDelete:
		return state, deleteSelected(ctx)
	case EventRestart:
		return StateIdle, NewContext(ctx.input)
	case EventSetView:
		ctx.View = ev.View.sanitize()
		return state, ctx
	}

	switch state {
	case StateIdle:
		switch ev.Type {
		case EventPointerDown:
			return press(ctx, ev)
		case EventPointerMove:
			ctx.Hovered = FindNearestIndex(ctx.Entities, ev.Point, ctx.HitThreshold)
		}
		return StateIdle, ctx

	case StateHold:
		switch ev.Type {
		case EventPointerDown:
			return repress(ctx, ev)
		case EventPointerUp:
			return releaseClick(ctx, ev)
		case EventPointerMove:
			return holdMove(ctx, ev)
		}
		return StateHold, ctx

	case StateSelecting:
		switch ev.Type {
		case EventPointerDown:
			return repress(ctx, ev)
		case EventPointerMove:
			ctx.Session = withEnd(ctx.Session, ev.Point)
		case EventPointerUp:
			ctx.Session = withEnd(ctx.Session, ev.Point)
			ctx = selectInRegion(ctx, ev.Modifiers)
			ctx.Session = nil
			return StateIdle, ctx
		}
		return StateSelecting, ctx

	case StateMoving:
		switch ev.Type {
		case EventPointerDown:
			return repress(ctx, ev)
		case EventPointerMove:
			ctx.Session = withEnd(ctx.Session, ev.Point)
			ctx = moveSelected(ctx)
		case EventPointerUp:
			ctx.Session = nil
			return StateIdle, ctx
		}
		return StateMoving, ctx
	}
	return state, ctx
}

// press starts a session. A press on an unselected entity selects it at once
// so that a drag carries it along; a press on a selected entity defers any
// selection change to the release.
func press(ctx Context, ev Event) (State, Context) {
	idx := FindNearestIndex(ctx.Entities, ev.Point, ctx.HitThreshold)
	ctx.Hovered = idx

	s := &DragSession{Start: ev.Point}
	if idx >= 0 {
		s.Held = &Held{
			Index:       idx,
			Point:       ctx.Entities[idx],
			WasSelected: ctx.Selected.Has(idx),
		}
		if !s.Held.WasSelected {
			if ev.Modifiers.Shift() {
				ctx.Selected = ctx.Selected.With(idx)
			} else {
				ctx.Selected = NewSelection(idx)
			}
		}
	}
	s.Relations = snapshotRelations(ctx.Entities, ctx.Selected)
	ctx.Session = s
	return StateHold, ctx
}

// repress handles a press that arrives while a session is still open, which
// means the platform lost a release. The open session is cancelled exactly as
// a pointer-leave would cancel it, and the press starts a fresh session.
func repress(ctx Context, ev Event) (State, Context) {
	ctx.Session = nil
	return press(ctx, ev)
}

func snapshotRelations(entities []Point, selected Selection) map[int]Point {
	rel := make(map[int]Point, selected.Len())
	for _, idx := range selected.ids {
		if idx < len(entities) {
			rel[idx] = entities[idx]
		}
	}
	return rel
}

// releaseClick finishes a press that never moved past the move threshold.
func releaseClick(ctx Context, ev Event) (State, Context) {
	s := ctx.Session
	ctx.Session = nil
	if s == nil {
		return StateIdle, ctx
	}

	if s.Held != nil {
		idx := s.Held.Index
		if !s.Held.Deleted && s.Held.WasSelected && idx < len(ctx.Entities) {
			if ev.Modifiers.Shift() {
				ctx.Selected = ctx.Selected.Without(idx)
			} else {
				ctx.Selected = NewSelection(idx)
			}
		}
		return StateIdle, ctx
	}

	newID := len(ctx.Entities)
	entities := make([]Point, newID, newID+1)
	copy(entities, ctx.Entities)
	ctx.Entities = append(entities, ev.Point)
	ctx.Hovered = newID
	if ev.Modifiers.Shift() {
		ctx.Selected = ctx.Selected.With(newID)
	} else {
		ctx.Selected = NewSelection(newID)
	}
	return StateIdle, ctx
}

// holdMove decides between a click, a drag and a rubber band. The move that
// crosses the threshold is applied, so a single move before release counts.
func holdMove(ctx Context, ev Event) (State, Context) {
	s := ctx.Session
	if s == nil {
		return StateIdle, ctx
	}
	if !hasMoved(ev.Point, s.Start, ctx.MoveThreshold) {
		return StateHold, ctx
	}
	ctx.Session = withEnd(s, ev.Point)
	if s.Held != nil {
		return StateMoving, moveSelected(ctx)
	}
	return StateSelecting, ctx
}

// withEnd returns a copy of s with End set to p. Relations are shared.
func withEnd(s *DragSession, p Point) *DragSession {
	if s == nil {
		return nil
	}
	ns := *s
	ns.End = p
	ns.HasEnd = true
	return &ns
}

// moveSelected places every selected entity at its press-time position plus
// the total pointer offset since the press. Offsets are never accumulated
// across moves, so repeated moves cannot drift. Indices without a relation
// or beyond the entity list are skipped.
func moveSelected(ctx Context) Context {
	s := ctx.Session
	if s == nil || !s.HasEnd || len(s.Relations) == 0 {
		return ctx
	}
	d := s.End.Sub(s.Start)
	entities := clonePoints(ctx.Entities)
	for _, idx := range ctx.Selected.ids {
		if idx >= len(entities) {
			continue
		}
		origin, ok := s.Relations[idx]
		if !ok {
			continue
		}
		entities[idx] = origin.Add(d)
	}
	ctx.Entities = entities
	return ctx
}

// selectInRegion replaces the selection with the entities inside the drag
// rectangle, or adds them to it when shift is held.
func selectInRegion(ctx Context, mods KeyModifiers) Context {
	s := ctx.Session
	if s == nil || !s.HasEnd {
		return ctx
	}
	var ids []int
	for i, e := range ctx.Entities {
		if IsInRectangle(e, s.Start, s.End) {
			ids = append(ids, i)
		}
	}
	region := NewSelection(ids...)
	if mods.Shift() {
		ctx.Selected = ctx.Selected.Union(region)
	} else {
		ctx.Selected = region
	}
	return ctx
}

// deleteSelected filters the selected entities out of the list. Later
// entities shift down, so selection and hover are cleared. An open session is
// kept; its stale relations are skipped by moveSelected, and its held entity
// is renumbered or marked deleted.
func deleteSelected(ctx Context) Context {
	if ctx.Selected.Len() == 0 {
		return ctx
	}
	kept := make([]Point, 0, len(ctx.Entities))
	for i, e := range ctx.Entities {
		if !ctx.Selected.Has(i) {
			kept = append(kept, e)
		}
	}
	if s := ctx.Session; s != nil && s.Held != nil && !s.Held.Deleted {
		ctx.Session = withHeld(s, remapHeld(*s.Held, ctx.Selected))
	}
	ctx.Entities = kept
	ctx.Selected = Selection{}
	ctx.Hovered = -1
	return ctx
}

// remapHeld returns h renumbered for an entity list with the removed indices
// filtered out.
func remapHeld(h Held, removed Selection) Held {
	if removed.Has(h.Index) {
		h.Deleted = true
		return h
	}
	shift := 0
	for _, idx := range removed.ids {
		if idx >= h.Index {
			break
		}
		shift++
	}
	h.Index -= shift
	return h
}

// withHeld returns a copy of s holding h. Relations are shared.
func withHeld(s *DragSession, h Held) *DragSession {
	ns := *s
	ns.Held = &h
	return &ns
}

// applyWheel zooms around the pointer when ctrl is held and pans otherwise.
func applyWheel(ctx Context, ev Event) Context {
	if ev.Modifiers.Ctrl() {
		ctx.View = ctx.View.Zoom(ev.Point, ev.Delta.Y, ctx.Speed)
	} else {
		ctx.View = ctx.View.Pan(ev.Delta, ctx.Speed)
	}
	return ctx
}

package pointedit

// --- Handler registry ---

type changeHandler struct {
	id uint32
	fn func(ChangeEvent)
}

type handlerRegistry struct {
	change []changeHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.change = removeChangeHandler(h.reg.change, h.id)
}

func removeChangeHandler(s []changeHandler, id uint32) []changeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnChange registers a callback that runs after every dispatched event with
// the resulting snapshot. Callbacks run in registration order.
func (e *Editor) OnChange(fn func(ChangeEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.change = append(e.handlers.change, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers}
}

func (e *Editor) fireChange(ev ChangeEvent) {
	for _, h := range e.handlers.change {
		h.fn(ev)
	}
	if e.sink != nil {
		e.sink.EmitChange(ev)
	}
}

// --- Event entry points ---

// PointerDown dispatches a press at p, in surface-local coordinates.
func (e *Editor) PointerDown(p Point, mods KeyModifiers) Snapshot {
	return e.Dispatch(Event{Type: EventPointerDown, Point: p, Modifiers: mods})
}

// PointerMove dispatches a pointer movement to p.
func (e *Editor) PointerMove(p Point, mods KeyModifiers) Snapshot {
	return e.Dispatch(Event{Type: EventPointerMove, Point: p, Modifiers: mods})
}

// PointerUp dispatches a release at p.
func (e *Editor) PointerUp(p Point, mods KeyModifiers) Snapshot {
	return e.Dispatch(Event{Type: EventPointerUp, Point: p, Modifiers: mods})
}

// PointerLeave reports that the pointer left the surface. Any drag or
// rubber-band selection in progress is cancelled.
func (e *Editor) PointerLeave(p Point, mods KeyModifiers) Snapshot {
	return e.Dispatch(Event{Type: EventPointerLeave, Point: p, Modifiers: mods})
}

// Wheel dispatches a scroll with the given delta at p. With ctrl held the
// view zooms around p; otherwise it pans.
func (e *Editor) Wheel(p, delta Point, mods KeyModifiers) Snapshot {
	return e.Dispatch(Event{Type: EventWheel, Point: p, Delta: delta, Modifiers: mods})
}

// Delete removes every selected entity.
func (e *Editor) Delete() Snapshot {
	return e.Dispatch(Event{Type: EventDelete})
}

// Restart resets entities, selection and view to the construction input.
func (e *Editor) Restart() Snapshot {
	return e.Dispatch(Event{Type: EventRestart})
}

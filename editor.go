package pointedit

import (
	"github.com/tanema/gween/ease"
)

// ChangeSink is the interface for optional external integration (an ECS
// world, a persistence layer). When set on an Editor, every change event is
// forwarded to it after the OnChange callbacks ran.
type ChangeSink interface {
	EmitChange(event ChangeEvent)
}

// ChangeEvent describes one processed event.
type ChangeEvent struct {
	// Type is the event that was dispatched.
	Type EventType
	// From and To are the states before and after the event.
	From, To State
	// Snapshot is the editor state after the event.
	Snapshot Snapshot
}

// Editor owns the point-editing state machine. It is the only writer of its
// context: every mutation goes through Dispatch (directly or through the
// pointer helpers), and observers receive immutable snapshots.
//
// An Editor is not safe for concurrent use. Events are processed to
// completion in the order they are dispatched.
type Editor struct {
	state State
	ctx   Context
	snap  Snapshot

	sink  ChangeSink
	debug bool

	handlers handlerRegistry

	injectQueue []Event
	runner      *ScriptRunner
	viewTween   *viewAnim
}

// NewEditor creates an editor in StateIdle from the optional construction input.
func NewEditor(in Input) *Editor {
	ctx := NewContext(in)
	e := &Editor{
		state: StateIdle,
		ctx:   ctx,
	}
	e.snap = NewSnapshot(e.state, e.ctx)
	return e
}

// State returns the current interaction state.
func (e *Editor) State() State {
	return e.state
}

// Snapshot returns the snapshot produced by the most recent event.
func (e *Editor) Snapshot() Snapshot {
	return e.snap
}

// Context returns the editor's current context. The returned value shares
// memory with the editor and must be treated as read-only.
func (e *Editor) Context() Context {
	return e.ctx
}

// Dispatch runs ev through the state machine, notifies observers, and returns
// the resulting snapshot. Dispatch never fails; events that do not apply to
// the current state leave it unchanged.
func (e *Editor) Dispatch(ev Event) Snapshot {
	switch ev.Type {
	case EventWheel, EventRestart:
		// Direct user navigation and resets take over from a running animation.
		e.viewTween = nil
	}

	from := e.state
	if e.debug && ev.Type == EventPointerDown && from != StateIdle {
		debugLogf("press while %s: cancelling open session", from)
	}

	e.state, e.ctx = Transition(e.state, e.ctx, ev)
	e.snap = NewSnapshot(e.state, e.ctx)

	if e.debug {
		e.debugLogTransition(ev, from)
		debugCheckContext(e.state, e.ctx)
	}

	e.fireChange(ChangeEvent{Type: ev.Type, From: from, To: e.state, Snapshot: e.snap})
	return e.snap
}

// Update advances one frame: it steps an attached script runner, consumes at
// most one injected event, and advances a running view animation. dt is the
// frame duration in seconds.
func (e *Editor) Update(dt float32) {
	if e.runner != nil {
		e.runner.step(e)
	}
	e.processInjectedInput()

	if e.viewTween != nil {
		anim := e.viewTween
		v := anim.step(dt)
		if anim.done {
			e.viewTween = nil
		}
		e.Dispatch(Event{Type: EventSetView, View: v})
		if anim.done && anim.then != nil {
			e.Dispatch(*anim.then)
		}
	}
}

// AnimateView moves the view to `to` over duration seconds, one step per
// Update. A non-positive duration applies the view at once. Wheel input and
// restart cancel the animation.
func (e *Editor) AnimateView(to View, duration float32, easeFn ease.TweenFunc) {
	to = to.sanitize()
	if duration <= 0 {
		e.viewTween = nil
		e.Dispatch(Event{Type: EventSetView, View: to})
		return
	}
	e.viewTween = newViewAnim(e.ctx.View, to, duration, easeFn)
}

// RestartAnimated animates the view back to the construction view and then
// restarts the editor.
func (e *Editor) RestartAnimated(duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		e.Dispatch(Event{Type: EventRestart})
		return
	}
	e.viewTween = newViewAnim(e.ctx.View, *e.ctx.input.View, duration, easeFn)
	e.viewTween.then = &Event{Type: EventRestart}
}

// ViewAnimating reports whether a view animation is running.
func (e *Editor) ViewAnimating() bool {
	return e.viewTween != nil
}

// SetChangeSink sets the optional external bridge. Pass nil to remove it.
func (e *Editor) SetChangeSink(sink ChangeSink) {
	e.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, every transition
// is logged to stderr and context invariants are checked after each event.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
}

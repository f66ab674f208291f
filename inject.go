package pointedit

// InjectPress queues a pointer press at the given surface coordinates. The
// event is consumed on the next Update call.
func (e *Editor) InjectPress(x, y float64, mods KeyModifiers) {
	e.injectQueue = append(e.injectQueue, Event{
		Type: EventPointerDown, Point: Point{X: x, Y: y}, Modifiers: mods,
	})
}

// InjectMove queues a pointer move. Use this between InjectPress and
// InjectRelease to simulate a drag.
func (e *Editor) InjectMove(x, y float64, mods KeyModifiers) {
	e.injectQueue = append(e.injectQueue, Event{
		Type: EventPointerMove, Point: Point{X: x, Y: y}, Modifiers: mods,
	})
}

// InjectRelease queues a pointer release.
func (e *Editor) InjectRelease(x, y float64, mods KeyModifiers) {
	e.injectQueue = append(e.injectQueue, Event{
		Type: EventPointerUp, Point: Point{X: x, Y: y}, Modifiers: mods,
	})
}

// InjectLeave queues a pointer leave.
func (e *Editor) InjectLeave(x, y float64) {
	e.injectQueue = append(e.injectQueue, Event{
		Type: EventPointerLeave, Point: Point{X: x, Y: y},
	})
}

// InjectWheel queues a wheel event at (x, y) with the given delta.
func (e *Editor) InjectWheel(x, y, dx, dy float64, mods KeyModifiers) {
	e.injectQueue = append(e.injectQueue, Event{
		Type: EventWheel, Point: Point{X: x, Y: y}, Delta: Point{X: dx, Y: dy}, Modifiers: mods,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (e *Editor) InjectClick(x, y float64, mods KeyModifiers) {
	e.InjectPress(x, y, mods)
	e.InjectRelease(x, y, mods)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 3 so that at least one move reaches the target; a
// release without a preceding move is a click, not a drag.
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, frames int, mods KeyModifiers) {
	if frames < 3 {
		frames = 3
	}
	e.InjectPress(fromX, fromY, mods)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		e.InjectMove(x, y, mods)
	}
	e.InjectRelease(toX, toY, mods)
}

// Pending returns the number of queued injected events.
func (e *Editor) Pending() int {
	return len(e.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed.
func (e *Editor) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	e.Dispatch(evt)
	return true
}

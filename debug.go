package pointedit

import (
	"fmt"
	"os"
)

// debugLogf prints a diagnostic line to stderr.
func debugLogf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[pointedit] "+format+"\n", args...)
}

// debugLogTransition prints one line per dispatched event.
func (e *Editor) debugLogTransition(ev Event, from State) {
	switch ev.Type {
	case EventDelete, EventRestart:
		debugLogf("%s: %s -> %s | entities: %d | selected: %d",
			ev.Type, from, e.state, len(e.snap.Entities), e.snap.Selected.Len())
	case EventWheel:
		debugLogf("%s (%.1f,%.1f) delta (%.1f,%.1f) | view: x=%.2f y=%.2f z=%.3f",
			ev.Type, ev.Point.X, ev.Point.Y, ev.Delta.X, ev.Delta.Y,
			e.snap.View.X, e.snap.View.Y, e.snap.View.Z)
	case EventSetView:
		// Emitted every frame during animations; too noisy to log.
	default:
		debugLogf("%s (%.1f,%.1f): %s -> %s | selected: %v | hovered: %d",
			ev.Type, ev.Point.X, ev.Point.Y, from, e.state, e.snap.Selected.ids, e.snap.Hovered)
	}
}

// debugCheckContext warns on stderr when ctx violates an invariant the
// reducer is expected to keep.
func debugCheckContext(state State, ctx Context) {
	for _, v := range contextViolations(state, ctx) {
		debugLogf("warning: %s", v)
	}
}

// contextViolations returns the invariant violations of a state and context.
func contextViolations(state State, ctx Context) []string {
	var out []string
	for _, idx := range ctx.Selected.ids {
		if idx >= len(ctx.Entities) {
			out = append(out, fmt.Sprintf("selected index %d out of range (%d entities)", idx, len(ctx.Entities)))
		}
	}
	if state == StateIdle && ctx.Session != nil {
		out = append(out, "drag session open in idle state")
	}
	if state != StateIdle && ctx.Session == nil {
		out = append(out, fmt.Sprintf("state %s without a drag session", state))
	}
	return out
}

// Package pointedit is the interaction core of a point-editing surface: a
// finite-state controller that turns a raw stream of pointer and wheel events
// into editing intentions.
//
// The editor creates points, selects them by click or rubber band, extends
// and toggles the selection with Shift, drags any number of selected points,
// deletes the selection, and pans or zooms the view with the wheel (Ctrl
// turns scrolling into zoom around the pointer).
//
// # Quick start
//
//	ed := pointedit.NewEditor(pointedit.Input{
//		Entities: pointedit.PointGrid(300, 300, 50),
//	})
//	ed.PointerDown(pointedit.Point{X: 50, Y: 50}, 0)
//	ed.PointerMove(pointedit.Point{X: 80, Y: 50}, 0)
//	snap := ed.PointerUp(pointedit.Point{X: 80, Y: 50}, 0)
//	// snap.Entities[0] is now at (80, 50) and snap.Selected holds 0.
//
// Coordinates are local to the surface. Converting platform coordinates,
// rate-limiting high-frequency moves, and delivering a final leave when the
// surface goes away are the job of an adapter; see the ebitenadapter and
// tcelladapter packages.
//
// # States
//
// The editor is always in one of four states:
//
//	idle -> hold -> selecting -> idle
//	             -> moving    -> idle
//
// A press enters hold. Moving less than the move threshold keeps the press a
// click; moving further turns it into a drag of the selection (the press hit
// an entity) or a rubber-band selection (the press hit empty space). A
// pointer leave cancels whatever is in progress.
//
// # Pure core
//
// [Transition] is the whole machine as a pure function of state, context and
// event. [Editor] wraps it with ownership, change callbacks, an input
// injection queue, a JSON script runner, and tweened view animations (via
// [gween]). Every snapshot it hands out is an independent value.
//
// [gween]: https://github.com/tanema/gween
package pointedit

package pointedit

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func approxPoint(a, b Point, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

func TestViewPan(t *testing.T) {
	v := DefaultView.Pan(Point{10, -5}, 2)
	if v != (View{X: -20, Y: 10, Z: 1}) {
		t.Errorf("Pan = %+v, want {-20 10 1}", v)
	}
}

func TestViewZoomFactor(t *testing.T) {
	v := DefaultView.Zoom(Point{0, 0}, -50, 2)
	if !approxEqual(v.Z, math.E, epsilon) {
		t.Errorf("Z = %v, want e", v.Z)
	}
	v = DefaultView.Zoom(Point{0, 0}, 50, 2)
	if !approxEqual(v.Z, 1/math.E, epsilon) {
		t.Errorf("Z = %v, want 1/e", v.Z)
	}
}

func TestViewZoomKeepsAnchorFixed(t *testing.T) {
	views := []View{DefaultView, {X: 30, Y: -12, Z: 0.5}, {X: -7, Y: 4, Z: 3}}
	anchor := Point{120, 80}
	for _, v := range views {
		content := v.Invert(anchor)
		for _, dy := range []float64{-120, -3, 0, 7, 250} {
			z := v.Zoom(anchor, dy, DefaultSpeed)
			if got := z.Apply(content); !approxPoint(got, anchor, 1e-6) {
				t.Errorf("view %+v zoom %v: anchor moved to %v", v, dy, got)
			}
		}
	}
}

func TestViewApplyInvertRoundTrip(t *testing.T) {
	v := View{X: 15, Y: -40, Z: 2.5}
	p := Point{3, 9}
	s := v.Apply(p)
	if !approxPoint(s, Point{22.5, -17.5}, epsilon) {
		t.Errorf("Apply = %v", s)
	}
	if back := v.Invert(s); !approxPoint(back, p, epsilon) {
		t.Errorf("Invert(Apply(p)) = %v, want %v", back, p)
	}
}

func TestViewSanitize(t *testing.T) {
	v := View{X: math.NaN(), Y: math.Inf(1), Z: -2}.sanitize()
	if v != DefaultView {
		t.Errorf("sanitize = %+v, want %+v", v, DefaultView)
	}
}

func TestWheelPansWithoutCtrl(t *testing.T) {
	e := NewEditor(Input{Speed: 3})
	snap := e.Wheel(Point{50, 50}, Point{4, 10}, 0)
	if snap.View != (View{X: -12, Y: -30, Z: 1}) {
		t.Errorf("View = %+v", snap.View)
	}
}

func TestWheelZoomsWithCtrl(t *testing.T) {
	e := NewEditor(Input{})
	snap := e.Wheel(Point{50, 50}, Point{0, -50}, ModCtrl)
	if !approxEqual(snap.View.Z, math.E, epsilon) {
		t.Errorf("Z = %v, want e", snap.View.Z)
	}
	// The anchor content point is unchanged by the zoom.
	if got := snap.View.Apply(Point{50, 50}); !approxPoint(got, Point{50, 50}, 1e-9) {
		t.Errorf("anchor moved to %v", got)
	}
}

func TestWheelDoesNotChangeStateOrSession(t *testing.T) {
	e := NewEditor(twoPoints())
	e.PointerDown(Point{10, 10}, 0)
	e.PointerMove(Point{40, 10}, 0)
	snap := e.Wheel(Point{40, 10}, Point{0, 5}, 0)
	assertState(t, snap, StateMoving)
	snap = e.PointerMove(Point{60, 10}, 0)
	assertEntities(t, snap, Point{60, 10}, Point{100, 100})
}

func TestAnimateView(t *testing.T) {
	e := NewEditor(Input{})
	e.AnimateView(View{X: 100, Y: -40, Z: 3}, 0.5, ease.Linear)
	if !e.ViewAnimating() {
		t.Fatal("expected a running animation")
	}

	e.Update(0.25)
	v := e.Snapshot().View
	if !approxEqual(v.X, 50, 1e-4) || !approxEqual(v.Y, -20, 1e-4) || !approxEqual(v.Z, 2, 1e-4) {
		t.Errorf("halfway view = %+v", v)
	}

	e.Update(0.25)
	if e.ViewAnimating() {
		t.Error("animation should be finished")
	}
	if got := e.Snapshot().View; got != (View{X: 100, Y: -40, Z: 3}) {
		t.Errorf("final view = %+v", got)
	}
}

func TestAnimateViewZeroDurationApplies(t *testing.T) {
	e := NewEditor(Input{})
	e.AnimateView(View{X: 1, Y: 2, Z: 4}, 0, nil)
	if e.ViewAnimating() {
		t.Error("zero duration should not start an animation")
	}
	if got := e.Snapshot().View; got != (View{X: 1, Y: 2, Z: 4}) {
		t.Errorf("View = %+v", got)
	}
}

func TestWheelCancelsAnimation(t *testing.T) {
	e := NewEditor(Input{})
	e.AnimateView(View{X: 100, Y: 100, Z: 1}, 1, nil)
	e.Update(0.5)
	before := e.Snapshot().View
	e.Wheel(Point{0, 0}, Point{0, 1}, 0)
	if e.ViewAnimating() {
		t.Error("wheel should cancel the animation")
	}
	after := e.Snapshot().View
	e.Update(0.5)
	if e.Snapshot().View != after {
		t.Error("view kept animating after wheel")
	}
	if after.Y != before.Y-2 {
		t.Errorf("wheel pan Y = %v, want %v", after.Y, before.Y-2)
	}
}

func TestRestartAnimated(t *testing.T) {
	start := View{X: 10, Y: 10, Z: 1}
	e := NewEditor(Input{Entities: []Point{{10, 10}}, View: &start})
	e.PointerDown(Point{200, 200}, 0)
	e.PointerUp(Point{200, 200}, 0)
	e.Wheel(Point{0, 0}, Point{20, 0}, 0)

	var restarts int
	e.OnChange(func(ev ChangeEvent) {
		if ev.Type == EventRestart {
			restarts++
		}
	})

	e.RestartAnimated(0.5, ease.OutQuad)
	e.Update(0.25)
	if restarts != 0 {
		t.Fatal("restart dispatched before the animation finished")
	}
	if got := len(e.Snapshot().Entities); got != 2 {
		t.Errorf("entities reset early: %d", got)
	}
	e.Update(0.25)
	if restarts != 1 {
		t.Fatalf("restarts = %d, want 1", restarts)
	}
	snap := e.Snapshot()
	if snap.View != start || len(snap.Entities) != 1 {
		t.Errorf("after restart: view %+v entities %v", snap.View, snap.Entities)
	}
}

package pointedit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultSpeed is the wheel sensitivity used when none (or an invalid one) is given.
const DefaultSpeed = 2.0

// View is the pan/zoom transform of the surface. A content point p is drawn
// at p*Z + (X, Y): scaled by Z about the origin, then offset by (X, Y).
type View struct {
	X float64 `toml:"x" yaml:"x" json:"x"`
	Y float64 `toml:"y" yaml:"y" json:"y"`
	// Z is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Z float64 `toml:"z" yaml:"z" json:"z"`
}

// DefaultView is the identity transform.
var DefaultView = View{X: 0, Y: 0, Z: 1}

// Zoom scales the view by exp(-deltaY / (100/speed)) while keeping anchor
// fixed on screen.
func (v View) Zoom(anchor Point, deltaY, speed float64) View {
	zoom := math.Exp(-deltaY / (100 / speed))
	return View{
		X: v.X*zoom + anchor.X*(1-zoom),
		Y: v.Y*zoom + anchor.Y*(1-zoom),
		Z: v.Z * zoom,
	}
}

// Pan translates the view by -delta*speed.
func (v View) Pan(delta Point, speed float64) View {
	return View{
		X: v.X - delta.X*speed,
		Y: v.Y - delta.Y*speed,
		Z: v.Z,
	}
}

// matrix returns Translate(X, Y) * Scale(Z).
func (v View) matrix() [6]float64 {
	return [6]float64{v.Z, 0, 0, v.Z, v.X, v.Y}
}

// Apply maps a content point to surface coordinates.
func (v View) Apply(p Point) Point {
	return transformPoint(v.matrix(), p)
}

// Invert maps a surface point back to content coordinates. A degenerate view
// (Z == 0) maps points unchanged.
func (v View) Invert(p Point) Point {
	return transformPoint(invertAffine(v.matrix()), p)
}

// sanitize replaces non-finite components and a non-positive scale with the
// defaults.
func (v View) sanitize() View {
	if math.IsNaN(v.X) || math.IsInf(v.X, 0) {
		v.X = 0
	}
	if math.IsNaN(v.Y) || math.IsInf(v.Y, 0) {
		v.Y = 0
	}
	if math.IsNaN(v.Z) || math.IsInf(v.Z, 0) || v.Z <= 0 {
		v.Z = 1
	}
	return v
}

// viewAnim holds active tweens for an animated view change.
type viewAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenZ *gween.Tween
	to     View
	done   bool
	// then is dispatched once after the final frame, if set.
	then *Event
}

func newViewAnim(from, to View, duration float32, easeFn ease.TweenFunc) *viewAnim {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	return &viewAnim{
		tweenX: gween.New(float32(from.X), float32(to.X), duration, easeFn),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, easeFn),
		tweenZ: gween.New(float32(from.Z), float32(to.Z), duration, easeFn),
		to:     to,
	}
}

// step advances all tweens by dt seconds and returns the interpolated view.
// The final frame returns the exact target rather than its float32 rounding.
func (a *viewAnim) step(dt float32) View {
	x, doneX := a.tweenX.Update(dt)
	y, doneY := a.tweenY.Update(dt)
	z, doneZ := a.tweenZ.Update(dt)
	a.done = doneX && doneY && doneZ
	if a.done {
		return a.to
	}
	return View{X: float64(x), Y: float64(y), Z: float64(z)}
}

// Package ebitenadapter feeds Ebitengine mouse, wheel and keyboard input into
// a pointedit.Editor.
//
// Call Adapter.Update once per frame from the game's Update method:
//
//	func (g *Game) Update() error {
//		g.input.Update()
//		return nil
//	}
package ebitenadapter

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pointedit"
)

// DefaultWheelScale converts one wheel notch to the pixel delta the editor's
// zoom and pan formulas expect.
const DefaultWheelScale = 50

// Source is the per-frame input state the adapter polls.
type Source interface {
	CursorPosition() (x, y int)
	MousePressed() bool
	// Wheel returns the wheel offsets of this frame; positive y scrolls up.
	Wheel() (xoff, yoff float64)
	Modifiers() pointedit.KeyModifiers
	KeyJustPressed(key ebiten.Key) bool
	TPS() int
}

// ebitenSource reads input from the running Ebitengine game.
type ebitenSource struct{}

func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenSource) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenSource) Wheel() (float64, float64) { return ebiten.Wheel() }

func (ebitenSource) Modifiers() pointedit.KeyModifiers { return readModifiers() }

func (ebitenSource) KeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

func (ebitenSource) TPS() int { return ebiten.TPS() }

// readModifiers returns the currently held modifier keys.
func readModifiers() pointedit.KeyModifiers {
	var mods pointedit.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= pointedit.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= pointedit.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= pointedit.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= pointedit.ModMeta
	}
	return mods
}

// Adapter translates polled input into editor events. Only one press is
// tracked; the left mouse button is the pointer.
type Adapter struct {
	editor *pointedit.Editor
	src    Source

	// Bounds is the surface area in screen pixels. Events are delivered in
	// coordinates relative to its top-left corner. A zero-size Bounds covers
	// the whole screen.
	Bounds pointedit.Rect
	// WheelScale multiplies raw wheel offsets.
	WheelScale float64
	// KeyBindings enables Delete/Backspace for delete and R for restart.
	KeyBindings bool

	inside   bool
	pressed  bool // button state last frame
	pressing bool // a press was delivered and not yet released or cancelled
	last     pointedit.Point
	detached bool
}

// New creates an adapter reading input from Ebitengine.
func New(editor *pointedit.Editor, bounds pointedit.Rect) *Adapter {
	return NewWithSource(editor, bounds, ebitenSource{})
}

// NewWithSource creates an adapter polling src.
func NewWithSource(editor *pointedit.Editor, bounds pointedit.Rect, src Source) *Adapter {
	return &Adapter{
		editor:      editor,
		src:         src,
		Bounds:      bounds,
		WheelScale:  DefaultWheelScale,
		KeyBindings: true,
	}
}

// Editor returns the editor the adapter drives.
func (a *Adapter) Editor() *pointedit.Editor {
	return a.editor
}

// SetBounds moves or resizes the surface. If the cursor ends up outside, the
// next Update reports a leave.
func (a *Adapter) SetBounds(r pointedit.Rect) {
	a.Bounds = r
}

func (a *Adapter) contains(x, y float64) bool {
	if a.Bounds.Width <= 0 || a.Bounds.Height <= 0 {
		return true
	}
	return a.Bounds.Contains(x, y)
}

// Update polls the source and dispatches the events of this frame, then
// advances the editor by one tick. It does nothing after Detach.
//
// Per frame, at most one move is delivered: the cursor position at poll time,
// and only if it changed. A press or release is preceded by that move.
func (a *Adapter) Update() {
	if a.detached {
		return
	}
	cx, cy := a.src.CursorPosition()
	sx, sy := float64(cx), float64(cy)
	p := pointedit.Point{X: sx - a.Bounds.X, Y: sy - a.Bounds.Y}
	mods := a.src.Modifiers()
	pressed := a.src.MousePressed()
	inside := a.contains(sx, sy)

	switch {
	case a.inside && !inside:
		a.editor.PointerLeave(p, mods)
		a.pressing = false
	case inside:
		if !a.inside || p != a.last {
			a.editor.PointerMove(p, mods)
		}
		if pressed && !a.pressed {
			a.editor.PointerDown(p, mods)
			a.pressing = true
		}
		if !pressed && a.pressing {
			a.editor.PointerUp(p, mods)
			a.pressing = false
		}
		a.dispatchWheel(p, mods)
	}
	a.inside = inside
	a.pressed = pressed
	a.last = p

	if a.KeyBindings {
		a.dispatchKeys()
	}

	tps := a.src.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	a.editor.Update(1 / float32(tps))
}

// dispatchWheel converts wheel offsets to DOM-style deltas, where positive y
// scrolls down.
func (a *Adapter) dispatchWheel(p pointedit.Point, mods pointedit.KeyModifiers) {
	xoff, yoff := a.src.Wheel()
	if xoff == 0 && yoff == 0 {
		return
	}
	scale := a.WheelScale
	if scale <= 0 {
		scale = DefaultWheelScale
	}
	a.editor.Wheel(p, pointedit.Point{X: -xoff * scale, Y: -yoff * scale}, mods)
}

func (a *Adapter) dispatchKeys() {
	if a.src.KeyJustPressed(ebiten.KeyDelete) || a.src.KeyJustPressed(ebiten.KeyBackspace) {
		a.editor.Delete()
	}
	if a.src.KeyJustPressed(ebiten.KeyR) {
		a.editor.Restart()
	}
}

// Detach disconnects the adapter from input. A drag or rubber band in
// progress is cancelled with a final leave. Later Update calls do nothing.
func (a *Adapter) Detach() {
	if a.detached {
		return
	}
	a.detached = true
	if a.inside || a.pressing {
		a.editor.PointerLeave(a.last, 0)
	}
	a.inside = false
	a.pressing = false
}

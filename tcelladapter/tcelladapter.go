// Package tcelladapter feeds tcell terminal mouse and key events into a
// pointedit.Editor. Terminal cells are mapped to surface coordinates by a
// fixed cell size, so the editor's pixel-based thresholds keep working.
package tcelladapter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pointedit"
)

// DefaultWheelStep is the delta reported per wheel event.
const DefaultWheelStep = 50

// Adapter maps tcell events onto an editor. Enable mouse reporting with
// Screen.EnableMouse(tcell.MouseMotionEvents) so drags arrive as motion.
type Adapter struct {
	editor *pointedit.Editor

	// OriginX and OriginY are the top-left cell of the surface.
	OriginX, OriginY int
	// Width and Height are the surface size in cells. Zero means unbounded.
	Width, Height int
	// CellWidth and CellHeight scale cells to surface units.
	CellWidth, CellHeight float64
	// WheelStep is the delta of one wheel event.
	WheelStep float64

	inside   bool
	down     bool // Button1 state at the last event
	pressing bool // a press was delivered and not yet released or cancelled
	last     pointedit.Point
	lastSet  bool
}

// New creates an adapter for a surface whose top-left cell is (x, y).
func New(editor *pointedit.Editor, x, y, width, height int) *Adapter {
	return &Adapter{
		editor:     editor,
		OriginX:    x,
		OriginY:    y,
		Width:      width,
		Height:     height,
		CellWidth:  1,
		CellHeight: 1,
		WheelStep:  DefaultWheelStep,
	}
}

// Editor returns the editor the adapter drives.
func (a *Adapter) Editor() *pointedit.Editor {
	return a.editor
}

// HandleEvent dispatches ev and reports whether it was consumed.
func (a *Adapter) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		return a.handleMouse(e)
	case *tcell.EventKey:
		return a.handleKey(e)
	}
	return false
}

func (a *Adapter) contains(x, y int) bool {
	if x < a.OriginX || y < a.OriginY {
		return false
	}
	if a.Width > 0 && x >= a.OriginX+a.Width {
		return false
	}
	if a.Height > 0 && y >= a.OriginY+a.Height {
		return false
	}
	return true
}

func (a *Adapter) toLocal(x, y int) pointedit.Point {
	cw, ch := a.CellWidth, a.CellHeight
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return pointedit.Point{
		X: float64(x-a.OriginX) * cw,
		Y: float64(y-a.OriginY) * ch,
	}
}

func (a *Adapter) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()
	mods := convertMod(ev.Modifiers())
	p := a.toLocal(x, y)
	pressed := buttons&tcell.Button1 != 0

	if !a.contains(x, y) {
		if a.inside {
			a.editor.PointerLeave(p, mods)
		}
		a.inside = false
		a.down = pressed
		a.pressing = false
		return false
	}
	entered := !a.inside
	a.inside = true

	if entered || !a.lastSet || p != a.last {
		a.editor.PointerMove(p, mods)
		a.last = p
		a.lastSet = true
	}

	// A button already held when the pointer enters is not a press.
	switch {
	case pressed && !a.down:
		a.editor.PointerDown(p, mods)
		a.pressing = true
	case !pressed && a.pressing:
		a.editor.PointerUp(p, mods)
		a.pressing = false
	}
	a.down = pressed

	step := a.WheelStep
	if step <= 0 {
		step = DefaultWheelStep
	}
	var delta pointedit.Point
	if buttons&tcell.WheelUp != 0 {
		delta.Y -= step
	}
	if buttons&tcell.WheelDown != 0 {
		delta.Y += step
	}
	if buttons&tcell.WheelLeft != 0 {
		delta.X -= step
	}
	if buttons&tcell.WheelRight != 0 {
		delta.X += step
	}
	if delta != (pointedit.Point{}) {
		a.editor.Wheel(p, delta, mods)
	}
	return true
}

func (a *Adapter) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		a.editor.Delete()
		return true
	case tcell.KeyCtrlR:
		a.editor.Restart()
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'r' || ev.Rune() == 'R') {
			a.editor.Restart()
			return true
		}
	}
	return false
}

// Leave reports a final leave, for example when the surface is hidden.
func (a *Adapter) Leave() {
	if a.inside {
		a.editor.PointerLeave(a.last, 0)
	}
	a.inside = false
	a.pressing = false
}

func convertMod(m tcell.ModMask) pointedit.KeyModifiers {
	var mods pointedit.KeyModifiers
	if m&tcell.ModShift != 0 {
		mods |= pointedit.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= pointedit.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= pointedit.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= pointedit.ModMeta
	}
	return mods
}

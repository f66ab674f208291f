package pointedit

// Point is a 2D location in the editing surface's local coordinate space.
type Point struct {
	X float64 `toml:"x" yaml:"x" json:"x"`
	Y float64 `toml:"y" yaml:"y" json:"y"`
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Region is a rubber-band drag area given by its two raw corners, in the order
// the pointer produced them.
type Region struct {
	X1, Y1, X2, Y2 float64
}

// Normalized returns the region as a Rect with non-negative size.
func (r Region) Normalized() Rect {
	x, w := r.X1, r.X2-r.X1
	if w < 0 {
		x, w = r.X2, -w
	}
	y, h := r.Y1, r.Y2-r.Y1
	if h < 0 {
		y, h = r.Y2, -h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// State is the interaction state of the editor.
type State uint8

const (
	StateIdle      State = iota // waiting for input; initial and terminal state of every gesture
	StateHold                   // pointer pressed, not yet moved past the move threshold
	StateSelecting              // rubber-band selection from empty space
	StateMoving                 // dragging the selected entities
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHold:
		return "hold"
	case StateSelecting:
		return "selecting"
	case StateMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of editor event.
type EventType uint8

const (
	EventPointerDown  EventType = iota // pointer button pressed
	EventPointerMove                   // pointer moved, pressed or not
	EventPointerUp                     // pointer button released
	EventPointerLeave                  // pointer left the interactive surface
	EventWheel                         // wheel or trackpad scroll
	EventDelete                        // remove every selected entity
	EventRestart                       // reset to the construction input
	EventSetView                       // replace the pan/zoom transform
)

// String returns the event name used in scripts and diagnostics.
func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "down"
	case EventPointerMove:
		return "move"
	case EventPointerUp:
		return "up"
	case EventPointerLeave:
		return "leave"
	case EventWheel:
		return "wheel"
	case EventDelete:
		return "delete"
	case EventRestart:
		return "restart"
	case EventSetView:
		return "view"
	default:
		return "unknown"
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key; extends or toggles the selection
	ModCtrl                           // Control key; turns wheel scrolling into zoom
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Shift reports whether the shift bit is set.
func (m KeyModifiers) Shift() bool { return m&ModShift != 0 }

// Ctrl reports whether the control bit is set.
func (m KeyModifiers) Ctrl() bool { return m&ModCtrl != 0 }

// Event is a single normalized input for the editor. Which fields are
// meaningful depends on Type:
//
//   - pointer events use Point and Modifiers
//   - EventWheel uses Point (zoom anchor), Delta and Modifiers
//   - EventSetView uses View
//   - EventDelete and EventRestart carry no payload
type Event struct {
	Type      EventType
	Point     Point
	Delta     Point
	Modifiers KeyModifiers
	View      View
}

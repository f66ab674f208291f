package pointedit

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn and returns what it wrote to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = old
	out, _ := io.ReadAll(r)
	return string(out)
}

func TestDebugLogsTransitions(t *testing.T) {
	e := NewEditor(twoPoints())
	e.SetDebugMode(true)
	out := captureStderr(t, func() {
		e.PointerDown(Point{10, 10}, 0)
		e.PointerUp(Point{10, 10}, 0)
		e.Delete()
	})

	for _, want := range []string{
		"[pointedit] down (10.0,10.0): idle -> hold",
		"[pointedit] up (10.0,10.0): hold -> idle",
		"[pointedit] delete: idle -> idle | entities: 1 | selected: 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "warning") {
		t.Errorf("unexpected warning:\n%s", out)
	}
}

func TestDebugLogsDoublePress(t *testing.T) {
	e := NewEditor(twoPoints())
	e.SetDebugMode(true)
	out := captureStderr(t, func() {
		e.PointerDown(Point{300, 300}, 0)
		e.PointerDown(Point{10, 10}, 0)
	})
	if !strings.Contains(out, "press while hold: cancelling open session") {
		t.Errorf("missing double-press warning:\n%s", out)
	}
}

func TestDebugSilentWhenDisabled(t *testing.T) {
	e := NewEditor(twoPoints())
	out := captureStderr(t, func() {
		e.PointerDown(Point{10, 10}, 0)
	})
	if out != "" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestContextViolations(t *testing.T) {
	ctx := NewContext(twoPoints())
	if v := contextViolations(StateIdle, ctx); len(v) != 0 {
		t.Errorf("fresh context: %v", v)
	}

	ctx.Selected = NewSelection(4)
	ctx.Session = &DragSession{}
	v := contextViolations(StateIdle, ctx)
	if len(v) != 2 {
		t.Fatalf("violations = %v, want 2", v)
	}
	if v[0] != "selected index 4 out of range (2 entities)" || v[1] != "drag session open in idle state" {
		t.Errorf("violations = %v", v)
	}

	ctx = NewContext(twoPoints())
	v = contextViolations(StateMoving, ctx)
	if len(v) != 1 || v[0] != "state moving without a drag session" {
		t.Errorf("violations = %v", v)
	}
}

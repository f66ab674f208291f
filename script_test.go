package pointedit

import (
	"reflect"
	"strings"
	"testing"
)

func runScript(t *testing.T, e *Editor, r *ScriptRunner) {
	t.Helper()
	e.SetScriptRunner(r)
	for i := 0; i < 200 && !r.Done(); i++ {
		e.Update(1.0 / 60)
	}
	if !r.Done() {
		t.Fatal("script did not finish within 200 frames")
	}
}

func TestScriptRunner(t *testing.T) {
	src := `{
		"steps": [
			{"action": "click", "x": 10, "y": 10},
			{"action": "snapshot", "label": "clicked"},
			{"action": "drag", "fromX": 10, "fromY": 10, "toX": 60, "toY": 10, "frames": 4},
			{"action": "snapshot", "label": "dragged"},
			{"action": "click", "x": 300, "y": 300, "shift": true},
			{"action": "wait", "frames": 3},
			{"action": "delete"},
			{"action": "snapshot", "label": "deleted"},
			{"action": "wheel", "x": 0, "y": 0, "dy": 10},
			{"action": "restart"},
			{"action": "snapshot", "label": "restarted"}
		]
	}`
	r, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	e := NewEditor(twoPoints())
	runScript(t, e, r)

	want := []string{"clicked", "dragged", "deleted", "restarted"}
	if got := r.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %v, want %v", got, want)
	}

	clicked, _ := r.Snapshot("clicked")
	assertSelected(t, clicked, 0)

	dragged, _ := r.Snapshot("dragged")
	assertEntities(t, dragged, Point{60, 10}, Point{100, 100})

	deleted, _ := r.Snapshot("deleted")
	assertEntities(t, deleted, Point{100, 100})

	restarted, ok := r.Snapshot("restarted")
	if !ok {
		t.Fatal("missing restarted snapshot")
	}
	assertEntities(t, restarted, Point{10, 10}, Point{100, 100})
	if restarted.View != DefaultView {
		t.Errorf("View = %+v", restarted.View)
	}

	if _, ok := r.Snapshot("nope"); ok {
		t.Error("unknown label reported present")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad json", `{"steps": [`, "parse script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "fly"}]}`, `unknown action "fly"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestScriptStepModifiers(t *testing.T) {
	st := scriptStep{Shift: true, Ctrl: true}
	if m := st.modifiers(); !m.Shift() || !m.Ctrl() {
		t.Errorf("modifiers = %b", m)
	}
}

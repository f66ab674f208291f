package pointedit

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Shift  bool    `json:"shift,omitempty"`
	Ctrl   bool    `json:"ctrl,omitempty"`
}

func (st scriptStep) modifiers() KeyModifiers {
	var mods KeyModifiers
	if st.Shift {
		mods |= ModShift
	}
	if st.Ctrl {
		mods |= ModCtrl
	}
	return mods
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true, "drag": true,
	"wheel": true, "leave": true, "delete": true, "restart": true,
	"wait": true, "snapshot": true,
}

// ScriptRunner sequences injected events and snapshot captures across frames
// for automated testing and replay. Attach to an Editor via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	snapshots map[string]Snapshot
	labels    []string
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached to an Editor via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("pointedit: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("pointedit: parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("pointedit: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{
		steps:     sc.Steps,
		snapshots: make(map[string]Snapshot),
	}, nil
}

// SetScriptRunner attaches a ScriptRunner to the editor. The runner's step
// method is called from Editor.Update before injected input is processed.
func (e *Editor) SetScriptRunner(runner *ScriptRunner) {
	e.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Snapshot returns the snapshot captured by the "snapshot" step with label.
func (r *ScriptRunner) Snapshot(label string) (Snapshot, bool) {
	s, ok := r.snapshots[label]
	return s, ok
}

// Labels returns the captured snapshot labels in capture order.
func (r *ScriptRunner) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// step advances the runner by one frame. Called from Editor.Update.
func (r *ScriptRunner) step(e *Editor) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	mods := st.modifiers()

	switch st.Action {
	case "snapshot":
		if _, seen := r.snapshots[st.Label]; !seen {
			r.labels = append(r.labels, st.Label)
		}
		r.snapshots[st.Label] = e.Snapshot()
	case "press":
		e.InjectPress(st.X, st.Y, mods)
	case "move":
		e.InjectMove(st.X, st.Y, mods)
	case "release":
		e.InjectRelease(st.X, st.Y, mods)
	case "click":
		e.InjectClick(st.X, st.Y, mods)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames, mods)
	case "wheel":
		e.InjectWheel(st.X, st.Y, st.DX, st.DY, mods)
	case "leave":
		e.InjectLeave(st.X, st.Y)
	case "delete":
		e.injectQueue = append(e.injectQueue, Event{Type: EventDelete})
	case "restart":
		e.injectQueue = append(e.injectQueue, Event{Type: EventRestart})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}

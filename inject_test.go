package pointedit

import "testing"

func TestInjectClickConsumesTwoFrames(t *testing.T) {
	e := NewEditor(twoPoints())
	e.InjectClick(10, 10, 0)
	if e.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", e.Pending())
	}

	e.Update(1.0 / 60)
	if e.State() != StateHold {
		t.Errorf("after frame 1 state = %s, want hold", e.State())
	}
	e.Update(1.0 / 60)
	if e.State() != StateIdle || !e.Snapshot().IsSelected(0) {
		t.Errorf("after frame 2: %+v", e.Snapshot())
	}
	if e.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", e.Pending())
	}
}

func TestInjectDragFrames(t *testing.T) {
	tests := []struct {
		frames int
		want   int
	}{
		{0, 3},
		{3, 3},
		{6, 6},
	}
	for _, tt := range tests {
		e := NewEditor(Input{})
		e.InjectDrag(0, 0, 10, 10, tt.frames, 0)
		if e.Pending() != tt.want {
			t.Errorf("frames=%d: Pending = %d, want %d", tt.frames, e.Pending(), tt.want)
		}
	}
}

func TestInjectDragMovesEntity(t *testing.T) {
	e := NewEditor(twoPoints())
	e.InjectDrag(10, 10, 70, 40, 5, 0)
	for e.Pending() > 0 {
		e.Update(1.0 / 60)
	}
	snap := e.Snapshot()
	assertEntities(t, snap, Point{70, 40}, Point{100, 100})
	assertState(t, snap, StateIdle)
}

func TestInjectWheelAndLeave(t *testing.T) {
	e := NewEditor(Input{})
	e.InjectPress(300, 300, 0)
	e.InjectMove(340, 340, 0)
	e.InjectLeave(340, 340)
	e.InjectWheel(0, 0, 1, 2, 0)
	for e.Pending() > 0 {
		e.Update(1.0 / 60)
	}
	snap := e.Snapshot()
	assertState(t, snap, StateIdle)
	if len(snap.Entities) != 0 {
		t.Errorf("entities = %v", snap.Entities)
	}
	if snap.View != (View{X: -2, Y: -4, Z: 1}) {
		t.Errorf("View = %+v", snap.View)
	}
}

func TestUpdateWithEmptyQueue(t *testing.T) {
	e := NewEditor(Input{})
	if e.processInjectedInput() {
		t.Error("processInjectedInput consumed from an empty queue")
	}
	e.Update(1.0 / 60)
	assertState(t, e.Snapshot(), StateIdle)
}

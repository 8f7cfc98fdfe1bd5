package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionRestart) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) should be true after Set")
	}
	if f.Has(ActionQuit) {
		t.Error("Has(ActionQuit) should be false")
	}

	var zero InputFrame
	if zero.Has(ActionRestart) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestInputFrameClickAndTile(t *testing.T) {
	f := NewInputFrame()

	if _, ok := f.Click(); ok {
		t.Error("New frame should have no click")
	}
	if _, ok := f.Tile(); ok {
		t.Error("New frame should have no tile selection")
	}

	f.SetClick(12, 7)
	f.SelectTile(4)

	p, ok := f.Click()
	if !ok || p != (Point{X: 12, Y: 7}) {
		t.Errorf("Click() = %v, %v; expected (12,7), true", p, ok)
	}
	tile, ok := f.Tile()
	if !ok || tile != 4 {
		t.Errorf("Tile() = %d, %v; expected 4, true", tile, ok)
	}

	f.SelectTile(0)
	if tile, _ := f.Tile(); tile != 0 {
		t.Errorf("Last selection should win, got %d", tile)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	f.SetClick(1, 1)
	f.SelectTile(8)

	f.Clear()

	if f.Has(ActionRestart) {
		t.Error("Clear should remove actions")
	}
	if _, ok := f.Click(); ok {
		t.Error("Clear should remove click")
	}
	if _, ok := f.Tile(); ok {
		t.Error("Clear should remove tile selection")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, expected := range tests {
		if got := a.String(); got != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, expected)
		}
	}
}

package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone) // ignored
	f.Set(ActionLeft)
	f.Set(ActionUp)

	got := f.Actions()
	want := []Action{ActionUp, ActionLeft, ActionUp}
	if len(got) != len(want) {
		t.Fatalf("Actions() len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}

	f.Set(ActionDown)
	if got := f.Actions(); len(got) != 1 || got[0] != ActionDown {
		t.Errorf("Actions() after reuse = %v, expected [Down]", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

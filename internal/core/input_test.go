package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame

	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.SetPointer(12)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Set did not record exactly ActionLeft")
	}
	if !f.HasPointer || f.Pointer != 12 {
		t.Errorf("pointer = (%d, %v), expected (12, true)", f.Pointer, f.HasPointer)
	}

	f.Clear()
	if f.Has(ActionLeft) || f.HasPointer {
		t.Error("Clear should drop actions and pointer")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionLeft, "Left"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}

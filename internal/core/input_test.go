package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame
	if f.Has(ActionShoot) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionShoot)
	if !f.Has(ActionShoot) {
		t.Error("Has(ActionShoot) should be true after Set")
	}
	if f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be false")
	}
}

func TestInputFrameText(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Type('a')
	f.Type('1')
	if string(f.Text) != "a1" {
		t.Errorf("Text = %q, expected %q", string(f.Text), "a1")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if string(clone.Text) != "a1" {
		t.Errorf("clone should keep its text, got %q", string(clone.Text))
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionSwitchWeapon, "SwitchWeapon"},
		{ActionWeapon4, "Weapon4"},
		{ActionToggleKey, "ToggleKey"},
		{Action(999), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

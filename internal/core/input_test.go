package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionRotate)
	if !f.Has(ActionLeft) || !f.Has(ActionRotate) {
		t.Error("Set actions should be reported by Has")
	}

	saved := f
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !saved.Has(ActionLeft) {
		t.Error("a copied frame should not be affected by Clear")
	}
}

func TestActionString(t *testing.T) {
	if ActionDrop.String() != "Drop" {
		t.Errorf("ActionDrop.String() = %q, expected %q", ActionDrop.String(), "Drop")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected %q", Action(99).String(), "Unknown")
	}
}

func TestInputFrameLen(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDrop)
	f.Set(ActionDrop)
	f.Set(ActionNone)
	f.Set(ActionPause)

	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be set")
	}
}

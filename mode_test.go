package vtstate

import "testing"

func TestModeRoundTrip(t *testing.T) {
	r := NewModeRegistry()
	for m := Mode(0); m < modeCount; m++ {
		for _, v := range []bool{true, false, true} {
			r.Set(m, v)
			if got := r.Get(m); got != v {
				t.Fatalf("mode %d: Set(%v) then Get() = %v", m, v, got)
			}
		}
	}
}

func TestModeSaveRestore(t *testing.T) {
	r := NewModeRegistry()
	r.Set(ModeLineWrap, true)
	r.Save(ModeLineWrap)
	r.Set(ModeLineWrap, false)

	if r.Get(ModeLineWrap) != false {
		t.Fatalf("expected mode false after Set")
	}

	restored := r.Restore(ModeLineWrap)
	if !restored {
		t.Fatalf("Restore returned %v, want true", restored)
	}
}

func TestModeRestoreEmptyStackReturnsCurrent(t *testing.T) {
	r := NewModeRegistry()
	r.Set(ModeOrigin, true)
	if got := r.Restore(ModeOrigin); got != true {
		t.Fatalf("Restore on empty stack = %v, want current value true", got)
	}
}

func TestModeSaveRestoreNested(t *testing.T) {
	r := NewModeRegistry()
	r.Set(ModeInsert, false)
	r.Save(ModeInsert)
	r.Set(ModeInsert, true)
	r.Save(ModeInsert)
	r.Set(ModeInsert, false)

	if got := r.Restore(ModeInsert); got != true {
		t.Fatalf("first restore = %v, want true", got)
	}
	if got := r.Restore(ModeInsert); got != false {
		t.Fatalf("second restore = %v, want false", got)
	}
}

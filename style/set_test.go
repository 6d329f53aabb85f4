package style

import "testing"

func newTestSet(capacity int) *Set {
	layout := NewLayout(capacity)
	buf := make([]Entry, layout.Capacity)
	return NewSet(buf, layout, Config{})
}

func TestAddDefaultReturnsSentinel(t *testing.T) {
	s := newTestSet(16)
	id, err := s.Add(Default)
	if err != nil {
		t.Fatal(err)
	}
	if id != DefaultId {
		t.Errorf("expected DefaultId, got %d", id)
	}
	if s.Len() != 0 {
		t.Errorf("default style must not occupy a slot, Len()=%d", s.Len())
	}
}

func TestAddDedupsAndRefCounts(t *testing.T) {
	s := newTestSet(16)
	st := Style{Fg: RGB(1, 2, 3), Flags: FlagBold}

	id1, err := s.Add(st)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := s.Add(st)
	if err != nil {
		t.Fatal(err)
	}

	if id1 != id2 {
		t.Fatalf("dedup failed: got ids %d and %d", id1, id2)
	}
	if got := s.RefCount(id1); got != 2 {
		t.Errorf("expected refcount 2, got %d", got)
	}

	s.Release(id1)
	if got := s.RefCount(id1); got != 1 {
		t.Errorf("expected refcount 1 after one release, got %d", got)
	}
	s.Release(id1)
	if got := s.RefCount(id1); got != 0 {
		t.Errorf("expected refcount 0 after second release, got %d", got)
	}
}

func TestGetReturnsStoredStyle(t *testing.T) {
	s := newTestSet(16)
	st := Style{Bg: Idx(42), UnderlineStyle: UnderlineDotted}
	id, err := s.Add(st)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Get(id); got != st {
		t.Errorf("Get returned %+v, want %+v", got, st)
	}
}

func TestGetDefaultId(t *testing.T) {
	s := newTestSet(4)
	if got := s.Get(DefaultId); got != Default {
		t.Errorf("Get(DefaultId) = %+v, want Default", got)
	}
}

func TestOutOfSpace(t *testing.T) {
	s := newTestSet(2)
	if _, err := s.Add(Style{Fg: Idx(1)}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(Style{Fg: Idx(2)}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(Style{Fg: Idx(3)}); err != ErrOutOfSpace {
		t.Fatalf("expected ErrOutOfSpace, got %v", err)
	}
}

func TestReleaseFreesSlotForReuse(t *testing.T) {
	s := newTestSet(1)
	id, err := s.Add(Style{Fg: Idx(1)})
	if err != nil {
		t.Fatal(err)
	}
	s.Release(id)

	newID, err := s.Add(Style{Fg: Idx(2)})
	if err != nil {
		t.Fatalf("expected slot to be reusable after release, got %v", err)
	}
	if got := s.Get(newID); got.Fg != Idx(2) {
		t.Errorf("reused slot holds wrong style: %+v", got)
	}
}

func TestReleaseThenAddSameStyleAgain(t *testing.T) {
	s := newTestSet(4)
	st := Style{Fg: Idx(9)}
	id1, _ := s.Add(st)
	s.Release(id1)

	id2, err := s.Add(st)
	if err != nil {
		t.Fatal(err)
	}
	if s.RefCount(id2) != 1 {
		t.Errorf("expected fresh refcount 1, got %d", s.RefCount(id2))
	}
}

func TestOverReleasePanics(t *testing.T) {
	s := newTestSet(4)
	id, _ := s.Add(Style{Fg: Idx(1)})
	s.Release(id)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on over-release")
		}
	}()
	s.Release(id)
}

func TestGetInvalidIdPanics(t *testing.T) {
	s := newTestSet(4)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on invalid id")
		}
	}()
	s.Get(Id(3))
}

func TestLargeCapacityNoOverflow(t *testing.T) {
	s := newTestSet(16384)
	for i := 0; i < 16384; i++ {
		st := Style{Fg: RGB(byte(i), byte(i>>8), 0)}
		if _, err := s.Add(st); err != nil {
			t.Fatalf("add %d failed: %v", i, err)
		}
	}
	if s.Len() != 16384 {
		t.Errorf("expected Len()=16384, got %d", s.Len())
	}
}

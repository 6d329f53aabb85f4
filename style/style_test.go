package style

import "testing"

func TestDefaultStyleIsZeroValue(t *testing.T) {
	if !Default.IsDefault() {
		t.Fatal("Default.IsDefault() should be true")
	}
	if (Style{}) != Default {
		t.Fatal("Default should be the zero value of Style")
	}
}

func TestPackedIsSixteenBytes(t *testing.T) {
	p := Pack(Style{Fg: RGB(1, 2, 3)})
	if len(p) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(p))
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []Style{
		Default,
		{Fg: Idx(3)},
		{Bg: RGB(10, 20, 30)},
		{Underline: RGB(255, 0, 0), UnderlineStyle: UnderlineCurly},
		{Fg: RGB(1, 2, 3), Bg: Idx(200), Underline: Idx(5), Flags: FlagBold | FlagItalic | FlagOverline, UnderlineStyle: UnderlineDashed},
	}

	for _, s := range cases {
		p := Pack(s)
		got := Unpack(p)
		if got != s {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, s)
		}
	}
}

func TestPackedUniquenessForDistinctStyles(t *testing.T) {
	a := Style{Fg: Idx(1)}
	b := Style{Fg: Idx(2)}
	c := Style{Fg: RGB(1, 0, 0)}

	pa, pb, pc := Pack(a), Pack(b), Pack(c)
	if pa == pb {
		t.Error("distinct styles must not pack identically (palette 1 vs 2)")
	}
	if pa == pc {
		t.Error("distinct styles must not pack identically (palette vs rgb)")
	}
}

func TestPackedEqualForEqualStyles(t *testing.T) {
	a := Style{Fg: RGB(9, 9, 9), Flags: FlagBold}
	b := Style{Fg: RGB(9, 9, 9), Flags: FlagBold}
	if Pack(a) != Pack(b) {
		t.Error("equal styles must pack identically")
	}
}

func TestHashConsistentWithEquality(t *testing.T) {
	a := Style{Fg: Idx(7), Flags: FlagBlink}
	b := Style{Fg: Idx(7), Flags: FlagBlink}
	if Hash(a) != Hash(b) {
		t.Error("equal styles must hash equal")
	}
}

func TestColorPayloadArmsSameWidth(t *testing.T) {
	// Every arm of packColor must return exactly 3 bytes so the union
	// occupies a fixed width regardless of tag.
	for _, c := range []Color{None, Idx(1), RGB(1, 2, 3)} {
		_, payload := packColor(c)
		if len(payload) != 3 {
			t.Fatalf("payload for %+v has width %d, want 3", c, len(payload))
		}
	}
}

package style

import "testing"

func TestSerializeAlwaysStartsWithFullReset(t *testing.T) {
	out := SerializeString(Default)
	if out != "\x1b[0m" {
		t.Errorf("expected bare reset for default style, got %q", out)
	}
}

func TestSerializeOrderAndSeparateSequences(t *testing.T) {
	s := Style{
		Flags:          FlagBold | FlagOverline,
		UnderlineStyle: UnderlineCurly,
		Fg:             Idx(9),
		Bg:             RGB(1, 2, 3),
		Underline:      RGB(4, 5, 6),
	}

	want := "\x1b[0m" +
		"\x1b[1m" +
		"\x1b[53m" +
		"\x1b[4:3m" +
		"\x1b[38;5;9m" +
		"\x1b[48;2;1;2;3m" +
		"\x1b[58;2;4;5;6m"

	if got := SerializeString(s); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSerializeSingleUnderlineUsesPlain4m(t *testing.T) {
	s := Style{UnderlineStyle: UnderlineSingle}
	if got := SerializeString(s); got != "\x1b[0m\x1b[4m" {
		t.Errorf("got %q", got)
	}
}

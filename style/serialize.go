package style

import (
	"fmt"
	"io"
	"strings"
)

// Serialize writes a self-contained SGR escape sequence that reproduces s,
// suitable for rewriting buffered output. It always starts with a full
// reset (`\x1b[0m`), then emits one independent SGR sequence per active
// attribute in a fixed order: bold, faint, italic, blink, inverse,
// invisible, strikethrough, overline, underline, fg color, bg color,
// underline color.
//
// Attributes are never combined into one sequence with multiple
// parameters, because some terminals mis-parse combined forms that mix
// `;`- and `:`-separated sub-parameters (the underline style forms use
// `:`).
func Serialize(w io.Writer, s Style) error {
	var b strings.Builder
	writeInto(&b, s)
	_, err := io.WriteString(w, b.String())
	return err
}

// SerializeString is the []byte/string convenience form of [Serialize].
func SerializeString(s Style) string {
	var b strings.Builder
	writeInto(&b, s)
	return b.String()
}

func writeInto(b *strings.Builder, s Style) {
	b.WriteString("\x1b[0m")

	if s.Flags&FlagBold != 0 {
		b.WriteString("\x1b[1m")
	}
	if s.Flags&FlagFaint != 0 {
		b.WriteString("\x1b[2m")
	}
	if s.Flags&FlagItalic != 0 {
		b.WriteString("\x1b[3m")
	}
	if s.Flags&FlagBlink != 0 {
		b.WriteString("\x1b[5m")
	}
	if s.Flags&FlagInverse != 0 {
		b.WriteString("\x1b[7m")
	}
	if s.Flags&FlagInvisible != 0 {
		b.WriteString("\x1b[8m")
	}
	if s.Flags&FlagStrikethrough != 0 {
		b.WriteString("\x1b[9m")
	}
	if s.Flags&FlagOverline != 0 {
		b.WriteString("\x1b[53m")
	}

	switch s.UnderlineStyle {
	case UnderlineSingle:
		b.WriteString("\x1b[4m")
	case UnderlineDouble:
		fmt.Fprintf(b, "\x1b[4:2m")
	case UnderlineCurly:
		fmt.Fprintf(b, "\x1b[4:3m")
	case UnderlineDotted:
		fmt.Fprintf(b, "\x1b[4:4m")
	case UnderlineDashed:
		fmt.Fprintf(b, "\x1b[4:5m")
	}

	writeColor(b, 38, s.Fg)
	writeColor(b, 48, s.Bg)
	writeColor(b, 58, s.Underline)
}

func writeColor(b *strings.Builder, prefix int, c Color) {
	switch c.Tag {
	case ColorPalette:
		fmt.Fprintf(b, "\x1b[%d;5;%dm", prefix, c.Palette)
	case ColorRGB:
		fmt.Fprintf(b, "\x1b[%d;2;%d;%d;%dm", prefix, c.R, c.G, c.B)
	}
}

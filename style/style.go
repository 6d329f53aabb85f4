// Package style implements the compact, ref-counted, content-addressed
// representation of per-cell terminal styling used by a VT screen grid.
//
// A [Style] holds the foreground/background/underline colors and the SGR
// flags for one or more cells. Because most cells on a page share the same
// style, the grid does not store a [Style] per cell -- it stores a small
// [Id] that indexes into a [Set], which deduplicates styles by content and
// keeps a reference count per distinct style.
package style

// ColorTag discriminates the three shapes a color attribute can take.
type ColorTag uint8

const (
	// ColorNone means "use the terminal's current default for this slot".
	ColorNone ColorTag = iota
	// ColorPalette means "look up palette index Palette".
	ColorPalette
	// ColorRGB means "use the literal 24-bit RGB triple".
	ColorRGB
)

// Color is a tagged union over {none, palette(u8), rgb(r,g,b)}.
//
// Only the fields matching Tag are meaningful; a [Set]'s lookups and
// [Hash] go through the canonical [Pack] encoding so stray bytes in the
// unused fields never affect identity there. Go's == and [Style.Eq]
// compare every field, unused ones included.
type Color struct {
	Tag     ColorTag
	Palette uint8
	R, G, B uint8
}

// None is the zero-value color: no override, use the terminal default.
var None = Color{Tag: ColorNone}

// Idx builds a palette-indexed color.
func Idx(i uint8) Color { return Color{Tag: ColorPalette, Palette: i} }

// RGB builds a literal 24-bit color.
func RGB(r, g, b uint8) Color { return Color{Tag: ColorRGB, R: r, G: g, B: b} }

// Underline enumerates the underline sub-styles a cell can carry. It is
// packed into the same 16-bit flags word as the boolean SGR attributes (see
// packed.go), never as a separate byte, so it must fit in 3 bits.
type Underline uint8

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Flags is a bitmask of the eight single-bit SGR attributes. Underline is
// tracked separately on [Style] because it is multi-valued, not boolean.
type Flags uint16

const (
	FlagBold Flags = 1 << iota
	FlagItalic
	FlagFaint
	FlagBlink
	FlagInverse
	FlagInvisible
	FlagStrikethrough
	FlagOverline
)

// Style is the full set of visual attributes attached to a cell.
//
// The zero value is the all-default style and is always [Id] 0 -- it is
// never added to a [Set] and never ref-counted (see Set.Add).
type Style struct {
	Fg             Color
	Bg             Color
	Underline      Color
	Flags          Flags
	UnderlineStyle Underline
}

// Default is the all-default style, explicitly named for readability at
// call sites instead of a bare `Style{}` literal.
var Default = Style{}

// IsDefault reports whether s is structurally equal to [Default].
func (s Style) IsDefault() bool { return s == Default }

// Eq is structural equality. Style contains only value types, so Go's `==`
// already does this, but callers that hold a Style behind an interface
// can call this instead of unwrapping it to compare directly.
func (s Style) Eq(other Style) bool { return s == other }

package vtstate

// CharsetBank selects which of the four designated character sets (G0-G3)
// a charset operation addresses.
type CharsetBank int

const (
	CharsetG0 CharsetBank = iota
	CharsetG1
	CharsetG2
	CharsetG3
)

// CharsetSet identifies a designatable character set.
type CharsetSet int

const (
	CharsetASCII CharsetSet = iota
	CharsetUTF8
	CharsetSpecialDrawing // DEC line-drawing set
	CharsetBritish
)

// CharsetShift distinguishes a locking shift (LS0/LS1/LS2/LS3, stays until
// changed again) from a single shift (SS2/SS3, applies to the next
// character only).
type CharsetShift int

const (
	ShiftLocking CharsetShift = iota
	ShiftSingle
)

// Charsets tracks the four designated character sets, which bank is
// currently invoked, and a pending single-shift bank (if any).
type Charsets struct {
	Slots       [4]CharsetSet
	Active      CharsetBank
	singleShift *CharsetBank
}

// NewCharsets returns G0-G3 all designated ASCII, G0 active.
func NewCharsets() *Charsets {
	return &Charsets{Slots: [4]CharsetSet{CharsetASCII, CharsetASCII, CharsetASCII, CharsetASCII}}
}

// Configure designates set into slot.
func (c *Charsets) Configure(slot CharsetBank, set CharsetSet) {
	c.Slots[slot] = set
}

// Invoke switches the invoked bank. A single shift affects only the very
// next lookup (see [Charsets.Lookup]); a locking shift persists.
func (c *Charsets) Invoke(bank CharsetBank, shift CharsetShift) {
	switch shift {
	case ShiftSingle:
		b := bank
		c.singleShift = &b
	default:
		c.Active = bank
		c.singleShift = nil
	}
}

// Lookup returns the character set that should apply to the next printed
// character and consumes any pending single shift.
func (c *Charsets) Lookup() CharsetSet {
	bank := c.Active
	if c.singleShift != nil {
		bank = *c.singleShift
		c.singleShift = nil
	}
	return c.Slots[bank]
}

// lineDrawingTable maps the ASCII bytes VT100 line-drawing mode
// reinterprets to their box-drawing glyphs.
var lineDrawingTable = map[rune]rune{
	'j': '┘', 'k': '┐', 'l': '┌', 'm': '└', 'n': '┼',
	'q': '─', 't': '├', 'u': '┤', 'v': '┴', 'w': '┬', 'x': '│',
	'`': '◆', 'a': '▒', 'f': '°', 'g': '±', '~': '·',
}

// Translate rewrites r per the active charset. Only the special-drawing
// set changes anything; every other charset passes r through unchanged
// (charset banks beyond ASCII/line-drawing/UTF-8/British do not affect
// codepoint interpretation at this layer -- the byte-level decoding that
// would matter for, e.g., true ISO-8859 code pages happens upstream in
// the parser, before this dispatcher ever sees a rune).
func (c *Charsets) Translate(r rune) rune {
	if c.Lookup() != CharsetSpecialDrawing {
		return r
	}
	if repl, ok := lineDrawingTable[r]; ok {
		return repl
	}
	return r
}

package vtstate

import "github.com/quietlynx/vtstate/style"

// CursorShape determines how the cursor is rendered.
type CursorShape int

const (
	CursorShapeBlock CursorShape = iota
	CursorShapeUnderline
	CursorShapeBar
)

// CursorBlink is whether the cursor blinks or holds steady.
type CursorBlink int

const (
	CursorSteady CursorBlink = iota
	CursorBlinking
)

// Cursor tracks 0-based position and rendering style. Autowrap-pending is
// tracked separately on Terminal since it depends on the last column
// printed into, not the cursor alone.
type Cursor struct {
	X, Y  int
	Shape CursorShape
	Blink CursorBlink
	// StyleID is the per-cursor style identifier referring into the Style
	// Set; new cells printed at the cursor pick up this style.
	StyleID style.Id
}

// NewCursor returns a cursor at (0,0), block shape, steady, default style.
func NewCursor() *Cursor {
	return &Cursor{Shape: CursorShapeBlock, Blink: CursorSteady}
}

// SavedCursor is the full snapshot DECSC captures and DECRC restores:
// position, pending-wrap state, active style, origin mode, and the
// invoked/designated charsets.
type SavedCursor struct {
	X, Y         int
	PendingWrap  bool
	StyleID      style.Id
	OriginMode   bool
	CharsetBank  CharsetBank
	CharsetSlots [4]CharsetSet
}

// Snapshot captures c and the charset/origin state named in SavedCursor.
func (c *Cursor) Snapshot(pendingWrap, originMode bool, cs *Charsets) SavedCursor {
	return SavedCursor{
		X: c.X, Y: c.Y,
		PendingWrap: pendingWrap,
		StyleID:     c.StyleID,
		OriginMode:  originMode,
		CharsetBank: cs.Active,
		CharsetSlots: cs.Slots,
	}
}

// Restore writes s back into c, returning the pending-wrap and origin-mode
// bits and applying the charset snapshot to cs, so callers can re-apply the
// remaining terminal-level state (scroll region clamp, etc.) themselves.
func (s SavedCursor) Restore(c *Cursor, cs *Charsets) (pendingWrap, originMode bool) {
	c.X, c.Y = s.X, s.Y
	c.StyleID = s.StyleID
	cs.Active = s.CharsetBank
	cs.Slots = s.CharsetSlots
	cs.singleShift = nil
	return s.PendingWrap, s.OriginMode
}

package vtstate

// Mode identifies one boolean terminal behavior flag. The numeric CSI/DEC
// private mode number a real parser would map to each of these is noted in
// the comment for reference only -- this dispatcher never sees raw mode
// numbers, only the already-decoded Mode the (external) parser produced.
type Mode int

const (
	// ModeCursorKeys is DECCKM (mode 1): cursor keys send application
	// sequences instead of ANSI cursor sequences.
	ModeCursorKeys Mode = iota
	// ModeColumn132 is DECCOLM (mode 3): 80/132 column switch.
	ModeColumn132
	// ModeEnableMode3 (mode 40) is tracked as a bit only -- DECCOLM
	// resizes unconditionally regardless of it, so this mode has no
	// dispatcher-level side effect of its own.
	ModeEnableMode3
	// ModeReverseColors is DECSCNM (mode 5): swap default fg/bg.
	ModeReverseColors
	// ModeOrigin is DECOM (mode 6): cursor addressing relative to the
	// scrolling region.
	ModeOrigin
	// ModeLineWrap is DECAWM (mode 7): autowrap at the right margin.
	ModeLineWrap
	// ModeAutorepeat is DECARM (mode 8).
	ModeAutorepeat
	// ModeInsert is IRM (ANSI mode 4): insert vs. replace at the cursor.
	ModeInsert
	// ModeLineFeedNewLine is LNM (ANSI mode 20).
	ModeLineFeedNewLine
	// ModeShowCursor is DECTCEM (mode 25).
	ModeShowCursor
	// ModeCursorBlinking (mode 12).
	ModeCursorBlinking
	// ModeMouseEventX10 (mode 9).
	ModeMouseEventX10
	// ModeMouseEventNormal (mode 1000).
	ModeMouseEventNormal
	// ModeMouseEventButton (mode 1002).
	ModeMouseEventButton
	// ModeMouseEventAny (mode 1003).
	ModeMouseEventAny
	// ModeMouseFormatUTF8 (mode 1005).
	ModeMouseFormatUTF8
	// ModeMouseFormatSGR (mode 1006).
	ModeMouseFormatSGR
	// ModeMouseFormatURXVT (mode 1015).
	ModeMouseFormatURXVT
	// ModeMouseFormatSGRPixels (mode 1016).
	ModeMouseFormatSGRPixels
	// ModeFocusEvent (mode 1004).
	ModeFocusEvent
	// ModeAltScreenLegacy (mode 47).
	ModeAltScreenLegacy
	// ModeEnableLeftAndRightMargin is DECLRMM (mode 69).
	ModeEnableLeftAndRightMargin
	// ModeAltScreen (mode 1047).
	ModeAltScreen
	// ModeSaveCursorPrivate (mode 1048).
	ModeSaveCursorPrivate
	// ModeAltScreenSaveCursorClearEnter (mode 1049).
	ModeAltScreenSaveCursorClearEnter
	// ModeBracketedPaste (mode 2004).
	ModeBracketedPaste
	// ModeSynchronizedOutput (mode 2026).
	ModeSynchronizedOutput
	// ModeInBandSizeReports (mode 2048).
	ModeInBandSizeReports

	modeCount // sentinel; keep last
)

// ModeRegistry is a dense bitset over [Mode], with a per-mode LIFO stack of
// saved values for DECSET/DECRST-style save/restore.
type ModeRegistry struct {
	bits  [modeCount]bool
	stack [modeCount][]bool
}

// NewModeRegistry returns a registry with every mode off.
func NewModeRegistry() *ModeRegistry {
	return &ModeRegistry{}
}

// Get reports whether m is currently set.
func (r *ModeRegistry) Get(m Mode) bool {
	return r.bits[m]
}

// Set writes m's bit directly, with no side effects. Side effects (cursor
// moves, screen swaps, and so on) are the dispatcher's responsibility, not
// the registry's -- see setMode in dispatcher_mode.go.
func (r *ModeRegistry) Set(m Mode, v bool) {
	r.bits[m] = v
}

// Save pushes m's current value onto its save stack.
func (r *ModeRegistry) Save(m Mode) {
	r.stack[m] = append(r.stack[m], r.bits[m])
}

// Restore pops m's save stack and returns the popped value. It does not
// itself write the bit back -- callers re-apply it through the same
// side-effecting path used by Set (see setMode) so a restored mode's
// side effects run against the newly restored value, exactly as a fresh
// set/reset would. Restoring an empty stack returns the mode's current
// value unchanged.
func (r *ModeRegistry) Restore(m Mode) bool {
	stack := r.stack[m]
	if len(stack) == 0 {
		return r.bits[m]
	}
	v := stack[len(stack)-1]
	r.stack[m] = stack[:len(stack)-1]
	return v
}

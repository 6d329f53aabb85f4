package vtstate

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/quietlynx/vtstate/style"
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func saturatingAdd(a, b int) int {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt
	}
	if b < 0 && sum > a {
		return math.MinInt
	}
	return sum
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// rightMargin returns the current right scroll margin clamped to the grid.
func (t *Terminal) rightMargin() int {
	r := t.region.Right
	if r >= t.cols || r < 0 {
		r = t.cols - 1
	}
	return r
}

func (t *Terminal) bottomMargin() int {
	b := t.region.Bottom
	if b >= t.rows || b < 0 {
		b = t.rows - 1
	}
	return b
}

// styleRef bumps the reference count of an already-interned style id by
// re-adding its value (content-addressed dedup returns the same id), so a
// new cell can adopt it as its own counted reference distinct from the
// cursor's own. The default id needs no accounting.
func (t *Terminal) styleRef(id style.Id) (style.Id, error) {
	if id == style.DefaultId {
		return style.DefaultId, nil
	}
	st := t.styles.Get(id)
	newID, err := t.styles.Add(st)
	if err != nil {
		return style.DefaultId, ErrOutOfStyleCapacity
	}
	return newID, nil
}

// --- Printing ---

// Print adds cp at the cursor, advancing per autowrap/margin rules. w==0
// (a combining mark or other zero-width codepoint) has no column of its
// own: it is folded into the most recently printed cell's grapheme
// cluster when uniseg confirms cp actually extends that cluster, and
// dropped otherwise (a bare zero-width codepoint with nothing to attach
// to, e.g. immediately after a reset).
func (t *Terminal) Print(cp rune) error {
	cp = t.charsets.Translate(cp)
	w := runewidth.RuneWidth(cp)
	if w == 0 {
		return t.attachCombining(cp)
	}

	right := t.rightMargin()
	if t.pendingWrap {
		if t.modes.Get(ModeLineWrap) {
			t.wrapLine()
		}
		t.pendingWrap = false
	}

	x, y := t.cursor.X, t.cursor.Y
	if w == 2 && x == right && t.modes.Get(ModeLineWrap) {
		t.wrapLine()
		x, y = t.cursor.X, t.cursor.Y
	}

	g := t.Grid()
	id, err := t.styleRef(t.cursor.StyleID)
	if err != nil {
		return err
	}
	protected := t.protectedMode != ProtectedOff
	g.SetCell(x, y, cp, id, false, t.styles)
	if c := g.Cell(x, y); c != nil {
		c.Protected = protected
	}

	if w == 2 && x+1 <= right {
		id2, err := t.styleRef(t.cursor.StyleID)
		if err != nil {
			return err
		}
		g.SetCell(x+1, y, 0, id2, true, t.styles)
		if c := g.Cell(x+1, y); c != nil {
			c.Protected = protected
		}
	}

	t.lastGrapheme = []rune{cp}
	t.lastCellX, t.lastCellY = x, y
	t.lastCellValid = true

	newX := x + w
	if newX > right {
		t.cursor.X = right
		t.pendingWrap = true
	} else {
		t.cursor.X = newX
	}
	return nil
}

// attachCombining folds a zero-width codepoint into the grapheme cluster
// of the most recently printed cell, using uniseg to confirm cp actually
// extends that cluster rather than starting a new (invisible) one.
func (t *Terminal) attachCombining(cp rune) error {
	if !t.lastCellValid {
		return nil
	}
	candidate := append(append([]rune(nil), t.lastGrapheme...), cp)
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(candidate), -1)
	if len([]rune(cluster)) <= len(t.lastGrapheme) {
		return nil
	}
	t.Grid().AddCombining(t.lastCellX, t.lastCellY, cp)
	t.lastGrapheme = candidate
	return nil
}

// PrintRepeat repeats the last-printed grapheme cluster (base rune plus
// any combining marks folded onto it) n times; n==0 is treated as n==1,
// matching the VT convention that a zero count means "the default of
// one" rather than "do nothing" -- a stream that painted nothing on
// repeat(0) would be the more surprising outcome for callers coming from
// real terminal emulators.
func (t *Terminal) PrintRepeat(n int) error {
	if len(t.lastGrapheme) == 0 {
		return nil
	}
	if n == 0 {
		n = 1
	}
	cluster := append([]rune(nil), t.lastGrapheme...)
	for i := 0; i < n; i++ {
		for _, r := range cluster {
			if err := t.Print(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// wrapLine marks the current row wrapped and advances to the next line at
// the left margin, scrolling the region if already at its bottom.
func (t *Terminal) wrapLine() {
	if r := t.Grid().Row(t.cursor.Y); r != nil {
		r.Wrapped = true
	}
	left := t.region.Left
	if left < 0 || left >= t.cols {
		left = 0
	}
	t.cursor.X = left
	t.Index()
}

// --- C0 controls ---

func (t *Terminal) Backspace() {
	left := t.region.Left
	if left < 0 {
		left = 0
	}
	if t.cursor.X > left {
		t.cursor.X--
	}
	t.pendingWrap = false
}

func (t *Terminal) CarriageReturn() {
	left := t.region.Left
	if left < 0 || left >= t.cols {
		left = 0
	}
	t.cursor.X = left
	t.pendingWrap = false
}

func (t *Terminal) Linefeed() {
	t.Index()
	if t.modes.Get(ModeLineFeedNewLine) {
		t.CarriageReturn()
	}
	t.pendingWrap = false
}

// Index moves down one line within the scroll region, scrolling if
// already at the bottom margin.
func (t *Terminal) Index() {
	top, bottom := t.region.Top, t.bottomMargin()
	if t.cursor.Y == bottom {
		t.Grid().ScrollUp(top, bottom+1, 1, t.styles)
	} else if t.cursor.Y < t.rows-1 {
		t.cursor.Y++
	}
	t.pendingWrap = false
}

// ReverseIndex moves up one line within the scroll region, scrolling down
// if already at the top margin.
func (t *Terminal) ReverseIndex() {
	top, bottom := t.region.Top, t.bottomMargin()
	if t.cursor.Y == top {
		t.Grid().ScrollDown(top, bottom+1, 1, t.styles)
	} else if t.cursor.Y > 0 {
		t.cursor.Y--
	}
	t.pendingWrap = false
}

func (t *Terminal) NextLine() {
	t.Index()
	t.CarriageReturn()
}

// --- Cursor motion ---

func (t *Terminal) CursorUp(n int) {
	n = atLeastOne(n)
	top := 0
	if t.modes.Get(ModeOrigin) {
		top = t.region.Top
	}
	t.cursor.Y = clampInt(t.cursor.Y-n, top, t.rows-1)
	t.pendingWrap = false
}

func (t *Terminal) CursorDown(n int) {
	n = atLeastOne(n)
	bottom := t.bottomMargin()
	if !t.modes.Get(ModeOrigin) {
		bottom = t.rows - 1
	}
	t.cursor.Y = clampInt(t.cursor.Y+n, 0, bottom)
	t.pendingWrap = false
}

func (t *Terminal) CursorLeft(n int) {
	n = atLeastOne(n)
	t.cursor.X = clampInt(t.cursor.X-n, 0, t.cols-1)
	t.pendingWrap = false
}

func (t *Terminal) CursorRight(n int) {
	n = atLeastOne(n)
	t.cursor.X = clampInt(t.cursor.X+n, 0, t.cols-1)
	t.pendingWrap = false
}

// SetCursorPos sets absolute position from 1-based row/col, clamped, with
// origin-mode row offset applied.
func (t *Terminal) SetCursorPos(row, col int) {
	y := row - 1
	x := col - 1
	if t.modes.Get(ModeOrigin) {
		y += t.region.Top
	}
	t.cursor.Y = clampInt(y, 0, t.rows-1)
	t.cursor.X = clampInt(x, 0, t.cols-1)
	t.pendingWrap = false
}

func (t *Terminal) CursorCol(n int) {
	t.cursor.X = clampInt(n-1, 0, t.cols-1)
	t.pendingWrap = false
}

func (t *Terminal) CursorRow(n int) {
	y := n - 1
	if t.modes.Get(ModeOrigin) {
		y += t.region.Top
	}
	t.cursor.Y = clampInt(y, 0, t.rows-1)
	t.pendingWrap = false
}

func (t *Terminal) CursorColRelative(delta int) {
	t.cursor.X = clampInt(saturatingAdd(t.cursor.X, delta), 0, t.cols-1)
	t.pendingWrap = false
}

func (t *Terminal) CursorRowRelative(delta int) {
	t.cursor.Y = clampInt(saturatingAdd(t.cursor.Y, delta), 0, t.rows-1)
	t.pendingWrap = false
}

func cursorStyleMap(v CursorStyleSetting) (CursorShape, CursorBlink) {
	switch v {
	case CursorStyleBlinkingBlock:
		return CursorShapeBlock, CursorBlinking
	case CursorStyleSteadyBlock:
		return CursorShapeBlock, CursorSteady
	case CursorStyleBlinkingUnderline:
		return CursorShapeUnderline, CursorBlinking
	case CursorStyleSteadyUnderline:
		return CursorShapeUnderline, CursorSteady
	case CursorStyleBlinkingBar:
		return CursorShapeBar, CursorBlinking
	case CursorStyleSteadyBar:
		return CursorShapeBar, CursorSteady
	default:
		return CursorShapeBlock, CursorSteady
	}
}

// SetCursorStyleValue applies the DECSCUSR encoding (default plus six
// shape/blink combinations).
func (t *Terminal) SetCursorStyleValue(v CursorStyleSetting) {
	shape, blink := cursorStyleMap(v)
	t.cursor.Shape = shape
	t.cursor.Blink = blink
	t.modes.Set(ModeCursorBlinking, blink == CursorBlinking)
}

// --- Erase ---

func (t *Terminal) EraseDisplay(mode EraseDisplayMode, selective bool) {
	g := t.Grid()
	y := t.cursor.Y
	switch mode {
	case EraseDisplayBelow:
		g.ClearRowRange(y, t.cursor.X, t.cols, selective, t.styles)
		for row := y + 1; row < t.rows; row++ {
			g.ClearRow(row, selective, t.styles)
		}
	case EraseDisplayAbove:
		for row := 0; row < y; row++ {
			g.ClearRow(row, selective, t.styles)
		}
		g.ClearRowRange(y, 0, t.cursor.X+1, selective, t.styles)
	case EraseDisplayComplete, EraseDisplayScrollComplete:
		for row := 0; row < t.rows; row++ {
			g.ClearRow(row, selective, t.styles)
		}
	case EraseDisplayScrollback:
		// No scrollback storage exists on this minimal grid; accepted as a
		// no-op beyond the visible screen, which erase_complete already
		// covers when combined.
	}
}

func (t *Terminal) EraseLine(mode EraseLineMode, selective bool) {
	g := t.Grid()
	y := t.cursor.Y
	switch mode {
	case EraseLineRight:
		g.ClearRowRange(y, t.cursor.X, t.cols, selective, t.styles)
	case EraseLineLeft:
		g.ClearRowRange(y, 0, t.cursor.X+1, selective, t.styles)
	case EraseLineComplete:
		g.ClearRow(y, selective, t.styles)
	case EraseLineRightUnlessPendingWrap:
		if !t.pendingWrap {
			g.ClearRowRange(y, t.cursor.X, t.cols, selective, t.styles)
		}
	}
}

// --- Line/character editing ---

func (t *Terminal) DeleteChars(n int) {
	t.Grid().DeleteChars(t.cursor.Y, t.cursor.X, atLeastOne(n), t.rightMargin(), t.styles)
}

func (t *Terminal) EraseChars(n int) {
	right := t.cursor.X + atLeastOne(n)
	if right > t.cols {
		right = t.cols
	}
	t.Grid().EraseChars(t.cursor.Y, t.cursor.X, right-t.cursor.X, false, t.styles)
}

func (t *Terminal) InsertLines(n int) {
	t.Grid().InsertLines(t.cursor.Y, atLeastOne(n), t.bottomMargin()+1, t.styles)
}

func (t *Terminal) InsertBlanks(n int) {
	t.Grid().InsertBlanks(t.cursor.Y, t.cursor.X, atLeastOne(n), t.rightMargin(), t.styles)
}

func (t *Terminal) DeleteLines(n int) {
	t.Grid().DeleteLines(t.cursor.Y, atLeastOne(n), t.bottomMargin()+1, t.styles)
}

func (t *Terminal) ScrollUp(n int) {
	t.Grid().ScrollUp(t.region.Top, t.bottomMargin()+1, atLeastOne(n), t.styles)
}

func (t *Terminal) ScrollDown(n int) {
	t.Grid().ScrollDown(t.region.Top, t.bottomMargin()+1, atLeastOne(n), t.styles)
}

// --- Tabs ---

func (t *Terminal) HorizontalTab(count int) {
	g := t.Grid()
	for i := 0; i < atLeastOne(count); i++ {
		prev := t.cursor.X
		next := g.NextTabStop(prev)
		if next <= prev {
			break
		}
		t.cursor.X = next
	}
	t.pendingWrap = false
}

func (t *Terminal) HorizontalTabBack(count int) {
	g := t.Grid()
	for i := 0; i < atLeastOne(count); i++ {
		prev := t.cursor.X
		next := g.PrevTabStop(prev)
		if next >= prev {
			break
		}
		t.cursor.X = next
	}
	t.pendingWrap = false
}

func (t *Terminal) TabClearCurrent() { t.Grid().TabClearCurrent(t.cursor.X) }
func (t *Terminal) TabClearAll()     { t.Grid().TabClearAll() }
func (t *Terminal) TabSet()          { t.Grid().TabSet(t.cursor.X) }
func (t *Terminal) TabReset()        { t.Grid().TabReset() }

// --- Margins ---

func (t *Terminal) SetTopAndBottomMargin(top, bottom int) {
	if top <= 0 {
		top = 1
	}
	if bottom <= 0 || bottom > t.rows {
		bottom = t.rows
	}
	t0, b0 := top-1, bottom-1
	if t0 >= b0 {
		return
	}
	t.region.Top, t.region.Bottom = t0, b0
	t.cursor.X, t.cursor.Y = 0, 0
	t.pendingWrap = false
}

func (t *Terminal) SetLeftAndRightMargin(left, right int) {
	if left <= 0 {
		left = 1
	}
	if right <= 0 || right > t.cols {
		right = t.cols
	}
	l0, r0 := left-1, right-1
	if l0 >= r0 {
		return
	}
	t.region.Left, t.region.Right = l0, r0
	t.cursor.X, t.cursor.Y = 0, 0
	t.pendingWrap = false
}

// AmbiguousCSIs implements the `CSI s` bifurcation: xterm overloads this
// sequence as a horizontal-margin reset when DECLRMM is enabled, and as
// plain save-cursor (DECSC) otherwise.
func (t *Terminal) AmbiguousCSIs() {
	if t.modes.Get(ModeEnableLeftAndRightMargin) {
		t.region.Left = 0
		t.region.Right = t.cols - 1
		return
	}
	t.SaveCursor()
}

// --- Cursor save/restore ---

// SaveCursor snapshots the cursor into t.savedCursor. The snapshot holds
// its own counted reference into the style set (via styleRef), distinct
// from the cursor's live reference, so a later SetAttribute that moves the
// cursor to a different style cannot leave the saved id under-counted. A
// previous snapshot's own reference is released before being overwritten.
func (t *Terminal) SaveCursor() {
	if t.savedCursor != nil && t.savedCursor.StyleID != style.DefaultId {
		t.styles.Release(t.savedCursor.StyleID)
	}
	snap := t.cursor.Snapshot(t.pendingWrap, t.modes.Get(ModeOrigin), t.charsets)
	if snap.StyleID != style.DefaultId {
		id, err := t.styleRef(snap.StyleID)
		if err != nil {
			id = style.DefaultId
		}
		snap.StyleID = id
	}
	t.savedCursor = &snap
}

// RestoreCursor writes t.savedCursor back into the cursor. The cursor
// releases whatever style it currently holds, then takes a fresh counted
// reference to the saved style (rather than stealing the snapshot's own
// reference) so the snapshot stays valid for a repeated DECRC with no
// intervening DECSC.
func (t *Terminal) RestoreCursor() {
	if t.savedCursor == nil {
		return
	}
	if t.cursor.StyleID != style.DefaultId {
		t.styles.Release(t.cursor.StyleID)
	}
	pendingWrap, origin := t.savedCursor.Restore(t.cursor, t.charsets)
	if t.cursor.StyleID != style.DefaultId {
		id, err := t.styleRef(t.cursor.StyleID)
		if err != nil {
			id = style.DefaultId
		}
		t.cursor.StyleID = id
	}
	t.pendingWrap = pendingWrap
	t.modes.Set(ModeOrigin, origin)
	t.cursor.X = clampInt(t.cursor.X, 0, t.cols-1)
	t.cursor.Y = clampInt(t.cursor.Y, 0, t.rows-1)
}

// --- Charsets ---

func (t *Terminal) InvokeCharset(bank CharsetBank, locking bool) {
	shift := ShiftSingle
	if locking {
		shift = ShiftLocking
	}
	t.charsets.Invoke(bank, shift)
}

func (t *Terminal) ConfigureCharset(slot CharsetBank, set CharsetSet) {
	t.charsets.Configure(slot, set)
}

// --- SGR ---

func applySGR(base style.Style, attr SGRAttr) style.Style {
	s := base
	switch attr.Kind {
	case SGRReset:
		s = style.Default
	case SGRBold:
		s.Flags |= style.FlagBold
	case SGRBoldOff:
		s.Flags &^= style.FlagBold
	case SGRFaint:
		s.Flags |= style.FlagFaint
	case SGRFaintOff:
		s.Flags &^= style.FlagFaint
	case SGRItalic:
		s.Flags |= style.FlagItalic
	case SGRItalicOff:
		s.Flags &^= style.FlagItalic
	case SGRUnderline:
		s.UnderlineStyle = attr.UnderlineStyle
	case SGRUnderlineOff:
		s.UnderlineStyle = style.UnderlineNone
	case SGRBlink:
		s.Flags |= style.FlagBlink
	case SGRBlinkOff:
		s.Flags &^= style.FlagBlink
	case SGRInverse:
		s.Flags |= style.FlagInverse
	case SGRInverseOff:
		s.Flags &^= style.FlagInverse
	case SGRInvisible:
		s.Flags |= style.FlagInvisible
	case SGRInvisibleOff:
		s.Flags &^= style.FlagInvisible
	case SGRStrikethrough:
		s.Flags |= style.FlagStrikethrough
	case SGRStrikethroughOff:
		s.Flags &^= style.FlagStrikethrough
	case SGROverline:
		s.Flags |= style.FlagOverline
	case SGROverlineOff:
		s.Flags &^= style.FlagOverline
	case SGRForeground:
		s.Fg = attr.Color
	case SGRDefaultForeground:
		s.Fg = style.None
	case SGRBackground:
		s.Bg = attr.Color
	case SGRDefaultBackground:
		s.Bg = style.None
	case SGRUnderlineColor:
		s.Underline = attr.Color
	case SGRDefaultUnderlineColor:
		s.Underline = style.None
	case SGRUnknown:
		// Unrecognized SGR codes are silently ignored for forward-compat
		// with attributes this dispatcher doesn't model yet.
	}
	return s
}

// SetAttribute applies one SGR attribute to the cursor's pen. Application
// errors (style set exhaustion) are swallowed here rather than surfaced --
// the attribute is dropped and the cursor keeps its previous style.
func (t *Terminal) SetAttribute(attr SGRAttr) {
	current := t.styles.Get(t.cursor.StyleID)
	next := applySGR(current, attr)
	if next == current {
		return
	}
	newID, err := t.styles.Add(next)
	if err != nil {
		return
	}
	if t.cursor.StyleID != style.DefaultId {
		t.styles.Release(t.cursor.StyleID)
	}
	t.cursor.StyleID = newID
}

// --- Protected mode ---

func (t *Terminal) SetProtectedMode(mode ProtectedMode) {
	t.protectedMode = mode
}

// --- DECALN / full reset ---

func (t *Terminal) DECAln() {
	t.Grid().FillWithE(t.styles)
	t.region = ScrollingRegion{Top: 0, Bottom: t.rows - 1, Left: 0, Right: t.cols - 1}
	t.cursor.X, t.cursor.Y = 0, 0
	t.pendingWrap = false
}

// FullReset restores every piece of Terminal state a real DECSTR/RIS would
// touch: cursor, modes, margins, palette overrides, charsets, kitty
// keyboard stack, tab stops, and both screens' content (releasing every style
// reference along the way).
func (t *Terminal) FullReset() {
	for _, g := range []*Grid{t.primary, t.alternate} {
		for row := 0; row < g.Rows(); row++ {
			g.ClearRow(row, false, t.styles)
		}
		g.TabReset()
	}

	if t.cursor.StyleID != style.DefaultId {
		t.styles.Release(t.cursor.StyleID)
	}
	if t.savedCursor != nil && t.savedCursor.StyleID != style.DefaultId {
		t.styles.Release(t.savedCursor.StyleID)
	}

	t.activeID = ScreenPrimary
	t.cursor = NewCursor()
	t.pendingWrap = false
	t.savedCursor = nil

	t.modes = NewModeRegistry()
	t.modes.Set(ModeLineWrap, true)
	t.modes.Set(ModeShowCursor, true)

	t.mouseShiftCapture = nil
	t.mouseEvent = MouseEventNone
	t.mouseFormat = MouseFormatX10
	t.modifyOtherKeys2 = false
	t.shellRedrawsPrompt = false

	t.palette.ResetAll()
	t.statusDisplay = StatusDisplayMain
	t.mouseShape = ""
	t.protectedMode = ProtectedOff

	t.charsets = NewCharsets()
	t.kitty = NewKittyKeyboardStack()

	t.region = ScrollingRegion{Top: 0, Bottom: t.rows - 1, Left: 0, Right: t.cols - 1}

	t.hyperlink = nil
	t.links = make(map[string]string)

	t.lastGrapheme = nil
	t.lastCellValid = false
}

// --- Screen switching (invoked by setMode's side-effect table) ---

func (t *Terminal) enterAltScreen() {
	t.activeID = ScreenAlternate
}

func (t *Terminal) leaveAltScreen() {
	t.activeID = ScreenPrimary
}

func (t *Terminal) enterAltScreenSaveClear() {
	t.SaveCursor()
	t.activeID = ScreenAlternate
	g := t.Grid()
	for row := 0; row < g.Rows(); row++ {
		g.ClearRow(row, false, t.styles)
	}
}

func (t *Terminal) leaveAltScreenRestore() {
	t.activeID = ScreenPrimary
	t.RestoreCursor()
}

// Deccolm resizes to width (80 or 132) columns, clearing the active
// screen, as DECCOLM (mode 3) requires on every set or reset.
// Reallocating a Grid may fail conceptually under memory pressure; here it
// cannot (Go slices don't return allocation errors), so this never itself
// surfaces ErrAllocFailure -- kept as a plain method rather than
// `(error)` to avoid a dishonest error return that can never fire.
func (t *Terminal) Deccolm(width int) {
	if width <= 0 {
		width = DefaultCols
	}
	for _, g := range []*Grid{t.primary, t.alternate} {
		for row := 0; row < g.Rows(); row++ {
			g.ClearRow(row, false, t.styles)
		}
	}
	t.cols = width
	t.primary = NewGrid(t.cols, t.rows)
	t.alternate = NewGrid(t.cols, t.rows)
	t.region.Left = 0
	t.region.Right = t.cols - 1
	t.cursor.X, t.cursor.Y = 0, 0
	t.pendingWrap = false
}

// --- Hyperlinks ---

func (t *Terminal) StartHyperlink(uri, id string) {
	if id != "" {
		if existing, ok := t.links[id]; ok && uri == "" {
			uri = existing
		} else {
			t.links[id] = uri
		}
	}
	t.hyperlink = &Hyperlink{URI: uri, ID: id}
}

func (t *Terminal) EndHyperlink() {
	t.hyperlink = nil
}

// --- Semantic prompts ---

func (t *Terminal) currentRow() *Row {
	return t.Grid().Row(t.cursor.Y)
}

func (t *Terminal) MarkPromptStart(shellRedrawsPrompt bool) {
	if r := t.currentRow(); r != nil {
		r.Tag = RowTagPrompt
	}
	t.shellRedrawsPrompt = shellRedrawsPrompt
}

func (t *Terminal) MarkPromptContinuation() {
	if r := t.currentRow(); r != nil {
		r.Tag = RowTagPromptContinuation
	}
}

func (t *Terminal) MarkPromptEnd() {
	if r := t.currentRow(); r != nil {
		r.Tag = RowTagInput
	}
}

func (t *Terminal) MarkEndOfInput() {
	if r := t.currentRow(); r != nil {
		r.Tag = RowTagCommand
	}
}

func (t *Terminal) MarkEndOfCommand() {
	if r := t.currentRow(); r != nil {
		r.Tag = RowTagInput
	}
}

// --- Mouse shape / status display ---

func (t *Terminal) SetMouseShape(shape string) {
	t.mouseShape = shape
}

func (t *Terminal) SetActiveStatusDisplay(v StatusDisplay) {
	t.statusDisplay = v
}

// --- modify_key_format ---

func (t *Terminal) SetModifyKeyFormat(otherKeysNumeric bool) {
	t.modifyOtherKeys2 = false
	if otherKeysNumeric {
		t.modifyOtherKeys2 = true
	}
}

// --- Mouse shift-capture ---

func (t *Terminal) SetMouseShiftCapture(enabled bool) {
	t.mouseShiftCapture = &enabled
}

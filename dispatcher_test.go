package vtstate

import (
	"reflect"
	"testing"
)

// termSnapshot captures the observable state a no-op dispatch must leave
// untouched, deep-copying every slice/array/pointer field so later
// mutation of the live Terminal cannot retroactively change the snapshot.
type termSnapshot struct {
	cursor             Cursor
	pendingWrap        bool
	region             ScrollingRegion
	modesBits          [modeCount]bool
	mouseShiftCaptureSet bool
	mouseShiftCapture  bool
	mouseEvent         MouseEvent
	mouseFormat        MouseFormat
	modifyOtherKeys2   bool
	shellRedrawsPrompt bool
	paletteColors      [256]RGB
	paletteMask        bitset256
	statusDisplay      StatusDisplay
	mouseShape         string
	protectedMode      ProtectedMode
	charsetSlots       [4]CharsetSet
	charsetActive      CharsetBank
	kittyFrames        []KittyKeyboardFlags
	stylesLen          int
	primaryCells       [][]Cell
	alternateCells     [][]Cell
	activeID           ScreenID
}

func gridCells(g *Grid) [][]Cell {
	out := make([][]Cell, g.Rows())
	for y := 0; y < g.Rows(); y++ {
		row := g.Row(y)
		out[y] = append([]Cell(nil), row.Cells...)
	}
	return out
}

func snapshot(t *Terminal) termSnapshot {
	s := termSnapshot{
		cursor:             *t.cursor,
		pendingWrap:        t.pendingWrap,
		region:             t.region,
		modesBits:          t.modes.bits,
		mouseEvent:         t.mouseEvent,
		mouseFormat:        t.mouseFormat,
		modifyOtherKeys2:   t.modifyOtherKeys2,
		shellRedrawsPrompt: t.shellRedrawsPrompt,
		paletteColors:      t.palette.Colors,
		paletteMask:        t.palette.mask,
		statusDisplay:      t.statusDisplay,
		mouseShape:         t.mouseShape,
		protectedMode:      t.protectedMode,
		charsetSlots:       t.charsets.Slots,
		charsetActive:      t.charsets.Active,
		kittyFrames:        append([]KittyKeyboardFlags(nil), t.kitty.frames...),
		stylesLen:          t.styles.Len(),
		primaryCells:       gridCells(t.primary),
		alternateCells:     gridCells(t.alternate),
		activeID:           t.activeID,
	}
	if t.mouseShiftCapture != nil {
		s.mouseShiftCaptureSet = true
		s.mouseShiftCapture = *t.mouseShiftCapture
	}
	return s
}

func TestNoopFamilyLeavesStateUnchanged(t *testing.T) {
	tags := []NoopTag{
		NoopDCSHook, NoopDCSPut, NoopDCSUnhook, NoopAPCStart, NoopAPCPut, NoopAPCEnd,
		NoopBell, NoopEnquiry, NoopRequestMode, NoopRequestModeDEC, NoopSizeReport,
		NoopXTVersion, NoopDeviceAttributes, NoopDeviceStatus, NoopKittyKeyboardQuery,
		NoopKittyColorReport, NoopWindowTitle, NoopReportPWD, NoopShowDesktopNotification,
		NoopProgressReport, NoopClipboardContents, NoopTitlePush, NoopTitlePop,
		NoopConEmuSleep, NoopConEmuShowMessageBox, NoopConEmuChangeTabTitle,
		NoopConEmuWaitInput, NoopConEmuGuiMacro,
	}

	for _, tag := range tags {
		term := New(WithSize(10, 10))
		before := snapshot(term)

		if err := Dispatch(term, &ActionNoop{Tag: tag}); err != nil {
			t.Fatalf("tag %d: Dispatch returned error: %v", tag, err)
		}

		after := snapshot(term)
		if !reflect.DeepEqual(before, after) {
			t.Errorf("tag %d: state changed after no-op dispatch", tag)
		}
	}
}

func TestModeRoundTripViaDispatch(t *testing.T) {
	term := New(WithSize(10, 10))
	modes := []Mode{ModeAutorepeat, ModeReverseColors, ModeFocusEvent, ModeBracketedPaste}

	for _, m := range modes {
		if err := Dispatch(term, &ActionSetMode{Mode: m}); err != nil {
			t.Fatalf("SetMode: %v", err)
		}
		if !term.modes.Get(m) {
			t.Errorf("mode %d: expected true after SetMode", m)
		}

		if err := Dispatch(term, &ActionSaveMode{Mode: m}); err != nil {
			t.Fatalf("SaveMode: %v", err)
		}
		if err := Dispatch(term, &ActionResetMode{Mode: m}); err != nil {
			t.Fatalf("ResetMode: %v", err)
		}
		if term.modes.Get(m) {
			t.Errorf("mode %d: expected false after ResetMode", m)
		}
		if err := Dispatch(term, &ActionRestoreMode{Mode: m}); err != nil {
			t.Fatalf("RestoreMode: %v", err)
		}
		if !term.modes.Get(m) {
			t.Errorf("mode %d: expected true after RestoreMode", m)
		}
	}
}

func TestCursorMotionStaysInBounds(t *testing.T) {
	term := New(WithSize(10, 10))
	actions := []Action{
		&ActionCursorUp{N: 100},
		&ActionCursorDown{N: 5},
		&ActionCursorRight{N: 50},
		&ActionCursorLeft{N: 3},
		&ActionCursorColRelative{Delta: 1 << 30},
		&ActionCursorRowRelative{Delta: -(1 << 30)},
		&ActionCursorDown{N: 2},
	}
	for _, a := range actions {
		if err := Dispatch(term, a); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		x, y := term.cursor.X, term.cursor.Y
		if x < 0 || x >= term.cols || y < 0 || y >= term.rows {
			t.Fatalf("cursor out of bounds: (%d,%d) for %dx%d", x, y, term.cols, term.rows)
		}
	}
}

func TestAmbiguousCSIsWithMarginModeOn(t *testing.T) {
	term := New(WithSize(10, 10))
	if err := Dispatch(term, &ActionSetMode{Mode: ModeEnableLeftAndRightMargin}); err != nil {
		t.Fatal(err)
	}
	term.region.Left, term.region.Right = 2, 5

	if err := Dispatch(term, &ActionAmbiguousCSIs{}); err != nil {
		t.Fatal(err)
	}
	if term.region.Left != 0 || term.region.Right != term.cols-1 {
		t.Fatalf("region = %+v, want full width", term.region)
	}
}

func TestAmbiguousCSIsWithMarginModeOff(t *testing.T) {
	term := New(WithSize(10, 10))
	term.cursor.X, term.cursor.Y = 3, 4

	if err := Dispatch(term, &ActionAmbiguousCSIs{}); err != nil {
		t.Fatal(err)
	}

	term.cursor.X, term.cursor.Y = 9, 9
	if err := Dispatch(term, &ActionRestoreCursor{}); err != nil {
		t.Fatal(err)
	}
	if term.cursor.X != 3 || term.cursor.Y != 4 {
		t.Fatalf("cursor = (%d,%d), want (3,4) restored", term.cursor.X, term.cursor.Y)
	}
}

func TestColumn132ResizesUnconditionally(t *testing.T) {
	term := New(WithSize(80, 24))

	if err := Dispatch(term, &ActionSetMode{Mode: ModeColumn132}); err != nil {
		t.Fatal(err)
	}
	if term.cols != 132 {
		t.Fatalf("cols = %d, want 132 (DECCOLM has no enable_mode_3 precondition)", term.cols)
	}

	if err := Dispatch(term, &ActionResetMode{Mode: ModeColumn132}); err != nil {
		t.Fatal(err)
	}
	if term.cols != 80 {
		t.Fatalf("cols = %d, want 80 after DECCOLM reset", term.cols)
	}
}

func TestSaveRestoreCursorDoesNotUnderCountStyleRefs(t *testing.T) {
	term := New(WithSize(10, 10))

	if err := Dispatch(term, &ActionSetAttribute{Attr: SGRAttr{Kind: SGRBold}}); err != nil {
		t.Fatal(err)
	}
	styleA := term.cursor.StyleID
	if err := Dispatch(term, &ActionPrint{Rune: 'x'}); err != nil {
		t.Fatal(err)
	}
	if err := Dispatch(term, &ActionSaveCursor{}); err != nil {
		t.Fatal(err)
	}
	if err := Dispatch(term, &ActionSetAttribute{Attr: SGRAttr{Kind: SGRItalic}}); err != nil {
		t.Fatal(err)
	}
	if term.cursor.StyleID == styleA {
		t.Fatalf("expected cursor to move off style A after a further SGR change")
	}
	if err := Dispatch(term, &ActionRestoreCursor{}); err != nil {
		t.Fatal(err)
	}
	if term.cursor.StyleID != styleA {
		t.Fatalf("cursor.StyleID = %d, want restored %d", term.cursor.StyleID, styleA)
	}

	// The cell printed before SaveCursor and the just-restored cursor both
	// still reference style A; a further SGR change must only release the
	// cursor's own reference, not tip A into deallocation out from under
	// the live cell.
	if rc := term.styles.RefCount(styleA); rc < 2 {
		t.Fatalf("RefCount(A) = %d, want >= 2 (cell + restored cursor)", rc)
	}
	if err := Dispatch(term, &ActionSetAttribute{Attr: SGRAttr{Kind: SGRItalic}}); err != nil {
		t.Fatal(err)
	}
	if rc := term.styles.RefCount(styleA); rc < 1 {
		t.Fatalf("RefCount(A) = %d, want >= 1 (cell still references it)", rc)
	}

	// The cell's style must still resolve without panicking.
	c := term.Grid().Cell(0, 0)
	_ = term.styles.Get(c.StyleID)
}

func TestSGRErrorsAreSwallowedNotSurfaced(t *testing.T) {
	term := New(WithSize(2, 2), WithStyleCapacity(1))
	if err := Dispatch(term, &ActionSetAttribute{Attr: SGRAttr{Kind: SGRBold}}); err != nil {
		t.Fatal(err)
	}
	// The set's only slot now holds bold, so bold+italic cannot be interned.
	err := Dispatch(term, &ActionSetAttribute{Attr: SGRAttr{Kind: SGRItalic}})
	if err != nil {
		t.Fatalf("SGR application error leaked through Dispatch: %v", err)
	}
}

package vtstate

import "github.com/quietlynx/vtstate/style"

// Action is the tagged union of everything the (external) parser can hand
// the dispatcher. Per spec design notes this is modeled as a sum of
// records -- one concrete type per tag, each carrying its own payload
// inline -- rather than a single enum plus a side lookup table, so a type
// switch in Dispatch gets a distinct, statically known payload shape for
// every case.
type Action interface {
	isAction()
}

type baseAction struct{}

func (baseAction) isAction() {}

// --- Printing ---

type ActionPrint struct {
	baseAction
	Rune rune
}

type ActionPrintRepeat struct {
	baseAction
	Count int
}

// --- C0 controls ---

type ActionBackspace struct{ baseAction }
type ActionCarriageReturn struct{ baseAction }
type ActionLinefeed struct{ baseAction }
type ActionIndex struct{ baseAction }
type ActionReverseIndex struct{ baseAction }
type ActionNextLine struct{ baseAction } // index then carriage_return

// --- Cursor motion ---

type ActionCursorUp struct {
	baseAction
	N int
}
type ActionCursorDown struct {
	baseAction
	N int
}
type ActionCursorLeft struct {
	baseAction
	N int
}
type ActionCursorRight struct {
	baseAction
	N int
}
type ActionCursorPos struct {
	baseAction
	Row, Col int // 1-based
}
type ActionCursorCol struct {
	baseAction
	N int
}
type ActionCursorRow struct {
	baseAction
	N int
}
type ActionCursorColRelative struct {
	baseAction
	Delta int
}
type ActionCursorRowRelative struct {
	baseAction
	Delta int
}

// CursorStyleSetting is the DECSCUSR encoding: "default" (steady block)
// plus the six combinations of block/underline/bar with blinking/steady.
type CursorStyleSetting int

const (
	CursorStyleDefault CursorStyleSetting = iota
	CursorStyleBlinkingBlock
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

type ActionSetCursorStyle struct {
	baseAction
	Value CursorStyleSetting
}

// --- Erase ---

type EraseDisplayMode int

const (
	EraseDisplayBelow EraseDisplayMode = iota
	EraseDisplayAbove
	EraseDisplayComplete
	EraseDisplayScrollback
	EraseDisplayScrollComplete
)

type EraseLineMode int

const (
	EraseLineRight EraseLineMode = iota
	EraseLineLeft
	EraseLineComplete
	EraseLineRightUnlessPendingWrap
)

type ActionEraseDisplay struct {
	baseAction
	Mode      EraseDisplayMode
	Selective bool
}

type ActionEraseLine struct {
	baseAction
	Mode      EraseLineMode
	Selective bool
}

// --- Line/character editing ---

type ActionDeleteChars struct {
	baseAction
	N int
}
type ActionEraseChars struct {
	baseAction
	N int
}
type ActionInsertLines struct {
	baseAction
	N int
}
type ActionInsertBlanks struct {
	baseAction
	N int
}
type ActionDeleteLines struct {
	baseAction
	N int
}
type ActionScrollUp struct {
	baseAction
	N int
}
type ActionScrollDown struct {
	baseAction
	N int
}

// --- Tabs ---

type ActionHorizontalTab struct {
	baseAction
	Count int
}
type ActionHorizontalTabBack struct {
	baseAction
	Count int
}
type ActionTabClearCurrent struct{ baseAction }
type ActionTabClearAll struct{ baseAction }
type ActionTabSet struct{ baseAction }
type ActionTabReset struct{ baseAction }

// --- Modes ---

type ActionSetMode struct {
	baseAction
	Mode Mode
}
type ActionResetMode struct {
	baseAction
	Mode Mode
}
type ActionSaveMode struct {
	baseAction
	Mode Mode
}
type ActionRestoreMode struct {
	baseAction
	Mode Mode
}

// --- Margins ---

type ActionTopAndBottomMargin struct {
	baseAction
	Top, Bottom int
}
type ActionLeftAndRightMargin struct {
	baseAction
	Left, Right int
}

// ActionAmbiguousCSIs is the bare `CSI s` sequence, whose meaning depends
// on ModeEnableLeftAndRightMargin (see setLeftAndRightMarginOrSaveCursor).
type ActionAmbiguousCSIs struct{ baseAction }

// --- Cursor save/restore ---

type ActionSaveCursor struct{ baseAction }
type ActionRestoreCursor struct{ baseAction }

// --- Charsets ---

type ActionInvokeCharset struct {
	baseAction
	Bank    CharsetBank
	Locking bool
}
type ActionConfigureCharset struct {
	baseAction
	Slot CharsetBank
	Set  CharsetSet
}

// --- SGR ---

// SGRAttrKind enumerates the SGR attribute families set_attribute can
// carry. Kinds ending in Off clear the corresponding flag.
type SGRAttrKind int

const (
	SGRUnknown SGRAttrKind = iota
	SGRReset
	SGRBold
	SGRBoldOff
	SGRFaint
	SGRFaintOff
	SGRItalic
	SGRItalicOff
	SGRUnderline
	SGRUnderlineOff
	SGRBlink
	SGRBlinkOff
	SGRInverse
	SGRInverseOff
	SGRInvisible
	SGRInvisibleOff
	SGRStrikethrough
	SGRStrikethroughOff
	SGROverline
	SGROverlineOff
	SGRForeground
	SGRBackground
	SGRUnderlineColor
	SGRDefaultForeground
	SGRDefaultBackground
	SGRDefaultUnderlineColor
)

// SGRAttr is one SGR attribute value. UnderlineStyle is meaningful only
// for Kind == SGRUnderline; Color only for the three color kinds.
type SGRAttr struct {
	Kind           SGRAttrKind
	UnderlineStyle style.Underline
	Color          style.Color
}

type ActionSetAttribute struct {
	baseAction
	Attr SGRAttr
}

// --- Protected mode ---

type ProtectedMode int

const (
	ProtectedOff ProtectedMode = iota
	ProtectedISO
	ProtectedDEC
)

type ActionSetProtectedMode struct {
	baseAction
	Mode ProtectedMode
}

// --- Mouse shift-capture ---

type ActionMouseShiftCapture struct {
	baseAction
	Enabled bool
}

// --- Kitty keyboard ---

type ActionKittyPush struct {
	baseAction
	Flags KittyKeyboardFlags
}
type ActionKittyPop struct {
	baseAction
	N int
}
type ActionKittySet struct {
	baseAction
	Op    KittyKeyboardOp
	Flags KittyKeyboardFlags
}

// --- modify_key_format ---

type ActionModifyKeyFormat struct {
	baseAction
	OtherKeysNumeric bool
}

// --- Active status display ---

type StatusDisplay int

const (
	StatusDisplayMain StatusDisplay = iota
	StatusDisplayIndicator
)

type ActionActiveStatusDisplay struct {
	baseAction
	Value StatusDisplay
}

// --- DECALN / full reset ---

type ActionDECAln struct{ baseAction }
type ActionFullReset struct{ baseAction }

// Note: DECCOLM (80/132 column switch) and the alt-screen family are all
// reached through ActionSetMode/ActionResetMode with [ModeColumn132],
// [ModeAltScreenLegacy], [ModeAltScreen], and
// [ModeAltScreenSaveCursorClearEnter] -- the underlying terminal
// operations (deccolm, switchScreenMode) are internal side effects of
// setMode (dispatcher_mode.go), not independent action tags.

// --- Hyperlinks ---

type ActionStartHyperlink struct {
	baseAction
	URI, ID string
}
type ActionEndHyperlink struct{ baseAction }

// --- Semantic prompts ---

type ActionPromptStart struct {
	baseAction
	ShellRedrawsPrompt bool
}
type ActionPromptContinuation struct{ baseAction }
type ActionPromptEnd struct{ baseAction }
type ActionEndOfInput struct{ baseAction }
type ActionEndOfCommand struct{ baseAction }

// --- Mouse shape ---

type ActionMouseShape struct {
	baseAction
	Shape string
}

// --- OSC color operations (4.1.3) ---

type ColorOperation int

const (
	ColorOperationOSC4 ColorOperation = iota
	ColorOperationOSC104
	ColorOperationDynamic
)

type ColorTargetKind int

const (
	ColorTargetPalette ColorTargetKind = iota
	ColorTargetDynamic
	ColorTargetSpecial
)

type ColorTarget struct {
	Kind  ColorTargetKind
	Index int // valid when Kind == ColorTargetPalette
}

type ColorRequestKind int

const (
	ColorRequestSet ColorRequestKind = iota
	ColorRequestReset
	ColorRequestResetPalette
	ColorRequestQuery
	ColorRequestResetSpecial
)

type ColorRequest struct {
	Kind   ColorRequestKind
	Target ColorTarget
	Color  RGB
}

type ActionColorOperation struct {
	baseAction
	Op       ColorOperation
	Requests []ColorRequest
}

// --- No-op families (4.1.1) ---

// NoopTag enumerates every action explicitly accepted-and-ignored by this
// dispatcher: DCS/APC boundaries, and every response-requiring tag (device
// attributes/status, size/window-title queries, clipboard, notifications,
// title stack, kitty queries) plus the ConEmu OSC-9 subcommands vt.h names
// separately from the generic progress_report.
type NoopTag int

const (
	NoopDCSHook NoopTag = iota
	NoopDCSPut
	NoopDCSUnhook
	NoopAPCStart
	NoopAPCPut
	NoopAPCEnd
	NoopBell
	NoopEnquiry
	NoopRequestMode
	NoopRequestModeDEC
	NoopSizeReport
	NoopXTVersion
	NoopDeviceAttributes
	NoopDeviceStatus
	NoopKittyKeyboardQuery
	NoopKittyColorReport
	NoopWindowTitle
	NoopReportPWD
	NoopShowDesktopNotification
	NoopProgressReport
	NoopClipboardContents
	NoopTitlePush
	NoopTitlePop
	NoopConEmuSleep
	NoopConEmuShowMessageBox
	NoopConEmuChangeTabTitle
	NoopConEmuWaitInput
	NoopConEmuGuiMacro
)

type ActionNoop struct {
	baseAction
	Tag NoopTag
}

package vtstate

import "github.com/quietlynx/vtstate/style"

const (
	// DefaultCols and DefaultRows match common xterm defaults.
	DefaultCols = 80
	DefaultRows = 24
	// DefaultStyleCapacity is generous enough for a full page of unique
	// per-cell styles at typical terminal sizes.
	DefaultStyleCapacity = 16384
)

// MouseEvent is the terminal's mouse-reporting granularity.
type MouseEvent int

const (
	MouseEventNone MouseEvent = iota
	MouseEventX10
	MouseEventNormal
	MouseEventButton
	MouseEventAny
)

// MouseFormat is the wire encoding used for mouse reports.
type MouseFormat int

const (
	MouseFormatX10 MouseFormat = iota
	MouseFormatUTF8
	MouseFormatSGR
	MouseFormatURXVT
	MouseFormatSGRPixels
)

// ScreenID selects between the primary and alternate screen buffers.
type ScreenID int

const (
	ScreenPrimary ScreenID = iota
	ScreenAlternate
)

// ScrollingRegion is the current top/bottom/left/right scroll margins,
// inclusive, 0-based.
type ScrollingRegion struct {
	Top, Bottom, Left, Right int
}

// Hyperlink associates cells with an OSC 8 clickable URI.
type Hyperlink struct {
	URI string
	ID  string
}

// Terminal is the mutable state object the dispatcher applies actions to.
// It owns the screen grids, cursor, mode registry, palette, style set,
// kitty-keyboard stack, and charset banks, and exposes no locking of its
// own: callers are responsible for serializing access.
type Terminal struct {
	cols, rows int

	region ScrollingRegion

	primary     *Grid
	alternate   *Grid
	activeID    ScreenID
	autoResize  bool

	cursor      *Cursor
	pendingWrap bool
	savedCursor *SavedCursor

	modes *ModeRegistry

	mouseShiftCapture *bool
	mouseEvent        MouseEvent
	mouseFormat       MouseFormat
	modifyOtherKeys2  bool
	shellRedrawsPrompt bool

	palette *ColorPalette

	statusDisplay StatusDisplay
	mouseShape    string

	protectedMode ProtectedMode

	charsets *Charsets
	kitty    *KittyKeyboardStack

	styleBuf []style.Entry
	styles   *style.Set

	hyperlink *Hyperlink
	links     map[string]string // id -> uri, for repeated OSC 8 references

	// lastGrapheme is the full cluster (base rune + combining marks) of
	// the most recently printed cell, and lastCellX/Y its position, used
	// to grow the cluster when a combining mark follows and to replay it
	// wholesale for print_repeat.
	lastGrapheme        []rune
	lastCellX, lastCellY int
	lastCellValid        bool
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithSize sets the terminal dimensions. Values <= 0 fall back to
// [DefaultCols]/[DefaultRows].
func WithSize(cols, rows int) Option {
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	return func(t *Terminal) {
		t.cols = cols
		t.rows = rows
	}
}

// WithStyleCapacity overrides the Style Set's fixed capacity. Values <= 0
// fall back to [DefaultStyleCapacity].
func WithStyleCapacity(capacity int) Option {
	return func(t *Terminal) {
		if capacity <= 0 {
			capacity = DefaultStyleCapacity
		}
		layout := style.NewLayout(capacity)
		t.styleBuf = make([]style.Entry, layout.Capacity)
		t.styles = style.NewSet(t.styleBuf, layout, style.Config{})
	}
}

// WithDefaultPalette overrides the palette a fresh Terminal (and every
// subsequent full reset) starts from. Defaults to [DefaultANSIPalette].
func WithDefaultPalette(defaults [256]RGB) Option {
	return func(t *Terminal) {
		t.palette = NewColorPalette(defaults)
	}
}

// New constructs a Terminal ready to receive dispatched actions: default
// 80x24 primary/alternate grids, every mode off except line wrap and show
// cursor, a fresh style set at [DefaultStyleCapacity], and ASCII charsets.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		cols: DefaultCols,
		rows: DefaultRows,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.styles == nil {
		layout := style.NewLayout(DefaultStyleCapacity)
		t.styleBuf = make([]style.Entry, layout.Capacity)
		t.styles = style.NewSet(t.styleBuf, layout, style.Config{})
	}
	if t.palette == nil {
		t.palette = NewColorPalette(DefaultANSIPalette())
	}

	t.primary = NewGrid(t.cols, t.rows)
	t.alternate = NewGrid(t.cols, t.rows)
	t.activeID = ScreenPrimary

	t.cursor = NewCursor()
	t.modes = NewModeRegistry()
	t.modes.Set(ModeLineWrap, true)
	t.modes.Set(ModeShowCursor, true)

	t.charsets = NewCharsets()
	t.kitty = NewKittyKeyboardStack()

	t.region = ScrollingRegion{Top: 0, Bottom: t.rows - 1, Left: 0, Right: t.cols - 1}

	t.links = make(map[string]string)

	return t
}

// Grid returns the active screen's grid.
func (t *Terminal) Grid() *Grid {
	if t.activeID == ScreenAlternate {
		return t.alternate
	}
	return t.primary
}

// Cols returns the terminal width.
func (t *Terminal) Cols() int { return t.cols }

// Rows returns the terminal height.
func (t *Terminal) Rows() int { return t.rows }

// Cursor returns the live cursor. Mutating it directly bypasses dispatch
// bookkeeping (pending-wrap, style refcounts) -- prefer the operations in
// terminal_ops.go.
func (t *Terminal) Cursor() *Cursor { return t.cursor }

// Region returns the current scrolling region.
func (t *Terminal) Region() ScrollingRegion { return t.region }

// Modes returns the mode registry.
func (t *Terminal) Modes() *ModeRegistry { return t.modes }

// Palette returns the color palette.
func (t *Terminal) Palette() *ColorPalette { return t.palette }

// Styles returns the style set backing every cell's StyleID.
func (t *Terminal) Styles() *style.Set { return t.styles }

// Charsets returns the charset banks.
func (t *Terminal) Charsets() *Charsets { return t.charsets }

// Kitty returns the kitty-keyboard flag stack.
func (t *Terminal) Kitty() *KittyKeyboardStack { return t.kitty }

// ActiveScreen reports which screen buffer is live.
func (t *Terminal) ActiveScreen() ScreenID { return t.activeID }

// MouseShiftCapture returns the tri-state flag: nil means unset, which
// holds after construction or a full reset until a mouse shift-capture
// action is dispatched.
func (t *Terminal) MouseShiftCapture() *bool { return t.mouseShiftCapture }

// MouseEvent returns the current mouse-reporting granularity.
func (t *Terminal) MouseEvent() MouseEvent { return t.mouseEvent }

// MouseFormat returns the current mouse wire encoding.
func (t *Terminal) MouseFormat() MouseFormat { return t.mouseFormat }

// ModifyOtherKeys2 reports xterm's modifyOtherKeys level-2 flag.
func (t *Terminal) ModifyOtherKeys2() bool { return t.modifyOtherKeys2 }

// ShellRedrawsPrompt reports the flag OSC 133's prompt_start payload set.
func (t *Terminal) ShellRedrawsPrompt() bool { return t.shellRedrawsPrompt }

// StatusDisplay returns the active status-line/main-screen selector.
func (t *Terminal) StatusDisplay() StatusDisplay { return t.statusDisplay }

// MouseShape returns the last mouse-pointer shape name set via OSC.
func (t *Terminal) MouseShape() string { return t.mouseShape }

// ProtectedMode returns the current DECSCA protection state.
func (t *Terminal) ProtectedMode() ProtectedMode { return t.protectedMode }

// PendingWrap reports whether the cursor is in the autowrap-pending
// state: logically past the right margin, but not yet moved onto the
// next line until another character actually arrives.
func (t *Terminal) PendingWrap() bool { return t.pendingWrap }

// Hyperlink returns the hyperlink currently open for new cells, or nil.
func (t *Terminal) Hyperlink() *Hyperlink { return t.hyperlink }

// String renders the visible screen content, trailing empty lines
// omitted.
func (t *Terminal) String() string {
	g := t.Grid()
	lines := make([]string, g.Rows())
	last := -1
	for row := 0; row < g.Rows(); row++ {
		lines[row] = g.LineContent(row)
		if lines[row] != "" {
			last = row
		}
	}
	if last < 0 {
		return ""
	}
	out := lines[0]
	for i := 1; i <= last; i++ {
		out += "\n" + lines[i]
	}
	return out
}

package vtstate

import "github.com/quietlynx/vtstate/style"

// RowTag marks the semantic role OSC 133 (shell integration) assigns a row.
type RowTag int

const (
	RowTagNone RowTag = iota
	RowTagPrompt
	RowTagPromptContinuation
	RowTagInput
	RowTagCommand
)

// Cell is one grid position: a codepoint plus a style identifier referring
// into a [style.Set]. Colors and SGR flags never live on the cell itself --
// that is the whole point of the style set's content-addressed dedup.
type Cell struct {
	Rune       rune
	Combining  []rune // zero-width marks that extend Rune into one grapheme cluster
	StyleID    style.Id
	WideSpacer bool // second half of a wide (double-width) character
	Protected  bool // DECSCA: survives selective erase
}

// Grapheme returns the cell's full cluster: its base rune followed by any
// combining marks accumulated onto it.
func (c *Cell) Grapheme() []rune {
	if len(c.Combining) == 0 {
		return []rune{c.Rune}
	}
	out := make([]rune, 0, len(c.Combining)+1)
	out = append(out, c.Rune)
	return append(out, c.Combining...)
}

func blankCell(id style.Id) Cell {
	return Cell{Rune: ' ', StyleID: id}
}

// Row is one line of cells plus the metadata erase/scroll/semantic-prompt
// operations need per-row.
type Row struct {
	Cells              []Cell
	Wrapped            bool
	Tag                RowTag
	ShellRedrawsPrompt bool
}

func newRow(cols int, id style.Id) Row {
	cells := make([]Cell, cols)
	for i := range cells {
		cells[i] = blankCell(id)
	}
	return Row{Cells: cells}
}

// Grid is the minimal screen-buffer stand-in the dispatcher operates on --
// a fixed-size rectangle of [Cell] plus tab stops. It has no scrollback and
// does no rendering of its own; those belong to whatever consumes this
// state, not to the state itself.
type Grid struct {
	cols, rows int
	rowData    []Row
	tabStop    []bool
}

// NewGrid returns a grid of the given size, every cell holding the default
// style id, tab stops set every 8 columns.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows}
	g.rowData = make([]Row, rows)
	for i := range g.rowData {
		g.rowData[i] = newRow(cols, style.DefaultId)
	}
	g.tabStop = make([]bool, cols)
	g.resetTabStops()
	return g
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// Row returns a pointer to the row at y, or nil if out of bounds.
func (g *Grid) Row(y int) *Row {
	if y < 0 || y >= g.rows {
		return nil
	}
	return &g.rowData[y]
}

// Cell returns a pointer to the cell at (x,y), or nil if out of bounds.
func (g *Grid) Cell(x, y int) *Cell {
	r := g.Row(y)
	if r == nil || x < 0 || x >= g.cols {
		return nil
	}
	return &r.Cells[x]
}

// SetCell writes r/id into (x,y), releasing the style previously occupying
// that cell (if not the reserved default) before adopting the new one.
func (g *Grid) SetCell(x, y int, r rune, id style.Id, wideSpacer bool, styles *style.Set) {
	c := g.Cell(x, y)
	if c == nil {
		return
	}
	if c.StyleID != style.DefaultId {
		styles.Release(c.StyleID)
	}
	c.Rune = r
	c.Combining = nil
	c.StyleID = id
	c.WideSpacer = wideSpacer
}

// AddCombining appends a zero-width mark to the cell at (x,y), extending
// its grapheme cluster without touching its style or width.
func (g *Grid) AddCombining(x, y int, r rune) {
	c := g.Cell(x, y)
	if c == nil {
		return
	}
	c.Combining = append(c.Combining, r)
}

// clearCell resets a single cell to blank, releasing its style.
func (g *Grid) clearCell(x, y int, styles *style.Set) {
	c := g.Cell(x, y)
	if c == nil {
		return
	}
	if c.StyleID != style.DefaultId {
		styles.Release(c.StyleID)
	}
	*c = blankCell(style.DefaultId)
}

// clearCellSelective is clearCell but skips protected cells.
func (g *Grid) clearCellSelective(x, y int, selective bool, styles *style.Set) {
	c := g.Cell(x, y)
	if c == nil || (selective && c.Protected) {
		return
	}
	g.clearCell(x, y, styles)
}

// ClearRowRange blanks [startCol,endCol) on row, honoring selective erase.
func (g *Grid) ClearRowRange(row, startCol, endCol int, selective bool, styles *style.Set) {
	if row < 0 || row >= g.rows {
		return
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol > g.cols {
		endCol = g.cols
	}
	for c := startCol; c < endCol; c++ {
		g.clearCellSelective(c, row, selective, styles)
	}
}

// ClearRow blanks an entire row, releasing every cell's style.
func (g *Grid) ClearRow(row int, selective bool, styles *style.Set) {
	g.ClearRowRange(row, 0, g.cols, selective, styles)
	if r := g.Row(row); r != nil {
		r.Wrapped = false
	}
}

// releaseRow releases every style referenced by row before it is discarded
// or overwritten wholesale (scroll, resize).
func releaseRow(r *Row, styles *style.Set) {
	for i := range r.Cells {
		if r.Cells[i].StyleID != style.DefaultId {
			styles.Release(r.Cells[i].StyleID)
		}
	}
}

// ScrollUp shifts rows [top,bottom) up by n, discarding the top n rows and
// clearing the bottom n. Mirrors buffer.Buffer.ScrollUp's parameter shape.
func (g *Grid) ScrollUp(top, bottom, n int, styles *style.Set) {
	if n <= 0 || top >= bottom {
		return
	}
	if top < 0 {
		top = 0
	}
	if bottom > g.rows {
		bottom = g.rows
	}
	if n > bottom-top {
		n = bottom - top
	}

	for row := top; row < top+n; row++ {
		releaseRow(&g.rowData[row], styles)
	}
	for row := top; row < bottom-n; row++ {
		g.rowData[row] = g.rowData[row+n]
	}
	for row := bottom - n; row < bottom; row++ {
		g.rowData[row] = newRow(g.cols, style.DefaultId)
	}
}

// ScrollDown shifts rows [top,bottom) down by n, discarding the bottom n
// rows and clearing the top n.
func (g *Grid) ScrollDown(top, bottom, n int, styles *style.Set) {
	if n <= 0 || top >= bottom {
		return
	}
	if top < 0 {
		top = 0
	}
	if bottom > g.rows {
		bottom = g.rows
	}
	if n > bottom-top {
		n = bottom - top
	}

	for row := bottom - n; row < bottom; row++ {
		releaseRow(&g.rowData[row], styles)
	}
	for row := bottom - 1; row >= top+n; row-- {
		g.rowData[row] = g.rowData[row-n]
	}
	for row := top; row < top+n; row++ {
		g.rowData[row] = newRow(g.cols, style.DefaultId)
	}
}

// InsertLines inserts n blank lines at row within [row,bottom).
func (g *Grid) InsertLines(row, n, bottom int, styles *style.Set) {
	if row < 0 || row >= bottom || n <= 0 {
		return
	}
	g.ScrollDown(row, bottom, n, styles)
}

// DeleteLines removes n lines at row within [row,bottom).
func (g *Grid) DeleteLines(row, n, bottom int, styles *style.Set) {
	if row < 0 || row >= bottom || n <= 0 {
		return
	}
	g.ScrollUp(row, bottom, n, styles)
}

// InsertBlanks shifts [col,right] on row right by n, dropping content that
// falls off the right margin and filling the vacated columns with blanks.
func (g *Grid) InsertBlanks(row, col, n, right int, styles *style.Set) {
	r := g.Row(row)
	if r == nil || col < 0 || col > right || n <= 0 {
		return
	}
	if right >= g.cols {
		right = g.cols - 1
	}
	for c := right; c >= col+n; c-- {
		if r.Cells[c].StyleID != style.DefaultId {
			styles.Release(r.Cells[c].StyleID)
		}
		r.Cells[c] = r.Cells[c-n]
	}
	for c := col; c < col+n && c <= right; c++ {
		if r.Cells[c].StyleID != style.DefaultId {
			styles.Release(r.Cells[c].StyleID)
		}
		r.Cells[c] = blankCell(style.DefaultId)
	}
}

// DeleteChars shifts [col,right] on row left by n, dropping the leftmost n
// and filling the vacated right-hand columns with blanks.
func (g *Grid) DeleteChars(row, col, n, right int, styles *style.Set) {
	r := g.Row(row)
	if r == nil || col < 0 || col > right || n <= 0 {
		return
	}
	if right >= g.cols {
		right = g.cols - 1
	}
	for c := col; c < col+n && c <= right; c++ {
		if r.Cells[c].StyleID != style.DefaultId {
			styles.Release(r.Cells[c].StyleID)
		}
	}
	for c := col; c <= right-n; c++ {
		r.Cells[c] = r.Cells[c+n]
	}
	for c := right - n + 1; c <= right; c++ {
		if c < col {
			continue
		}
		r.Cells[c] = blankCell(style.DefaultId)
	}
}

// EraseChars blanks n cells starting at col on row, without shifting
// anything (unlike DeleteChars).
func (g *Grid) EraseChars(row, col, n int, selective bool, styles *style.Set) {
	g.ClearRowRange(row, col, col+n, selective, styles)
}

func (g *Grid) resetTabStops() {
	for i := range g.tabStop {
		g.tabStop[i] = i%8 == 0
	}
}

// TabSet marks a tab stop at col.
func (g *Grid) TabSet(col int) {
	if col >= 0 && col < g.cols {
		g.tabStop[col] = true
	}
}

// TabClearCurrent clears the tab stop at col.
func (g *Grid) TabClearCurrent(col int) {
	if col >= 0 && col < g.cols {
		g.tabStop[col] = false
	}
}

// TabClearAll clears every tab stop.
func (g *Grid) TabClearAll() {
	for i := range g.tabStop {
		g.tabStop[i] = false
	}
}

// TabReset restores the default every-8-columns tab stops.
func (g *Grid) TabReset() {
	g.resetTabStops()
}

// NextTabStop returns the next set tab stop strictly after col, or the
// rightmost column if none.
func (g *Grid) NextTabStop(col int) int {
	for c := col + 1; c < g.cols; c++ {
		if g.tabStop[c] {
			return c
		}
	}
	return g.cols - 1
}

// PrevTabStop returns the previous set tab stop strictly before col, or 0
// if none.
func (g *Grid) PrevTabStop(col int) int {
	for c := col - 1; c >= 0; c-- {
		if g.tabStop[c] {
			return c
		}
	}
	return 0
}

// FillWithE overwrites every cell with 'E' and the default style, per
// DECALN, releasing whatever styles were previously in play.
func (g *Grid) FillWithE(styles *style.Set) {
	for row := range g.rowData {
		for col := range g.rowData[row].Cells {
			c := &g.rowData[row].Cells[col]
			if c.StyleID != style.DefaultId {
				styles.Release(c.StyleID)
			}
			*c = Cell{Rune: 'E'}
		}
		g.rowData[row].Wrapped = false
	}
}

// LineContent returns the plain text of a row (trailing blanks trimmed,
// wide-char spacers skipped).
func (g *Grid) LineContent(row int) string {
	r := g.Row(row)
	if r == nil {
		return ""
	}
	runes := make([]rune, 0, len(r.Cells))
	last := -1
	for i := range r.Cells {
		c := &r.Cells[i]
		if c.WideSpacer {
			continue
		}
		ch := c.Rune
		if ch == 0 {
			ch = ' '
		}
		runes = append(runes, ch)
		runes = append(runes, c.Combining...)
		if ch != ' ' || len(c.Combining) > 0 {
			last = len(runes) - 1
		}
	}
	return string(runes[:last+1])
}

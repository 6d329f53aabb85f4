package vtstate

// Dispatch applies one Action to t, performing the exact state mutation
// its tag defines. Dispatch is a pure function of its input and t's
// current state: it performs no I/O and never writes a response back to a
// caller, even for the response-requiring tags folded into [ActionNoop]
// -- those exist purely so a stream stays parseable end-to-end without
// this package ever needing to answer a query it can't send anywhere.
//
// The only errors Dispatch returns come from allocator-backed operations:
// style-set exhaustion ([ErrOutOfStyleCapacity]) propagates from print and
// SGR is deliberately excluded from that (attribute errors are swallowed
// rather than aborting the stream).
func Dispatch(t *Terminal, a Action) error {
	switch act := a.(type) {

	// --- Printing ---
	case *ActionPrint:
		return t.Print(act.Rune)
	case *ActionPrintRepeat:
		return t.PrintRepeat(act.Count)

	// --- C0 controls ---
	case *ActionBackspace:
		t.Backspace()
	case *ActionCarriageReturn:
		t.CarriageReturn()
	case *ActionLinefeed:
		t.Linefeed()
	case *ActionIndex:
		t.Index()
	case *ActionReverseIndex:
		t.ReverseIndex()
	case *ActionNextLine:
		t.NextLine()

	// --- Cursor motion ---
	case *ActionCursorUp:
		t.CursorUp(act.N)
	case *ActionCursorDown:
		t.CursorDown(act.N)
	case *ActionCursorLeft:
		t.CursorLeft(act.N)
	case *ActionCursorRight:
		t.CursorRight(act.N)
	case *ActionCursorPos:
		t.SetCursorPos(act.Row, act.Col)
	case *ActionCursorCol:
		t.CursorCol(act.N)
	case *ActionCursorRow:
		t.CursorRow(act.N)
	case *ActionCursorColRelative:
		t.CursorColRelative(act.Delta)
	case *ActionCursorRowRelative:
		t.CursorRowRelative(act.Delta)
	case *ActionSetCursorStyle:
		t.SetCursorStyleValue(act.Value)

	// --- Erase ---
	case *ActionEraseDisplay:
		t.EraseDisplay(act.Mode, act.Selective)
	case *ActionEraseLine:
		t.EraseLine(act.Mode, act.Selective)

	// --- Line/character editing ---
	case *ActionDeleteChars:
		t.DeleteChars(act.N)
	case *ActionEraseChars:
		t.EraseChars(act.N)
	case *ActionInsertLines:
		t.InsertLines(act.N)
	case *ActionInsertBlanks:
		t.InsertBlanks(act.N)
	case *ActionDeleteLines:
		t.DeleteLines(act.N)
	case *ActionScrollUp:
		t.ScrollUp(act.N)
	case *ActionScrollDown:
		t.ScrollDown(act.N)

	// --- Tabs ---
	case *ActionHorizontalTab:
		t.HorizontalTab(act.Count)
	case *ActionHorizontalTabBack:
		t.HorizontalTabBack(act.Count)
	case *ActionTabClearCurrent:
		t.TabClearCurrent()
	case *ActionTabClearAll:
		t.TabClearAll()
	case *ActionTabSet:
		t.TabSet()
	case *ActionTabReset:
		t.TabReset()

	// --- Modes ---
	case *ActionSetMode:
		return setMode(t, act.Mode, true)
	case *ActionResetMode:
		return setMode(t, act.Mode, false)
	case *ActionSaveMode:
		saveMode(t, act.Mode)
	case *ActionRestoreMode:
		return restoreMode(t, act.Mode)

	// --- Margins ---
	case *ActionTopAndBottomMargin:
		t.SetTopAndBottomMargin(act.Top, act.Bottom)
	case *ActionLeftAndRightMargin:
		t.SetLeftAndRightMargin(act.Left, act.Right)
	case *ActionAmbiguousCSIs:
		t.AmbiguousCSIs()

	// --- Cursor save/restore ---
	case *ActionSaveCursor:
		t.SaveCursor()
	case *ActionRestoreCursor:
		t.RestoreCursor()

	// --- Charsets ---
	case *ActionInvokeCharset:
		t.InvokeCharset(act.Bank, act.Locking)
	case *ActionConfigureCharset:
		t.ConfigureCharset(act.Slot, act.Set)

	// --- SGR ---
	case *ActionSetAttribute:
		t.SetAttribute(act.Attr)

	// --- Protected mode ---
	case *ActionSetProtectedMode:
		t.SetProtectedMode(act.Mode)

	// --- Mouse shift-capture ---
	case *ActionMouseShiftCapture:
		t.SetMouseShiftCapture(act.Enabled)

	// --- Kitty keyboard ---
	case *ActionKittyPush:
		t.kitty.Push(act.Flags)
	case *ActionKittyPop:
		t.kitty.Pop(act.N)
	case *ActionKittySet:
		t.kitty.SetTop(act.Op, act.Flags)

	// --- modify_key_format ---
	case *ActionModifyKeyFormat:
		t.SetModifyKeyFormat(act.OtherKeysNumeric)

	// --- Active status display ---
	case *ActionActiveStatusDisplay:
		t.SetActiveStatusDisplay(act.Value)

	// --- DECALN / full reset ---
	case *ActionDECAln:
		t.DECAln()
	case *ActionFullReset:
		t.FullReset()

	// --- Hyperlinks ---
	case *ActionStartHyperlink:
		t.StartHyperlink(act.URI, act.ID)
	case *ActionEndHyperlink:
		t.EndHyperlink()

	// --- Semantic prompts ---
	case *ActionPromptStart:
		t.MarkPromptStart(act.ShellRedrawsPrompt)
	case *ActionPromptContinuation:
		t.MarkPromptContinuation()
	case *ActionPromptEnd:
		t.MarkPromptEnd()
	case *ActionEndOfInput:
		t.MarkEndOfInput()
	case *ActionEndOfCommand:
		t.MarkEndOfCommand()

	// --- Mouse shape ---
	case *ActionMouseShape:
		t.SetMouseShape(act.Shape)

	// --- Color operations ---
	case *ActionColorOperation:
		dispatchColorOperation(t, act)

	// --- No-op families: accepted, never mutate state, never respond. ---
	case *ActionNoop:
		// Intentionally empty: response-requiring and DCS/APC-boundary
		// tags are all folded into this single case.

	default:
		// An action type this dispatcher does not recognize. Reserved for
		// forward-compatibility with parser changes; never surfaced as
		// ErrInvalidAction -- an unrecognized tag is accepted and ignored,
		// not rejected.
	}

	return nil
}

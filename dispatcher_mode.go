package vtstate

// setMode writes m's bit into the registry, then runs the mode-specific
// side effect. Side effects observe the already-written bit, which
// matters for e.g. enable_left_and_right_margin off needing to see the
// new value before resetting horizontal margins.
func setMode(t *Terminal, m Mode, enabled bool) error {
	t.modes.Set(m, enabled)
	return runModeSideEffect(t, m, enabled)
}

func runModeSideEffect(t *Terminal, m Mode, enabled bool) error {
	switch m {
	case ModeOrigin:
		t.cursor.X, t.cursor.Y = 0, 0
		t.pendingWrap = false

	case ModeEnableLeftAndRightMargin:
		if !enabled {
			t.region.Left = 0
			t.region.Right = t.cols - 1
		}

	case ModeAltScreenLegacy:
		if enabled {
			t.enterAltScreen()
		} else {
			t.leaveAltScreen()
		}

	case ModeAltScreen:
		if enabled {
			t.enterAltScreen()
		} else {
			t.leaveAltScreen()
		}

	case ModeAltScreenSaveCursorClearEnter:
		if enabled {
			t.enterAltScreenSaveClear()
		} else {
			t.leaveAltScreenRestore()
		}

	case ModeSaveCursorPrivate:
		if enabled {
			t.SaveCursor()
		} else {
			t.RestoreCursor()
		}

	case ModeColumn132:
		if enabled {
			t.Deccolm(132)
		} else {
			t.Deccolm(80)
		}

	case ModeMouseEventX10:
		t.setMouseEvent(enabled, MouseEventX10)
	case ModeMouseEventNormal:
		t.setMouseEvent(enabled, MouseEventNormal)
	case ModeMouseEventButton:
		t.setMouseEvent(enabled, MouseEventButton)
	case ModeMouseEventAny:
		t.setMouseEvent(enabled, MouseEventAny)

	case ModeMouseFormatUTF8:
		t.setMouseFormat(enabled, MouseFormatUTF8)
	case ModeMouseFormatSGR:
		t.setMouseFormat(enabled, MouseFormatSGR)
	case ModeMouseFormatURXVT:
		t.setMouseFormat(enabled, MouseFormatURXVT)
	case ModeMouseFormatSGRPixels:
		t.setMouseFormat(enabled, MouseFormatSGRPixels)

	default:
		// autorepeat, reverse_colors, enable_mode_3, synchronized_output,
		// linefeed, in_band_size_reports, focus_event, and everything else:
		// the bit itself is the only observable effect.
	}
	return nil
}

func (t *Terminal) setMouseEvent(enabled bool, kind MouseEvent) {
	if enabled {
		t.mouseEvent = kind
	} else {
		t.mouseEvent = MouseEventNone
	}
}

func (t *Terminal) setMouseFormat(enabled bool, kind MouseFormat) {
	if enabled {
		t.mouseFormat = kind
	} else {
		t.mouseFormat = MouseFormatX10
	}
}

func saveMode(t *Terminal, m Mode) {
	t.modes.Save(m)
}

func restoreMode(t *Terminal, m Mode) error {
	v := t.modes.Restore(m)
	return setMode(t, m, v)
}

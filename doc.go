// Package vtstate implements the state-mutating core of a terminal
// emulator: an action dispatcher that applies parsed VT/ANSI escape
// sequence actions to an in-memory [Terminal], and (in the style
// subpackage) the compact, ref-counted store the dispatcher and screen
// grid share for per-cell visual attributes.
//
// This package does not parse bytes and does not render pixels. It
// consumes an already-tokenized [Action] stream -- print, cursor motion,
// erase, mode changes, OSC color operations, and so on -- and mutates
// cursor position, the active screen grid, the mode registry, the color
// palette, and the style set accordingly. Turning raw bytes into [Action]
// values, and turning a [Terminal]'s cells into pixels, are both the
// caller's problem.
//
// # Quick start
//
//	term := vtstate.New(vtstate.WithSize(80, 24))
//	vtstate.Dispatch(term, &vtstate.ActionPrint{Rune: 'H'})
//	vtstate.Dispatch(term, &vtstate.ActionPrint{Rune: 'i'})
//	fmt.Println(term.String()) // "Hi"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: owns the cursor, screen grids, mode registry, palette,
//     charsets, kitty-keyboard stack, and style set.
//   - [Grid]: a fixed-size rectangle of [Cell], each holding a codepoint
//     and a 16-bit style.Id rather than resolved colors.
//   - [style.Set] (subpackage style): the content-addressed, ref-counted
//     table [Cell.StyleID] refers into.
//   - [Action]: the tagged union of everything [Dispatch] accepts, one
//     concrete Go type per VT/ANSI action tag.
//
// # Dispatch
//
// [Dispatch] is the single entry point. It never emits bytes back to a
// caller -- device-attribute replies, cursor-position reports, and other
// response-requiring sequences are accepted as no-ops (see [ActionNoop])
// so a stream stays parseable end-to-end without this package needing an
// output channel.
//
//	if err := vtstate.Dispatch(term, action); err != nil {
//	    // errors.Is(err, vtstate.ErrOutOfStyleCapacity): the style set is full.
//	}
//
// # Styles
//
// Cells never store colors or SGR flags directly. Instead a cell holds a
// style.Id, and the [Terminal]'s style.Set deduplicates identical styles
// across the whole grid via content-addressed hashing, so a page of
// thousands of cells sharing one color scheme costs one style entry, not
// one per cell. See the style subpackage for the packed 128-bit
// representation, hashing, and the serializer that turns a Style back
// into an SGR escape sequence.
//
// # Concurrency
//
// A [Terminal] has no internal locking. [Dispatch] processes one action
// at a time to completion; callers must serialize access to a given
// Terminal themselves. Distinct Terminals may be driven from different
// goroutines concurrently, each with exclusive ownership of its own.
package vtstate

package vtstate

import (
	"errors"
	"fmt"

	"github.com/quietlynx/vtstate/style"
)

// ErrAllocFailure wraps a failed allocation-backed operation (screen
// resize, hyperlink interning, large insertions).
var ErrAllocFailure = errors.New("vtstate: allocation failure")

// ErrOutOfStyleCapacity is returned when the Style Set is full. It wraps
// style.ErrOutOfSpace so callers can errors.Is against either.
var ErrOutOfStyleCapacity = fmt.Errorf("vtstate: %w", style.ErrOutOfSpace)

// ErrInvalidAction is reserved. This dispatcher never produces it: unknown
// SGR attributes and unknown DCS/APC payloads are silently ignored rather
// than rejected.
var ErrInvalidAction = errors.New("vtstate: invalid action")

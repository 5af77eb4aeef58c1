package primitives

import "errors"

// Sentinel errors for contract violations. Callers match with errors.Is;
// sites wrap them with context via fmt.Errorf("...: %w", ...).
var (
	// ErrIllegalArgument indicates a malformed argument set, e.g. zero or
	// multiple states where exactly one deterministic initial state is
	// required.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrUnsupportedOperation indicates an operation the automaton variant
	// does not allow, e.g. a second initial state on a DFA.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrUninitialized indicates a derived result was requested before the
	// required precomputation was performed, or after a mutation invalidated
	// it.
	ErrUninitialized = errors.New("uninitialized")
)

package definite

import "fmt"

// Any is the registry key for the wildcard handler, which runs on every
// successful transition before the state-specific handler. A state
// literally named "any" shares this slot.
const Any = "any"

// Handler is invoked during a transition into a state. It receives the
// target state name and the associated object (nil when none was
// provided). Handlers may mutate the associated object. A non-nil error
// abandons the pending transition and is returned to the caller
// unmodified.
type Handler func(state string, obj any) error

// callHandler invokes the handler registered under key with the target
// state and associated object. An absent handler is a no-op. A slot filled
// with a nil function fails with ErrInvalidHandler.
func (m *Machine) callHandler(key, state string, obj any) error {
	h, ok := m.handlers[key]
	if !ok {
		return nil
	}

	if h == nil {
		return fmt.Errorf("%w: the %q handler is nil", ErrInvalidHandler, key)
	}

	return h(state, obj)
}

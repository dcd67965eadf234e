/*
Copyright 2024 Robert Terhaar <robbyt@robbyt.net>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package definite

import (
	"fmt"
	"log/slog"
	"slices"
)

// Transitions maps a state name to the set of states reachable from it.
// A nil (or empty) slice marks a terminal state with no outgoing
// transitions. States that only appear inside a value slice do not need
// a key of their own.
type Transitions map[string][]string

// Machine is a finite state machine instance. It holds exactly one mutable
// field, the current state, which changes only through successful
// transitions.
//
// A Machine is not safe for concurrent use. Callers driving the same
// instance from multiple goroutines must serialize access externally.
type Machine struct {
	name         string
	transitions  Transitions
	defaultState string
	initialState string
	current      string
	obj          any
	handlers     map[string]Handler
	stateNames   []string
	logger       *slog.Logger
}

// Option is a functional option for configuring a Machine.
type Option func(*Machine)

// WithName sets the machine's name, used in log records and String output.
func WithName(name string) Option {
	return func(m *Machine) {
		if name != "" {
			m.name = name
		}
	}
}

// WithInitialState starts the machine in the given state instead of the
// default state. A name that is not a declared state is ignored and the
// default state is used.
func WithInitialState(state string) Option {
	return func(m *Machine) {
		m.initialState = state
	}
}

// WithObject attaches an associated object, passed to every handler
// invocation. The machine never reads or mutates it; only handlers may.
func WithObject(obj any) Option {
	return func(m *Machine) {
		m.obj = obj
	}
}

// WithHandler registers a handler that runs when the machine transitions
// into state. Use the Any key (or WithAnyHandler) to register the wildcard
// handler that runs on every transition.
func WithHandler(state string, h Handler) Option {
	return func(m *Machine) {
		m.handlers[state] = h
	}
}

// WithAnyHandler registers the wildcard handler, invoked on every
// successful transition before the state-specific handler.
func WithAnyHandler(h Handler) Option {
	return func(m *Machine) {
		m.handlers[Any] = h
	}
}

// WithLogHandler sets a custom slog handler for the Machine instance.
// For example, to use a JSON handler with debug level:
//
//	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	machine, err := definite.New(transitions, "draft", definite.WithLogHandler(handler))
func WithLogHandler(handler slog.Handler) Option {
	return func(m *Machine) {
		if handler != nil {
			m.logger = slog.New(handler.WithGroup("FSM"))
		}
	}
}

// New creates a Machine from a transition table and a default state.
// Both are validated before the instance is usable: an empty table fails
// with ErrNoStatesDefined, and a default state that is empty or not a key
// of the table fails with ErrInvalidDefaultState.
//
// The table is copied, so later mutation of the caller's map has no effect
// on the machine.
func New(transitions Transitions, defaultState string, opts ...Option) (*Machine, error) {
	m := &Machine{
		name:         "FSM",
		transitions:  copyTransitions(transitions),
		defaultState: defaultState,
		handlers:     make(map[string]Handler),
		logger:       slog.Default().WithGroup("FSM"),
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := m.setup(); err != nil {
		return nil, err
	}

	m.current = m.defaultState
	if m.initialState != "" && m.IsValid(m.initialState) {
		m.current = m.initialState
	}

	m.logger.Debug("Machine created", "name", m.name, "state", m.current)
	return m, nil
}

// setup validates the transition table and default state and caches the
// sorted state names. Idempotent.
func (m *Machine) setup() error {
	if len(m.transitions) == 0 {
		return fmt.Errorf("%w: %q has no allowed transitions", ErrNoStatesDefined, m.name)
	}

	if m.defaultState == "" {
		return fmt.Errorf("%w: %q has no default state", ErrInvalidDefaultState, m.name)
	}

	if _, ok := m.transitions[m.defaultState]; !ok {
		return fmt.Errorf(
			"%w: default state %q is not in the transition table",
			ErrInvalidDefaultState, m.defaultState)
	}

	names := make([]string, 0, len(m.transitions))
	for name := range m.transitions {
		names = append(names, name)
	}
	slices.Sort(names)
	m.stateNames = names
	return nil
}

// GetState returns the current state of the machine.
func (m *Machine) GetState() string {
	return m.current
}

// AllStates returns every declared state name in lexicographic order. The
// ordering is part of the contract, so callers may display or iterate the
// result deterministically.
func (m *Machine) AllStates() []string {
	return slices.Clone(m.stateNames)
}

// IsValid reports whether name is a declared state.
func (m *Machine) IsValid(name string) bool {
	_, ok := m.transitions[name]
	return ok
}

// IsAllowed reports whether the machine may transition from its current
// state to name. A terminal current state allows nothing.
func (m *Machine) IsAllowed(name string) bool {
	return slices.Contains(m.transitions[m.current], name)
}

// Transition moves the machine to state. The wildcard handler (if any)
// runs first, then the handler registered for state, both observing the
// pre-transition state through GetState. The current state changes only
// when every step completes without error.
//
// Returns ErrInvalidState when state is not declared,
// ErrTransitionNotAllowed when it is not reachable from the current state,
// ErrInvalidHandler when a handler slot holds a nil function, or the
// handler's own error, unmodified.
func (m *Machine) Transition(state string) error {
	return m.TransitionWith(state, m.obj)
}

// TransitionWith is Transition with a per-call associated object passed to
// the handlers in place of the one attached with WithObject.
func (m *Machine) TransitionWith(state string, obj any) error {
	if !m.IsValid(state) {
		return fmt.Errorf("%w: %q is not a recognized state", ErrInvalidState, state)
	}

	if !m.IsAllowed(state) {
		return fmt.Errorf(
			"%w: %q cannot transition to %q",
			ErrTransitionNotAllowed, m.current, state)
	}

	// Wildcard handler runs first, then the state-specific handler. Either
	// failing abandons the transition with the state unchanged.
	if err := m.callHandler(Any, state, obj); err != nil {
		return err
	}
	if err := m.callHandler(state, state, obj); err != nil {
		return err
	}

	from := m.current
	m.current = state
	m.logger.Debug("State transition", "name", m.name, "from", from, "to", state)
	return nil
}

// TransitionBool is Transition, reporting success instead of an error.
func (m *Machine) TransitionBool(state string) bool {
	return m.Transition(state) == nil
}

// String returns the machine's name.
func (m *Machine) String() string {
	return m.name
}

func copyTransitions(t Transitions) Transitions {
	out := make(Transitions, len(t))
	for state, next := range t {
		out[state] = slices.Clone(next)
	}
	return out
}

// Package store implements the in-memory action/reducer state
// container behind the tally UI.
//
// State is split into three independently-reduced slices (ui
// preferences, counter, todo list) composed into one State value. All
// mutation goes through Dispatch; reads return defensive snapshots
// that callers must treat as immutable. Dispatches are serialized by
// the single-threaded Bubble Tea event loop, so the store itself
// carries no locking.
package store

// Prefs holds the ui-preference slice.
type Prefs struct {
	DarkMode      bool
	BannerVisible bool
}

// Counter holds the counter slice. Value may go negative; there is no
// clamping.
type Counter struct {
	Value int64
}

// State is the aggregate of all slices.
type State struct {
	Prefs   Prefs
	Counter Counter
	Todos   []Todo
}

// DefaultState returns the initial state: banner visible, light mode,
// counter at zero, no todos.
func DefaultState() State {
	return State{Prefs: Prefs{BannerVisible: true}}
}

// Store is the process-wide holder of the aggregate state. Callers
// construct one at startup and pass it explicitly; there is no
// package-level instance.
type Store struct {
	state State
}

// New creates a store seeded with the given state.
func New(initial State) *Store {
	return &Store{state: initial}
}

// Dispatch applies an action to every slice reducer.
func (s *Store) Dispatch(a Action) {
	s.state = Reduce(s.state, a)
}

// State returns a snapshot of the current state. The todo slice is
// copied so that holding a snapshot across later dispatches is safe.
func (s *Store) State() State {
	st := s.state
	st.Todos = append([]Todo(nil), s.state.Todos...)
	return st
}

// Reduce maps (state, action) to the next state. It is pure: every
// slice reducer sees every action and ignores the ones it does not
// handle.
func Reduce(st State, a Action) State {
	st.Prefs = reducePrefs(st.Prefs, a)
	st.Counter = reduceCounter(st.Counter, a)
	st.Todos = reduceTodos(st.Todos, a)
	return st
}

package store

import "time"

// Action is a named, immutable request to transition state. The
// variants below form a closed set: every slice reducer switches over
// all of them and leaves state untouched for the ones it does not
// recognize.
type Action interface {
	isAction()
}

// ToggleDarkMode flips the dark-mode flag.
type ToggleDarkMode struct{}

// DismissBanner hides the informational banner.
type DismissBanner struct{}

// ShowBanner re-surfaces the informational banner.
type ShowBanner struct{}

// Increment adds one to the counter.
type Increment struct{}

// Decrement subtracts one from the counter.
type Decrement struct{}

// ResetCounter sets the counter back to zero.
type ResetCounter struct{}

// AddAmount adds an arbitrary (possibly negative or zero) amount to
// the counter.
type AddAmount struct {
	Amount int64
}

// AddTodo carries a fully-formed todo payload. Build it with
// PrepareAddTodo so the id and timestamp are computed exactly once,
// before the reducer runs; the reducer stays a pure function of
// (state, payload).
type AddTodo struct {
	ID        string
	Title     string
	CreatedAt time.Time
}

// ToggleTodo flips the done flag of the todo with the given id.
// Unknown ids are a silent no-op.
type ToggleTodo struct {
	ID string
}

// RemoveTodo drops the todo with the given id. Unknown ids are a
// silent no-op.
type RemoveTodo struct {
	ID string
}

// ClearTodos empties the todo list.
type ClearTodos struct{}

func (ToggleDarkMode) isAction() {}
func (DismissBanner) isAction()  {}
func (ShowBanner) isAction()     {}
func (Increment) isAction()      {}
func (Decrement) isAction()      {}
func (ResetCounter) isAction()   {}
func (AddAmount) isAction()      {}
func (AddTodo) isAction()        {}
func (ToggleTodo) isAction()     {}
func (RemoveTodo) isAction()     {}
func (ClearTodos) isAction()     {}

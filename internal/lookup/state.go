// Package lookup holds the view state of a word lookup and the controller
// that drives it from user submissions.
package lookup

import (
	"github.com/at-ishikawa/wordlens/internal/dictionary"
)

// State is the view state of the lookup page. It is a value; every change
// goes through Reduce.
type State struct {
	Query   string
	Loading bool
	Err     error
	Entry   *dictionary.Entry
	// Seq identifies the latest submission. Results carrying another Seq are stale.
	Seq uint64
}

// Event is a transition of State.
type Event interface {
	apply(State) State
}

// Rejected is a submission that failed validation. No request is issued
// and any in-flight request is superseded.
type Rejected struct {
	Query string
	Seq   uint64
	Err   error
}

func (e Rejected) apply(s State) State {
	return State{
		Query: e.Query,
		Seq:   e.Seq,
		Err:   e.Err,
	}
}

// Submitted starts a request. The previous entry and error are cleared.
type Submitted struct {
	Query string
	Seq   uint64
}

func (e Submitted) apply(s State) State {
	return State{
		Query:   e.Query,
		Seq:     e.Seq,
		Loading: true,
	}
}

// Settled is the outcome of the request started with Seq.
type Settled struct {
	Seq   uint64
	Entry *dictionary.Entry
	Err   error
}

func (e Settled) apply(s State) State {
	if e.Seq != s.Seq || !s.Loading {
		return s
	}
	next := State{
		Query: s.Query,
		Seq:   s.Seq,
	}
	if e.Err != nil {
		next.Err = e.Err
		return next
	}
	next.Entry = e.Entry
	return next
}

// Reduce applies event to s and returns the next state.
func Reduce(s State, event Event) State {
	return event.apply(s)
}

// IsStale reports whether a Settled event would be ignored by s.
func (s State) IsStale(e Settled) bool {
	return e.Seq != s.Seq || !s.Loading
}

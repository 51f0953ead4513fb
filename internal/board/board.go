package board

import "go.uber.org/zap"

// Observer is notified after every dispatch with the states before and
// after the action.
type Observer func(prev, next State)

// Board is the single writer of the note collection. Callers submit
// actions through Dispatch and read the result through State.
type Board struct {
	reducer   Reducer
	state     State
	observers []Observer
	logger    *zap.Logger
}

func New(reducer Reducer, notes []Note, logger *zap.Logger) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{
		reducer: reducer,
		state:   State{Notes: notes},
		logger:  logger,
	}
}

// Observe registers fn to run after each dispatch.
func (b *Board) Observe(fn Observer) {
	b.observers = append(b.observers, fn)
}

func (b *Board) State() State {
	return b.state
}

// Dispatch applies a to the current state and notifies observers.
func (b *Board) Dispatch(a Action) {
	prev := b.state
	b.state = b.reducer.Reduce(prev, a)
	if ce := b.logger.Check(zap.DebugLevel, "dispatch"); ce != nil {
		ce.Write(zap.String("action", a.Name()), zap.Int("notes", len(b.state.Notes)), zap.Bool("dragging", b.state.Drag != nil))
	}
	for _, fn := range b.observers {
		fn(prev, b.state)
	}
}

// NotesChanged reports whether the note collection differs between two
// states.
func NotesChanged(prev, next State) bool {
	if len(prev.Notes) != len(next.Notes) {
		return true
	}
	for i := range prev.Notes {
		if prev.Notes[i] != next.Notes[i] {
			return true
		}
	}
	return false
}

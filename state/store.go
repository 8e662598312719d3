package state

import "context"

// Store persists the whole bridge record. Load returns a private copy the
// caller may mutate; Save replaces the stored record with a copy of the argument.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}

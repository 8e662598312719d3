package bridge

import (
	"context"
	"encoding/json"
	"sync"
)

// Completion is a one-shot result slot. Only the first settlement takes
// effect; later calls are no-ops reporting false.
type Completion struct {
	once    sync.Once
	done    chan struct{}
	payload json.RawMessage
	err     error
}

// NewCompletion creates an unsettled slot
func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Resolve settles the slot with payload.
func (c *Completion) Resolve(payload json.RawMessage) bool {
	return c.settle(payload, nil)
}

// Reject settles the slot with err.
func (c *Completion) Reject(err error) bool {
	return c.settle(nil, err)
}

func (c *Completion) settle(payload json.RawMessage, err error) bool {
	settled := false
	c.once.Do(func() {
		c.payload = payload
		c.err = err
		settled = true
		close(c.done)
	})
	return settled
}

// Done is closed once the slot is settled.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the slot is settled or ctx is done.
func (c *Completion) Wait(ctx context.Context) (json.RawMessage, error) {
	select {
	case <-c.done:
		return c.payload, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

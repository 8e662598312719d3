package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/viant/designer-mcp/state"
)

// Bridge matches submitted commands with results posted by the consumer.
type Bridge struct {
	store          state.Store
	mux            sync.Mutex
	waiters        map[string]*waiter
	livenessWindow time.Duration
	commandTimeout time.Duration
	retryInterval  time.Duration
	now            func() time.Time
	newID          func() string
	listener       Listener
	closed         bool
}

// waiter holds the process-local part of a pending command.
type waiter struct {
	tool       string
	timer      *time.Timer
	completion *Completion
}

// Pending represents a submitted command awaiting its result.
type Pending struct {
	ID         string
	Tool       string
	completion *Completion
}

// Wait blocks until the command result arrives, the command times out or ctx is done.
// Abandoning the wait does not remove the command; only a result or the timeout do.
func (p *Pending) Wait(ctx context.Context) (json.RawMessage, error) {
	return p.completion.Wait(ctx)
}

// Done is closed once the command is settled.
func (p *Pending) Done() <-chan struct{} {
	return p.completion.Done()
}

// Submit creates a command for the consumer. It fails with *UnavailableError
// without touching the state when the consumer has not polled recently.
func (b *Bridge) Submit(ctx context.Context, name string, params json.RawMessage) (*Pending, error) {
	b.mux.Lock()
	if b.closed {
		b.mux.Unlock()
		return nil, ErrClosed
	}
	aState, err := b.store.Load(ctx)
	if err != nil {
		b.mux.Unlock()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	now := b.now()
	if !aState.IsConnected(now, b.livenessWindow) {
		b.mux.Unlock()
		return nil, &UnavailableError{Tool: name, Args: params}
	}
	id := b.newID()
	if _, ok := aState.Pending.Get(id); ok {
		b.mux.Unlock()
		return nil, fmt.Errorf("duplicate command id: %v", id)
	}
	aState.Pending.Put(&state.Command{
		ID:        id,
		Name:      name,
		Params:    params,
		CreatedAt: now,
	})
	aState.CommandCount++
	if err = b.store.Save(ctx, aState); err != nil {
		b.mux.Unlock()
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	aWaiter := &waiter{tool: name, completion: NewCompletion()}
	b.waiters[id] = aWaiter
	aWaiter.timer = time.AfterFunc(b.commandTimeout, func() {
		b.expire(id)
	})
	b.mux.Unlock()
	b.notify(aState)
	return &Pending{ID: id, Tool: name, completion: aWaiter.completion}, nil
}

// Call submits a command and waits for its result.
func (b *Bridge) Call(ctx context.Context, name string, params json.RawMessage) (json.RawMessage, error) {
	pending, err := b.Submit(ctx, name, params)
	if err != nil {
		return nil, err
	}
	return pending.Wait(ctx)
}

// TakeNext records a consumer liveness signal and hands over the oldest
// undelivered command, or a heartbeat when there is nothing to do.
func (b *Bridge) TakeNext(ctx context.Context) (*Delivery, error) {
	b.mux.Lock()
	aState, err := b.store.Load(ctx)
	if err != nil {
		b.mux.Unlock()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	now := b.now()
	aState.Touch(now)
	delivery := &Delivery{Heartbeat: &Heartbeat{Type: HeartbeatType, Timestamp: now}}
	if command, ok := aState.Pending.FirstUndelivered(); ok {
		command.Delivered = true
		delivery = &Delivery{Command: &CommandRequest{ID: command.ID, Name: command.Name, Params: command.Params}}
	}
	if err = b.store.Save(ctx, aState); err != nil {
		b.mux.Unlock()
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	b.mux.Unlock()
	b.notify(aState)
	return delivery, nil
}

// Complete settles the command identified by id with payload. A payload
// object carrying an "error" member rejects the command; anything else
// resolves it verbatim. Unknown ids are ignored.
func (b *Bridge) Complete(ctx context.Context, id string, payload json.RawMessage) error {
	b.mux.Lock()
	aState, err := b.store.Load(ctx)
	if err != nil {
		b.mux.Unlock()
		return fmt.Errorf("failed to load state: %w", err)
	}
	command, ok := aState.Pending.Get(id)
	if !ok {
		b.mux.Unlock()
		return nil
	}
	aState.Pending.Delete(id)
	if err = b.store.Save(ctx, aState); err != nil {
		b.mux.Unlock()
		return fmt.Errorf("failed to save state: %w", err)
	}
	aWaiter := b.release(id)
	b.mux.Unlock()
	b.notify(aState)
	if aWaiter == nil {
		return nil
	}
	if message, failed := errorIndicator(payload); failed {
		aWaiter.completion.Reject(&ExecutionError{Tool: command.Name, Message: message})
		return nil
	}
	aWaiter.completion.Resolve(payload)
	return nil
}

// expire removes a command that outlived its timeout; it is a no-op once the command was completed.
// When the removal cannot be saved the waiter is re-armed so the entry is retried after retryInterval.
func (b *Bridge) expire(id string) {
	b.mux.Lock()
	aWaiter := b.release(id)
	if aWaiter == nil {
		b.mux.Unlock()
		return
	}
	aState, err := b.discard(context.Background(), id)
	if err != nil && !b.closed {
		b.waiters[id] = aWaiter
		aWaiter.timer = time.AfterFunc(b.retryInterval, func() {
			b.expire(id)
		})
	}
	b.mux.Unlock()
	if err != nil {
		log.Printf("bridge: failed to expire command %v: %v", id, err)
	}
	if aState != nil {
		b.notify(aState)
	}
	aWaiter.completion.Reject(&TimeoutError{Tool: aWaiter.tool, Timeout: b.commandTimeout})
}

// discard removes ids from the persisted queue; caller holds the lock.
// It returns the saved state, or nil when nothing was removed.
func (b *Bridge) discard(ctx context.Context, ids ...string) (*state.State, error) {
	aState, err := b.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	removed := 0
	for _, id := range ids {
		if aState.Pending.Delete(id) {
			removed++
		}
	}
	if removed == 0 {
		return nil, nil
	}
	if err = b.store.Save(ctx, aState); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	return aState, nil
}

// release detaches the waiter for id; caller holds the lock.
func (b *Bridge) release(id string) *waiter {
	aWaiter, ok := b.waiters[id]
	if !ok {
		return nil
	}
	delete(b.waiters, id)
	aWaiter.timer.Stop()
	return aWaiter
}

// Recover drops commands persisted by a previous process; nobody waits for them any more.
func (b *Bridge) Recover(ctx context.Context) (int, error) {
	b.mux.Lock()
	aState, err := b.store.Load(ctx)
	if err != nil {
		b.mux.Unlock()
		return 0, fmt.Errorf("failed to load state: %w", err)
	}
	var orphans []string
	aState.Pending.Each(func(command *state.Command) bool {
		if _, ok := b.waiters[command.ID]; !ok {
			orphans = append(orphans, command.ID)
		}
		return true
	})
	if len(orphans) == 0 {
		b.mux.Unlock()
		return 0, nil
	}
	for _, id := range orphans {
		aState.Pending.Delete(id)
	}
	if err = b.store.Save(ctx, aState); err != nil {
		b.mux.Unlock()
		return 0, fmt.Errorf("failed to save state: %w", err)
	}
	b.mux.Unlock()
	b.notify(aState)
	return len(orphans), nil
}

// Close rejects every waiting command with ErrClosed and removes it from the queue.
func (b *Bridge) Close() error {
	b.mux.Lock()
	if b.closed {
		b.mux.Unlock()
		return nil
	}
	b.closed = true
	var ids []string
	for id := range b.waiters {
		ids = append(ids, id)
	}
	var released []*waiter
	for _, id := range ids {
		released = append(released, b.release(id))
	}
	var err error
	var aState *state.State
	if len(ids) > 0 {
		aState, err = b.discard(context.Background(), ids...)
	}
	b.mux.Unlock()
	if aState != nil {
		b.notify(aState)
	}
	for _, aWaiter := range released {
		aWaiter.completion.Reject(ErrClosed)
	}
	return err
}

func (b *Bridge) notify(aState *state.State) {
	if b.listener != nil {
		b.listener(aState.Clone())
	}
}

// errorIndicator reports whether payload is an object with an "error" member and returns its message.
func errorIndicator(payload json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return "", false
	}
	raw, ok := fields["error"]
	if !ok {
		return "", false
	}
	var message string
	if err := json.Unmarshal(raw, &message); err != nil {
		message = string(bytes.TrimSpace(raw))
	}
	if message == "" {
		message = "Tool execution failed"
	}
	return message, true
}

// New creates a bridge over store.
func New(store state.Store, options ...Option) *Bridge {
	ret := &Bridge{
		store:          store,
		waiters:        make(map[string]*waiter),
		livenessWindow: DefaultLivenessWindow,
		commandTimeout: DefaultCommandTimeout,
		retryInterval:  DefaultRetryInterval,
		now:            time.Now,
		newID:          newCommandID,
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

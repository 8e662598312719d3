package bridge

import (
	"context"
	"fmt"
	"time"
)

// NeverPinged is reported as last ping before the consumer first polled.
const NeverPinged = "Never"

// Status summarises the bridge state.
type Status struct {
	Connected        bool   `json:"connected"`
	LastPing         string `json:"lastPing"`
	CommandsExecuted int    `json:"commandsExecuted"`
	PendingCommands  int    `json:"pendingCommands"`
}

// QueueEntry describes a pending command.
type QueueEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Delivered bool      `json:"delivered"`
	Age       int64     `json:"age"`
}

// QueueSnapshot details pending commands in submission order.
type QueueSnapshot struct {
	TotalCommands   int           `json:"totalCommands"`
	PendingCommands int           `json:"pendingCommands"`
	Queue           []*QueueEntry `json:"queue"`
}

// Status returns the aggregate view; connected is evaluated against the liveness window.
func (b *Bridge) Status(ctx context.Context) (*Status, error) {
	b.mux.Lock()
	defer b.mux.Unlock()
	aState, err := b.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	ret := &Status{
		Connected:        aState.IsConnected(b.now(), b.livenessWindow),
		LastPing:         NeverPinged,
		CommandsExecuted: aState.CommandCount,
		PendingCommands:  aState.Pending.Len(),
	}
	if !aState.LastConsumerPing.IsZero() {
		ret.LastPing = aState.LastConsumerPing.UTC().Format(time.RFC3339Nano)
	}
	return ret, nil
}

// Queue returns per command detail; age is expressed in milliseconds.
func (b *Bridge) Queue(ctx context.Context) (*QueueSnapshot, error) {
	b.mux.Lock()
	defer b.mux.Unlock()
	aState, err := b.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	now := b.now()
	ret := &QueueSnapshot{
		TotalCommands:   aState.CommandCount,
		PendingCommands: aState.Pending.Undelivered(),
		Queue:           make([]*QueueEntry, 0, aState.Pending.Len()),
	}
	for _, command := range aState.Pending.Commands() {
		ret.Queue = append(ret.Queue, &QueueEntry{
			ID:        command.ID,
			Name:      command.Name,
			Timestamp: command.CreatedAt,
			Delivered: command.Delivered,
			Age:       command.Age(now).Milliseconds(),
		})
	}
	return ret, nil
}

package bridge

import (
	"time"

	"github.com/google/uuid"
	"github.com/viant/designer-mcp/state"
)

const (
	// DefaultLivenessWindow is the time after the last poll during which the consumer is considered connected.
	DefaultLivenessWindow = 60 * time.Second
	// DefaultCommandTimeout bounds how long a submitted command waits for its result.
	DefaultCommandTimeout = 30 * time.Second
	// DefaultRetryInterval spaces out attempts to remove an expired command the store failed to drop.
	DefaultRetryInterval = time.Second
)

// Option configures the bridge.
type Option func(b *Bridge)

// Listener observes every persisted state; it receives a private copy.
type Listener func(snapshot *state.State)

// WithLivenessWindow sets the consumer liveness window.
func WithLivenessWindow(window time.Duration) Option {
	return func(b *Bridge) {
		if window > 0 {
			b.livenessWindow = window
		}
	}
}

// WithCommandTimeout sets the per-command timeout.
func WithCommandTimeout(timeout time.Duration) Option {
	return func(b *Bridge) {
		if timeout > 0 {
			b.commandTimeout = timeout
		}
	}
}

// WithRetryInterval sets the delay between attempts to remove an expired command.
func WithRetryInterval(interval time.Duration) Option {
	return func(b *Bridge) {
		if interval > 0 {
			b.retryInterval = interval
		}
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(b *Bridge) {
		b.now = now
	}
}

// WithIDGenerator sets the command id generator.
func WithIDGenerator(newID func() string) Option {
	return func(b *Bridge) {
		b.newID = newID
	}
}

// WithListener sets a state update listener.
func WithListener(listener Listener) Option {
	return func(b *Bridge) {
		b.listener = listener
	}
}

// newCommandID returns a time ordered id with a random tail.
func newCommandID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

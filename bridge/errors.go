package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrClosed is returned once the bridge has been closed.
var ErrClosed = errors.New("bridge closed")

// UnavailableError is returned by Submit when the consumer has not polled within the liveness window.
type UnavailableError struct {
	Tool string
	Args json.RawMessage
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("Tool '%v' requires the design-tool extension to be connected. Please ensure the extension is installed and active in the Designer.", e.Tool)
}

// TimeoutError settles a command that outlived its timeout.
type TimeoutError struct {
	Tool    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Command %v timed out after %v", e.Tool, formatDuration(e.Timeout))
}

// ExecutionError carries an error reported by the consumer.
type ExecutionError struct {
	Tool    string
	Message string
}

func (e *ExecutionError) Error() string {
	return e.Message
}

func formatDuration(d time.Duration) string {
	if d >= time.Second && d%time.Second == 0 {
		return fmt.Sprintf("%d seconds", int(d/time.Second))
	}
	return d.String()
}

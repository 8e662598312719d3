package bridge

import (
	"encoding/json"
	"time"
)

// HeartbeatType marks a poll response without a command.
const HeartbeatType = "heartbeat"

// CommandRequest is the command projection handed to the consumer.
type CommandRequest struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Params json.RawMessage `json:"params"`
}

// Heartbeat is returned by a poll when no command is waiting.
type Heartbeat struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Delivery is either a command or a heartbeat.
type Delivery struct {
	Command   *CommandRequest
	Heartbeat *Heartbeat
}

// IsHeartbeat returns true if no command was delivered.
func (d *Delivery) IsHeartbeat() bool {
	return d.Command == nil
}

// MarshalJSON encodes whichever variant is set.
func (d *Delivery) MarshalJSON() ([]byte, error) {
	if d.Command != nil {
		command := *d.Command
		if len(command.Params) == 0 {
			command.Params = json.RawMessage("{}")
		}
		return json.Marshal(command)
	}
	if d.Heartbeat != nil {
		return json.Marshal(d.Heartbeat)
	}
	return json.Marshal(&Heartbeat{Type: HeartbeatType})
}

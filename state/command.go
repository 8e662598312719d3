package state

import (
	"encoding/json"
	"time"
)

// Command represents a tool invocation waiting for the consumer.
type Command struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Params    json.RawMessage `json:"params,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	Delivered bool            `json:"delivered"`
}

// Age returns command age at now.
func (c *Command) Age(now time.Time) time.Duration {
	return now.Sub(c.CreatedAt)
}

// Clone returns a deep copy.
func (c *Command) Clone() *Command {
	ret := *c
	if c.Params != nil {
		ret.Params = append(json.RawMessage(nil), c.Params...)
	}
	return &ret
}

package state

import (
	"time"
)

// State is the bridge record: command counter, pending queue and consumer liveness.
type State struct {
	CommandCount      int       `json:"commandCount"`
	Pending           *Queue    `json:"pending"`
	ConsumerConnected bool      `json:"consumerConnected"`
	LastConsumerPing  time.Time `json:"lastConsumerPing"`
}

// New returns the initial state
func New() *State {
	return &State{Pending: NewQueue()}
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	ret := *s
	if s.Pending != nil {
		ret.Pending = s.Pending.Clone()
	} else {
		ret.Pending = NewQueue()
	}
	return &ret
}

// Touch records a consumer liveness signal.
func (s *State) Touch(now time.Time) {
	s.ConsumerConnected = true
	s.LastConsumerPing = now
}

// IsConnected returns true if the consumer signalled within window before now.
func (s *State) IsConnected(now time.Time, window time.Duration) bool {
	if !s.ConsumerConnected || s.LastConsumerPing.IsZero() {
		return false
	}
	return now.Sub(s.LastConsumerPing) < window
}

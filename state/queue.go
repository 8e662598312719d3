package state

import (
	"encoding/json"
	"fmt"
)

// Queue is an insertion ordered mapping of command id to command.
type Queue struct {
	ids   []string
	items map[string]*Command
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{items: make(map[string]*Command)}
}

// Put appends a command, or replaces it in place when the id is already queued.
func (q *Queue) Put(command *Command) {
	if _, ok := q.items[command.ID]; !ok {
		q.ids = append(q.ids, command.ID)
	}
	q.items[command.ID] = command
}

// Get returns a command by id
func (q *Queue) Get(id string) (*Command, bool) {
	command, ok := q.items[id]
	return command, ok
}

// Delete removes a command, it returns false if id was not queued.
func (q *Queue) Delete(id string) bool {
	if _, ok := q.items[id]; !ok {
		return false
	}
	delete(q.items, id)
	for i, candidate := range q.ids {
		if candidate == id {
			q.ids = append(q.ids[:i:i], q.ids[i+1:]...)
			break
		}
	}
	return true
}

// Len returns queue size
func (q *Queue) Len() int {
	return len(q.ids)
}

// Each iterates commands in insertion order until fn returns false.
func (q *Queue) Each(fn func(command *Command) bool) {
	for _, id := range q.ids {
		if !fn(q.items[id]) {
			return
		}
	}
}

// Commands returns commands in insertion order
func (q *Queue) Commands() []*Command {
	var result = make([]*Command, 0, len(q.ids))
	q.Each(func(command *Command) bool {
		result = append(result, command)
		return true
	})
	return result
}

// FirstUndelivered returns the oldest command not yet handed to the consumer.
func (q *Queue) FirstUndelivered() (*Command, bool) {
	var result *Command
	q.Each(func(command *Command) bool {
		if command.Delivered {
			return true
		}
		result = command
		return false
	})
	return result, result != nil
}

// Undelivered returns number of commands not yet handed to the consumer.
func (q *Queue) Undelivered() int {
	count := 0
	q.Each(func(command *Command) bool {
		if !command.Delivered {
			count++
		}
		return true
	})
	return count
}

// Clone returns a deep copy
func (q *Queue) Clone() *Queue {
	ret := &Queue{ids: make([]string, len(q.ids)), items: make(map[string]*Command, len(q.items))}
	copy(ret.ids, q.ids)
	for id, command := range q.items {
		ret.items[id] = command.Clone()
	}
	return ret
}

// MarshalJSON encodes the queue as an ordered array.
func (q *Queue) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Commands())
}

// UnmarshalJSON decodes an ordered command array.
func (q *Queue) UnmarshalJSON(data []byte) error {
	var commands []*Command
	if err := json.Unmarshal(data, &commands); err != nil {
		return err
	}
	q.ids = nil
	q.items = make(map[string]*Command, len(commands))
	for _, command := range commands {
		if command == nil {
			continue
		}
		if _, ok := q.items[command.ID]; ok {
			return fmt.Errorf("duplicate command id: %v", command.ID)
		}
		q.Put(command)
	}
	return nil
}

// Package state defines the durable record shared by every bridge operation.
//
// The record holds the total number of commands ever created, the ordered
// pending command queue and the consumer liveness fields. Stores persist and
// return the record as a whole: callers load it, mutate a private copy and
// save it back. Field level atomicity is never provided by a store.
package state

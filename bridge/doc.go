// Package bridge coordinates MCP tool calls with the design-tool extension.
//
// A tool call is submitted as a command into the pending queue of the shared
// state record; the extension polls (TakeNext) for the oldest undelivered
// command, executes it and posts the outcome back (Complete). The submitter
// waits on a one-shot completion slot that is settled either by the posted
// outcome or by the command timeout, whichever comes first.
//
// Every operation is a whole-record read-modify-write of the state held by
// a state.Store, serialized by the bridge: there is a single writer at a time.
package bridge

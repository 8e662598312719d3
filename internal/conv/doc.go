// Package conv holds small conversion helpers used by the protocol front.
//
// AsKey turns a decoded JSON-RPC request id into a map key that keeps
// string ids distinct from one another.
package conv

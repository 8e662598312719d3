// Package catalog declares the designer tools exposed by the relay.
//
// The catalog is data only: each tool carries a name, a description and a
// JSON-schema describing its arguments. The relay forwards caller arguments
// verbatim to the design-tool extension and never enforces the schema itself.
package catalog

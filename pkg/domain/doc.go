// Package domain holds the data model of the simulator: symbols, moves,
// transitions, states, the validated Model, execution statuses and the
// read-only snapshots handed to callers.
//
// Everything here is plain data. The execution engine lives in
// internal/runtime; parsers that produce a Model live behind the
// ports.ModelParser contract.
package domain

/*
Package runner glues a Simulator to an output stream.

It drives the execution loop, optionally emitting a per-step trace, and
delegates formatting to a TraceSink: plain text for humans, JSON-Lines for
machines. Frontends (CLI, HTTP) reuse it instead of stepping simulators by
hand.
*/
package runner

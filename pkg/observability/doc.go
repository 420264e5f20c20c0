/*
Package observability provides tools for monitoring machine execution.

It exposes Prometheus collectors wired to the engine's lifecycle hooks, so
embedders can count steps, completed runs by outcome, and run durations
without touching the simulation core.
*/
package observability

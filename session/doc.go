// Package session is the engine boundary consumed by the CLI, the REPL and
// the HTTP server.
//
// A Session owns exactly one core.Graph. Every method takes one exclusive
// lock for its whole duration, so a mutation can never interleave with an
// algorithm run on the same graph. Raw user input is validated here, before
// it reaches the engine:
//
//   - node IDs are trimmed and must be non-blank (ErrInvalidNodeID);
//   - weights must parse as finite numbers (ErrInvalidWeight) and fall in the
//     configured Limits, 1..100 by default (ErrWeightOutOfRange);
//   - traversal and Prim starts must name an existing vertex
//     (errors wrapping core.ErrInvalidStart).
//
// Idempotent no-ops (re-adding a node, overwriting an edge weight, removing
// an absent node) succeed silently. Failures are returned to the caller and
// logged at warn; successful commands are logged at debug.
//
// A Registry keys independent sessions by random UUID and expires idle ones
// with Sweep.
package session

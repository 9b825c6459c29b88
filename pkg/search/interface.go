/*
Package search is the core, implementing the two ranking engines used to turn
a partial module name query into an ordered list of candidate names.

Two engines consume the same input shape (a query string plus a slice of
candidate names) and differ only in their matching grammar:

SearchNested handles incremental, dot-delimited typing. Candidates nested
deeper than the query are dropped entirely, so typing "http." reveals the
immediate children of http and nothing below them.

SearchFullName handles wildcard lookup across all depths. The query is split
on the first '*' into a head and a tail; the head characters must appear in
order anywhere in the candidate, and the tail is ranked against whatever
follows the head match.

Both engines are pure functions: no shared state, no I/O, deterministic
output for identical input. Scoring is delegated to a Scorer so the
similarity algorithm stays swappable.
*/
package search

// Delimiter separates the segments of a nested module name.
const Delimiter = "."

// Wildcard splits a full-name query into head and tail parts.
const Wildcard = "*"

// Scorer rates how well a short pattern matches a candidate string.
// Higher means better, 0 means no similarity credit. Implementations must
// be deterministic for identical inputs and are never called with an empty
// pattern; engines short-circuit those cases to 0 themselves.
type Scorer func(pattern, candidate string) float64

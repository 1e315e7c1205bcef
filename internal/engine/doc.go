// Package engine wires the phrase alignment pipeline together:
//
//	Tokenize -> Align -> FromPairs -> Merge -> Filter
//
// An externally supplied alignment, when non-empty, replaces the first four
// stages and is only filtered. The engine holds no per-call state and never
// lets a fault escape to the caller: a panic anywhere in the pipeline is
// recovered, logged and reported as an empty result.
package engine

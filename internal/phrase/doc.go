// Package phrase holds the phrase match data model and the two passes that
// turn single-token alignments into highlightable phrases: Merge coalesces
// neighbouring matches into multi-word spans, Filter drops spans that are
// too short to be worth highlighting.
package phrase

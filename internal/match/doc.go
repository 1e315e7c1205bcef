// Package match provides tokenization, Levenshtein distance calculation,
// token similarity scoring and greedy token alignment between a source
// sentence and its translation.
//
// Key functions:
//   - Tokenize: splits text into position-tagged word tokens
//   - Levenshtein: computes edit distance between strings
//   - Similarity: scores two tokens in [0,1]
//   - Align: greedily pairs source tokens with target tokens
package match

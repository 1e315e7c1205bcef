// Package diagnostic provides structured errors, warnings and
// "why this did not match" explanations for the phrase engine and
// the settings layer.
//
// Key capabilities:
//   - Invalid policy or settings values
//   - Source tokens left unaligned, with their best rejected candidate
//   - Phrases dropped by the minimum length filter
//   - Faults recovered at the engine boundary
package diagnostic

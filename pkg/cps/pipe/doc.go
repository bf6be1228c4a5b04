// Package pipe implements the composition engine: it builds a single
// operator from an ordered sequence of operators, sequencing execution,
// routing errors, settling deferred values between stages, and converting
// stage panics into stage errors.
//
// Key constructs:
// - Pipe: compose same-type stages; zero stages yield the identity operator
// - Join: compose two operators across a value-type transition
// - Apply: invoke an operator standalone with final defaulted to next
//
// The composed operator drives each stage in order, feeding each stage's
// success output into its successor until the sequence is exhausted, a stage
// fails, or a stage calls final. The final continuation is captured once at
// entry and handed to every stage untouched: a stage cannot redefine where
// short-circuits land, only call the one it was given.
package pipe

// Package chain provides a fluent wrapper for building same-type pipelines
// without assembling operator slices by hand.
//
// It composes the op package's constructors behind a convenient Chain[T]
// type. Unlike an operator invocation, a Chain is lazy: nothing runs until
// Operator, Run, or Fire.
//
// Key operations:
// - New/From: begin a chain, empty or over existing operators
// - Then: append a raw operator
// - Map/Try/Validate/Filter/Tee/Catch/Wait/Debounce/Retry: append stock steps
// - Operator: build the composed pipeline operator
// - Run/Fire: execute blocking or fire-and-forget
package chain

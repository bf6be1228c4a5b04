// Package op provides the stock collaborator operators for pipelines. Each
// constructor returns a cps.Operator that honors the continuation contract:
// failures pass through via next unchanged unless recovery is the operator's
// stated purpose.
//
// Highlights:
// - Map/Try/Validate: transform or check the value, converting errors to failures
// - Filter: route non-matching values to the short-circuit continuation
// - Tee: success-only side effects, result unchanged
// - CatchError: recover upstream failures
// - Wait/Defer: timer delay and goroutine-backed deferred production
// - Debounce: stateful last-write-wins hold with supersede-and-resolve
// - Retry: error retry as an operator concern, not a composer one
package op

// Package adapt converts a composed operator into plain Go call shapes for
// terminal consumers:
// - Fire: fire-and-forget unary function with a no-op sink
// - Future: unary function returning a Deferred settled by the delivery
// - Sync: blocking unary function returning (value, error)
package adapt

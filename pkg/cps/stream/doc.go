// Package stream provides channel-lifted execution for composed operators:
// fan a channel of results across a fixed number of worker lines, each
// invoking the operator once per item.
//
// Common usage:
// - Run: execute a same-type operator over an input channel
// - Turnout: execute a type-changing operator over an input channel
// - Collect: map Result[In] to Out on completion
//
// Ordering across lines is not preserved; within one invocation the
// operator's own sequencing rules apply.
package stream

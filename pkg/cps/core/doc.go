// Package core contains pipeline plumbing utilities: channel helpers, option
// configuration via context (error routing, worker limits), and the Drive
// worker loop that runs an operator over a channel of results. It does not
// define composition semantics; instead it provides the scaffolding for
// packages like pipe and stream to run operators with controlled concurrency.
package core

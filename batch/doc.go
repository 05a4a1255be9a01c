// Package batch analyzes many named sequences on one engine.
//
// Run fans the inputs out over an errgroup bounded by WithParallel and
// writes each result at its input index, so output order never depends on
// scheduling. A failing input is recorded on its Item and does not stop
// the others; only context cancellation aborts the run.
//
// With WithStore, reports are looked up in and written to the sqlite cache.
// Result.Ranking orders the successful items by Ω, highest first.
package batch

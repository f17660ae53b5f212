// Package orchestrator drives data-parallel evaluation of a generation's
// individuals across a fixed-size worker pool (spec §5 "data-parallel
// across individuals"), adapted from stojg-playlist-sorter's
// submit-and-wait pool generalized with cancellation and per-episode
// timeouts.
//
// Pool mirrors stojg-playlist-sorter/pool's fixed worker-goroutine
// structure. RunAll builds on it to submit one EvalTask per individual,
// polling ctx between submissions and collecting results indexed
// identically to the input tasks.
package orchestrator

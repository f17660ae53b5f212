// Package nevoenv defines the environment contract the core evaluates
// individuals against, the canonical per-episode loop, and multi-seed
// fitness aggregation (spec §4.8, §6.1).
//
// Environments are assumed single-threaded and owned by exactly one
// episode at a time; nevoenv never shares an Environment value across
// goroutines.
package nevoenv

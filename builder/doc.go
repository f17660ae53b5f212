// SPDX-License-Identifier: MIT
//
// Package builder assembles a *core.Species topology from an ordered
// sequence of row declarations, then seeds a population of individuals
// from it using one of three edge-sampling policies (Dense, Sparse,
// Minimal) and a configurable weight/bias/activation initialization
// strategy.
//
// Contract (strict):
//   - Option constructors (AddInputRow, AddHiddenRow, AddOutputRow,
//     WithMaxInDegree) VALIDATE and PANIC on meaningless inputs — a
//     programmer error, caught at development time.
//   - Runtime conditions return sentinel errors from errors.go rather than
//     panicking: Dense(p) with p outside (0, 1], Sparse(k) with k <= 0, a
//     nil rng, or a Minimal node with no lower-row source. Sparse gives a
//     node with no candidate sources no in-edge, without an error, and
//     Minimal's augmentation pass never fails.
//   - Determinism is explicit: every stochastic path takes a *rand.Rand
//     supplied by the caller (normally one minted by package rngstream),
//     never a package-level source.
package builder

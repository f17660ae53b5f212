// Package core defines the central Species, Individual, and Population
// types that make up the genome / species / individual data model, and
// provides thread-safe primitives for building, mutating, and cloning them.
//
// A Species owns an immutable-during-a-generation topology: a row plan
// (input/hidden/output layers), a flat edge array sorted by
// (row(dest), dest), per-node allowed-activation vocabularies, and a
// max-in-degree bound. An Individual belongs to exactly one Species and
// owns its own mutable parameters: one weight per edge, one bias and one
// chosen activation per node, a node-parameter vector per node, a cached
// fitness, and an age counter.
//
// A Species' template edges are installed by package builder (and, for a
// diversified species, package lifecycle); the invariants in
// Species.Validate / Individual.Validate (acyclicity, in-degree bound, edge
// uniqueness, sortedness, and parameter/topology coherence) are checked in
// one place, here. Callers should treat a *Species as read-only once built.
//
// Concurrency: within one generation a *Species is read-only and an
// Individual is owned by exactly one goroutine at a time (package
// orchestrator hands each individual to a single worker for the duration of
// its evaluation), so neither type needs internal locking; the population
// itself is guarded by Population's sync.RWMutex (see population.go) because
// selection and lifecycle mutate its species/individual slices between
// generations while Stats() may be read concurrently.
package core

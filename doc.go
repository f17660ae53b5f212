// Package nevo is a neuro-evolutionary engine: it evolves speciated
// populations of fixed-topology, strictly feed-forward neural controllers
// against reinforcement-learning-style environments.
//
// The engine coordinates, per generation:
//
//   - evaluating every individual of every species against an environment
//     (package nevoenv, driven by package orchestrator),
//   - selecting parents via tournament and producing offspring by
//     clone-and-mutate (packages selection, mutate),
//   - tracking species stagnation and culling/replacing species that stop
//     improving (package lifecycle),
//   - doing all of the above deterministically given a master seed
//     (package rngstream).
//
// Subpackages:
//
//	core/         — Row/Node/Edge/RowPlan/Species/Individual/Population types and invariants
//	activation/   — the fixed activation-function vocabulary
//	builder/      — topology + parameter initializers (Dense/Sparse/Minimal, weight-init factory)
//	eval/         — the row-by-row forward evaluator
//	mutate/       — parameter and structural mutation operators, with rollback
//	selection/    — tournament selection, elitism, offspring generation
//	lifecycle/    — species stagnation tracking, culling, diversification
//	rngstream/    — deterministic per-(generation,species,individual,purpose) RNG derivation
//	nevoenv/      — the environment contract and fitness aggregation
//	orchestrator/ — the worker pool that evaluates a generation in parallel
//	config/       — the engine's configuration type and validator
//	nevoio/       — binary serialization of species and individuals
//	engine/       — the top-level population driver
//
// See SPEC_FULL.md and DESIGN.md at the module root for the full
// specification this package implements and the design decisions behind it.
package nevo

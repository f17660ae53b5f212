// Package engine is the top-level driver: it owns a core.Population, runs
// generations (evaluate → update lifecycle stats → select/reproduce →
// cull/diversify), and exposes observable snapshots (spec §6.3).
//
// Engine.RunGeneration runs one generation in four phases:
//
//  1. evaluate every individual of every species against a fresh
//     environment, in parallel, via package orchestrator (eval.go);
//  2. for each species, update its stagnation statistics from the fresh
//     fitnesses (package lifecycle), then reproduce it: tournament-select
//     parents, clone-and-mutate offspring, keep elites (package selection);
//  3. while any species is eligible for culling, replace the worst
//     eligible one with a diversified clone of a healthier species
//     (package lifecycle);
//  4. snapshot the generation's stats (stats.go) for the caller.
package engine

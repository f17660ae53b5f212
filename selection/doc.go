// Package selection implements the per-species reproduction step from
// spec §4.3/§4.6: elitism, a parent-pool filter, tournament selection, and
// the clone-and-mutate offspring loop. There is no crossover — every
// offspring is one parent, cloned, then passed through the mutation
// operators package mutate supplies.
package selection

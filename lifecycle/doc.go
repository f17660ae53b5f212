// Package lifecycle tracks per-species stagnation statistics, decides
// culling eligibility, runs the end-of-generation culling loop, and
// diversifies a replacement species to keep the population's species
// count roughly stable (spec §4.7).
package lifecycle

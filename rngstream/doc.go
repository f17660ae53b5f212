// Package rngstream derives independent, deterministic random number
// streams from a single master seed so that a whole run — any generation,
// any species, any individual, any named purpose within it — is exactly
// reproducible from one uint64, and so that no two goroutines ever read or
// write a shared *rand.Rand.
//
// Every stream is obtained by hashing (masterSeed, generation, speciesID,
// individualID, tag) with xxhash and using the result to seed a fresh
// math/rand source. Two calls with identical inputs always produce
// identically-seeded generators; two calls that differ in any one input
// produce unrelated streams with overwhelming probability.
package rngstream

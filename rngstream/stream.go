package rngstream

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// Purpose tags distinguish RNG streams drawn for different roles within the
// same (generation, species, individual) so that, for example, mutation
// operator selection never shares a stream with weight initialization.
type Purpose uint64

const (
	PurposeWeightInit Purpose = iota
	PurposeBiasInit
	PurposeActivationInit
	PurposeEdgeSample
	PurposeMutationSelect
	PurposeMutationApply
	PurposeTournament
	PurposeEnvironmentSeed
	PurposeDiversify
)

// Stream derives a *rand.Rand seeded deterministically from the given
// coordinates. masterSeed is the single run-level seed (spec §6.2
// RunConfig.Seed); generation, speciesID, and individualID identify the
// point in the evolutionary process the stream is for; tag distinguishes
// concurrent uses within that point.
func Stream(masterSeed uint64, generation, speciesID, individualID int64, tag Purpose) *rand.Rand {
	return rand.New(rand.NewSource(int64(Seed(masterSeed, generation, speciesID, individualID, tag))))
}

// Seed computes the raw derived uint64 seed without allocating a
// *rand.Rand, for callers (such as package engine, deriving environment
// episode seeds) that need the seed value itself rather than a generator.
func Seed(masterSeed uint64, generation, speciesID, individualID int64, tag Purpose) uint64 {
	var buf [40]byte
	binary.LittleEndian.PutUint64(buf[0:8], masterSeed)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(generation))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(speciesID))
	binary.LittleEndian.PutUint64(buf[24:32], uint64(individualID))
	binary.LittleEndian.PutUint64(buf[32:40], uint64(tag))

	return xxhash.Sum64(buf[:])
}

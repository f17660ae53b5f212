// Package config defines the single record the core consumes (spec
// §6.2) and its validator. The core never loads config from a file;
// callers assemble a Config and pass it in fully populated.
package config

import (
	"errors"
	"fmt"
)

// ErrConfigInvalid is wrapped with the offending field name and returned
// by Validate on the first failure (spec §7 "Config errors surface to
// the caller and halt the run").
var ErrConfigInvalid = errors.New("config: invalid field")

// WeightInitKind mirrors builder.WeightInitKind without importing
// package builder, keeping config free of a dependency on the genome
// builder's internals.
type WeightInitKind int

const (
	GlorotUniform WeightInitKind = iota
	GlorotNormal
	HeUniform
	HeNormal
	XavierUniform
	XavierNormal
	UniformRange
)

// FitnessAggregation selects how multi-seed episode rewards combine into
// one fitness value (spec §4.8).
type FitnessAggregation int

const (
	Mean FitnessAggregation = iota
	Min
	Max
	CVaR
)

// MutationRates bundles the probabilities and scale parameters named in
// spec §4.4-4.5, one field per operator.
type MutationRates struct {
	WeightJitterProb   float32
	WeightJitterSigma  float32
	WeightJitterEps    float32
	WeightResetProb    float32
	WeightResetBound   float32
	WeightL1ShrinkProb float32
	L1ShrinkFactor     float32

	BiasJitterProb  float32
	BiasJitterSigma float32
	BiasJitterEps   float32
	BiasResetProb   float32
	BiasResetBound  float32

	ActivationSwapProb float32
	NodeParamProb      float32
	NodeParamSigma     float32

	EdgeAddProb         float32
	EdgeAddMaxAttempts  int
	EdgeDeleteProb      float32
	EdgeSplitProb       float32
	EdgeRedirectProb    float32
	EdgeRedirectAttempt int
	EdgeSwapProb        float32

	WeakEdgePruningEnabled bool
	WeakEdgePruningProb    float32
	WeakEdgeThreshold      float32
}

// Config is the exhaustive record spec §6.2 names.
type Config struct {
	SpeciesCount               int
	MinSpeciesCount            int
	IndividualsPerSpecies      int
	Elites                     int
	TournamentSize             int
	ParentPoolPercentage       float64
	GraceGenerations           int
	StagnationThreshold        int
	SpeciesDiversityThreshold  float64
	RelativePerformanceThresh  float64
	WeightInitialization       WeightInitKind
	WeightInitBound            float32 // UniformRange's [-a,a] or the bias bound, depending on use
	MutationRates              MutationRates
	SeedsPerIndividual         int
	FitnessAggregation         FitnessAggregation
	CVaRQuantile               float64
	MasterSeed                 uint64
}

// Validate checks every range constraint spec §6.2's table states,
// returning the first violation wrapped in ErrConfigInvalid.
func (c Config) Validate() error {
	switch {
	case c.SpeciesCount < 1:
		return fmt.Errorf("species_count must be >= 1: %w", ErrConfigInvalid)
	case c.MinSpeciesCount < 1 || c.MinSpeciesCount > c.SpeciesCount:
		return fmt.Errorf("min_species_count must be in [1, species_count]: %w", ErrConfigInvalid)
	case c.IndividualsPerSpecies < 1:
		return fmt.Errorf("individuals_per_species must be >= 1: %w", ErrConfigInvalid)
	case c.Elites < 0 || c.Elites >= c.IndividualsPerSpecies:
		return fmt.Errorf("elites must be in [0, individuals_per_species): %w", ErrConfigInvalid)
	case c.TournamentSize < 1:
		return fmt.Errorf("tournament_size must be >= 1: %w", ErrConfigInvalid)
	case c.ParentPoolPercentage <= 0 || c.ParentPoolPercentage > 1:
		return fmt.Errorf("parent_pool_percentage must be in (0, 1]: %w", ErrConfigInvalid)
	case c.GraceGenerations < 0:
		return fmt.Errorf("grace_generations must be >= 0: %w", ErrConfigInvalid)
	case c.StagnationThreshold < 1:
		return fmt.Errorf("stagnation_threshold must be >= 1: %w", ErrConfigInvalid)
	case c.SpeciesDiversityThreshold < 0:
		return fmt.Errorf("species_diversity_threshold must be >= 0: %w", ErrConfigInvalid)
	case c.RelativePerformanceThresh <= 0 || c.RelativePerformanceThresh > 1:
		return fmt.Errorf("relative_performance_threshold must be in (0, 1]: %w", ErrConfigInvalid)
	case c.SeedsPerIndividual < 1:
		return fmt.Errorf("seeds_per_individual must be >= 1: %w", ErrConfigInvalid)
	}

	return nil
}

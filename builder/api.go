// SPDX-License-Identifier: MIT
//
// api.go — thin, deterministic public facade tying the row descriptor, the
// edge sampler, and the weight/bias/activation initializer together into
// the single call package engine needs at species-creation time.
// Policy: no algorithms live here; everything is delegated to
// descriptor.go, sample.go, and init.go.
package builder

import (
	"math/rand"

	"github.com/evolab/nevo/core"
)

// Build constructs a species from opts, seeds its TemplateEdges via
// sampler, and returns the species along with populationSize freshly
// initialized individuals. rng drives both the edge sampling and every
// individual's weight/bias/activation draws; callers needing
// per-individual determinism should pass a *rand.Rand minted by package
// rngstream per individual rather than reusing one across the whole call.
func Build(id int, opts []Option, sampler Sampler, w WeightInit, biasBound float32, populationSize int, rng *rand.Rand) (*core.Species, []*core.Individual, error) {
	s, err := NewSpeciesSeeded(id, opts, sampler, rng)
	if err != nil {
		return nil, nil, err
	}

	individuals := make([]*core.Individual, populationSize)
	for i := range individuals {
		individuals[i] = SeedIndividual(s, rng, w, biasBound)
	}

	return s, individuals, nil
}

// NewSpeciesSeeded is NewSpecies followed by SeedTemplate, the usual pair
// at species-creation time.
func NewSpeciesSeeded(id int, opts []Option, sampler Sampler, rng *rand.Rand) (*core.Species, error) {
	s, err := NewSpecies(id, opts...)
	if err != nil {
		return nil, err
	}
	if err := SeedTemplate(s, sampler, rng); err != nil {
		return nil, err
	}

	return s, nil
}

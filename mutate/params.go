// File: params.go
// Role: the seven parameter mutation operators from spec §4.4.
package mutate

import (
	"math"
	"math/rand"

	"github.com/evolab/nevo/core"
)

// WeightJitter adds N(0, sigma*max(|w|, epsilon)) to each weight
// independently with probability p.
func WeightJitter(p, sigma, epsilon float32) Op {
	return func(_ *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		changed := false
		for i, w := range ind.Weights {
			if rng.Float32() >= p {
				continue
			}
			scale := float32(math.Abs(float64(w)))
			if scale < epsilon {
				scale = epsilon
			}
			ind.Weights[i] = w + float32(rng.NormFloat64())*sigma*scale
			changed = true
		}

		return changed
	}
}

// WeightReset redraws each weight uniformly in [-a, a] independently with
// probability p.
func WeightReset(p, a float32) Op {
	return func(_ *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		changed := false
		for i := range ind.Weights {
			if rng.Float32() >= p {
				continue
			}
			ind.Weights[i] = (rng.Float32()*2 - 1) * a
			changed = true
		}

		return changed
	}
}

// WeightL1Shrink multiplies each weight by shrinkFactor independently with
// probability p. shrinkFactor == 1.0 is the identity transform.
func WeightL1Shrink(p, shrinkFactor float32) Op {
	return func(_ *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		changed := false
		for i, w := range ind.Weights {
			if rng.Float32() >= p {
				continue
			}
			ind.Weights[i] = w * shrinkFactor
			changed = true
		}

		return changed
	}
}

// BiasJitter is WeightJitter's counterpart for biases (spec: "mandatory —
// biases must participate in mutation").
func BiasJitter(p, sigma, epsilon float32) Op {
	return func(_ *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		changed := false
		for i, b := range ind.Biases {
			if rng.Float32() >= p {
				continue
			}
			scale := float32(math.Abs(float64(b)))
			if scale < epsilon {
				scale = epsilon
			}
			ind.Biases[i] = b + float32(rng.NormFloat64())*sigma*scale
			changed = true
		}

		return changed
	}
}

// BiasReset redraws each bias uniformly in [-a, a] independently with
// probability p.
func BiasReset(p, a float32) Op {
	return func(_ *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		changed := false
		for i := range ind.Biases {
			if rng.Float32() >= p {
				continue
			}
			ind.Biases[i] = (rng.Float32()*2 - 1) * a
			changed = true
		}

		return changed
	}
}

// ActivationSwap picks, for each node with more than one allowed
// activation, a different allowed activation uniformly at random,
// independently with probability p.
func ActivationSwap(p float32) Op {
	return func(s *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		changed := false
		for n := range ind.Activations {
			allowed := s.Nodes[n].AllowedActivations
			if len(allowed) <= 1 || rng.Float32() >= p {
				continue
			}
			current := ind.Activations[n]
			var choices []int
			for i, a := range allowed {
				if a != current {
					choices = append(choices, i)
				}
			}
			if len(choices) == 0 {
				continue
			}
			ind.Activations[n] = allowed[choices[rng.Intn(len(choices))]]
			changed = true
		}

		return changed
	}
}

// NodeParamMutate adds N(0, sigma) to each of the four node-parameter
// slots independently with probability p.
func NodeParamMutate(p, sigma float32) Op {
	return func(_ *core.Species, ind *core.Individual, rng *rand.Rand) bool {
		changed := false
		for i := range ind.NodeParams {
			if rng.Float32() >= p {
				continue
			}
			ind.NodeParams[i] += float32(rng.NormFloat64()) * sigma
			changed = true
		}

		return changed
	}
}

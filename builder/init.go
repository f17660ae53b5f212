// SPDX-License-Identifier: MIT
//
// init.go — the weight/bias/activation initialization factory. The
// closed set of weight strategies is genuinely dispatched (every Kind
// reaches its own formula), unlike the single-strategy shortcut this
// package's forerunner took.
package builder

import (
	"math"
	"math/rand"

	"github.com/evolab/nevo/core"
)

// WeightInitKind enumerates the closed set of weight initialization
// strategies.
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

// WeightInit selects a weight initialization strategy. A and B are only
// consulted when Kind is UniformRange.
type WeightInit struct {
	Kind WeightInitKind
	A, B float32
}

// Uniform returns a WeightInit drawing weights uniformly from [a, b].
func Uniform(a, b float32) WeightInit { return WeightInit{Kind: UniformRange, A: a, B: b} }

// FanInOut reports the (fan_in, fan_out) pair for node n: the number of
// in-edges and out-edges it has in edges. Both Glorot/Xavier and He use
// these per-destination-node fan counts rather than per-layer counts,
// since species topologies are not regular layers.
func FanInOut(edges []core.Edge, n int) (int, int) {
	fanIn, fanOut := 0, 0
	for _, e := range edges {
		if e.Dest == n {
			fanIn++
		}
		if e.Source == n {
			fanOut++
		}
	}

	return fanIn, fanOut
}

// SampleWeight draws one weight from w given the destination node's
// (fanIn, fanOut), dispatching genuinely across every WeightInitKind.
// Exported so package mutate's EdgeAdd can draw newly inserted edges from
// the same strategy used at species-creation time.
func SampleWeight(rng *rand.Rand, w WeightInit, fanIn, fanOut int) float32 {
	sum := fanIn + fanOut
	if sum == 0 {
		sum = 1
	}

	switch w.Kind {
	case GlorotUniform, XavierUniform:
		limit := float32(math.Sqrt(6.0 / float64(sum)))
		return (rng.Float32()*2 - 1) * limit
	case GlorotNormal, XavierNormal:
		std := float32(math.Sqrt(2.0 / float64(sum)))
		return float32(rng.NormFloat64()) * std
	case HeUniform:
		denom := fanIn
		if denom == 0 {
			denom = 1
		}
		limit := float32(math.Sqrt(6.0 / float64(denom)))
		return (rng.Float32()*2 - 1) * limit
	case HeNormal:
		denom := fanIn
		if denom == 0 {
			denom = 1
		}
		std := float32(math.Sqrt(2.0 / float64(denom)))
		return float32(rng.NormFloat64()) * std
	case UniformRange:
		return w.A + rng.Float32()*(w.B-w.A)
	default:
		panic("builder: invalid WeightInitKind")
	}
}

// SeedIndividual allocates a fresh *core.Individual for s (via
// core.NewIndividual) and fills its weights, biases, and activations: one
// weight per template edge per w, one bias per node uniform in
// [-biasBound, biasBound], and one activation per non-input node drawn
// uniformly from that node's allowed set.
func SeedIndividual(s *core.Species, rng *rand.Rand, w WeightInit, biasBound float32) *core.Individual {
	ind := core.NewIndividual(s)

	for i, e := range ind.Edges {
		fanIn, fanOut := FanInOut(ind.Edges, e.Dest)
		ind.Weights[i] = SampleWeight(rng, w, fanIn, fanOut)
	}

	inputCount := s.InputCount()
	for n := 0; n < s.TotalNodes(); n++ {
		ind.Biases[n] = (rng.Float32()*2 - 1) * biasBound
		if n >= inputCount {
			allowed := s.Nodes[n].AllowedActivations
			ind.Activations[n] = allowed[rng.Intn(len(allowed))]
		}
	}

	return ind
}

package engine

import (
	"github.com/evolab/nevo/config"
	"github.com/evolab/nevo/mutate"
)

// buildOps translates a config.MutationRates record into the concrete
// mutate.Op list Reproduce applies to every offspring (spec §4.4-4.5).
func buildOps(r config.MutationRates, weightKind config.WeightInitKind, weightBound float32) []mutate.Op {
	w := weightInitFrom(weightKind, weightBound)

	ops := []mutate.Op{
		mutate.WeightJitter(r.WeightJitterProb, r.WeightJitterSigma, r.WeightJitterEps),
		mutate.WeightReset(r.WeightResetProb, r.WeightResetBound),
		mutate.WeightL1Shrink(r.WeightL1ShrinkProb, r.L1ShrinkFactor),
		mutate.BiasJitter(r.BiasJitterProb, r.BiasJitterSigma, r.BiasJitterEps),
		mutate.BiasReset(r.BiasResetProb, r.BiasResetBound),
		mutate.ActivationSwap(r.ActivationSwapProb),
		mutate.NodeParamMutate(r.NodeParamProb, r.NodeParamSigma),
		mutate.EdgeAdd(r.EdgeAddProb, w, maxAttempts(r.EdgeAddMaxAttempts)),
		mutate.EdgeDeleteRandom(r.EdgeDeleteProb),
		mutate.EdgeSplit(r.EdgeSplitProb),
		mutate.EdgeRedirect(r.EdgeRedirectProb, w, maxAttempts(r.EdgeRedirectAttempt)),
		mutate.EdgeSwap(r.EdgeSwapProb),
	}

	if r.WeakEdgePruningEnabled {
		ops = append(ops, mutate.WeakEdgePruning(r.WeakEdgePruningProb, r.WeakEdgeThreshold))
	}

	return ops
}

func maxAttempts(n int) int {
	if n <= 0 {
		return 20
	}

	return n
}

package nevoenv

import (
	"fmt"
	"math"

	"github.com/evolab/nevo/core"
	"github.com/evolab/nevo/eval"
)

// RunEpisode drives one episode of env with individual ind against
// species s, returning the total accumulated reward (spec §4.8's
// canonical loop). sc is reused scratch space for the forward evaluator.
func RunEpisode(s *core.Species, ind *core.Individual, env Environment, seed uint64, sc *eval.Scratch) (float32, error) {
	if env.InputCount() != s.InputCount() || env.OutputCount() != s.OutputCount() {
		return 0, fmt.Errorf("nevoenv: environment io (%d,%d) does not match species io (%d,%d): %w",
			env.InputCount(), env.OutputCount(), s.InputCount(), s.OutputCount(), ErrEnvironmentBoundaryViolation)
	}

	env.Reset(seed)
	obs := make([]float32, env.InputCount())
	act := make([]float32, env.OutputCount())

	var rewardTotal float32
	for t := 0; t < env.MaxSteps(); t++ {
		env.GetObservations(obs)
		for _, v := range obs {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				return 0, fmt.Errorf("nevoenv: observation at step %d is non-finite: %w", t, ErrEnvironmentBoundaryViolation)
			}
		}

		out, err := eval.Forward(s, ind, obs, act, sc)
		if err != nil {
			return 0, fmt.Errorf("nevoenv: forward evaluation failed: %w", err)
		}
		copy(act, out)

		reward := env.Step(act)
		if math.IsNaN(float64(reward)) || math.IsInf(float64(reward), 0) {
			return 0, fmt.Errorf("nevoenv: reward at step %d is non-finite: %w", t, ErrEnvironmentBoundaryViolation)
		}
		rewardTotal += reward

		if env.IsTerminal() {
			break
		}
	}

	return rewardTotal, nil
}

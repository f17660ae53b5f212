package engine

import (
	"context"

	"github.com/evolab/nevo/config"
	"github.com/evolab/nevo/core"
	"github.com/evolab/nevo/eval"
	"github.com/evolab/nevo/nevoenv"
	"github.com/evolab/nevo/orchestrator"
	"github.com/evolab/nevo/rngstream"
)

// evaluate runs one episode-set per individual across the worker pool and
// writes the resulting fitness back onto each individual in place (spec
// §5 "it holds a read-only reference to its species topology ... and
// writes only its own fitness field").
func (e *Engine) evaluate(ctx context.Context) {
	type target struct {
		species *core.Species
		ind     *core.Individual
	}

	var targets []target
	var tasks []orchestrator.EvalTask
	for _, s := range e.pop.Species() {
		for i, ind := range e.pop.Individuals(s.ID) {
			s, ind := s, ind
			idx := len(tasks)
			targets = append(targets, target{species: s, ind: ind})
			tasks = append(tasks, orchestrator.EvalTask{Index: idx, Run: e.evalFunc(s, ind, i)})
		}
	}

	results := orchestrator.RunAll(ctx, e.pool, tasks)
	for i, r := range results {
		t := targets[i]
		if r.Err != nil || r.TimedOut || r.Cancelled {
			t.ind.Fitness = core.NegInfFitness
			continue
		}
		t.ind.Fitness = r.Fitness
	}
}

// evalFunc closes over one individual's evaluation: run seeds_per_individual
// episodes and aggregate per the configured strategy (spec §4.8).
func (e *Engine) evalFunc(s *core.Species, ind *core.Individual, individualIndex int) func() (float64, error) {
	return func() (float64, error) {
		env := e.newEnv()
		sc := eval.NewScratch(s)

		run := func(seed uint64) (float32, error) {
			return nevoenv.RunEpisode(s, ind, env, seed, sc)
		}
		seedFor := func(i int) uint64 {
			tag := rngstream.Purpose(uint64(rngstream.PurposeEnvironmentSeed) + uint64(i))
			return rngstream.Seed(e.cfg.MasterSeed, e.generation, int64(s.ID), int64(individualIndex), tag)
		}

		return nevoenv.EvaluateFitness(run, seedFor, e.cfg.SeedsPerIndividual, aggregationKind(e.cfg.FitnessAggregation), e.cfg.CVaRQuantile)
	}
}

func aggregationKind(a config.FitnessAggregation) nevoenv.Aggregation {
	switch a {
	case config.Min:
		return nevoenv.Min
	case config.Max:
		return nevoenv.Max
	case config.CVaR:
		return nevoenv.CVaR
	default:
		return nevoenv.Mean
	}
}

package engine

import (
	"context"

	"github.com/evolab/nevo/builder"
	"github.com/evolab/nevo/config"
	"github.com/evolab/nevo/core"
	"github.com/evolab/nevo/lifecycle"
	"github.com/evolab/nevo/nevoenv"
	"github.com/evolab/nevo/orchestrator"
	"github.com/evolab/nevo/rngstream"
	"github.com/evolab/nevo/selection"
)

// Engine ties together a population, its config, an environment factory,
// and the worker pool that evaluates individuals.
type Engine struct {
	cfg        config.Config
	pop        *core.Population
	newEnv     func() nevoenv.Environment
	pool       *orchestrator.Pool
	generation int64
	tracker    lifecycle.Tracker
	nextSpecID int

	globalBestEver float64
	lastStats      Stats
	created        int
}

// New constructs an Engine over an already-populated Population (built by
// package builder). newEnv must return a fresh, independently-seedable
// Environment on every call: each individual's evaluation gets its own
// Environment and different individuals are evaluated concurrently; the
// seeds of one individual run one after another on that Environment.
func New(cfg config.Config, pop *core.Population, newEnv func() nevoenv.Environment, poolWorkers int) *Engine {
	species := pop.Species()
	maxID, total := 0, 0
	for _, s := range species {
		if s.ID > maxID {
			maxID = s.ID
		}
		total += len(pop.Individuals(s.ID))
	}
	if total == 0 {
		total = 1
	}

	return &Engine{
		cfg:            cfg,
		pop:            pop,
		newEnv:         newEnv,
		pool:           orchestrator.NewPool(poolWorkers, total),
		nextSpecID:     maxID + 1,
		created:        len(species),
		globalBestEver: core.NegInfFitness,
	}
}

// Close releases the engine's worker pool.
func (e *Engine) Close() { e.pool.Close() }

// Population exposes a read-only view of the engine's current state,
// handed to callers between the evaluation and lifecycle phases (spec §5
// "no reader may hold old references across this barrier").
func (e *Engine) Population() core.PopulationView { return core.NewPopulationView(e.pop) }

// BestIndividual returns the population's current best individual and its
// species (spec §6.3 "on termination").
func (e *Engine) BestIndividual() (*core.Individual, *core.Species) {
	return e.Population().BestIndividual()
}

// LastStats returns the snapshot computed by the most recently completed
// RunGeneration call.
func (e *Engine) LastStats() Stats { return e.lastStats }

// Run drives generations generations, stopping early if ctx is cancelled
// between generations (spec §5 "polled between individuals and between
// generations").
func (e *Engine) Run(ctx context.Context, generations int) error {
	for i := 0; i < generations; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := e.RunGeneration(ctx); err != nil {
			return err
		}
	}

	return nil
}

// RunGeneration evaluates every individual, reproduces each species,
// updates lifecycle stats, and runs one culling/diversification pass.
func (e *Engine) RunGeneration(ctx context.Context) error {
	e.evaluate(ctx)

	for _, s := range e.pop.Species() {
		individuals := e.pop.Individuals(s.ID)
		fitnesses := make([]float64, len(individuals))
		for i, ind := range individuals {
			fitnesses[i] = ind.Fitness
		}
		lifecycle.UpdateStats(s, fitnesses)
		e.tracker.Observe(s.BestFitnessEver)

		rng := rngstream.Stream(e.cfg.MasterSeed, e.generation, int64(s.ID), 0, rngstream.PurposeTournament)
		ops := buildOps(e.cfg.MutationRates, e.cfg.WeightInitialization, e.cfg.WeightInitBound)
		next := selection.Reproduce(s, individuals, e.cfg.Elites, e.cfg.ParentPoolPercentage, e.cfg.TournamentSize, rng, ops...)
		e.pop.SetIndividuals(s.ID, next)
	}

	// global_best_fitness_ever (spec §4.7) is the cumulative max of every
	// species' BestFitnessEver, not this generation's raw-fitness max:
	// re-evaluated elites can score lower on a later generation, so the
	// per-generation max is non-monotonic and would let a culling decision
	// drift against an already-surpassed bar.
	e.globalBestEver = e.speciesBestFitnessEver()
	culled := e.cull(e.globalBestEver)
	e.lastStats = e.snapshotStats(culled)
	e.generation++

	return nil
}

func (e *Engine) speciesBestFitnessEver() float64 {
	best := core.NegInfFitness
	for _, s := range e.pop.Species() {
		if s.BestFitnessEver > best {
			best = s.BestFitnessEver
		}
	}

	return best
}

func (e *Engine) cull(globalBest float64) int {
	culls := 0
	cfg := lifecycle.Config{
		GraceGenerations:             e.cfg.GraceGenerations,
		StagnationThreshold:          e.cfg.StagnationThreshold,
		RelativePerformanceThreshold: e.cfg.RelativePerformanceThresh,
		SpeciesDiversityThreshold:    e.cfg.SpeciesDiversityThreshold,
		MinSpeciesCount:              e.cfg.MinSpeciesCount,
	}

	for e.pop.SpeciesCount() > cfg.MinSpeciesCount {
		species := e.pop.Species()
		worst := lifecycle.WorstEligible(cfg, species, globalBest, &e.tracker)
		if worst == nil {
			return culls
		}

		diversifyRng := rngstream.Stream(e.cfg.MasterSeed, e.generation, int64(worst.ID), 0, rngstream.PurposeDiversify)
		source := lifecycle.SelectSource(species, diversifyRng)
		elites := topElites(e.pop.Individuals(source.ID), e.cfg.Elites)

		newSpecies, newIndividuals := lifecycle.Diversify(
			e.nextSpecID, source, elites, diversifyRng, e.cfg.MutationRates.EdgeAddProb+0.1,
			weightInitFrom(e.cfg.WeightInitialization, e.cfg.WeightInitBound), e.cfg.WeightInitBound,
			e.cfg.IndividualsPerSpecies,
		)
		e.nextSpecID++
		e.created++

		e.pop.RemoveSpecies(worst.ID)
		e.pop.AddSpecies(newSpecies, newIndividuals)
		culls++
	}

	return culls
}

func topElites(individuals []*core.Individual, n int) []*core.Individual {
	ranked := selection.ByFitnessDesc(individuals)
	if n > len(ranked) {
		n = len(ranked)
	}

	return ranked[:n]
}

func weightInitFrom(kind config.WeightInitKind, bound float32) builder.WeightInit {
	if kind == config.UniformRange {
		return builder.Uniform(-bound, bound)
	}

	return builder.WeightInit{Kind: builder.WeightInitKind(kind)}
}

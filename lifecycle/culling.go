// File: culling.go
// Role: OR-logic culling eligibility (spec §4.7) and the end-of-generation
// culling loop.
//
// relative_performance_threshold resolution: spec §4.7 defines eligibility
// in terms of "best_fitness_ever / global_best_fitness_ever < threshold ...
// values may be negative; implement as a signed ratio that treats better
// as larger". A plain division inverts the ordering whenever the divisor
// is negative (e.g. best=-1, global=-10 gives ratio 0.1, while the
// intuitively "closer to the global best" species is the one with best
// closer to -10's sign-neutral preference is undefined). We instead
// normalize both values against a running floor, worstAllowable, tracked
// as the minimum best_fitness_ever ever observed across all species minus
// one unit of slack, so the numerator and denominator of the ratio are
// always non-negative and the ratio is monotonic in best regardless of
// sign:
//
//	ratio = (best - worstAllowable) / (globalBest - worstAllowable)
//
// globalBest == worstAllowable only when every species ever seen has tied
// at the floor, in which case every species is equally (non-)deficient and
// the ratio is defined as 1.0 (never eligible on this criterion alone).
package lifecycle

import "github.com/evolab/nevo/core"

// Tracker accumulates the running worstAllowable floor relative_
// performance_threshold needs across the whole run.
type Tracker struct {
	worstAllowable float64
	initialized    bool
}

// Observe folds one species' best_fitness_ever into the tracker's floor.
func (t *Tracker) Observe(bestFitnessEver float64) {
	if !t.initialized || bestFitnessEver-1 < t.worstAllowable {
		t.worstAllowable = bestFitnessEver - 1
		t.initialized = true
	}
}

// RelativePerformanceRatio computes the signed ratio described above.
func (t *Tracker) RelativePerformanceRatio(best, globalBest float64) float64 {
	denom := globalBest - t.worstAllowable
	if denom == 0 {
		return 1.0
	}

	return (best - t.worstAllowable) / denom
}

// Config bundles the culling thresholds from spec §6.2 RunConfig.
type Config struct {
	GraceGenerations             int
	StagnationThreshold          int
	RelativePerformanceThreshold float64
	SpeciesDiversityThreshold    float64
	MinSpeciesCount              int
}

// Eligible reports whether species s may be culled this generation, per
// the OR-logic gated by a grace period (spec §4.7).
func Eligible(cfg Config, s *core.Species, globalBestFitnessEver float64, tracker *Tracker) bool {
	if s.AgeGenerations < cfg.GraceGenerations {
		return false
	}

	stagnant := s.GensSinceImprovement >= cfg.StagnationThreshold
	ratio := tracker.RelativePerformanceRatio(s.BestFitnessEver, globalBestFitnessEver)
	underperforming := ratio < cfg.RelativePerformanceThreshold
	converged := s.FitnessVarianceLastGen < cfg.SpeciesDiversityThreshold

	return stagnant || underperforming || converged
}

// WorstEligible picks the lowest-best-fitness-ever species among those
// eligible. Returns nil if none are eligible.
func WorstEligible(cfg Config, species []*core.Species, globalBestFitnessEver float64, tracker *Tracker) *core.Species {
	var worst *core.Species
	for _, s := range species {
		if !Eligible(cfg, s, globalBestFitnessEver, tracker) {
			continue
		}
		if worst == nil || s.BestFitnessEver < worst.BestFitnessEver {
			worst = s
		}
	}

	return worst
}

package nevoenv

import "sort"

// Aggregation selects how multiple episode rewards are combined into one
// fitness value (spec §4.8).
type Aggregation int

const (
	Mean Aggregation = iota
	Min
	Max
	CVaR
)

// DefaultCVaRq is the default quantile for CVaR (spec §4.8: 0.5).
const DefaultCVaRq = 0.5

// Aggregate combines rewards according to kind. q is only consulted for
// CVaR. rewards must be non-empty.
func Aggregate(kind Aggregation, q float64, rewards []float32) float32 {
	switch kind {
	case Min:
		m := rewards[0]
		for _, r := range rewards[1:] {
			if r < m {
				m = r
			}
		}
		return m
	case Max:
		m := rewards[0]
		for _, r := range rewards[1:] {
			if r > m {
				m = r
			}
		}
		return m
	case CVaR:
		return cvar(q, rewards)
	default: // Mean
		var sum float32
		for _, r := range rewards {
			sum += r
		}
		return sum / float32(len(rewards))
	}
}

// cvar sorts rewards ascending, keeps the lower q-quantile subset (at
// least one element), and returns its mean.
func cvar(q float64, rewards []float32) float32 {
	sorted := append([]float32(nil), rewards...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	k := int(q * float64(len(sorted)))
	if k < 1 {
		k = 1
	}
	if k > len(sorted) {
		k = len(sorted)
	}

	var sum float32
	for _, r := range sorted[:k] {
		sum += r
	}
	return sum / float32(k)
}

// EvaluateFitness runs seedsPerIndividual episodes (or one, when
// seedsPerIndividual == 1, bypassing aggregation entirely per spec §4.8)
// and returns the resulting fitness. seedFor derives each episode's seed
// from its index; callers typically wire this to rngstream.
func EvaluateFitness(
	run func(seed uint64) (float32, error),
	seedFor func(i int) uint64,
	seedsPerIndividual int,
	kind Aggregation,
	q float64,
) (float64, error) {
	if seedsPerIndividual <= 1 {
		r, err := run(seedFor(0))
		if err != nil {
			return 0, err
		}
		return float64(r), nil
	}

	rewards := make([]float32, seedsPerIndividual)
	for i := 0; i < seedsPerIndividual; i++ {
		r, err := run(seedFor(i))
		if err != nil {
			return 0, err
		}
		rewards[i] = r
	}

	return float64(Aggregate(kind, q, rewards)), nil
}

package mutate

import (
	"math/rand"

	"github.com/evolab/nevo/core"
)

// Op is one mutation operator, rolled against ind (which belongs to
// species s) using rng. It returns true if it changed ind.
type Op func(s *core.Species, ind *core.Individual, rng *rand.Rand) bool

// Apply clones ind, runs every op against the clone in order, validates
// the result, and returns the clone on success. On a validation failure it
// discards the mutated clone and returns a fresh, unmutated clone of ind
// instead — never the ind pointer itself — along with the validation
// error, so that two rolled-back calls against the same parent never leave
// two population slots aliasing one *core.Individual.
func Apply(s *core.Species, ind *core.Individual, rng *rand.Rand, ops ...Op) (*core.Individual, error) {
	clone := ind.Clone()
	for _, op := range ops {
		op(s, clone, rng)
	}
	if err := clone.Validate(s); err != nil {
		return ind.Clone(), err
	}

	return clone, nil
}

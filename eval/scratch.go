package eval

import "github.com/evolab/nevo/core"

// Scratch is a reusable per-node float32 buffer so repeated Forward calls
// against individuals of the same species (the common case inside one
// episode) do not allocate on every step.
type Scratch struct {
	z []float32
}

// NewScratch allocates a Scratch sized for species s.
func NewScratch(s *core.Species) *Scratch {
	return &Scratch{z: make([]float32, s.TotalNodes())}
}

// reset zeroes the buffer, growing it if s has more nodes than the last
// species this Scratch was used with.
func (sc *Scratch) reset(n int) {
	if cap(sc.z) < n {
		sc.z = make([]float32, n)
		return
	}
	sc.z = sc.z[:n]
	for i := range sc.z {
		sc.z[i] = 0
	}
}

package activation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evolab/nevo/activation"
)

func TestApplyKnownPoints(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		name   string
		id     activation.ID
		x      float32
		params [4]float32
		want   float32
	}{
		{"Linear zero", activation.Linear, 0, [4]float32{}, 0},
		{"Linear passthrough", activation.Linear, 3.5, [4]float32{}, 3.5},
		{"Tanh zero", activation.Tanh, 0, [4]float32{}, 0},
		{"Sigmoid zero", activation.Sigmoid, 0, [4]float32{}, 0.5},
		{"ReLU negative", activation.ReLU, -2, [4]float32{}, 0},
		{"ReLU positive", activation.ReLU, 2, [4]float32{}, 2},
		{"LeakyReLU negative", activation.LeakyReLU, -2, [4]float32{0.1}, -0.2},
		{"LeakyReLU positive", activation.LeakyReLU, 2, [4]float32{0.1}, 2},
		{"Softsign zero", activation.Softsign, 0, [4]float32{}, 0},
		{"Sin zero", activation.Sin, 0, [4]float32{}, 0},
		{"Gaussian zero", activation.Gaussian, 0, [4]float32{}, 1},
		{"GELU zero", activation.GELU, 0, [4]float32{}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := activation.Apply(c.id, c.x, c.params)
			require.InDelta(float64(c.want), float64(got), 1e-5, c.name)
		})
	}
}

func TestELUMatchesFormula(t *testing.T) {
	require := require.New(t)
	alpha := float32(1.0)
	x := float32(-1.0)
	want := alpha * (float32(math.Exp(-1)) - 1)
	got := activation.Apply(activation.ELU, x, [4]float32{alpha})
	require.InDelta(float64(want), float64(got), 1e-5)
}

func TestSoftplusClampsLargeInputs(t *testing.T) {
	require := require.New(t)
	got := activation.Apply(activation.Softplus, 50, [4]float32{})
	require.Equal(float32(50), got, "Softplus must clamp for large positive x")

	got = activation.Apply(activation.Softplus, -50, [4]float32{})
	require.Equal(float32(0), got, "Softplus must clamp to 0 for large negative x")
}

func TestValidAndArity(t *testing.T) {
	require := require.New(t)
	require.True(activation.Valid(activation.Linear))
	require.True(activation.Valid(activation.GELU))
	require.False(activation.Valid(activation.ID(-1)))
	require.False(activation.Valid(activation.ID(activation.Count())))

	require.Equal(1, activation.Arity(activation.LeakyReLU))
	require.Equal(1, activation.Arity(activation.ELU))
	require.Equal(0, activation.Arity(activation.Tanh))
}

func TestApplyPanicsOnInvalidID(t *testing.T) {
	require := require.New(t)
	require.Panics(func() {
		activation.Apply(activation.ID(999), 0, [4]float32{})
	})
}

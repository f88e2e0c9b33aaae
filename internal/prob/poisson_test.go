package prob_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/sred02/probcalc/internal/input"
	"github.com/sred02/probcalc/internal/prob"
)

// TestPoisson_TextbookScenario: a call center averaging 4 events/hour
// has P(X=2) ≈ 0.1465.
func TestPoisson_TextbookScenario(t *testing.T) {
	p, err := prob.NewPoisson(4.0, 2)
	require.NoError(t, err)

	r := p.PMF()
	want := math.Pow(4, 2) * math.Exp(-4) / 2
	assert.InDelta(t, want, r.Value, 1e-12)
	assert.InDelta(t, 0.1465, r.Value, 5e-5, "rounds to 0.1465 at four decimals")
	assert.Equal(t, "P(X = 2)", r.Event)
}

// TestPoisson_KZeroIsExpNegLambda verifies the boundary from the
// contract: P(X=0) = e^(-λ) for any positive rate.
func TestPoisson_KZeroIsExpNegLambda(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lambda := rapid.Float64Range(0.001, 50).Draw(rt, "lambda")
		p, err := prob.NewPoisson(lambda, 0)
		require.NoError(rt, err)
		assert.InDelta(rt, math.Exp(-lambda), p.PMF().Value, 1e-12)
	})
}

func TestPoisson_RejectsInvalidParams(t *testing.T) {
	cases := []struct {
		name   string
		lambda float64
		k      int
		param  string
	}{
		{"zero lambda", 0, 1, "λ"},
		{"negative lambda", -2, 1, "λ"},
		{"negative k", 4, -1, "k"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := prob.NewPoisson(tc.lambda, tc.k)
			var inv *input.InvalidInputError
			require.True(t, errors.As(err, &inv))
			assert.Equal(t, tc.param, inv.Param)
			assert.Equal(t, input.OutOfRange, inv.Reason)
		})
	}
}

// TestPoisson_PMFInUnitRange verifies 0 <= P(X=k) <= 1 for arbitrary
// valid inputs, including rates large enough to overflow a naive
// λ^k / k! evaluation.
func TestPoisson_PMFInUnitRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lambda := rapid.Float64Range(0.001, 500).Draw(rt, "lambda")
		k := rapid.IntRange(0, 1000).Draw(rt, "k")

		p, err := prob.NewPoisson(lambda, k)
		require.NoError(rt, err)
		v := p.PMF().Value
		assert.GreaterOrEqual(rt, v, 0.0)
		assert.LessOrEqual(rt, v, 1.0)
		assert.False(rt, math.IsNaN(v), "PMF must never be NaN")
	})
}

// TestPoisson_CDFMatchesSummedPMF verifies P(X <= k) equals the summed
// PMF for moderate inputs.
func TestPoisson_CDFMatchesSummedPMF(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lambda := rapid.Float64Range(0.1, 30).Draw(rt, "lambda")
		k := rapid.IntRange(0, 50).Draw(rt, "k")

		p, err := prob.NewPoisson(lambda, k)
		require.NoError(rt, err)

		sum := 0.0
		for i := 0; i <= k; i++ {
			pi, err := prob.NewPoisson(lambda, i)
			require.NoError(rt, err)
			sum += pi.PMF().Value
		}
		assert.InDelta(rt, sum, p.CDF().Value, 1e-8)
	})
}

func TestPoisson_Idempotent(t *testing.T) {
	p, err := prob.NewPoisson(6.5, 4)
	require.NoError(t, err)
	assert.Equal(t, p.PMF(), p.PMF())
	assert.Equal(t, p.CDF(), p.CDF())
}

// TestPoisson_Moments: mean and variance both equal λ.
func TestPoisson_Moments(t *testing.T) {
	p, err := prob.NewPoisson(4.0, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, p.Mean())
	assert.Equal(t, 4.0, p.Variance())
	assert.InDelta(t, 2.0, p.StdDev(), 1e-12)
}

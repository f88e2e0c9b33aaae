package prob

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sred02/probcalc/internal/input"
)

// Normal evaluates densities, tail probabilities, and quantiles for a
// normal distribution with mean mu and standard deviation sigma.
//
// The CDF is erf-based via gonum; its absolute error is below 1e-9.
type Normal struct {
	mu, sigma float64
	dist      distuv.Normal
}

// NewNormal validates (mu, sigma) and returns a Normal evaluator.
//
// Postcondition: Returns a valid evaluator, or a *input.InvalidInputError
// naming the offending parameter.
func NewNormal(mu, sigma float64) (Normal, error) {
	if sigma <= 0 {
		return Normal{}, &input.InvalidInputError{
			Param: "σ", Raw: formatNum(sigma), Reason: input.OutOfRange,
			Detail: "must be > 0",
		}
	}
	return Normal{
		mu: mu, sigma: sigma,
		dist: distuv.Normal{Mu: mu, Sigma: sigma},
	}, nil
}

// ZScore returns (x - μ) / σ, the standardized distance from the mean.
func (n Normal) ZScore(x float64) float64 {
	return (x - n.mu) / n.sigma
}

// PDF evaluates the density at x. The value is non-negative but is a
// density, not a probability.
func (n Normal) PDF(x float64) Result {
	return Result{
		Distribution: "Normal",
		Event:        fmt.Sprintf("f(%s)", formatNum(x)),
		Params:       n.params(Param{Name: "x", Value: formatNum(x)}),
		Value:        n.dist.Prob(x),
		Density:      true,
		Formula: fmt.Sprintf("(1 / (%s√2π)) × e^(-(%s - %s)²/(2×%s²))",
			formatNum(n.sigma), formatNum(x), formatNum(n.mu), formatNum(n.sigma)),
		Derived: []Stat{{Name: "z", Value: n.ZScore(x)}},
	}
}

// CDFBelow computes P(X < x) = Φ(z) with z = (x - μ) / σ.
//
// Postcondition: Result.Value is in [0,1].
func (n Normal) CDFBelow(x float64) Result {
	z := n.ZScore(x)
	return Result{
		Distribution: "Normal",
		Event:        fmt.Sprintf("P(X < %s)", formatNum(x)),
		Params:       n.params(Param{Name: "x", Value: formatNum(x)}),
		Value:        clampUnit(n.dist.CDF(x)),
		Formula: fmt.Sprintf("Φ(z)  where z = (%s - %s) / %s = %.4f",
			formatNum(x), formatNum(n.mu), formatNum(n.sigma), z),
		Derived: []Stat{{Name: "z", Value: z}},
	}
}

// CDFAbove computes P(X > x) = 1 - Φ(z).
//
// Postcondition: Result.Value is in [0,1].
func (n Normal) CDFAbove(x float64) Result {
	z := n.ZScore(x)
	return Result{
		Distribution: "Normal",
		Event:        fmt.Sprintf("P(X > %s)", formatNum(x)),
		Params:       n.params(Param{Name: "x", Value: formatNum(x)}),
		Value:        clampUnit(n.dist.Survival(x)),
		Formula: fmt.Sprintf("1 - Φ(z)  where z = (%s - %s) / %s = %.4f",
			formatNum(x), formatNum(n.mu), formatNum(n.sigma), z),
		Derived: []Stat{{Name: "z", Value: z}},
	}
}

// CDFBetween computes P(a < X < b) = Φ(z_b) - Φ(z_a).
//
// Precondition: a <= b.
// Postcondition: Result.Value is in [0,1].
func (n Normal) CDFBetween(a, b float64) Result {
	za, zb := n.ZScore(a), n.ZScore(b)
	return Result{
		Distribution: "Normal",
		Event:        fmt.Sprintf("P(%s < X < %s)", formatNum(a), formatNum(b)),
		Params: n.params(
			Param{Name: "a", Value: formatNum(a)},
			Param{Name: "b", Value: formatNum(b)},
		),
		Value: clampUnit(n.dist.CDF(b) - n.dist.CDF(a)),
		Formula: fmt.Sprintf("Φ(%.4f) - Φ(%.4f)", zb, za),
		Derived: []Stat{
			{Name: "z(a)", Value: za},
			{Name: "z(b)", Value: zb},
		},
	}
}

// Quantile returns x such that P(X <= x) = p, the inverse of the CDF.
//
// Precondition: 0 < p < 1.
func (n Normal) Quantile(p float64) float64 {
	return n.dist.Quantile(p)
}

// Interval returns the symmetric interval (lo, hi) around the mean with
// P(lo <= X <= hi) = confidence.
//
// Precondition: 0 < confidence < 1.
// Postcondition: lo < hi and both are symmetric around μ.
func (n Normal) Interval(confidence float64) (lo, hi float64) {
	alpha := (1 - confidence) / 2
	return n.Quantile(alpha), n.Quantile(1 - alpha)
}

// Mean returns μ.
func (n Normal) Mean() float64 { return n.mu }

// StdDev returns σ.
func (n Normal) StdDev() float64 { return n.sigma }

func (n Normal) params(extra ...Param) []Param {
	ps := append([]Param{}, extra...)
	return append(ps,
		Param{Name: "μ", Value: formatNum(n.mu)},
		Param{Name: "σ", Value: formatNum(n.sigma)},
	)
}

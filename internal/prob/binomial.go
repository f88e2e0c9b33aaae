package prob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sred02/probcalc/internal/input"
)

// Binomial evaluates P(X = k) and P(X <= k) for k successes in n
// independent trials with success probability p.
type Binomial struct {
	n, k int
	p    float64
	dist distuv.Binomial
}

// NewBinomial validates (n, k, p) and returns a Binomial evaluator.
//
// Precondition: none; all validation happens here.
// Postcondition: Returns a valid evaluator, or a *input.InvalidInputError
// naming the offending parameter.
func NewBinomial(n, k int, p float64) (Binomial, error) {
	if n < 0 {
		return Binomial{}, &input.InvalidInputError{
			Param: "n", Raw: fmt.Sprint(n), Reason: input.OutOfRange,
			Detail: "must be >= 0",
		}
	}
	if k < 0 || k > n {
		return Binomial{}, &input.InvalidInputError{
			Param: "k", Raw: fmt.Sprint(k), Reason: input.OutOfRange,
			Detail: fmt.Sprintf("must be between 0 and n (%d)", n),
		}
	}
	if p < 0 || p > 1 {
		return Binomial{}, &input.InvalidInputError{
			Param: "p", Raw: formatNum(p), Reason: input.OutOfRange,
			Detail: "must be between 0 and 1",
		}
	}
	return Binomial{
		n: n, k: k, p: p,
		dist: distuv.Binomial{N: float64(n), P: p},
	}, nil
}

// PMF computes P(X = k) = C(n,k) · p^k · (1-p)^(n-k).
//
// Postcondition: Result.Value is in [0,1].
func (b Binomial) PMF() Result {
	var v float64
	switch {
	// Degenerate p values are handled directly: the log-space PMF is
	// undefined at p=0 and p=1.
	case b.p == 0:
		if b.k == 0 {
			v = 1
		}
	case b.p == 1:
		if b.k == b.n {
			v = 1
		}
	default:
		v = clampUnit(b.dist.Prob(float64(b.k)))
	}
	return Result{
		Distribution: "Binomial",
		Event:        fmt.Sprintf("P(X = %d)", b.k),
		Params:       b.params(),
		Value:        v,
		Formula: fmt.Sprintf("C(%d,%d) × %s^%d × %s^%d",
			b.n, b.k, formatNum(b.p), b.k, formatNum(1-b.p), b.n-b.k),
		Derived: b.moments(),
	}
}

// CDF computes the cumulative probability P(X <= k).
//
// Postcondition: Result.Value is in [0,1] and >= PMF().Value.
func (b Binomial) CDF() Result {
	var v float64
	switch {
	case b.p == 0:
		v = 1
	case b.p == 1:
		if b.k == b.n {
			v = 1
		}
	default:
		v = clampUnit(b.dist.CDF(float64(b.k)))
	}
	return Result{
		Distribution: "Binomial",
		Event:        fmt.Sprintf("P(X <= %d)", b.k),
		Params:       b.params(),
		Value:        v,
		Formula: fmt.Sprintf("Σ i=0..%d  C(%d,i) × %s^i × %s^(%d-i)",
			b.k, b.n, formatNum(b.p), formatNum(1-b.p), b.n),
		Derived: b.moments(),
	}
}

// Mean returns the expected number of successes, n·p.
func (b Binomial) Mean() float64 { return float64(b.n) * b.p }

// Variance returns n·p·(1-p).
func (b Binomial) Variance() float64 { return float64(b.n) * b.p * (1 - b.p) }

// StdDev returns the standard deviation √(n·p·(1-p)).
func (b Binomial) StdDev() float64 { return math.Sqrt(b.Variance()) }

func (b Binomial) params() []Param {
	return []Param{
		{Name: "n", Value: fmt.Sprint(b.n)},
		{Name: "k", Value: fmt.Sprint(b.k)},
		{Name: "p", Value: formatNum(b.p)},
	}
}

func (b Binomial) moments() []Stat {
	return []Stat{
		{Name: "mean", Value: b.Mean()},
		{Name: "std dev", Value: b.StdDev()},
	}
}

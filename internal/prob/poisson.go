package prob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sred02/probcalc/internal/input"
)

// Poisson evaluates P(X = k) and P(X <= k) for k events in an interval
// with average rate lambda.
type Poisson struct {
	lambda float64
	k      int
	dist   distuv.Poisson
}

// NewPoisson validates (lambda, k) and returns a Poisson evaluator.
//
// Postcondition: Returns a valid evaluator, or a *input.InvalidInputError
// naming the offending parameter.
func NewPoisson(lambda float64, k int) (Poisson, error) {
	if lambda <= 0 {
		return Poisson{}, &input.InvalidInputError{
			Param: "λ", Raw: formatNum(lambda), Reason: input.OutOfRange,
			Detail: "must be > 0",
		}
	}
	if k < 0 {
		return Poisson{}, &input.InvalidInputError{
			Param: "k", Raw: fmt.Sprint(k), Reason: input.OutOfRange,
			Detail: "must be >= 0",
		}
	}
	return Poisson{
		lambda: lambda, k: k,
		dist: distuv.Poisson{Lambda: lambda},
	}, nil
}

// PMF computes P(X = k) = (λ^k · e^-λ) / k!. The underlying
// implementation works in log-space, so large k and λ do not overflow.
//
// Postcondition: Result.Value is in [0,1].
func (p Poisson) PMF() Result {
	return Result{
		Distribution: "Poisson",
		Event:        fmt.Sprintf("P(X = %d)", p.k),
		Params:       p.params(),
		Value:        clampUnit(p.dist.Prob(float64(p.k))),
		Formula: fmt.Sprintf("(%s^%d × e^-%s) / %d!",
			formatNum(p.lambda), p.k, formatNum(p.lambda), p.k),
		Derived: p.moments(),
	}
}

// CDF computes the cumulative probability P(X <= k).
//
// Postcondition: Result.Value is in [0,1] and >= PMF().Value.
func (p Poisson) CDF() Result {
	return Result{
		Distribution: "Poisson",
		Event:        fmt.Sprintf("P(X <= %d)", p.k),
		Params:       p.params(),
		Value:        clampUnit(p.dist.CDF(float64(p.k))),
		Formula: fmt.Sprintf("Σ i=0..%d  (%s^i × e^-%s) / i!",
			p.k, formatNum(p.lambda), formatNum(p.lambda)),
		Derived: p.moments(),
	}
}

// Mean returns λ.
func (p Poisson) Mean() float64 { return p.lambda }

// Variance returns λ; in the Poisson distribution mean and variance coincide.
func (p Poisson) Variance() float64 { return p.lambda }

// StdDev returns √λ.
func (p Poisson) StdDev() float64 { return math.Sqrt(p.lambda) }

func (p Poisson) params() []Param {
	return []Param{
		{Name: "λ", Value: formatNum(p.lambda)},
		{Name: "k", Value: fmt.Sprint(p.k)},
	}
}

func (p Poisson) moments() []Stat {
	return []Stat{
		{Name: "mean", Value: p.Mean()},
		{Name: "std dev", Value: p.StdDev()},
	}
}

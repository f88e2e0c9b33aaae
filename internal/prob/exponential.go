package prob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sred02/probcalc/internal/input"
)

// Exponential evaluates probabilities for the time (or distance) until
// the next event in a Poisson process with rate lambda.
type Exponential struct {
	lambda float64
	dist   distuv.Exponential
}

// NewExponential validates the rate and returns an Exponential evaluator.
//
// Postcondition: Returns a valid evaluator, or a *input.InvalidInputError
// naming λ.
func NewExponential(lambda float64) (Exponential, error) {
	if lambda <= 0 {
		return Exponential{}, &input.InvalidInputError{
			Param: "λ", Raw: formatNum(lambda), Reason: input.OutOfRange,
			Detail: "must be > 0",
		}
	}
	return Exponential{
		lambda: lambda,
		dist:   distuv.Exponential{Rate: lambda},
	}, nil
}

// CDF computes P(X <= x) = 1 - e^(-λx).
//
// Precondition: x >= 0.
// Postcondition: Result.Value is in [0,1]; CDF(0) is exactly 0.
func (e Exponential) CDF(x float64) Result {
	return Result{
		Distribution: "Exponential",
		Event:        fmt.Sprintf("P(X <= %s)", formatNum(x)),
		Params:       e.params(x),
		Value:        clampUnit(e.dist.CDF(x)),
		Formula: fmt.Sprintf("1 - e^(-%s × %s)",
			formatNum(e.lambda), formatNum(x)),
		Derived: e.moments(),
	}
}

// Survival computes the complement P(X > x) = e^(-λx).
//
// Precondition: x >= 0.
// Postcondition: Result.Value is in [0,1]; Survival(0) is exactly 1.
func (e Exponential) Survival(x float64) Result {
	return Result{
		Distribution: "Exponential",
		Event:        fmt.Sprintf("P(X > %s)", formatNum(x)),
		Params:       e.params(x),
		Value:        clampUnit(e.dist.Survival(x)),
		Formula: fmt.Sprintf("e^(-%s × %s)",
			formatNum(e.lambda), formatNum(x)),
		Derived: e.moments(),
	}
}

// PDF evaluates the density λ·e^(-λx) at x.
//
// Precondition: x >= 0.
func (e Exponential) PDF(x float64) Result {
	return Result{
		Distribution: "Exponential",
		Event:        fmt.Sprintf("f(%s)", formatNum(x)),
		Params:       e.params(x),
		Value:        e.dist.Prob(x),
		Density:      true,
		Formula: fmt.Sprintf("%s × e^(-%s × %s)",
			formatNum(e.lambda), formatNum(e.lambda), formatNum(x)),
		Derived: e.moments(),
	}
}

// Quantile returns x such that P(X <= x) = p, i.e. -ln(1-p)/λ.
//
// Precondition: 0 < p < 1.
func (e Exponential) Quantile(p float64) float64 {
	return -math.Log(1-p) / e.lambda
}

// Mean returns 1/λ.
func (e Exponential) Mean() float64 { return 1 / e.lambda }

// Variance returns 1/λ².
func (e Exponential) Variance() float64 { return 1 / (e.lambda * e.lambda) }

// StdDev returns 1/λ, which for the exponential equals the mean.
func (e Exponential) StdDev() float64 { return 1 / e.lambda }

func (e Exponential) params(x float64) []Param {
	return []Param{
		{Name: "x", Value: formatNum(x)},
		{Name: "λ", Value: formatNum(e.lambda)},
	}
}

func (e Exponential) moments() []Stat {
	return []Stat{
		{Name: "mean", Value: e.Mean()},
		{Name: "std dev", Value: e.StdDev()},
	}
}

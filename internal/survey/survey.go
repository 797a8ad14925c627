// Package survey estimates how well a ramp set copes with the ground a
// vehicle is likely to park on, by solving many random starting tilts.
package survey

import (
	"errors"
	"math"

	"github.com/rvtools/leveler/internal/level"
)

// DefaultTolerance is the residual tilt, in degrees, treated as level enough.
const DefaultTolerance = 0.5

var ErrInvalidParams = errors.New("survey: max pitch/bank and tolerance must be finite and >= 0")

// Params describes one survey run.
type Params struct {
	Config    level.Config
	MaxPitch  float64 // samples pitch uniformly in [-MaxPitch, MaxPitch]
	MaxBank   float64 // samples bank uniformly in [-MaxBank, MaxBank]
	Tolerance float64 // 0 → DefaultTolerance
	Trials    int
}

// Result summarises a survey.
type Result struct {
	Trials     int   `json:"trials"`
	Correction Stats `json:"correction"`
	Residual   Stats `json:"residual"` // best total tilt, degrees
	// Tolerance is the threshold actually applied, after defaulting.
	Tolerance float64 `json:"tolerance"`
	// WithinTolerance is the share of trials whose residual tilt is at most
	// the tolerance.
	WithinTolerance float64 `json:"within_tolerance"`
	Steps           int     `json:"steps"`
	Evaluated       int     `json:"evaluated"`
}

func (p Params) validate() error {
	for _, x := range [...]float64{p.MaxPitch, p.MaxBank, p.Tolerance} {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
			return ErrInvalidParams
		}
	}
	return p.Config.Validate()
}

// Run solves p.Trials random starting tilts. A nil rng uses DefaultRNG.
func Run(p Params, rng RandomSource) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	tol := p.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	if p.Trials <= 0 {
		return Result{Tolerance: tol}, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	res := Result{Trials: p.Trials, Tolerance: tol}
	corrections := make([]float64, p.Trials)
	residuals := make([]float64, p.Trials)
	within := 0
	for i := range p.Trials {
		pitch := (2*rng.Float64() - 1) * p.MaxPitch
		bank := (2*rng.Float64() - 1) * p.MaxBank
		plan := level.Solve(level.NoRamps(pitch, bank), p.Config)

		corrections[i] = plan.Correction
		residuals[i] = plan.Best.Total
		if plan.Best.Total <= tol {
			within++
		}
		res.Steps += plan.Steps
		res.Evaluated += plan.Evaluated
	}
	res.Correction = calcStats(corrections)
	res.Residual = calcStats(residuals)
	res.WithinTolerance = float64(within) / float64(p.Trials)
	return res, nil
}

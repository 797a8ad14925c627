package survey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvtools/leveler/internal/level"
	"github.com/rvtools/leveler/internal/survey"
)

func params(trials int) survey.Params {
	cfg := level.DefaultConfig()
	cfg.PitchPerRamp = 0.8
	cfg.BankPerRamp = 1.5
	return survey.Params{Config: cfg, MaxPitch: 3, MaxBank: 3, Trials: trials}
}

func TestRun_Bounds(t *testing.T) {
	res, err := survey.Run(params(300), survey.NewSeededRNG(42))
	require.NoError(t, err)

	assert.Equal(t, 300, res.Trials)
	assert.GreaterOrEqual(t, res.Correction.Min, 0.0)
	assert.LessOrEqual(t, res.Correction.Max, 1.0)
	assert.GreaterOrEqual(t, res.Residual.Min, 0.0)
	assert.LessOrEqual(t, res.Residual.Max, 3*1.4142136)
	assert.GreaterOrEqual(t, res.WithinTolerance, 0.0)
	assert.LessOrEqual(t, res.WithinTolerance, 1.0)
	assert.Positive(t, res.Evaluated)
}

func TestRun_Deterministic(t *testing.T) {
	a, err := survey.Run(params(100), survey.NewSeededRNG(7))
	require.NoError(t, err)
	b, err := survey.Run(params(100), survey.NewSeededRNG(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_NoRampsNoCorrection(t *testing.T) {
	p := params(50)
	p.Config.Ramps = 0
	res, err := survey.Run(p, survey.NewSeededRNG(1))
	require.NoError(t, err)

	assert.Zero(t, res.Correction.Max)
	assert.Zero(t, res.Steps)
}

func TestRun_FlatGroundAlwaysLevel(t *testing.T) {
	p := params(20)
	p.MaxPitch, p.MaxBank = 0, 0
	res, err := survey.Run(p, nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.WithinTolerance)
	assert.Equal(t, 1.0, res.Correction.Mean)
}

func TestRun_MoreRampsCoverMore(t *testing.T) {
	one := params(200)
	one.Config.Ramps = 1
	two := params(200)

	r1, err := survey.Run(one, survey.NewSeededRNG(3))
	require.NoError(t, err)
	r2, err := survey.Run(two, survey.NewSeededRNG(3))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r2.Correction.Mean, r1.Correction.Mean)
}

func TestRun_Invalid(t *testing.T) {
	p := params(10)
	p.MaxPitch = -1
	_, err := survey.Run(p, nil)
	assert.ErrorIs(t, err, survey.ErrInvalidParams)

	p = params(10)
	p.Config.Ramps = 6
	_, err = survey.Run(p, nil)
	assert.ErrorIs(t, err, level.ErrInvalidRampLimit)

	res, err := survey.Run(params(0), nil)
	require.NoError(t, err)
	assert.Equal(t, survey.Result{}, res)
}

func TestRun_ReportsToleranceUsed(t *testing.T) {
	res, err := survey.Run(params(10), survey.NewSeededRNG(3))
	require.NoError(t, err)
	assert.Equal(t, survey.DefaultTolerance, res.Tolerance)

	p := params(10)
	p.Tolerance = 1.25
	res, err = survey.Run(p, survey.NewSeededRNG(3))
	require.NoError(t, err)
	assert.Equal(t, 1.25, res.Tolerance)
}

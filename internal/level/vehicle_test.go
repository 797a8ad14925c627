package level_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvtools/leveler/internal/level"
)

func TestNewVehicle(t *testing.T) {
	v, err := level.NewVehicle(config(0.8, 1.5, 2))
	require.NoError(t, err)

	assert.True(t, v.InitialAttitude().Equal(level.NoRamps(0, 0)))
	assert.Equal(t, 2, v.Config().Ramps)
	assert.Equal(t, 1.0, v.Correction())

	_, err = level.NewVehicle(config(0.8, 1.5, 9))
	assert.ErrorIs(t, err, level.ErrInvalidRampLimit)
}

func TestVehicle_SettersReplaceInitial(t *testing.T) {
	v, err := level.NewVehicle(config(1.5, 0.75, 2))
	require.NoError(t, err)

	before := v.InitialAttitude()
	require.NoError(t, v.SetPitch(-4))
	require.NoError(t, v.SetBank(0.5))

	assert.True(t, before.Equal(level.NoRamps(0, 0)), "earlier snapshot must not change")
	assert.Equal(t, -4.0, v.Pitch())
	assert.Equal(t, 0.5, v.Bank())
	assert.Equal(t, level.Ramps{}, v.InitialAttitude().Ramps)
	assert.Equal(t, level.NoRamps(-4, 0.5).Total, v.InitialAttitude().Total)

	require.NoError(t, v.SetAttitude(1, 2))
	assert.True(t, v.InitialAttitude().Equal(level.NoRamps(1, 2)))
}

func TestVehicle_RejectsNonFiniteAngles(t *testing.T) {
	v, err := level.NewVehicle(config(1.5, 0.75, 2))
	require.NoError(t, err)
	require.NoError(t, v.SetAttitude(1, 1))

	assert.ErrorIs(t, v.SetPitch(nan()), level.ErrInvalidAngle)
	assert.ErrorIs(t, v.SetBank(inf()), level.ErrInvalidAngle)
	assert.ErrorIs(t, v.SetAttitude(0, nan()), level.ErrInvalidAngle)
	assert.True(t, v.InitialAttitude().Equal(level.NoRamps(1, 1)))
}

func TestVehicle_PlanMatchesFreeFunctions(t *testing.T) {
	cfg := config(1.5, 0.75, 2)
	v, err := level.NewVehicle(cfg)
	require.NoError(t, err)
	require.NoError(t, v.SetAttitude(-4, 0))

	plan := v.Plan()
	assert.True(t, plan.Initial.Equal(level.NoRamps(-4, 0)))
	assert.True(t, plan.Best.Equal(level.BestAttitude(level.NoRamps(-4, 0), cfg)))
	assert.True(t, v.BestAttitude().Equal(plan.Best))
	assert.Equal(t, 0.75, v.Correction())
	assert.Positive(t, plan.Steps)
	assert.GreaterOrEqual(t, plan.Evaluated, plan.Steps)
}

func TestVehicle_ConcurrentPlans(t *testing.T) {
	v, err := level.NewVehicle(config(0.8, 1.5, 2))
	require.NoError(t, err)
	require.NoError(t, v.SetAttitude(1.2, -0.6))
	want := v.BestAttitude()

	var wg sync.WaitGroup
	results := make([]level.Attitude, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = v.BestAttitude()
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.True(t, got.Equal(want))
	}
}

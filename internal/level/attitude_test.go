package level_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rvtools/leveler/internal/level"
)

func TestNewAttitude_Total(t *testing.T) {
	a := level.NewAttitude(level.Ramps{}, 3, -4)
	assert.Equal(t, 5.0, a.Total)

	zero := level.NoRamps(0, 0)
	assert.Zero(t, zero.Total)

	onlyBank := level.NoRamps(0, -2)
	assert.Equal(t, 2.0, onlyBank.Total)
	assert.Greater(t, level.NoRamps(1e-12, 0).Total, 0.0)
}

func TestAttitude_Equal(t *testing.T) {
	a := level.NewAttitude(level.Ramps{0.5, 0, 0, 0}, 1, 2)

	assert.True(t, a.Equal(level.NewAttitude(level.Ramps{0.5, 0, 0, 0}, 1, 2)))
	assert.False(t, a.Equal(level.NewAttitude(level.Ramps{0, 0.5, 0, 0}, 1, 2)))
	assert.False(t, a.Equal(level.NewAttitude(level.Ramps{0.5, 0, 0, 0}, 2, 1)), "same total, different angles")
}

func TestAttitude_Less(t *testing.T) {
	small := level.NoRamps(1, 0)
	large := level.NoRamps(0, -2)

	assert.True(t, small.Less(large))
	assert.False(t, large.Less(small))
	assert.False(t, small.Less(level.NoRamps(0, 1)), "equal totals are not less")
}

func TestRamps_UsedAndRange(t *testing.T) {
	r := level.Ramps{0, 0.25, 1, 0}
	assert.Equal(t, 2, r.Used())
	assert.True(t, r.InRange())

	assert.False(t, level.Ramps{-0.1, 0, 0, 0}.InRange())
	assert.False(t, level.Ramps{0, 0, 0, 1.0001}.InRange())
	assert.Equal(t, 0, level.Ramps{math.Copysign(0, -1), 0, 0, 0}.Used())
}

func TestWheel_String(t *testing.T) {
	assert.Equal(t, "FL", level.FrontLeft.String())
	assert.Equal(t, "FR", level.FrontRight.String())
	assert.Equal(t, "RL", level.RearLeft.String())
	assert.Equal(t, "RR", level.RearRight.String())
	assert.Equal(t, "Wheel(7)", level.Wheel(7).String())
}

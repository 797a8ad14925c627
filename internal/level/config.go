package level

import "math"

const (
	DefaultRamps            = 2
	DefaultRounds           = 5
	DefaultInitialIncrement = 1.0
)

// Sensitivity is the pitch/bank change produced by one full ramp under the
// front-left wheel. The other wheels use the same magnitude with the signs
// given by their position.
type Sensitivity struct {
	PitchPerRamp float64 `json:"pitch_per_ramp"`
	BankPerRamp  float64 `json:"bank_per_ramp"`
}

// Config parameterises a search.
type Config struct {
	Sensitivity
	Ramps            int     `json:"ramps"`             // wheels that may carry a ramp at once
	Rounds           int     `json:"rounds"`            // 0 → DefaultRounds
	InitialIncrement float64 `json:"initial_increment"` // 0 → DefaultInitialIncrement
}

// DefaultConfig returns a config with two ramps and the standard step schedule.
func DefaultConfig() Config {
	return Config{
		Ramps:            DefaultRamps,
		Rounds:           DefaultRounds,
		InitialIncrement: DefaultInitialIncrement,
	}
}

// Validate checks the config without altering it.
func (c Config) Validate() error {
	if !finite(c.PitchPerRamp) || !finite(c.BankPerRamp) {
		return ErrInvalidSensitivity
	}
	if c.Ramps < 0 || c.Ramps > NumWheels {
		return ErrInvalidRampLimit
	}
	if c.Rounds < 0 {
		return ErrInvalidRounds
	}
	if !finite(c.InitialIncrement) || c.InitialIncrement < 0 {
		return ErrInvalidIncrement
	}
	return nil
}

// normalize fills unset step parameters with defaults.
func (c Config) normalize() Config {
	if c.Rounds <= 0 {
		c.Rounds = DefaultRounds
	}
	if c.InitialIncrement <= 0 || math.IsNaN(c.InitialIncrement) {
		c.InitialIncrement = DefaultInitialIncrement
	}
	return c
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

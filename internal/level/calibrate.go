package level

// Reading is one pitch/bank measurement taken with the vehicle at rest.
type Reading struct {
	Pitch float64 `json:"pitch"`
	Bank  float64 `json:"bank"`
}

// Calibrate derives the per-ramp sensitivity from a reading without ramps and
// a reading with the front-left wheel on top of a full ramp.
func Calibrate(flat, withRamp Reading) (Sensitivity, error) {
	for _, x := range [...]float64{flat.Pitch, flat.Bank, withRamp.Pitch, withRamp.Bank} {
		if !finite(x) {
			return Sensitivity{}, ErrInvalidAngle
		}
	}
	s := Sensitivity{
		PitchPerRamp: withRamp.Pitch - flat.Pitch,
		BankPerRamp:  withRamp.Bank - flat.Bank,
	}
	if s.PitchPerRamp == 0 && s.BankPerRamp == 0 {
		return Sensitivity{}, ErrNoRampEffect
	}
	return s, nil
}

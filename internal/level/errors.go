package level

import "errors"

var (
	// ErrInvalidSensitivity indicates a NaN or infinite per-ramp effect.
	ErrInvalidSensitivity = errors.New("level: sensitivity must be a finite number")
	// ErrInvalidRampLimit indicates a ramp limit outside [0, NumWheels].
	ErrInvalidRampLimit = errors.New("level: ramp limit must be between 0 and 4")
	// ErrInvalidRounds indicates a negative refinement round count.
	ErrInvalidRounds = errors.New("level: rounds must be >= 0")
	// ErrInvalidIncrement indicates a negative, NaN or infinite initial step.
	ErrInvalidIncrement = errors.New("level: initial increment must be finite and >= 0")
	// ErrInvalidAngle indicates a NaN or infinite pitch/bank reading.
	ErrInvalidAngle = errors.New("level: angle must be a finite number")
	// ErrNoRampEffect indicates a calibration where the ramp changed nothing.
	ErrNoRampEffect = errors.New("level: ramp produced no change in pitch or bank")
)

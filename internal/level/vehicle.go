package level

import "sync"

// Vehicle pairs a search config with the vehicle's measured no-ramp tilt.
// Setting pitch or bank replaces the stored attitude; searches work on a
// snapshot and never see a change made while they run.
type Vehicle struct {
	mu      sync.RWMutex
	cfg     Config
	initial Attitude
}

// NewVehicle returns a level vehicle using cfg.
func NewVehicle(cfg Config) (*Vehicle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Vehicle{cfg: cfg, initial: NoRamps(0, 0)}, nil
}

// Config returns the vehicle's search config.
func (v *Vehicle) Config() Config {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cfg
}

// InitialAttitude returns the no-ramp attitude.
func (v *Vehicle) InitialAttitude() Attitude {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.initial
}

func (v *Vehicle) Pitch() float64 { return v.InitialAttitude().Pitch }
func (v *Vehicle) Bank() float64  { return v.InitialAttitude().Bank }

// SetPitch replaces the no-ramp attitude, keeping the current bank.
func (v *Vehicle) SetPitch(pitch float64) error {
	if !finite(pitch) {
		return ErrInvalidAngle
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.initial = NoRamps(pitch, v.initial.Bank)
	return nil
}

// SetBank replaces the no-ramp attitude, keeping the current pitch.
func (v *Vehicle) SetBank(bank float64) error {
	if !finite(bank) {
		return ErrInvalidAngle
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.initial = NoRamps(v.initial.Pitch, bank)
	return nil
}

// SetAttitude replaces pitch and bank together.
func (v *Vehicle) SetAttitude(pitch, bank float64) error {
	if !finite(pitch) || !finite(bank) {
		return ErrInvalidAngle
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.initial = NoRamps(pitch, bank)
	return nil
}

func (v *Vehicle) snapshot() (Attitude, Config) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.initial, v.cfg
}

// Plan searches from the current no-ramp attitude.
func (v *Vehicle) Plan() Plan {
	initial, cfg := v.snapshot()
	return Solve(initial, cfg)
}

// BestAttitude is the best reachable attitude for the current tilt.
func (v *Vehicle) BestAttitude() Attitude {
	return v.Plan().Best
}

// Correction is the share of the current tilt the ramps can remove.
func (v *Vehicle) Correction() float64 {
	return v.Plan().Correction
}

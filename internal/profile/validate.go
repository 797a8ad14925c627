package profile

import (
	"fmt"
	"math"
	"strings"

	"github.com/rvtools/leveler/internal/level"
)

// ValidateRaw checks semantic constraints of a merged RawProfile.
func ValidateRaw(cfg RawProfile) error {
	var errs []string

	// vehicle sensitivities
	pitch, bank := cfg.Vehicle.PitchPerRamp, cfg.Vehicle.BankPerRamp
	if pitch == nil {
		errs = append(errs, "vehicle.pitch_per_ramp is required")
	} else if !finite(*pitch) {
		errs = append(errs, "vehicle.pitch_per_ramp must be a finite number")
	}
	if bank == nil {
		errs = append(errs, "vehicle.bank_per_ramp is required")
	} else if !finite(*bank) {
		errs = append(errs, "vehicle.bank_per_ramp must be a finite number")
	}
	if pitch != nil && bank != nil && *pitch == 0 && *bank == 0 {
		errs = append(errs, "vehicle.pitch_per_ramp and vehicle.bank_per_ramp must not both be 0")
	}

	// vehicle.ramps
	if r := cfg.Vehicle.Ramps; r != nil && (*r < 0 || *r > level.NumWheels) {
		errs = append(errs, fmt.Sprintf("vehicle.ramps must be in [0,%d]", level.NumWheels))
	}

	// search (optional)
	if cfg.Search != nil {
		if r := cfg.Search.Rounds; r != nil && (*r < 1 || *r > 12) {
			errs = append(errs, "search.rounds must be in [1,12]")
		}
		if inc := cfg.Search.InitialIncrement; inc != nil && !(*inc > 0 && *inc <= 1) {
			errs = append(errs, "search.initial_increment must be in (0,1]")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

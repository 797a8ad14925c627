package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rvtools/leveler/internal/level"
)

// FromSensitivity builds a profile for a freshly calibrated vehicle.
func FromSensitivity(name string, s level.Sensitivity, ramps int) RawProfile {
	pitch, bank := s.PitchPerRamp, s.BankPerRamp
	return RawProfile{
		Version: "1",
		Vehicle: VehicleConfig{
			Name:         name,
			PitchPerRamp: &pitch,
			BankPerRamp:  &bank,
			Ramps:        &ramps,
		},
	}
}

// Save writes p as YAML, creating the parent directory if needed.
func Save(path string, p RawProfile) error {
	if err := ValidateRaw(p); err != nil {
		return err
	}
	b, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

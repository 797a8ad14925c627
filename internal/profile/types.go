// types.go
package profile

// RawProfile is a vehicle profile as written in YAML. Pointer fields are nil
// when a file leaves them unset so that merging can tell "unset" from zero.
type RawProfile struct {
	Version string        `yaml:"version" json:"version"`
	Vehicle VehicleConfig `yaml:"vehicle" json:"vehicle"`
	Search  *SearchConfig `yaml:"search,omitempty" json:"search,omitempty"`
	Notes   string        `yaml:"notes,omitempty" json:"notes,omitempty"`
}

type VehicleConfig struct {
	Name         string   `yaml:"name,omitempty" json:"name,omitempty"`
	PitchPerRamp *float64 `yaml:"pitch_per_ramp" json:"pitch_per_ramp"`
	BankPerRamp  *float64 `yaml:"bank_per_ramp" json:"bank_per_ramp"`
	Ramps        *int     `yaml:"ramps,omitempty" json:"ramps,omitempty"` // ramps on hand
}

type SearchConfig struct {
	Rounds           *int     `yaml:"rounds,omitempty" json:"rounds,omitempty"`
	InitialIncrement *float64 `yaml:"initial_increment,omitempty" json:"initial_increment,omitempty"`
}

// Overrides carries per-request changes on top of a stored profile.
type Overrides struct {
	Ramps  *int
	Rounds *int
}

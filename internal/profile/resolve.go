// resolve.go
package profile

import "github.com/rvtools/leveler/internal/level"

// Resolver turns a profile name plus overrides into a search config.
type Resolver interface {
	// Returns merged RawProfile and the level.Config built from it
	Resolve(name string, o Overrides) (RawProfile, level.Config, error)
}

var _ Resolver = (*Loader)(nil)

// Resolve merges default → name → overrides, validates the result and
// converts it to a level.Config.
func (l *Loader) Resolve(name string, o Overrides) (RawProfile, level.Config, error) {
	raw, err := l.LoadMerged(name)
	if err != nil {
		return RawProfile{}, level.Config{}, err
	}
	raw = applyOverrides(raw, o)
	if err := ValidateRaw(raw); err != nil {
		return raw, level.Config{}, err
	}
	return raw, ToConfig(raw), nil
}

// ToConfig converts a validated profile into a level.Config; unset fields
// take the level defaults.
func ToConfig(raw RawProfile) level.Config {
	cfg := level.DefaultConfig()
	if raw.Vehicle.PitchPerRamp != nil {
		cfg.PitchPerRamp = *raw.Vehicle.PitchPerRamp
	}
	if raw.Vehicle.BankPerRamp != nil {
		cfg.BankPerRamp = *raw.Vehicle.BankPerRamp
	}
	if raw.Vehicle.Ramps != nil {
		cfg.Ramps = *raw.Vehicle.Ramps
	}
	if raw.Search != nil {
		if raw.Search.Rounds != nil {
			cfg.Rounds = *raw.Search.Rounds
		}
		if raw.Search.InitialIncrement != nil {
			cfg.InitialIncrement = *raw.Search.InitialIncrement
		}
	}
	return cfg
}

func applyOverrides(raw RawProfile, o Overrides) RawProfile {
	if o.Ramps != nil {
		raw.Vehicle.Ramps = o.Ramps
	}
	if o.Rounds != nil {
		s := SearchConfig{}
		if raw.Search != nil {
			s = *raw.Search
		}
		s.Rounds = o.Rounds
		raw.Search = &s
	}
	return raw
}

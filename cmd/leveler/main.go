// Command leveler asks for the vehicle's current tilt and prints where to put
// the ramps.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/rvtools/leveler/internal/level"
	"github.com/rvtools/leveler/internal/logging"
	"github.com/rvtools/leveler/internal/profile"
	"github.com/rvtools/leveler/internal/prompt"
	"github.com/rvtools/leveler/internal/report"
	"github.com/rvtools/leveler/internal/survey"
)

// Ramp effect used when no profile is given. Measure yours with --calibrate.
const (
	defaultPitchPerRamp = 0.8
	defaultBankPerRamp  = 1.5
)

type options struct {
	profileDir   string
	profile      string
	pitchPerRamp float64
	bankPerRamp  float64
	ramps        int
	calibrate    bool
	save         string
	survey       int
	verbose      bool
	logLevel     string
}

func main() {
	log := logging.Console("info")
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("leveler")
		os.Exit(1)
	}
}

func parseFlags(args []string, errOut io.Writer) (*pflag.FlagSet, options, error) {
	var o options
	fs := pflag.NewFlagSet("leveler", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&o.profileDir, "profile-dir", "profiles", "directory with vehicle profiles")
	fs.StringVarP(&o.profile, "profile", "p", "", "vehicle profile to load instead of the ramp flags")
	fs.Float64Var(&o.pitchPerRamp, "pitch-per-ramp", defaultPitchPerRamp, "pitch change from one ramp under the front-left wheel")
	fs.Float64Var(&o.bankPerRamp, "bank-per-ramp", defaultBankPerRamp, "bank change from one ramp under the front-left wheel")
	fs.IntVarP(&o.ramps, "ramps", "n", level.DefaultRamps, "number of ramps available")
	fs.BoolVar(&o.calibrate, "calibrate", false, "measure the effect of one ramp")
	fs.StringVar(&o.save, "save", "", "with --calibrate, save the result under this profile name")
	fs.IntVar(&o.survey, "survey", 0, "also solve this many random tilts and summarise coverage")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "also print the best placement with its search effort")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level")
	err := fs.Parse(args)
	return fs, o, err
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	fs, o, err := parseFlags(args, errOut)
	if err != nil {
		return err
	}
	log := logging.New(zerolog.ConsoleWriter{Out: errOut, NoColor: true}, o.logLevel)
	p := prompt.New(in, out)

	if o.calibrate {
		return calibrate(p, out, o, log)
	}

	cfg, name, err := searchConfig(fs, o)
	if err != nil {
		return err
	}
	log.Debug().Str("profile", name).Interface("config", cfg).Msg("search config")

	v, err := level.NewVehicle(cfg)
	if err != nil {
		return err
	}
	if err := p.Println("Enter the attitude of your RV without any ramps below your wheels"); err != nil {
		return err
	}
	pitch, err := p.Float("Pitch (+ is nose up): ")
	if err != nil {
		return err
	}
	bank, err := p.Float("Bank (+ is right side low): ")
	if err != nil {
		return err
	}
	if err := v.SetAttitude(pitch, bank); err != nil {
		return err
	}

	plan := v.Plan()
	log.Debug().Int("steps", plan.Steps).Int("evaluated", plan.Evaluated).Msg("search done")
	if err := report.Plan(out, plan); err != nil {
		return err
	}
	if o.verbose {
		if _, err := fmt.Fprintf(out, "\nBEST PLACEMENT\n%s\nSearch: %d moves, %d candidates\n",
			report.Attitude(plan.Best), plan.Steps, plan.Evaluated); err != nil {
			return err
		}
	}

	if o.survey > 0 {
		res, err := survey.Run(survey.Params{
			Config:   cfg,
			MaxPitch: max(abs(pitch), 1),
			MaxBank:  max(abs(bank), 1),
			Trials:   o.survey,
		}, survey.NewSeededRNG(1))
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		return report.Survey(out, res)
	}
	return nil
}

// searchConfig uses the named profile when one is given, else the ramp
// flags. An explicit --ramps wins over the profile.
func searchConfig(fs *pflag.FlagSet, o options) (level.Config, string, error) {
	if o.profile != "" {
		var ov profile.Overrides
		if fs.Changed("ramps") {
			ov.Ramps = &o.ramps
		}
		_, cfg, err := profile.NewLoader(o.profileDir).Resolve(o.profile, ov)
		if err != nil {
			return level.Config{}, "", fmt.Errorf("profile %s: %w", o.profile, err)
		}
		return cfg, o.profile, nil
	}
	cfg := level.DefaultConfig()
	cfg.PitchPerRamp = o.pitchPerRamp
	cfg.BankPerRamp = o.bankPerRamp
	cfg.Ramps = o.ramps
	return cfg, "flags", nil
}

func calibrate(p *prompt.Prompter, out io.Writer, o options, log zerolog.Logger) error {
	read := func(intro string) (level.Reading, error) {
		if err := p.Println(intro); err != nil {
			return level.Reading{}, err
		}
		pitch, err := p.Float("Pitch (+ is nose up): ")
		if err != nil {
			return level.Reading{}, err
		}
		bank, err := p.Float("Bank (+ is right side low): ")
		if err != nil {
			return level.Reading{}, err
		}
		return level.Reading{Pitch: pitch, Bank: bank}, nil
	}

	flat, err := read("Enter the attitude of your RV without any ramps below your wheels")
	if err != nil {
		return err
	}
	ramped, err := read("Place your RV's left front wheel at the highest position of your ramp")
	if err != nil {
		return err
	}
	s, err := level.Calibrate(flat, ramped)
	if err != nil {
		return err
	}
	if err := report.Sensitivity(out, s); err != nil {
		return err
	}

	if o.save == "" {
		return nil
	}
	loader := profile.NewLoader(o.profileDir)
	path := loader.Paths().ProfilePath(o.save)
	if err := profile.Save(path, profile.FromSensitivity(o.save, s, o.ramps)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	log.Info().Str("file", path).Msg("profile saved")
	_, err = fmt.Fprintf(out, "Saved profile %q\n", o.save)
	return err
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rvtools/leveler/internal/config"
	"github.com/rvtools/leveler/internal/logging"
	"github.com/rvtools/leveler/internal/metrics"
	"github.com/rvtools/leveler/internal/profile"
)

func main() {
	configDir := pflag.String("config-dir", ".", "directory containing leveler.yaml")
	pflag.Parse()

	cfgErr := config.Load(*configDir)
	log := logging.New(os.Stdout, config.GetString("logLevel"))

	var notFound viper.ConfigFileNotFoundError
	switch {
	case cfgErr == nil:
		log.Info().Str("file", config.ConfigFile()).Msg("config loaded")
	case errors.As(cfgErr, &notFound):
		log.Warn().Str("dir", *configDir).Msg("no config file, using defaults")
	default:
		log.Fatal().Err(cfgErr).Msg("config")
	}

	loader := profile.NewLoader(config.GetString("profilesDir"))
	watcher := watchProfiles(loader, config.GetDuration("watchInterval"), log)
	defer watcher.Stop()

	s := &server{
		profiles:       loader,
		names:          loader.Names,
		metrics:        newRecorder(),
		log:            log,
		defaultProfile: config.GetString("defaultProfile"),
		survey: surveyDefaults{
			surveyParams: surveyParams{
				Trials:    config.GetInt("survey.trials"),
				MaxPitch:  config.GetFloat64("survey.maxPitch"),
				MaxBank:   config.GetFloat64("survey.maxBank"),
				Tolerance: config.GetFloat64("survey.tolerance"),
				Seed:      uint64(config.GetInt("survey.seed")),
			},
			MaxTrials: config.GetInt("survey.maxTrials"),
		},
		accessLog: config.GetBool("accessLog"),
	}

	addr := config.GetString("listen")
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("addr", addr).Str("profiles", loader.Paths().BaseDir).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
}

// newRecorder adds Go runtime and process metrics to the search metrics.
func newRecorder() *metrics.Recorder {
	rec := metrics.NewRecorder()
	rec.Registry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return rec
}

// watchProfiles drops cached profiles whenever a profile file is added,
// changed or removed. The directory is listed again on every tick.
func watchProfiles(loader *profile.Loader, interval time.Duration, log zerolog.Logger) *profile.FileWatcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	w := profile.NewListWatcher(loader.Files, interval, func(path string) {
		loader.Invalidate()
		log.Info().Str("file", path).Msg("profile changed, cache cleared")
	})
	w.Start()
	return w
}

package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/rvtools/leveler/internal/level"
	"github.com/rvtools/leveler/internal/metrics"
	"github.com/rvtools/leveler/internal/profile"
	"github.com/rvtools/leveler/internal/survey"
)

type levelResp struct {
	Profile string       `json:"profile"`
	Config  level.Config `json:"config"`
	Plan    level.Plan   `json:"plan"`
}

type surveyResp struct {
	Profile string        `json:"profile"`
	Params  surveyParams  `json:"params"`
	Result  survey.Result `json:"result"`
}

type surveyParams struct {
	Trials    int     `json:"trials"`
	MaxPitch  float64 `json:"max_pitch"`
	MaxBank   float64 `json:"max_bank"`
	Tolerance float64 `json:"tolerance"`
	Seed      uint64  `json:"seed"`
}

type errResp struct {
	Err string `json:"err"`
}

// surveyDefaults come from the service settings.
type surveyDefaults struct {
	surveyParams
	MaxTrials int
}

type server struct {
	profiles       profile.Resolver
	names          func() ([]string, error)
	metrics        *metrics.Recorder
	log            zerolog.Logger
	defaultProfile string
	survey         surveyDefaults
	accessLog      bool
}

func (s *server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/level", s.handleLevel).Methods(http.MethodGet)
	r.HandleFunc("/survey", s.handleSurvey).Methods(http.MethodGet)
	r.HandleFunc("/profiles", s.handleProfiles).Methods(http.MethodGet)
	r.HandleFunc("/profiles/{name}", s.handleProfile).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler())
	if s.accessLog {
		r.Use(s.logRequests)
	}
	return r
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// parseFloat reads an optional float query parameter; blank reads as absent.
func parseFloat(r *http.Request, key string) (float64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseInt(r *http.Request, key string) (int, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func (s *server) profileName(r *http.Request) string {
	if name := r.URL.Query().Get("profile"); name != "" {
		return name
	}
	return s.defaultProfile
}

func (s *server) resolve(w http.ResponseWriter, r *http.Request) (string, level.Config, bool) {
	var o profile.Overrides
	if ramps, ok, msg := parseInt(r, "ramps"); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return "", level.Config{}, false
	} else if ok {
		o.Ramps = &ramps
	}
	if rounds, ok, msg := parseInt(r, "rounds"); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return "", level.Config{}, false
	} else if ok {
		o.Rounds = &rounds
	}

	name := s.profileName(r)
	_, cfg, err := s.profiles.Resolve(name, o)
	if err != nil {
		s.writeProfileError(w, name, err)
		return "", level.Config{}, false
	}
	return name, cfg, true
}

// pitch and bank, blank meaning level
func (s *server) handleLevel(w http.ResponseWriter, r *http.Request) {
	pitch, _, msg := parseFloat(r, "pitch")
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	bank, _, msg := parseFloat(r, "bank")
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	name, cfg, ok := s.resolve(w, r)
	if !ok {
		return
	}

	v, err := level.NewVehicle(cfg)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := v.SetAttitude(pitch, bank); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	plan := v.Plan()
	s.metrics.ObservePlan(name, plan)
	writeJSON(w, http.StatusOK, levelResp{Profile: name, Config: cfg, Plan: plan})
}

func (s *server) handleSurvey(w http.ResponseWriter, r *http.Request) {
	p := s.survey.surveyParams
	if v, ok, msg := parseInt(r, "trials"); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	} else if ok {
		p.Trials = v
	}
	if p.Trials <= 0 || p.Trials > s.survey.MaxTrials {
		writeError(w, http.StatusBadRequest, "trials must be in [1,"+strconv.Itoa(s.survey.MaxTrials)+"]")
		return
	}
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"max_pitch", &p.MaxPitch},
		{"max_bank", &p.MaxBank},
		{"tolerance", &p.Tolerance},
	} {
		v, ok, msg := parseFloat(r, f.key)
		if msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		if ok {
			*f.dst = v
		}
	}
	if v, ok, msg := parseInt(r, "seed"); msg != "" || v < 0 {
		writeError(w, http.StatusBadRequest, "invalid seed")
		return
	} else if ok {
		p.Seed = uint64(v)
	}

	name, cfg, ok := s.resolve(w, r)
	if !ok {
		return
	}

	var rng survey.RandomSource
	if p.Seed != 0 {
		rng = survey.NewSeededRNG(p.Seed)
	}
	res, err := survey.Run(survey.Params{
		Config:    cfg,
		MaxPitch:  p.MaxPitch,
		MaxBank:   p.MaxBank,
		Tolerance: p.Tolerance,
		Trials:    p.Trials,
	}, rng)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p.Tolerance = res.Tolerance
	s.metrics.ObserveSurvey(name, res)
	writeJSON(w, http.StatusOK, surveyResp{Profile: name, Params: p, Result: res})
}

func (s *server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	names, err := s.names()
	if err != nil {
		s.log.Error().Err(err).Msg("list profiles")
		writeError(w, http.StatusInternalServerError, "cannot list profiles")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"profiles": names})
}

func (s *server) handleProfile(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	raw, _, err := s.profiles.Resolve(name, profile.Overrides{})
	if err != nil {
		s.writeProfileError(w, name, err)
		return
	}
	writeJSON(w, http.StatusOK, raw)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) writeProfileError(w http.ResponseWriter, name string, err error) {
	switch {
	case errors.Is(err, profile.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, profile.ErrInvalidName):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrInvalid):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.log.Error().Err(err).Str("profile", name).Msg("resolve profile")
		writeError(w, http.StatusInternalServerError, "cannot load profile")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errResp{Err: msg})
}

package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultName is the profile every other profile is layered on.
const DefaultName = "default"

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Paths maps profile names to files under a base directory.
type Paths struct {
	BaseDir string // e.g. /etc/leveler/profiles
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, DefaultName+".yaml")
}
func (p Paths) ProfilePath(name string) string {
	return filepath.Join(p.BaseDir, name+".yaml")
}

// Loader reads YAML profiles and merges default → named profile.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawProfile // key: profile name
	gen   uint64                // bumped by Invalidate
}

// NewLoader creates a profile loader rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawProfile),
	}
}

// Paths returns the loader's path helper.
func (l *Loader) Paths() Paths { return l.paths }

// LoadMerged loads default.yaml and, unless name is empty or "default", the
// named profile on top of it. A missing default file is treated as empty; a
// missing named profile is ErrNotFound.
func (l *Loader) LoadMerged(name string) (RawProfile, error) {
	if name == "" {
		name = DefaultName
	}
	if !validName.MatchString(name) {
		return RawProfile{}, ErrInvalidName
	}

	l.mu.RLock()
	if cfg, ok := l.cache[name]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	gen := l.gen
	l.mu.RUnlock()

	defCfg, _, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawProfile{}, fmt.Errorf("read default: %w", err)
	}
	merged := defCfg
	if name != DefaultName {
		cfg, found, err := readYAML(l.paths.ProfilePath(name))
		if err != nil {
			return RawProfile{}, fmt.Errorf("read %s: %w", name, err)
		}
		if !found {
			return RawProfile{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		merged = mergeRaw(defCfg, cfg)
	}

	l.store(gen, name, merged, defCfg)
	return merged, nil
}

// store caches a merged profile unless the cache was invalidated after the
// files were read, in which case the result may already be stale.
func (l *Loader) store(gen uint64, name string, merged, def RawProfile) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen != gen {
		return false
	}
	l.cache[name] = merged
	l.cache[DefaultName] = def
	return true
}

// Names lists the profiles present in the base directory, sorted.
func (l *Loader) Names() ([]string, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(filepath.Base(f), ".yaml"))
	}
	return names, nil
}

// Files lists the profile files in the base directory, sorted.
func (l *Loader) Files() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(l.paths.BaseDir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	out := files[:0]
	for _, f := range files {
		if validName.MatchString(strings.TrimSuffix(filepath.Base(f), ".yaml")) {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Invalidate clears the loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawProfile)
	l.gen++
}

// readYAML loads a YAML file. Missing files return a zero profile, found=false.
func readYAML(path string) (cfg RawProfile, found bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawProfile{}, false, nil
		}
		return RawProfile{}, false, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawProfile{}, true, err
	}
	return cfg, true, nil
}

// mergeRaw layers b over a: any field b sets wins.
func mergeRaw(a, b RawProfile) RawProfile {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// vehicle
	if b.Vehicle.Name != "" {
		out.Vehicle.Name = b.Vehicle.Name
	}
	if b.Vehicle.PitchPerRamp != nil {
		out.Vehicle.PitchPerRamp = b.Vehicle.PitchPerRamp
	}
	if b.Vehicle.BankPerRamp != nil {
		out.Vehicle.BankPerRamp = b.Vehicle.BankPerRamp
	}
	if b.Vehicle.Ramps != nil {
		out.Vehicle.Ramps = b.Vehicle.Ramps
	}

	// search
	switch {
	case out.Search == nil && b.Search != nil:
		c := *b.Search
		out.Search = &c
	case out.Search != nil && b.Search != nil:
		c := *out.Search
		if b.Search.Rounds != nil {
			c.Rounds = b.Search.Rounds
		}
		if b.Search.InitialIncrement != nil {
			c.InitialIncrement = b.Search.InitialIncrement
		}
		out.Search = &c
	}

	return out
}

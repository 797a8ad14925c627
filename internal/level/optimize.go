package level

import "math"

// roundScale fixes ramp fractions to 1e-9 so that decimal steps which should
// cancel (0.3 - 0.1 - 0.1 - 0.1) land on an exact zero.
const roundScale = 1e9

func stabilize(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Plan is the outcome of one search.
type Plan struct {
	Initial    Attitude `json:"initial"`
	Best       Attitude `json:"best"`
	Correction float64  `json:"correction"`
	Steps      int      `json:"steps"`     // accepted moves
	Evaluated  int      `json:"evaluated"` // feasible candidates built
}

// searcher carries the per-call state of one search. It is never shared.
type searcher struct {
	cfg       Config
	basePitch float64
	baseBank  float64
	steps     int
	evaluated int
}

func newSearcher(initial Attitude, cfg Config) *searcher {
	// Back out whatever the starting ramps contribute, leaving the
	// vehicle's own tilt.
	return &searcher{
		cfg:       cfg,
		basePitch: initial.Pitch - cfg.PitchPerRamp*initial.Ramps.pitchFactor(),
		baseBank:  initial.Bank - cfg.BankPerRamp*initial.Ramps.bankFactor(),
	}
}

func (s *searcher) attitude(r Ramps) Attitude {
	return NewAttitude(r,
		s.basePitch+s.cfg.PitchPerRamp*r.pitchFactor(),
		s.baseBank+s.cfg.BankPerRamp*r.bankFactor(),
	)
}

// neighbors returns every feasible attitude one step of size inc away from a,
// in wheel order, increase before decrease, without duplicates.
func (s *searcher) neighbors(a Attitude, inc float64) []Attitude {
	out := make([]Attitude, 0, 2*NumWheels)
	for w := range NumWheels {
		for _, sign := range [...]float64{1, -1} {
			r := a.Ramps
			r[w] = stabilize(r[w] + sign*inc)

			r.cancelDiagonal(FrontLeft, RearRight)
			r.cancelDiagonal(FrontRight, RearLeft)

			if r.Used() > s.cfg.Ramps || !r.InRange() {
				continue
			}

			cand := s.attitude(r)
			s.evaluated++
			if containsAttitude(out, cand) {
				continue
			}
			out = append(out, cand)
		}
	}
	return out
}

// bestNeighbor picks the smallest total among the neighbors of a. The first
// one seen wins a tie. ok is false when no neighbor is feasible.
func (s *searcher) bestNeighbor(a Attitude, inc float64) (best Attitude, ok bool) {
	for i, cand := range s.neighbors(a, inc) {
		if i == 0 || cand.Less(best) {
			best = cand
		}
		ok = true
	}
	return best, ok
}

func (s *searcher) run(initial Attitude) Attitude {
	current := initial
	for round := range s.cfg.Rounds {
		inc := s.cfg.InitialIncrement / math.Pow10(round)
		for {
			next, ok := s.bestNeighbor(current, inc)
			if !ok || !next.Less(current) {
				break
			}
			current = next
			s.steps++
		}
	}
	return current
}

func containsAttitude(xs []Attitude, a Attitude) bool {
	for _, x := range xs {
		if x.Equal(a) {
			return true
		}
	}
	return false
}

// BestAttitude walks from initial toward the smallest combined tilt reachable
// with cfg's ramps. Each round greedily moves one wheel at a time by the
// round's step, then the step shrinks by a factor of ten. The result is never
// worse than initial.
func BestAttitude(initial Attitude, cfg Config) Attitude {
	return Solve(initial, cfg).Best
}

// Solve runs BestAttitude and reports the correction and search effort.
func Solve(initial Attitude, cfg Config) Plan {
	s := newSearcher(initial, cfg.normalize())
	best := s.run(initial)
	return Plan{
		Initial:    initial,
		Best:       best,
		Correction: Correction(initial, best),
		Steps:      s.steps,
		Evaluated:  s.evaluated,
	}
}

// Correction is the fraction of the initial tilt removed by best. A vehicle
// that is already level counts as fully corrected.
func Correction(initial, best Attitude) float64 {
	if initial.Total == 0 {
		return 1.0
	}
	return 1 - best.Total/initial.Total
}

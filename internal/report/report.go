// Package report renders search results as plain text for a terminal.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rvtools/leveler/internal/level"
	"github.com/rvtools/leveler/internal/survey"
)

// percent renders a fraction as a whole percentage.
func percent(x float64) int {
	return int(math.Round(x * 100))
}

// Ramps renders the ramp grid as seen from above, front first.
func Ramps(r level.Ramps) string {
	return fmt.Sprintf("Front:   %3d%% | %3d%%\nRear:    %3d%% | %3d%%\n",
		percent(r[level.FrontLeft]), percent(r[level.FrontRight]),
		percent(r[level.RearLeft]), percent(r[level.RearRight]))
}

// Attitude renders a single attitude.
func Attitude(a level.Attitude) string {
	var b strings.Builder
	b.WriteString("Ramps:\n")
	b.WriteString(Ramps(a.Ramps))
	fmt.Fprintf(&b, "\nAttitude:\n  Pitch: %+.1f°\n  Bank:  %+.1f°\n", a.Pitch, a.Bank)
	return b.String()
}

// Plan writes the before/after comparison for a search.
func Plan(w io.Writer, p level.Plan) error {
	_, err := fmt.Fprintf(w, "RAMPS:\n%s\n"+
		"ATTITUDE:\n"+
		"       BEFORE | AFTER\n"+
		"Pitch:  %+.1f° | %+.1f°\n"+
		"Bank:   %+.1f° | %+.1f°\n"+
		"Total:  %+.1f° | %+.1f°\n\n"+
		"CORRECTION:      %3d%%\n",
		Ramps(p.Best.Ramps),
		p.Initial.Pitch, p.Best.Pitch,
		p.Initial.Bank, p.Best.Bank,
		p.Initial.Total, p.Best.Total,
		percent(p.Correction),
	)
	return err
}

// Sensitivity writes a calibration result.
func Sensitivity(w io.Writer, s level.Sensitivity) error {
	_, err := fmt.Fprintf(w, "RAMP EFFECT (front left):\nPitch:  %+.2f°\nBank:   %+.2f°\n",
		s.PitchPerRamp, s.BankPerRamp)
	return err
}

// Survey writes a coverage summary.
func Survey(w io.Writer, r survey.Result) error {
	_, err := fmt.Fprintf(w, "SURVEY (%d tilts):\n"+
		"Correction  mean %3d%%  p50 %3d%%  p90 %3d%%\n"+
		"Residual    mean %.2f°  p90 %.2f°  max %.2f°\n"+
		"Level enough: %3d%%\n",
		r.Trials,
		percent(r.Correction.Mean), percent(r.Correction.P50), percent(r.Correction.P90),
		r.Residual.Mean, r.Residual.P90, r.Residual.Max,
		percent(r.WithinTolerance),
	)
	return err
}

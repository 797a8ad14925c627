package level_test

import (
	"fmt"

	"github.com/rvtools/leveler/internal/level"
)

func ExampleBestAttitude() {
	cfg := level.DefaultConfig()
	cfg.PitchPerRamp = 1.5
	cfg.BankPerRamp = 0.75

	initial := level.NoRamps(-4, 0)
	best := level.BestAttitude(initial, cfg)

	fmt.Println("ramps:", best.Ramps)
	fmt.Printf("pitch %+.1f bank %+.1f\n", best.Pitch, best.Bank)
	fmt.Printf("correction %.0f%%\n", 100*level.Correction(initial, best))
	// Output:
	// ramps: [1 1 0 0]
	// pitch -1.0 bank +0.0
	// correction 75%
}

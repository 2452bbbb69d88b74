package evergreen

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and instance counts.
// Only reported when debug is enabled.
type frameStats struct {
	evalTime   time.Duration
	submitTime time.Duration
	instances  int
	wishes     int
	progress   float64
}

// debugLog prints frame stats to stderr.
func (e *Engine) debugLog(stats frameStats) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[evergreen] eval: %v | submit: %v | total: %v\n",
		stats.evalTime, stats.submitTime, stats.evalTime+stats.submitTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[evergreen] instances: %d | wishes: %d/%d | progress: %.4f\n",
		stats.instances, stats.wishes, e.pool.Capacity(), stats.progress)
}

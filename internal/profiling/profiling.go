package profiling

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Lightweight per-run stage timer for pipeline insights.

var (
	mu        sync.Mutex
	runTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the
// given name. Usage: defer profiling.Track("island.Elevation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		runTotals[name] += d
		mu.Unlock()
	}
}

// Reset clears accumulated totals. Call before starting a new run.
func Reset() {
	mu.Lock()
	for k := range runTotals {
		delete(runTotals, k)
	}
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(runTotals))
	for k, v := range runTotals {
		out[k] = v
	}
	return out
}

// Report logs every tracked stage, slowest first.
func Report(log *slog.Logger) {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	for _, p := range list {
		log.Debug("stage timing", "stage", p.name, "took", p.dur)
	}
}

// internal/poller/types.go
package poller

import "time"

// Record is the snapshot published after one poll cycle.
// A fresh Record is built every cycle; the previous one is retained
// only as a fallback value source, never merged.
type Record struct {
	Name string
	At   time.Time

	// Values holds every decoded field plus derived values, keyed by
	// logical name. After the first successful poll, every mapped
	// field is present in every Record (live or last-known).
	Values map[string]float64

	// Online is false when this cycle failed and Values carry the
	// last-known reading.
	Online bool

	// Available drops after OfflineAfter consecutive failures.
	Available bool

	// Err is the transport error that failed this cycle, if any.
	Err error

	// Took is the wall time this cycle spent on reads and decode,
	// measured inside the cycle so consumer backlog never skews it.
	Took time.Duration
}

// clone copies a value map so the fallback record cannot alias live state.
func clone(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

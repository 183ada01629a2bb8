// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run starts the ticker loop and emits a Record on the provided channel
// after every cycle. One goroutine per inverter. No overlap, no retries.
func (p *Poller) Run(ctx context.Context, out chan<- Record) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	// First cycle immediately so state is published at startup.
	out <- p.PollOnce()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out <- p.PollOnce()
		}
	}
}

// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mbadberg/growatt-bridge/internal/decode"
	"github.com/mbadberg/growatt-bridge/internal/derive"
	"github.com/mbadberg/growatt-bridge/internal/registry"
)

// Client abstracts the register reads the poller needs.
type Client interface {
	ReadInputRegisters(addr, qty uint16) ([]uint16, error) // FC 4
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Name         string
	Profile      *registry.Profile
	Interval     time.Duration
	OfflineAfter int
	InvertGrid   bool
}

// Poller is a clock-driven reader with a last-known-good latch.
// Not safe for concurrent use; one goroutine per inverter.
type Poller struct {
	cfg    Config
	client Client
	now    func() time.Time

	last     *Record
	failures int
	lastDay  int
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if cfg.Name == "" {
		return nil, errors.New("poller: inverter name required")
	}
	if cfg.Profile == nil {
		return nil, errors.New("poller: profile required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.OfflineAfter <= 0 {
		cfg.OfflineAfter = 1
	}
	return &Poller{cfg: cfg, client: client, now: time.Now}, nil
}

// PollOnce performs exactly one poll cycle: read every block the
// profile needs, decode all mapped fields, compute derived values.
// A transport failure aborts the cycle and falls back to the last
// successful record with Online=false; a decode fault only drops that
// field. One attempt per call, no retries.
func (p *Poller) PollOnce() Record {
	at := p.now()

	cache := make(decode.Cache)
	for _, b := range p.cfg.Profile.ReadBlocks() {
		words, err := p.client.ReadInputRegisters(b.Address, b.Quantity)
		if err != nil {
			return p.fail(at, err)
		}
		cache.Load(b.Address, words)
	}

	values := make(map[string]float64, len(p.cfg.Profile.Input))
	for _, e := range p.cfg.Profile.Input {
		v, err := cache.Field(e)
		if err != nil {
			// Field unavailable this cycle; keep the last-known value
			// so the published record stays complete.
			log.WithFields(log.Fields{"inverter": p.cfg.Name, "field": e.Name}).
				WithError(err).Debug("field decode fault")
			if p.last != nil {
				if prev, ok := p.last.Values[e.Name]; ok {
					values[e.Name] = prev
				}
			}
			continue
		}
		values[e.Name] = v
	}

	derive.Compute(values, p.cfg.InvertGrid)

	rec := Record{
		Name:      p.cfg.Name,
		At:        at,
		Values:    values,
		Online:    true,
		Available: true,
		Took:      p.now().Sub(at),
	}

	p.last = &rec
	p.failures = 0
	p.lastDay = at.YearDay()
	return rec
}

// fail keeps the last published values and flips the connectivity
// flag. Daily totals are zeroed if the date rolled over while the
// device was unreachable (night-time shutdown crossing midnight).
// Already-published value maps are never written to: the zeroing
// lands on a fresh clone and a fresh fallback snapshot.
func (p *Poller) fail(at time.Time, err error) Record {
	p.failures++

	rec := Record{
		Name:      p.cfg.Name,
		At:        at,
		Online:    false,
		Available: p.failures < p.cfg.OfflineAfter,
		Err:       err,
		Took:      p.now().Sub(at),
	}

	if p.last == nil {
		rec.Values = map[string]float64{}
		return rec
	}

	vals := clone(p.last.Values)
	if at.YearDay() != p.lastDay {
		for _, e := range p.cfg.Profile.Input {
			if e.Kind == registry.KindEnergyDaily {
				vals[e.Name] = 0
			}
		}
		p.lastDay = at.YearDay()
		p.last = &Record{Name: p.last.Name, At: p.last.At, Values: clone(vals)}
	}

	rec.Values = vals
	return rec
}

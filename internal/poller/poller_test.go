// internal/poller/poller_test.go
package poller

import (
	"errors"
	"testing"
	"time"

	"github.com/mbadberg/growatt-bridge/internal/registry"
)

type fakeClient struct {
	regs map[uint16]uint16
	fail bool
}

func (f *fakeClient) ReadInputRegisters(addr, qty uint16) ([]uint16, error) {
	if f.fail {
		return nil, errors.New("read timeout")
	}
	out := make([]uint16, qty)
	for i := range out {
		out[i] = f.regs[addr+uint16(i)]
	}
	return out, nil
}

func testProfile() *registry.Profile {
	return &registry.Profile{
		Series: "test",
		Name:   "Test 5000",
		Phases: 1,
		Input: []registry.Entry{
			{Name: "pv_total_power", Address: 1, Words: 2, Scale: 0.1, Unit: "W", Kind: registry.KindPower},
			{Name: "ac_power", Address: 3, Words: 2, Scale: 0.1, Unit: "W", Kind: registry.KindPower},
			{Name: "energy_today", Address: 5, Words: 2, Scale: 0.1, Unit: "kWh", Kind: registry.KindEnergyDaily},
			{Name: "energy_total", Address: 7, Words: 2, Scale: 0.1, Unit: "kWh", Kind: registry.KindEnergyTotal},
		},
	}
}

func newTestPoller(t *testing.T, fc *fakeClient) *Poller {
	t.Helper()
	p, err := New(Config{
		Name:         "garage",
		Profile:      testProfile(),
		Interval:     time.Second,
		OfflineAfter: 3,
	}, fc)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	return p
}

func TestPollOnce_Success(t *testing.T) {
	fc := &fakeClient{regs: map[uint16]uint16{
		2: 42000, // pv_total_power low word
		4: 41500, // ac_power low word
		6: 123,   // energy_today
		8: 4567,  // energy_total
	}}
	p := newTestPoller(t, fc)

	rec := p.PollOnce()
	if rec.Err != nil {
		t.Fatalf("PollOnce err=%v", rec.Err)
	}
	if !rec.Online || !rec.Available {
		t.Fatalf("expected online+available, got online=%v available=%v", rec.Online, rec.Available)
	}
	if got := rec.Values["pv_total_power"]; got != 4200 {
		t.Fatalf("pv_total_power=%v, want 4200", got)
	}
	if got := rec.Values["energy_today"]; got != 12.3 {
		t.Fatalf("energy_today=%v, want 12.3", got)
	}
	if _, ok := rec.Values["grid_power"]; !ok {
		t.Fatalf("derived grid_power missing")
	}
}

func TestPollOnce_FailureRetainsLastValues(t *testing.T) {
	fc := &fakeClient{regs: map[uint16]uint16{2: 42000, 4: 41500, 6: 123, 8: 4567}}
	p := newTestPoller(t, fc)
	p.PollOnce()

	fc.fail = true
	rec := p.PollOnce()

	if rec.Err == nil {
		t.Fatalf("expected error")
	}
	if rec.Online {
		t.Fatalf("expected offline record")
	}
	if !rec.Available {
		t.Fatalf("single failure must not drop availability")
	}
	if got := rec.Values["pv_total_power"]; got != 4200 {
		t.Fatalf("last-known pv_total_power=%v, want 4200", got)
	}
}

func TestPollOnce_AvailableDropsAfterThreshold(t *testing.T) {
	fc := &fakeClient{regs: map[uint16]uint16{2: 42000}}
	p := newTestPoller(t, fc)
	p.PollOnce()

	fc.fail = true
	p.PollOnce()
	p.PollOnce()
	rec := p.PollOnce() // third consecutive failure

	if rec.Available {
		t.Fatalf("expected unavailable after 3 consecutive failures")
	}
}

func TestPollOnce_RecoveryResetsFailureCount(t *testing.T) {
	fc := &fakeClient{regs: map[uint16]uint16{2: 42000}}
	p := newTestPoller(t, fc)

	fc.fail = true
	p.PollOnce()
	p.PollOnce()

	fc.fail = false
	rec := p.PollOnce()
	if !rec.Online || !rec.Available {
		t.Fatalf("recovered poll must be online and available")
	}

	fc.fail = true
	rec = p.PollOnce()
	if !rec.Available {
		t.Fatalf("failure count must reset after a successful poll")
	}
}

func TestPollOnce_RolloverLeavesPublishedRecordUntouched(t *testing.T) {
	fc := &fakeClient{regs: map[uint16]uint16{2: 42000, 6: 123, 8: 4567}}
	p := newTestPoller(t, fc)

	day1 := time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return day1 }
	published := p.PollOnce()

	fc.fail = true
	p.now = func() time.Time { return day1.Add(12 * time.Hour) }
	rec := p.PollOnce()

	if got := published.Values["energy_today"]; got != 12.3 {
		t.Fatalf("earlier record mutated: energy_today=%v, want 12.3", got)
	}
	if got := rec.Values["energy_today"]; got != 0 {
		t.Fatalf("rollover record energy_today=%v, want 0", got)
	}

	// Zeroing must stick across further offline cycles the same day.
	next := p.PollOnce()
	if got := next.Values["energy_today"]; got != 0 {
		t.Fatalf("later offline record energy_today=%v, want 0", got)
	}
}

func TestPollOnce_StampsCycleDuration(t *testing.T) {
	fc := &fakeClient{regs: map[uint16]uint16{2: 42000}}
	p := newTestPoller(t, fc)

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	p.now = func() time.Time {
		calls++
		if calls == 1 {
			return base
		}
		return base.Add(50 * time.Millisecond)
	}

	rec := p.PollOnce()
	if rec.Took != 50*time.Millisecond {
		t.Fatalf("Took=%v, want 50ms", rec.Took)
	}
}

func TestPollOnce_DailyEnergyZeroedOnRollover(t *testing.T) {
	fc := &fakeClient{regs: map[uint16]uint16{2: 42000, 6: 123, 8: 4567}}
	p := newTestPoller(t, fc)

	day1 := time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return day1 }
	p.PollOnce()

	fc.fail = true
	p.now = func() time.Time { return day1.Add(12 * time.Hour) }
	rec := p.PollOnce()

	if got := rec.Values["energy_today"]; got != 0 {
		t.Fatalf("energy_today=%v after date rollover, want 0", got)
	}
	if got := rec.Values["energy_total"]; got != 456.7 {
		t.Fatalf("energy_total=%v, want 456.7 (lifetime totals are kept)", got)
	}
}

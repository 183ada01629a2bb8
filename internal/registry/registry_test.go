// internal/registry/registry_test.go
package registry

import "testing"

func TestLookupKnownSeries(t *testing.T) {
	for _, series := range Series() {
		p, err := Lookup(series)
		if err != nil {
			t.Fatalf("Lookup(%s) err=%v", series, err)
		}
		if len(p.Input) == 0 {
			t.Fatalf("%s: empty register map", series)
		}
		if len(p.Settings) == 0 {
			t.Fatalf("%s: no writable settings", series)
		}
	}
}

func TestLookupUnknownSeries(t *testing.T) {
	if _, err := Lookup("spf_5000"); err == nil {
		t.Fatalf("expected error for unknown series")
	}
}

func TestFieldNamesUnique(t *testing.T) {
	for _, series := range Series() {
		p, _ := Lookup(series)
		seen := make(map[string]struct{})
		for _, e := range p.Input {
			if _, dup := seen[e.Name]; dup {
				t.Errorf("%s: duplicate field %s", series, e.Name)
			}
			seen[e.Name] = struct{}{}
		}
	}
}

func TestEntrySanity(t *testing.T) {
	for _, series := range Series() {
		p, _ := Lookup(series)
		for _, e := range p.Input {
			if e.Words != 1 && e.Words != 2 {
				t.Errorf("%s/%s: words=%d", series, e.Name, e.Words)
			}
			if e.Scale == 0 && e.Kind != KindStatus {
				t.Errorf("%s/%s: zero scale", series, e.Name)
			}
		}
		for _, s := range p.Settings {
			if s.Min > s.Max {
				t.Errorf("%s/%s: min %d > max %d", series, s.Name, s.Min, s.Max)
			}
		}
	}
}

func TestProfileTraitsMatchRegisterMap(t *testing.T) {
	for _, series := range Series() {
		p, _ := Lookup(series)

		if _, ok := p.Entry("pv3_power"); ok != p.HasPV3 {
			t.Errorf("%s: HasPV3=%v but pv3_power mapped=%v", series, p.HasPV3, ok)
		}
		if _, ok := p.Entry("battery_soc"); ok != p.HasBattery {
			t.Errorf("%s: HasBattery=%v but battery_soc mapped=%v", series, p.HasBattery, ok)
		}

		_, perPhase := p.Entry("ac_power_r")
		switch p.Phases {
		case 1:
			if perPhase {
				t.Errorf("%s: single-phase profile maps per-phase registers", series)
			}
		case 3:
			if !perPhase {
				t.Errorf("%s: three-phase profile missing per-phase registers", series)
			}
		default:
			t.Errorf("%s: phases=%d", series, p.Phases)
		}
	}
}

func TestReadBlocksCoverEveryEntry(t *testing.T) {
	for _, series := range Series() {
		p, _ := Lookup(series)
		blocks := p.ReadBlocks()

		covered := func(addr uint16) bool {
			for _, b := range blocks {
				if addr >= b.Address && addr < b.Address+b.Quantity {
					return true
				}
			}
			return false
		}

		for _, e := range p.Input {
			for i := 0; i < e.Words; i++ {
				if !covered(e.Address + uint16(i)) {
					t.Errorf("%s: register %d (%s) not covered by any block", series, e.Address+uint16(i), e.Name)
				}
			}
		}
	}
}

func TestReadBlocksBounded(t *testing.T) {
	for _, series := range Series() {
		p, _ := Lookup(series)
		var prevEnd uint16
		for i, b := range p.ReadBlocks() {
			if b.Quantity == 0 || b.Quantity > 120 {
				t.Errorf("%s: block %d quantity %d", series, i, b.Quantity)
			}
			if i > 0 && b.Address < prevEnd {
				t.Errorf("%s: block %d overlaps previous", series, i)
			}
			prevEnd = b.Address + b.Quantity
		}
	}
}

func TestMinSeriesSplitsRanges(t *testing.T) {
	// SPH maps read both the 0-range and the 1000-range; a single
	// coalesced block would span unmapped registers the device rejects.
	p, err := Lookup("sph_3000_10000")
	if err != nil {
		t.Fatalf("Lookup err=%v", err)
	}
	blocks := p.ReadBlocks()
	if len(blocks) < 2 {
		t.Fatalf("expected separate blocks for base and storage ranges, got %d", len(blocks))
	}
}

func TestStatusText(t *testing.T) {
	cases := map[int]string{
		0:  "waiting",
		1:  "normal",
		3:  "fault",
		5:  "standby",
		42: "unknown",
	}
	for code, want := range cases {
		if got := StatusText(code); got != want {
			t.Errorf("StatusText(%d)=%q, want %q", code, got, want)
		}
	}
}

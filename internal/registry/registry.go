// internal/registry/registry.go
package registry

import (
	"fmt"
	"sort"
)

// FieldKind classifies a field for offline behavior and presentation.
type FieldKind int

const (
	KindDiagnostic  FieldKind = iota // goes stale when the device is offline
	KindPower                        // reads 0 when the device is offline
	KindEnergyDaily                  // retained until the day rolls over
	KindEnergyTotal                  // always retained
	KindStatus                       // reported as "offline"
)

// Entry maps one logical field to its input register geometry.
// Two-word fields occupy Address (high word) and Address+1 (low word).
type Entry struct {
	Name    string
	Address uint16
	Words   int // 1 or 2
	Signed  bool
	Scale   float64
	Unit    string
	Kind    FieldKind
}

// Setting is a writable holding register with its accepted range.
type Setting struct {
	Name    string
	Address uint16
	Min     uint16
	Max     uint16
	Desc    string
}

// Profile describes one inverter series: its register map and traits.
// Profiles are immutable after load.
type Profile struct {
	Series     string
	Name       string
	Phases     int // 1 or 3
	HasBattery bool
	HasPV3     bool
	Input      []Entry
	Settings   []Setting
}

// ReadBlock is one batched input-register read span.
type ReadBlock struct {
	Address  uint16
	Quantity uint16
}

// Growatt rejects reads above 125 registers; stay under with margin.
const (
	maxBlockRegisters = 120
	maxBlockGap       = 16
)

// ReadBlocks coalesces the profile's input addresses into batched read
// spans. Nearby entries share a block; a gap wider than maxBlockGap or
// a span past maxBlockRegisters starts a new one.
func (p *Profile) ReadBlocks() []ReadBlock {
	if len(p.Input) == 0 {
		return nil
	}

	ends := make(map[uint16]uint16) // start -> inclusive end
	var starts []int
	for _, e := range p.Input {
		end := e.Address + uint16(e.Words) - 1
		if prev, ok := ends[e.Address]; !ok || end > prev {
			if !ok {
				starts = append(starts, int(e.Address))
			}
			ends[e.Address] = end
		}
	}
	sort.Ints(starts)

	var blocks []ReadBlock
	cur := ReadBlock{Address: uint16(starts[0])}
	curEnd := ends[uint16(starts[0])]

	for _, s := range starts[1:] {
		addr := uint16(s)
		end := ends[addr]
		var gap uint16
		if addr > curEnd {
			gap = addr - curEnd
		}
		span := end - cur.Address + 1
		if gap > maxBlockGap || span > maxBlockRegisters {
			cur.Quantity = curEnd - cur.Address + 1
			blocks = append(blocks, cur)
			cur = ReadBlock{Address: addr}
			curEnd = end
			continue
		}
		if end > curEnd {
			curEnd = end
		}
	}
	cur.Quantity = curEnd - cur.Address + 1
	blocks = append(blocks, cur)

	return blocks
}

// Entry returns the input entry with the given logical name.
func (p *Profile) Entry(name string) (Entry, bool) {
	for _, e := range p.Input {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// ---- SERIES LOOKUP ----

var profiles = map[string]*Profile{
	"min_3000_6000_tl_x":    minTLX(false),
	"min_7000_10000_tl_x":   minTLX(true),
	"mid_15000_25000tl3_x":  tl3(false, "mid_15000_25000tl3_x", "MID 15000-25000TL3-X"),
	"max_50000_125000tl3_x": tl3(true, "max_50000_125000tl3_x", "MAX 50000-125000TL3-X"),
	"sph_3000_10000":        sph(),
	"mod_6000_15000tl3_xh":  modTL3XH(),
}

// Lookup returns the profile for a series id.
func Lookup(series string) (*Profile, error) {
	p, ok := profiles[series]
	if !ok {
		return nil, fmt.Errorf("registry: unknown inverter series %q", series)
	}
	return p, nil
}

// Series lists the known series ids.
func Series() []string {
	out := make([]string, 0, len(profiles))
	for s := range profiles {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

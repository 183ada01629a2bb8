// internal/decode/decode.go
package decode

import (
	"fmt"
	"math"

	"github.com/mbadberg/growatt-bridge/internal/registry"
)

// Value decodes raw register words into a scaled engineering value.
// Words are big-endian per Modbus convention; for 2-register fields the
// first word is the high half. A word-count mismatch is a field-level
// decode fault, never fatal to the poll cycle.
func Value(e registry.Entry, words []uint16) (float64, error) {
	if len(words) != e.Words {
		return 0, fmt.Errorf("decode %s: got %d words, want %d", e.Name, len(words), e.Words)
	}

	var raw int64
	switch e.Words {
	case 1:
		raw = int64(words[0])
		if e.Signed {
			raw = int64(int16(words[0]))
		}

	case 2:
		combined := uint32(words[0])<<16 | uint32(words[1])
		raw = int64(combined)
		if e.Signed {
			raw = int64(int32(combined))
		}

	default:
		return 0, fmt.Errorf("decode %s: unsupported word count %d", e.Name, e.Words)
	}

	// Register resolution is at most two decimals; rounding here keeps
	// float noise out of published values.
	return math.Round(float64(raw)*e.Scale*100) / 100, nil
}

// Cache holds raw words from one poll cycle, keyed by register address.
type Cache map[uint16]uint16

// Load stores a block of words read starting at addr.
func (c Cache) Load(addr uint16, words []uint16) {
	for i, w := range words {
		c[addr+uint16(i)] = w
	}
}

// Words extracts the raw words backing an entry. Missing registers are
// a decode fault for that field only.
func (c Cache) Words(e registry.Entry) ([]uint16, error) {
	out := make([]uint16, 0, e.Words)
	for i := 0; i < e.Words; i++ {
		w, ok := c[e.Address+uint16(i)]
		if !ok {
			return nil, fmt.Errorf("decode %s: register %d not read", e.Name, e.Address+uint16(i))
		}
		out = append(out, w)
	}
	return out, nil
}

// Field decodes an entry straight from the cache.
func (c Cache) Field(e registry.Entry) (float64, error) {
	words, err := c.Words(e)
	if err != nil {
		return 0, err
	}
	return Value(e, words)
}

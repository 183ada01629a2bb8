// internal/publish/payload.go
package publish

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/mbadberg/growatt-bridge/internal/derive"
	"github.com/mbadberg/growatt-bridge/internal/poller"
	"github.com/mbadberg/growatt-bridge/internal/registry"
)

// StatePayload renders one poll record as the JSON state document for
// the inverter's state topic. Offline records degrade per field kind:
// power readings drop to zero (the inverter is off, not producing),
// energy counters keep their last value, diagnostics are omitted and
// the status text becomes "offline".
func StatePayload(profile *registry.Profile, rec poller.Record) ([]byte, error) {
	doc := make(map[string]interface{}, len(rec.Values)+2)

	for _, e := range profile.Input {
		v, ok := rec.Values[e.Name]
		if !ok {
			continue
		}
		if e.Kind == registry.KindStatus {
			if rec.Online {
				doc[e.Name] = registry.StatusText(int(v))
				doc[e.Name+"_code"] = int(v)
			} else {
				doc[e.Name] = "offline"
			}
			continue
		}
		if !rec.Online {
			switch e.Kind {
			case registry.KindPower:
				v = 0
			case registry.KindDiagnostic:
				continue
			}
		}
		doc[e.Name] = v
	}

	// Derived values are power flows: zero while offline.
	for _, name := range derive.Names() {
		v, ok := rec.Values[name]
		if !ok {
			continue
		}
		if !rec.Online {
			v = 0
		}
		doc[name] = v
	}

	doc["last_update"] = rec.At.Format(time.RFC3339)
	return json.Marshal(doc)
}

// stateFields lists the field names a state payload can carry for a
// profile, in publish order. Discovery iterates this so the set of
// announced sensors matches the set of published keys.
func stateFields(profile *registry.Profile) []registry.Entry {
	out := make([]registry.Entry, 0, len(profile.Input)+len(derive.Names()))
	out = append(out, profile.Input...)
	for _, name := range derive.Names() {
		out = append(out, registry.Entry{Name: name, Unit: "W", Kind: registry.KindPower})
	}
	// self_consumption_pct is a ratio, not a power
	for i := range out {
		if out[i].Name == derive.FieldSelfConsumptionPct {
			out[i].Unit = "%"
			out[i].Kind = registry.KindDiagnostic
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// internal/control/control.go
package control

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mbadberg/growatt-bridge/internal/registry"
)

// Client abstracts the holding-register access a Manager needs.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
	WriteRegister(addr, value uint16) error                  // FC 6
}

// Manager reads and writes the writable settings of one inverter.
// Safe for concurrent use; the underlying client serializes requests
// against the poll loop.
type Manager struct {
	name     string
	settings map[string]registry.Setting
	client   Client

	mu    sync.Mutex
	cache map[string]uint16
}

// New builds a Manager over the profile's writable settings.
func New(name string, profile *registry.Profile, client Client) *Manager {
	settings := make(map[string]registry.Setting, len(profile.Settings))
	for _, s := range profile.Settings {
		settings[s.Name] = s
	}
	return &Manager{
		name:     name,
		settings: settings,
		client:   client,
		cache:    make(map[string]uint16, len(settings)),
	}
}

// Settings returns the setting definitions sorted by name.
func (m *Manager) Settings() []registry.Setting {
	out := make([]registry.Setting, 0, len(m.settings))
	for _, s := range m.settings {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Refresh reads every setting from the device into the cache. Settings
// with consecutive addresses are fetched in one request; a read fault
// aborts the refresh and keeps the previous cache.
func (m *Manager) Refresh() error {
	addrs := make([]uint16, 0, len(m.settings))
	for _, s := range m.settings {
		addrs = append(addrs, s.Address)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	fresh := make(map[uint16]uint16, len(addrs))
	for i := 0; i < len(addrs); {
		j := i + 1
		for j < len(addrs) && addrs[j] == addrs[j-1]+1 && j-i < maxSettingsRead {
			j++
		}
		qty := addrs[j-1] - addrs[i] + 1
		words, err := m.client.ReadHoldingRegisters(addrs[i], qty)
		if err != nil {
			return fmt.Errorf("control: %s: read settings at %d: %w", m.name, addrs[i], err)
		}
		for k, w := range words {
			fresh[addrs[i]+uint16(k)] = w
		}
		i = j
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for name, s := range m.settings {
		if v, ok := fresh[s.Address]; ok {
			m.cache[name] = v
		}
	}
	return nil
}

// maxSettingsRead caps one holding-register request during Refresh.
const maxSettingsRead = 10

// Get returns the cached value of a setting.
func (m *Manager) Get(name string) (uint16, error) {
	if _, ok := m.settings[name]; !ok {
		return 0, fmt.Errorf("control: %s: unknown setting %q", m.name, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.cache[name]
	if !ok {
		return 0, fmt.Errorf("control: %s: setting %q not read yet", m.name, name)
	}
	return v, nil
}

// Set validates the value against the setting's range and writes it to
// the device. The cache is updated only after the write succeeds.
func (m *Manager) Set(name string, value uint16) error {
	s, ok := m.settings[name]
	if !ok {
		return fmt.Errorf("control: %s: unknown setting %q", m.name, name)
	}
	if value < s.Min || value > s.Max {
		return fmt.Errorf("control: %s: %s=%d out of range [%d,%d]", m.name, name, value, s.Min, s.Max)
	}
	if err := m.client.WriteRegister(s.Address, value); err != nil {
		return fmt.Errorf("control: %s: write %s: %w", m.name, name, err)
	}

	m.mu.Lock()
	m.cache[name] = value
	m.mu.Unlock()
	return nil
}

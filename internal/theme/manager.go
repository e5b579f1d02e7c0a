package theme

import (
	"fmt"

	"github.com/jask/kanban/internal/storage"
)

// StorageKey is the durable slot holding the theme-name preference. It is
// independent of the board's slot.
const StorageKey = "theme"

// Manager loads and persists the theme preference.
type Manager struct {
	kv       storage.Store
	fallback string
	current  Palette
}

// NewManager wraps the durable store. fallback names the palette used when no
// preference is stored; an empty or unknown fallback means DefaultName.
func NewManager(kv storage.Store, fallback string) *Manager {
	if _, ok := ByName(fallback); !ok {
		fallback = DefaultName
	}
	p, _ := ByName(fallback)
	return &Manager{kv: kv, fallback: fallback, current: p}
}

// Load reads the stored preference. Absent, unreadable, or unknown names fall
// back to the manager's fallback palette.
func (m *Manager) Load() Palette {
	raw, ok, err := m.kv.Get(StorageKey)
	if err == nil && ok {
		if p, known := ByName(raw); known {
			m.current = p
			return m.current
		}
	}
	m.current, _ = ByName(m.fallback)
	return m.current
}

// Current returns the active palette.
func (m *Manager) Current() Palette {
	return m.current
}

// Apply switches to the named palette and persists the preference. The
// switch only happens once the preference is durably stored, so a failed
// write never leaves the manager disagreeing with what is on screen.
func (m *Manager) Apply(name string) (Palette, error) {
	p, ok := ByName(name)
	if !ok {
		return m.current, fmt.Errorf("unknown theme %q", name)
	}
	if err := m.kv.Set(StorageKey, name); err != nil {
		return m.current, fmt.Errorf("persist theme: %w", err)
	}
	m.current = p
	return m.current, nil
}

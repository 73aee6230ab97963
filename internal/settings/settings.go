// Package settings persists player preferences between runs using gdata.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name; it picks the data directory.
const AppName = "sol_defense"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Preferences are the user-facing options that survive a restart.
type Preferences struct {
	SoundEnabled bool    `yaml:"sound_enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 .. 1.0
	Scrolling    bool    `yaml:"scrolling"`     // starfield background scroll
}

// Defaults returns the preferences used on first start.
func Defaults() Preferences {
	return Preferences{
		SoundEnabled: true,
		MasterVolume: 0.8,
		Scrolling:    true,
	}
}

// Manager loads and saves Preferences. A nil gdata manager keeps them in
// memory only.
type Manager struct {
	data  *gdata.Manager
	prefs Preferences
}

// Open creates a Manager backed by the user's data directory. When the
// directory is unusable it falls back to memory and logs why.
func Open() *Manager {
	data, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Warn("preferences will not persist", "err", err)
		data = nil
	}
	return NewManager(data)
}

// NewManager wraps data and loads any stored preferences. Load failures
// leave the defaults in place.
func NewManager(data *gdata.Manager) *Manager {
	m := &Manager{data: data, prefs: Defaults()}
	if err := m.Load(); err != nil {
		log.Warn("failed to load preferences, using defaults", "err", err)
	}
	return m
}

// Persistent reports whether changes reach disk.
func (m *Manager) Persistent() bool {
	return m.data != nil
}

// Load reads stored preferences. Missing data is not an error.
func (m *Manager) Load() error {
	m.prefs = Defaults()
	if m.data == nil || !m.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	loaded := Defaults()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("decode preferences: %w", err)
	}
	loaded.MasterVolume = clampVolume(loaded.MasterVolume)
	m.prefs = loaded
	log.Debug("preferences loaded", "sound", loaded.SoundEnabled, "volume", loaded.MasterVolume)
	return nil
}

// Save writes the current preferences. It is a no-op in memory mode.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := m.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Reset restores the defaults and stores them.
func (m *Manager) Reset() error {
	m.prefs = Defaults()
	return m.Save()
}

// Get returns a copy of the current preferences.
func (m *Manager) Get() Preferences {
	return m.prefs
}

func (m *Manager) SetSoundEnabled(on bool)   { m.prefs.SoundEnabled = on }
func (m *Manager) SetMasterVolume(v float64) { m.prefs.MasterVolume = clampVolume(v) }
func (m *Manager) SetScrolling(on bool)      { m.prefs.Scrolling = on }

// SetScrollingAndSave records the scroll toggle and persists it right away.
func (m *Manager) SetScrollingAndSave(on bool) error {
	if m.prefs.Scrolling == on {
		return nil
	}
	m.prefs.Scrolling = on
	return m.Save()
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

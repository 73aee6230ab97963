package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openData(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	data, err := gdata.Open(gdata.Config{AppName: "sol_defense_test"})
	if err != nil {
		t.Fatalf("gdata.Open() error: %v", err)
	}
	return data
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	if !d.SoundEnabled || !d.Scrolling {
		t.Errorf("Defaults() = %+v, expected sound and scrolling on", d)
	}
	if d.MasterVolume != 0.8 {
		t.Errorf("Defaults().MasterVolume = %v, expected 0.8", d.MasterVolume)
	}
}

func TestMemoryMode(t *testing.T) {
	m := NewManager(nil)
	if m.Persistent() {
		t.Error("Persistent() = true without gdata")
	}
	m.SetSoundEnabled(false)
	if err := m.Save(); err != nil {
		t.Errorf("Save() in memory mode error: %v", err)
	}
	if m.Get().SoundEnabled {
		t.Error("in-memory change lost")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	data := openData(t)

	m := NewManager(data)
	m.SetSoundEnabled(false)
	m.SetMasterVolume(0.3)
	m.SetScrolling(false)
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reopened := NewManager(data)
	got := reopened.Get()
	want := Preferences{SoundEnabled: false, MasterVolume: 0.3, Scrolling: false}
	if got != want {
		t.Errorf("Get() after reload = %+v, expected %+v", got, want)
	}
}

func TestCorruptDataFallsBack(t *testing.T) {
	data := openData(t)
	if err := data.SaveObjectProp(settingsObject, settingsProperty, []byte("sound_enabled: [oops")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	m := NewManager(data)
	if m.Get() != Defaults() {
		t.Errorf("Get() = %+v, expected defaults for corrupt data", m.Get())
	}
	if err := m.Load(); err == nil {
		t.Error("Load() should report corrupt data")
	}
}

func TestPartialDataKeepsDefaults(t *testing.T) {
	data := openData(t)
	if err := data.SaveObjectProp(settingsObject, settingsProperty, []byte("scrolling: false\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	got := NewManager(data).Get()
	if got.Scrolling || !got.SoundEnabled || got.MasterVolume != 0.8 {
		t.Errorf("Get() = %+v, expected only scrolling overridden", got)
	}
}

func TestSetScrollingAndSave(t *testing.T) {
	data := openData(t)
	m := NewManager(data)

	if err := m.SetScrollingAndSave(false); err != nil {
		t.Fatalf("SetScrollingAndSave() error: %v", err)
	}
	if NewManager(data).Get().Scrolling {
		t.Error("scroll toggle not persisted")
	}
}

func TestReset(t *testing.T) {
	data := openData(t)
	m := NewManager(data)
	m.SetMasterVolume(0.1)
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if err := m.Reset(); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if NewManager(data).Get() != Defaults() {
		t.Error("Reset() did not restore stored defaults")
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0}, {0.5, 0.5}, {2, 1},
	}
	m := NewManager(nil)
	for _, tt := range tests {
		m.SetMasterVolume(tt.in)
		if got := m.Get().MasterVolume; got != tt.want {
			t.Errorf("SetMasterVolume(%v) -> %v, expected %v", tt.in, got, tt.want)
		}
	}
}

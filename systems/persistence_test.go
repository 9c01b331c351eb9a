package systems

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/automoto/wallhop/player"
	"github.com/charmbracelet/log"
)

type memItems struct {
	data    map[string][]byte
	loadErr error
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	m.data[key] = data
	return nil
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

func TestStorePropertiesRoundTrip(t *testing.T) {
	s := newStore(&memItems{data: map[string][]byte{}}, quietLogger())
	props := player.DefaultProperties()
	props.JumpForce = 30
	props.WallslideMaxVSpeed = nil

	if err := s.SaveProperties(props); err != nil {
		t.Fatalf("SaveProperties: %v", err)
	}
	got := s.LoadProperties(player.DefaultProperties())

	if got.JumpForce != 30 || got.WallslideMaxVSpeed != nil || got.CoyoteTime != props.CoyoteTime {
		t.Errorf("loaded %+v", got)
	}
}

func TestStoreLoadFallbacks(t *testing.T) {
	fallback := player.DefaultProperties()
	tests := []struct {
		name  string
		items *memItems
	}{
		{"nothing saved", &memItems{data: map[string][]byte{}}},
		{"corrupt data", &memItems{data: map[string][]byte{propertiesKey: []byte("{")}}},
		{"backend error", &memItems{loadErr: errors.New("disk gone")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(tt.items, quietLogger())
			if got := s.LoadProperties(fallback); got.JumpForce != fallback.JumpForce {
				t.Errorf("JumpForce = %v, want fallback", got.JumpForce)
			}
			if s.LoadSettings() != nil {
				t.Error("expected no settings")
			}
		})
	}
}

func TestStoreLoadKeepsFallbackPointer(t *testing.T) {
	items := &memItems{data: map[string][]byte{propertiesKey: []byte(`{"wallslide_max_v_speed": 3}`)}}
	s := newStore(items, quietLogger())
	fallback := player.DefaultProperties()

	got := s.LoadProperties(fallback)

	if *got.WallslideMaxVSpeed != 3 || *fallback.WallslideMaxVSpeed != 15 {
		t.Errorf("got %v fallback %v", *got.WallslideMaxVSpeed, *fallback.WallslideMaxVSpeed)
	}
}

func TestStoreSettings(t *testing.T) {
	s := newStore(&memItems{data: map[string][]byte{}}, quietLogger())
	want := SavedSettings{Fullscreen: true, Scale: 3, ShowOverlay: true}
	if err := s.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if got := s.LoadSettings(); got == nil || *got != want {
		t.Errorf("LoadSettings = %v, want %v", got, want)
	}
}

func TestNilBackendStore(t *testing.T) {
	s := &Store{logger: quietLogger()}
	if err := s.SaveProperties(player.DefaultProperties()); err != nil {
		t.Errorf("SaveProperties: %v", err)
	}
	if s.LoadSettings() != nil {
		t.Error("expected no settings")
	}
}

func TestSavePropertiesLogsOnlyWhenPersisted(t *testing.T) {
	tests := []struct {
		name     string
		items    itemStore
		expected bool
	}{
		{"with backend", &memItems{data: map[string][]byte{}}, true},
		{"without backend", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := newStore(tt.items, log.New(&buf))
			if err := s.SaveProperties(player.DefaultProperties()); err != nil {
				t.Fatalf("SaveProperties: %v", err)
			}
			if got := strings.Contains(buf.String(), "player properties saved"); got != tt.expected {
				t.Errorf("logged save = %v, expected %v (log: %q)", got, tt.expected, buf.String())
			}
		})
	}
}

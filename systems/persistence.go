package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/wallhop/player"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const (
	propertiesKey = "properties"
	settingsKey   = "settings"
)

// SavedSettings represents the window settings stored on disk
type SavedSettings struct {
	Fullscreen  bool `json:"fullscreen"`
	Scale       int  `json:"scale"`
	ShowOverlay bool `json:"showOverlay"`
}

// itemStore is the part of *gdata.Manager the Store uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store persists tuned player properties and settings. A Store without a
// backend (persistence unavailable) loads nothing and saves nothing.
type Store struct {
	items  itemStore
	logger *log.Logger
}

// OpenStore opens the gdata manager for app. Failure is logged and yields a
// Store that keeps nothing, so the game still runs.
func OpenStore(app string, logger *log.Logger) *Store {
	m, err := gdata.Open(gdata.Config{
		AppName: app,
	})
	if err != nil {
		logger.Warn("could not initialize persistence", "error", err)
		return &Store{logger: logger}
	}
	return &Store{items: m, logger: logger}
}

func newStore(items itemStore, logger *log.Logger) *Store {
	return &Store{items: items, logger: logger}
}

func (s *Store) load(key string, v any) (bool, error) {
	if s == nil || s.items == nil {
		return false, nil
	}
	data, err := s.items.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		// Nothing saved yet
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse saved %s: %w", key, err)
	}
	return true, nil
}

// save reports whether v reached the backend.
func (s *Store) save(key string, v any) (bool, error) {
	if s == nil || s.items == nil {
		return false, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := s.items.SaveItem(key, data); err != nil {
		return false, fmt.Errorf("save %s: %w", key, err)
	}
	return true, nil
}

// LoadProperties returns the saved tuning over fallback. Fields missing from
// the saved data keep fallback's values.
func (s *Store) LoadProperties(fallback player.Properties) player.Properties {
	props := fallback
	if props.WallslideMaxVSpeed != nil {
		limit := *props.WallslideMaxVSpeed
		props.WallslideMaxVSpeed = &limit
	}
	ok, err := s.load(propertiesKey, &props)
	if err != nil {
		s.logger.Warn("could not load player properties", "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return props.Sanitize()
}

// SaveProperties stores props. Without a backend it does nothing.
func (s *Store) SaveProperties(props player.Properties) error {
	saved, err := s.save(propertiesKey, props)
	if err != nil {
		s.logger.Warn("could not save player properties", "error", err)
		return err
	}
	if saved {
		s.logger.Info("player properties saved")
	}
	return nil
}

// LoadSettings returns the saved settings, or nil when there are none.
func (s *Store) LoadSettings() *SavedSettings {
	var settings SavedSettings
	ok, err := s.load(settingsKey, &settings)
	if err != nil {
		s.logger.Warn("could not load settings", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return &settings
}

func (s *Store) SaveSettings(settings SavedSettings) error {
	if _, err := s.save(settingsKey, settings); err != nil {
		s.logger.Warn("could not save settings", "error", err)
		return err
	}
	return nil
}

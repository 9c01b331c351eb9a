package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/wallhop/input"
	"github.com/automoto/wallhop/player"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when an explicitly requested config file is missing.
var ErrNotFound = errors.New("config file not found")

//go:embed default.yaml
var defaultYAML []byte

const fileName = "config.yaml"

// File is the on-disk configuration. Sections left out of a file keep their
// defaults.
type File struct {
	Window  WindowConfig      `yaml:"window"`
	Camera  CameraConfig      `yaml:"camera"`
	Physics PhysicsConfig     `yaml:"physics"`
	Debug   DebugConfig       `yaml:"debug"`
	Player  player.Properties `yaml:"player"`
	Input   input.Bindings    `yaml:"input"`

	// Path is where the file was read from, empty for the embedded default.
	Path string `yaml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() *File {
	return &File{
		Window:  Window,
		Camera:  Camera,
		Physics: Physics,
		Debug:   Debug,
		Player:  player.DefaultProperties(),
		Input:   input.DefaultBindings(),
	}
}

// Parse decodes YAML over the defaults and brings out-of-range values back
// into range.
func Parse(data []byte) (*File, error) {
	f := Defaults()
	f.Input = input.Bindings{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	f.Input = f.Input.WithDefaults()
	f.Player = f.Player.Sanitize()
	if !(f.Physics.TimeScale > 0) {
		f.Physics.TimeScale = 1
	}
	f.Window.Scale = max(1, min(MaxWindowScale, f.Window.Scale))
	return f, nil
}

// Load reads the configuration.
// Search order: customPath -> <user config dir>/wallhop/config.yaml -> ./configs/config.yaml -> embedded default
func Load(customPath string) (*File, error) {
	if customPath != "" {
		f, err := ReadFile(customPath)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if f, err := ReadFile(path); err == nil {
			return f, nil
		}
	}

	f, err := Parse(defaultYAML)
	if err != nil {
		return Defaults(), nil
	}
	return f, nil
}

// ReadFile reads and parses one config file.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Apply copies the file's sections into the package-level configuration.
func (f *File) Apply() {
	Window = f.Window
	Camera = f.Camera
	Physics = f.Physics
	Debug = f.Debug
	Input = f.Input
}

// userConfigPath returns the path to the user config file, or empty if the
// config dir is unavailable.
func userConfigPath(filename string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wallhop", filename)
}

// Package config provides configuration loading and access for the aurora runtime.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Particles ParticlesConfig `yaml:"particles"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Trail     TrailConfig     `yaml:"trail"`
	Lines     LinesConfig     `yaml:"lines"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Events    EventsConfig    `yaml:"events"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// ParticlesConfig holds the particle field parameters.
type ParticlesConfig struct {
	Count              int        `yaml:"count"`
	MinSize            float64    `yaml:"min_size"`
	MaxSize            float64    `yaml:"max_size"`
	Speed              float64    `yaml:"speed"`               // Velocity per axis is in (-speed/2, speed/2)
	ConnectionDistance float64    `yaml:"connection_distance"` // Max distance for a connecting line
	FadeFrames         int        `yaml:"fade_frames"`         // Opacity ramp length at each end of life
	MinLifespan        int        `yaml:"min_lifespan"`        // Inclusive, frames
	MaxLifespan        int        `yaml:"max_lifespan"`        // Exclusive, frames
	ExpireOpacity      float64    `yaml:"expire_opacity"`      // Particles at or below this opacity are replaced
	ColorJitter        float64    `yaml:"color_jitter"`        // Per-channel jitter span around the palette entry
	Palette            []RGBColor `yaml:"palette"`
}

// RGBColor is an 8-bit RGB triple.
type RGBColor struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// PointerConfig holds pointer repulsion parameters.
type PointerConfig struct {
	InfluenceRadius float64 `yaml:"influence_radius"`
	Strength        float64 `yaml:"strength"`
	Damping         float64 `yaml:"damping"`
}

// TrailConfig holds the translucent overlay painted each frame.
type TrailConfig struct {
	Color RGBColor `yaml:"color"`
	Alpha float64  `yaml:"alpha"`
}

// LinesConfig holds connection line styling.
type LinesConfig struct {
	Color      RGBColor `yaml:"color"`
	Width      float64  `yaml:"width"`
	AlphaScale float64  `yaml:"alpha_scale"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // Frames per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// EventsConfig holds event store and admin settings.
type EventsConfig struct {
	StorePath     string `yaml:"store_path"`
	StoreKey      string `yaml:"store_key"`
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"admin_password"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	StoreFile string  // Events.StorePath joined with Events.StoreKey
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	p := &c.Particles
	if p.MaxSize < p.MinSize {
		p.MinSize, p.MaxSize = p.MaxSize, p.MinSize
	}
	if p.MaxLifespan <= p.MinLifespan {
		p.MaxLifespan = p.MinLifespan + 1
	}
	if p.FadeFrames < 1 {
		p.FadeFrames = 1
	}
	if len(p.Palette) == 0 {
		p.Palette = []RGBColor{{R: 255, G: 255, B: 255}}
	}

	key := c.Events.StoreKey
	if key == "" {
		key = "rotaractEvents"
	}
	dir := c.Events.StorePath
	if dir == "" {
		dir = "."
	}
	c.Derived.StoreFile = filepath.Join(dir, key+".json")
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

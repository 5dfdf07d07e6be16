package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Fixed identifiers shared with the engine build and with other instances.
const (
	windowClassName = "FLUTTER_RUNNER_WIN32_WINDOW"
	windowTitle     = "cyrene_music"
	instanceMutex   = `Local\CyreneMusicInstanceMutex`
	appUserModelID  = "CyreneMusic.MusicPlayer.Desktop.1"
	assetsDirName   = "data"

	logLevelEnv = "CYRENE_RUNNER_LOG_LEVEL"
)

// RunnerConfig holds the optional overrides read from runner.toml.
type RunnerConfig struct {
	LogLevel          string `toml:"log_level"`
	Title             string `toml:"title"`
	X                 int    `toml:"x"`
	Y                 int    `toml:"y"`
	Width             int    `toml:"width"`
	Height            int    `toml:"height"`
	TimerResolutionMs uint32 `toml:"timer_resolution_ms"` // 0 = leave the system default
	HighPriority      *bool  `toml:"high_priority"`       // nil = true
	AssetsDir         string `toml:"assets_dir"`
}

// IsHighPriority reports whether the process should run at HIGH_PRIORITY_CLASS (default true).
func (c *RunnerConfig) IsHighPriority() bool {
	return c.HighPriority == nil || *c.HighPriority
}

// Origin returns the configured window origin in logical units.
func (c *RunnerConfig) Origin() Point {
	return Point{X: c.X, Y: c.Y}
}

// Size returns the configured window size in logical units.
func (c *RunnerConfig) Size() Size {
	return Size{Width: c.Width, Height: c.Height}
}

var (
	appDataDir     string
	appDataDirOnce sync.Once
)

// DefaultConfig returns config with default values.
func DefaultConfig() *RunnerConfig {
	return &RunnerConfig{
		LogLevel:          "error",
		Title:             windowTitle,
		X:                 10,
		Y:                 10,
		Width:             1280,
		Height:            720,
		TimerResolutionMs: 1,
		AssetsDir:         assetsDirName,
	}
}

// AppDataDir returns the per-user data directory, creating it if needed.
func AppDataDir() string {
	appDataDirOnce.Do(func() {
		base, err := os.UserConfigDir()
		if err != nil {
			// Fallback to exe directory
			if exe, err2 := os.Executable(); err2 == nil {
				appDataDir = filepath.Dir(exe)
			} else {
				appDataDir = "."
			}
			return
		}
		appDataDir = filepath.Join(base, "CyreneMusic")
		os.MkdirAll(appDataDir, 0755)
	})
	return appDataDir
}

// DataPath returns the full path for a file inside the data directory.
func DataPath(elem ...string) string {
	parts := append([]string{AppDataDir()}, elem...)
	return filepath.Join(parts...)
}

// LoadConfig reads runner.toml from the data directory.
// Returns default config if the file doesn't exist or can't be parsed.
func LoadConfig() *RunnerConfig {
	return loadConfigFile(DataPath("runner.toml"))
}

func loadConfigFile(path string) *RunnerConfig {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "runner.toml parse failed, using defaults: %v\n", err)
			cfg = DefaultConfig()
		}
	}

	if level := os.Getenv(logLevelEnv); level != "" {
		cfg.LogLevel = level
	}

	// Ensure geometry has valid defaults
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = def.AssetsDir
	}

	return cfg
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/camview/camview/internal/core"
)

type UIConfig struct {
	RowHeightPx     int    `json:"row_height_px"`
	SnapshotWidthPx int    `json:"snapshot_width_px"`
	FollowLive      bool   `json:"follow_live"`
	Theme           string `json:"theme"`
}

// RetentionAge expresses a maximum recording age the way the recorder
// configures it: as separate day/hour/minute fields.
type RetentionAge struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Duration converts the age fields to a single duration. All fields
// zero means no age limit.
func (a RetentionAge) Duration() time.Duration {
	return time.Duration(a.Days)*24*time.Hour +
		time.Duration(a.Hours)*time.Hour +
		time.Duration(a.Minutes)*time.Minute
}

// RetentionSize expresses a maximum recording size in MB plus GB, the
// two adding together.
type RetentionSize struct {
	MB int64 `json:"mb"`
	GB int64 `json:"gb"`
}

// Bytes returns the combined size limit in bytes.
func (s RetentionSize) Bytes() int64 {
	return s.MB*1024*1024 + s.GB*1024*1024*1024
}

type RetentionConfig struct {
	MaxAge  RetentionAge  `json:"max_age"`
	MaxSize RetentionSize `json:"max_size"`
}

// CameraConfig describes one camera whose timeline the viewer can show.
type CameraConfig struct {
	Identifier string              `json:"identifier"`
	Name       string              `json:"name,omitempty"`
	Width      int                 `json:"width,omitempty"`
	Height     int                 `json:"height,omitempty"`
	Filters    []core.ObjectFilter `json:"object_filters,omitempty"`
}

type Config struct {
	UI        UIConfig        `json:"ui"`
	SourceDir string          `json:"source_dir"`
	Cameras   []CameraConfig  `json:"cameras"`
	Retention RetentionConfig `json:"retention"`
}

func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			RowHeightPx:     8,
			SnapshotWidthPx: 180,
			FollowLive:      true,
			Theme:           "dark",
		},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "camview")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "camview")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.UI.RowHeightPx <= 0 {
		cfg.UI.RowHeightPx = 8
	}
	if cfg.UI.SnapshotWidthPx <= 0 {
		cfg.UI.SnapshotWidthPx = 180
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = DefaultConfig().UI.Theme
	}

	return cfg, nil
}

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Camera returns the configuration for the given identifier, falling
// back to a bare entry so an unknown camera still renders.
func (c Config) Camera(identifier string) CameraConfig {
	for _, cam := range c.Cameras {
		if cam.Identifier == identifier {
			return cam
		}
	}
	return CameraConfig{Identifier: identifier}
}

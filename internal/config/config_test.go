package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.RowHeightPx != 8 {
		t.Errorf("default row height = %d, want 8", cfg.UI.RowHeightPx)
	}
	if cfg.UI.SnapshotWidthPx != 180 {
		t.Errorf("default snapshot width = %d, want 180", cfg.UI.SnapshotWidthPx)
	}
	if !cfg.UI.FollowLive {
		t.Error("default follow_live should be true")
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.RowHeightPx != 8 {
		t.Error("should return defaults for missing file")
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	content := `{
  "ui": {"row_height_px": 12, "theme": "light"},
  "source_dir": "/var/lib/camview",
  "cameras": [{"identifier": "front_door", "width": 1920, "height": 1080}],
  "retention": {"max_age": {"days": 7}, "max_size": {"gb": 2}}
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.RowHeightPx != 12 {
		t.Errorf("row height = %d, want 12", cfg.UI.RowHeightPx)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.SourceDir != "/var/lib/camview" {
		t.Errorf("source dir = %q", cfg.SourceDir)
	}
	if len(cfg.Cameras) != 1 || cfg.Cameras[0].Identifier != "front_door" {
		t.Errorf("cameras = %+v", cfg.Cameras)
	}
	// Untouched fields keep defaults.
	if cfg.UI.SnapshotWidthPx != 180 {
		t.Errorf("snapshot width = %d, want default 180", cfg.UI.SnapshotWidthPx)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.UI.RowHeightPx != 8 {
		t.Error("should fall back to defaults on parse error")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "settings.json")

	cfg := DefaultConfig()
	cfg.SourceDir = "/tmp/cams"
	cfg.Cameras = []CameraConfig{{Identifier: "garage"}}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.SourceDir != "/tmp/cams" {
		t.Errorf("source dir = %q, want /tmp/cams", loaded.SourceDir)
	}
	if len(loaded.Cameras) != 1 || loaded.Cameras[0].Identifier != "garage" {
		t.Errorf("cameras = %+v", loaded.Cameras)
	}
}

func TestRetentionAgeDuration(t *testing.T) {
	tests := []struct {
		age  RetentionAge
		want time.Duration
	}{
		{RetentionAge{}, 0},
		{RetentionAge{Days: 1}, 24 * time.Hour},
		{RetentionAge{Hours: 3}, 3 * time.Hour},
		{RetentionAge{Minutes: 45}, 45 * time.Minute},
		{RetentionAge{Days: 2, Hours: 12, Minutes: 30}, 60*time.Hour + 30*time.Minute},
	}
	for _, tt := range tests {
		if got := tt.age.Duration(); got != tt.want {
			t.Errorf("%+v.Duration() = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestRetentionSizeBytes(t *testing.T) {
	tests := []struct {
		size RetentionSize
		want int64
	}{
		{RetentionSize{}, 0},
		{RetentionSize{MB: 1}, 1048576},
		{RetentionSize{GB: 1}, 1073741824},
		{RetentionSize{MB: 512, GB: 2}, 512*1048576 + 2*1073741824},
	}
	for _, tt := range tests {
		if got := tt.size.Bytes(); got != tt.want {
			t.Errorf("%+v.Bytes() = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestConfigCamera(t *testing.T) {
	cfg := Config{Cameras: []CameraConfig{{Identifier: "front_door", Name: "Front Door"}}}

	if got := cfg.Camera("front_door"); got.Name != "Front Door" {
		t.Errorf("Camera(front_door).Name = %q", got.Name)
	}
	if got := cfg.Camera("unknown"); got.Identifier != "unknown" {
		t.Errorf("Camera(unknown).Identifier = %q, want fallback entry", got.Identifier)
	}
}

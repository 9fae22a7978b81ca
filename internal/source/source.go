// Package source loads camera events, availability spans and fragment
// lists from JSON files exported next to the recordings.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/camview/camview/internal/core"
)

const (
	eventsFile    = "events.json"
	timespansFile = "timespans.json"
	fragmentsFile = "fragments.json"
)

// Data is everything the viewer needs for one camera.
type Data struct {
	Events    []core.Event
	Timespans []core.Timespan
	Fragments []core.Fragment
}

// LoadCamera reads the per-camera JSON files under dir. Missing files
// are fine — a camera with no events yet still renders an empty
// timeline.
func LoadCamera(dir, identifier string) (Data, error) {
	base := filepath.Join(dir, Slugify(identifier))

	var data Data
	if err := loadJSON(filepath.Join(base, eventsFile), &data.Events); err != nil {
		return Data{}, err
	}
	if err := loadJSON(filepath.Join(base, timespansFile), &data.Timespans); err != nil {
		return Data{}, err
	}
	if err := loadJSON(filepath.Join(base, fragmentsFile), &data.Fragments); err != nil {
		return Data{}, err
	}
	return data, nil
}

func loadJSON(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

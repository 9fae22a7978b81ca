package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/camview/camview/internal/config"
	"github.com/camview/camview/internal/logger"
	"github.com/camview/camview/internal/source"
	"github.com/camview/camview/internal/tui"
)

func runViewer(cfg config.Config, cameraID string, selected *time.Time) error {
	if cameraID == "" && len(cfg.Cameras) > 0 {
		cameraID = cfg.Cameras[0].Identifier
	}
	if cameraID == "" {
		return fmt.Errorf("no camera: add one to the config or pass --camera")
	}
	camera := cfg.Camera(cameraID)

	data, err := source.LoadCamera(cfg.SourceDir, cameraID)
	if err != nil {
		return fmt.Errorf("loading camera data: %w", err)
	}
	logger.Info("camera data loaded",
		logger.String("camera", cameraID),
		logger.Int("events", len(data.Events)),
		logger.Int("timespans", len(data.Timespans)))

	model := tui.NewModel(cfg, camera, selected, data)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	watcher, err := source.Watch(cfg.SourceDir, func(path string) {
		reloaded, err := source.LoadCamera(cfg.SourceDir, cameraID)
		if err != nil {
			logger.Warn("reloading camera data", logger.ErrField(err))
			return
		}
		logger.Debug("source changed", logger.String("path", path))
		program.Send(tui.DataMsg(reloaded))
	})
	if err != nil {
		logger.Warn("source watcher unavailable", logger.ErrField(err))
	} else {
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

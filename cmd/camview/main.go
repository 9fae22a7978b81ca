package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/camview/camview/internal/config"
	"github.com/camview/camview/internal/logger"
	"github.com/camview/camview/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	var (
		cameraFlag string
		dateFlag   string
		sourceFlag string
		logLevel   string
	)

	root := cobra.Command{
		Use:   "camview",
		Short: "camview is a terminal viewer for camera recording timelines.",
		RunE: func(_ *cobra.Command, _ []string) error {
			logCfg := logger.DefaultConfig(config.ConfigDir())
			logCfg.Level = logLevel
			logger.Init(logCfg)
			defer logger.Sync()

			if sourceFlag != "" {
				cfg.SourceDir = sourceFlag
			}
			if cfg.SourceDir == "" {
				return fmt.Errorf("no source directory: set source_dir in %s or pass --source-dir", config.ConfigPath())
			}

			var selected *time.Time
			if dateFlag != "" {
				d, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				selected = &d
			}

			return runViewer(cfg, cameraFlag, selected)
		},
	}

	root.Flags().StringVarP(&cameraFlag, "camera", "c", "", "camera identifier to view")
	root.Flags().StringVarP(&dateFlag, "date", "d", "", "day to view (YYYY-MM-DD, default today)")
	root.Flags().StringVar(&sourceFlag, "source-dir", "", "directory holding per-camera JSON exports")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version.String())
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

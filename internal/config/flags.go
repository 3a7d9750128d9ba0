package config

import (
	"flag"
	"time"
)

// parseFlags parses configuration flags from args (normally os.Args[1:]).
// A dedicated FlagSet is used instead of the global one so the parser can be
// exercised from tests without touching process state.
//
// Flags:
//
//	-a API base URL
//	-d local database path (SQLite file)
//	-images-dir local image storage directory
//	-request-timeout outbound request timeout (e.g. "15s")
//	-health-interval connectivity probe interval (e.g. "30s")
//	-sync-interval background sync retry interval (e.g. "5m")
//	-log-file engine log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("photo-keeper", flag.ContinueOnError)

	var (
		baseURL        string
		databaseDSN    string
		imagesDir      string
		requestTimeout time.Duration
		healthInterval time.Duration
		syncInterval   time.Duration
		logFile        string
		jsonConfigPath string
	)

	fs.StringVar(&baseURL, "a", "", "API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.StringVar(&imagesDir, "images-dir", "", "Local image storage directory")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 15s)")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Health probe interval (e.g. 30s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync retry interval (e.g. 5m)")
	fs.StringVar(&logFile, "log-file", "", "Engine log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			HealthInterval: healthInterval,
		},
		Storage: Storage{
			DB:     DB{DSN: databaseDSN},
			Images: Images{Dir: imagesDir},
		},
		Workers:      Workers{SyncInterval: syncInterval},
		App:          App{LogFile: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

package config

import "os"

// Config holds the application configuration.
type Config struct {
	WorldPath string // empty means the embedded default world
	SaveDir   string
	LogPath   string
	Debug     bool
}

// LoadConfig loads the configuration from environment variables. Flags set
// on the command line override these values afterwards.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		WorldPath: os.Getenv("ZORK_WORLD"),
		SaveDir:   os.Getenv("ZORK_SAVE_DIR"),
		LogPath:   os.Getenv("ZORK_LOG"),
		Debug:     os.Getenv("ZORK_DEBUG") != "",
	}
	if cfg.SaveDir == "" {
		cfg.SaveDir = ".saves"
	}
	return cfg, nil
}

package config

import "time"

// Config holds runtime settings for the profile editor CLI.
//
// Fields:
//   - BackendOrigin: scheme://host:port of the Freshers Intro backend.
//   - DatabasePath: location of the local editor database.
//   - SaveDelay: quiet period before an edited draft is persisted.
//   - MaxImages / MaxInterests / MaxInterestLen: editing-session bounds.
//   - RequiredFields: draft fields that must be non-empty at submit time,
//     in addition to bio (the product treats this set as configuration).
//   - MaxUploadBytes / MaxImageWidth: downscaling policy for staged photos.
type Config struct {
	BackendOrigin string
	DatabasePath  string
	SaveDelay     time.Duration

	MaxImages      int
	MaxInterests   int
	MaxInterestLen int
	RequiredFields []string

	MaxUploadBytes int
	MaxImageWidth  int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendOrigin = "http://localhost:8000"
	c.DatabasePath = "freshintro.db"
	c.SaveDelay = 400 * time.Millisecond
	c.MaxImages = 5
	c.MaxInterests = 5
	c.MaxInterestLen = 20
	c.RequiredFields = []string{"branch", "hostel"}
	c.MaxUploadBytes = 1 << 20
	c.MaxImageWidth = 1000
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

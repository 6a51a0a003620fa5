package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/introapp/freshintro/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// expressed as integer milliseconds. Pointer fields distinguish "absent"
// from zero so partial files only override what they mention.
type JsonConfig struct {
	BackendOrigin  *string   `json:"backend_origin"`
	DatabasePath   *string   `json:"database_path"`
	SaveDelayMs    *int      `json:"save_delay_ms"`
	MaxImages      *int      `json:"max_images"`
	MaxInterests   *int      `json:"max_interests"`
	MaxInterestLen *int      `json:"max_interest_len"`
	RequiredFields *[]string `json:"required_fields"`
	MaxUploadBytes *int      `json:"max_upload_bytes"`
	MaxImageWidth  *int      `json:"max_image_width"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. No file selected means no overlay. Read or parse
// errors panic (the config is developer-provided; a broken file should stop
// startup loudly, unlike the user's cached draft).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendOrigin != nil {
		cfg.BackendOrigin = *jc.BackendOrigin
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SaveDelayMs != nil {
		cfg.SaveDelay = time.Duration(*jc.SaveDelayMs) * time.Millisecond
	}
	if jc.MaxImages != nil {
		cfg.MaxImages = *jc.MaxImages
	}
	if jc.MaxInterests != nil {
		cfg.MaxInterests = *jc.MaxInterests
	}
	if jc.MaxInterestLen != nil {
		cfg.MaxInterestLen = *jc.MaxInterestLen
	}
	if jc.RequiredFields != nil {
		cfg.RequiredFields = *jc.RequiredFields
	}
	if jc.MaxUploadBytes != nil {
		cfg.MaxUploadBytes = *jc.MaxUploadBytes
	}
	if jc.MaxImageWidth != nil {
		cfg.MaxImageWidth = *jc.MaxImageWidth
	}
}

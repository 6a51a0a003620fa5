package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8000", cfg.BackendOrigin)
	require.Equal(t, "freshintro.db", cfg.DatabasePath)
	require.Equal(t, 400*time.Millisecond, cfg.SaveDelay)
	require.Equal(t, 5, cfg.MaxImages)
	require.Equal(t, 5, cfg.MaxInterests)
	require.Equal(t, 20, cfg.MaxInterestLen)
	require.Equal(t, []string{"branch", "hostel"}, cfg.RequiredFields)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = []string{"cli", "-o", "http://staging:9000", "-s", "100"}

	cfg := LoadConfig()
	require.Equal(t, "http://staging:9000", cfg.BackendOrigin)
	require.Equal(t, 100*time.Millisecond, cfg.SaveDelay)
	require.Equal(t, "freshintro.db", cfg.DatabasePath)
}

func TestLoadConfig_JsonThenFlags(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"backend_origin": "http://json:8000",
		"database_path": "json.db",
		"required_fields": ["branch", "hostel", "batch"],
		"max_images": 3
	}`), 0o600))

	old := os.Args
	defer func() { os.Args = old }()
	// flags take precedence over the JSON file
	os.Args = []string{"cli", "-c", file, "-o", "http://flags:8000"}

	cfg := LoadConfig()
	require.Equal(t, "http://flags:8000", cfg.BackendOrigin)
	require.Equal(t, "json.db", cfg.DatabasePath)
	require.Equal(t, []string{"branch", "hostel", "batch"}, cfg.RequiredFields)
	require.Equal(t, 3, cfg.MaxImages)
	// untouched values keep their defaults
	require.Equal(t, 5, cfg.MaxInterests)
}

func TestParseJson_PartialFileOnlyOverridesMentioned(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"save_delay_ms": 50}`), 0o600))

	old := os.Args
	defer func() { os.Args = old }()
	os.Args = []string{"cli", "-config", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, 50*time.Millisecond, cfg.SaveDelay)
	require.Equal(t, "http://localhost:8000", cfg.BackendOrigin)
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/daycast-app/daycast/internal/flagx"
	"github.com/daycast-app/daycast/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like
// "500ms" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DatabasePath        string         `json:"database_path"`
	AutosaveQuietPeriod timex.Duration `json:"autosave_quiet_period"`
	AutosaveSavedWindow timex.Duration `json:"autosave_saved_window"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c / -config flags. Missing flag means no JSON is loaded; read or
// unmarshal errors panic. Only fields present in the file override defaults.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.AutosaveQuietPeriod.Duration != 0 {
		cfg.AutosaveQuietPeriod = time.Duration(jc.AutosaveQuietPeriod.Duration)
	}
	if jc.AutosaveSavedWindow.Duration != 0 {
		cfg.AutosaveSavedWindow = time.Duration(jc.AutosaveSavedWindow.Duration)
	}
}

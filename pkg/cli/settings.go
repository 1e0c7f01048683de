package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/endoflife-date/eolint/pkg/constants"
	"github.com/endoflife-date/eolint/pkg/logger"
)

var settingsLog = logger.New("cli:settings")

// Settings are the environment-tunable knobs. Flags take precedence where
// both exist; the environment is for CI configuration that should not live
// in every invocation.
type Settings struct {
	// CheckURLs enables the URL-checking phase for every build.
	CheckURLs bool `env:"EOL_CHECK_URLS"`

	// URLWorkers caps how many records run their URL phases concurrently.
	URLWorkers int `env:"EOL_URL_WORKERS"`
}

// LoadSettings reads the settings from the environment and applies defaults.
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse environment settings: %w", err)
	}

	if settings.URLWorkers < 1 {
		settings.URLWorkers = constants.DefaultURLWorkers
	}

	settingsLog.Printf("Loaded settings: checkURLs=%v, urlWorkers=%d", settings.CheckURLs, settings.URLWorkers)
	return settings, nil
}

// Package environment reads runtime environment configuration.
package environment

import (
	"github.com/caarlos0/env/v11"

	"github.com/zamoon6/greetsync/internal/constants"
)

var appVersionDefault = "REPL_VERSION"

// Config holds the settings that can be supplied through the environment (or a .env file).
// Command line flags take precedence over every field.
type Config struct {
	TranslationsDir string `env:"GREETSYNC_DIR" envDefault:"assets/translations"`
	MessagesField   string `env:"GREETSYNC_FIELD" envDefault:"new_year_messages"`
	GreetingsFile   string `env:"GREETSYNC_GREETINGS"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}

// MustLoad is Load for flag defaults, where an unreadable environment falls back to the built-in defaults.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		return Config{
			TranslationsDir: constants.DefaultTranslationsDir,
			MessagesField:   constants.DefaultMessagesField,
		}
	}
	return cfg
}

func AppVersion() string {
	return appVersionDefault
}

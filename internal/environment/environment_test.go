package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		t.Setenv("GREETSYNC_DIR", "")
		t.Setenv("GREETSYNC_FIELD", "")
		t.Setenv("GREETSYNC_GREETINGS", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "assets/translations", cfg.TranslationsDir)
		assert.Equal(t, "new_year_messages", cfg.MessagesField)
		assert.Empty(t, cfg.GreetingsFile)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("GREETSYNC_DIR", "app/i18n")
		t.Setenv("GREETSYNC_FIELD", "holiday_messages")
		t.Setenv("GREETSYNC_GREETINGS", "greetings.yaml")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "app/i18n", cfg.TranslationsDir)
		assert.Equal(t, "holiday_messages", cfg.MessagesField)
		assert.Equal(t, "greetings.yaml", cfg.GreetingsFile)
	})
}

func TestMustLoad(t *testing.T) {
	t.Setenv("GREETSYNC_DIR", "custom")
	assert.Equal(t, "custom", MustLoad().TranslationsDir)
}

func TestAppVersion(t *testing.T) {
	assert.Equal(t, "REPL_VERSION", AppVersion())
}

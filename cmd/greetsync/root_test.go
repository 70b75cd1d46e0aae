package greetsync

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamoon6/greetsync/internal/i18n"
)

func newTestCommand(t *testing.T, args ...string) (*bytes.Buffer, *bytes.Buffer, error) {
	t.Helper()
	cmd := Command()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout, stderr, err
}

func TestCommand_UsageTemplateUsesWrappedFlags(t *testing.T) {
	t.Setenv(i18n.TestModeEnv, "true")

	cmd := Command()
	assert.Contains(t, cmd.UsageTemplate(), ".FlagUsagesWrapped")
}

func TestCommand_PersistentFlagDefaults(t *testing.T) {
	t.Setenv(i18n.TestModeEnv, "true")
	t.Setenv("GREETSYNC_DIR", "")
	t.Setenv("GREETSYNC_FIELD", "")
	t.Setenv("GREETSYNC_GREETINGS", "")

	cmd := Command()
	persistent := cmd.PersistentFlags()
	assert.Equal(t, "assets/translations", persistent.Lookup("dir").DefValue)
	assert.Equal(t, "new_year_messages", persistent.Lookup("field").DefValue)
	assert.Equal(t, "", persistent.Lookup("greetings").DefValue)
	assert.Equal(t, "D", persistent.Lookup("dir").Shorthand)
	assert.Equal(t, "q", persistent.Lookup("quiet").Shorthand)
	assert.Equal(t, "d", persistent.Lookup("debug").Shorthand)
	assert.NotNil(t, persistent.Lookup("perf"))
	assert.NotNil(t, persistent.Lookup("perf-out-dir"))
}

func TestCommand_PersistentFlagDefaultsFromEnvironment(t *testing.T) {
	t.Setenv(i18n.TestModeEnv, "true")
	t.Setenv("GREETSYNC_DIR", "locales")
	t.Setenv("GREETSYNC_FIELD", "cny")
	t.Setenv("GREETSYNC_GREETINGS", "greetings.yaml")

	persistent := Command().PersistentFlags()
	assert.Equal(t, "locales", persistent.Lookup("dir").DefValue)
	assert.Equal(t, "cny", persistent.Lookup("field").DefValue)
	assert.Equal(t, "greetings.yaml", persistent.Lookup("greetings").DefValue)
}

func TestCommand_RegistersSubcommands(t *testing.T) {
	t.Setenv(i18n.TestModeEnv, "true")

	cmd := Command()
	for _, name := range []string{"update", "check", "version"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, found.Name())
	}
}

func TestCommand_HelpHandlesUnknownTopic(t *testing.T) {
	t.Setenv(i18n.TestModeEnv, "true")

	_, stderr, err := newTestCommand(t, "help", "nope")
	assert.NoError(t, err)
	assert.NotEmpty(t, stderr.String())
}

func TestCommand_HelpHandlesKnownTopic(t *testing.T) {
	t.Setenv(i18n.TestModeEnv, "true")

	stdout, _, err := newTestCommand(t, "help", "version")
	assert.NoError(t, err)
	assert.NotEmpty(t, stdout.String())
}

func TestCommand_RootRunsUpdate(t *testing.T) {
	t.Setenv(i18n.TestModeEnv, "true")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.json"), []byte(`{"foo": "bar"}`), 0o644))

	stdout, _, err := newTestCommand(t, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "cmd.update.done")

	data, err := os.ReadFile(filepath.Join(dir, "de.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"new_year_messages"`)
	assert.Contains(t, string(data), "🧧")
}

func TestCommand_UpdateStrictFailsOnMissingFiles(t *testing.T) {
	t.Setenv(i18n.TestModeEnv, "true")

	_, _, err := newTestCommand(t, "update", "--strict", "-D", t.TempDir())
	assert.Error(t, err)
}

func TestCommand_CheckAfterUpdate(t *testing.T) {
	t.Setenv(i18n.TestModeEnv, "true")

	dir := t.TempDir()
	for _, code := range []string{"de", "es", "fr", "hi", "it", "ja", "ko", "pt", "ru", "th", "zh"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, code+".json"), []byte(`{}`), 0o644))
	}

	_, _, err := newTestCommand(t, "check", "--dir", dir)
	assert.Error(t, err)

	_, _, err = newTestCommand(t, "update", "--dir", dir)
	require.NoError(t, err)

	stdout, _, err := newTestCommand(t, "check", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "cmd.check.done")
}

func TestExecute_ReturnsNilOnHelp(t *testing.T) {
	t.Setenv(i18n.TestModeEnv, "true")

	assert.NoError(t, Execute(context.Background(), []string{"--help"}))
}

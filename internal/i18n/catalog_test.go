package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanishCoversEveryKey(t *testing.T) {
	for _, k := range Keys() {
		_, ok := spanish[k]
		assert.True(t, ok, "spanish catalog missing %q", k)
	}
}

func TestForFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "en", For("en").Lang())
	assert.Equal(t, "es", For("es").Lang())
	assert.Equal(t, "en", For("fr").Lang(), "unknown tags fall back to English")
	assert.Equal(t, "en", For("").Lang())
}

func TestGetUnknownKeyIsVisible(t *testing.T) {
	c := For("en")
	assert.Equal(t, "no_such_key", c.Get(Key("no_such_key")))
}

func TestFormat(t *testing.T) {
	c := For("en")
	assert.Equal(t, "The list 'Movies' has been deleted.", c.Format(MsgListDeleted, "Movies"))
	assert.Equal(t, c.Get(MsgCancelled), c.Format(MsgCancelled), "no args renders the raw template")
}

func TestApplyOverrides(t *testing.T) {
	c := For("en")
	c.ApplyOverrides(map[string]string{
		string(MsgCancelled): "All done here.",
		"future_key":         "staged",
	})
	assert.Equal(t, "All done here.", c.Get(MsgCancelled))

	// Other catalogs for the same language are unaffected.
	assert.NotEqual(t, "All done here.", For("en").Get(MsgCancelled))
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cancelled: \"Custom cancel.\"\n"), 0o644))

	overrides, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom cancel.", overrides["cancelled"])

	_, err = LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

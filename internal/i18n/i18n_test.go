package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var loadingMessage = &Message{ID: "menus_loading", Other: "Loading menus…"}

func reset(t *testing.T) {
	t.Cleanup(func() {
		mu.Lock()
		current = nil
		mu.Unlock()
	})
}

func TestLocalizeBeforeInit(t *testing.T) {
	reset(t)
	mu.Lock()
	current = nil
	mu.Unlock()

	assert.Equal(t, "Loading menus…", Localize(loadingMessage, nil))
	assert.Equal(t, language.English, Language())
	assert.Equal(t, "", Localize(nil, nil))
}

func TestLocalizeEnglish(t *testing.T) {
	reset(t)
	require.NoError(t, Init(""))

	assert.Equal(t, "Loading menus…", Localize(loadingMessage, nil))
	assert.Equal(t, "Copied slug main.", Localize(&Message{
		ID:    "menus_slug_copied",
		Other: "Copied slug {{.Slug}}.",
	}, map[string]interface{}{"Slug": "main"}))
}

func TestLocalizeSpanish(t *testing.T) {
	reset(t)
	require.NoError(t, Init("es"))

	assert.Equal(t, language.Spanish, Language())
	assert.Equal(t, "Cargando menús…", Localize(loadingMessage, nil))
	assert.Equal(t, "Slug main copiado.", Localize(&Message{
		ID:    "menus_slug_copied",
		Other: "Copied slug {{.Slug}}.",
	}, map[string]interface{}{"Slug": "main"}))

	// Untranslated messages fall back to English
	assert.Equal(t, "Only in English", Localize(&Message{ID: "untranslated", Other: "Only in English"}, nil))
	assert.Contains(t, Available(), language.Spanish)
}

func TestInitRejectsBadLocale(t *testing.T) {
	reset(t)
	assert.Error(t, Init("not a locale!"))
}

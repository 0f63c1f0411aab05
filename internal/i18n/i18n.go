// Package i18n localizes the strings shown by the interactive screens.
// Default English text is declared next to each view as a Message; bundled
// TOML files provide translations.
package i18n

import (
	"embed"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message is an alias for i18n.Message so callers don't import go-i18n directly
type Message = i18n.Message

type translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

var (
	mu      sync.RWMutex
	current *translator
)

// Init loads the bundled translations and selects locale. An empty locale
// means English.
func Init(locale string) error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		data, err := localeFS.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return err
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return err
		}
	}

	tag := language.English
	if locale != "" {
		tag, err = language.Parse(locale)
		if err != nil {
			return err
		}
	}

	mu.Lock()
	defer mu.Unlock()
	current = &translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}
	return nil
}

// Language returns the active language, English before Init
func Language() language.Tag {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return language.English
	}
	return current.tag
}

// Available lists the languages with bundled translations
func Available() []language.Tag {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return []language.Tag{language.English}
	}
	return current.bundle.LanguageTags()
}

// Localize renders message in the active language. It falls back to the
// message's own text when no translation exists or Init was never called.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}

	mu.RLock()
	t := current
	mu.RUnlock()

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   templateData,
	}

	if t == nil {
		t = englishOnly()
	}
	msg, err := t.localizer.Localize(config)
	if err != nil && msg == "" {
		return message.Other
	}
	return msg
}

var (
	englishOnce sync.Once
	english     *translator
)

// englishOnly renders default messages before Init has run
func englishOnly() *translator {
	englishOnce.Do(func() {
		bundle := i18n.NewBundle(language.English)
		english = &translator{
			bundle:    bundle,
			localizer: i18n.NewLocalizer(bundle, language.English.String()),
			tag:       language.English,
		}
	})
	return english
}

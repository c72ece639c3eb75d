package utils

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/*.json
var translationFS embed.FS

var bundle *i18n.Bundle

func init() {
	bundle = i18n.NewBundle(language.Turkish)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, file := range []string{"translations/tr.json", "translations/en.json"} {
		if _, err := bundle.LoadMessageFileFS(translationFS, file); err != nil {
			panic(fmt.Sprintf("fail to load translation file %s: %s", file, err))
		}
	}
}

// NewLocalizer returns a localizer preferring the given languages,
// falling back to Turkish.
func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// LocalizeCategory resolves the display name of a rating category.
func LocalizeCategory(lang, categoryID string) (string, error) {
	localizer := NewLocalizer(lang)
	return localizer.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("categories.%s.name", categoryID),
	})
}

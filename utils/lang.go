package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// SupportedLanguages are the languages notification messages are written in
var SupportedLanguages = []string{"en", "bn"}

func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, lang := range SupportedLanguages {
		bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), lang+".yaml"))
	}
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang, "en")
}

// Localize renders a message in the given language. It falls back to the
// message id when the bundle has no such message.
func Localize(lang, messageID string, data map[string]interface{}) string {
	if bundle == nil {
		return messageID
	}

	msg, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

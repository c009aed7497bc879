package utils

import (
	"path"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// InitI18NBundle loads the message files from the configured directory.
// Message lookups fall back to in-code English defaults, so running
// without message files is fine.
func InitI18NBundle() {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	b.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "en.yaml"))
	bundle = b
}

func NewLocalizer(lang string) *i18n.Localizer {
	bundleOnce.Do(func() {
		if bundle == nil {
			bundle = i18n.NewBundle(language.English)
		}
	})
	return i18n.NewLocalizer(bundle, lang)
}

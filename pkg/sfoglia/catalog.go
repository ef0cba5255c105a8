package sfoglia

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Catalog resolves localized, templated message strings from TOML bundles,
// typically before handing them to LoadText. It wraps a go-i18n bundle with
// the TOML format registered.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// NewCatalog creates a catalog whose fallback language is defaultLang.
func NewCatalog(defaultLang language.Tag) *Catalog {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, defaultLang.String()),
	}
}

// LoadMessageFile loads a TOML message file such as "active.it.toml".
func (c *Catalog) LoadMessageFile(path string) error {
	_, err := c.bundle.LoadMessageFile(path)
	return err
}

// LoadMessageBytes loads TOML message data; path supplies the language tag
// and format, the same way LoadMessageFile infers them from the filename.
func (c *Catalog) LoadMessageBytes(data []byte, path string) error {
	_, err := c.bundle.ParseMessageFileBytes(data, path)
	return err
}

// SetLocale switches the preferred languages, in priority order.
func (c *Catalog) SetLocale(langs ...string) {
	c.localizer = i18n.NewLocalizer(c.bundle, langs...)
}

// Resolve returns the localized message for messageID, executing its
// template against data (nil when the message takes no arguments).
func (c *Catalog) Resolve(messageID string, data map[string]any) (string, error) {
	return c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
}

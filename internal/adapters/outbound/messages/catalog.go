package messages

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/i18nverify/i18nverify/internal/domain"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ domain.Translator = (*Catalog)(nil)

// catalogFiles lists the embedded bundles, default language first.
var catalogFiles = []string{"active.zh-CN.toml", "active.en.toml"}

// Catalog renders report messages in one language, falling back to the
// default language and finally to the message ID.
type Catalog struct {
	localizer *i18n.Localizer
	lang      language.Tag
}

// New builds a Catalog for lang. An unparseable lang selects the default.
func New(lang string) (*Catalog, error) {
	def := language.MustParse(domain.DefaultLang)
	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range catalogFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = def
	}

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, tag.String(), def.String()),
		lang:      tag,
	}, nil
}

// Lang returns the requested language tag.
func (c *Catalog) Lang() language.Tag { return c.lang }

// T renders the message identified by id with data.
func (c *Catalog) T(id string, data map[string]any) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	// A message found only in the default language comes back with a
	// not-found error alongside the fallback text.
	if err != nil && msg == "" {
		return id
	}
	return msg
}

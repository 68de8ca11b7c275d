// Package i18n localizes route titles and shell text.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/BrandonKowalski/lazysplit/pkg/lazysplit/router"
)

//go:embed locales/*.toml
var locales embed.FS

// Supported lists the bundled languages, default first.
var Supported = []language.Tag{language.English, language.Spanish}

// Translator resolves message ids for one language, falling back to English.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	tag       language.Tag
}

// New creates a translator for lang, a BCP 47 tag such as "en" or "es-MX".
// An empty lang means English.
func New(lang string) (*Translator, error) {
	tag := language.English
	if strings.TrimSpace(lang) != "" {
		t, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("i18n: language %q: %w", lang, err)
		}
		tag = t
	}

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, "locales/"+f.Name()); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", f.Name(), err)
		}
	}

	matched, _, _ := language.NewMatcher(Supported).Match(tag)
	base, _ := matched.Base()
	tag, _ = language.Compose(base)

	return &Translator{
		bundle:    bundle,
		localizer: goi18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// Language returns the matched bundled language.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// LanguageName returns the language's name in itself, e.g. "español".
func (t *Translator) LanguageName() string {
	return display.Self.Name(t.tag)
}

// Message localizes id. data fills template fields. When id is not a known
// message it is returned as is, so plain text can stand in for a message id.
func (t *Translator) Message(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		var notFound *goi18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			return id
		}
		return msg
	}
	return msg
}

// Has reports whether id is a bundled message.
func (t *Translator) Has(id string) bool {
	_, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	return err == nil
}

// Title returns the localized title of r. Routes whose title message is
// missing fall back to the route itself.
func (t *Translator) Title(spec router.RouteSpec, r router.Route) string {
	if spec.Title == "" || (!t.Has(spec.Title) && strings.HasPrefix(spec.Title, "route_")) {
		return r.String()
	}
	return t.Message(spec.Title, map[string]any{"Payload": r.Payload})
}

// Body returns the demo body text of r, or "" when there is none.
func (t *Translator) Body(r router.Route) string {
	id := "body_" + string(r.ID)
	if !t.Has(id) {
		return ""
	}
	return t.Message(id, map[string]any{"Payload": r.Payload})
}

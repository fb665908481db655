// Package locale supplies the tip box captions for the configured language.
// Catalogs for English, Spanish, German and French are embedded; more can be
// added from TOML message files at runtime.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFiles embed.FS

const (
	msgExit     = "exit"
	msgNext     = "next"
	msgBack     = "back"
	msgFinish   = "finish"
	msgProgress = "progress"
)

// Catalog resolves captions against the loaded message files. English is the
// fallback for any language or message that is missing.
type Catalog struct {
	bundle *i18n.Bundle
}

// New creates a catalog holding the embedded message files.
func New() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(messageFiles, "messages")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded messages: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(messageFiles, path.Join("messages", e.Name())); err != nil {
			return nil, fmt.Errorf("failed to load embedded messages %s: %w", e.Name(), err)
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// MustNew is like New but panics on error. The embedded files are fixed at
// build time so an error here is a packaging mistake.
func MustNew() *Catalog {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

// AddMessages loads a TOML message file. The language comes from the file
// name, e.g. "active.pt-BR.toml".
func (c *Catalog) AddMessages(name string, data []byte) error {
	if _, err := c.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("failed to parse messages %s: %w", name, err)
	}
	return nil
}

// Languages lists the languages with a message file.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Match returns the loaded language that best serves locale. Unparseable or
// unsupported locales resolve to English.
func (c *Catalog) Match(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}

	matcher := language.NewMatcher(c.bundle.LanguageTags())
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return c.bundle.LanguageTags()[index]
}

// Labels returns the captions for locale.
func (c *Catalog) Labels(locale string) config.Labels {
	loc := c.localizer(locale)
	return config.Labels{
		Exit:   localize(loc, msgExit, config.EnglishLabels.Exit),
		Next:   localize(loc, msgNext, config.EnglishLabels.Next),
		Back:   localize(loc, msgBack, config.EnglishLabels.Back),
		Finish: localize(loc, msgFinish, config.EnglishLabels.Finish),
	}
}

// Resolve returns the captions a configuration asks for. Labels set on the
// configuration win; empty ones are localized with cfg.Locale.
func (c *Catalog) Resolve(cfg config.Configuration) config.Labels {
	return cfg.Labels(c.Labels(cfg.Locale))
}

// Progress formats the "current of total" counter for locale. current is
// zero based.
func (c *Catalog) Progress(locale string, current, total int) string {
	s, err := c.localizer(locale).Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: msgProgress, Other: "{{.Current}} of {{.Total}}"},
		TemplateData: map[string]int{
			"Current": current + 1,
			"Total":   total,
		},
	})
	if err != nil {
		return fmt.Sprintf("%d of %d", current+1, total)
	}
	return s
}

func (c *Catalog) localizer(locale string) *i18n.Localizer {
	return i18n.NewLocalizer(c.bundle, c.Match(locale).String())
}

func localize(loc *i18n.Localizer, id, fallback string) string {
	s, err := loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return s
}

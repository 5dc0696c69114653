// Package i18n holds the embedded string catalogs and the concept explainer
// for every supported language.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"github.com/alexanderramin/triad/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml locales/*.md
var localeFS embed.FS

// Catalog maps each language to its key/value strings.
type Catalog struct {
	entries map[domain.Language]map[string]string
}

// Load parses every embedded locale file.
func Load() (*Catalog, error) {
	c := &Catalog{entries: make(map[domain.Language]map[string]string)}
	for lang := range domain.ValidLanguages {
		data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.yaml", lang))
		if err != nil {
			return nil, fmt.Errorf("reading %s catalog: %w", lang, err)
		}
		m := make(map[string]string)
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing %s catalog: %w", lang, err)
		}
		c.entries[lang] = m
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the embedded catalog, parsed once.
func Default() *Catalog {
	return defaultCatalog()
}

// Translator returns the lookup function for lang. Unsupported languages get
// English.
func (c *Catalog) Translator(lang domain.Language) Translator {
	if !domain.ValidLanguages[lang] {
		lang = domain.LanguageEnglish
	}
	return Translator{lang: lang, entries: c.entries[lang]}
}

// Keys lists the keys defined for lang, sorted.
func (c *Catalog) Keys(lang domain.Language) []string {
	keys := make([]string, 0, len(c.entries[lang]))
	for k := range c.entries[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Translator resolves keys for one language.
type Translator struct {
	lang    domain.Language
	entries map[string]string
}

// T returns the string for key, or the key itself when it is missing.
func (t Translator) T(key string) string {
	if v, ok := t.entries[key]; ok {
		return v
	}
	return key
}

func (t Translator) Language() domain.Language {
	return t.lang
}

// For is shorthand for Default().Translator(lang).
func For(lang domain.Language) Translator {
	return Default().Translator(lang)
}

// Concept returns the markdown explainer for lang.
func Concept(lang domain.Language) string {
	if !domain.ValidLanguages[lang] {
		lang = domain.LanguageEnglish
	}
	data, err := localeFS.ReadFile(fmt.Sprintf("locales/concept.%s.md", lang))
	if err != nil {
		return ""
	}
	return string(data)
}

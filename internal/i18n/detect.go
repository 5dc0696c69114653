package i18n

import (
	"strings"

	"github.com/alexanderramin/triad/internal/domain"
	"golang.org/x/text/language"
)

var supported = []language.Tag{language.English, language.Czech}

var matcher = language.NewMatcher(supported)

// Detect maps a POSIX locale ("cs_CZ.UTF-8") or BCP 47 tag ("cs-CZ") onto a
// supported language. Unknown or empty values give English.
func Detect(value string) domain.Language {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	value = strings.ReplaceAll(value, "_", "-")
	if value == "" || value == "C" || value == "POSIX" {
		return domain.LanguageEnglish
	}

	tag, err := language.Parse(value)
	if err != nil {
		return domain.LanguageEnglish
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return domain.LanguageEnglish
	}
	if supported[idx] == language.Czech {
		return domain.LanguageCzech
	}
	return domain.LanguageEnglish
}

// DetectEnv returns the language of the first non-empty value, typically
// LC_ALL then LANG.
func DetectEnv(values ...string) domain.Language {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return Detect(v)
		}
	}
	return domain.LanguageEnglish
}

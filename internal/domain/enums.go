package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFactor is returned when a factor name does not match any side of
// the triangle.
var ErrUnknownFactor = errors.New("unknown factor")

type Factor string

const (
	FactorTime    Factor = "time"
	FactorBudget  Factor = "budget"
	FactorQuality Factor = "quality"
)

// Factors lists the triangle sides in their canonical order.
var Factors = []Factor{FactorTime, FactorBudget, FactorQuality}

// ParseFactor accepts a factor name in any letter case.
func ParseFactor(s string) (Factor, error) {
	switch Factor(strings.ToLower(strings.TrimSpace(s))) {
	case FactorTime:
		return FactorTime, nil
	case FactorBudget:
		return FactorBudget, nil
	case FactorQuality:
		return FactorQuality, nil
	}
	return "", fmt.Errorf("%w: %q (want time, budget or quality)", ErrUnknownFactor, s)
}

// Others returns the two factors that are not f, in canonical order.
func (f Factor) Others() []Factor {
	out := make([]Factor, 0, 2)
	for _, o := range Factors {
		if o != f {
			out = append(out, o)
		}
	}
	return out
}

type Category string

const (
	CategoryUnicorn                  Category = "unicorn"
	CategoryHighlyRealistic          Category = "highly_realistic"
	CategoryRealisticWithCompromises Category = "realistic_with_compromises"
	CategoryProblematic              Category = "problematic"
	CategoryUnrealistic              Category = "unrealistic"
)

type Trend string

const (
	TrendNone   Trend = ""
	TrendSteady Trend = "steady"
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
)

type Intensity string

const (
	IntensityMinimal  Intensity = "minimal"
	IntensityLow      Intensity = "low"
	IntensityStandard Intensity = "standard"
	IntensityHigh     Intensity = "high"
	IntensityMaximum  Intensity = "maximum"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageCzech   Language = "cs"
)

// Languages lists the supported languages in display order.
var Languages = []Language{LanguageEnglish, LanguageCzech}

// ValidLanguages is the canonical set of accepted language codes.
var ValidLanguages = map[Language]bool{
	LanguageEnglish: true,
	LanguageCzech:   true,
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Themes lists the themes in display order.
var Themes = []Theme{ThemeLight, ThemeDark, ThemeSystem}

// ValidThemes is the canonical set of accepted theme names.
var ValidThemes = map[Theme]bool{
	ThemeLight:  true,
	ThemeDark:   true,
	ThemeSystem: true,
}

var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrUnknownTheme    = errors.New("unknown theme")
)

// ParseLanguage accepts en or cs in any letter case.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !ValidLanguages[l] {
		return "", fmt.Errorf("%w: %q (want en or cs)", ErrUnknownLanguage, s)
	}
	return l, nil
}

// ParseTheme accepts light, dark or system in any letter case.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !ValidThemes[t] {
		return "", fmt.Errorf("%w: %q (want light, dark or system)", ErrUnknownTheme, s)
	}
	return t, nil
}

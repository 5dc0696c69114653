package domain

// Preferences are the locally stored presentation settings. They never carry
// triangle state.
type Preferences struct {
	Language Language
	Theme    Theme
}

// DefaultPreferences returns English with the system theme.
func DefaultPreferences() Preferences {
	return Preferences{Language: LanguageEnglish, Theme: ThemeSystem}
}

// WithDefaults replaces empty or unknown values with the ones from def.
func (p Preferences) WithDefaults(def Preferences) Preferences {
	if !ValidLanguages[p.Language] {
		p.Language = def.Language
	}
	if !ValidThemes[p.Theme] {
		p.Theme = def.Theme
	}
	return p
}

// Sanitize replaces unknown values with the package defaults.
func (p Preferences) Sanitize() Preferences {
	return p.WithDefaults(DefaultPreferences())
}

package domain

// PresetLocales seeds the announcer's language list before the catalog has
// been consulted.
var PresetLocales = []Locale{
	{Code: "en-US", DisplayName: "English (United States)"},
	{Code: "es-MX", DisplayName: "Spanish (Mexico)"},
	{Code: "fr-FR", DisplayName: "French (France)"},
	{Code: "zh-CN", DisplayName: "Chinese (Mandarin, Simplified)"},
}

// PresetPhrases are ready-made announcements.
var PresetPhrases = []string{
	"This is the final call for flight AA123 to Buenos Aires",
	"Flight UA456 to Tokyo is now boarding at gate 12",
	"Please keep your belongings with you at all times",
	"The departure of flight BA789 to London has been delayed",
}

// PresetSettings builds the default ordered language settings, one per
// preset locale, voices unresolved.
func PresetSettings() []LanguageSetting {
	settings := make([]LanguageSetting, 0, len(PresetLocales))
	for _, locale := range PresetLocales {
		settings = append(settings, LanguageSetting{Locale: locale})
	}
	return settings
}

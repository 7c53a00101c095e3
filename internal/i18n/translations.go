package i18n

import "fmt"

// Translations contains all text strings shown by the CLI
type Translations struct {
	// Station listing
	StationsFound   string
	NoStationsFound string
	Plugs           string
	Power           string
	Navigate        string
	KmAway          string

	// Status labels
	StatusActive   string
	StatusInactive string

	// Nearby search
	LocationFound  string
	SearchRadius   string
	LocationNeeded string

	// Errors
	LoadError string
}

// GetTranslations returns translations for the specified language
func GetTranslations(lang string) Translations {
	switch lang {
	case "en", "english":
		return GetEnglishTranslations()
	default:
		return GetGermanTranslations()
	}
}

// Status returns the label for a station's operational status.
func (t Translations) Status(active bool) string {
	if active {
		return t.StatusActive
	}
	return t.StatusInactive
}

// Count formats the result count line.
func (t Translations) Count(n int) string {
	if n == 0 {
		return t.NoStationsFound
	}
	return fmt.Sprintf(t.StationsFound, n)
}

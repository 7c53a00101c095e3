package i18n

// GetEnglishTranslations returns all English text strings
func GetEnglishTranslations() Translations {
	return Translations{
		StationsFound:   "Found %d charging stations",
		NoStationsFound: "No charging stations found",
		Plugs:           "Plugs",
		Power:           "Power",
		Navigate:        "Start navigation",
		KmAway:          "km away",

		StatusActive:   "Operational",
		StatusInactive: "Out of service",

		LocationFound:  "Location found:",
		SearchRadius:   "Search radius:",
		LocationNeeded: "location or latitude and longitude are required",

		LoadError: "Error loading charging stations. Please try again later.",
	}
}

package i18n

// GetGermanTranslations returns all German text strings
func GetGermanTranslations() Translations {
	return Translations{
		StationsFound:   "%d Ladestationen gefunden",
		NoStationsFound: "Keine Ladestationen gefunden",
		Plugs:           "Stecker",
		Power:           "Leistung",
		Navigate:        "Navigation starten",
		KmAway:          "km entfernt",

		StatusActive:   "In Betrieb",
		StatusInactive: "Außer Betrieb",

		LocationFound:  "Standort gefunden:",
		SearchRadius:   "Suchradius:",
		LocationNeeded: "Ort oder Breiten- und Längengrad erforderlich",

		LoadError: "Fehler beim Laden der Ladestationen. Bitte versuchen Sie es später erneut.",
	}
}

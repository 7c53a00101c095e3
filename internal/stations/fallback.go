package stations

// sampleStations is returned whenever Overpass data is unusable.
var sampleStations = []Station{
	{
		ID:                "1",
		Name:              "WSW Ladestation Hauptbahnhof",
		Address:           "Döppersberg 1, 42103 Wuppertal",
		Lat:               51.2565,
		Lon:               7.1496,
		ConnectionType:    AC,
		Plugs:             4,
		OperationalStatus: StatusActive,
		PowerOutput:       "22 kW",
	},
	{
		ID:                "2",
		Name:              "WSW Schnellladestation Elberfeld",
		Address:           "Neumarkt 10, 42103 Wuppertal",
		Lat:               51.2599,
		Lon:               7.1465,
		ConnectionType:    DC,
		Plugs:             2,
		OperationalStatus: StatusActive,
		PowerOutput:       "50 kW",
	},
	{
		ID:                "3",
		Name:              "WSW Ladestation Barmen",
		Address:           "Alter Markt, 42275 Wuppertal",
		Lat:               51.2671,
		Lon:               7.1932,
		ConnectionType:    AC,
		Plugs:             2,
		OperationalStatus: StatusActive,
		PowerOutput:       "11 kW",
	},
	{
		ID:                "4",
		Name:              "WSW Ladestation Zoo",
		Address:           "Hubertusallee 30, 42117 Wuppertal",
		Lat:               51.2443,
		Lon:               7.1066,
		ConnectionType:    AC,
		Plugs:             4,
		OperationalStatus: StatusActive,
		PowerOutput:       "22 kW",
	},
	{
		ID:                "5",
		Name:              "WSW Schnellladestation Schwebebahn Depot",
		Address:           "Oberbarmer Bahnhof, 42277 Wuppertal",
		Lat:               51.2723,
		Lon:               7.2218,
		ConnectionType:    DC,
		Plugs:             2,
		OperationalStatus: StatusActive,
		PowerOutput:       "150 kW",
	},
}

// Fallback returns a fresh copy of the built-in sample stations.
func Fallback() []Station {
	out := make([]Station, len(sampleStations))
	copy(out, sampleStations)
	return out
}

package main

import (
	"errors"
	"fmt"

	"github.com/rubiojr/wswcharge/internal/geocode"
	"github.com/rubiojr/wswcharge/internal/i18n"
	"github.com/rubiojr/wswcharge/internal/stations"
	"github.com/urfave/cli/v2"
)

const (
	defaultRadiusKm = 5.0
	metersPerKm     = 1000.0
)

func nearbyCommand() *cli.Command {
	return &cli.Command{
		Name:  "nearby",
		Usage: "List charging stations close to a place, closest first",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "location",
				Usage: "Place to search around",
			},
			&cli.Float64Flag{
				Name:  "lat",
				Usage: "Latitude of the location",
			},
			&cli.Float64Flag{
				Name:  "long",
				Usage: "Longitude of the location",
			},
			&cli.Float64Flag{
				Name:    "radius",
				Aliases: []string{"r"},
				Usage:   "Search radius in kilometers",
				Value:   defaultRadiusKm,
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Connection type (AC, DC)",
			},
		},
		Action: nearbyAction,
	}
}

func nearbyAction(c *cli.Context) error {
	ct, err := stations.ParseConnectionType(c.String("type"))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(c)
	tr := i18n.GetTranslations(cfg.Language)

	lat, lng := stations.CityCenter.Lat, stations.CityCenter.Lon
	switch {
	case c.String("location") != "":
		g := geocode.New(cfg.Nominatim, cfg.GeocodeRate, logger)
		place, err := g.Lookup(c.Context, c.String("location"))
		if err != nil {
			return err
		}
		fmt.Println(tr.LocationFound, place.Name)
		lat, lng = place.Lat, place.Lon
	case c.IsSet("lat") != c.IsSet("long"):
		return errors.New(tr.LocationNeeded)
	case c.IsSet("lat"):
		lat, lng = c.Float64("lat"), c.Float64("long")
	}

	s, err := loadStations(c, cfg, logger, tr)
	if err != nil {
		return err
	}
	s.ApplyFilter(stations.Filter{ConnectionType: ct})

	radius := c.Float64("radius")
	fmt.Printf("%s %g km\n\n", tr.SearchRadius, radius)

	nearby := stations.Nearby(s.Stations(), lat, lng, radius*metersPerKm)
	for i, n := range nearby {
		printStation(i, n.Station, tr)
		fmt.Printf("   %.2f %s\n\n", n.Distance/metersPerKm, tr.KmAway)
	}
	fmt.Println(tr.Count(len(nearby)))
	return nil
}

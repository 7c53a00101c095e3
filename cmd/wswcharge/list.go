package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rubiojr/wswcharge/internal/i18n"
	"github.com/rubiojr/wswcharge/internal/stations"
	"github.com/urfave/cli/v2"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List charging stations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "Match name or address (case-insensitive)",
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Connection type (AC, DC)",
			},
			&cli.StringFlag{
				Name:  "min-plugs",
				Usage: "Minimum number of plugs",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the stations as JSON",
			},
		},
		Action: listAction,
	}
}

func listAction(c *cli.Context) error {
	ct, err := stations.ParseConnectionType(c.String("type"))
	if err != nil {
		return err
	}
	filter := stations.Filter{
		SearchTerm:     c.String("search"),
		ConnectionType: ct,
		MinPlugs:       stations.ParseMinPlugs(c.String("min-plugs")),
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(c)
	tr := i18n.GetTranslations(cfg.Language)

	s, err := loadStations(c, cfg, logger, tr)
	if err != nil {
		return err
	}
	s.ApplyFilter(filter)
	list := s.Stations()

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	for i, st := range list {
		printStation(i, st, tr)
		fmt.Println()
	}
	fmt.Println(tr.Count(len(list)))
	return nil
}

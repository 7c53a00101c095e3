package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "wswcharge",
		Usage: "Find WSW electric vehicle charging stations in Wuppertal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"WSWCHARGE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "lang",
				Usage:   "Output language (de, en)",
				EnvVars: []string{"WSWCHARGE_LANG"},
			},
			&cli.StringFlag{
				Name:    "endpoint",
				Usage:   "Overpass API interpreter URL",
				EnvVars: []string{"WSWCHARGE_ENDPOINT"},
			},
			&cli.BoolFlag{
				Name:    "fallback-on-error",
				Usage:   "Show the built-in station list when the Overpass API is unreachable",
				EnvVars: []string{"WSWCHARGE_FALLBACK_ON_ERROR"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log to stderr",
			},
		},
		Commands: []*cli.Command{
			listCommand(),
			nearbyCommand(),
			queryCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

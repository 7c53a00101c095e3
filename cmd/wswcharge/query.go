package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:   "query",
		Usage:  "Print the Overpass QL query without sending it",
		Action: queryAction,
	}
}

func queryAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	fmt.Print(newClient(cfg, newLogger(c)).Query())
	return nil
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/rubiojr/wswcharge/internal/config"
	"github.com/rubiojr/wswcharge/internal/i18n"
	"github.com/rubiojr/wswcharge/internal/stations"
	"github.com/rubiojr/wswcharge/internal/store"
	"github.com/rubiojr/wswcharge/pkg/api"
	"github.com/urfave/cli/v2"
)

// loadConfig reads the configuration file and applies global flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("lang") {
		cfg.Language = c.String("lang")
	}
	if c.IsSet("endpoint") {
		cfg.Endpoint = c.String("endpoint")
	}
	if c.IsSet("fallback-on-error") {
		cfg.FallbackOnError = c.Bool("fallback-on-error")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(c *cli.Context) *slog.Logger {
	if !c.Bool("verbose") {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newClient(cfg *config.Config, logger *slog.Logger) *api.OverpassAPI {
	opts := append(cfg.OverpassOptions(), api.WithLogger(logger))
	return api.NewOverpassAPI(opts...)
}

// loadStations runs the one-shot store load and returns the loaded store.
// A load error is returned only when there is nothing to show.
func loadStations(c *cli.Context, cfg *config.Config, logger *slog.Logger, tr i18n.Translations) (*store.Store, error) {
	s := store.New(newClient(cfg, logger), logger,
		store.WithNormalizer(cfg.Normalizer()),
		store.WithFallbackOnError(cfg.FallbackOnError),
		store.WithErrorMessage(tr.LoadError),
	)
	if err := s.Wait(c.Context); err != nil {
		return nil, fmt.Errorf("error loading stations: %w", err)
	}

	state := s.State()
	if state.Error != "" {
		if len(state.Stations) == 0 {
			return nil, errors.New(state.Error)
		}
		fmt.Fprintln(os.Stderr, state.Error)
	}
	return s, nil
}

func printStation(i int, st stations.Station, tr i18n.Translations) {
	fmt.Printf("%d. %s (%s)\n", i+1, st.Name, st.Address)
	fmt.Printf("   %s: %s | %s: %d | %s: %s\n",
		st.ConnectionType, tr.Status(st.OperationalStatus != stations.StatusInactive),
		tr.Plugs, st.Plugs, tr.Power, st.PowerOutput)
	fmt.Printf("   %s: %s\n", tr.Navigate, st.NavigationURL())
}

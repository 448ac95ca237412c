// energy-viewer serves an interactive Holt-Winters view of household energy data.
//
// Usage:
//
//	energy-viewer serve --addr :8080 --backend-url http://localhost:8081 --env prod
//	energy-viewer plot --input resources/holt_winters_response.json --output energy.html
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"energy-viewer/chart"
	"energy-viewer/config"
	"energy-viewer/di"
	"energy-viewer/util"
)

func main() {
	defaults := config.Default()

	app := &cli.App{
		Name:  "energy-viewer",
		Usage: "Plot energy consumption against its Holt-Winters smoothing",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"ENERGY_VIEWER_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "unit-preset",
				Value:   defaults.UnitPreset,
				Usage:   "Chart preset (kwh: category axis in kwH, wh: daily time axis in wH)",
				EnvVars: []string{"ENERGY_VIEWER_UNIT_PRESET"},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := log.ParseLevel(c.String("log-level"))
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
			}
			log.SetLevel(level)
			return nil
		},

		Commands: []*cli.Command{
			serveCommand(defaults),
			plotCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serveCommand(defaults config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the energy view HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   defaults.Addr,
				Usage:   "HTTP listen address",
				EnvVars: []string{"ENERGY_VIEWER_ADDR"},
			},
			&cli.StringFlag{
				Name:    "env",
				Value:   defaults.Env,
				Usage:   "Environment (dev uses fixture data, prod calls the smoothing backend)",
				EnvVars: []string{"ENERGY_VIEWER_ENV"},
			},
			&cli.StringFlag{
				Name:    "backend-url",
				Value:   defaults.BackendURL,
				Usage:   "Base URL of the smoothing backend",
				EnvVars: []string{"SMOOTHING_BACKEND_URL"},
			},
			&cli.StringFlag{
				Name:    "redis-addr",
				Value:   defaults.RedisAddr,
				Usage:   "Redis address",
				EnvVars: []string{"REDIS_ADDR"},
			},
			&cli.StringFlag{
				Name:    "redis-password",
				Value:   defaults.RedisPassword,
				Usage:   "Redis password",
				EnvVars: []string{"REDIS_PASSWORD"},
			},
			&cli.IntFlag{
				Name:    "redis-db",
				Value:   defaults.RedisDB,
				Usage:   "Redis database",
				EnvVars: []string{"REDIS_DB"},
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "Keep the response cache in process instead of Redis",
			},
			&cli.IntFlag{
				Name:    "refresh-minutes",
				Value:   defaults.RefreshMinutes,
				Usage:   "Refetch energy data every N minutes (0 disables)",
				EnvVars: []string{"ENERGY_VIEWER_REFRESH_MINUTES"},
			},
			&cli.StringFlag{
				Name:  "cpu-profile",
				Usage: "Write a CPU profile into this directory",
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	if dir := c.String("cpu-profile"); dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook).Stop()
	}

	cfg := config.Config{
		Env:            c.String("env"),
		Addr:           c.String("addr"),
		BackendURL:     c.String("backend-url"),
		RedisAddr:      c.String("redis-addr"),
		RedisPassword:  c.String("redis-password"),
		RedisDB:        c.Int("redis-db"),
		UnitPreset:     c.String("unit-preset"),
		RefreshMinutes: c.Int("refresh-minutes"),
		UseCache:       !c.Bool("no-cache"),
	}
	container := di.NewContainer(cfg)

	if cfg.RefreshMinutes > 0 {
		log.Println("[Main] Refreshing energy data")
		ctx, cancel := context.WithTimeout(context.Background(), config.SMOOTHING_HTTP_TIMEOUT)
		if err := container.EnergyDataRefresherService.RefreshEnergyData(ctx); err != nil {
			log.WithError(err).Warn("[Main] Initial energy data refresh failed")
		}
		cancel()
		container.EnergyDataRefresherService.StartPeriodicJob(time.Duration(cfg.RefreshMinutes) * time.Minute)
	}
	container.ViewService.StartSessionSweeper(config.SESSION_SWEEP_INTERVAL, config.SESSION_IDLE_TTL)

	container.EnergyViewHttpServer.Start()
	return nil
}

func plotCommand() *cli.Command {
	return &cli.Command{
		Name:  "plot",
		Usage: "Render a saved /holtWinters response into an HTML chart",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   config.GetResourcePath(config.HOLT_WINTERS_RESPONSE_RESOURCE),
				Usage:   "Path to the response JSON",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "energy_chart.html",
				Usage:   "Path of the HTML file to write",
			},
		},
		Action: func(c *cli.Context) error {
			payload, err := util.ReadSeriesPayloadFromJSON(c.String("input"))
			if err != nil {
				return err
			}
			util.PrintSeriesPayloadPartially(payload)
			return util.PlotSeriesPayload(payload, chart.OptionsForPreset(c.String("unit-preset")), c.String("output"))
		},
	}
}

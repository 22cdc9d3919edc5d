// Copyright 2026 SieveLabs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "assessrec",
		Usage: "Assessment recommendation engine for hiring queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the recommendation HTTP server",
				Action: serveCommand,
			},
			{
				Name:   "scrape",
				Usage:  "Scrape the assessment catalog to a JSON file",
				Action: scrapeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output JSON file for the scraped catalog",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "skip-details",
						Usage: "Skip per-product detail pages (faster, no descriptions)",
					},
				},
			},
			{
				Name:   "index",
				Usage:  "Embed and index a scraped catalog JSON file",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "in",
						Aliases: []string{"i"},
						Usage:   "Catalog JSON file produced by the scrape command",
					},
					&cli.BoolFlag{
						Name:  "reindex",
						Usage: "Re-embed everything already in the catalog store",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of assessments to embed in each batch",
						Value: 32,
					},
				},
			},
			{
				Name:      "query",
				Usage:     "Run a one-shot recommendation against the local catalog",
				ArgsUsage: "<free-text query>",
				Action:    queryCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum number of results",
						Value:   5,
					},
				},
			},
			{
				Name:   "eval",
				Usage:  "Run a CSV of queries against a recommendation endpoint",
				Action: evalCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Aliases:  []string{"i"},
						Usage:    "Input CSV with a Query column (Assessment_url optional for recall)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output CSV of (Query, Assessment_url) rows",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "server",
						Usage: "Base URL of a running assessrec server",
						Value: "http://localhost:8080",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Results requested per query",
						Value:   10,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

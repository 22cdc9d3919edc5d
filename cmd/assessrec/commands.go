package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/sievelabs/assessrec"
	"github.com/sievelabs/assessrec/ai"
	"github.com/sievelabs/assessrec/config"
	"github.com/sievelabs/assessrec/core"
	"github.com/sievelabs/assessrec/ingestion"
	"github.com/sievelabs/assessrec/scraper"
	"github.com/sievelabs/assessrec/server"
)

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

func newEngine(cfg *config.Config) (*assessrec.Engine, error) {
	aiCfg := ai.NewConfig(
		ai.WithHost(cfg.AI.Host),
		ai.WithEmbeddingModel(cfg.AI.EmbeddingModel),
		ai.WithClassifierModel(cfg.AI.ClassifierModel),
		ai.WithClassifierAttempts(cfg.AI.ClassifierAttempts),
		ai.WithClassifierRetryDelay(cfg.AI.ClassifierRetryDelay),
	)
	if err := aiCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []assessrec.EngineOption{assessrec.WithAIConfig(aiCfg)}
	if cfg.Storage.InMemory {
		opts = append(opts, assessrec.WithInMemoryStorage())
	}

	engine, err := assessrec.NewEngine(cfg.Storage.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening catalog store: %w", err)
	}
	return engine, nil
}

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	recommender, err := engine.NewRecommender()
	if err != nil {
		return fmt.Errorf("building recommender: %w", err)
	}

	srv, err := server.NewServer(recommender,
		server.WithAddr(cfg.Server.Addr),
		server.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
	)
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

func scrapeCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	s, err := scraper.NewScraper(cfg.Scraper.BaseURL, cfg.Scraper.CatalogPath,
		scraper.WithPageSize(cfg.Scraper.PageSize),
		scraper.WithMaxRetries(cfg.Scraper.MaxRetries),
	)
	if err != nil {
		return fmt.Errorf("building scraper: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	assessments, err := s.ScrapeCatalog(ctx)
	if err != nil {
		return fmt.Errorf("scraping catalog: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Scraped %d catalog entries\n", len(assessments))

	if !c.Bool("skip-details") {
		if err := s.EnrichDetails(ctx, assessments); err != nil {
			return fmt.Errorf("enriching details: %w", err)
		}
	}

	if err := writeCatalogFile(c.String("out"), assessments); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d assessments to %s\n", len(assessments), c.String("out"))
	return nil
}

func indexCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	inPath := c.String("in")
	reindex := c.Bool("reindex")
	if inPath == "" && !reindex {
		return fmt.Errorf("either --in or --reindex is required")
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	indexer, err := engine.NewIndexer(ingestion.WithBatchSize(c.Int("batch-size")))
	if err != nil {
		return fmt.Errorf("building indexer: %w", err)
	}
	defer indexer.Release()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if reindex {
		if err := indexer.ReindexCatalog(ctx); err != nil {
			return fmt.Errorf("reindexing catalog: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Reindex complete")
		return nil
	}

	assessments, err := readCatalogFile(inPath)
	if err != nil {
		return err
	}

	if err := indexer.IndexAssessments(ctx, assessments); err != nil {
		return fmt.Errorf("indexing assessments: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Indexed %d assessments\n", len(assessments))
	return nil
}

func queryCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	recommender, err := engine.NewRecommender()
	if err != nil {
		return fmt.Errorf("building recommender: %w", err)
	}

	results, err := recommender.Recommend(context.Background(), query, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	fmt.Printf("Found %d recommendations\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s (%d min) [%s]\n  %s\n",
			i+1, hit.Name, hit.Duration,
			strings.Join(core.TestTypeLabels(hit.TestTypes), ", "),
			hit.URL)
	}
	return nil
}

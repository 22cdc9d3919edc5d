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


// Package config loads configuration for the assessrec commands.
// It layers defaults, an optional YAML file and ASSESSREC_-prefixed
// environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are
// mapped onto config paths, e.g. ASSESSREC_SERVER_ADDR -> server.addr.
const EnvPrefix = "ASSESSREC_"

// Config holds all settings for the assessrec commands.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Storage StorageConfig `koanf:"storage"`
	AI      AIConfig      `koanf:"ai"`
	Scraper ScraperConfig `koanf:"scraper"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// StorageConfig configures the catalog store.
type StorageConfig struct {
	// Path is the Badger database directory.
	Path string `koanf:"path"`
	// InMemory runs the store without persistence; useful for tests
	// and one-shot evaluation runs.
	InMemory bool `koanf:"in_memory"`
}

// AIConfig configures the embedding and classification services.
type AIConfig struct {
	Host                 string        `koanf:"host"`
	EmbeddingModel       string        `koanf:"embedding_model"`
	ClassifierModel      string        `koanf:"classifier_model"`
	ClassifierAttempts   int           `koanf:"classifier_attempts"`
	ClassifierRetryDelay time.Duration `koanf:"classifier_retry_delay"`
}

// ScraperConfig configures the catalog scraper.
type ScraperConfig struct {
	BaseURL     string `koanf:"base_url"`
	CatalogPath string `koanf:"catalog_path"`
	PageSize    int    `koanf:"page_size"`
	MaxRetries  int    `koanf:"max_retries"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Path:     "data/catalog",
			InMemory: false,
		},
		AI: AIConfig{
			Host:                 "http://localhost:11434/v1",
			EmbeddingModel:       "all-minilm",
			ClassifierModel:      "llama3",
			ClassifierAttempts:   3,
			ClassifierRetryDelay: 500 * time.Millisecond,
		},
		Scraper: ScraperConfig{
			BaseURL:     "https://www.shl.com",
			CatalogPath: "/solutions/products/product-catalog/",
			PageSize:    12,
			MaxRetries:  5,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file
// and environment variables. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the commands cannot
// run with.
func (c *Config) Validate() error {
	if c.Storage.Path == "" && !c.Storage.InMemory {
		return ErrStoragePathRequired
	}
	if c.AI.Host == "" {
		return ErrAIHostRequired
	}
	if c.AI.ClassifierAttempts < 1 {
		return ErrInvalidClassifierAttempts
	}
	if c.Scraper.BaseURL == "" {
		return ErrScraperBaseURLRequired
	}
	if c.Scraper.PageSize < 1 {
		return ErrInvalidPageSize
	}
	return nil
}

// envTransform maps ASSESSREC_SERVER_ADDR to server.addr and
// ASSESSREC_AI_EMBEDDING_MODEL to ai.embedding_model: the first
// underscore separates the section, the rest is the key.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

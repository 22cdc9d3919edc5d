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


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// ClassifierHost is the base URL for the intent classification service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	ClassifierHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "all-minilm", "text-embedding-3-small"
	EmbeddingModel string

	// ClassifierModel is the model identifier to use for intent classification.
	// Example: "llama3", "gpt-4o-mini"
	ClassifierModel string

	// ClassifierAttempts is the maximum number of classification attempts
	// before the classifier gives up. Covers both malformed JSON output and
	// transient provider errors. Default: 3
	ClassifierAttempts int

	// ClassifierRetryDelay is the base delay for exponential backoff between
	// retries of transient classification failures. Default: 500ms
	ClassifierRetryDelay time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithClassifierHost sets the classifier service host URL.
func WithClassifierHost(host string) ConfigOption {
	return func(c *Config) {
		c.ClassifierHost = host
	}
}

// WithHost sets both embedding and classifier hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.ClassifierHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithClassifierModel sets the classifier model identifier.
func WithClassifierModel(model string) ConfigOption {
	return func(c *Config) {
		c.ClassifierModel = model
	}
}

// WithClassifierAttempts sets the maximum number of classification attempts.
func WithClassifierAttempts(attempts int) ConfigOption {
	return func(c *Config) {
		c.ClassifierAttempts = attempts
	}
}

// WithClassifierRetryDelay sets the base delay for classification retries.
func WithClassifierRetryDelay(delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.ClassifierRetryDelay = delay
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// By default, both embedding and classifier use the same host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:        defaultHost,
		ClassifierHost:       defaultHost,
		EmbeddingModel:       "all-minilm",
		ClassifierModel:      "llama3",
		ClassifierAttempts:   3,
		ClassifierRetryDelay: 500 * time.Millisecond,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//   cfg := NewConfig(
//       WithHost("http://localhost:11434/v1"),
//       WithEmbeddingModel("text-embedding-3-small"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/")
		c.EmbeddingHost = c.EmbeddingHost + "/v1"
	}
	if c.ClassifierHost != "" && !strings.HasSuffix(c.ClassifierHost, "/v1") {
		c.ClassifierHost = strings.TrimSuffix(c.ClassifierHost, "/")
		c.ClassifierHost = c.ClassifierHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.ClassifierHost == "" {
		return errors.New("ai config: ClassifierHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.ClassifierModel == "" {
		return errors.New("ai config: ClassifierModel is required")
	}
	if c.ClassifierAttempts < 1 {
		return errors.New("ai config: ClassifierAttempts must be at least 1")
	}
	if c.ClassifierRetryDelay <= 0 {
		return errors.New("ai config: ClassifierRetryDelay must be positive")
	}
	return nil
}

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


package openai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sievelabs/assessrec/ai"
	"github.com/sievelabs/assessrec/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// IntentClassifier implements ai.IntentClassifier using OpenAI-compatible chat APIs.
type IntentClassifier struct {
	client      llms.Model
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger
}

// intentPayload is an internal type used for JSON unmarshaling.
// It matches the structure requested from the LLM.
type intentPayload struct {
	Categories       []string `json:"categories"`
	ExplicitKeywords []string `json:"explicit_keywords"`
	Behavioral       bool     `json:"behavioral"`
	DurationMax      *int     `json:"duration_max"`
	IsEntryLevel     bool     `json:"is_entry_level"`
}

// newIntentClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newIntentClassifier(config *ai.Config) (*IntentClassifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/classification
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &IntentClassifier{
		client:      client,
		maxAttempts: config.ClassifierAttempts,
		retryDelay:  config.ClassifierRetryDelay,
		logger:      slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewIntentClassifier creates a new intent classifier using the provided configuration.
//
// Returns ai.IntentClassifier interface to enforce abstraction.
func NewIntentClassifier(config *ai.Config) (ai.IntentClassifier, error) {
	return newIntentClassifier(config)
}

// Classify interprets a query as a structured intent using an LLM.
// Malformed JSON responses are retried immediately; transient provider errors
// (rate limits, overload) are retried with exponential backoff. Any terminal
// failure is returned as an error for the caller to substitute the neutral
// intent.
func (c *IntentClassifier) Classify(ctx context.Context, query string) (core.Intent, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildIntentPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	var payload intentPayload
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			lastErr = err
			if !isRetryable(err) || attempt == c.maxAttempts {
				c.logger.Error("classification request failed", "attempt", attempt, "err", err)
				return core.Intent{}, err
			}
			c.logger.Warn("transient classification error, backing off",
				"attempt", attempt, "err", err)
			if err := sleepBackoff(ctx, c.retryDelay, attempt); err != nil {
				return core.Intent{}, err
			}
			continue
		}

		if len(response.Choices) < 1 {
			c.logger.Debug("no choices returned from model")
			lastErr = ErrEmptyResponse
			continue
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
			lastErr = err
			c.logger.Warn("error parsing classifier response",
				"attempt", attempt,
				"response", responseText,
				"err", err)
			continue
		}

		return normalizeIntent(payload), nil
	}

	c.logger.Error("failed to parse classifier response after retries", "err", lastErr)
	return core.Intent{}, lastErr
}

// normalizeIntent converts the raw LLM payload into a fully populated Intent.
// Categories outside the fixed vocabulary are dropped; keyword whitespace is
// trimmed; a missing or negative duration ceiling becomes 0 (unset).
func normalizeIntent(payload intentPayload) core.Intent {
	categories := make([]string, 0, len(payload.Categories))
	seen := make(map[string]bool, len(payload.Categories))
	for _, category := range payload.Categories {
		category = strings.ToLower(strings.TrimSpace(category))
		if category == "" || seen[category] || !ai.ValidCategory(category) {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}

	keywords := make([]string, 0, len(payload.ExplicitKeywords))
	for _, keyword := range payload.ExplicitKeywords {
		keyword = strings.TrimSpace(keyword)
		if keyword != "" {
			keywords = append(keywords, keyword)
		}
	}

	durationMax := 0
	if payload.DurationMax != nil && *payload.DurationMax > 0 {
		durationMax = *payload.DurationMax
	}

	return core.Intent{
		Categories:       categories,
		ExplicitKeywords: keywords,
		Behavioral:       payload.Behavioral,
		DurationMax:      durationMax,
		IsEntryLevel:     payload.IsEntryLevel,
	}
}

// isRetryable reports whether a provider error is worth retrying.
// Only rate-limit and overload classes qualify; everything else fails fast.
func isRetryable(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"rate limit",
		"too many requests",
		"429",
		"overloaded",
		"503",
		"unavailable",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// sleepBackoff sleeps for baseDelay * 2^(attempt-1), honoring context cancellation.
func sleepBackoff(ctx context.Context, baseDelay time.Duration, attempt int) error {
	delay := baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

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
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"github.com/sievelabs/assessrec/server"
)

// evalCommand replays a CSV of benchmark queries against a running
// recommendation endpoint and writes one (Query, Assessment_url) row per
// recommendation. When the input carries ground-truth URLs, it also
// prints Recall@K per query and the mean.
func evalCommand(c *cli.Context) error {
	queries, truth, err := readQueryCSV(c.String("in"))
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries found in %s", c.String("in"))
	}

	topK := c.Int("top-k")
	client := &http.Client{Timeout: 60 * time.Second}
	endpoint := strings.TrimRight(c.String("server"), "/") + "/v1/recommend"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	predictions := make(map[string][]string, len(queries))
	for i, query := range queries {
		fmt.Fprintf(os.Stderr, "Query [%d/%d]: %s\n", i+1, len(queries), query)
		urls, err := fetchRecommendations(ctx, client, endpoint, query, topK)
		if err != nil {
			return fmt.Errorf("query %q: %w", query, err)
		}
		predictions[query] = urls
	}

	if err := writePredictionCSV(c.String("out"), queries, predictions); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote predictions for %d queries to %s\n", len(queries), c.String("out"))

	if len(truth) > 0 {
		printRecall(queries, predictions, truth, topK)
	}
	return nil
}

func fetchRecommendations(ctx context.Context, client *http.Client, endpoint, query string, topK int) ([]string, error) {
	body, err := json.Marshal(server.RecommendRequest{Query: query, TopK: topK})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}

	var rec server.RecommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(rec.RecommendedAssessments))
	for _, a := range rec.RecommendedAssessments {
		urls = append(urls, a.URL)
	}
	return urls, nil
}

// readQueryCSV returns the unique queries in input order and, when the
// file carries an Assessment_url column, the ground-truth slugs per query.
func readQueryCSV(path string) ([]string, map[string]map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV header: %w", err)
	}

	queryCol, urlCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Query":
			queryCol = i
		case "Assessment_url":
			urlCol = i
		}
	}
	if queryCol < 0 {
		return nil, nil, fmt.Errorf("input CSV has no Query column")
	}

	var queries []string
	seen := make(map[string]bool)
	truth := make(map[string]map[string]bool)

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV rows: %w", err)
	}
	for _, row := range records {
		if queryCol >= len(row) {
			continue
		}
		query := strings.TrimSpace(row[queryCol])
		if query == "" {
			continue
		}
		if !seen[query] {
			seen[query] = true
			queries = append(queries, query)
		}
		if urlCol >= 0 && urlCol < len(row) {
			if slug := normalizeSlug(row[urlCol]); slug != "" {
				if truth[query] == nil {
					truth[query] = make(map[string]bool)
				}
				truth[query][slug] = true
			}
		}
	}
	return queries, truth, nil
}

func writePredictionCSV(path string, queries []string, predictions map[string][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Query", "Assessment_url"}); err != nil {
		return err
	}
	for _, query := range queries {
		for _, url := range predictions[query] {
			if err := w.Write([]string{query, url}); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

func printRecall(queries []string, predictions map[string][]string, truth map[string]map[string]bool, k int) {
	var sum float64
	var counted int
	for _, query := range queries {
		relevant := truth[query]
		if len(relevant) == 0 {
			continue
		}
		recall := recallAtK(predictions[query], relevant, k)
		sum += recall
		counted++
		fmt.Fprintf(os.Stderr, "Recall@%d: %.3f | %s\n", k, recall, query)
	}
	if counted > 0 {
		fmt.Fprintf(os.Stderr, "\nMean Recall@%d: %.3f over %d queries\n", k, sum/float64(counted), counted)
	}
}

func recallAtK(predicted []string, relevant map[string]bool, k int) float64 {
	if k < len(predicted) {
		predicted = predicted[:k]
	}
	hit := make(map[string]bool)
	for _, url := range predicted {
		if slug := normalizeSlug(url); relevant[slug] {
			hit[slug] = true
		}
	}
	return float64(len(hit)) / float64(len(relevant))
}

// normalizeSlug reduces a catalog URL to its trailing path segment so
// predictions and ground truth compare across hosts and trailing slashes.
func normalizeSlug(url string) string {
	url = strings.ToLower(strings.TrimSpace(url))
	url = strings.TrimRight(url, "/")
	if url == "" {
		return ""
	}
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sievelabs/assessrec/core"
)

const (
	defaultUserAgent   = "Mozilla/5.0 (AssessRec-Catalog-Scraper)"
	defaultPageSize    = 12
	defaultProductType = 1
	defaultMaxRetries  = 5
	defaultRetryBase   = 5 * time.Second
	defaultPageDelay   = 2 * time.Second
	defaultDetailDelay = 1500 * time.Millisecond
	defaultTimeout     = 30 * time.Second
)

// Scraper acquires the assessment catalog from the vendor's paged product
// table, then enriches each product from its detail page.
type Scraper struct {
	client      *http.Client
	baseURL     *url.URL
	catalogPath string
	userAgent   string
	pageSize    int
	productType int
	maxRetries  int
	retryBase   time.Duration
	pageDelay   time.Duration
	detailDelay time.Duration
	logger      *slog.Logger
}

// Option configures a Scraper.
type Option func(*Scraper) error

// WithHTTPClient sets a custom HTTP client.
// Default has a 30s timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) error {
		if client != nil {
			s.client = client
		}
		return nil
	}
}

// WithPageSize sets the catalog table page size.
// Default is 12, matching the vendor's pagination.
func WithPageSize(size int) Option {
	return func(s *Scraper) error {
		if size > 0 {
			s.pageSize = size
		}
		return nil
	}
}

// WithMaxRetries sets the per-request retry budget.
// Default is 5.
func WithMaxRetries(retries int) Option {
	return func(s *Scraper) error {
		if retries > 0 {
			s.maxRetries = retries
		}
		return nil
	}
}

// WithDelays sets the polite delay between page fetches and between detail
// fetches. Defaults: 2s pages, 1.5s details.
func WithDelays(pageDelay, detailDelay time.Duration) Option {
	return func(s *Scraper) error {
		if pageDelay >= 0 {
			s.pageDelay = pageDelay
		}
		if detailDelay >= 0 {
			s.detailDelay = detailDelay
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scraper) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewScraper creates a scraper rooted at the given base URL, e.g.
// "https://www.shl.com". The paged catalog lives under catalogPath, e.g.
// "/products/product-catalog/".
func NewScraper(baseURL, catalogPath string, opts ...Option) (*Scraper, error) {
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	s := &Scraper{
		client:      &http.Client{Timeout: defaultTimeout},
		baseURL:     parsed,
		catalogPath: catalogPath,
		userAgent:   defaultUserAgent,
		pageSize:    defaultPageSize,
		productType: defaultProductType,
		maxRetries:  defaultMaxRetries,
		retryBase:   defaultRetryBase,
		pageDelay:   defaultPageDelay,
		detailDelay: defaultDetailDelay,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ScrapeCatalog walks the paged product table until an empty page, returning
// every unique product row. Duplicate URLs across pages keep the last copy.
func (s *Scraper) ScrapeCatalog(ctx context.Context) ([]*core.Assessment, error) {
	byURL := make(map[string]*core.Assessment)
	var order []string

	for start := 1; ; start += s.pageSize {
		s.logger.Info("scraping catalog page", "start", start)

		rows, err := s.scrapePage(ctx, start)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			s.logger.Info("no more rows", "start", start)
			break
		}

		for _, row := range rows {
			if _, seen := byURL[row.URL]; !seen {
				order = append(order, row.URL)
			}
			byURL[row.URL] = row
		}
		s.logger.Info("catalog progress", "products", len(byURL))

		if err := sleepCtx(ctx, s.pageDelay); err != nil {
			return nil, err
		}
	}

	assessments := make([]*core.Assessment, 0, len(order))
	for _, u := range order {
		assessments = append(assessments, byURL[u])
	}
	return assessments, nil
}

// EnrichDetails fetches each product's detail page and fills in the
// description and duration in place. A failed detail fetch leaves the
// product bare and moves on.
func (s *Scraper) EnrichDetails(ctx context.Context, assessments []*core.Assessment) error {
	for i, assessment := range assessments {
		s.logger.Info("fetching product detail", "index", i+1, "total", len(assessments), "name", assessment.Name)

		description, duration, err := s.fetchDetail(ctx, assessment.URL)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("detail fetch failed, keeping bare record", "url", assessment.URL, "err", err)
			continue
		}

		assessment.Description = description
		assessment.Duration = duration

		if err := sleepCtx(ctx, s.detailDelay); err != nil {
			return err
		}
	}
	return nil
}

// scrapePage fetches and parses one page of the product table.
func (s *Scraper) scrapePage(ctx context.Context, start int) ([]*core.Assessment, error) {
	pageURL := *s.baseURL
	pageURL.Path = s.catalogPath
	query := url.Values{}
	query.Set("start", strconv.Itoa(start))
	query.Set("type", strconv.Itoa(s.productType))
	pageURL.RawQuery = query.Encode()

	resp, err := s.safeGet(ctx, pageURL.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return ParseCatalogPage(resp.Body, s.baseURL)
}

// fetchDetail fetches and parses one product detail page.
func (s *Scraper) fetchDetail(ctx context.Context, productURL string) (string, int, error) {
	resp, err := s.safeGet(ctx, productURL)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	return ParseDetailPage(resp.Body)
}

// safeGet fetches a URL with linear-backoff retry: 5s, 10s, 15s...
// between attempts.
func (s *Scraper) safeGet(ctx context.Context, rawURL string) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", s.userAgent)

		resp, err := s.client.Do(req)
		if err == nil && resp.StatusCode < 400 {
			return resp, nil
		}
		if err == nil {
			resp.Body.Close()
			err = fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		lastErr = err

		if attempt == s.maxRetries-1 {
			break
		}

		// Linear backoff: base, 2*base, 3*base...
		wait := time.Duration(attempt+1) * s.retryBase
		s.logger.Warn("request failed, retrying", "url", rawURL, "wait", wait, "err", err)
		if err := sleepCtx(ctx, wait); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s: %v", ErrMaxRetriesExceeded, rawURL, lastErr)
}

// sleepCtx sleeps for d unless the context is canceled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package pipeline

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lvargas/rosterscan/internal/cache"
	"github.com/lvargas/rosterscan/internal/model"
	"github.com/lvargas/rosterscan/internal/util"
	"github.com/lvargas/rosterscan/internal/worker"
)

// pdfMagic is the required prefix of a PDF payload
var pdfMagic = []byte("%PDF")

// Fetcher downloads roster PDFs. Downloads respect robots.txt and the
// per-host rate limit, and land in the layered cache so repeated
// extractions of the same document stay local.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker // nil when robots checking is off
	limiter    *worker.Limiter
	store      cache.Cache // nil when caching is off
}

// NewFetcher builds a fetcher from the configuration
func NewFetcher(cfg *model.Config) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var robots *util.RobotsChecker
	if cfg.HTTP.CheckRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewLayered(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		robots:    robots,
		limiter:   worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		store:     store,
	}
}

// Fetch retrieves the PDF at rawURL, from cache when possible
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	key := cache.Key(rawURL)

	if f.store != nil {
		if data, found := f.store.Get(key); found {
			return data, nil
		}
	}

	delay, err := f.checkRobots(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := f.limiter.WaitWithDelay(ctx, rawURL, delay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/pdf,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, fmt.Errorf("response is not a PDF (content-type %s)", resp.Header.Get("Content-Type"))
	}

	if f.store != nil {
		_ = f.store.Set(key, data, 0)
	}

	return data, nil
}

// checkRobots returns the crawl delay for rawURL, or an error when the
// host's robots.txt disallows the fetch.
func (f *Fetcher) checkRobots(ctx context.Context, rawURL string) (delay time.Duration, err error) {
	if f.robots == nil {
		return 0, nil
	}

	allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return 0, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return 0, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	return delay, nil
}

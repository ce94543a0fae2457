package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ppiankov/lacph/internal/model"
	"github.com/ppiankov/lacph/internal/util"
	"github.com/ppiankov/lacph/internal/worker"
)

// ErrDisallowed reports a release URL excluded by the site's robots.txt
var ErrDisallowed = errors.New("disallowed by robots.txt")

// Fetcher retrieves the raw HTML of one press release
type Fetcher interface {
	Fetch(ctx context.Context, prid int) ([]byte, error)
}

// RetrievalError reports a failed fetch: a transport error or a non-2xx
// status
type RetrievalError struct {
	PRID       int
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("retrieve release %d: unexpected status %d %s", e.PRID, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("retrieve release %d: %v", e.PRID, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// HTTPFetcher fetches press releases with a single GET. There is no retry:
// a failure is reported to the caller as is.
type HTTPFetcher struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxBytes   int64
	limiter    *worker.Limiter
	robots     *util.RobotsChecker
	logger     *slog.Logger
}

// NewFetcher creates an HTTPFetcher from the HTTP and rate limiting config
func NewFetcher(httpCfg model.HTTPConfig, rl model.RateLimitingConfig, logger *slog.Logger) *HTTPFetcher {
	if logger == nil {
		logger = slog.Default()
	}

	client := &http.Client{
		Timeout: httpCfg.Timeout,
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 3 {
				return fmt.Errorf("stopped after 3 redirects")
			}
			return nil
		},
	}

	f := &HTTPFetcher{
		httpClient: client,
		baseURL:    httpCfg.BaseURL,
		userAgent:  httpCfg.UserAgent,
		maxBytes:   httpCfg.MaxBodyBytes,
		limiter:    worker.NewLimiter(rl.RequestsPerSecond, rl.BurstSize),
		logger:     logger,
	}
	if httpCfg.RespectRobots {
		f.robots = util.NewRobotsChecker(httpCfg.UserAgent, client)
	}
	return f
}

// URL returns the address of the release with the given identifier
func (f *HTTPFetcher) URL(prid int) string {
	return f.baseURL + strconv.Itoa(prid)
}

// Fetch retrieves the release with the given identifier
func (f *HTTPFetcher) Fetch(ctx context.Context, prid int) ([]byte, error) {
	rawURL := f.URL(prid)
	fail := func(status int, err error) error {
		return &RetrievalError{PRID: prid, URL: rawURL, StatusCode: status, Err: err}
	}

	var delay time.Duration
	if f.robots != nil {
		allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fail(0, err)
		}
		if !allowed {
			return nil, fail(0, ErrDisallowed)
		}
		delay = crawlDelay
	}
	if err := f.limiter.WaitWithDelay(ctx, rawURL, delay); err != nil {
		return nil, fail(0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fail(0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	f.logger.Info("fetching press release", "prid", prid, "url", rawURL)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fail(0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fail(resp.StatusCode, fmt.Errorf("unexpected status: %s", resp.Status))
	}

	var body io.Reader = resp.Body
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fail(resp.StatusCode, fmt.Errorf("read body: %w", err))
	}

	f.logger.Debug("fetched press release", "prid", prid, "bytes", len(data))
	return data, nil
}

package scoreboard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gridironhq/gridiron-sync/internal/platform/logging"
	"github.com/gridironhq/gridiron-sync/internal/usecase"
)

const (
	dateQueryLayout = "2006-01-02"
	maxBodyBytes    = 10 << 20
)

var errScoreboardTransient = crerr.New("scoreboard transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		maxRetries: maxInt(cfg.MaxRetries, 0),
		logger:     logger,
	}
}

func (c *Client) GetEventsByDate(ctx context.Context, date time.Time) (usecase.ExternalScoreboard, error) {
	if c.baseURL == "" {
		return usecase.ExternalScoreboard{}, fmt.Errorf("%w: scoreboard base url is not configured", usecase.ErrDependencyUnavailable)
	}

	fullURL := fmt.Sprintf("%s/events?date=%s", c.baseURL, date.Format(dateQueryLayout))
	raw, err := c.executeRequest(ctx, fullURL, "application/json")
	if err != nil {
		return usecase.ExternalScoreboard{}, fmt.Errorf("fetch scoreboard date=%s: %w", date.Format(dateQueryLayout), err)
	}

	var envelope scoreboardEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return usecase.ExternalScoreboard{}, fmt.Errorf("decode scoreboard payload: %w", err)
	}

	return mapScoreboard(envelope), nil
}

func (c *Client) GetImageBuffer(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return nil, fmt.Errorf("image url %q is not an absolute http url", rawURL)
	}

	raw, err := c.executeRequest(ctx, parsed.String(), "image/*")
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL, accept string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", accept)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errScoreboardTransient, err)
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errScoreboardTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errScoreboardTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "scoreboard request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(body, maxBodyBytes)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}

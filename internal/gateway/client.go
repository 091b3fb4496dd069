// Package gateway is the client for the external recommendation service.
//
// It sends a completed player profile to POST {base}/api/recommend and maps
// the service's game schema into game.Game. Calls are paced by a token
// bucket limiter and guarded by a circuit breaker; they are never retried.
package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/metrics"
	"github.com/albapepper/ziyou/internal/profile"
)

const (
	recommendPath = "/api/recommend"

	// UnavailableMessage is shown when the service cannot be reached at all.
	UnavailableMessage = "推荐服务暂时不可用，请稍后重试"

	maxResponseBytes = 8 << 20
)

// GatewayError is a failed recommendation call. Message is meant for the
// user; Status is the HTTP status, or 0 when no response was received.
type GatewayError struct {
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Options configures a Client.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int    // <= 0 disables pacing
	BreakerFailures   uint32 // consecutive failures that open the breaker; 0 disables it
	BreakerCooldown   time.Duration
	HTTPClient        *http.Client
}

// Client calls the recommendation service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]game.Game]
	logger     *slog.Logger
}

// NewClient creates a gateway client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(opts.RequestsPerMinute) / 60.0)
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
	if opts.BreakerFailures > 0 {
		c.breaker = newBreaker(opts.BreakerFailures, opts.BreakerCooldown, logger)
	}
	return c
}

func newBreaker(failures uint32, cooldown time.Duration, logger *slog.Logger) *gobreaker.CircuitBreaker[[]game.Game] {
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return gobreaker.NewCircuitBreaker[[]game.Game](gobreaker.Settings{
		Name:        "recommend",
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// Only an unhealthy service counts against the breaker; a 4xx is
		// the caller's problem.
		IsSuccessful: func(err error) bool {
			var gerr *GatewayError
			if errors.As(err, &gerr) {
				return gerr.Status != 0 && gerr.Status < 500
			}
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Gateway breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// BreakerState reports the breaker state for health endpoints.
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return "disabled"
	}
	return c.breaker.State().String()
}

// Submit validates p, sends it to the service and returns the mapped games
// in service order. Cancelling ctx abandons the call. Every failure other
// than validation and cancellation is a *GatewayError.
func (c *Client) Submit(ctx context.Context, p profile.Profile) ([]game.Game, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if c.breaker == nil {
		return c.submit(ctx, p)
	}
	started := time.Now()
	games, err := c.breaker.Execute(func() ([]game.Game, error) {
		return c.submit(ctx, p)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.ObserveGateway("breaker_open", started)
		return nil, &GatewayError{Message: UnavailableMessage, Err: err}
	}
	return games, err
}

func (c *Client) submit(ctx context.Context, p profile.Profile) ([]game.Game, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(newRecommendRequest(p))
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+recommendPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		metrics.ObserveGateway("transport_error", started)
		c.logger.Warn("Recommendation request failed", "error", err)
		return nil, &GatewayError{Message: UnavailableMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		metrics.ObserveGateway("transport_error", started)
		return nil, &GatewayError{Status: resp.StatusCode, Message: UnavailableMessage, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveGateway("http_error", started)
		msg := errorMessage(resp.StatusCode, raw)
		c.logger.Warn("Recommendation service returned an error",
			"status", resp.StatusCode, "message", msg, "body", truncate(raw, 200))
		return nil, &GatewayError{
			Status:  resp.StatusCode,
			Message: msg,
			Err:     fmt.Errorf("recommend returned %d", resp.StatusCode),
		}
	}

	var decoded recommendResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		metrics.ObserveGateway("decode_error", started)
		return nil, &GatewayError{
			Status:  resp.StatusCode,
			Message: "推荐结果格式错误，请稍后重试",
			Err:     fmt.Errorf("decode response: %w", err),
		}
	}

	games := make([]game.Game, len(decoded.Games))
	for i, w := range decoded.Games {
		games[i] = w.toGame()
	}
	metrics.ObserveGateway("ok", started)
	metrics.GatewayGamesReturned.Observe(float64(len(games)))
	c.logger.Info("Recommendations received", "games", len(games), "duration", time.Since(started).Round(time.Millisecond))
	return games, nil
}

// errorMessage prefers the service's "detail" string and otherwise names the
// status code.
func errorMessage(status int, body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		if s, ok := er.Detail.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return fmt.Sprintf("请求失败 (%d)", status)
}

// truncate returns a truncated string representation for log lines.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}

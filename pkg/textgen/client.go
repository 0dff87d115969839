// Package textgen is the boundary to the external text generation service.
// The intake core treats it as an opaque prompt-in, text-out dependency; all
// transport concerns (rate limiting, circuit breaking, response caching,
// stale-response discard) live here.
package textgen

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/sis-intake-server/internal/domain"
)

var (
	// ErrStale marks a completion that was superseded by a newer request
	// for the same purpose. Callers must discard the result.
	ErrStale = errors.New("text generation response superseded")

	// ErrUnavailable wraps transport failures and an open circuit breaker.
	ErrUnavailable = errors.New("text generation service unavailable")
)

// Generator is the interface the intake services consume. Purpose is a
// stable key ("enhance", "assessment-fill") scoping stale-response tracking.
type Generator interface {
	Generate(ctx context.Context, purpose, prompt string) (string, error)
}

// Client talks to the generation endpoint over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
	cache      *lru.Cache[string, string]
	logger     *logrus.Logger

	mu      sync.Mutex
	current map[string]string // purpose -> in-flight request id
}

// NewClient creates a generation client from config.
func NewClient(cfg domain.TextGenConfig, logger *logrus.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("text generation base URL is required")
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}
	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 1
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "textgen",
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breaker,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		cache:      cache,
		logger:     logger,
		current:    make(map[string]string),
	}, nil
}

type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate runs one prompt through the service. Identical prompts are served
// from the cache. When a newer Generate call for the same purpose starts
// while this one is in flight, the slower completion returns ErrStale.
func (c *Client) Generate(ctx context.Context, purpose, prompt string) (string, error) {
	cacheKey := fmt.Sprintf("%x", sha256.Sum256([]byte(prompt)))
	if text, ok := c.cache.Get(cacheKey); ok {
		c.logger.WithField("purpose", purpose).Debug("Text generation cache hit")
		return text, nil
	}

	reqID := uuid.New().String()
	c.mu.Lock()
	c.current[purpose] = reqID
	c.mu.Unlock()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.post(ctx, prompt)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return "", err
	}
	text := result.(string)

	c.mu.Lock()
	latest := c.current[purpose]
	c.mu.Unlock()
	if latest != reqID {
		c.logger.WithFields(logrus.Fields{
			"purpose":    purpose,
			"request_id": reqID,
		}).Info("Discarding superseded text generation response")
		return "", ErrStale
	}

	c.cache.Add(cacheKey, text)
	return text, nil
}

func (c *Client) post(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:       c.model,
		Prompt:      prompt,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Text, nil
}

var codeFenceRe = regexp.MustCompile("(?i)```json|```")

// StripCodeFence removes markdown code fences the service sometimes wraps
// around JSON payloads.
func StripCodeFence(s string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(s, ""))
}

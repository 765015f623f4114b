// Package suggest fetches remote search completions.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/domain/query"
	domainurl "github.com/bnema/orbit/internal/domain/url"
	"github.com/bnema/orbit/internal/logging"
)

const (
	completePath    = "/complete/search?client=chrome&q="
	maxResponseSize = 1 << 20
	userAgent       = "orbit"
)

// Config holds the transport settings.
type Config struct {
	Host            string
	RequestTimeout  time.Duration
	FallbackTimeout time.Duration
	MaxResults      int
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		Host:            "https://suggestqueries.google.com",
		RequestTimeout:  5 * time.Second,
		FallbackTimeout: 3 * time.Second,
		MaxResults:      query.MaxSuggestions,
	}
}

// Client implements port.SuggestionTransport with a plain JSON request and
// a callback-wrapped fallback request.
type Client struct {
	cfg       Config
	http      *http.Client
	callbacks *callbackRegistry

	mu            sync.Mutex
	generation    uint64
	pendingEpoch  uint64
	cancelPending context.CancelFunc
}

var _ port.SuggestionTransport = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a suggestion client. Zero fields in cfg take defaults.
func NewClient(cfg Config, opts ...Option) *Client {
	def := DefaultConfig()
	if cfg.Host == "" {
		cfg.Host = def.Host
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = def.RequestTimeout
	}
	if cfg.FallbackTimeout <= 0 {
		cfg.FallbackTimeout = def.FallbackTimeout
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = def.MaxResults
	}
	cfg.Host = strings.TrimRight(cfg.Host, "/")

	c := &Client{
		cfg:       cfg,
		http:      &http.Client{},
		callbacks: newCallbackRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PendingCallbacks returns how many fallback callbacks are registered.
func (c *Client) PendingCallbacks() int {
	return c.callbacks.len()
}

// Suggest resolves req. It never returns an error to act on: failures come
// back as an empty result with Err set to one of the query sentinel errors.
func (c *Client) Suggest(ctx context.Context, req port.SuggestionRequest) port.SuggestionResult {
	ctx = logging.WithComponent(ctx, "suggest")
	log := logging.FromContext(ctx)

	res := port.SuggestionResult{Query: req.Query, Epoch: req.Epoch}

	if ctx.Err() != nil {
		res.Err = interrupted(ctx, ctx)
		log.Debug().Err(res.Err).Msg("suggestion request stopped before start")
		return res
	}

	reqCtx, release, ok := c.supersede(ctx, req.Epoch)
	if !ok {
		res.Err = query.ErrCancelled
		log.Debug().Uint64("pending_epoch", c.pending()).Msg("newer suggestion request already pending")
		return res
	}
	defer release()

	items, err := c.primary(reqCtx, req.Query)
	if err == nil {
		res.Suggestions = c.truncate(items)
		log.Debug().Int("count", len(res.Suggestions)).Msg("suggestions received")
		return res
	}

	if stop := interrupted(ctx, reqCtx); stop != nil {
		res.Err = stop
		log.Debug().Err(stop).Msg("suggestion request stopped")
		return res
	}

	log.Debug().Err(err).Msg("primary suggestion request failed, trying callback fallback")

	items, err = c.fallback(reqCtx, req.Query)
	if err != nil {
		if stop := interrupted(ctx, reqCtx); stop != nil {
			err = stop
		}
		res.Err = err
		log.Debug().Err(err).Msg("suggestion fallback resolved empty")
		return res
	}

	res.Suggestions = c.truncate(items)
	log.Debug().Int("count", len(res.Suggestions)).Msg("suggestions received via fallback")
	return res
}

// supersede cancels the pending request and registers this one in its
// place. A request older than the pending one is refused instead, and ok is
// false.
func (c *Client) supersede(parent context.Context, epoch uint64) (ctx context.Context, release func(), ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelPending != nil && epoch < c.pendingEpoch {
		return nil, nil, false
	}
	if c.cancelPending != nil {
		c.cancelPending()
	}

	ctx, cancel := context.WithCancel(parent)
	c.generation++
	gen := c.generation
	c.pendingEpoch = epoch
	c.cancelPending = cancel

	return ctx, func() {
		c.mu.Lock()
		if c.generation == gen {
			c.cancelPending = nil
		}
		c.mu.Unlock()
		cancel()
	}, true
}

func (c *Client) pending() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingEpoch
}

// interrupted reports why the request context ended, if it did. A parent
// deadline maps to ErrTimeout, any cancellation to ErrCancelled.
func interrupted(parent, reqCtx context.Context) error {
	if reqCtx.Err() == nil {
		return nil
	}
	if errors.Is(parent.Err(), context.DeadlineExceeded) {
		return query.ErrTimeout
	}
	return query.ErrCancelled
}

func (c *Client) primary(ctx context.Context, q string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	body, err := c.get(ctx, c.endpoint(q))
	if err != nil {
		return nil, err
	}
	return parseSuggestions(body)
}

// fallback requests the callback-wrapped form. The call resolves only when
// the body invokes the name registered for it, or empty on timeout.
func (c *Client) fallback(ctx context.Context, q string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.FallbackTimeout)
	defer cancel()

	name, fired, release := c.callbacks.register()
	defer release()

	log := logging.FromContext(ctx)
	failed := make(chan error, 1)

	go func() {
		body, err := c.get(ctx, c.endpoint(q)+"&callback="+name)
		if err != nil {
			failed <- err
			return
		}
		called, payload, err := unwrapJSONP(body)
		if err != nil {
			failed <- err
			return
		}
		// Only our own, still registered name resolves this call.
		if called != name || !c.callbacks.invoke(called, payload) {
			log.Debug().Str("callback", called).Msg("callback not registered")
		}
	}()

	select {
	case payload := <-fired:
		return parseSuggestions(payload)
	case err := <-failed:
		if ctx.Err() != nil {
			return nil, c.timeoutErr()
		}
		return nil, err
	case <-ctx.Done():
		return nil, c.timeoutErr()
	}
}

func (c *Client) timeoutErr() error {
	return fmt.Errorf("%w after %s", query.ErrTimeout, c.cfg.FallbackTimeout)
}

func (c *Client) endpoint(q string) string {
	return c.cfg.Host + completePath + domainurl.EncodeComponent(q)
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", query.ErrNetworkFailure, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", query.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", query.ErrNetworkFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", query.ErrNetworkFailure, err)
	}
	return body, nil
}

func (c *Client) truncate(items []string) []string {
	n := min(len(items), c.cfg.MaxResults)
	out := make([]string, n)
	copy(out, items[:n])
	return out
}

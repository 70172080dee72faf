package binance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"mbx/internal/circuitbreaker"
	httpClient "mbx/internal/http"
	"mbx/internal/ratelimit"
	"mbx/pkg/core"
)

// HeaderAPIKey carries the API key on signed requests.
const HeaderAPIKey = "X-MBX-APIKEY"

const userAgent = "mbx/1.0"

// Client dispatches typed requests to the spot, futures and coin-futures venues.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	config      *core.Config
	httpClient  *httpClient.Client
	signer      *Signer
	apiKey      string
	rateLimiter *ratelimit.RateLimiter
	breakers    map[core.MarketType]*circuitbreaker.Breaker
	logger      zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Logger zerolog.Logger
	Clock  func() time.Time
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock returns an option that replaces the clock used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Clock = now
	}
}

// New creates a Client from config. Signed calls fail with core.ErrNoCredentials
// when config carries no credentials.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	hc, err := httpClient.NewClient(&httpClient.Config{
		Timeout:   config.Timeout,
		UserAgent: userAgent,
	}, options.Logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	c := &Client{
		config:     config,
		httpClient: hc,
		logger:     options.Logger,
	}

	if config.Credentials != nil {
		c.apiKey = config.Credentials.APIKey
		c.signer = NewSigner(config.Credentials.SecretKey, WithSignerClock(options.Clock))
	}

	if config.RateLimitWeight > 0 {
		c.rateLimiter = ratelimit.New(config.RateLimitWeight, config.RateLimitPeriod)
	}

	if config.CircuitBreakerThreshold > 0 {
		c.breakers = make(map[core.MarketType]*circuitbreaker.Breaker, 3)
		for _, m := range []core.MarketType{core.MarketTypeSpot, core.MarketTypeFutures, core.MarketTypeCoinFutures} {
			c.breakers[m] = circuitbreaker.New(circuitbreaker.Config{
				FailThreshold:    config.CircuitBreakerThreshold,
				SuccessThreshold: 1,
				Cooldown:         config.CircuitBreakerCooldown,
			})
		}
	}

	return c, nil
}

// RecvWindow returns the default receive window applied to signed calls.
func (c *Client) RecvWindow() uint64 {
	return c.config.RecvWindow
}

// HasCredentials reports whether signed calls can be made.
func (c *Client) HasCredentials() bool {
	return c.signer != nil
}

// BreakerState reports the circuit breaker state for market, or false when
// breakers are disabled.
func (c *Client) BreakerState(market core.MarketType) (circuitbreaker.State, bool) {
	b, ok := c.breakers[market]
	if !ok {
		return circuitbreaker.StateClosed, false
	}
	return b.State(), true
}

// Close releases idle transport connections.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Do performs one round trip for route. request is encoded with EncodeParams.
// For signed routes recvWindow overrides the configured default when non-zero.
// A 2xx body is decoded into out, which may be nil to discard it.
func (c *Client) Do(ctx context.Context, route core.Route, request any, recvWindow uint64, out any) error {
	if !route.IsValidMethod() {
		return fmt.Errorf("%w: %s", core.ErrUnsupportedMethod, route.Method)
	}
	if route.Signed && c.signer == nil {
		return core.ErrNoCredentials
	}

	params, err := EncodeParams(request)
	if err != nil {
		return err
	}

	breaker := c.breakers[route.Market]
	if breaker != nil {
		if err := breaker.Allow(); err != nil {
			return fmt.Errorf("%w: %s", core.ErrCircuitOpen, route.Market)
		}
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx, route.Market.String(), route.Cost()); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	// Sign last: the timestamp must be read after any throttling.
	var opts []httpClient.RequestOption
	query := params.Encode()
	if route.Signed {
		if recvWindow == 0 {
			recvWindow = c.config.RecvWindow
		}
		query = c.signer.Sign(params, recvWindow)
		opts = append(opts, httpClient.WithHeader(HeaderAPIKey, c.apiKey))
	}

	url := c.config.BaseURL(route.Market) + route.Path
	if query != "" {
		url += "?" + query
	}

	resp, err := c.httpClient.Do(ctx, route.Method, url, opts...)
	if err != nil {
		if errors.Is(err, core.ErrClientClosed) {
			return err
		}
		if breaker != nil && ctx.Err() == nil {
			breaker.Record(false)
		}
		return &core.TransportError{Op: route.String(), Err: err}
	}

	if breaker != nil {
		breaker.Record(resp.StatusCode() < http.StatusInternalServerError)
	}

	err = decodeResponse(route, resp.StatusCode(), resp.Bytes(), out)
	if apiErr, ok := core.AsAPIError(err); ok {
		c.logger.Debug().
			Str("route", route.String()).
			Int("status", apiErr.StatusCode).
			Int("code", apiErr.Code).
			Msg("api error")
	}
	return err
}

// Call is Do with the result type given as a type parameter.
func Call[T any](ctx context.Context, c *Client, route core.Route, request any, recvWindow uint64) (T, error) {
	var out T
	err := c.Do(ctx, route, request, recvWindow, &out)
	return out, err
}

// Get performs an unsigned GET on market with an optional query.
func (c *Client) Get(ctx context.Context, market core.MarketType, path string, query any, out any) error {
	return c.Do(ctx, core.PublicRoute(market, http.MethodGet, path), query, 0, out)
}

// Post performs an unsigned POST on market with an optional query.
func (c *Client) Post(ctx context.Context, market core.MarketType, path string, query any, out any) error {
	return c.Do(ctx, core.PublicRoute(market, http.MethodPost, path), query, 0, out)
}

// Put performs an unsigned PUT on market with an optional query.
func (c *Client) Put(ctx context.Context, market core.MarketType, path string, query any, out any) error {
	return c.Do(ctx, core.PublicRoute(market, http.MethodPut, path), query, 0, out)
}

// Delete performs an unsigned DELETE on market with an optional query.
func (c *Client) Delete(ctx context.Context, market core.MarketType, path string, query any, out any) error {
	return c.Do(ctx, core.PublicRoute(market, http.MethodDelete, path), query, 0, out)
}

// GetSigned performs a signed GET.
func (c *Client) GetSigned(ctx context.Context, market core.MarketType, path string, params any, recvWindow uint64, out any) error {
	return c.Do(ctx, core.SignedRoute(market, http.MethodGet, path), params, recvWindow, out)
}

// PostSigned performs a signed POST. Parameters travel in the query string.
func (c *Client) PostSigned(ctx context.Context, market core.MarketType, path string, params any, recvWindow uint64, out any) error {
	return c.Do(ctx, core.SignedRoute(market, http.MethodPost, path), params, recvWindow, out)
}

// PutSigned performs a signed PUT.
func (c *Client) PutSigned(ctx context.Context, market core.MarketType, path string, params any, recvWindow uint64, out any) error {
	return c.Do(ctx, core.SignedRoute(market, http.MethodPut, path), params, recvWindow, out)
}

// DeleteSigned performs a signed DELETE.
func (c *Client) DeleteSigned(ctx context.Context, market core.MarketType, path string, params any, recvWindow uint64, out any) error {
	return c.Do(ctx, core.SignedRoute(market, http.MethodDelete, path), params, recvWindow, out)
}

// apiErrorEnvelope is the {code, msg} body returned on failures.
type apiErrorEnvelope struct {
	Code *int    `json:"code"`
	Msg  *string `json:"msg"`
}

func decodeAPIError(status int, body []byte) *core.APIError {
	var env apiErrorEnvelope
	if err := sonic.Unmarshal(body, &env); err != nil || env.Code == nil || env.Msg == nil {
		return nil
	}
	return core.NewAPIError(status, *env.Code, *env.Msg)
}

func decodeResponse(route core.Route, status int, body []byte, out any) error {
	if status < 200 || status >= 300 {
		if apiErr := decodeAPIError(status, body); apiErr != nil {
			return apiErr
		}
		return &core.TransportError{Op: route.String(), StatusCode: status, Body: body}
	}

	// Struct targets ignore unknown keys, so an error envelope served with 2xx
	// would otherwise decode into a zero value.
	if apiErr := decodeAPIError(status, body); apiErr != nil && apiErr.Code < 0 {
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		if apiErr := decodeAPIError(status, body); apiErr != nil {
			return apiErr
		}
		return &core.TransportError{
			Op:         route.String(),
			StatusCode: status,
			Body:       body,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

package core

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Base URLs for each venue.
const (
	SpotBaseURL               = "https://api.binance.com"
	SpotTestnetBaseURL        = "https://testnet.binance.vision"
	FuturesBaseURL            = "https://fapi.binance.com"
	FuturesTestnetBaseURL     = "https://testnet.binancefuture.com"
	CoinFuturesBaseURL        = "https://dapi.binance.com"
	CoinFuturesTestnetBaseURL = "https://testnet.binancefuture.com"
)

const (
	// DefaultRecvWindow is the receive window applied to signed requests that do not override it.
	DefaultRecvWindow uint64 = 5000
	// MaxRecvWindow is the largest receive window the exchange accepts.
	// Larger values are sent as-is and rejected server side.
	MaxRecvWindow uint64 = 60000
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey     = "BINANCE_API_KEY"
	EnvSecretKey  = "BINANCE_SECRET_KEY"
	EnvSandbox    = "BINANCE_SANDBOX"
	EnvRecvWindow = "BINANCE_RECV_WINDOW"
	EnvLogLevel   = "BINANCE_LOG_LEVEL"
)

// Credentials holds API authentication credentials.
// The secret never leaves the process; it is only used as the HMAC key.
type Credentials struct {
	// APIKey is sent with every signed request in the X-MBX-APIKEY header.
	APIKey string `json:"api_key" validate:"required"`
	// SecretKey is the private key used for signing requests.
	SecretKey string `json:"secret_key" validate:"required"`
}

// String returns the credentials with both values masked.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey:%s, SecretKey:%s}", maskKey(c.APIKey), maskKey(c.SecretKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains the client configuration: credentials, venue URLs, receive window and timeouts.
type Config struct {
	Credentials *Credentials `json:"credentials,omitempty" validate:"omitempty"`
	Sandbox     bool         `json:"sandbox"`

	// SpotURL, FuturesURL and CoinFuturesURL override the venue base URLs.
	// Empty values fall back to the production or testnet defaults.
	SpotURL        string `json:"spot_url,omitempty" validate:"omitempty,url"`
	FuturesURL     string `json:"futures_url,omitempty" validate:"omitempty,url"`
	CoinFuturesURL string `json:"coin_futures_url,omitempty" validate:"omitempty,url"`

	// RecvWindow is the default receive window in milliseconds.
	// It is not clamped to MaxRecvWindow.
	RecvWindow uint64 `json:"recv_window" validate:"min=1"`

	// Timeout is the maximum duration for HTTP requests.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	// RateLimitWeight is the request weight budget per RateLimitPeriod.
	// Zero disables client-side limiting.
	RateLimitWeight int           `json:"rate_limit_weight" validate:"min=0"`
	RateLimitPeriod time.Duration `json:"rate_limit_period" validate:"required_with=RateLimitWeight"`

	// CircuitBreakerThreshold consecutive transport failures on a venue stop
	// further calls to it for CircuitBreakerCooldown. Zero disables the breaker.
	CircuitBreakerThreshold int           `json:"circuit_breaker_threshold" validate:"min=0"`
	CircuitBreakerCooldown  time.Duration `json:"circuit_breaker_cooldown" validate:"required_with=CircuitBreakerThreshold"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a production Config with a 5s receive window and a 10s timeout.
func DefaultConfig() *Config {
	return &Config{
		RecvWindow: DefaultRecvWindow,
		Timeout:    10 * time.Second,
		LogLevel:   "info",
	}
}

// TestnetConfig returns DefaultConfig pointed at the testnet venues.
func TestnetConfig() *Config {
	return DefaultConfig().WithSandbox(true)
}

// ConfigFromEnv builds a Config from BINANCE_* environment variables on top of DefaultConfig.
func ConfigFromEnv() (*Config, error) {
	config := DefaultConfig()

	key, secret := os.Getenv(EnvAPIKey), os.Getenv(EnvSecretKey)
	if key != "" || secret != "" {
		config.WithCredentials(&Credentials{APIKey: key, SecretKey: secret})
	}

	if v := os.Getenv(EnvSandbox); v != "" {
		sandbox, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvSandbox, err)
		}
		config.WithSandbox(sandbox)
	}

	if v := os.Getenv(EnvRecvWindow); v != "" {
		rw, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvRecvWindow, err)
		}
		config.WithRecvWindow(rw)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return config, nil
}

var validate = validator.New()

// Validate checks the struct constraints of the configuration.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// BaseURL returns the base URL used for the given market.
func (c *Config) BaseURL(market MarketType) string {
	switch market {
	case MarketTypeFutures:
		if c.FuturesURL != "" {
			return c.FuturesURL
		}
		if c.Sandbox {
			return FuturesTestnetBaseURL
		}
		return FuturesBaseURL
	case MarketTypeCoinFutures:
		if c.CoinFuturesURL != "" {
			return c.CoinFuturesURL
		}
		if c.Sandbox {
			return CoinFuturesTestnetBaseURL
		}
		return CoinFuturesBaseURL
	default:
		if c.SpotURL != "" {
			return c.SpotURL
		}
		if c.Sandbox {
			return SpotTestnetBaseURL
		}
		return SpotBaseURL
	}
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithSandbox enables or disables the testnet venues and returns the config for chaining.
func (c *Config) WithSandbox(sandbox bool) *Config {
	c.Sandbox = sandbox
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRecvWindow sets the default receive window and returns the config for chaining.
func (c *Config) WithRecvWindow(recvWindow uint64) *Config {
	c.RecvWindow = recvWindow
	return c
}

// WithRateLimit enables client-side weight limiting and returns the config for chaining.
func (c *Config) WithRateLimit(weight int, period time.Duration) *Config {
	c.RateLimitWeight = weight
	c.RateLimitPeriod = period
	return c
}

// WithCircuitBreaker enables a per-venue circuit breaker and returns the config for chaining.
func (c *Config) WithCircuitBreaker(threshold int, cooldown time.Duration) *Config {
	c.CircuitBreakerThreshold = threshold
	c.CircuitBreakerCooldown = cooldown
	return c
}

// WithBaseURL points every market at the same base URL. Useful for proxies and tests.
func (c *Config) WithBaseURL(url string) *Config {
	c.SpotURL = url
	c.FuturesURL = url
	c.CoinFuturesURL = url
	return c
}

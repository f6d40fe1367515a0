// Package walletexplorer fetches clustered wallet histories from the WalletExplorer.com API.
package walletexplorer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/go-resty/resty/v2"
)

// ErrInvalidTxID is returned for transaction ids that are not 32-byte hex hashes.
var ErrInvalidTxID = errors.New("invalid transaction id")

// Config holds the settings of the WalletExplorer client.
type Config struct {
	// BaseURL is the API root, e.g. https://www.walletexplorer.com/api/1.
	BaseURL string `mapstructure:"base_url"`

	// Caller identifies this tool to the API.
	Caller string `mapstructure:"caller"`

	// PageSize is the number of transactions fetched per wallet request. The API caps it at 100.
	PageSize int `mapstructure:"page_size"`

	// RetryCount is the number of retries after a failed request.
	RetryCount int `mapstructure:"retry_count"`

	// RetryWait is the base backoff; the n-th retry waits n times this long.
	RetryWait time.Duration `mapstructure:"retry_wait"`

	// Timeout bounds a single request.
	Timeout time.Duration `mapstructure:"timeout"`

	// RequestDelay is slept before every request to stay within the API rate limit.
	RequestDelay time.Duration `mapstructure:"request_delay"`
}

// DefaultConfig mirrors the limits the public API enforces.
var DefaultConfig = Config{
	BaseURL:      "https://www.walletexplorer.com/api/1",
	Caller:       "wallet-simulator",
	PageSize:     100,
	RetryCount:   2,
	RetryWait:    time.Second,
	Timeout:      30 * time.Second,
	RequestDelay: 0,
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient makes the client send requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger receiving request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Client talks to the WalletExplorer API. It implements wallet.HistoryProvider and wallet.OutputResolver.
type Client struct {
	cfg        Config
	httpClient *http.Client
	rest       *resty.Client
	logger     logging.Logger
}

// New creates a Client for the given configuration.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{cfg: cfg, logger: logging.Discard()}
	for _, o := range opts {
		o(c)
	}
	if c.cfg.PageSize <= 0 {
		c.cfg.PageSize = DefaultConfig.PageSize
	}

	rest := resty.New()
	if c.httpClient != nil {
		rest = resty.NewWithClient(c.httpClient)
	}

	c.rest = rest.
		SetBaseURL(c.cfg.BaseURL).
		SetTimeout(c.cfg.Timeout).
		SetRetryCount(c.cfg.RetryCount).
		SetRetryWaitTime(c.cfg.RetryWait).
		SetRetryMaxWaitTime(c.cfg.RetryWait*time.Duration(max(c.cfg.RetryCount, 1))).
		SetRetryAfter(func(_ *resty.Client, r *resty.Response) (time.Duration, error) {
			return time.Duration(r.Request.Attempt) * c.cfg.RetryWait, nil
		}).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.IsError()
		}).
		SetHeader("Accept", "application/json")

	return c
}

// get fetches path with the given query into result, applying the request delay and caller id.
func (c *Client) get(ctx context.Context, path string, query map[string]string, result any) error {
	if c.cfg.RequestDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.cfg.RequestDelay):
		}
	}

	c.logger.Debugf("Fetching %s%s %v", c.cfg.BaseURL, path, query)
	res, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetQueryParam("caller", c.cfg.Caller).
		SetResult(result).
		ForceContentType("application/json").
		Get(path)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	if res.IsError() {
		return fmt.Errorf("failed to fetch %s: unexpected status %d", path, res.StatusCode())
	}
	return nil
}

func validateTxID(txid string) error {
	if len(txid) != 2*chainhash.HashSize {
		return fmt.Errorf("%w: %q", ErrInvalidTxID, txid)
	}
	if _, err := chainhash.NewHashFromHex(txid); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidTxID, txid, err)
	}
	return nil
}
